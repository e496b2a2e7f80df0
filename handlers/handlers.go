package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log"
	"net"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/anggarapp/task-crud-api/database"
	"github.com/anggarapp/task-crud-api/models"
)

// Fixed response prefixes. The wire contract is exactly these three status
// lines; note there is no Content-Length and the 200 line always claims
// JSON even for the static confirmation bodies.
const (
	okResponse            = "HTTP/1.1 200 OK\r\nContent-Type: application/json\r\n\r\n"
	notFoundResponse      = "HTTP/1.1 404 NOT FOUND\r\n\r\n"
	internalErrorResponse = "HTTP/1.1 500 INTERNAL ERROR\r\n\r\n"
)

// readBufferSize bounds a request to a single read. Headers and body
// beyond this are not supported.
const readBufferSize = 1024

// TaskStore is the persistence surface the handlers need. Implemented by
// database.TaskStore; tests substitute an in-memory fake.
type TaskStore interface {
	Create(ctx context.Context, title, description string) error
	Get(ctx context.Context, id int) (models.Task, error)
	List(ctx context.Context) ([]models.Task, error)
	Update(ctx context.Context, id int, title, description string) error
	Delete(ctx context.Context, id int) error
}

// Handlers struct holds the task store, allowing methods to share it.
type Handlers struct {
	store TaskStore
}

// NewHandlers is a constructor for the Handlers struct.
func NewHandlers(store TaskStore) *Handlers {
	return &Handlers{store: store}
}

// HandleConn serves one connection: a single read, one routed operation,
// one write. The connection is closed when the handler returns.
func (h *Handlers) HandleConn(conn net.Conn) {
	defer conn.Close()

	start := time.Now()
	connID := uuid.NewString()

	buf := make([]byte, readBufferSize)
	n, err := conn.Read(buf)
	if err != nil {
		log.Printf("conn_id=%s remote=%s read error: %v", connID, conn.RemoteAddr(), err)
		return
	}
	request := string(buf[:n])

	status, body := h.Route(context.Background(), request)

	if _, err := io.WriteString(conn, status+body); err != nil {
		log.Printf("conn_id=%s remote=%s write error: %v", connID, conn.RemoteAddr(), err)
		return
	}

	log.Printf("conn_id=%s remote=%s request=%q status=%q dur=%s",
		connID, conn.RemoteAddr(), requestLine(request), statusLine(status), time.Since(start))
}

// Route selects exactly one operation by literal prefix match on the raw
// request text, in priority order, and returns the status-line constant
// plus the response body.
func (h *Handlers) Route(ctx context.Context, request string) (string, string) {
	switch {
	case strings.HasPrefix(request, "POST /tasks"):
		return h.handleCreate(ctx, request)
	case strings.HasPrefix(request, "GET /tasks/"):
		return h.handleGet(ctx, request)
	case strings.HasPrefix(request, "GET /tasks"):
		return h.handleList(ctx)
	case strings.HasPrefix(request, "PUT /tasks/"):
		return h.handleUpdate(ctx, request)
	case strings.HasPrefix(request, "DELETE /tasks/"):
		return h.handleDelete(ctx, request)
	default:
		return notFoundResponse, "404 not found"
	}
}

// handleCreate inserts a new task. The created record is not echoed back.
func (h *Handlers) handleCreate(ctx context.Context, request string) (string, string) {
	title, description, err := parseTaskPayload(request)
	if err != nil {
		return internalErrorResponse, "Internal error"
	}

	if err := h.store.Create(ctx, title, description); err != nil {
		return internalErrorResponse, "Internal error"
	}

	return okResponse, "User created"
}

// handleGet retrieves a single task by its id. A non-integer id segment is
// an internal error, not a 404.
func (h *Handlers) handleGet(ctx context.Context, request string) (string, string) {
	id, err := strconv.Atoi(extractID(request))
	if err != nil {
		return internalErrorResponse, "Internal error"
	}

	task, err := h.store.Get(ctx, id)
	if errors.Is(err, database.ErrTaskNotFound) {
		return notFoundResponse, "Task not found"
	} else if err != nil {
		return internalErrorResponse, "Internal error"
	}

	body, _ := json.Marshal(task)
	return okResponse, string(body)
}

// handleList retrieves all tasks as a JSON array, [] when the table is empty.
func (h *Handlers) handleList(ctx context.Context) (string, string) {
	tasks, err := h.store.List(ctx)
	if err != nil {
		return internalErrorResponse, "Internal error"
	}

	body, _ := json.Marshal(tasks)
	return okResponse, string(body)
}

// handleUpdate rewrites title and description. It reports success whether
// or not any row matched the id; only Delete checks affected rows.
func (h *Handlers) handleUpdate(ctx context.Context, request string) (string, string) {
	id, err := strconv.Atoi(extractID(request))
	if err != nil {
		return internalErrorResponse, "Internal error"
	}

	title, description, err := parseTaskPayload(request)
	if err != nil {
		return internalErrorResponse, "Internal error"
	}

	if err := h.store.Update(ctx, id, title, description); err != nil {
		return internalErrorResponse, "Internal error"
	}

	return okResponse, "User updated"
}

// handleDelete removes a task, distinguishing an absent id from a store
// failure.
func (h *Handlers) handleDelete(ctx context.Context, request string) (string, string) {
	id, err := strconv.Atoi(extractID(request))
	if err != nil {
		return internalErrorResponse, "Internal error"
	}

	err = h.store.Delete(ctx, id)
	if errors.Is(err, database.ErrTaskNotFound) {
		return notFoundResponse, "User not found"
	} else if err != nil {
		return internalErrorResponse, "Internal error"
	}

	return okResponse, "User deleted"
}

func requestLine(request string) string {
	return strings.SplitN(request, "\r\n", 2)[0]
}

func statusLine(status string) string {
	return strings.SplitN(status, "\r\n", 2)[0]
}
