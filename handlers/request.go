package handlers

import (
	"encoding/json"
	"errors"
	"strings"

	"github.com/anggarapp/task-crud-api/models"
)

var errIncompleteBody = errors.New("request body is missing title or description")

// extractID picks the identifier out of the raw request text: the third
// slash-delimited segment, trimmed to its first whitespace-delimited
// token. "GET /tasks/7 HTTP/1.1" splits to ["GET ", "tasks", "7 HTTP", ...],
// so segment 2 carries the id. Empty string when absent; the caller's
// integer parse decides what that means.
func extractID(request string) string {
	parts := strings.Split(request, "/")
	if len(parts) < 3 {
		return ""
	}
	fields := strings.Fields(parts[2])
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}

// parseTaskPayload decodes the JSON object after the blank-line boundary.
// Both title and description must be present; an id field is ignored.
func parseTaskPayload(request string) (title, description string, err error) {
	segments := strings.Split(request, "\r\n\r\n")
	raw := segments[len(segments)-1]

	var p models.TaskPayload
	if err := json.Unmarshal([]byte(raw), &p); err != nil {
		return "", "", err
	}
	if p.Title == nil || p.Description == nil {
		return "", "", errIncompleteBody
	}
	return *p.Title, *p.Description, nil
}
