package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gorilla/mux"
)

// DBPinger is the slice of *sql.DB the readiness check needs.
type DBPinger interface {
	PingContext(ctx context.Context) error
}

// NewAdminRouter builds the operational HTTP surface. It is served on a
// separate port and never touches the task wire protocol.
func NewAdminRouter(db DBPinger) http.Handler {
	router := mux.NewRouter()
	router.HandleFunc("/healthz", handleHealthz).Methods("GET")
	router.HandleFunc("/readyz", readyzHandler(db)).Methods("GET")
	return router
}

func handleHealthz(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

// readyzHandler reports ready only when the database answers a bounded ping.
func readyzHandler(db DBPinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 1*time.Second)
		defer cancel()

		if err := db.PingContext(ctx); err != nil {
			http.Error(w, "not ready", http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ready"))
	}
}
