// Package rest exposes the interpreter and curator over HTTP. It is a thin
// marshaling layer: all decision logic lives in the core services.
package rest

import (
	"net/http"

	"github.com/vibechef/vibechef/internal/core/services"
	"github.com/vibechef/vibechef/internal/worker"
)

// Handler manages the HTTP interface for the application.
type Handler struct {
	interpreter *services.Interpreter
	curator     *services.Curator
	pool        *worker.Pool
	router      *http.ServeMux
}

// NewHandler initializes the HTTP adapter and sets up routes. The curator
// and pool may be nil when the catalog side is not configured; the
// interpreter endpoints keep working either way.
func NewHandler(interpreter *services.Interpreter, curator *services.Curator, pool *worker.Pool) *Handler {
	h := &Handler{
		interpreter: interpreter,
		curator:     curator,
		pool:        pool,
		router:      http.NewServeMux(),
	}
	h.routes()
	return h
}

// ServeHTTP satisfies http.Handler, wrapping the router with the CORS and
// request-ID middleware.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	withCORS(withRequestID(h.router)).ServeHTTP(w, r)
}

func (h *Handler) routes() {
	h.router.HandleFunc("GET /api/health", h.HealthCheck)
	h.router.HandleFunc("POST /api/interpret-mood", h.InterpretMood)
	h.router.HandleFunc("POST /api/search-tracks", h.SearchTracks)
	h.router.HandleFunc("POST /api/create-playlist", h.CreatePlaylist)
}

// HealthCheck is a simple endpoint to verify the API is running.
func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
