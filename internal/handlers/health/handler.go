package health

import (
	"net/http"

	"campusvisit/transport/http/response"

	"github.com/go-chi/chi/v5"
)

type Handler struct{}

func New() Handler {
	return Handler{}
}

func (h *Handler) Router(r chi.Router) {
	r.Get("/healthz", h.Health)
}

type status struct {
	Status string `json:"status"`
}

// Health answers load balancer probes without touching the session store.
func (h *Handler) Health(w http.ResponseWriter, _ *http.Request) {
	response.WithJSON(w, http.StatusOK, status{Status: "ok"})
}
