package http

import (
	"net/http"

	"github.com/werlleyg/boilerplate-api/internal/utils"
)

type healthResponse struct {
	Status string `json:"status"`
}

// healthz reports that the process is up. It never touches the database.
func (h *Handler) healthz(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, healthResponse{Status: "ok"}, http.StatusOK)
}

// readyz reports whether the service can reach its database.
func (h *Handler) readyz(w http.ResponseWriter, r *http.Request) {
	if err := h.services.HealthService.Ready(r.Context()); err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, healthResponse{Status: "ready"}, http.StatusOK)
}
