package http

import (
	"net/http"

	"github.com/werlleyg/boilerplate-api/internal/utils"
)

// version reports the build metadata baked in at link time.
func (h *Handler) version(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, h.services.AppInfoService.GetAppVersion(r.Context()), http.StatusOK)
}
