package http

import (
	"net/http"

	"github.com/werlleyg/boilerplate-api/internal/logger"
	"github.com/werlleyg/boilerplate-api/internal/utils"
	"github.com/werlleyg/boilerplate-api/models"
)

// authenticate handles POST /session.
func (h *Handler) authenticate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.AuthenticateRequest
	if err := h.decodeBody(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	session, err := h.services.AuthService.Authenticate(ctx, req.Email, req.Password)
	if err != nil {
		writeError(w, r, err)
		return
	}

	log.Debug().Str("user_id", session.User.ID).Msg("user successfully authenticated")

	utils.WriteJSON(w, session.ToResponse(), http.StatusOK)
}
