package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/werlleyg/boilerplate-api/internal/logger"
	"github.com/werlleyg/boilerplate-api/internal/utils"
	"github.com/werlleyg/boilerplate-api/models"
)

func (h *Handler) listUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.services.UserService.List(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.ToResponseList(users), http.StatusOK)
}

func (h *Handler) showUser(w http.ResponseWriter, r *http.Request) {
	id, err := h.userIDParam(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	user, err := h.services.UserService.Show(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, user.ToResponse(), http.StatusOK)
}

func (h *Handler) createUser(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.CreateUserRequest
	if err := h.decodeBody(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	user, err := h.services.UserService.Create(r.Context(), req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	log.Info().Str("user_id", user.ID).Str("role", string(user.Role)).Msg("user created")

	utils.WriteJSON(w, user.ToResponse(), http.StatusOK)
}

func (h *Handler) updateUser(w http.ResponseWriter, r *http.Request) {
	id, err := h.userIDParam(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var req models.UpdateUserRequest
	if err := h.decodeBody(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	user, err := h.services.UserService.Update(r.Context(), id, req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, user.ToResponse(), http.StatusOK)
}

func (h *Handler) deleteUser(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	id, err := h.userIDParam(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	if err := h.services.UserService.Delete(r.Context(), id); err != nil {
		writeError(w, r, err)
		return
	}

	log.Info().Str("deleted_user_id", id).Msg("user deleted")

	utils.WriteJSON(w, nil, http.StatusNoContent)
}

// userIDParam returns the validated {id} path parameter.
func (h *Handler) userIDParam(r *http.Request) (string, error) {
	param := models.UserIDParam{ID: chi.URLParam(r, "id")}
	if err := h.validator.Validate(r.Context(), param); err != nil {
		return "", err
	}

	return param.ID, nil
}
