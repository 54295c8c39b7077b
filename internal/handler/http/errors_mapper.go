package http

import (
	"errors"
	"net/http"

	"github.com/werlleyg/boilerplate-api/internal/app"
	"github.com/werlleyg/boilerplate-api/internal/logger"
	"github.com/werlleyg/boilerplate-api/internal/service"
	"github.com/werlleyg/boilerplate-api/internal/store"
	"github.com/werlleyg/boilerplate-api/internal/utils"
	"github.com/werlleyg/boilerplate-api/internal/validators"
)

type domainError struct {
	status  int
	message string
}

var errorStatusMap = map[error]domainError{
	service.ErrInvalidCredentials: {http.StatusUnauthorized, app.MsgInvalidCredentials},
	service.ErrTokenRequired:      {http.StatusUnauthorized, app.MsgTokenRequired},
	service.ErrTokenInvalid:       {http.StatusUnauthorized, app.MsgTokenInvalid},
	service.ErrNotReady:           {http.StatusServiceUnavailable, app.MsgServiceUnavailable},

	store.ErrUserNotFound:           {http.StatusNotFound, app.MsgUserNotFound},
	store.ErrEmailAlreadyRegistered: {http.StatusConflict, app.MsgUserAlreadyRegistered},

	ErrRouteNotFound:    {http.StatusNotFound, app.MsgRouteNotFound},
	ErrMethodNotAllowed: {http.StatusMethodNotAllowed, app.MsgMethodNotAllowed},
}

// errorResponse is the body of every failed request.
type errorResponse struct {
	Status  string `json:"status"`
	Message any    `json:"message"`
}

// mapError picks the response for err. The first matching rule wins:
//  1. a domain error with a known status and message
//  2. a validation error, rendered with its issue list
//  3. anything else, rendered as a generic 500
func mapError(err error) (int, errorResponse) {
	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		return statusErr.Status, errorResponse{Status: app.StatusError, Message: statusErr.Message}
	}

	for target, mapped := range errorStatusMap {
		if errors.Is(err, target) {
			return mapped.status, errorResponse{Status: app.StatusError, Message: mapped.message}
		}
	}

	var validationErr *validators.ValidationError
	if errors.As(err, &validationErr) {
		return http.StatusBadRequest, errorResponse{Status: app.StatusValidationError, Message: validationErr.Issues}
	}

	return http.StatusInternalServerError, errorResponse{Status: app.StatusError, Message: app.MsgInternalServerError}
}

// writeError writes exactly one error response for err.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)

	status, body := mapError(err)
	if status >= http.StatusInternalServerError {
		log.Err(err).Int("status", status).Msg("request failed")
	} else {
		log.Debug().Err(err).Int("status", status).Msg("request rejected")
	}

	if _, writeErr := utils.WriteJSON(w, body, status); writeErr != nil {
		log.Err(writeErr).Msg("error writing error response")
	}
}
