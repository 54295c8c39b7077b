package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/werlleyg/boilerplate-api/internal/app"
	"github.com/werlleyg/boilerplate-api/internal/config"
	"github.com/werlleyg/boilerplate-api/internal/logger"
	"github.com/werlleyg/boilerplate-api/internal/metrics"
	"github.com/werlleyg/boilerplate-api/internal/service"
	"github.com/werlleyg/boilerplate-api/internal/validators"
)

// maxBodyBytes caps the size of every request body.
const maxBodyBytes = 1 << 20

type Handler struct {
	services  *service.Services
	validator validators.Validator
	metrics   *metrics.Prom

	requestTimeout time.Duration

	logger *logger.Logger
}

func NewHandler(services *service.Services, prom *metrics.Prom, cfg config.Server, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:       services,
		validator:      validators.NewRequestValidator(),
		metrics:        prom,
		requestTimeout: cfg.RequestTimeout,
		logger:         logger,
	}
}

// decodeBody decodes the JSON request body into dst and validates it.
func (h *Handler) decodeBody(r *http.Request, dst any) error {
	if err := validators.DecodeJSON(r.Body, dst); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			return &StatusError{Status: http.StatusRequestEntityTooLarge, Message: app.MsgRequestBodyTooLarge, Err: err}
		}
		return err
	}

	return h.validator.Validate(r.Context(), dst)
}
