package handler

import (
	"github.com/werlleyg/boilerplate-api/internal/config"
	"github.com/werlleyg/boilerplate-api/internal/handler/http"
	"github.com/werlleyg/boilerplate-api/internal/logger"
	"github.com/werlleyg/boilerplate-api/internal/metrics"
	"github.com/werlleyg/boilerplate-api/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, prom *metrics.Prom, cfg config.Server, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if services == nil {
		return nil, errNoServicesProvided
	}

	return &Handlers{
		HTTP: http.NewHandler(services, prom, cfg, logger),
	}, nil
}
