package service

import (
	"context"
	"fmt"

	"github.com/werlleyg/boilerplate-api/internal/logger"
)

type healthService struct {
	db Pinger

	logger *logger.Logger
}

// NewHealthService returns a HealthService that is ready while db answers
// pings.
func NewHealthService(db Pinger, logger *logger.Logger) HealthService {
	return &healthService{
		db:     db,
		logger: logger,
	}
}

func (s *healthService) Ready(ctx context.Context) error {
	if err := s.db.Ping(ctx); err != nil {
		logger.FromContext(ctx).Warn().Err(err).Msg("database ping failed")
		return fmt.Errorf("%w: %w", ErrNotReady, err)
	}

	return nil
}
