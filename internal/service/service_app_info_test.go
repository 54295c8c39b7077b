package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/werlleyg/boilerplate-api/internal/config"
	"github.com/werlleyg/boilerplate-api/internal/logger"
	"github.com/werlleyg/boilerplate-api/internal/mock"
	"github.com/werlleyg/boilerplate-api/internal/store"
	"github.com/werlleyg/boilerplate-api/models"
	"go.uber.org/mock/gomock"
)

// ─────────────────────────────────────────────
// AppInfoService
// ─────────────────────────────────────────────

func TestGetAppVersion_ReturnsBuildInfo(t *testing.T) {
	svc := NewAppInfoService(models.NewAppBuildInfo("1.2.3", "2026-03-01", "abc123"), logger.Nop())

	got := svc.GetAppVersion(context.Background())

	assert.Equal(t, models.AppVersion{Version: "1.2.3", Date: "2026-03-01", Commit: "abc123"}, got)
}

func TestGetAppVersion_MissingValuesAreNA(t *testing.T) {
	svc := NewAppInfoService(models.NewAppBuildInfo("", "", ""), logger.Nop())

	got := svc.GetAppVersion(context.Background())

	assert.Equal(t, models.AppVersion{Version: "N/A", Date: "N/A", Commit: "N/A"}, got)
}

// ─────────────────────────────────────────────
// HealthService
// ─────────────────────────────────────────────

func TestHealthService_Ready(t *testing.T) {
	ctrl := gomock.NewController(t)
	pinger := mock.NewMockPinger(ctrl)
	svc := NewHealthService(pinger, logger.Nop())
	ctx := context.Background()

	pinger.EXPECT().Ping(ctx).Return(nil)
	require.NoError(t, svc.Ready(ctx))

	pinger.EXPECT().Ping(ctx).Return(errors.New("connection refused"))
	err := svc.Ready(ctx)
	assert.ErrorIs(t, err, ErrNotReady)
}

// ─────────────────────────────────────────────
// Services
// ─────────────────────────────────────────────

func TestNewServices(t *testing.T) {
	ctrl := gomock.NewController(t)
	storages := &store.Storages{UserRepository: mock.NewMockUserRepository(ctrl)}
	cfg := config.StructuredConfig{Auth: testAuthConfig()}

	services := NewServices(storages, cfg, models.NewAppBuildInfo("1.0.0", "", ""), logger.Nop())

	require.NotNil(t, services)
	assert.NotNil(t, services.AuthService)
	assert.NotNil(t, services.UserService)
	assert.NotNil(t, services.AppInfoService)
	assert.NotNil(t, services.HealthService)
}
