package service

import (
	"context"

	"github.com/werlleyg/boilerplate-api/internal/logger"
	"github.com/werlleyg/boilerplate-api/models"
)

type appInfoService struct {
	appVersion models.AppVersion

	logger *logger.Logger
}

func NewAppInfoService(buildInfo models.AppBuildInfo, logger *logger.Logger) AppInfoService {
	return &appInfoService{
		appVersion: buildInfo.ToAppVersion(),
		logger:     logger,
	}
}

func (s *appInfoService) GetAppVersion(ctx context.Context) models.AppVersion {
	return s.appVersion
}
