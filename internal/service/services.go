package service

import (
	"github.com/werlleyg/boilerplate-api/internal/config"
	"github.com/werlleyg/boilerplate-api/internal/crypto"
	"github.com/werlleyg/boilerplate-api/internal/logger"
	"github.com/werlleyg/boilerplate-api/internal/store"
	"github.com/werlleyg/boilerplate-api/internal/utils"
	"github.com/werlleyg/boilerplate-api/models"
)

type Services struct {
	AuthService    AuthService
	UserService    UserService
	AppInfoService AppInfoService
	HealthService  HealthService
}

func NewServices(storages *store.Storages, cfg config.StructuredConfig, buildInfo models.AppBuildInfo, logger *logger.Logger) *Services {
	hasher := crypto.NewBcryptHasher(cfg.Auth.PasswordHashCost)

	return &Services{
		AuthService:    NewAuthService(storages.UserRepository, hasher, cfg.Auth, logger),
		UserService:    NewUserService(storages.UserRepository, hasher, utils.NewUUIDGenerator(), logger),
		AppInfoService: NewAppInfoService(buildInfo, logger),
		HealthService:  NewHealthService(storages.DB, logger),
	}
}
