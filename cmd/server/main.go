package main

import (
	"context"
	"fmt"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/werlleyg/boilerplate-api/internal/config"
	"github.com/werlleyg/boilerplate-api/internal/handler"
	"github.com/werlleyg/boilerplate-api/internal/logger"
	"github.com/werlleyg/boilerplate-api/internal/metrics"
	"github.com/werlleyg/boilerplate-api/internal/server"
	"github.com/werlleyg/boilerplate-api/internal/service"
	"github.com/werlleyg/boilerplate-api/internal/store"
	"github.com/werlleyg/boilerplate-api/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("accounts-server")
	if err := run(os.Args[1:], log); err != nil {
		log.Error().Err(err).Msg("server stopped with error")
		os.Exit(1)
	}
}

// run wires the server and blocks until it stops. Deferred cleanup runs on
// every return path.
func run(args []string, log *logger.Logger) error {
	cfg, err := config.GetStructuredConfig(args)
	if err != nil {
		return fmt.Errorf("error getting configs: %w", err)
	}

	if err := logger.SetLevel(cfg.Log.Level); err != nil {
		log.Warn().Err(err).Str("level", cfg.Log.Level).Msg("unknown log level, keeping default")
	}

	ctx := context.Background()
	prom := metrics.NewProm(prometheus.NewRegistry())

	db, err := store.Connect(ctx, cfg.Storage.DB, prom, log)
	if err != nil {
		return fmt.Errorf("error connecting to database: %w", err)
	}
	defer db.Close()

	if err := db.Migrate(ctx); err != nil {
		return fmt.Errorf("error applying migrations: %w", err)
	}

	storages := store.NewStorages(db, log)
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	services := service.NewServices(storages, *cfg, buildInfo, log)

	if cfg.Admin.Enabled() {
		created, err := services.UserService.EnsureAdmin(ctx, cfg.Admin.Name, cfg.Admin.Email, cfg.Admin.Password)
		if err != nil {
			return fmt.Errorf("error seeding administrator: %w", err)
		}
		log.Info().Bool("created", created).Str("email", cfg.Admin.Email).Msg("administrator ensured")
	}

	handlers, err := handler.NewHandlers(services, prom, cfg.Server, log)
	if err != nil {
		return fmt.Errorf("error creating handlers: %w", err)
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		return fmt.Errorf("error creating server: %w", err)
	}

	srv.RunServer()

	return nil
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
