package bootstrap

import (
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"

	"resume-renderer/internal/generate"
	"resume-renderer/internal/services/health"
	"resume-renderer/internal/shared/config"
	"resume-renderer/internal/shared/server"
	"resume-renderer/internal/shared/storage/staging"
	"resume-renderer/internal/shared/telemetry"
)

// App holds shared dependencies for the HTTP server and the Lambda handler.
type App struct {
	Config          config.Config
	Router          *gin.Engine
	Stager          staging.Stager
	GenerateService *generate.Service
	GenerateHandler *generate.Handler
	Health          *health.Service
}

// Build wires the renderer from configuration.
func Build(cfg config.Config) (*App, error) {
	if strings.TrimSpace(cfg.Env) == "" {
		cfg.Env = "dev"
	}

	stager, err := staging.New(cfg.StagingMode, cfg.StagingDir)
	if err != nil {
		return nil, fmt.Errorf("build stager: %w", err)
	}

	svc := generate.NewService(stager)
	app := &App{
		Config:          cfg,
		Stager:          stager,
		GenerateService: svc,
		GenerateHandler: generate.NewHandler(svc, cfg.MaxBodyBytes),
		Health:          health.NewService(),
	}
	app.Router = server.NewRouter(server.RouterDeps{
		Config:          app.Config,
		GenerateHandler: app.GenerateHandler,
		Health:          app.Health,
	})

	telemetry.Info("bootstrap.ready", map[string]any{
		"env":          cfg.Env,
		"staging_mode": cfg.StagingMode,
		"metrics":      cfg.MetricsEnabled,
	})
	return app, nil
}
