package app

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/brtemplate/authgate/internal/config"
	"github.com/brtemplate/authgate/internal/middleware"
	"github.com/brtemplate/authgate/internal/pkg/logging"
	"github.com/brtemplate/authgate/internal/platform/db"
	"github.com/brtemplate/authgate/internal/platform/router"
	"github.com/ferdiebergado/goexpress"
	"github.com/ferdiebergado/gopherkit/env"
)

const (
	envAppEnv   = "ENV"
	envLogLevel = "LOG_LEVEL"
	envPepper   = "PASSWORD_PEPPER"

	cfgFile = "config.json"
)

func Run(signalCtx context.Context) error {
	if os.Getenv(envAppEnv) != "production" {
		if err := env.Load(".env"); err != nil {
			return fmt.Errorf("load env: %w", err)
		}
	}

	logging.SetupLogger(os.Getenv(envAppEnv), os.Getenv(envLogLevel), os.Stderr)
	slog.Info("Initializing...")

	cfg, err := config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	dbConn, err := db.Connect(signalCtx, cfg.DB)
	if err != nil {
		return err
	}
	defer dbConn.Close()

	if err := db.Migrate(signalCtx, dbConn); err != nil {
		return err
	}

	provider, err := newProvider(cfg, dbConn, os.Getenv(envPepper))
	if err != nil {
		return err
	}

	middlewares := []router.Middleware{
		middleware.InjectWriter,
		goexpress.RecoverFromPanic,
		middleware.LogRequest,
		middleware.ContextGuard,
		middleware.CORS(cfg.CORS.AllowedOrigin),
		middleware.CheckContentType,
	}

	api := New(cfg, provider, middlewares)
	if err := api.Start(signalCtx); err != nil {
		return fmt.Errorf("start server: %w", err)
	}

	return api.Shutdown()
}
