package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/brtemplate/authgate/internal/config"
	"github.com/brtemplate/authgate/internal/platform/router"
	"github.com/brtemplate/authgate/internal/user"
)

type App struct {
	server          *http.Server
	config          *config.Config
	router          router.Router
	services        *services
	middlewares     []router.Middleware
	stop            context.CancelFunc
	shutdownTimeout time.Duration
	provider        *Provider
}

func (a *App) registerMiddlewares() {
	for _, mw := range a.middlewares {
		a.router.Use(mw)
	}
}

func (a *App) setupRoutes() {
	userHandler := user.NewHandler(a.services.user)

	mountPreflightRoute(a.router)
	mountDemoRoutes(a.router, a.services.gate)
	mountUserRoutes(a.router, userHandler, a.services.gate, a.provider.Validator, a.config.Server.MaxBodyBytes)
}

// Handler returns the fully wired router.
func (a *App) Handler() http.Handler {
	return a.router
}

func (a *App) Start(ctx context.Context) error {
	serverErr := make(chan error, 1)
	go func() {
		slog.Info("Server listening...", "address", a.server.Addr)
		if err := a.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- fmt.Errorf("listen and serve: %w", err)
			return
		}
		slog.Info("Server has stopped.")
		serverErr <- nil
	}()

	select {
	case <-ctx.Done():
		slog.Info("Shutdown signal received.")
		return nil
	case err := <-serverErr:
		return err
	}
}

func (a *App) Shutdown() error {
	slog.Info("Shutting down server...")
	a.stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.shutdownTimeout)
	defer cancel()
	if err := a.server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown server: %w", err)
	}
	return nil
}

// New wires the services and routes. Middlewares are registered before the
// routes so that every route gets them.
func New(cfg *config.Config, provider *Provider, middlewares []router.Middleware) *App {
	serverCtx, stop := context.WithCancel(context.Background())
	serverCfg := cfg.Server
	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", serverCfg.Port),
		Handler: provider.Router,
		BaseContext: func(_ net.Listener) context.Context {
			return serverCtx
		},
		ReadTimeout:  serverCfg.ReadTimeout.Duration,
		WriteTimeout: serverCfg.WriteTimeout.Duration,
		IdleTimeout:  serverCfg.IdleTimeout.Duration,
	}

	a := &App{
		config:          cfg,
		provider:        provider,
		router:          provider.Router,
		services:        newServices(provider),
		server:          server,
		middlewares:     middlewares,
		stop:            stop,
		shutdownTimeout: serverCfg.ShutdownTimeout.Duration,
	}

	a.registerMiddlewares()
	a.setupRoutes()

	return a
}
