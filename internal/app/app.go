// Package app wires configuration, services and the HTTP transport
// into a runnable application.
package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/render"

	"studentpulse/internal/config"
	apierrors "studentpulse/internal/errors"
	"studentpulse/internal/normalization"
	"studentpulse/internal/services"
	handlers "studentpulse/internal/transport/http"
	"studentpulse/pkg/contracts"
)

// Application is the main application container.
type Application struct {
	Config         *config.Config
	Logger         *slog.Logger
	Router         *chi.Mux
	Server         *http.Server
	RangeStore     *normalization.RangeStore
	StudentService *services.StudentService
}

// New builds the application from configuration.
func New(cfg *config.Config) (*Application, error) {
	logger := newLogger(cfg.Logging)

	ranges := normalization.NewRangeStore()
	for kind, scoreRange := range cfg.NormalizationOverrides() {
		if err := ranges.Set(kind, scoreRange); err != nil {
			return nil, fmt.Errorf("apply normalization override: %w", err)
		}
	}

	app := &Application{
		Config:         cfg,
		Logger:         logger,
		RangeStore:     ranges,
		StudentService: services.NewStudentService(logger, ranges),
	}
	app.Router = app.setupRouter()
	app.Server = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      app.Router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}
	return app, nil
}

func newLogger(cfg config.LoggingConfig) *slog.Logger {
	var level slog.Level
	switch cfg.Level {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	if cfg.Format == "text" {
		handler = slog.NewTextHandler(os.Stdout, opts)
	} else {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	}
	logger := slog.New(handler)
	slog.SetDefault(logger)
	return logger
}

func (a *Application) setupRouter() *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: a.Config.CORS.AllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "PUT", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}))

	errorHandler := apierrors.NewErrorHandler(a.Logger)
	studentHandler := handlers.NewStudentHandler(a.StudentService, a.Logger, errorHandler, a.Config.Upload.MaxBytes)
	configHandler := handlers.NewConfigHandler(a.RangeStore, a.Logger, errorHandler)

	r.Route("/api", func(r chi.Router) {
		r.Mount("/", studentHandler.Routes())
		r.Mount("/config", configHandler.Routes())
		r.Get("/health", a.handleHealth)
		r.Get("/version", a.handleVersion)
	})

	return r
}

func (a *Application) handleHealth(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, map[string]string{"status": "ok"})
}

func (a *Application) handleVersion(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, contracts.GetVersionInfo())
}

// Run starts the HTTP server and blocks until the context is canceled
// or a shutdown signal arrives, then drains connections.
func (a *Application) Run(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		a.Logger.Info("server starting",
			slog.String("version", contracts.Version),
			slog.Int("port", a.Config.Server.Port))
		if err := a.Server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("server error: %w", err)
	case <-ctx.Done():
	}

	a.Logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.Config.Server.ShutdownTimeout)
	defer cancel()
	if err := a.Server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
