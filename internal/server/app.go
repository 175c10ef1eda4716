// Package server wires configuration, storage, handlers and middleware
// into the running CRM backend.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/vploshikov/gocrm/internal/server/config"
	"github.com/vploshikov/gocrm/internal/server/handlers"
	"github.com/vploshikov/gocrm/internal/server/middleware"
	"github.com/vploshikov/gocrm/internal/server/storage/sqlite"
)

// loginRateLimit guards the credential endpoints against brute force.
const (
	loginRateLimit  = 20
	loginRateWindow = time.Minute
)

// App is the assembled server: configuration, logger, storage and the
// HTTP stack.
type App struct {
	config  *config.Config
	logger  *slog.Logger
	storage *sqlite.Storage
	handler http.Handler
}

// NewApp builds the application from config: opens the database, runs
// migrations and assembles the routes.
func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {
	logger := newLogger(cfg.LogLevel)

	store, err := sqlite.New(ctx, cfg.DatabasePath)
	if err != nil {
		return nil, fmt.Errorf("storage init: %w", err)
	}

	jwtConfig := handlers.JWTConfig{
		Secret:         []byte(cfg.JWTSecret),
		AccessTokenTTL: cfg.AccessTokenTTL,
	}

	return &App{
		config:  cfg,
		logger:  logger,
		storage: store,
		handler: NewRouter(logger, store, jwtConfig),
	}, nil
}

// NewRouter assembles the full HTTP handler: routes, auth gate on the
// protected resources and the outer middleware chain.
func NewRouter(logger *slog.Logger, store *sqlite.Storage, jwtConfig handlers.JWTConfig) http.Handler {
	authHandler := handlers.NewAuthHandler(logger, store, jwtConfig)
	contactsHandler := handlers.NewContactsHandler(logger, store)
	tasksHandler := handlers.NewTasksHandler(logger, store, store)
	addressesHandler := handlers.NewAddressesHandler(logger, store)
	emailsHandler := handlers.NewEmailsHandler(logger, store)
	healthHandler := handlers.NewHealthHandler(logger, store)

	auth := middleware.Auth(logger, jwtConfig)
	limitLogin := middleware.RateLimit(loginRateLimit, loginRateWindow, logger)

	protected := func(h http.HandlerFunc) http.Handler {
		return auth(h)
	}

	mux := http.NewServeMux()

	mux.Handle("POST /auth/register", limitLogin(http.HandlerFunc(authHandler.Register)))
	mux.Handle("POST /auth/login", limitLogin(http.HandlerFunc(authHandler.Login)))

	mux.Handle("POST /contacts", protected(contactsHandler.Create))
	mux.Handle("GET /contacts", protected(contactsHandler.List))
	mux.Handle("GET /contacts/{id}", protected(contactsHandler.Get))
	mux.Handle("PUT /contacts/{id}", protected(contactsHandler.Update))
	mux.Handle("DELETE /contacts/{id}", protected(contactsHandler.Delete))
	mux.Handle("POST /contacts/{id}/address", protected(contactsHandler.AddAddress))

	mux.Handle("POST /tasks", protected(tasksHandler.Create))
	mux.Handle("GET /tasks", protected(tasksHandler.List))
	mux.Handle("GET /tasks/{id}", protected(tasksHandler.Get))
	mux.Handle("PUT /tasks/{id}", protected(tasksHandler.Update))
	mux.Handle("DELETE /tasks/{id}", protected(tasksHandler.Delete))

	mux.Handle("POST /addresses", protected(addressesHandler.Create))

	mux.Handle("POST /email/send", protected(emailsHandler.Send))
	mux.Handle("GET /email", protected(emailsHandler.List))

	mux.HandleFunc("GET /health", healthHandler.Health)

	var handler http.Handler = mux
	handler = middleware.Logging(logger)(handler)
	handler = middleware.RequestID(handler)
	handler = middleware.Recovery(logger)(handler)

	return handler
}

// Run starts the HTTP server and blocks until the context is canceled
// or SIGINT/SIGTERM arrives, then shuts down gracefully.
func (app *App) Run(ctx context.Context) error {
	ctx, cancel := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	server := &http.Server{
		Addr:              app.config.Address,
		Handler:           app.handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errC := make(chan error, 1)
	go func() {
		app.logger.Info("server listening", "address", app.config.Address)
		errC <- server.ListenAndServe()
	}()

	select {
	case err := <-errC:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
	case <-ctx.Done():
		app.logger.Info("shutting down")

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			app.logger.Error("graceful shutdown failed", "error", err)
		}
	}

	if err := app.storage.Close(); err != nil {
		app.logger.Error("failed to close storage", "error", err)
	}

	return nil
}

// newLogger builds the JSON logger for the given level name.
func newLogger(level string) *slog.Logger {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl = slog.LevelInfo
	}

	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: lvl}))
}
