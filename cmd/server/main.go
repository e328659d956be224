package main

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

	"github.com/nuleaf/source/internal/config"
	"github.com/nuleaf/source/internal/database"
	"github.com/nuleaf/source/internal/handler"
	"github.com/nuleaf/source/internal/middleware"
	"github.com/nuleaf/source/internal/query"
	"github.com/nuleaf/source/internal/repository"
	"github.com/nuleaf/source/internal/service"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Initialize structured logging
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: cfg.SlogLevel(),
	}))
	slog.SetDefault(logger)

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		slog.Error("invalid configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Initialize database connection
	db := database.NewSurrealDB(database.Config{
		Host:      cfg.Database.Host,
		Port:      cfg.Database.Port,
		User:      cfg.Database.User,
		Password:  cfg.Database.Password,
		Namespace: cfg.Database.Namespace,
		Database:  cfg.Database.Database,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	applied, err := openStore(ctx, db, cfg.Database.SchemaPath)
	cancel()
	if err != nil {
		slog.Error("failed to open database",
			slog.String("host", cfg.Database.Host),
			slog.String("schema_path", cfg.Database.SchemaPath),
			slog.String("error", err.Error()),
		)
		os.Exit(1)
	}
	defer func() { _ = db.Close() }()

	slog.Info("connected to database",
		slog.String("host", cfg.Database.Host),
		slog.String("namespace", cfg.Database.Namespace),
		slog.String("database", cfg.Database.Database),
		slog.Int("schema_files", applied),
	)

	resolver := query.NewResolver(cfg.Query.DefaultLimit, cfg.Query.MaxLimit, cfg.Query.StrictSort)

	// Initialize repositories
	eventRepo := repository.NewEventRepository(db)
	postRepo := repository.NewPostRepository(db)
	seminarRepo := repository.NewSeminarRepository(db)
	teamRepo := repository.NewTeamRepository(db)
	userRepo := repository.NewUserRepository(db)

	// Initialize services
	services := handler.Services{
		Events:   service.NewEventService(eventRepo, resolver),
		Posts:    service.NewPostService(postRepo, resolver),
		Seminars: service.NewSeminarService(seminarRepo, resolver),
		Teams:    service.NewTeamService(teamRepo, resolver),
		Users: service.NewUserService(service.UserServiceConfig{
			UserRepo: userRepo,
			TeamRepo: teamRepo,
			Resolver: resolver,
		}),
	}

	// Create router and register routes
	mux := http.NewServeMux()
	handler.Register(mux, services, handler.NewHealthHandler(db))

	// Apply global middleware
	wrapped := middleware.Chain(
		mux,
		middleware.RequestID,
		middleware.Logger,
		middleware.Recovery,
		middleware.CORS(cfg.Server.AllowedOrigins),
		middleware.Compress,
	)

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      wrapped,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  120 * time.Second,
	}

	// Start server in goroutine
	serverErr := make(chan error, 1)
	go func() {
		slog.Info("starting server",
			slog.String("port", cfg.Server.Port),
			slog.String("env", cfg.Server.Env),
		)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-quit:
		slog.Info("shutting down server...", slog.String("signal", sig.String()))
	case err := <-serverErr:
		slog.Error("server error", slog.String("error", err.Error()))
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("server forced to shutdown", slog.String("error", err.Error()))
	}

	slog.Info("server exited")
}

// openStore connects db and applies the schema scripts found in
// schemaPath. The connection is closed again when the schema cannot be
// applied, since callers exit without running deferred calls.
func openStore(ctx context.Context, db database.Database, schemaPath string) (int, error) {
	if err := db.Connect(ctx); err != nil {
		return 0, fmt.Errorf("connecting: %w", err)
	}

	scripts, err := database.LoadSchema(schemaPath)
	if err == nil {
		err = database.ApplySchema(ctx, db, scripts)
	}
	if err != nil {
		_ = db.Close()
		return 0, fmt.Errorf("applying schema: %w", err)
	}
	return len(scripts), nil
}
