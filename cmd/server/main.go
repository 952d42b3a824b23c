// Command server runs the ServiScore identity API.
package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/serviscore/serviscore-api/internal/api"
	"github.com/serviscore/serviscore-api/internal/api/middleware"
	"github.com/serviscore/serviscore-api/internal/config"
	"github.com/serviscore/serviscore-api/internal/platform/logger"
	"github.com/serviscore/serviscore-api/internal/platform/postgres"
	"github.com/serviscore/serviscore-api/internal/service"
	"github.com/serviscore/serviscore-api/internal/service/auth"
)

func main() {
	if err := run(); err != nil {
		slog.Error("Server exited with error", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	log, err := logger.Setup(cfg.Server)
	if err != nil {
		return fmt.Errorf("failed to set up logger: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := sql.Open("pgx", cfg.Database.URL)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer func() {
		if cerr := db.Close(); cerr != nil {
			log.Warn("Failed to close database", slog.String("error", cerr.Error()))
		}
	}()

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := postgres.Migrate(ctx, db); err != nil {
		return err
	}
	log.Info("Database migrations applied")

	hasher := auth.NewBcryptHasher(cfg.Auth.BcryptCost)

	credentialStore := postgres.NewPostgresCredentialStore(db, hasher, log)
	profileStore := postgres.NewPostgresProfileStore(db, log)
	roleStore := postgres.NewPostgresRoleStore(db, log)

	jwtService, err := auth.NewJWTService(cfg.Auth)
	if err != nil {
		return fmt.Errorf("failed to create JWT service: %w", err)
	}

	registrationService := service.NewRegistrationService(credentialStore, profileStore, log)
	authenticator := auth.NewAuthenticator(credentialStore, hasher, jwtService, log)

	router := api.NewRouter(api.RouterDeps{
		AuthHandler:       api.NewAuthHandler(registrationService, authenticator),
		CredentialHandler: api.NewCredentialHandler(credentialStore),
		ProfileHandler:    api.NewProfileHandler(profileStore),
		RoleHandler:       api.NewRoleHandler(roleStore),
		AuthMiddleware:    middleware.NewAuthMiddleware(jwtService, credentialStore),
	})

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("Server starting", slog.Int("port", cfg.Server.Port))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("server failed: %w", err)
	case <-ctx.Done():
	}

	log.Info("Shutdown signal received, draining connections")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}

	log.Info("Server stopped")
	return nil
}
