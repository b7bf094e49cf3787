package server

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"helpdesk/internal/infrastructure/auth"
	"helpdesk/internal/infrastructure/config"
	"helpdesk/internal/infrastructure/database"
	"helpdesk/internal/infrastructure/migration"
	"helpdesk/internal/infrastructure/permission"
	httpServer "helpdesk/internal/interfaces/http"
	"helpdesk/internal/shared/logger"
)

var (
	env      string
	skipSeed bool
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "server",
		Short: "Start the HTTP server",
		Long:  `Start the helpdesk HTTP server with the specified configuration.`,
		RunE:  run,
	}

	cmd.Flags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")
	cmd.Flags().BoolVar(&skipSeed, "skip-seed", false, "Skip seeding reserved accounts, groups, and categories on startup")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	if envVar := os.Getenv("ENV"); envVar != "" {
		env = envVar
	}

	cfg, err := config.Load(env)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	cfg.Server.Mode = mapEnvToGinMode(env)

	if err := logger.Init(&cfg.Logger, cfg.Server.Mode); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer logger.Sync()

	logger.Info("starting server", "environment", env)

	gin.SetMode(cfg.Server.Mode)
	gin.DefaultWriter = io.Discard

	if err := database.Init(&cfg.Database); err != nil {
		logger.Fatal("failed to initialize database", "error", err)
	}
	defer database.Close()

	log := logger.NewLogger(logger.Get())

	if err := prepareDatabase(cfg, log); err != nil {
		logger.Fatal("database preparation failed", "error", err)
	}

	container, err := httpServer.NewContainer(cfg, database.Get(), log)
	if err != nil {
		logger.Fatal("failed to build container", "error", err)
	}
	defer container.Shutdown()

	if err := container.InitializeEmail(cmd.Context()); err != nil {
		logger.Error("email service initialization failed, sends disabled until settings are fixed", "error", err)
	}

	srv := &http.Server{
		Addr:         cfg.Server.GetAddr(),
		Handler:      container.Engine(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("server starting", "address", cfg.Server.GetAddr(), "mode", cfg.Server.Mode)

		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("failed to start server", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
		return err
	}

	logger.Info("server exited gracefully")
	return nil
}

// prepareDatabase migrates the schema, seeds the reserved rows, and
// mirrors stored grants into casbin so the enforcer starts warm.
func prepareDatabase(cfg *config.Config, log logger.Interface) error {
	manager := migration.NewManager(env)
	if err := manager.Migrate(database.Get(), migration.AutoMigrateModels()...); err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}

	if !skipSeed {
		adminPassword := os.Getenv("HELPDESK_ADMIN_PASSWORD")
		if adminPassword == "" {
			adminPassword = "admin"
		}
		hasher := auth.NewBcryptPasswordHasher(cfg.Auth.Password.BcryptCost)
		hash, err := hasher.Hash(adminPassword)
		if err != nil {
			return fmt.Errorf("failed to hash admin password: %w", err)
		}
		if err := migration.NewSeeder(database.Get(), log).Seed(hash); err != nil {
			return fmt.Errorf("seeding failed: %w", err)
		}
	}

	if err := permission.NewPermissionSync(database.Get(), log).SyncToCasbin(); err != nil {
		return fmt.Errorf("permission sync failed: %w", err)
	}

	return nil
}

func mapEnvToGinMode(environment string) string {
	switch environment {
	case "production", "prod":
		return "release"
	case "test", "testing":
		return "test"
	default:
		return "debug"
	}
}
