package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"garment/cmd"
	"garment/internal/adapters/out/postgres"
	"garment/internal/pkg/logging"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	gorm_logger "gorm.io/gorm/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var envFile string

	root := &cobra.Command{
		Use:          "app",
		Short:        "Garment supermarket: bundle allocation and line loading",
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVar(&envFile, "env-file", ".env", "dotenv file loaded before reading the environment")

	root.AddCommand(
		&cobra.Command{
			Use:   "serve",
			Short: "Run the HTTP API and scheduled jobs",
			RunE: func(c *cobra.Command, _ []string) error {
				return withRuntime(envFile, true, func(configs cmd.Config, db *gorm.DB, logger *zap.Logger) error {
					return serve(c.Context(), configs, db, logger)
				})
			},
		},
		&cobra.Command{
			Use:   "migrate",
			Short: "Create or update the database schema",
			RunE: func(c *cobra.Command, _ []string) error {
				return withRuntime(envFile, false, func(_ cmd.Config, db *gorm.DB, logger *zap.Logger) error {
					if err := postgres.Migrate(c.Context(), db); err != nil {
						return err
					}
					logger.Info("Schema migrated")
					return nil
				})
			},
		},
	)
	return root
}

func withRuntime(envFile string, requireAll bool, run func(cmd.Config, *gorm.DB, *zap.Logger) error) error {
	configs, err := cmd.LoadConfig(envFile)
	if err != nil {
		return err
	}
	if err = configs.Validate(); err != nil && requireAll {
		return err
	}

	logger, err := logging.New(configs.LogLevel, configs.LogFormat)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	db, err := gorm.Open(gorm_postgres.Open(configs.DSN()), &gorm.Config{
		Logger: gorm_logger.Default.LogMode(gorm_logger.Warn),
	})
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	return run(configs, db, logger)
}

func serve(ctx context.Context, configs cmd.Config, db *gorm.DB, logger *zap.Logger) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	app := cmd.NewCompositionRoot(configs, db, logger)

	e, err := app.CreateRouter(ctx)
	if err != nil {
		return err
	}

	jobManager := app.CreateJobManager()
	if err = jobManager.StartAll(); err != nil {
		return err
	}
	defer jobManager.StopAll()

	serverErr := make(chan error, 1)
	go func() {
		logger.Info("HTTP server listening", zap.String("port", configs.HTTPPort))
		serverErr <- e.Start(fmt.Sprintf("0.0.0.0:%s", configs.HTTPPort))
	}()

	select {
	case err = <-serverErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	logger.Info("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return e.Shutdown(shutdownCtx)
}
