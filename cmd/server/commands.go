package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/snnyvrz/library/internal/app"
	"github.com/snnyvrz/library/internal/config"
	"github.com/snnyvrz/library/internal/db"
	"github.com/snnyvrz/library/internal/logger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var envFile string

var rootCmd = &cobra.Command{
	Use:   "library",
	Short: "Library catalog web application",
	Long: `Library catalog: add authors and books, browse, search and sort the
catalog, and delete books. An author is removed together with their last book.

Running without a subcommand starts the web server.`,
	Version:       app.Version,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runServe,
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Migrate the schema and start the web server",
	RunE:  runServe,
}

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the authors and books tables",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(cmd.Context(), func(ctx context.Context, cfg *config.Config, log *zap.Logger, gdb *gorm.DB) error {
			if err := db.Migrate(gdb); err != nil {
				return err
			}
			log.Info("schema migrated", zap.String("driver", cfg.DBDriver))
			return nil
		})
	},
}

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load a small sample catalog into an empty database",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(cmd.Context(), func(ctx context.Context, cfg *config.Config, log *zap.Logger, gdb *gorm.DB) error {
			if err := db.Migrate(gdb); err != nil {
				return err
			}
			n, err := app.New(cfg, log, gdb).Seed(ctx)
			if err != nil {
				return err
			}
			log.Info("seed finished", zap.Int("books_added", n))
			return nil
		})
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "Env file loaded before reading the environment")
	rootCmd.AddCommand(serveCmd, migrateCmd, seedCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return withDB(ctx, func(ctx context.Context, cfg *config.Config, log *zap.Logger, gdb *gorm.DB) error {
		if err := db.Migrate(gdb); err != nil {
			return err
		}
		return app.New(cfg, log, gdb).Serve(ctx)
	})
}

// withDB loads configuration, builds the logger and opens the database
// around fn, closing both afterwards.
func withDB(ctx context.Context, fn func(context.Context, *config.Config, *zap.Logger, *gorm.DB) error) error {
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, err := config.Load(envFile)
	if err != nil {
		return err
	}

	log, err := logger.New(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	gdb, err := db.Open(cfg, log)
	if err != nil {
		log.Error("database unavailable", zap.Error(err))
		return err
	}
	if sqlDB, err := gdb.DB(); err == nil {
		defer sqlDB.Close()
	}

	return fn(ctx, cfg, log, gdb)
}
