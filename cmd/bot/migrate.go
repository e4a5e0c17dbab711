package main

import (
	"context"
	"fmt"

	"github.com/diegoclair/channel-gatekeeper/internal/config"
	"github.com/diegoclair/channel-gatekeeper/internal/database"
	"github.com/diegoclair/channel-gatekeeper/migrator/sqlite"
	"github.com/diegoclair/channel-gatekeeper/pkg/logger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newMigrateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply database migrations and exit",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}

			log, err := logger.New(cfg.Log)
			if err != nil {
				return err
			}
			defer log.Sync()

			db, err := openDatabase(cmd.Context(), cfg.Database.Path, log)
			if err != nil {
				return err
			}
			return db.Close()
		},
	}
}

// openDatabase opens the store and brings its schema up to date.
func openDatabase(ctx context.Context, path string, log *zap.Logger) (*database.DB, error) {
	db, err := database.New(path)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	log.Info("running migrations", zap.String("path", path))
	if err := sqlite.Migrate(db.DB()); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	version, err := db.SchemaVersion(ctx)
	if err != nil {
		db.Close()
		return nil, err
	}
	if version != sqlite.SchemaVersion {
		log.Warn("schema version differs from the one this build expects",
			zap.Int("found", version),
			zap.Int("expected", sqlite.SchemaVersion),
		)
	}
	log.Info("migrations completed", zap.Int("schema_version", version))

	return db, nil
}
