package main

import (
	"context"

	"github.com/nekogravitycat/share-it-backend/internal/config"
	"github.com/nekogravitycat/share-it-backend/internal/db"
	"github.com/nekogravitycat/share-it-backend/internal/logging"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		bootLogger := logging.New("info", "json", "unknown")
		bootLogger.Fatal().Err(err).Msg("failed to load config")
	}

	logger := logging.New(cfg.LogLevel, cfg.LogFormat, cfg.AppEnv)

	if err := db.Migrate(context.Background(), cfg.DBDSN); err != nil {
		logger.Fatal().Err(err).Msg("migration failed")
	}
	logger.Info().Msg("migrations applied")
}
