package main

import (
	"context"

	"github.com/peoplehub/hr-experience-api/internal/infrastructure/db/mysql"
	"github.com/peoplehub/hr-experience-api/internal/pkg/config"
	"github.com/peoplehub/hr-experience-api/pkg/logger"
)

func main() {
	cfg := config.Load()
	log := logger.Init(logger.Options{Level: cfg.LogLevel, Pretty: true})

	db, err := mysql.Connect(context.Background(), mysql.Config{DSN: cfg.MySQL.DSN})
	if err != nil {
		log.Fatal().Err(err).Msg("mysql connection failed")
	}

	if err := mysql.Migrate(db); err != nil {
		log.Fatal().Err(err).Msg("migration failed")
	}
	log.Info().Msg("migration completed")
}
