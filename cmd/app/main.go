package main

import (
	"os"

	"hotelboard/config"
	"hotelboard/di"
	"hotelboard/helper"
	"hotelboard/shared/logger"

	"github.com/rs/zerolog/log"
)

// @title Hotel Board API
// @version 1.0
// @description Room availability board for hotel front desks.
// @BasePath /
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
func main() {
	cfg := config.Get()

	logger.InitLogger()
	logger.SetOutput(cfg, os.Stdout)

	logger.SetLogLevel(cfg)

	if cfg.DB.Postgres.AutoMigrate {
		if err := helper.Up(cfg); err != nil {
			log.Fatal().Err(err).Msg("Failed to run database migrations")
		}
	}

	http := di.InitializeService()
	http.Serve()
}
