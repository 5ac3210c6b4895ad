package main

import (
	"tripdesk/config"
	"tripdesk/di"
	"tripdesk/helper"
	"tripdesk/shared/logger"

	"github.com/rs/zerolog/log"
)

// @title Tripdesk API
// @version 1.0
// @description B2B travel sales engine: requests, quotations, approvals, bookings and payments.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	if cfg.DB.Postgres.AutoMigrate {
		if err := helper.Up(cfg); err != nil {
			log.Fatal().Err(err).Msg("Failed to run migrations")
		}
	}

	http, err := di.InitializeService()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize service")
	}

	http.Serve()
}
