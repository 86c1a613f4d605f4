package main

import (
	"poolhire/config"
	"poolhire/di"
	"poolhire/helper"
	"poolhire/shared/logger"

	"github.com/rs/zerolog/log"
)

// @title Poolhire API
// @version 1.0
// @description Private pool rental marketplace: pricing, bookings, Stripe payments and CRM availability sync.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg := config.Get()

	logger.Setup(cfg, "api")

	if cfg.DB.Postgres.AutoMigrate {
		if err := helper.Up(cfg); err != nil {
			log.Fatal().Err(err).Msg("Failed to run database migrations")
		}
	}

	http := di.InitializeService()
	http.Serve()
}
