package main

import (
	"os"
	"poolhire/config"
	"poolhire/helper"
	"poolhire/shared/logger"

	"github.com/rs/zerolog/log"
)

const argLength = 2

func main() {
	cfg := config.Get()
	logger.Setup(cfg, "migrate")

	if len(os.Args) < argLength {
		log.Fatal().Msg("usage: migrate up|down|step-up|drop|version")
	}

	if err := helper.Runner(cfg, os.Args[1]); err != nil {
		log.Fatal().Err(err).Msg("migration failed")
	}
}
