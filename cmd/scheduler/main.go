package main

import (
	"poolhire/config"
	"poolhire/di"
	"poolhire/shared/logger"
)

func main() {
	cfg := config.Get()

	logger.Setup(cfg, "scheduler")

	scheduler := di.InitializeScheduler()
	scheduler.Run()
}
