package main

import (
	"github.com/joho/godotenv"

	"github.com/realtorcrm/authsvc/internal/app"
	"github.com/realtorcrm/authsvc/internal/config"
	"github.com/realtorcrm/authsvc/pkg/logger"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log := logger.Init(logger.Options{})
		log.Fatal().Err(err).Msg("config")
	}

	log := logger.Init(logger.Options{Level: cfg.LogLevel, Pretty: cfg.LogPretty})

	if err := app.Run(cfg); err != nil {
		log.Fatal().Err(err).Msg("app")
	}
}
