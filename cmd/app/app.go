package main

import (
	"os"

	"github.com/viniciuslidington/marketplace-database/internal/app"
	config "github.com/viniciuslidington/marketplace-database/internal/cfg"
	"github.com/viniciuslidington/marketplace-database/pkg/logger"
)

func main() {
	log := logger.NewSlogLogger()

	cfg, err := config.Load(log)
	if err != nil {
		log.Errorf(err, "failed to load config")
		os.Exit(1)
	}

	if err := app.Run(cfg, log); err != nil {
		os.Exit(1)
	}
}
