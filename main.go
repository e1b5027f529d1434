package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"gridbayes/adapters/rng"
	"gridbayes/app"
	"gridbayes/internal/config"
	"gridbayes/ui"
)

func main() {
	// .env is optional; real environments set variables directly
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	gin.SetMode(cfg.Server.GinMode)

	service := app.NewInferenceService(rng.NewSeededAdapter(), 4)

	server, err := ui.NewServer(service, cfg.Run)
	if err != nil {
		log.Fatalf("Failed to initialize UI server: %v", err)
	}

	if err := server.Start(cfg.Server.Port); err != nil {
		log.Fatalf("UI server failed: %v", err)
	}
}
