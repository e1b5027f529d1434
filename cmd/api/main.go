package main

import (
	"log"

	"github.com/joho/godotenv"

	"gridbayes/adapters/api"
	"gridbayes/adapters/excel"
	"gridbayes/adapters/rng"
	"gridbayes/app"
	"gridbayes/internal/config"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	service := app.NewInferenceService(rng.NewSeededAdapter(), 8)
	server := api.NewServer(service, excel.NewWorkbookExporter())

	if err := server.Start(cfg.Server.Port); err != nil {
		log.Fatalf("API server failed: %v", err)
	}
}
