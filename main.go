package main

import (
	"log"

	"github.com/joho/godotenv"

	"tunnelstats/adapters/excel"
	"tunnelstats/app"
	"tunnelstats/domain/table"
	"tunnelstats/internal/config"
	"tunnelstats/ui"
)

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	appConfig, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	service := app.NewAnalysisService(app.Options{
		RequirePosition: appConfig.Analysis.RequirePosition,
		TopCorrelations: appConfig.Analysis.TopCorrelations,
		Rules:           table.DefaultRules(),
	})
	reader := excel.NewDataReader()

	if appConfig.Data.File != "" {
		log.Printf("Using default dataset: %s", appConfig.Data.File)
	}

	server := ui.NewApp(service, reader, appConfig.Data.File)
	log.Fatal(server.Start(":" + appConfig.Server.Port))
}
