package main

import (
	"context"
	"log"

	"cogmetrics/adapters/excel"
	"cogmetrics/adapters/markdown"
	"cogmetrics/adapters/postgres"
	"cogmetrics/app"
	"cogmetrics/internal"
	"cogmetrics/internal/config"
	"cogmetrics/ui"

	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
)

// API-only entry point: no HTML viewer, no snapshot cache.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	logger := internal.NewDefaultLogger()

	db, err := sqlx.Connect("postgres", cfg.Database.URL)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}
	defer db.Close()

	if err := postgres.EnsureSchema(context.Background(), db); err != nil {
		log.Fatal("Schema setup failed:", err)
	}

	service := app.NewReportService(app.ReportServiceConfig{
		Capture:      postgres.NewCaptureRepository(db),
		Repository:   postgres.NewReportRepository(db),
		Logger:       logger,
		BatchWorkers: cfg.Report.BatchWorkers,
	})

	server := ui.NewServer(ui.ServerConfig{
		Service:  service,
		Reader:   postgres.NewReader(db),
		Renderer: markdown.NewRenderer(),
		Exporter: excel.NewExporter(),
		GinMode:  cfg.Server.GinMode,
	})

	logger.Info("API listening on :%s", cfg.Server.Port)
	if err := server.Run(cfg.Server.Port); err != nil {
		log.Fatal("Server failed:", err)
	}
}
