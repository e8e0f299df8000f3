package main

import (
	"context"
	"log"

	"cogmetrics/adapters/postgres"
	"cogmetrics/internal/config"
	"cogmetrics/ui"

	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
)

// Read-only viewer entry point.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := sqlx.Connect("postgres", cfg.Database.URL)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}
	defer db.Close()

	if err := postgres.EnsureSchema(context.Background(), db); err != nil {
		log.Fatal("Schema setup failed:", err)
	}

	app, err := ui.NewApp(ui.AppConfig{Reader: postgres.NewReader(db)})
	if err != nil {
		log.Fatal("Failed to create report viewer:", err)
	}

	log.Printf("Report viewer on http://localhost:%s", cfg.Server.ViewerPort)
	log.Fatal(app.Run(cfg.Server.ViewerPort))
}
