package main

import (
	"context"
	"log"
	"net/http"

	"cogmetrics/adapters/excel"
	"cogmetrics/adapters/markdown"
	"cogmetrics/adapters/postgres"
	"cogmetrics/adapters/sqlitecache"
	"cogmetrics/app"
	"cogmetrics/internal"
	"cogmetrics/internal/config"
	"cogmetrics/internal/errors"
	"cogmetrics/ports"
	"cogmetrics/ui"

	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
)

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger := internal.NewDefaultLogger()

	db, err := initDatabase(cfg)
	if err != nil {
		log.Fatal("Failed to initialize database:", err)
	}
	defer db.Close()

	var cache ports.SnapshotCachePort
	if cfg.Cache.Enabled {
		sc, err := sqlitecache.Open(cfg.Cache.Path)
		if err != nil {
			logger.Warn("snapshot cache unavailable, continuing without it: %v", err)
		} else {
			defer sc.Close()
			cache = sc
		}
	}

	service := app.NewReportService(app.ReportServiceConfig{
		Capture:      postgres.NewCaptureRepository(db),
		Repository:   postgres.NewReportRepository(db),
		Cache:        cache,
		Logger:       logger,
		BatchWorkers: cfg.Report.BatchWorkers,
	})

	reader := postgres.NewReader(db)

	server := ui.NewServer(ui.ServerConfig{
		Service:  service,
		Reader:   reader,
		Renderer: markdown.NewRenderer(),
		Exporter: excel.NewExporter(),
		GinMode:  cfg.Server.GinMode,
	})

	viewer, err := ui.NewApp(ui.AppConfig{Reader: reader})
	if err != nil {
		log.Fatal("Failed to create report viewer:", err)
	}

	// The viewer runs on its own port so one process serves both surfaces
	go func() {
		logger.Info("report viewer listening on :%s", cfg.Server.ViewerPort)
		if err := http.ListenAndServe(":"+cfg.Server.ViewerPort, viewer.Router()); err != nil {
			logger.Error("viewer stopped: %v", err)
		}
	}()

	logger.Info("API listening on :%s", cfg.Server.Port)
	if err := server.Run(cfg.Server.Port); err != nil {
		log.Fatal("Server failed:", err)
	}
}

// initDatabase connects to PostgreSQL and ensures the storage schema
func initDatabase(cfg *config.Config) (*sqlx.DB, error) {
	if cfg.Database.URL == "" {
		return nil, errors.ConfigInvalid("DATABASE_URL is required")
	}

	db, err := sqlx.Connect("postgres", cfg.Database.URL)
	if err != nil {
		return nil, errors.Wrap(err, "failed to connect to database")
	}
	if err := db.Ping(); err != nil {
		return nil, errors.Wrap(err, "failed to ping database")
	}
	if err := postgres.EnsureSchema(context.Background(), db); err != nil {
		return nil, errors.Wrap(err, "schema setup failed")
	}
	return db, nil
}
