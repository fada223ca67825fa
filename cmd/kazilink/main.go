package main

import (
	"context"
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/b1aiirrr/KaziLink/internal/config"
	"github.com/b1aiirrr/KaziLink/internal/database"
	"github.com/b1aiirrr/KaziLink/internal/scheduler"
	"github.com/b1aiirrr/KaziLink/internal/scraper"
	"github.com/b1aiirrr/KaziLink/internal/services"
)

func main() {
	// A missing .env is fine in production; variables come from the host.
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("loading .env: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	ctx := context.Background()
	db, err := database.NewPostgres(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer db.Close()

	if cfg.ScrapeIntervalHours > 0 {
		worker := scraper.NewWorker(db,
			scraper.NewBrighterMondayFetcher(),
			scraper.NewMyJobMagFetcher(),
		)
		sched := scheduler.New(worker, cfg.ScrapeIntervalHours)
		if err := sched.Start(ctx); err != nil {
			log.Fatalf("scheduler: %v", err)
		}
		defer sched.Stop()
	}

	svc := services.New(db, cfg)
	if err := svc.Register(); err != nil {
		log.Fatalf("server: %v", err)
	}
}
