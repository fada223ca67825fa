// Package config loads and validates environment variables at startup.
// Fail-fast: if a required variable is missing, the process exits.
package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config holds all runtime configuration for the KaziLink server.
type Config struct {
	Port                string
	DatabaseURL         string
	JWTSecret           string
	TemplatesGlob       string
	StaticDir           string
	ScrapeIntervalHours int // 0 disables the ingestion scheduler
}

// Load reads environment variables and returns a validated Config.
func Load() (*Config, error) {
	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is required")
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}

	templates := os.Getenv("TEMPLATES_GLOB")
	if templates == "" {
		templates = "web/templates/*.html"
	}

	static := os.Getenv("STATIC_DIR")
	if static == "" {
		static = "web/static"
	}

	interval := 0
	if s := os.Getenv("SCRAPE_INTERVAL_HOURS"); s != "" {
		v, err := strconv.Atoi(s)
		if err != nil || v < 0 {
			return nil, fmt.Errorf("SCRAPE_INTERVAL_HOURS must be a non-negative integer, got %q", s)
		}
		interval = v
	}

	return &Config{
		Port:                port,
		DatabaseURL:         dbURL,
		JWTSecret:           secret,
		TemplatesGlob:       templates,
		StaticDir:           static,
		ScrapeIntervalHours: interval,
	}, nil
}
