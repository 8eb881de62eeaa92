package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/fortuna/rinkside/internal/config"
	"github.com/fortuna/rinkside/internal/ingest/nhl"
	"github.com/fortuna/rinkside/internal/logos"
	"github.com/fortuna/rinkside/internal/logos/convert"
	"github.com/fortuna/rinkside/internal/ui"
)

const (
	appName    = "rinkside"
	appVersion = "1.0.0"
)

func main() {
	log.Printf("Starting %s v%s - NHL Scores", appName, appVersion)

	cfg := config.LoadFromEnv()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	if err := os.MkdirAll(cfg.LogoDir, 0o755); err != nil {
		log.Fatalf("Failed to create logo cache dir %s: %v", cfg.LogoDir, err)
	}

	converters := convert.Resolvers()
	for _, c := range converters {
		log.Printf("✓ SVG converter available: %s", c.Name())
	}

	client := nhl.NewClient(cfg.APIBase)
	resolver := logos.NewResolver(cfg.LogoDir, converters)

	fetch := func(ctx context.Context, date string) ([]string, []*nhl.Game, error) {
		return client.FetchGames(ctx, date, resolver, time.Local)
	}

	// Yesterday's slate is the most common thing to check.
	date := time.Now().AddDate(0, 0, -1).Format("2006-01-02")
	log.Printf("Fetching schedule for %s", date)

	lines, games, err := fetch(context.Background(), date)
	if err != nil {
		log.Fatalf("Failed to fetch schedule: %v", err)
	}
	if len(lines) == 0 {
		log.Printf("No games scheduled for %s.", date)
	}

	surface, err := ui.Pick(cfg.Surface)
	if err != nil {
		log.Fatalf("No display surface: %v", err)
	}
	log.Printf("✓ Using %s surface", surface.Name())

	app := ui.App{
		Title:       "NHL Scores",
		DefaultDate: date,
		Interval:    cfg.GetRefreshInterval(),
		LogoDir:     cfg.LogoDir,
		Lines:       lines,
		Games:       games,
		Fetch:       fetch,
	}
	if err := surface.Show(app); err != nil {
		log.Fatalf("Display error: %v", err)
	}
}
