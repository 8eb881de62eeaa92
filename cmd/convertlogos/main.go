// Command convertlogos is an offline maintenance pass over the logo cache:
// every leftover SVG without a raster counterpart gets converted with the
// first available converter.
package main

import (
	"context"
	"log"
	"os"

	"github.com/fortuna/rinkside/internal/config"
	"github.com/fortuna/rinkside/internal/logos"
	"github.com/fortuna/rinkside/internal/logos/convert"
)

func main() {
	log.Println("NHL Logo Converter - SVG to PNG")

	cfg := config.LoadFromEnv()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	converters := convert.All()
	if len(converters) == 0 {
		log.Println("No SVG converter available!")
		log.Println("Install rsvg-convert or a Chrome/Chromium browser and retry.")
		os.Exit(1)
	}
	conv := converters[0]
	log.Printf("Using %s for conversion...", conv.Name())

	stats, err := logos.Sweep(context.Background(), cfg.LogoDir, conv)
	if err != nil {
		log.Fatalf("Sweep failed: %v", err)
	}

	if stats.Found == 0 {
		log.Println("No SVG files found in logo directory.")
		return
	}

	log.Printf("Conversion complete!")
	log.Printf("  Converted: %d", stats.Converted)
	log.Printf("  Skipped:   %d", stats.Skipped)
	log.Printf("  Failed:    %d", stats.Failed)
}
