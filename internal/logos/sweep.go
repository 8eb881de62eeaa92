package logos

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/fortuna/rinkside/internal/logos/convert"
)

// SweepStats counts the outcome of one batch conversion pass.
type SweepStats struct {
	Found     int
	Converted int
	Skipped   int
	Failed    int
}

// Sweep converts every leftover SVG in dir that has no raster counterpart
// yet. Per-file failures are counted, not fatal.
func Sweep(ctx context.Context, dir string, conv convert.Converter) (SweepStats, error) {
	var stats SweepStats

	entries, err := os.ReadDir(dir)
	if err != nil {
		return stats, fmt.Errorf("reading %s: %w", dir, err)
	}

	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, ".svg") {
			continue
		}
		stats.Found++

		base := strings.TrimSuffix(name, ".svg")
		pngPath := filepath.Join(dir, base+".png")
		if _, err := os.Stat(pngPath); err == nil {
			log.Printf("[logos] %s.png already exists, skipping", base)
			stats.Skipped++
			continue
		}

		svg, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			log.Printf("[logos] Failed to read %s: %v", name, err)
			stats.Failed++
			continue
		}

		if err := conv.Convert(ctx, svg, pngPath); err != nil {
			log.Printf("[logos] Failed to convert %s: %v", name, err)
			stats.Failed++
			continue
		}

		log.Printf("[logos] Converted %s -> %s.png", name, base)
		stats.Converted++
	}

	return stats, nil
}
