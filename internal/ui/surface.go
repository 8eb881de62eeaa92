// Package ui presents one day's schedule, either in a desktop window or as a
// blocking native alert when no windowed surface is available.
package ui

import (
	"context"
	"fmt"
	"time"

	"github.com/fortuna/rinkside/internal/ingest/nhl"
)

// FetchFunc loads summary lines and structured games for a date (YYYY-MM-DD).
type FetchFunc func(ctx context.Context, date string) ([]string, []*nhl.Game, error)

// App bundles everything a surface needs to render schedule data. Lines and
// Games hold the startup fetch; Fetch serves every refresh after that.
type App struct {
	Title       string
	DefaultDate string
	Interval    time.Duration
	LogoDir     string
	Lines       []string
	Games       []*nhl.Game
	Fetch       FetchFunc
}

// Surface is a notification surface: it shows the schedule and blocks until
// the user dismisses it.
type Surface interface {
	Name() string
	Available() bool
	Show(app App) error
}

// Pick selects the display surface once at startup: the windowed view when it
// is usable, otherwise the blocking alert. mode forces "window" or "alert";
// "auto" probes.
func Pick(mode string) (Surface, error) {
	window := newWindowSurface()
	alert := newAlertSurface()

	switch mode {
	case "window":
		if !window.Available() {
			return nil, fmt.Errorf("window surface is not available on this platform")
		}
		return window, nil
	case "alert":
		return alert, nil
	default:
		if window.Available() {
			return window, nil
		}
		return alert, nil
	}
}
