package ui

import (
	"fmt"
	"image"
	"os"
	"strings"

	"github.com/fortuna/rinkside/internal/ingest/nhl"
	"golang.org/x/image/draw"

	_ "image/jpeg"
	_ "image/png"
)

// logoSize is the square edge length of a row logo.
const logoSize = 64

// backgroundFile is the fixed-name optional window background inside the
// logo directory. The spelling is a compatibility contract with existing
// user assets.
const backgroundFile = "backround.jpg"

// centerText is the row caption between the two logos.
func centerText(g *nhl.Game) string {
	if g.Scheduled() {
		return fmt.Sprintf("%s @ %s - %s", g.Away.Abbrev, g.Home.Abbrev, g.StartTime)
	}
	return fmt.Sprintf("%s %d vs %s %d", g.Away.Abbrev, *g.AwayScore, g.Home.Abbrev, *g.HomeScore)
}

// alertBody is the plain-text rendition shown by the alert surface.
func alertBody(date string, lines []string) string {
	if len(lines) == 0 {
		return fmt.Sprintf("No games scheduled for %s.", date)
	}
	return strings.Join(lines, "\n")
}

// displayable reports whether a resolved logo path points at something the
// surface can actually render.
func displayable(path string) bool {
	if path == "" {
		return false
	}
	lower := strings.ToLower(path)
	for _, ext := range []string{".png", ".jpg", ".jpeg"} {
		if strings.HasSuffix(lower, ext) {
			return true
		}
	}
	return false
}

// loadLogo reads a cached raster logo and scales it to the row size.
func loadLogo(path string) (image.Image, error) {
	if !displayable(path) {
		return nil, fmt.Errorf("not a displayable raster: %s", path)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening logo: %w", err)
	}
	defer f.Close()

	src, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decoding logo: %w", err)
	}
	return scaleLogo(src), nil
}

func scaleLogo(src image.Image) image.Image {
	dst := image.NewRGBA(image.Rect(0, 0, logoSize, logoSize))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Over, nil)
	return dst
}
