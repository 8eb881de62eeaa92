package ui

import (
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/fortuna/rinkside/internal/ingest/nhl"
)

func intp(n int) *int { return &n }

func TestCenterTextScoredGame(t *testing.T) {
	game := &nhl.Game{
		Away:      nhl.TeamRef{Abbrev: "AAA"},
		Home:      nhl.TeamRef{Abbrev: "BBB"},
		AwayScore: intp(3),
		HomeScore: intp(2),
	}
	if got := centerText(game); got != "AAA 3 vs BBB 2" {
		t.Fatalf("unexpected caption: %q", got)
	}
}

func TestCenterTextScheduledGame(t *testing.T) {
	game := &nhl.Game{
		Away:      nhl.TeamRef{Abbrev: "AAA"},
		Home:      nhl.TeamRef{Abbrev: "BBB"},
		StartTime: "07:30 PM",
	}
	if got := centerText(game); got != "AAA @ BBB - 07:30 PM" {
		t.Fatalf("unexpected caption: %q", got)
	}
}

func TestAlertBody(t *testing.T) {
	if got := alertBody("2024-03-01", nil); got != "No games scheduled for 2024-03-01." {
		t.Fatalf("unexpected empty-day body: %q", got)
	}
	got := alertBody("2024-03-01", []string{"AAA vs BBB - 3:2", "CCC vs DDD - TBD"})
	if got != "AAA vs BBB - 3:2\nCCC vs DDD - TBD" {
		t.Fatalf("unexpected body: %q", got)
	}
}

func TestDisplayable(t *testing.T) {
	cases := map[string]bool{
		"":              false,
		"logos/AAA.png": true,
		"logos/AAA.JPG": true,
		"logos/AAA.svg": false,
		"logos/AAA":     false,
	}
	for path, want := range cases {
		if got := displayable(path); got != want {
			t.Fatalf("displayable(%q) = %v, want %v", path, got, want)
		}
	}
}

func TestLoadLogoScalesToRowSize(t *testing.T) {
	path := filepath.Join(t.TempDir(), "AAA.png")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := png.Encode(f, image.NewRGBA(image.Rect(0, 0, 128, 96))); err != nil {
		t.Fatal(err)
	}
	f.Close()

	img, err := loadLogo(path)
	if err != nil {
		t.Fatalf("loadLogo failed: %v", err)
	}
	if b := img.Bounds(); b.Dx() != logoSize || b.Dy() != logoSize {
		t.Fatalf("expected %dx%d logo, got %dx%d", logoSize, logoSize, b.Dx(), b.Dy())
	}
}

func TestLoadLogoRejectsNonRasterPath(t *testing.T) {
	if _, err := loadLogo("logos/AAA.svg"); err == nil {
		t.Fatal("expected an error for a vector path")
	}
	if _, err := loadLogo(""); err == nil {
		t.Fatal("expected an error for an empty path")
	}
}
