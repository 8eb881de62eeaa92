//go:build windows

package ui

import (
	"context"
	"fmt"
	"image"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/lxn/walk"
	. "github.com/lxn/walk/declarative"

	"github.com/fortuna/rinkside/internal/ingest/nhl"
)

// windowSurface is the walk-based desktop view.
type windowSurface struct{}

func newWindowSurface() Surface { return &windowSurface{} }

func (s *windowSurface) Name() string { return "window" }

func (s *windowSurface) Available() bool { return true }

func (s *windowSurface) Show(app App) error {
	var mw *walk.MainWindow
	var dateEdit *walk.LineEdit
	var liveCheck *walk.CheckBox
	var rows *walk.Composite

	state := &refreshState{}

	refresh := func() {
		date := dateEdit.Text()
		_, games, err := app.Fetch(context.Background(), date)
		if err != nil {
			log.Printf("[ui] Warning: refresh failed for %s: %v", date, err)
			return
		}
		mw.SetTitle(fmt.Sprintf("%s - %s", app.Title, date))
		renderRows(rows, games, date)
	}

	// The tick re-arms itself while the toggle stays on. Synchronize keeps
	// every refresh on the UI thread, so a slow fetch blocks that tick
	// instead of racing the widgets.
	var tick func()
	tick = func() {
		mw.Synchronize(func() {
			if !state.enabled {
				return
			}
			refresh()
			state.arm(app.Interval, tick)
		})
	}

	toggleLive := func() {
		if liveCheck.Checked() {
			dateEdit.SetText(time.Now().Format("2006-01-02"))
			refresh()
			state.start(app.Interval, tick)
		} else {
			state.stop()
		}
	}

	err := MainWindow{
		AssignTo: &mw,
		Title:    app.Title,
		MinSize:  Size{Width: 700, Height: 500},
		Layout:   VBox{},
		Children: []Widget{
			Composite{
				Layout: HBox{},
				Children: []Widget{
					Label{Text: "Select Date:"},
					LineEdit{AssignTo: &dateEdit, Text: app.DefaultDate, MaxSize: Size{Width: 110}},
					PushButton{Text: "Refresh", OnClicked: func() { refresh() }},
					CheckBox{AssignTo: &liveCheck, Text: "Live Games", OnCheckedChanged: toggleLive},
					Label{Text: "(Format: YYYY-MM-DD)"},
					HSpacer{},
				},
			},
			ScrollView{
				Layout: VBox{},
				Children: []Widget{
					Composite{AssignTo: &rows, Layout: VBox{}},
				},
			},
			Composite{
				Layout: HBox{},
				Children: []Widget{
					HSpacer{},
					PushButton{Text: "Close", OnClicked: func() { mw.Close() }},
					HSpacer{},
				},
			},
		},
	}.Create()
	if err != nil {
		return fmt.Errorf("creating window: %w", err)
	}

	if brush := loadBackground(app.LogoDir); brush != nil {
		mw.SetBackground(brush)
	}

	mw.SetTitle(fmt.Sprintf("%s - %s", app.Title, app.DefaultDate))
	renderRows(rows, app.Games, app.DefaultDate)

	mw.Run()
	state.stop()
	return nil
}

// renderRows discards every row widget and rebuilds the list. No diffing; a
// full day is at most sixteen games.
func renderRows(container *walk.Composite, games []*nhl.Game, date string) {
	container.SetSuspended(true)
	defer container.SetSuspended(false)

	for container.Children().Len() > 0 {
		container.Children().At(0).Dispose()
	}

	if len(games) == 0 {
		if label, err := walk.NewLabel(container); err == nil {
			label.SetText(fmt.Sprintf("No games scheduled for %s", date))
		}
		return
	}

	for _, game := range games {
		if err := addGameRow(container, game); err != nil {
			log.Printf("[ui] Warning: failed to render game row: %v", err)
		}
	}
}

func addGameRow(parent *walk.Composite, game *nhl.Game) error {
	row, err := walk.NewComposite(parent)
	if err != nil {
		return err
	}
	row.SetLayout(walk.NewHBoxLayout())

	addLogoOrAbbrev(row, game.AwayLogo, game.Away.Abbrev)

	label, err := walk.NewLabel(row)
	if err != nil {
		return err
	}
	label.SetText(centerText(game))
	setFont(label, 14)

	addLogoOrAbbrev(row, game.HomeLogo, game.Home.Abbrev)
	return nil
}

// addLogoOrAbbrev shows the cached logo when it loads, the abbreviation
// label otherwise.
func addLogoOrAbbrev(row *walk.Composite, path, abbrev string) {
	if img, err := loadLogo(path); err == nil {
		if bmp, err := walk.NewBitmapFromImage(img); err == nil {
			if view, err := walk.NewImageView(row); err == nil {
				view.SetImage(bmp)
				return
			}
		}
	}
	if label, err := walk.NewLabel(row); err == nil {
		label.SetText(abbrev)
		setFont(label, 12)
	}
}

func setFont(label *walk.Label, pointSize int) {
	if font, err := walk.NewFont("Segoe UI", pointSize, walk.FontBold); err == nil {
		label.SetFont(font)
	}
}

// loadBackground reads the optional fixed-name background image from the
// logo directory. Missing or broken files just mean no background.
func loadBackground(dir string) walk.Brush {
	f, err := os.Open(filepath.Join(dir, backgroundFile))
	if err != nil {
		return nil
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		log.Printf("[ui] Warning: could not load background image: %v", err)
		return nil
	}
	bmp, err := walk.NewBitmapFromImage(img)
	if err != nil {
		log.Printf("[ui] Warning: could not convert background image: %v", err)
		return nil
	}
	brush, err := walk.NewBitmapBrush(bmp)
	if err != nil {
		log.Printf("[ui] Warning: could not create background brush: %v", err)
		return nil
	}
	return brush
}
