package convert

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"image"
	"image/png"
	"os"
	"os/exec"
	"time"

	"github.com/chromedp/chromedp"
	"golang.org/x/image/draw"
)

// chromeBinaries are probed on PATH in order.
var chromeBinaries = []string{"google-chrome", "chromium", "chromium-browser", "chrome"}

// Chrome renders the SVG in a headless browser and screenshots the page.
// Last-resort converter for environments where nothing else works.
type Chrome struct{}

func NewChrome() *Chrome { return &Chrome{} }

func (c *Chrome) Name() string { return "chrome" }

func (c *Chrome) Available() bool {
	for _, bin := range chromeBinaries {
		if _, err := exec.LookPath(bin); err == nil {
			return true
		}
	}
	return false
}

func (c *Chrome) Convert(ctx context.Context, svg []byte, dst string) error {
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-dev-shm-usage", true),
	)
	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx, opts...)
	defer cancelAlloc()

	browserCtx, cancelBrowser := chromedp.NewContext(allocCtx)
	defer cancelBrowser()

	browserCtx, cancelTimeout := context.WithTimeout(browserCtx, 30*time.Second)
	defer cancelTimeout()

	w, h := DocSize(svg)
	url := "data:image/svg+xml;base64," + base64.StdEncoding.EncodeToString(svg)

	var shot []byte
	err := chromedp.Run(browserCtx,
		chromedp.EmulateViewport(int64(w), int64(h)),
		chromedp.Navigate(url),
		chromedp.WaitVisible("svg", chromedp.ByQuery),
		chromedp.CaptureScreenshot(&shot),
	)
	if err != nil {
		return fmt.Errorf("chromedp error: %w", err)
	}

	img, err := png.Decode(bytes.NewReader(shot))
	if err != nil {
		return fmt.Errorf("decoding screenshot: %w", err)
	}

	// Screenshots come back at device-pixel scale; normalize to the document size.
	out := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.CatmullRom.Scale(out, out.Bounds(), img, img.Bounds(), draw.Over, nil)

	f, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("creating %s: %w", dst, err)
	}
	defer f.Close()

	if err := png.Encode(f, out); err != nil {
		os.Remove(dst)
		return fmt.Errorf("encoding png: %w", err)
	}
	return nil
}
