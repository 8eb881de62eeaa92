package convert

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/png"
	"os"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
)

// OKSVG rasterizes in-process with the oksvg renderer.
type OKSVG struct{}

func NewOKSVG() *OKSVG { return &OKSVG{} }

func (o *OKSVG) Name() string { return "oksvg" }

// Available always reports true: the renderer is compiled in.
func (o *OKSVG) Available() bool { return true }

func (o *OKSVG) Convert(ctx context.Context, svg []byte, dst string) error {
	icon, err := oksvg.ReadIconStream(bytes.NewReader(svg))
	if err != nil {
		return fmt.Errorf("parsing svg: %w", err)
	}

	w, h := DocSize(svg)
	icon.SetTarget(0, 0, float64(w), float64(h))

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	scanner := rasterx.NewScannerGV(w, h, img, img.Bounds())
	icon.Draw(rasterx.NewDasher(w, h, scanner), 1)

	out, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("creating %s: %w", dst, err)
	}
	defer out.Close()

	if err := png.Encode(out, img); err != nil {
		os.Remove(dst)
		return fmt.Errorf("encoding png: %w", err)
	}
	return nil
}
