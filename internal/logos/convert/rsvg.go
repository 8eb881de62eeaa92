package convert

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strconv"
)

// Rsvg shells out to the rsvg-convert binary when it is installed.
type Rsvg struct {
	bin string
}

func NewRsvg() *Rsvg { return &Rsvg{bin: "rsvg-convert"} }

func (r *Rsvg) Name() string { return "rsvg-convert" }

func (r *Rsvg) Available() bool {
	_, err := exec.LookPath(r.bin)
	return err == nil
}

func (r *Rsvg) Convert(ctx context.Context, svg []byte, dst string) error {
	w, h := DocSize(svg)

	cmd := exec.CommandContext(ctx, r.bin,
		"--format", "png",
		"--width", strconv.Itoa(w),
		"--height", strconv.Itoa(h),
		"--output", dst,
	)
	cmd.Stdin = bytes.NewReader(svg)

	if output, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("rsvg-convert failed: %w (output: %s)", err, string(output))
	}
	return nil
}
