//go:build !windows

package ui

import "errors"

// windowSurface is only implemented on Windows; elsewhere Pick degrades to
// the alert surface.
type windowSurface struct{}

func newWindowSurface() Surface { return &windowSurface{} }

func (s *windowSurface) Name() string { return "window" }

func (s *windowSurface) Available() bool { return false }

func (s *windowSurface) Show(App) error {
	return errors.New("window surface requires the Windows desktop toolkit")
}
