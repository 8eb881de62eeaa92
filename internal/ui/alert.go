package ui

import "fmt"

// alertSurface shows one blocking native message box and exits. It is the
// fallback when no windowed surface is available.
type alertSurface struct{}

func newAlertSurface() Surface { return &alertSurface{} }

func (s *alertSurface) Name() string { return "alert" }

func (s *alertSurface) Available() bool { return true }

func (s *alertSurface) Show(app App) error {
	title := fmt.Sprintf("%s %s", app.Title, app.DefaultDate)
	return showAlert(title, alertBody(app.DefaultDate, app.Lines))
}
