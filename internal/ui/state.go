package ui

import "time"

// refreshState owns the auto-refresh toggle and its pending timer. All
// transitions happen on the UI thread; the timer callback is expected to
// marshal itself back onto it before touching widgets.
type refreshState struct {
	enabled bool
	timer   *time.Timer
}

// start enables auto-refresh and arms the first tick.
func (s *refreshState) start(interval time.Duration, tick func()) {
	s.enabled = true
	s.arm(interval, tick)
}

// arm schedules the next tick. Called again from the tick itself while the
// toggle stays on.
func (s *refreshState) arm(interval time.Duration, tick func()) {
	s.timer = time.AfterFunc(interval, tick)
}

// stop disables auto-refresh and cancels any pending tick.
func (s *refreshState) stop() {
	s.enabled = false
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
}
