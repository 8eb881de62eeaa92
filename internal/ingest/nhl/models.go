package nhl

import "fmt"

// TeamRef identifies a team in the schedule feed together with its logo sources.
type TeamRef struct {
	Abbrev   string
	Logo     string
	DarkLogo string
}

// LogoURL returns the preferred logo source. The dark variant renders better
// on light backgrounds, so it wins when present.
func (t TeamRef) LogoURL() string {
	if t.DarkLogo != "" {
		return t.DarkLogo
	}
	return t.Logo
}

// Game is one normalized schedule entry. Built fresh per fetch and never
// mutated afterwards.
type Game struct {
	Away      TeamRef
	Home      TeamRef
	AwayScore *int
	HomeScore *int
	GameState string

	// StartTime is the localized display time for upcoming games, "TBD" when
	// the feed's timestamp is missing or unparsable. Empty for scored games.
	StartTime string

	// AwayLogo/HomeLogo are cached raster paths, "" when no logo resolved.
	AwayLogo string
	HomeLogo string
}

// Scheduled reports whether the game is still upcoming. A game counts as
// scored only when both sides carry a score; a legitimate 0 is a score.
func (g *Game) Scheduled() bool {
	return g.AwayScore == nil || g.HomeScore == nil
}

// Summary renders the canonical one-line form of the game.
func (g *Game) Summary() string {
	if g.Scheduled() {
		return fmt.Sprintf("%s vs %s - %s", g.Away.Abbrev, g.Home.Abbrev, g.StartTime)
	}
	return fmt.Sprintf("%s vs %s - %d:%d", g.Away.Abbrev, g.Home.Abbrev, *g.AwayScore, *g.HomeScore)
}
