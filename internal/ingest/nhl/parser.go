package nhl

import (
	"log"
	"time"
)

// timePlaceholder replaces start times the feed omits or mangles.
const timePlaceholder = "TBD"

// ParseWeek normalizes the schedule response down to the single requested
// day. The endpoint returns a whole game week, so days that do not match
// date exactly are dropped. Malformed game entries are logged and skipped
// rather than failing the fetch.
func ParseWeek(data map[string]interface{}, date string, loc *time.Location) []*Game {
	if loc == nil {
		loc = time.Local
	}

	games := []*Game{}
	for _, dayInterface := range extractArray(data, "gameWeek") {
		day, ok := dayInterface.(map[string]interface{})
		if !ok {
			continue
		}
		if extractString(day, "date") != date {
			continue
		}

		for _, gameInterface := range extractArray(day, "games") {
			entry, ok := gameInterface.(map[string]interface{})
			if !ok {
				continue
			}
			game := parseGame(entry, loc)
			if game == nil {
				log.Printf("[nhl-parser] Warning: skipping game entry without team abbreviations")
				continue
			}
			games = append(games, game)
		}
	}
	return games
}

func parseGame(entry map[string]interface{}, loc *time.Location) *Game {
	awayTeam := extractMap(entry, "awayTeam")
	homeTeam := extractMap(entry, "homeTeam")

	away := parseTeam(awayTeam)
	home := parseTeam(homeTeam)
	if away.Abbrev == "" || home.Abbrev == "" {
		return nil
	}

	game := &Game{
		Away:      away,
		Home:      home,
		AwayScore: extractOptionalInt(awayTeam, "score"),
		HomeScore: extractOptionalInt(homeTeam, "score"),
		GameState: extractString(entry, "gameState"),
	}

	if game.Scheduled() {
		game.StartTime = displayTime(extractString(entry, "startTimeUTC"), loc)
	}
	return game
}

func parseTeam(team map[string]interface{}) TeamRef {
	return TeamRef{
		Abbrev:   extractString(team, "abbrev"),
		Logo:     extractString(team, "logo"),
		DarkLogo: extractString(team, "darkLogo"),
	}
}

// displayTime converts a UTC timestamp to a 12-hour local clock string,
// degrading to the placeholder instead of failing the whole fetch.
func displayTime(raw string, loc *time.Location) string {
	if raw == "" {
		return timePlaceholder
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return timePlaceholder
	}
	return t.In(loc).Format("03:04 PM")
}

// Helper functions

func extractString(m map[string]interface{}, key string) string {
	if v, ok := m[key]; ok {
		if str, ok := v.(string); ok {
			return str
		}
	}
	return ""
}

func extractMap(m map[string]interface{}, key string) map[string]interface{} {
	if v, ok := m[key]; ok {
		if mapVal, ok := v.(map[string]interface{}); ok {
			return mapVal
		}
	}
	return map[string]interface{}{}
}

func extractArray(m map[string]interface{}, key string) []interface{} {
	if v, ok := m[key]; ok {
		if arrVal, ok := v.([]interface{}); ok {
			return arrVal
		}
	}
	return []interface{}{}
}

// extractOptionalInt distinguishes an absent score from a real 0.
func extractOptionalInt(m map[string]interface{}, key string) *int {
	v, ok := m[key]
	if !ok {
		return nil
	}
	f, ok := v.(float64)
	if !ok {
		return nil
	}
	n := int(f)
	return &n
}
