package nhl

import (
	"context"
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"
	"time"
)

const weekFixture = `{
	"gameWeek": [
		{
			"date": "2024-03-01",
			"games": [
				{
					"awayTeam": {"abbrev": "AAA", "score": 3},
					"homeTeam": {"abbrev": "BBB", "score": 2},
					"gameState": "OFF"
				},
				{
					"awayTeam": {"abbrev": "CCC"},
					"homeTeam": {"abbrev": "DDD"},
					"startTimeUTC": "2024-03-01T23:00:00Z"
				}
			]
		}
	]
}`

func TestFetchGamesReturnsLinesAndRecords(t *testing.T) {
	var requestedPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestedPath = r.URL.Path
		w.Write([]byte(weekFixture))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	lines, games, err := client.FetchGames(context.Background(), "2024-03-01", nil, time.UTC)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if requestedPath != "/v1/schedule/2024-03-01" {
		t.Fatalf("unexpected request path %q", requestedPath)
	}
	want := []string{"AAA vs BBB - 3:2", "CCC vs DDD - 11:00 PM"}
	if !reflect.DeepEqual(lines, want) {
		t.Fatalf("unexpected lines: %v", lines)
	}
	if len(games) != 2 {
		t.Fatalf("expected 2 games, got %d", len(games))
	}
	if games[0].Scheduled() || !games[1].Scheduled() {
		t.Fatalf("unexpected classification: %+v", games)
	}
}

func TestFetchGamesIsStableAcrossCalls(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(weekFixture))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	first, _, err := client.FetchGames(context.Background(), "2024-03-01", nil, time.UTC)
	if err != nil {
		t.Fatalf("first fetch: %v", err)
	}
	second, _, err := client.FetchGames(context.Background(), "2024-03-01", nil, time.UTC)
	if err != nil {
		t.Fatalf("second fetch: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("repeat fetch changed output: %v vs %v", first, second)
	}
}

func TestFetchScheduleRejectsHTMLErrorPage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html><body>upstream maintenance</body></html>"))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	if _, err := client.FetchSchedule(context.Background(), "2024-03-01"); err == nil {
		t.Fatal("expected an error for an HTML body")
	}
}

func TestFetchScheduleRejectsNon200(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "not found", http.StatusNotFound)
	}))
	defer server.Close()

	client := NewClient(server.URL)
	if _, err := client.FetchSchedule(context.Background(), "2024-03-01"); err == nil {
		t.Fatal("expected an error for status 404")
	}
}

func TestFetchSchedulePropagatesNetworkFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // nothing is listening anymore

	client := NewClient(server.URL)
	if _, _, err := client.FetchGames(context.Background(), "2024-03-01", nil, time.UTC); err == nil {
		t.Fatal("expected an unreachable endpoint to propagate an error")
	}
}
