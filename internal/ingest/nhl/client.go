package nhl

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// DefaultBaseURL is the public NHL API host.
const DefaultBaseURL = "https://api-web.nhle.com"

// LogoResolver maps a team reference to a local raster path, or "" when no
// displayable logo could be produced.
type LogoResolver interface {
	Resolve(ctx context.Context, team TeamRef) string
}

// Client fetches the public NHL schedule feed.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a schedule client. An empty baseURL selects the public API.
// The schedule request itself carries no timeout; cancellation is the
// caller's context.
func NewClient(baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{},
	}
}

// FetchSchedule retrieves the week of schedule data containing date
// (YYYY-MM-DD). The response is consumed as opaque JSON.
func (c *Client) FetchSchedule(ctx context.Context, date string) (map[string]interface{}, error) {
	url := fmt.Sprintf("%s/v1/schedule/%s", c.baseURL, date)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("executing request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("schedule request failed: status %d (body: %s)", resp.StatusCode, truncate(body, 200))
	}

	// Upstream error pages come back as HTML rather than a JSON error object.
	if len(body) > 0 && body[0] == '<' {
		return nil, fmt.Errorf("schedule endpoint returned HTML error page: %s", truncate(body, 200))
	}

	var result map[string]interface{}
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("decoding response: %w (body: %s)", err, truncate(body, 200))
	}

	return result, nil
}

// FetchGames fetches and normalizes the requested day, resolving a cached
// logo for every team encountered. logos may be nil. loc is the display
// timezone; nil means local time.
func (c *Client) FetchGames(ctx context.Context, date string, logos LogoResolver, loc *time.Location) ([]string, []*Game, error) {
	data, err := c.FetchSchedule(ctx, date)
	if err != nil {
		return nil, nil, err
	}

	games := ParseWeek(data, date, loc)
	for _, game := range games {
		if logos == nil {
			continue
		}
		game.AwayLogo = logos.Resolve(ctx, game.Away)
		game.HomeLogo = logos.Resolve(ctx, game.Home)
	}

	lines := make([]string, 0, len(games))
	for _, game := range games {
		lines = append(lines, game.Summary())
	}
	return lines, games, nil
}

func truncate(b []byte, n int) string {
	if len(b) > n {
		b = b[:n]
	}
	return string(b)
}
