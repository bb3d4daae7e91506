package lichess

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
)

// Client handles HTTP communication with the game export API.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a new export API client.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{},
	}
}

// GameBatch is the raw response for one export request. Field absence is
// significant downstream, so every leaf is a pointer.
type GameBatch struct {
	Games []RawGame `json:"games"`
}

type RawGame struct {
	ID      *string     `json:"id"`
	Players *RawPlayers `json:"players"`
	Moves   *string     `json:"moves"`
	Status  *string     `json:"status"`
}

type RawPlayers struct {
	White *RawSide `json:"white"`
	Black *RawSide `json:"black"`
}

type RawSide struct {
	User *RawUser `json:"user"`
}

type RawUser struct {
	Name *string `json:"name"`
}

// FetchRecentGames requests up to limit of the player's most recent games.
// One request, no retries; transport errors and non-2xx statuses both come
// back as errors with no batch.
func (c *Client) FetchRecentGames(ctx context.Context, username string, limit int) (*GameBatch, error) {
	if limit < 1 {
		return nil, fmt.Errorf("limit must be positive, got %d", limit)
	}

	reqURL := fmt.Sprintf("%s/games/user/%s?max=%d", c.baseURL, url.PathEscape(username), limit)

	httpReq, err := http.NewRequestWithContext(ctx, "GET", reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("unexpected status %d: %s", resp.StatusCode, string(body))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	var batch GameBatch
	if err := json.Unmarshal(body, &batch); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}

	return &batch, nil
}
