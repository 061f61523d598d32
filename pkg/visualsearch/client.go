package visualsearch

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const (
	searchEndpoint = "https://api.dribbble.com/v2/search/shots"
	pageSize       = 30

	relayTimeout      = 5 * time.Second
	relayPollInterval = 100 * time.Millisecond
)

// Shot is one search result as the provider returns it.
type Shot struct {
	Id     int64  `json:"id"`
	Title  string `json:"title"`
	Images struct {
		Normal string `json:"normal"`
		HiDPI  string `json:"hidpi,omitempty"`
	} `json:"images"`
	HTMLURL string `json:"html_url"`
}

type providerError struct {
	Message string `json:"message"`
}

// Client searches the shots provider for visual references through a relay.
type Client struct {
	relay Relay
	token string

	// Overridable in tests so the not-ready path doesn't wait 5 seconds.
	relayTimeout      time.Duration
	relayPollInterval time.Duration
}

func NewClient(relay Relay, token string) *Client {
	return &Client{
		relay:             relay,
		token:             token,
		relayTimeout:      relayTimeout,
		relayPollInterval: relayPollInterval,
	}
}

// Search returns ranked shots for a free-text query. A blank query is an
// explicit short-circuit: empty result set, no relay call, no error.
func (c *Client) Search(ctx context.Context, query string) ([]*Shot, error) {
	if strings.TrimSpace(query) == "" {
		return []*Shot{}, nil
	}

	if err := AwaitRelay(ctx, c.relay, c.relayTimeout, c.relayPollInterval); err != nil {
		return nil, err
	}

	endpoint := fmt.Sprintf("%s?q=%s&per_page=%d", searchEndpoint, url.QueryEscape(query), pageSize)
	res, err := c.relay.Fetch(ctx, endpoint, map[string]string{
		"Authorization": "Bearer " + c.token,
	})
	if err != nil {
		return nil, err
	}

	if !res.Ok {
		// Best-effort extraction of the provider's own message
		var perr providerError
		if jsonErr := res.JSON(&perr); jsonErr == nil && perr.Message != "" {
			return nil, fmt.Errorf("%s", perr.Message)
		}
		return nil, fmt.Errorf("failed to fetch shots. Status: %d %s", res.Status, http.StatusText(res.Status))
	}

	var shots []*Shot
	if err := res.JSON(&shots); err != nil {
		return nil, fmt.Errorf("unmarshal shots: %w", err)
	}
	return shots, nil
}
