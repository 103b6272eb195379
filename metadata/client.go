// Package metadata is the client for the external show-metadata API used to
// enrich feed rows with show titles and genres.
package metadata

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"
)

// ErrShowNotFound reports an unknown show ID.
var ErrShowNotFound = errors.New("show not found")

// Show is the subset of the metadata API's show record this service reads.
type Show struct {
	ID     string   `json:"id"`
	Title  string   `json:"title"`
	Genres []string `json:"genres"`
}

// HTTPClient interface for making HTTP requests (allows injection for testing).
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// ClientOption configures the Client.
type ClientOption func(*Client)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(httpClient HTTPClient) ClientOption {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// Client talks to the show-metadata API. The access token lives in the
// injected TokenCache.
type Client struct {
	httpClient HTTPClient
	baseURL    string
	tokens     *TokenCache
}

// NewClient creates a metadata client against baseURL, authenticating with
// tokens.
func NewClient(baseURL string, tokens *TokenCache, opts ...ClientOption) *Client {
	c := &Client{
		httpClient: &http.Client{Timeout: 10 * time.Second},
		baseURL:    baseURL,
		tokens:     tokens,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// GetShow fetches one show record. A 401 invalidates the cached token and
// retries once with a fresh one.
func (c *Client) GetShow(ctx context.Context, showID string) (Show, error) {
	show, status, err := c.getShow(ctx, showID)
	if err != nil {
		return Show{}, err
	}
	if status == http.StatusUnauthorized {
		c.tokens.Invalidate()
		show, status, err = c.getShow(ctx, showID)
		if err != nil {
			return Show{}, err
		}
	}

	switch status {
	case http.StatusOK:
		return show, nil
	case http.StatusNotFound:
		return Show{}, fmt.Errorf("%w: %s", ErrShowNotFound, showID)
	default:
		return Show{}, fmt.Errorf("metadata API returned HTTP %d for show %s", status, showID)
	}
}

func (c *Client) getShow(ctx context.Context, showID string) (Show, int, error) {
	token, err := c.tokens.Token(ctx)
	if err != nil {
		return Show{}, 0, fmt.Errorf("metadata token: %w", err)
	}

	url := fmt.Sprintf("%s/v1/shows/%s", c.baseURL, showID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return Show{}, 0, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Show{}, 0, err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return Show{}, resp.StatusCode, nil
	}

	var show Show
	if err := json.NewDecoder(resp.Body).Decode(&show); err != nil {
		return Show{}, 0, fmt.Errorf("decode show %s: %w", showID, err)
	}
	return show, http.StatusOK, nil
}

// APIKeyTokenSource exchanges a long-lived API key for a short-lived access
// token at the metadata API's token endpoint.
func APIKeyTokenSource(baseURL, apiKey string, httpClient HTTPClient) TokenFunc {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}
	return func(ctx context.Context) (string, time.Duration, error) {
		body, err := json.Marshal(map[string]string{"api_key": apiKey})
		if err != nil {
			return "", 0, err
		}
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, baseURL+"/v1/oauth/token", bytes.NewReader(body))
		if err != nil {
			return "", 0, err
		}
		req.Header.Set("Content-Type", "application/json")

		resp, err := httpClient.Do(req)
		if err != nil {
			return "", 0, err
		}
		defer func() { _ = resp.Body.Close() }()

		if resp.StatusCode != http.StatusOK {
			return "", 0, fmt.Errorf("token endpoint returned HTTP %d", resp.StatusCode)
		}

		var payload struct {
			AccessToken string `json:"access_token"`
			ExpiresIn   int64  `json:"expires_in"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
			return "", 0, fmt.Errorf("decode token response: %w", err)
		}
		if payload.AccessToken == "" {
			return "", 0, errors.New("token endpoint returned empty token")
		}
		return payload.AccessToken, time.Duration(payload.ExpiresIn) * time.Second, nil
	}
}
