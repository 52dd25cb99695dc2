package deezer

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const defaultBaseURL = "https://api.deezer.com"

type album struct {
	CoverXL     string `json:"cover_xl"`
	CoverBig    string `json:"cover_big"`
	CoverMedium string `json:"cover_medium"`
}

type track struct {
	Album album `json:"album"`
}

type searchResponse struct {
	Data []track `json:"data"`
}

// Client provides access to the Deezer search API.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		if client != nil {
			c.httpClient = client
		}
	}
}

// WithTimeout overrides the request timeout on the default HTTP client.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if timeout > 0 {
			c.httpClient.Timeout = timeout
		}
	}
}

// New creates a Deezer client. An empty baseURL selects the public API.
func New(baseURL string, opts ...Option) *Client {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	client := &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 5 * time.Second},
	}
	for _, opt := range opts {
		opt(client)
	}
	return client
}

// TrackArtwork searches for "<artist> <title>" and returns the largest
// available cover image URL of the first match. An empty string with a nil
// error means the search succeeded but found nothing usable.
func (c *Client) TrackArtwork(ctx context.Context, artist, title string) (string, error) {
	query := strings.TrimSpace(strings.TrimSpace(artist) + " " + strings.TrimSpace(title))
	if query == "" {
		return "", errors.New("artist and title must not both be empty")
	}

	endpoint, err := url.Parse(c.baseURL + "/search/track")
	if err != nil {
		return "", fmt.Errorf("parse deezer url: %w", err)
	}
	params := url.Values{}
	params.Set("q", query)
	params.Set("limit", "1")
	endpoint.RawQuery = params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("deezer search returned %d", resp.StatusCode)
	}

	var payload searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return "", fmt.Errorf("decode deezer response: %w", err)
	}
	if len(payload.Data) == 0 {
		return "", nil
	}

	cover := payload.Data[0].Album
	switch {
	case cover.CoverXL != "":
		return cover.CoverXL, nil
	case cover.CoverBig != "":
		return cover.CoverBig, nil
	default:
		return cover.CoverMedium, nil
	}
}
