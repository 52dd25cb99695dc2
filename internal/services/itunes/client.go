package itunes

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const (
	defaultBaseURL = "https://itunes.apple.com"

	// iTunes Search links point at the storefront domain; presence links
	// should open the consumer Apple Music app instead.
	storefrontDomain = "itunes.apple.com"
	consumerDomain   = "music.apple.com"

	searchFallbackBase = "https://music.apple.com"

	resultLimit = 5
)

type searchResult struct {
	ArtistName   string `json:"artistName"`
	TrackName    string `json:"trackName"`
	TrackViewURL string `json:"trackViewUrl"`
}

type searchResponse struct {
	Results []searchResult `json:"results"`
}

// Client provides access to the iTunes Search API.
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

// New creates an iTunes Search client. An empty baseURL selects the public API.
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

// TrackURL returns the Apple Music link for the given track. It searches
// the iTunes catalog for "<title> <artist>", picks the first result whose
// artist and title both contain (or are contained by) the query terms
// case-insensitively, and rewrites the storefront domain to the consumer
// one. On any search failure or when no result matches it returns
// SearchURL's deterministic fallback, never an empty string.
func (c *Client) TrackURL(ctx context.Context, artist, title string) string {
	if link, err := c.lookup(ctx, artist, title); err == nil && link != "" {
		return link
	}
	return SearchURL(artist, title)
}

func (c *Client) lookup(ctx context.Context, artist, title string) (string, error) {
	query := strings.TrimSpace(strings.TrimSpace(title) + " " + strings.TrimSpace(artist))
	if query == "" {
		return "", nil
	}

	endpoint, err := url.Parse(c.baseURL + "/search")
	if err != nil {
		return "", fmt.Errorf("parse itunes url: %w", err)
	}
	params := url.Values{}
	params.Set("term", query)
	params.Set("media", "music")
	params.Set("entity", "song")
	params.Set("limit", fmt.Sprintf("%d", resultLimit))
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
		return "", fmt.Errorf("itunes search returned %d", resp.StatusCode)
	}

	var payload searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return "", fmt.Errorf("decode itunes response: %w", err)
	}

	for _, result := range payload.Results {
		if !matches(artist, result.ArtistName) || !matches(title, result.TrackName) {
			continue
		}
		if result.TrackViewURL == "" {
			continue
		}
		return strings.Replace(result.TrackViewURL, storefrontDomain, consumerDomain, 1), nil
	}
	return "", nil
}

// matches reports case-insensitive substring containment in either
// direction between the query term and the catalog value.
func matches(query, value string) bool {
	query = strings.ToLower(query)
	value = strings.ToLower(value)
	return strings.Contains(value, query) || strings.Contains(query, value)
}

// SearchURL builds the deterministic Apple Music search fallback link.
func SearchURL(artist, title string) string {
	query := strings.TrimSpace(strings.TrimSpace(artist) + " " + strings.TrimSpace(title))
	if query == "" {
		return searchFallbackBase + "/"
	}
	return searchFallbackBase + "/search?term=" + url.QueryEscape(query)
}
