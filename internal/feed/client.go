// Package feed fetches the pre-generated dashboard artifacts published by
// the upstream report job. Every fetch is a fresh, best-effort pull: the
// client never retries, never caches, and never assumes the artifact exists.
package feed

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/bigclaw/claw-portal/internal/models"
)

// Artifact paths relative to the feed base URL.
const (
	PathPortfolios = "data/portfolios.json"
	PathSentiment  = "data/sentiment.json"
	PathNews       = "data/news.json"
	PathMetadata   = "data/metadata.json"
	PathChart      = "data/performance_chart.png"
)

// maxBodySize caps artifact payloads at 1MB.
const maxBodySize = 1 << 20

// Client pulls dashboard artifacts over HTTP.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// New creates a feed client targeting the given base URL. A zero timeout
// falls back to 10 seconds.
func New(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

// URL returns the absolute URL for an artifact path.
func (c *Client) URL(path string) string {
	return c.baseURL + "/" + path
}

// FetchPortfolios fetches portfolios.json.
func (c *Client) FetchPortfolios(ctx context.Context) (*models.PortfolioFeed, error) {
	var payload models.PortfolioFeed
	if err := c.getJSON(ctx, PathPortfolios, &payload); err != nil {
		return nil, err
	}
	return &payload, nil
}

// FetchSentiment fetches sentiment.json.
func (c *Client) FetchSentiment(ctx context.Context) (*models.SentimentFeed, error) {
	var payload models.SentimentFeed
	if err := c.getJSON(ctx, PathSentiment, &payload); err != nil {
		return nil, err
	}
	return &payload, nil
}

// FetchNews fetches news.json.
func (c *Client) FetchNews(ctx context.Context) (*models.NewsFeed, error) {
	var payload models.NewsFeed
	if err := c.getJSON(ctx, PathNews, &payload); err != nil {
		return nil, err
	}
	return &payload, nil
}

// FetchMetadata fetches metadata.json.
func (c *Client) FetchMetadata(ctx context.Context) (*models.Metadata, error) {
	var payload models.Metadata
	if err := c.getJSON(ctx, PathMetadata, &payload); err != nil {
		return nil, err
	}
	return &payload, nil
}

// ProbeChart checks whether the performance chart image has been generated
// yet. A missing artifact is the expected state before the first trading
// day, so a non-2xx status reports found=false with no error; only
// transport failures surface as errors. Tries HEAD first and falls back to
// GET for hosts that reject HEAD.
func (c *Client) ProbeChart(ctx context.Context) (bool, error) {
	found, err := c.probe(ctx, http.MethodHead)
	if err != nil {
		return false, err
	}
	if found {
		return true, nil
	}
	return c.probe(ctx, http.MethodGet)
}

func (c *Client) probe(ctx context.Context, method string) (bool, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.URL(PathChart), nil)
	if err != nil {
		return false, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return false, fmt.Errorf("failed to reach feed: %w", err)
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, io.LimitReader(resp.Body, maxBodySize))

	return resp.StatusCode >= 200 && resp.StatusCode < 300, nil
}

// getJSON fetches an artifact and decodes it into v.
func (c *Client) getJSON(ctx context.Context, path string, v interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.URL(path), nil)
	if err != nil {
		return err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to reach feed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("feed returned %d for %s", resp.StatusCode, path)
	}

	if err := json.Unmarshal(body, v); err != nil {
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}

	return nil
}
