// Package feed reads the public global-shark-attack dataset.
package feed

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/heartmarshall/facts-mng/internal/config"
)

const byCountryLimit = "5"

// Client fetches records from the open data feed.
type Client struct {
	feedURL    string
	httpClient *http.Client
	retryDelay time.Duration
	log        *slog.Logger
}

// NewClient creates a Client for cfg.URL.
func NewClient(cfg config.FeedConfig, logger *slog.Logger) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		feedURL:    cfg.URL,
		httpClient: &http.Client{Timeout: timeout},
		retryDelay: 500 * time.Millisecond,
		log:        logger.With("adapter", "feed"),
	}
}

type resultsPage struct {
	TotalCount int              `json:"total_count"`
	Results    []map[string]any `json:"results"`
}

// FetchRecords returns every record of the configured feed page.
func (c *Client) FetchRecords(ctx context.Context) ([]Record, error) {
	return c.fetch(ctx, c.feedURL)
}

// ByCountry returns up to five records whose country equals the upper-cased country.
func (c *Client) ByCountry(ctx context.Context, country string) ([]Record, error) {
	u, err := url.Parse(c.feedURL)
	if err != nil {
		return nil, fmt.Errorf("feed: parse url: %w", err)
	}
	q := url.Values{}
	q.Set("where", fmt.Sprintf("country='%s'", strings.ToUpper(country)))
	q.Set("limit", byCountryLimit)
	u.RawQuery = q.Encode()

	return c.fetch(ctx, u.String())
}

func (c *Client) fetch(ctx context.Context, reqURL string) ([]Record, error) {
	c.log.DebugContext(ctx, "feed request", slog.String("url", reqURL))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("feed: create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.doWithRetry(ctx, req)
	if err != nil {
		c.log.ErrorContext(ctx, "feed request failed", slog.String("error", err.Error()))
		return nil, fmt.Errorf("feed: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("feed: unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("feed: read body: %w", err)
	}

	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()
	var page resultsPage
	if err := dec.Decode(&page); err != nil {
		return nil, fmt.Errorf("feed: decode json: %w", err)
	}

	records := make([]Record, 0, len(page.Results))
	for _, r := range page.Results {
		records = append(records, Record(r))
	}

	c.log.DebugContext(ctx, "feed response",
		slog.Int("status", resp.StatusCode),
		slog.Int("records", len(records)),
	)

	return records, nil
}

// doWithRetry executes the request with a single retry on 5xx or network errors.
func (c *Client) doWithRetry(ctx context.Context, req *http.Request) (*http.Response, error) {
	resp, err := c.httpClient.Do(req)

	shouldRetry := err != nil || (resp != nil && resp.StatusCode >= 500)
	if !shouldRetry || ctx.Err() != nil {
		return resp, err
	}

	reason := "network error"
	if err == nil && resp != nil {
		reason = fmt.Sprintf("status %d", resp.StatusCode)
	}
	c.log.WarnContext(ctx, "feed retry", slog.String("reason", reason))

	if resp != nil && resp.Body != nil {
		resp.Body.Close()
	}

	select {
	case <-time.After(c.retryDelay):
	case <-ctx.Done():
		return nil, ctx.Err()
	}

	return c.httpClient.Do(req)
}
