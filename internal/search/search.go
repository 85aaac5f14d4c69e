// Package search acquires candidate profiles for a contact from an
// external search endpoint. The matcher core never performs network
// access; everything I/O-shaped lives here.
package search

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"contact-scout/internal/config"
	"contact-scout/internal/logger"
	"contact-scout/internal/match"

	"github.com/codeGROOVE-dev/retry"
)

// Provider returns an ordered candidate list for a query. Order is
// search-rank order, which the matcher uses as a tie-break.
type Provider interface {
	Search(ctx context.Context, query string) ([]match.CandidateProfile, error)
}

// Query builds the search query for a contact: full name plus company
// when known.
func Query(contact *match.Contact) string {
	parts := []string{contact.FullName}
	if contact.Company != "" {
		parts = append(parts, contact.Company)
	}
	return strings.Join(parts, " ")
}

// HTTPError is a non-2xx response from the search endpoint.
type HTTPError struct {
	StatusCode int
	URL        string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("search request failed with status %d: %s", e.StatusCode, e.URL)
}

// Client queries a JSON search endpoint (SearXNG-compatible result
// shape) and maps results to candidate profiles.
type Client struct {
	endpoint    string
	maxResults  int
	maxAttempts int
	httpClient  *http.Client
}

// NewClient creates a search client from configuration.
func NewClient(cfg config.SearchConfig) *Client {
	return &Client{
		endpoint:    cfg.Endpoint,
		maxResults:  cfg.MaxResults,
		maxAttempts: cfg.MaxAttempts,
		httpClient:  &http.Client{Timeout: cfg.Timeout},
	}
}

// searchResponse is the endpoint's result envelope.
type searchResponse struct {
	Results []searchResult `json:"results"`
}

type searchResult struct {
	Title   string `json:"title"`
	URL     string `json:"url"`
	Content string `json:"content"`
}

// Search queries the endpoint, retrying transient failures with backoff.
func (c *Client) Search(ctx context.Context, query string) ([]match.CandidateProfile, error) {
	if c.endpoint == "" {
		return nil, errors.New("search endpoint not configured")
	}

	requestURL := fmt.Sprintf("%s?q=%s&format=json", strings.TrimRight(c.endpoint, "/"), url.QueryEscape(query))

	body, err := retry.DoWithData(
		func() ([]byte, error) {
			return c.fetch(ctx, requestURL)
		},
		retry.Context(ctx),
		retry.Attempts(uint(c.maxAttempts)),
		retry.Delay(500*time.Millisecond),
		retry.MaxJitter(250*time.Millisecond),
		retry.RetryIf(isRetryableError),
		retry.OnRetry(func(n uint, err error) {
			logger.Warn().Uint("attempt", n+1).Err(err).Msg("retrying search request")
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("search failed: %w", err)
	}

	var resp searchResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("failed to parse search response: %w", err)
	}

	return c.toCandidates(resp.Results), nil
}

func (c *Client) fetch(ctx context.Context, requestURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &HTTPError{StatusCode: resp.StatusCode, URL: requestURL}
	}

	return io.ReadAll(resp.Body)
}

// toCandidates maps raw results to candidate profiles, preserving rank
// order and dropping entries without the required identity fields.
func (c *Client) toCandidates(results []searchResult) []match.CandidateProfile {
	candidates := make([]match.CandidateProfile, 0, min(len(results), c.maxResults))
	for _, r := range results {
		if len(candidates) == c.maxResults {
			break
		}
		name := cleanTitle(r.Title)
		if name == "" || r.URL == "" {
			continue
		}
		candidates = append(candidates, match.CandidateProfile{
			Name:     name,
			URL:      r.URL,
			Headline: strings.TrimSpace(r.Content),
		})
	}
	return candidates
}

// cleanTitle strips common result-title suffixes like " - LinkedIn" or
// " | Company Site" so the leading person name survives.
func cleanTitle(title string) string {
	title = strings.TrimSpace(title)
	for _, sep := range []string{" - ", " | ", " – ", " — "} {
		if idx := strings.Index(title, sep); idx > 0 {
			title = title[:idx]
			break
		}
	}
	return strings.TrimSpace(title)
}

// isRetryableError returns true for transient failures. Non-2xx
// responses other than 429/5xx are permanent.
func isRetryableError(err error) bool {
	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		switch httpErr.StatusCode {
		case http.StatusTooManyRequests,
			http.StatusInternalServerError,
			http.StatusBadGateway,
			http.StatusServiceUnavailable,
			http.StatusGatewayTimeout:
			return true
		default:
			return false
		}
	}
	return true
}
