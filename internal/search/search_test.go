package search

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"contact-scout/internal/config"
	"contact-scout/internal/match"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(endpoint string) config.SearchConfig {
	return config.SearchConfig{
		Endpoint:    endpoint,
		MaxResults:  3,
		Timeout:     2 * time.Second,
		MaxAttempts: 3,
	}
}

func TestQuery(t *testing.T) {
	assert.Equal(t, "John Doe Acme Corp", Query(&match.Contact{FullName: "John Doe", Company: "Acme Corp"}))
	assert.Equal(t, "John Doe", Query(&match.Contact{FullName: "John Doe"}))
}

func TestClientSearch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "John Doe Acme", r.URL.Query().Get("q"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"results": [
			{"title": "John Doe - LinkedIn", "url": "https://linkedin.com/in/johndoe", "content": "Software Engineer at Acme"},
			{"title": "", "url": "https://example.com/skip"},
			{"title": "John Doe | GitHub", "url": "https://github.com/johndoe", "content": ""},
			{"title": "Jon Doe", "url": "https://example.com/jon", "content": ""},
			{"title": "Overflow", "url": "https://example.com/overflow", "content": ""}
		]}`))
	}))
	defer srv.Close()

	client := NewClient(testConfig(srv.URL))
	candidates, err := client.Search(context.Background(), "John Doe Acme")
	require.NoError(t, err)

	// Empty-title entry dropped, list capped at MaxResults, rank order kept.
	require.Len(t, candidates, 3)
	assert.Equal(t, "John Doe", candidates[0].Name)
	assert.Equal(t, "https://linkedin.com/in/johndoe", candidates[0].URL)
	assert.Equal(t, "Software Engineer at Acme", candidates[0].Headline)
	assert.Equal(t, "https://github.com/johndoe", candidates[1].URL)
	assert.Equal(t, "https://example.com/jon", candidates[2].URL)
}

func TestClientSearchRetriesTransientFailures(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.Write([]byte(`{"results": [{"title": "John Doe", "url": "https://example.com/a"}]}`))
	}))
	defer srv.Close()

	client := NewClient(testConfig(srv.URL))
	candidates, err := client.Search(context.Background(), "John Doe")
	require.NoError(t, err)
	assert.Len(t, candidates, 1)
	assert.Equal(t, int32(3), calls.Load())
}

func TestClientSearchPermanentFailure(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	client := NewClient(testConfig(srv.URL))
	_, err := client.Search(context.Background(), "John Doe")
	assert.Error(t, err)
	// 403 is permanent, no retries.
	assert.Equal(t, int32(1), calls.Load())
}

func TestClientSearchNoEndpoint(t *testing.T) {
	client := NewClient(config.SearchConfig{})
	_, err := client.Search(context.Background(), "John Doe")
	assert.Error(t, err)
}

func TestCleanTitle(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"linkedin suffix", "John Doe - LinkedIn", "John Doe"},
		{"pipe suffix", "John Doe | GitHub", "John Doe"},
		{"no suffix", "John Doe", "John Doe"},
		{"leading separator kept", "- John Doe", "- John Doe"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, cleanTitle(tt.input))
		})
	}
}
