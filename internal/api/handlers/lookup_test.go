package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"contact-scout/internal/api"
	"contact-scout/internal/match"
	"contact-scout/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubProvider struct {
	candidates []match.CandidateProfile
	err        error
}

func (s *stubProvider) Search(ctx context.Context, query string) ([]match.CandidateProfile, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.candidates, nil
}

func newLookupRouter(t *testing.T, provider *stubProvider) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	matcher, err := match.New(match.DefaultConfig())
	require.NoError(t, err)
	lookup := service.NewLookupService(provider, nil, matcher)

	router := gin.New()
	router.POST("/api/v1/lookup", NewLookupHandler(lookup).Lookup)
	return router
}

func TestLookupHandlerReturnsRankedMatches(t *testing.T) {
	provider := &stubProvider{
		candidates: []match.CandidateProfile{
			{Name: "Jane Smith", URL: "https://example.com/janesmith", Company: "Acme Corp"},
			{Name: "Jane Smithers", URL: "https://example.com/janesmithers"},
		},
	}
	router := newLookupRouter(t, provider)

	rec := postJSON(t, router, "/api/v1/lookup", LookupRequest{
		Contact: ContactRequest{FullName: "Jane Smith", Company: "Acme Corp"},
	})

	require.Equal(t, http.StatusOK, rec.Code)
	resp := decodeResponse(t, rec)
	assert.True(t, resp.Success)
	require.NotNil(t, resp.Meta)
	assert.Equal(t, "Jane Smith Acme Corp", resp.Meta.Query)
	assert.False(t, resp.Meta.FromCache)

	payload, err := json.Marshal(resp.Data)
	require.NoError(t, err)
	var matches []MatchResponse
	require.NoError(t, json.Unmarshal(payload, &matches))

	require.Len(t, matches, 2)
	assert.Equal(t, "Jane Smith", matches[0].Name)
}

func TestLookupHandlerUpstreamFailure(t *testing.T) {
	router := newLookupRouter(t, &stubProvider{err: errors.New("endpoint unreachable")})

	rec := postJSON(t, router, "/api/v1/lookup", LookupRequest{
		Contact: ContactRequest{FullName: "Jane Smith"},
	})

	assert.Equal(t, http.StatusBadGateway, rec.Code)
	resp := decodeResponse(t, rec)
	require.NotNil(t, resp.Error)
	assert.Equal(t, api.ErrCodeUpstream, resp.Error.Code)
}

func TestLookupHandlerRejectsMissingContact(t *testing.T) {
	router := newLookupRouter(t, &stubProvider{})

	rec := postJSON(t, router, "/api/v1/lookup", LookupRequest{})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
