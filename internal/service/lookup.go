// Package service orchestrates the lookup flow: acquire candidates for
// a contact, consult the cache, and rank the results.
package service

import (
	"context"
	"errors"
	"fmt"

	"contact-scout/internal/config"
	"contact-scout/internal/db"
	"contact-scout/internal/logger"
	"contact-scout/internal/match"
	"contact-scout/internal/repository"
	"contact-scout/internal/search"
	"contact-scout/internal/similarity"
)

// SearchCache is the cache surface the lookup flow needs. Satisfied by
// repository.SearchCacheRepository.
type SearchCache interface {
	Get(ctx context.Context, query string) (*repository.CachedSearch, error)
	Put(ctx context.Context, query string, candidates []match.CandidateProfile) error
}

// LookupResult is the outcome of one end-to-end lookup.
type LookupResult struct {
	Query     string
	FromCache bool
	Matches   []match.Match
}

// LookupService handles contact lookups against the search provider,
// with cached candidate lists when a cache is configured.
type LookupService struct {
	provider search.Provider
	cache    SearchCache
	matcher  *match.Matcher
}

// NewLookupService creates a new lookup service. cache may be nil, in
// which case every lookup hits the provider.
func NewLookupService(provider search.Provider, cache SearchCache, matcher *match.Matcher) *LookupService {
	return &LookupService{
		provider: provider,
		cache:    cache,
		matcher:  matcher,
	}
}

// Lookup acquires candidates for the contact and returns them ranked.
// Cache failures are logged and treated as misses; only the provider
// failing aborts the lookup.
func (s *LookupService) Lookup(ctx context.Context, contact *match.Contact) (*LookupResult, error) {
	if contact == nil {
		return nil, errors.New("contact is required")
	}

	query := search.Query(contact)
	candidates, fromCache := s.cachedCandidates(ctx, query)

	if !fromCache {
		found, err := s.provider.Search(ctx, query)
		if err != nil {
			return nil, fmt.Errorf("candidate search failed: %w", err)
		}
		candidates = found
		s.storeCandidates(ctx, query, candidates)
	}

	logger.Debug().
		Str("query", query).
		Int("candidates", len(candidates)).
		Bool("from_cache", fromCache).
		Msg("ranking candidates")

	return &LookupResult{
		Query:     query,
		FromCache: fromCache,
		Matches:   s.matcher.Match(contact, candidates),
	}, nil
}

func (s *LookupService) cachedCandidates(ctx context.Context, query string) ([]match.CandidateProfile, bool) {
	if s.cache == nil {
		return nil, false
	}

	cached, err := s.cache.Get(ctx, query)
	if err != nil {
		if !errors.Is(err, db.ErrNotFound) {
			logger.Warn().Err(err).Str("query", query).Msg("search cache read failed")
		}
		return nil, false
	}
	return cached.Candidates, true
}

func (s *LookupService) storeCandidates(ctx context.Context, query string, candidates []match.CandidateProfile) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Put(ctx, query, candidates); err != nil {
		logger.Warn().Err(err).Str("query", query).Msg("search cache write failed")
	}
}

// MatcherConfig converts application matching configuration into the
// matcher's config type. Load already validated the values; New
// re-validates as a safety net for programmatic callers.
func MatcherConfig(cfg config.MatchingConfig) match.Config {
	return match.Config{
		EmailWeight:      cfg.EmailWeight,
		NameWeight:       cfg.NameWeight,
		CompanyWeight:    cfg.CompanyWeight,
		LocationWeight:   cfg.LocationWeight,
		JobTitleWeight:   cfg.JobTitleWeight,
		Algorithm:        similarity.Algorithm(cfg.Algorithm),
		NameThreshold:    cfg.NameThreshold,
		CompanyThreshold: cfg.CompanyThreshold,
	}
}
