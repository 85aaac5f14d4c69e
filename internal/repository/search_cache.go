// Package repository provides persistence for cached search results.
package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"contact-scout/internal/db"
	"contact-scout/internal/match"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// CachedSearch is one cached candidate list.
type CachedSearch struct {
	ID         uuid.UUID
	QueryKey   string
	Candidates []match.CandidateProfile
	CreatedAt  time.Time
	ExpiresAt  time.Time
}

// SearchCacheRepository handles cached search-result persistence.
type SearchCacheRepository struct {
	database *db.Database
	ttl      time.Duration
}

// NewSearchCacheRepository creates a new search cache repository.
func NewSearchCacheRepository(database *db.Database, ttl time.Duration) *SearchCacheRepository {
	return &SearchCacheRepository{database: database, ttl: ttl}
}

// QueryKey normalizes a query for cache lookup: lowercase, collapsed
// whitespace. Matching is deterministic, so equal keys replay to equal
// results.
func QueryKey(query string) string {
	return strings.Join(strings.Fields(strings.ToLower(query)), " ")
}

// Get returns the unexpired cached candidate list for a query, or
// db.ErrNotFound.
func (r *SearchCacheRepository) Get(ctx context.Context, query string) (*CachedSearch, error) {
	row := r.database.Pool.QueryRow(ctx,
		`SELECT id, query_key, candidates, created_at, expires_at
		 FROM search_cache
		 WHERE query_key = $1 AND expires_at > now()`,
		QueryKey(query),
	)

	var cached CachedSearch
	var payload []byte
	if err := row.Scan(&cached.ID, &cached.QueryKey, &payload, &cached.CreatedAt, &cached.ExpiresAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, db.ErrNotFound
		}
		return nil, fmt.Errorf("failed to read search cache: %w", err)
	}

	if err := json.Unmarshal(payload, &cached.Candidates); err != nil {
		return nil, fmt.Errorf("failed to decode cached candidates: %w", err)
	}

	return &cached, nil
}

// Put stores (or refreshes) the candidate list for a query.
func (r *SearchCacheRepository) Put(ctx context.Context, query string, candidates []match.CandidateProfile) error {
	payload, err := json.Marshal(candidates)
	if err != nil {
		return fmt.Errorf("failed to encode candidates: %w", err)
	}

	_, err = r.database.Pool.Exec(ctx,
		`INSERT INTO search_cache (query_key, candidates, expires_at)
		 VALUES ($1, $2, $3)
		 ON CONFLICT (query_key)
		 DO UPDATE SET candidates = EXCLUDED.candidates,
		               created_at = now(),
		               expires_at = EXCLUDED.expires_at`,
		QueryKey(query), payload, time.Now().Add(r.ttl),
	)
	if err != nil {
		return fmt.Errorf("failed to write search cache: %w", err)
	}

	return nil
}

// PruneExpired deletes expired cache rows and returns how many were
// removed.
func (r *SearchCacheRepository) PruneExpired(ctx context.Context) (int64, error) {
	tag, err := r.database.Pool.Exec(ctx, `DELETE FROM search_cache WHERE expires_at <= now()`)
	if err != nil {
		return 0, fmt.Errorf("failed to prune search cache: %w", err)
	}
	return tag.RowsAffected(), nil
}
