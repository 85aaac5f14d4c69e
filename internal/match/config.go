package match

import (
	"fmt"

	"contact-scout/internal/similarity"
)

// Config defines weights and thresholds for candidate scoring. Weights
// are the maximum attainable points per component; thresholds are
// similarity cutoffs in [0,1], not score cutoffs.
type Config struct {
	EmailWeight    float64
	NameWeight     float64
	CompanyWeight  float64
	LocationWeight float64
	JobTitleWeight float64

	// Algorithm selects the fuzzy-fallback similarity primitive.
	Algorithm similarity.Algorithm

	// NameThreshold zeroes the name component when the raw similarity
	// falls below it, so weak fuzzy name signal cannot accumulate points.
	NameThreshold float64
	// CompanyThreshold gates the company component the same way.
	CompanyThreshold float64
}

// Default weights sum to 110. Exact email identity is intentionally the
// strongest single signal.
const (
	DefaultEmailWeight    = 50.0
	DefaultNameWeight     = 30.0
	DefaultCompanyWeight  = 15.0
	DefaultLocationWeight = 10.0
	DefaultJobTitleWeight = 5.0

	DefaultNameThreshold    = 0.7
	DefaultCompanyThreshold = 0.6
)

// DefaultConfig returns the standard scoring configuration.
func DefaultConfig() Config {
	return Config{
		EmailWeight:      DefaultEmailWeight,
		NameWeight:       DefaultNameWeight,
		CompanyWeight:    DefaultCompanyWeight,
		LocationWeight:   DefaultLocationWeight,
		JobTitleWeight:   DefaultJobTitleWeight,
		Algorithm:        similarity.AlgorithmJaroWinkler,
		NameThreshold:    DefaultNameThreshold,
		CompanyThreshold: DefaultCompanyThreshold,
	}
}

// MaxScore returns the sum of all configured weights, the ceiling for
// any total.
func (c Config) MaxScore() float64 {
	return c.EmailWeight + c.NameWeight + c.CompanyWeight + c.LocationWeight + c.JobTitleWeight
}

// ValidationError reports an invalid configuration field. Configuration
// is rejected at construction time, never mid-batch.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("match config validation failed for %s: %s", e.Field, e.Message)
}

// Validate checks that all weights are non-negative and both thresholds
// are within [0,1].
func (c Config) Validate() error {
	weights := []struct {
		field string
		value float64
	}{
		{"EmailWeight", c.EmailWeight},
		{"NameWeight", c.NameWeight},
		{"CompanyWeight", c.CompanyWeight},
		{"LocationWeight", c.LocationWeight},
		{"JobTitleWeight", c.JobTitleWeight},
	}
	for _, w := range weights {
		if w.value < 0 {
			return ValidationError{Field: w.field, Message: fmt.Sprintf("must be >= 0, got %v", w.value)}
		}
	}

	thresholds := []struct {
		field string
		value float64
	}{
		{"NameThreshold", c.NameThreshold},
		{"CompanyThreshold", c.CompanyThreshold},
	}
	for _, th := range thresholds {
		if th.value < 0 || th.value > 1 {
			return ValidationError{Field: th.field, Message: fmt.Sprintf("must be within [0,1], got %v", th.value)}
		}
	}

	return nil
}
