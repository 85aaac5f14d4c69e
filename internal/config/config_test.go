package config

import (
	"os"
	"strings"
	"testing"
)

// WithEnv is a test helper that sets environment variables for the duration of a test
func WithEnv(t *testing.T, key, value string) {
	t.Helper()
	original := os.Getenv(key)
	os.Setenv(key, value)
	t.Cleanup(func() {
		if original == "" {
			os.Unsetenv(key)
		} else {
			os.Setenv(key, original)
		}
	})
}

func TestConfig_Load_Defaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.Database.MigrationsPath != DefaultMigrationsPath {
		t.Errorf("Expected default migrations path %q, got %q", DefaultMigrationsPath, cfg.Database.MigrationsPath)
	}
	if cfg.Server.Host != DefaultServerHost {
		t.Errorf("Expected default server host %q, got %q", DefaultServerHost, cfg.Server.Host)
	}
	if cfg.Search.MaxResults != DefaultSearchMaxResults {
		t.Errorf("Expected default max results %d, got %d", DefaultSearchMaxResults, cfg.Search.MaxResults)
	}
	if cfg.Matching.Algorithm != DefaultAlgorithm {
		t.Errorf("Expected default algorithm %q, got %q", DefaultAlgorithm, cfg.Matching.Algorithm)
	}
	if cfg.Matching.EmailWeight != 50 || cfg.Matching.NameWeight != 30 {
		t.Errorf("Unexpected default weights: %+v", cfg.Matching)
	}
}

func TestConfig_Load_MatchingOverrides(t *testing.T) {
	WithEnv(t, "MATCH_NAME_WEIGHT", "40")
	WithEnv(t, "MATCH_NAME_THRESHOLD", "0.8")
	WithEnv(t, "MATCH_ALGORITHM", "edit-ratio")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.Matching.NameWeight != 40 {
		t.Errorf("Expected name weight 40, got %v", cfg.Matching.NameWeight)
	}
	if cfg.Matching.NameThreshold != 0.8 {
		t.Errorf("Expected name threshold 0.8, got %v", cfg.Matching.NameThreshold)
	}
	if cfg.Matching.Algorithm != "edit-ratio" {
		t.Errorf("Expected algorithm edit-ratio, got %q", cfg.Matching.Algorithm)
	}
}

func TestConfig_Load_RejectsNegativeWeight(t *testing.T) {
	WithEnv(t, "MATCH_EMAIL_WEIGHT", "-5")

	_, err := Load()
	if err == nil {
		t.Fatal("Load() should have failed for a negative weight")
	}
	if !strings.Contains(err.Error(), "Matching.EmailWeight") {
		t.Errorf("Expected error mentioning Matching.EmailWeight, got %v", err)
	}
}

func TestConfig_Load_RejectsOutOfRangeThreshold(t *testing.T) {
	WithEnv(t, "MATCH_COMPANY_THRESHOLD", "1.5")

	_, err := Load()
	if err == nil {
		t.Fatal("Load() should have failed for an out-of-range threshold")
	}
	if !strings.Contains(err.Error(), "Matching.CompanyThreshold") {
		t.Errorf("Expected error mentioning Matching.CompanyThreshold, got %v", err)
	}
}

func TestConfig_Load_RejectsUnknownAlgorithm(t *testing.T) {
	WithEnv(t, "MATCH_ALGORITHM", "soundex")

	_, err := Load()
	if err == nil {
		t.Fatal("Load() should have failed for an unknown algorithm")
	}
	if !strings.Contains(err.Error(), "Matching.Algorithm") {
		t.Errorf("Expected error mentioning Matching.Algorithm, got %v", err)
	}
}

func TestConfig_Validate_CollectsMultipleErrors(t *testing.T) {
	cfg := &Config{
		Server:   ServerConfig{Port: 0},
		Logger:   LoggerConfig{Level: "bogus"},
		Search:   SearchConfig{MaxResults: 0},
		Matching: MatchingConfig{Algorithm: "jaro-winkler"},
	}

	err := cfg.Validate()
	if err == nil {
		t.Fatal("Validate() should have failed")
	}

	verrs, ok := err.(ValidationErrors)
	if !ok {
		t.Fatalf("Expected ValidationErrors, got %T", err)
	}
	if len(verrs) < 3 {
		t.Errorf("Expected at least 3 validation errors, got %d: %v", len(verrs), verrs)
	}
}
