package match

import (
	"testing"

	"contact-scout/internal/similarity"

	"github.com/stretchr/testify/assert"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.InDelta(t, 50.0, cfg.EmailWeight, 0.0001)
	assert.InDelta(t, 30.0, cfg.NameWeight, 0.0001)
	assert.InDelta(t, 15.0, cfg.CompanyWeight, 0.0001)
	assert.InDelta(t, 10.0, cfg.LocationWeight, 0.0001)
	assert.InDelta(t, 5.0, cfg.JobTitleWeight, 0.0001)
	assert.InDelta(t, 110.0, cfg.MaxScore(), 0.0001)
	assert.InDelta(t, 0.7, cfg.NameThreshold, 0.0001)
	assert.InDelta(t, 0.6, cfg.CompanyThreshold, 0.0001)
	assert.Equal(t, similarity.AlgorithmJaroWinkler, cfg.Algorithm)

	assert.NoError(t, cfg.Validate())
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:    "negative email weight",
			mutate:  func(c *Config) { c.EmailWeight = -1 },
			wantErr: "EmailWeight",
		},
		{
			name:    "negative job title weight",
			mutate:  func(c *Config) { c.JobTitleWeight = -0.5 },
			wantErr: "JobTitleWeight",
		},
		{
			name:    "name threshold above one",
			mutate:  func(c *Config) { c.NameThreshold = 1.5 },
			wantErr: "NameThreshold",
		},
		{
			name:    "company threshold negative",
			mutate:  func(c *Config) { c.CompanyThreshold = -0.1 },
			wantErr: "CompanyThreshold",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			assert.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestConfigValidateZeroWeightsAllowed(t *testing.T) {
	cfg := DefaultConfig()
	cfg.LocationWeight = 0
	cfg.JobTitleWeight = 0
	assert.NoError(t, cfg.Validate())
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.NameWeight = -10

	m, err := New(cfg)
	assert.Nil(t, m)
	assert.Error(t, err)

	var verr ValidationError
	assert.ErrorAs(t, err, &verr)
	assert.Equal(t, "NameWeight", verr.Field)
}
