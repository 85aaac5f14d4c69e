package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComposeReasonsOrdering(t *testing.T) {
	cfg := DefaultConfig()
	contact := &Contact{
		FullName: "John Doe",
		Emails:   []string{"john.doe@acme.com"},
		Company:  "Acme Corp",
		Location: "San Francisco, CA",
	}
	candidate := &CandidateProfile{
		Name:     "John Doe",
		URL:      "https://example.com/johndoe",
		Email:    "john.doe@acme.com",
		Company:  "Acme Corp",
		Location: "San Francisco Bay Area",
	}

	b := score(contact, candidate, cfg, defaultSim())
	reasons := composeReasons(contact, candidate, b, cfg)

	expected := []string{
		"Exact email match (+50 points)",
		"Exact name match (+30 points)",
		"Exact company match (+15 points)",
		"Shared location: San Francisco, CA ↔ San Francisco Bay Area (+8 points)",
		"Total match score: 103/110 points",
	}
	assert.Equal(t, expected, reasons)
}

func TestComposeReasonsNicknameWording(t *testing.T) {
	cfg := DefaultConfig()
	contact := &Contact{FullName: "William Smith"}
	candidate := &CandidateProfile{Name: "Bill Smith", URL: "u"}

	b := score(contact, candidate, cfg, defaultSim())
	reasons := composeReasons(contact, candidate, b, cfg)

	require.Len(t, reasons, 2)
	assert.Equal(t, "Name variation match: William Smith ↔ Bill Smith (+30 points)", reasons[0])
	assert.Equal(t, "Total match score: 30/110 points", reasons[1])
}

func TestComposeReasonsPlaceholder(t *testing.T) {
	cfg := DefaultConfig()
	contact := &Contact{FullName: "John Doe"}
	candidate := &CandidateProfile{Name: "Zzz Qqq", URL: "u"}

	b := score(contact, candidate, cfg, defaultSim())
	reasons := composeReasons(contact, candidate, b, cfg)

	require.Len(t, reasons, 2)
	assert.Equal(t, "Weak match: no strong identity signals found", reasons[0])
	assert.Equal(t, "Total match score: 0/110 points", reasons[1])
}

func TestComposeReasonsDomainMatch(t *testing.T) {
	cfg := DefaultConfig()
	contact := &Contact{FullName: "John Doe", Emails: []string{"john.doe@acme.com"}}
	candidate := &CandidateProfile{Name: "Zzz Qqq", URL: "u", Email: "info@acme.com"}

	b := score(contact, candidate, cfg, defaultSim())
	reasons := composeReasons(contact, candidate, b, cfg)

	require.NotEmpty(t, reasons)
	assert.Equal(t, "Email domain match (+25 points)", reasons[0])
}
