package match

import (
	"sort"

	"contact-scout/internal/similarity"
)

// Matcher is the entry point external collaborators call. Configuration
// is fixed at construction; the matcher holds no other state, so one
// instance may be used concurrently across contacts.
type Matcher struct {
	cfg Config
	sim similarity.Func
}

// New constructs a Matcher, rejecting invalid configuration before any
// matching occurs.
func New(cfg Config) (*Matcher, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Matcher{cfg: cfg, sim: similarity.For(cfg.Algorithm)}, nil
}

// Config returns the matcher's configuration.
func (m *Matcher) Config() Config {
	return m.cfg
}

// Match scores every candidate against the contact and returns all of
// them sorted by total score descending. Ties preserve input order,
// which is typically search-rank order. No candidate is dropped here;
// truncation and minimum-score filtering belong to the renderer.
func (m *Matcher) Match(contact *Contact, candidates []CandidateProfile) []Match {
	matches := make([]Match, 0, len(candidates))

	for i := range candidates {
		candidate := candidates[i]
		breakdown := score(contact, &candidate, m.cfg, m.sim)
		matches = append(matches, Match{
			Candidate:  candidate,
			Breakdown:  breakdown,
			Score:      breakdown.Total,
			Confidence: Classify(breakdown.Total),
			Reasons:    composeReasons(contact, &candidate, breakdown, m.cfg),
		})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Score > matches[j].Score
	})

	return matches
}
