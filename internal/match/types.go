// Package match reconciles a locally known contact against externally
// discovered candidate profiles, producing a deterministic, explainable
// ranking of which candidates most likely represent the same person.
package match

// Contact is the locally known record being reconciled. Supplied by the
// caller, read-only for the duration of one Match call.
type Contact struct {
	FullName  string
	FirstName string
	LastName  string
	Emails    []string
	Company   string
	JobTitle  string
	Location  string
}

// CandidateProfile is one externally discovered identity. URL is the
// identity key; Name is required, everything else optional.
type CandidateProfile struct {
	Name     string
	URL      string
	Email    string
	Company  string
	Location string
	Headline string
}

// Rule identifies which matching rule produced a component's score.
// The scorer tags each component so the reason composer can describe the
// decision without re-deriving it.
type Rule string

const (
	RuleExactEmail   Rule = "exact_email"
	RuleEmailDomain  Rule = "email_domain"
	RuleExact        Rule = "exact"
	RuleNickname     Rule = "nickname"
	RuleLastName     Rule = "last_name"
	RuleAbbreviation Rule = "abbreviation"
	RuleContainment  Rule = "containment"
	RuleSharedToken  Rule = "shared_token"
	RuleSynonym      Rule = "synonym"
	RuleFuzzy        Rule = "fuzzy"
	RuleGated        Rule = "gated"
	RuleAbsent       Rule = "absent"
)

// ComponentScore is one component's contribution to the total.
type ComponentScore struct {
	Points     float64
	Similarity float64
	Rule       Rule
}

// Contributed reports whether the component added points to the total.
func (c ComponentScore) Contributed() bool {
	return c.Points > 0
}

// ScoreBreakdown holds the per-component contributions and the rounded
// integer total. Invariants: Total == round(sum of component points);
// each component is within [0, weight] for its configured weight.
type ScoreBreakdown struct {
	Email    ComponentScore
	Name     ComponentScore
	Company  ComponentScore
	Location ComponentScore
	JobTitle ComponentScore
	Total    int
}

// Match pairs a candidate profile with its score, confidence band, and
// ordered human-readable reasons. Created fresh per Match call.
type Match struct {
	Candidate  CandidateProfile
	Breakdown  ScoreBreakdown
	Score      int
	Confidence Confidence
	Reasons    []string
}
