package match

import (
	"fmt"
	"math"
)

// composeReasons formats the tagged breakdown into ordered,
// human-readable justifications. Ordering is fixed (email, name,
// company, location, job title, summary) so output is deterministic.
func composeReasons(contact *Contact, candidate *CandidateProfile, b ScoreBreakdown, cfg Config) []string {
	reasons := make([]string, 0, 6)

	if b.Email.Contributed() {
		switch b.Email.Rule {
		case RuleExactEmail:
			reasons = append(reasons, fmt.Sprintf("Exact email match (+%s points)", points(b.Email)))
		case RuleEmailDomain:
			reasons = append(reasons, fmt.Sprintf("Email domain match (+%s points)", points(b.Email)))
		}
	}

	if b.Name.Contributed() {
		switch b.Name.Rule {
		case RuleExact:
			reasons = append(reasons, fmt.Sprintf("Exact name match (+%s points)", points(b.Name)))
		case RuleNickname:
			reasons = append(reasons, fmt.Sprintf("Name variation match: %s ↔ %s (+%s points)",
				contact.FullName, candidate.Name, points(b.Name)))
		case RuleLastName:
			reasons = append(reasons, fmt.Sprintf("Last name match: %s ↔ %s (+%s points)",
				contact.FullName, candidate.Name, points(b.Name)))
		default:
			reasons = append(reasons, fmt.Sprintf("Similar name: %s ↔ %s (+%s points)",
				contact.FullName, candidate.Name, points(b.Name)))
		}
	}

	if b.Company.Contributed() {
		switch b.Company.Rule {
		case RuleExact:
			reasons = append(reasons, fmt.Sprintf("Exact company match (+%s points)", points(b.Company)))
		case RuleAbbreviation:
			reasons = append(reasons, fmt.Sprintf("Company abbreviation match: %s ↔ %s (+%s points)",
				contact.Company, candidate.Company, points(b.Company)))
		case RuleContainment:
			reasons = append(reasons, fmt.Sprintf("Related company name: %s ↔ %s (+%s points)",
				contact.Company, candidate.Company, points(b.Company)))
		default:
			reasons = append(reasons, fmt.Sprintf("Similar company: %s ↔ %s (+%s points)",
				contact.Company, candidate.Company, points(b.Company)))
		}
	}

	if b.Location.Contributed() {
		switch b.Location.Rule {
		case RuleExact:
			reasons = append(reasons, fmt.Sprintf("Exact location match (+%s points)", points(b.Location)))
		case RuleAbbreviation:
			reasons = append(reasons, fmt.Sprintf("Location abbreviation match: %s ↔ %s (+%s points)",
				contact.Location, candidate.Location, points(b.Location)))
		case RuleContainment:
			reasons = append(reasons, fmt.Sprintf("Overlapping location: %s ↔ %s (+%s points)",
				contact.Location, candidate.Location, points(b.Location)))
		case RuleSharedToken:
			reasons = append(reasons, fmt.Sprintf("Shared location: %s ↔ %s (+%s points)",
				contact.Location, candidate.Location, points(b.Location)))
		default:
			reasons = append(reasons, fmt.Sprintf("Similar location: %s ↔ %s (+%s points)",
				contact.Location, candidate.Location, points(b.Location)))
		}
	}

	if b.JobTitle.Contributed() {
		switch b.JobTitle.Rule {
		case RuleExact:
			reasons = append(reasons, fmt.Sprintf("Exact job title match (+%s points)", points(b.JobTitle)))
		case RuleContainment:
			reasons = append(reasons, fmt.Sprintf("Related job title: %s ↔ %s (+%s points)",
				contact.JobTitle, candidate.Headline, points(b.JobTitle)))
		case RuleSynonym:
			reasons = append(reasons, fmt.Sprintf("Equivalent job title: %s ↔ %s (+%s points)",
				contact.JobTitle, candidate.Headline, points(b.JobTitle)))
		default:
			reasons = append(reasons, fmt.Sprintf("Similar job title: %s ↔ %s (+%s points)",
				contact.JobTitle, candidate.Headline, points(b.JobTitle)))
		}
	}

	if len(reasons) == 0 {
		reasons = append(reasons, "Weak match: no strong identity signals found")
	}

	reasons = append(reasons, fmt.Sprintf("Total match score: %d/%d points", b.Total, int(math.Round(cfg.MaxScore()))))

	return reasons
}

// points renders a component's contribution as a whole number.
func points(c ComponentScore) string {
	return fmt.Sprintf("%d", int(math.Round(c.Points)))
}
