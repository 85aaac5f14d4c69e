package match

import (
	"math"

	"contact-scout/internal/similarity"
)

// score computes the rule-tagged breakdown for one contact/candidate
// pair. Each component stays within [0, weight]; the total is the
// rounded sum.
func score(contact *Contact, candidate *CandidateProfile, cfg Config, sim similarity.Func) ScoreBreakdown {
	var b ScoreBreakdown

	b.Email = scoreEmail(contact.Emails, candidate.Email, cfg.EmailWeight)

	// Name is mandatory on the contact side; the candidate side defaults
	// to empty, which the primitives handle. Raw similarity below the
	// threshold contributes nothing.
	nameSim, nameRule := nameSimilarity(contact.FullName, candidate.Name, sim)
	b.Name = ComponentScore{Similarity: nameSim, Rule: nameRule}
	if nameSim >= cfg.NameThreshold {
		b.Name.Points = nameSim * cfg.NameWeight
	} else {
		b.Name.Rule = RuleGated
	}

	// Company, location, and job title are scored only when both sides
	// are present; absent optional fields contribute zero.
	if contact.Company != "" && candidate.Company != "" {
		companySim, companyRule := companySimilarity(contact.Company, candidate.Company, sim)
		b.Company = ComponentScore{Similarity: companySim, Rule: companyRule}
		if companySim >= cfg.CompanyThreshold {
			b.Company.Points = companySim * cfg.CompanyWeight
		} else {
			b.Company.Rule = RuleGated
		}
	} else {
		b.Company = ComponentScore{Rule: RuleAbsent}
	}

	if contact.Location != "" && candidate.Location != "" {
		locationSim, locationRule := locationSimilarity(contact.Location, candidate.Location, sim)
		b.Location = ComponentScore{
			Points:     locationSim * cfg.LocationWeight,
			Similarity: locationSim,
			Rule:       locationRule,
		}
	} else {
		b.Location = ComponentScore{Rule: RuleAbsent}
	}

	if contact.JobTitle != "" && candidate.Headline != "" {
		titleSim, titleRule := titleSimilarity(contact.JobTitle, candidate.Headline, sim)
		b.JobTitle = ComponentScore{
			Points:     titleSim * cfg.JobTitleWeight,
			Similarity: titleSim,
			Rule:       titleRule,
		}
	} else {
		b.JobTitle = ComponentScore{Rule: RuleAbsent}
	}

	sum := b.Email.Points + b.Name.Points + b.Company.Points + b.Location.Points + b.JobTitle.Points
	b.Total = int(math.Round(sum))

	return b
}

// scoreEmail checks the candidate email against every contact email.
// An exact address match earns the full weight; a shared domain earns
// half. Independent of the fuzzy matchers: exact email identity is
// authoritative.
func scoreEmail(contactEmails []string, candidateEmail string, weight float64) ComponentScore {
	if candidateEmail == "" || len(contactEmails) == 0 {
		return ComponentScore{Rule: RuleAbsent}
	}

	normalized := NormalizeEmail(candidateEmail)
	candidateDomain := emailDomain(normalized)

	domainHit := false
	for _, e := range contactEmails {
		ne := NormalizeEmail(e)
		if ne == "" {
			continue
		}
		if ne == normalized {
			return ComponentScore{Points: weight, Similarity: 1.0, Rule: RuleExactEmail}
		}
		if candidateDomain != "" && emailDomain(ne) == candidateDomain {
			domainHit = true
		}
	}

	if domainHit {
		return ComponentScore{Points: weight / 2, Similarity: 0.5, Rule: RuleEmailDomain}
	}

	return ComponentScore{Rule: RuleAbsent}
}
