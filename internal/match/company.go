package match

import (
	"strings"

	"contact-scout/internal/similarity"
)

// legalSuffixes are entity-form tokens removed whole-word during company
// normalization so "Acme Corp" and "Acme Inc." compare as "acme".
var legalSuffixes = map[string]bool{
	"inc":           true,
	"incorporated":  true,
	"llc":           true,
	"llp":           true,
	"plc":           true,
	"corp":          true,
	"corporation":   true,
	"ltd":           true,
	"limited":       true,
	"co":            true,
	"company":       true,
	"group":         true,
	"holdings":      true,
	"technologies":  true,
	"technology":    true,
	"solutions":     true,
	"labs":          true,
	"gmbh":          true,
	"ag":            true,
	"sa":            true,
	"enterprises":   true,
	"industries":    true,
	"partners":      true,
	"ventures":      true,
}

// companyAbbreviations maps well-known short forms to the long
// organization name (both already normalized). Checked in both
// directions.
var companyAbbreviations = map[string]string{
	"ibm":  "international business machines",
	"ge":   "general electric",
	"gm":   "general motors",
	"hp":   "hewlett packard",
	"hpe":  "hewlett packard enterprise",
	"aws":  "amazon web services",
	"gcp":  "google cloud platform",
	"msft": "microsoft",
	"meta": "facebook",
	"jpmc": "jpmorgan chase",
	"bofa": "bank of america",
	"amex": "american express",
	"pwc":  "pricewaterhousecoopers",
	"ey":   "ernst young",
	"kpmg": "klynveld peat marwick goerdeler",
	"att":  "american telephone telegraph",
	"ups":  "united parcel service",
	"sap":  "systems applications products",
	"amd":  "advanced micro devices",
	"3m":   "minnesota mining manufacturing",
}

// companyContainmentScore is the credit when one normalized company name
// contains the other ("google" vs "google cloud").
const companyContainmentScore = 0.95

// normalizeCompany lowercases, strips punctuation, collapses whitespace,
// and removes legal-entity suffix tokens. Normalizing an already
// normalized string is a no-op.
func normalizeCompany(s string) string {
	s = stripPunctuation(foldText(s))
	return dropTokens(s, legalSuffixes)
}

// companySimilarity compares two raw company strings.
func companySimilarity(a, b string, sim similarity.Func) (float64, Rule) {
	na := normalizeCompany(a)
	nb := normalizeCompany(b)

	if na == nb {
		return 1.0, RuleExact
	}
	if na == "" || nb == "" {
		return 0.0, RuleFuzzy
	}

	if companyAbbreviations[na] == nb || companyAbbreviations[nb] == na {
		return 1.0, RuleAbbreviation
	}

	if strings.Contains(na, nb) || strings.Contains(nb, na) {
		return companyContainmentScore, RuleContainment
	}

	return sim(na, nb), RuleFuzzy
}
