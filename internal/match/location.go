package match

import (
	"strings"

	"contact-scout/internal/similarity"
)

// stateAbbreviations expands US two-letter state codes token-by-token
// during location normalization.
var stateAbbreviations = map[string]string{
	"al": "alabama",
	"ak": "alaska",
	"az": "arizona",
	"ar": "arkansas",
	"ca": "california",
	"co": "colorado",
	"ct": "connecticut",
	"de": "delaware",
	"fl": "florida",
	"ga": "georgia",
	"hi": "hawaii",
	"id": "idaho",
	"il": "illinois",
	"in": "indiana",
	"ia": "iowa",
	"ks": "kansas",
	"ky": "kentucky",
	"la": "louisiana",
	"me": "maine",
	"md": "maryland",
	"ma": "massachusetts",
	"mi": "michigan",
	"mn": "minnesota",
	"ms": "mississippi",
	"mo": "missouri",
	"mt": "montana",
	"ne": "nebraska",
	"nv": "nevada",
	"nh": "new hampshire",
	"nj": "new jersey",
	"nm": "new mexico",
	"ny": "new york",
	"nc": "north carolina",
	"nd": "north dakota",
	"oh": "ohio",
	"ok": "oklahoma",
	"or": "oregon",
	"pa": "pennsylvania",
	"ri": "rhode island",
	"sc": "south carolina",
	"sd": "south dakota",
	"tn": "tennessee",
	"tx": "texas",
	"ut": "utah",
	"vt": "vermont",
	"va": "virginia",
	"wa": "washington",
	"wv": "west virginia",
	"wi": "wisconsin",
	"wy": "wyoming",
	"dc": "district of columbia",
}

// cityAbbreviations maps common short city names to their full form
// (both already normalized). Checked in both directions.
var cityAbbreviations = map[string]string{
	"sf":     "san francisco",
	"la":     "los angeles",
	"nyc":    "new york",
	"ny":     "new york",
	"dc":     "washington",
	"philly": "philadelphia",
	"vegas":  "las vegas",
	"atl":    "atlanta",
	"chi":    "chicago",
	"nola":   "new orleans",
	"slc":    "salt lake city",
	"kc":     "kansas city",
	"okc":    "oklahoma city",
	"pdx":    "portland",
	"atx":    "austin",
	"sd":     "san diego",
	"sj":     "san jose",
}

const (
	// locationContainmentScore is the credit when one normalized
	// location contains the other.
	locationContainmentScore = 0.9
	// sharedTokenScore is the credit when the two locations share a
	// significant token ("San Francisco, CA" vs "San Francisco Bay").
	sharedTokenScore = 0.8
	// significantTokenLength is the minimum length for a token to count
	// as significant. Short tokens like "st" or "bay" are too noisy.
	significantTokenLength = 3
)

// normalizeLocation lowercases, strips punctuation, drops area/metro
// qualifiers, and expands US state abbreviations. Idempotent.
func normalizeLocation(s string) string {
	s = stripPunctuation(foldText(s))
	tokens := strings.Fields(s)

	// Drop leading "greater" and trailing "area"/"metro"/"metropolitan".
	for len(tokens) > 0 && tokens[0] == "greater" {
		tokens = tokens[1:]
	}
	for len(tokens) > 0 {
		last := tokens[len(tokens)-1]
		if last == "area" || last == "metro" || last == "metropolitan" {
			tokens = tokens[:len(tokens)-1]
			continue
		}
		break
	}

	for i, t := range tokens {
		if full, ok := stateAbbreviations[t]; ok {
			tokens[i] = full
		}
	}

	return strings.Join(tokens, " ")
}

// locationSimilarity compares two raw location strings.
func locationSimilarity(a, b string, sim similarity.Func) (float64, Rule) {
	na := normalizeLocation(a)
	nb := normalizeLocation(b)

	if na == nb {
		return 1.0, RuleExact
	}
	if na == "" || nb == "" {
		return 0.0, RuleFuzzy
	}

	if strings.Contains(na, nb) || strings.Contains(nb, na) {
		return locationContainmentScore, RuleContainment
	}

	if cityAbbreviations[na] == nb || cityAbbreviations[nb] == na {
		return 1.0, RuleAbbreviation
	}

	if sharedSignificantToken(na, nb) {
		return sharedTokenScore, RuleSharedToken
	}

	return sim(na, nb), RuleFuzzy
}

// sharedSignificantToken reports whether both token sets share a token
// longer than significantTokenLength.
func sharedSignificantToken(a, b string) bool {
	tokensA := strings.Fields(a)
	seen := make(map[string]bool, len(tokensA))
	for _, t := range tokensA {
		if len(t) > significantTokenLength {
			seen[t] = true
		}
	}
	for _, t := range strings.Fields(b) {
		if len(t) > significantTokenLength && seen[t] {
			return true
		}
	}
	return false
}
