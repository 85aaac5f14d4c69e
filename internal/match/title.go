package match

import (
	"strings"

	"contact-scout/internal/similarity"
)

// titleSynonymGroups holds role terms treated as interchangeable. Two
// titles containing terms from the same group score as synonyms even
// when the surrounding words differ.
var titleSynonymGroups = [][]string{
	{"engineer", "developer", "programmer", "swe", "sde"},
	{"senior", "sr", "lead", "principal", "staff"},
	{"junior", "jr", "associate", "entry"},
	{"manager", "mgr", "management"},
	{"director", "head"},
	{"vp", "vice president"},
	{"ceo", "chief executive officer", "founder", "cofounder", "co founder"},
	{"cto", "chief technology officer", "chief technical officer"},
	{"cfo", "chief financial officer"},
	{"coo", "chief operating officer"},
	{"cmo", "chief marketing officer"},
	{"ciso", "chief information security officer"},
	{"designer", "ux designer", "ui designer", "product designer"},
	{"analyst", "analytics"},
	{"consultant", "advisor", "adviser"},
	{"recruiter", "talent", "sourcer"},
	{"salesperson", "sales", "account executive", "ae"},
	{"marketer", "marketing"},
	{"scientist", "researcher", "research"},
	{"administrator", "admin", "sysadmin"},
	{"architect", "architecture"},
	{"devops", "sre", "site reliability"},
	{"pm", "product manager", "program manager", "project manager"},
}

// titleSynonymScore is the credit when both titles share a synonym group.
const titleSynonymScore = 0.85

// titleContainmentScore is the credit when one normalized title contains
// the other ("Engineer" vs "Software Engineer").
const titleContainmentScore = 0.9

// normalizeTitle lowercases, strips punctuation, and collapses
// whitespace. Idempotent.
func normalizeTitle(s string) string {
	return stripPunctuation(foldText(s))
}

// titleSimilarity compares two raw job-title strings.
func titleSimilarity(a, b string, sim similarity.Func) (float64, Rule) {
	na := normalizeTitle(a)
	nb := normalizeTitle(b)

	if na == nb {
		return 1.0, RuleExact
	}
	if na == "" || nb == "" {
		return 0.0, RuleFuzzy
	}

	if strings.Contains(na, nb) || strings.Contains(nb, na) {
		return titleContainmentScore, RuleContainment
	}

	if sharedSynonymGroup(na, nb) {
		return titleSynonymScore, RuleSynonym
	}

	return sim(na, nb), RuleFuzzy
}

// sharedSynonymGroup reports whether both titles contain a term from the
// same synonym group. Single-word terms must match whole words so "ae"
// cannot fire inside "team".
func sharedSynonymGroup(a, b string) bool {
	for _, group := range titleSynonymGroups {
		if containsGroupTerm(a, group) && containsGroupTerm(b, group) {
			return true
		}
	}
	return false
}

func containsGroupTerm(title string, group []string) bool {
	for _, term := range group {
		if strings.Contains(term, " ") {
			if strings.Contains(title, term) {
				return true
			}
			continue
		}
		for _, token := range strings.Fields(title) {
			if token == term {
				return true
			}
		}
	}
	return false
}
