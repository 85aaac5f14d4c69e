package match

import (
	"strings"

	"contact-scout/internal/similarity"
)

// nicknameGroups maps a canonical given name to its common variants.
// Any two names in the same group (including the canonical) are treated
// as equivalent.
var nicknameGroups = map[string][]string{
	"william":   {"bill", "billy", "will", "willy", "liam"},
	"robert":    {"bob", "bobby", "rob", "robbie", "bert"},
	"richard":   {"rick", "ricky", "dick", "rich", "richie"},
	"james":     {"jim", "jimmy", "jamie"},
	"john":      {"jack", "johnny", "jon"},
	"jonathan":  {"jon", "jonny", "nathan"},
	"michael":   {"mike", "mikey", "mick"},
	"christopher": {"chris", "topher", "kit"},
	"matthew":   {"matt", "matty"},
	"daniel":    {"dan", "danny"},
	"david":     {"dave", "davey"},
	"joseph":    {"joe", "joey"},
	"thomas":    {"tom", "tommy"},
	"charles":   {"charlie", "chuck", "chas"},
	"anthony":   {"tony"},
	"andrew":    {"andy", "drew"},
	"benjamin":  {"ben", "benny", "benji"},
	"samuel":    {"sam", "sammy"},
	"alexander": {"alex", "xander", "sasha"},
	"nicholas":  {"nick", "nicky", "cole"},
	"edward":    {"ed", "eddie", "ted", "teddy", "ned"},
	"steven":    {"steve"},
	"stephen":   {"steve"},
	"gregory":   {"greg"},
	"timothy":   {"tim", "timmy"},
	"kenneth":   {"ken", "kenny"},
	"ronald":    {"ron", "ronnie"},
	"lawrence":  {"larry"},
	"jeffrey":   {"jeff"},
	"frederick": {"fred", "freddie"},
	"raymond":   {"ray"},
	"peter":     {"pete"},
	"patrick":   {"pat", "paddy"},
	"elizabeth": {"liz", "lizzy", "beth", "betty", "eliza", "libby"},
	"katherine": {"kate", "katie", "kathy", "kat", "kitty"},
	"catherine": {"cathy", "cat", "kate"},
	"margaret":  {"maggie", "meg", "peggy", "marge"},
	"jennifer":  {"jen", "jenny"},
	"jessica":   {"jess", "jessie"},
	"rebecca":   {"becky", "becca"},
	"stephanie": {"steph"},
	"victoria":  {"vicky", "tori"},
	"patricia":  {"pat", "patty", "trish", "tricia"},
	"barbara":   {"barb", "barbie"},
	"susan":     {"sue", "susie", "suzy"},
	"deborah":   {"deb", "debbie"},
	"kimberly":  {"kim"},
	"michelle":  {"shelly"},
	"christina": {"chris", "christy", "tina"},
	"amanda":    {"mandy"},
	"samantha":  {"sam", "sammy"},
	"alexandra": {"alex", "lexi", "sandra"},
	"danielle":  {"dani"},
	"gabrielle": {"gabby"},
	"isabella":  {"bella", "izzy"},
	"abigail":   {"abby"},
	"natalie":   {"nat"},
	"veronica":  {"ronnie"},
	"dorothy":   {"dot", "dottie"},
	"florence":  {"flo"},
	"josephine": {"jo", "josie"},
	"virginia":  {"ginny"},
	"eleanor":   {"ellie", "nell"},
	"emily":     {"em", "emmy"},
}

// nicknameIndex maps every known variant (and canonical) to the set of
// canonical names it belongs to. A variant like "sam" can belong to
// several groups.
var nicknameIndex = buildNicknameIndex()

func buildNicknameIndex() map[string]map[string]bool {
	idx := make(map[string]map[string]bool, len(nicknameGroups)*3)
	add := func(variant, canonical string) {
		if idx[variant] == nil {
			idx[variant] = make(map[string]bool, 2)
		}
		idx[variant][canonical] = true
	}
	for canonical, variants := range nicknameGroups {
		add(canonical, canonical)
		for _, v := range variants {
			add(v, canonical)
		}
	}
	return idx
}

// nicknameEquivalent reports whether two first-name tokens belong to the
// same nickname group.
func nicknameEquivalent(a, b string) bool {
	groupsA := nicknameIndex[a]
	groupsB := nicknameIndex[b]
	if groupsA == nil || groupsB == nil {
		return false
	}
	for canonical := range groupsA {
		if groupsB[canonical] {
			return true
		}
	}
	return false
}

// lastNameStrongSimilarity is the cutoff above which matching surnames
// alone earn partial credit, covering initials ("J. Smith" vs "John Smith").
const lastNameStrongSimilarity = 0.9

// lastNameOnlyScore is the credit granted by the surname-only heuristic.
const lastNameOnlyScore = 0.7

// nameSimilarity compares two free-text full names. Beyond an exact
// normalized match, it takes the maximum of three independent
// strategies so valid reorderings and abbreviations are not penalized
// while some strong signal is still required.
func nameSimilarity(a, b string, sim similarity.Func) (float64, Rule) {
	a = foldText(a)
	b = foldText(b)

	if a == b {
		return 1.0, RuleExact
	}
	if a == "" || b == "" {
		return 0.0, RuleFuzzy
	}

	best := sim(a, b)
	rule := RuleFuzzy

	tokensA := strings.Fields(a)
	tokensB := strings.Fields(b)

	if len(tokensA) > 0 && len(tokensB) > 0 {
		firstA, firstB := tokensA[0], tokensB[0]
		lastA, lastB := tokensA[len(tokensA)-1], tokensB[len(tokensB)-1]

		// Component match: first and last tokens compared separately,
		// with the nickname table shortcutting the first-token score.
		var firstScore float64
		nicknameHit := false
		if firstA == firstB {
			firstScore = 1.0
		} else if nicknameEquivalent(firstA, firstB) {
			firstScore = 1.0
			nicknameHit = true
		} else {
			firstScore = sim(firstA, firstB)
		}

		lastScore := sim(lastA, lastB)
		component := (firstScore + lastScore) / 2

		if component > best {
			best = component
			if nicknameHit {
				rule = RuleNickname
			} else {
				rule = RuleFuzzy
			}
		}

		// Surname-only heuristic: a near-exact last name earns fixed
		// credit regardless of first-token mismatch.
		if lastScore >= lastNameStrongSimilarity && lastNameOnlyScore > best {
			best = lastNameOnlyScore
			rule = RuleLastName
		}
	}

	return best, rule
}
