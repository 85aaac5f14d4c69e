// Package similarity provides the string-distance primitives used by the
// attribute matchers. Both metrics return a score in [0,1] and expect
// case folding to have been done by the caller.
package similarity

import (
	"github.com/agnivade/levenshtein"
)

// Algorithm selects which primitive a matcher uses for its fuzzy fallback.
type Algorithm string

const (
	// AlgorithmEditRatio scores by normalized edit distance.
	AlgorithmEditRatio Algorithm = "edit-ratio"
	// AlgorithmJaroWinkler scores by Jaro similarity with a common-prefix
	// boost. Default: short identity strings benefit more from prefix
	// agreement than from raw edit distance.
	AlgorithmJaroWinkler Algorithm = "jaro-winkler"
)

// Func is a string similarity function returning a score in [0,1].
type Func func(a, b string) float64

// For returns the similarity function for the given algorithm.
// Unknown algorithms fall back to Jaro-Winkler.
func For(alg Algorithm) Func {
	switch alg {
	case AlgorithmEditRatio:
		return EditRatio
	case AlgorithmJaroWinkler:
		return JaroWinkler
	default:
		return JaroWinkler
	}
}

// EditRatio returns 1 - editDistance/maxLen. Two empty strings are
// identical (1.0); one empty string against a non-empty one scores 0.
func EditRatio(a, b string) float64 {
	if a == b {
		return 1.0
	}
	if a == "" || b == "" {
		return 0.0
	}

	distance := levenshtein.ComputeDistance(a, b)
	maxLen := max(len([]rune(a)), len([]rune(b)))

	return 1.0 - float64(distance)/float64(maxLen)
}

// Jaro returns the Jaro similarity: matching characters within a window
// of max(len)/2-1, with a penalty for transpositions.
func Jaro(a, b string) float64 {
	r1 := []rune(a)
	r2 := []rune(b)

	if len(r1) == 0 && len(r2) == 0 {
		return 1.0
	}
	if len(r1) == 0 || len(r2) == 0 {
		return 0.0
	}

	matchWindow := max(0, max(len(r1), len(r2))/2-1)

	matched1 := make([]bool, len(r1))
	matched2 := make([]bool, len(r2))

	matches := 0
	for i := range r1 {
		start := max(0, i-matchWindow)
		end := min(len(r2), i+matchWindow+1)
		for j := start; j < end; j++ {
			if matched2[j] || r1[i] != r2[j] {
				continue
			}
			matched1[i] = true
			matched2[j] = true
			matches++
			break
		}
	}

	if matches == 0 {
		return 0.0
	}

	transpositions := 0
	k := 0
	for i := range r1 {
		if !matched1[i] {
			continue
		}
		for !matched2[k] {
			k++
		}
		if r1[i] != r2[k] {
			transpositions++
		}
		k++
	}

	return (float64(matches)/float64(len(r1)) +
		float64(matches)/float64(len(r2)) +
		float64(matches-transpositions/2)/float64(matches)) / 3.0
}

// winklerPrefixCap bounds the common-prefix bonus at 4 leading characters.
const winklerPrefixCap = 4

// winklerScaling is the standard per-character prefix bonus factor.
const winklerScaling = 0.1

// JaroWinkler boosts the Jaro similarity for strings sharing a common
// prefix. Equal strings score 1.0; one empty string scores 0.
func JaroWinkler(a, b string) float64 {
	if a == b {
		return 1.0
	}

	jaro := Jaro(a, b)
	if jaro == 0 {
		return 0.0
	}

	r1 := []rune(a)
	r2 := []rune(b)

	prefix := 0
	limit := min(winklerPrefixCap, min(len(r1), len(r2)))
	for i := 0; i < limit; i++ {
		if r1[i] != r2[i] {
			break
		}
		prefix++
	}

	return jaro + float64(prefix)*winklerScaling*(1.0-jaro)
}
