package similarity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEditRatio(t *testing.T) {
	tests := []struct {
		name     string
		a        string
		b        string
		expected float64
	}{
		{"identical", "smith", "smith", 1.0},
		{"both empty", "", "", 1.0},
		{"one empty", "smith", "", 0.0},
		{"other empty", "", "smith", 0.0},
		{"single substitution", "smith", "smyth", 0.8},
		{"completely different", "abc", "xyz", 0.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, EditRatio(tt.a, tt.b), 0.0001)
		})
	}
}

func TestEditRatioSymmetric(t *testing.T) {
	assert.InDelta(t, EditRatio("jonathan", "john"), EditRatio("john", "jonathan"), 0.0001)
}

func TestJaro(t *testing.T) {
	tests := []struct {
		name     string
		a        string
		b        string
		expected float64
	}{
		{"identical", "martha", "martha", 1.0},
		{"both empty", "", "", 1.0},
		{"one empty", "martha", "", 0.0},
		{"classic martha/marhta", "martha", "marhta", 0.944444},
		{"classic dixon/dicksonx", "dixon", "dicksonx", 0.766667},
		{"no matches", "abc", "xyz", 0.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, Jaro(tt.a, tt.b), 0.0001)
		})
	}
}

func TestJaroWinkler(t *testing.T) {
	tests := []struct {
		name     string
		a        string
		b        string
		expected float64
	}{
		{"identical", "william", "william", 1.0},
		{"both empty", "", "", 1.0},
		{"one empty", "", "william", 0.0},
		{"classic martha/marhta", "martha", "marhta", 0.961111},
		{"classic dixon/dicksonx", "dixon", "dicksonx", 0.813333},
		{"no matches", "abc", "xyz", 0.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, JaroWinkler(tt.a, tt.b), 0.0001)
		})
	}
}

func TestJaroWinklerPrefixBoost(t *testing.T) {
	// Same Jaro-relevant edits, but a shared prefix must score higher.
	withPrefix := JaroWinkler("prefixed", "prefixes")
	jaroOnly := Jaro("prefixed", "prefixes")
	assert.Greater(t, withPrefix, jaroOnly)

	// Bonus is capped at four leading characters.
	capped := JaroWinkler("abcdefgh", "abcdefgx")
	assert.LessOrEqual(t, capped, 1.0)
}

func TestFor(t *testing.T) {
	assert.InDelta(t, 0.8, For(AlgorithmEditRatio)("smith", "smyth"), 0.0001)
	assert.InDelta(t, JaroWinkler("martha", "marhta"), For(AlgorithmJaroWinkler)("martha", "marhta"), 0.0001)
	// Unknown algorithm falls back to Jaro-Winkler.
	assert.InDelta(t, JaroWinkler("martha", "marhta"), For("bogus")("martha", "marhta"), 0.0001)
}
