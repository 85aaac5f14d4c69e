package match

// Confidence is one of five ordinal bands derived purely from the total
// score.
type Confidence string

const (
	ConfidenceVeryHigh Confidence = "Very High"
	ConfidenceHigh     Confidence = "High"
	ConfidenceMedium   Confidence = "Medium"
	ConfidenceLow      Confidence = "Low"
	ConfidenceVeryLow  Confidence = "Very Low"
)

// Band boundaries, inclusive on the lower bound. Not configurable.
const (
	veryHighFloor = 80
	highFloor     = 60
	mediumFloor   = 40
	lowFloor      = 20
)

// Classify maps a total score to its confidence band.
func Classify(total int) Confidence {
	switch {
	case total >= veryHighFloor:
		return ConfidenceVeryHigh
	case total >= highFloor:
		return ConfidenceHigh
	case total >= mediumFloor:
		return ConfidenceMedium
	case total >= lowFloor:
		return ConfidenceLow
	default:
		return ConfidenceVeryLow
	}
}
