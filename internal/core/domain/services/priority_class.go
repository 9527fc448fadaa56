package services

// PriorityClass is the discrete urgency tier derived from a priority score.
type PriorityClass int

const (
	// ClassUnknown represents an invalid or undefined class.
	ClassUnknown PriorityClass = iota

	// ClassCritical covers scores of 75 and above.
	ClassCritical

	// ClassHigh covers scores from 60 up to but excluding 75.
	ClassHigh

	// ClassMedium covers scores from 40 up to but excluding 60.
	ClassMedium

	// ClassLow covers scores below 40.
	ClassLow
)

// getPriorityClassStrings returns the wire representation of each class.
func getPriorityClassStrings() map[PriorityClass]string {
	return map[PriorityClass]string{
		ClassUnknown:  "unknown",
		ClassCritical: "critical",
		ClassHigh:     "high",
		ClassMedium:   "medium",
		ClassLow:      "low",
	}
}

// ClassifyScore maps a rounded priority score onto its class. The
// thresholds are closed at the lower bound: exactly 75.00 is critical,
// exactly 60.00 is high, exactly 40.00 is medium.
func ClassifyScore(score float64) PriorityClass {
	switch {
	case score >= 75:
		return ClassCritical
	case score >= 60:
		return ClassHigh
	case score >= 40:
		return ClassMedium
	default:
		return ClassLow
	}
}

// String returns the wire representation of the class.
// Implements fmt.Stringer.
func (c PriorityClass) String() string {
	if str, ok := getPriorityClassStrings()[c]; ok {
		return str
	}
	return "unknown"
}
