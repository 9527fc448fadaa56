package order

// CustomerPriority is the service tier the customer ordered under.
// It drives the customer component of the priority score.
//
// Unrecognized wire values map to PriorityUnknown, which scores the
// standard default of 50.
type CustomerPriority int

const (
	// PriorityUnknown represents a tier this service does not recognize.
	// It scores the standard default.
	PriorityUnknown CustomerPriority = iota

	// PriorityUrgent is the highest paid tier.
	PriorityUrgent

	// PriorityHigh is the expedited tier.
	PriorityHigh

	// PriorityStandard is the regular tier.
	PriorityStandard

	// PriorityEconomy is the slowest, cheapest tier.
	PriorityEconomy
)

// defaultUrgencyScore applies to unrecognized customer priorities.
const defaultUrgencyScore float64 = 50

// getUrgencyScores returns the static tier lookup table.
// The table is configuration data, never mutated at runtime.
func getUrgencyScores() map[CustomerPriority]float64 {
	return map[CustomerPriority]float64{
		PriorityUrgent:   100,
		PriorityHigh:     75,
		PriorityStandard: 50,
		PriorityEconomy:  25,
	}
}

// getCustomerPriorityStrings returns the wire representation of each tier.
func getCustomerPriorityStrings() map[CustomerPriority]string {
	return map[CustomerPriority]string{
		PriorityUnknown:  "unknown",
		PriorityUrgent:   "urgent",
		PriorityHigh:     "high",
		PriorityStandard: "standard",
		PriorityEconomy:  "economy",
	}
}

// CustomerPriorityFromString parses a wire tier value. Unrecognized values
// map to PriorityUnknown rather than an error so that scoring stays total.
func CustomerPriorityFromString(s string) CustomerPriority {
	for priority, str := range getCustomerPriorityStrings() {
		if str == s {
			return priority
		}
	}
	return PriorityUnknown
}

// String returns the wire representation of the tier.
// Implements fmt.Stringer.
func (p CustomerPriority) String() string {
	if str, ok := getCustomerPriorityStrings()[p]; ok {
		return str
	}
	return "unknown"
}

// UrgencyScore returns the customer component score for the tier.
// Unrecognized tiers score the standard default of 50.
func (p CustomerPriority) UrgencyScore() float64 {
	if score, ok := getUrgencyScores()[p]; ok {
		return score
	}
	return defaultUrgencyScore
}
