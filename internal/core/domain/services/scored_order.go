package services

import "triage/internal/core/domain/model/order"

// ScoreBreakdown holds the per-component scores that produced a priority
// score. Each component is on the 0-100 scale before weighting. The
// breakdown is retained on every ScoredOrder so a ranking decision can be
// audited after the fact.
type ScoreBreakdown struct {
	Temperature float64
	Expiration  float64
	Customer    float64
	Value       float64
	Window      float64
	Fragility   float64
}

// ScoredOrder is the read-only projection of an Order produced by one
// scoring pass. It is never mutated after creation; rescoring the same
// order with the same reference time reproduces it exactly.
type ScoredOrder struct {
	// Order is the scored aggregate.
	Order *order.Order

	// PriorityScore is the weighted composite urgency, 0-100, two decimals.
	PriorityScore float64

	// PriorityClass is the discrete tier derived from PriorityScore.
	PriorityClass PriorityClass

	// HighestTempRequirement is the label of the most demanding storage
	// category among the order's products.
	HighestTempRequirement string

	// TotalValue is the sum of price times quantity across products.
	TotalValue float64

	// EarliestExpiration is the minimum remaining shelf life in hours
	// across products.
	EarliestExpiration float64

	// SuggestedDeliveryOrder is the 1-based rank within a ranked batch.
	// Zero until assigned by Rank; Score alone never sets it.
	SuggestedDeliveryOrder int

	// Breakdown preserves the unweighted component scores.
	Breakdown ScoreBreakdown
}
