// Package services contains domain services implementing business logic
// that spans or derives from aggregates.
//
// PriorityScorer is the core of the triage system: it turns an Order into a
// ScoredOrder carrying a weighted 0-100 urgency score, a discrete priority
// class, summary facts (dominant temperature requirement, total value,
// earliest expiration), and the per-component breakdown. Rank sorts a batch
// of scored orders into a suggested delivery sequence.
//
// The scorer is pure and total: no I/O, no hidden clock (callers supply
// "now"), no failures for structurally valid orders, and identical inputs
// always reproduce identical output.
package services
