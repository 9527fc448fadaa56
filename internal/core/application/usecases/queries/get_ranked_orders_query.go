// Package queries contains read-side operations of the CQRS architecture.
// Query handlers read the database directly and return plain response
// structs; they never mutate state.
package queries

import (
	"errors"
	"time"

	"triage/internal/core/domain/model/kernel"
	"triage/internal/core/domain/model/order"
	"triage/internal/core/domain/services"
	"triage/internal/pkg/guard"
)

var ErrGetRankedOrdersQueryIsNotConstructed = errors.New(
	"GetRankedOrdersQuery must be created via NewGetRankedOrdersQuery constructor",
)

// GetRankedOrdersQuery retrieves all pending orders ranked by urgency.
// This is the read model behind the driver-facing ranked list and the
// dashboard.
//
// Example:
//
//	query := NewGetRankedOrdersQuery()
//	handler := NewGetRankedOrdersQueryHandler(db)
//
//	response, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to rank pending orders: %w", err)
//	}
//	for _, o := range response.Orders {
//	    fmt.Printf("#%d %.2f %s\n", o.SuggestedDeliveryOrder, o.PriorityScore, o.ID)
//	}
type GetRankedOrdersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetRankedOrdersQuery creates a query for the ranked pending orders.
// This is a parameterless query; the reference time is taken at execution.
func NewGetRankedOrdersQuery() GetRankedOrdersQuery {
	return GetRankedOrdersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetRankedOrdersQueryIsNotConstructed if validation fails.
func (q GetRankedOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetRankedOrdersQueryIsNotConstructed)
}

// RankedOrderResponse is one ranked order as exposed to read-side consumers.
type RankedOrderResponse struct {
	ID                     kernel.UUID
	CustomerName           string
	CustomerAddress        string
	CustomerPriority       order.CustomerPriority
	OrderTime              time.Time
	DeliveryWindowEnd      time.Time
	PriorityScore          float64
	PriorityClass          services.PriorityClass
	HighestTempRequirement string
	TotalValue             float64
	EarliestExpiration     float64
	SuggestedDeliveryOrder int
	Breakdown              services.ScoreBreakdown
}

// GetRankedOrdersQueryResponse is a full ranked view over the pending
// orders: the sorted orders, their batch summary, and the reference time
// the scores were computed against.
type GetRankedOrdersQueryResponse struct {
	GeneratedAt time.Time
	TotalOrders int
	Orders      []RankedOrderResponse
	Summary     services.BatchSummary
}
