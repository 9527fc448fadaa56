package http

import (
	"time"

	"triage/internal/core/application/usecases/queries"
	"triage/internal/core/domain/model/kernel"
	"triage/internal/core/domain/model/order"
	"triage/internal/core/domain/services"
)

// ErrorResponse is the JSON error envelope returned for all failures.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// ProductRequest is one product line of an incoming order payload.
type ProductRequest struct {
	ID              string  `json:"id" validate:"required"`
	Name            string  `json:"name" validate:"required"`
	Category        string  `json:"category"`
	Price           float64 `json:"price" validate:"gte=0"`
	Quantity        int     `json:"quantity" validate:"gt=0"`
	ExpirationHours float64 `json:"expiration_hours" validate:"gte=0"`
}

// OrderRequest is an incoming order payload. Timestamps are ISO-8601
// strings on the wire, bound to time.Time by echo's JSON binder.
type OrderRequest struct {
	ID                string           `json:"id" validate:"required,uuid"`
	CustomerName      string           `json:"customer_name" validate:"required"`
	CustomerAddress   string           `json:"customer_address" validate:"required"`
	CustomerPriority  string           `json:"customer_priority"`
	OrderTime         time.Time        `json:"order_time" validate:"required"`
	DeliveryWindowEnd time.Time        `json:"delivery_window_end" validate:"required"`
	Products          []ProductRequest `json:"products" validate:"required,min=1,dive"`
}

// RankOrdersRequest is the batch scoring payload. Orders is a pointer so a
// missing or null field can be told apart from an empty list and rejected.
type RankOrdersRequest struct {
	Orders *[]OrderRequest `json:"orders"`
}

// ScoreBreakdownResponse exposes the six component scores of one order.
type ScoreBreakdownResponse struct {
	Temperature float64 `json:"temperature"`
	Expiration  float64 `json:"expiration"`
	Customer    float64 `json:"customer"`
	Value       float64 `json:"value"`
	Window      float64 `json:"window"`
	Fragility   float64 `json:"fragility"`
}

// ScoredOrderResponse is one ranked order on the wire.
type ScoredOrderResponse struct {
	ID                     string                 `json:"id"`
	CustomerName           string                 `json:"customer_name"`
	CustomerAddress        string                 `json:"customer_address"`
	CustomerPriority       string                 `json:"customer_priority"`
	OrderTime              time.Time              `json:"order_time"`
	DeliveryWindowEnd      time.Time              `json:"delivery_window_end"`
	PriorityScore          float64                `json:"priority_score"`
	PriorityClass          string                 `json:"priority_class"`
	HighestTempRequirement string                 `json:"highest_temp_requirement"`
	TotalValue             float64                `json:"total_value"`
	EarliestExpiration     float64                `json:"earliest_expiration"`
	SuggestedDeliveryOrder int                    `json:"suggested_delivery_order"`
	Breakdown              ScoreBreakdownResponse `json:"breakdown"`
}

// SummaryResponse aggregates class counts and the average score of a batch.
type SummaryResponse struct {
	Critical int     `json:"critical"`
	High     int     `json:"high"`
	Medium   int     `json:"medium"`
	Low      int     `json:"low"`
	AvgScore float64 `json:"avg_score"`
}

// RankOrdersResponse is the batch scoring result.
type RankOrdersResponse struct {
	Success     bool                  `json:"success"`
	TotalOrders int                   `json:"total_orders"`
	Orders      []ScoredOrderResponse `json:"orders"`
	Summary     SummaryResponse       `json:"summary"`
}

// RankedOrdersResponse is the persisted ranked view, both live and as the
// dashboard snapshot.
type RankedOrdersResponse struct {
	GeneratedAt time.Time             `json:"generated_at"`
	TotalOrders int                   `json:"total_orders"`
	Orders      []ScoredOrderResponse `json:"orders"`
	Summary     SummaryResponse       `json:"summary"`
}

// toDomainOrder converts an order payload into a validated domain
// aggregate. Unknown category and priority strings pass through as their
// Unknown variants; structural violations return an error.
func toDomainOrder(req OrderRequest) (*order.Order, error) {
	id, err := kernel.UUIDFromString(req.ID)
	if err != nil {
		return nil, err
	}

	products := make([]order.Product, 0, len(req.Products))
	for _, p := range req.Products {
		product, productErr := order.NewProduct(
			p.ID,
			p.Name,
			order.CategoryFromString(p.Category),
			p.Price,
			p.Quantity,
			p.ExpirationHours,
		)
		if productErr != nil {
			return nil, productErr
		}
		products = append(products, product)
	}

	return order.NewOrder(
		id,
		req.CustomerName,
		req.CustomerAddress,
		order.CustomerPriorityFromString(req.CustomerPriority),
		req.OrderTime,
		req.DeliveryWindowEnd,
		products,
	)
}

// toScoredOrderResponse maps a scored domain order to its wire shape.
func toScoredOrderResponse(scored services.ScoredOrder) ScoredOrderResponse {
	return ScoredOrderResponse{
		ID:                     scored.Order.ID().String(),
		CustomerName:           scored.Order.CustomerName(),
		CustomerAddress:        scored.Order.CustomerAddress(),
		CustomerPriority:       scored.Order.CustomerPriority().String(),
		OrderTime:              scored.Order.OrderTime(),
		DeliveryWindowEnd:      scored.Order.DeliveryWindowEnd(),
		PriorityScore:          scored.PriorityScore,
		PriorityClass:          scored.PriorityClass.String(),
		HighestTempRequirement: scored.HighestTempRequirement,
		TotalValue:             scored.TotalValue,
		EarliestExpiration:     scored.EarliestExpiration,
		SuggestedDeliveryOrder: scored.SuggestedDeliveryOrder,
		Breakdown: ScoreBreakdownResponse{
			Temperature: scored.Breakdown.Temperature,
			Expiration:  scored.Breakdown.Expiration,
			Customer:    scored.Breakdown.Customer,
			Value:       scored.Breakdown.Value,
			Window:      scored.Breakdown.Window,
			Fragility:   scored.Breakdown.Fragility,
		},
	}
}

// toSummaryResponse maps a batch summary to its wire shape.
func toSummaryResponse(summary services.BatchSummary) SummaryResponse {
	return SummaryResponse{
		Critical: summary.Critical,
		High:     summary.High,
		Medium:   summary.Medium,
		Low:      summary.Low,
		AvgScore: summary.AvgScore,
	}
}

// toRankedOrdersResponse maps a ranked query response to its wire shape.
func toRankedOrdersResponse(response queries.GetRankedOrdersQueryResponse) RankedOrdersResponse {
	orders := make([]ScoredOrderResponse, 0, len(response.Orders))
	for _, o := range response.Orders {
		orders = append(orders, ScoredOrderResponse{
			ID:                     o.ID.String(),
			CustomerName:           o.CustomerName,
			CustomerAddress:        o.CustomerAddress,
			CustomerPriority:       o.CustomerPriority.String(),
			OrderTime:              o.OrderTime,
			DeliveryWindowEnd:      o.DeliveryWindowEnd,
			PriorityScore:          o.PriorityScore,
			PriorityClass:          o.PriorityClass.String(),
			HighestTempRequirement: o.HighestTempRequirement,
			TotalValue:             o.TotalValue,
			EarliestExpiration:     o.EarliestExpiration,
			SuggestedDeliveryOrder: o.SuggestedDeliveryOrder,
			Breakdown: ScoreBreakdownResponse{
				Temperature: o.Breakdown.Temperature,
				Expiration:  o.Breakdown.Expiration,
				Customer:    o.Breakdown.Customer,
				Value:       o.Breakdown.Value,
				Window:      o.Breakdown.Window,
				Fragility:   o.Breakdown.Fragility,
			},
		})
	}

	return RankedOrdersResponse{
		GeneratedAt: response.GeneratedAt,
		TotalOrders: response.TotalOrders,
		Orders:      orders,
		Summary:     toSummaryResponse(response.Summary),
	}
}
