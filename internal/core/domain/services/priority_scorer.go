package services

import (
	"math"
	"sort"
	"time"

	"triage/internal/core/domain/model/order"
)

// Component weights. They sum to 1.0, so a score is always within 0-100
// while every component stays within its 0-100 range.
const (
	weightTemperature = 0.30
	weightExpiration  = 0.25
	weightCustomer    = 0.15
	weightValue       = 0.10
	weightWindow      = 0.15
	weightFragility   = 0.05
)

// PriorityScorer is a domain service that computes normalized urgency
// scores for delivery orders. It is stateless and pure: a score depends
// only on the order and the supplied reference time, so instances may be
// shared and invoked concurrently without coordination.
//
// Example usage:
//
//	scorer := services.NewPriorityScorer()
//	ranked, err := scorer.Rank(orders, time.Now())
//	if err != nil {
//	    // an order failed validation
//	}
//	for _, scored := range ranked {
//	    fmt.Printf("#%d %s %.2f %s\n", scored.SuggestedDeliveryOrder,
//	        scored.Order.ID(), scored.PriorityScore, scored.PriorityClass)
//	}
type PriorityScorer struct{}

// NewPriorityScorer creates a new PriorityScorer instance.
func NewPriorityScorer() PriorityScorer {
	return PriorityScorer{}
}

// Score computes the priority of a single order against the reference time.
//
// The score is the weighted sum of six 0-100 components: temperature
// requirement (0.30), expiration urgency (0.25), customer tier (0.15),
// order value (0.10), delivery-window urgency (0.15), and fragility (0.05),
// rounded half away from zero to two decimals. Classification reads the
// rounded score.
//
// Score never fails for a structurally valid order; the only error is an
// order that bypassed its constructor.
func (s PriorityScorer) Score(o *order.Order, now time.Time) (ScoredOrder, error) {
	if err := o.Validate(); err != nil {
		return ScoredOrder{}, err
	}

	products := o.Products()

	tempScore, tempLabel := highestTemperatureRequirement(products)
	earliestExpiration := earliestExpirationHours(products)
	totalValue := totalOrderValue(products)

	breakdown := ScoreBreakdown{
		Temperature: tempScore,
		Expiration:  expirationUrgencyScore(earliestExpiration),
		Customer:    o.CustomerPriority().UrgencyScore(),
		Value:       orderValueScore(totalValue),
		Window:      deliveryWindowScore(o.DeliveryWindowEnd().Sub(now).Minutes()),
		Fragility:   fragilityScore(products),
	}

	score := roundScore(
		breakdown.Temperature*weightTemperature +
			breakdown.Expiration*weightExpiration +
			breakdown.Customer*weightCustomer +
			breakdown.Value*weightValue +
			breakdown.Window*weightWindow +
			breakdown.Fragility*weightFragility)

	return ScoredOrder{
		Order:                  o,
		PriorityScore:          score,
		PriorityClass:          ClassifyScore(score),
		HighestTempRequirement: tempLabel,
		TotalValue:             totalValue,
		EarliestExpiration:     earliestExpiration,
		Breakdown:              breakdown,
	}, nil
}

// Rank scores every order and sorts the results descending by priority
// score, assigning SuggestedDeliveryOrder 1 to the most urgent. The sort is
// stable: equal scores preserve their relative input order.
func (s PriorityScorer) Rank(orders []*order.Order, now time.Time) ([]ScoredOrder, error) {
	scored := make([]ScoredOrder, 0, len(orders))
	for _, o := range orders {
		scoredOrder, err := s.Score(o, now)
		if err != nil {
			return nil, err
		}
		scored = append(scored, scoredOrder)
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].PriorityScore > scored[j].PriorityScore
	})

	for i := range scored {
		scored[i].SuggestedDeliveryOrder = i + 1
	}

	return scored, nil
}

// highestTemperatureRequirement returns the maximum temperature score among
// the products and the label of the first product attaining it. An empty
// product list falls back to the ambient defaults.
func highestTemperatureRequirement(products []order.Product) (float64, string) {
	score := -1.0
	label := ""
	for _, p := range products {
		if s := p.Category().TemperatureScore(); s > score {
			score = s
			label = p.Category().TemperatureLabel()
		}
	}

	if score < 0 {
		return order.CategoryUnknown.TemperatureScore(), order.CategoryUnknown.TemperatureLabel()
	}
	return score, label
}

// earliestExpirationHours returns the minimum remaining shelf life among the
// products, or 0 for an empty list.
func earliestExpirationHours(products []order.Product) float64 {
	if len(products) == 0 {
		return 0
	}

	earliest := products[0].ExpirationHours()
	for _, p := range products[1:] {
		if p.ExpirationHours() < earliest {
			earliest = p.ExpirationHours()
		}
	}
	return earliest
}

// totalOrderValue sums price times quantity across the products.
func totalOrderValue(products []order.Product) float64 {
	total := 0.0
	for _, p := range products {
		total += p.LineValue()
	}
	return total
}

// expirationUrgencyScore maps the shortest remaining shelf life onto the
// 0-100 scale.
func expirationUrgencyScore(hours float64) float64 {
	switch {
	case hours <= 3:
		return 100
	case hours <= 8:
		return 90
	case hours <= 24:
		return 70
	case hours <= 168:
		return 50
	default:
		return 30
	}
}

// orderValueScore maps the total order value onto the 0-100 scale.
func orderValueScore(totalValue float64) float64 {
	switch {
	case totalValue >= 500:
		return 100
	case totalValue >= 200:
		return 80
	case totalValue >= 100:
		return 60
	case totalValue >= 50:
		return 40
	default:
		return 20
	}
}

// deliveryWindowScore maps the minutes remaining until the delivery window
// closes onto the 0-100 scale. Negative minutes (overdue windows) fall into
// the most urgent bucket.
func deliveryWindowScore(minutesRemaining float64) float64 {
	switch {
	case minutesRemaining <= 15:
		return 100
	case minutesRemaining <= 30:
		return 90
	case minutesRemaining <= 60:
		return 70
	case minutesRemaining <= 120:
		return 50
	default:
		return 30
	}
}

// fragilityScore is 100 if any product is medicine, 30 otherwise.
func fragilityScore(products []order.Product) float64 {
	for _, p := range products {
		if p.Category() == order.CategoryMedicine {
			return 100
		}
	}
	return 30
}

// roundScore rounds half away from zero on the hundredths digit, matching
// the documented rounding of the priority score.
func roundScore(score float64) float64 {
	return math.Round(score*100) / 100
}
