package services_test

import (
	"testing"
	"time"

	"triage/internal/core/domain/model/kernel"
	"triage/internal/core/domain/model/order"
	"triage/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustProduct(t *testing.T, category order.Category, price float64, quantity int, expirationHours float64) order.Product {
	t.Helper()
	p, err := order.NewProduct("P-1", "Test Product", category, price, quantity, expirationHours)
	require.NoError(t, err)
	return p
}

func mustOrder(
	t *testing.T,
	priority order.CustomerPriority,
	orderTime time.Time,
	windowEnd time.Time,
	products ...order.Product,
) *order.Order {
	t.Helper()
	o, err := order.NewOrder(kernel.NewUUID(), "Dana Okonkwo", "12 Harbor Lane", priority, orderTime, windowEnd, products)
	require.NoError(t, err)
	return o
}

func TestPriorityScorer_Score_Scenarios(t *testing.T) {
	scorer := services.NewPriorityScorer()
	now := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)

	t.Run("urgent hot food closing in 25 minutes scores critical", func(t *testing.T) {
		// temp 100, expiration 100 (3h), customer 100, value 40 (65>=50),
		// window 90 (25min), fragility 30 -> 89.00
		o := mustOrder(t, order.PriorityUrgent,
			now.Add(-10*time.Minute), now.Add(25*time.Minute),
			mustProduct(t, order.CategoryHotFood, 65, 1, 3))

		scored, err := scorer.Score(o, now)

		require.NoError(t, err)
		assert.InDelta(t, 89.0, scored.PriorityScore, 1e-9)
		assert.Equal(t, services.ClassCritical, scored.PriorityClass)
		assert.Equal(t, "hot 60–70°C", scored.HighestTempRequirement)
		assert.InDelta(t, 65.0, scored.TotalValue, 1e-9)
		assert.InDelta(t, 3.0, scored.EarliestExpiration, 1e-9)
		assert.Equal(t, services.ScoreBreakdown{
			Temperature: 100, Expiration: 100, Customer: 100,
			Value: 40, Window: 90, Fragility: 30,
		}, scored.Breakdown)
	})

	t.Run("standard medicine order with distant window scores medium", func(t *testing.T) {
		// temp 60, expiration 30 (>168h), customer 50, value 60 (120>=100),
		// window 30 (200min), fragility 100 -> 48.50
		o := mustOrder(t, order.PriorityStandard,
			now.Add(-time.Hour), now.Add(200*time.Minute),
			mustProduct(t, order.CategoryMedicine, 120, 1, 17520))

		scored, err := scorer.Score(o, now)

		require.NoError(t, err)
		assert.InDelta(t, 48.5, scored.PriorityScore, 1e-9)
		assert.Equal(t, services.ClassMedium, scored.PriorityClass)
		assert.Equal(t, "ambient (medicine)", scored.HighestTempRequirement)
		assert.InDelta(t, 120.0, scored.TotalValue, 1e-9)
		assert.Equal(t, 100.0, scored.Breakdown.Fragility)
	})

	t.Run("score never assigns a delivery rank", func(t *testing.T) {
		o := mustOrder(t, order.PriorityStandard,
			now.Add(-time.Hour), now.Add(3*time.Hour),
			mustProduct(t, order.CategorySnack, 10, 2, 48))

		scored, err := scorer.Score(o, now)

		require.NoError(t, err)
		assert.Equal(t, 0, scored.SuggestedDeliveryOrder)
	})

	t.Run("rejects an order that bypassed its constructor", func(t *testing.T) {
		_, err := scorer.Score(&order.Order{}, now)

		require.Error(t, err)
		assert.ErrorIs(t, err, order.ErrOrderIsNotConstructed)
	})
}

func TestPriorityScorer_Score_Components(t *testing.T) {
	scorer := services.NewPriorityScorer()
	now := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)

	t.Run("temperature label follows the most demanding product", func(t *testing.T) {
		o := mustOrder(t, order.PriorityStandard,
			now.Add(-time.Hour), now.Add(3*time.Hour),
			mustProduct(t, order.CategorySnack, 10, 1, 300),
			mustProduct(t, order.CategoryFrozen, 15, 1, 400),
			mustProduct(t, order.CategoryBeverage, 5, 1, 500))

		scored, err := scorer.Score(o, now)

		require.NoError(t, err)
		assert.Equal(t, 90.0, scored.Breakdown.Temperature)
		assert.Equal(t, "frozen −18°C", scored.HighestTempRequirement)
	})

	t.Run("temperature label ties break on first product", func(t *testing.T) {
		o := mustOrder(t, order.PriorityStandard,
			now.Add(-time.Hour), now.Add(3*time.Hour),
			mustProduct(t, order.CategorySnack, 10, 1, 300),
			mustProduct(t, order.CategoryDailyGoods, 10, 1, 300))

		scored, err := scorer.Score(o, now)

		require.NoError(t, err)
		assert.Equal(t, 20.0, scored.Breakdown.Temperature)
		assert.Equal(t, "ambient", scored.HighestTempRequirement)
	})

	t.Run("unknown category scores the ambient fallback", func(t *testing.T) {
		o := mustOrder(t, order.PriorityStandard,
			now.Add(-time.Hour), now.Add(3*time.Hour),
			mustProduct(t, order.CategoryFromString("hoverboard_parts"), 10, 1, 300))

		scored, err := scorer.Score(o, now)

		require.NoError(t, err)
		assert.Equal(t, 20.0, scored.Breakdown.Temperature)
		assert.Equal(t, "ambient", scored.HighestTempRequirement)
	})

	t.Run("expiration urgency uses the soonest-expiring product", func(t *testing.T) {
		o := mustOrder(t, order.PriorityStandard,
			now.Add(-time.Hour), now.Add(3*time.Hour),
			mustProduct(t, order.CategorySnack, 10, 1, 300),
			mustProduct(t, order.CategoryChilled, 10, 1, 7))

		scored, err := scorer.Score(o, now)

		require.NoError(t, err)
		assert.InDelta(t, 7.0, scored.EarliestExpiration, 1e-9)
		assert.Equal(t, 90.0, scored.Breakdown.Expiration)
	})

	t.Run("expiration buckets are closed at the upper bound", func(t *testing.T) {
		cases := []struct {
			hours    float64
			expected float64
		}{
			{3, 100}, {3.01, 90}, {8, 90}, {8.01, 70},
			{24, 70}, {24.01, 50}, {168, 50}, {168.01, 30},
		}
		for _, tc := range cases {
			o := mustOrder(t, order.PriorityStandard,
				now.Add(-time.Hour), now.Add(3*time.Hour),
				mustProduct(t, order.CategorySnack, 10, 1, tc.hours))

			scored, err := scorer.Score(o, now)

			require.NoError(t, err)
			assert.Equal(t, tc.expected, scored.Breakdown.Expiration,
				"expiration %v hours", tc.hours)
		}
	})

	t.Run("order value sums price times quantity", func(t *testing.T) {
		o := mustOrder(t, order.PriorityStandard,
			now.Add(-time.Hour), now.Add(3*time.Hour),
			mustProduct(t, order.CategorySnack, 120, 3, 300),
			mustProduct(t, order.CategoryBeverage, 70, 2, 300))

		scored, err := scorer.Score(o, now)

		require.NoError(t, err)
		assert.InDelta(t, 500.0, scored.TotalValue, 1e-9)
		assert.Equal(t, 100.0, scored.Breakdown.Value)
	})

	t.Run("overdue delivery window scores maximum urgency", func(t *testing.T) {
		o := mustOrder(t, order.PriorityStandard,
			now.Add(-3*time.Hour), now.Add(-45*time.Minute),
			mustProduct(t, order.CategorySnack, 10, 1, 300))

		scored, err := scorer.Score(o, now)

		require.NoError(t, err)
		assert.Equal(t, 100.0, scored.Breakdown.Window)
	})

	t.Run("delivery window buckets", func(t *testing.T) {
		cases := []struct {
			minutes  time.Duration
			expected float64
		}{
			{15 * time.Minute, 100},
			{16 * time.Minute, 90},
			{30 * time.Minute, 90},
			{45 * time.Minute, 70},
			{90 * time.Minute, 50},
			{240 * time.Minute, 30},
		}
		for _, tc := range cases {
			o := mustOrder(t, order.PriorityStandard,
				now.Add(-time.Hour), now.Add(tc.minutes),
				mustProduct(t, order.CategorySnack, 10, 1, 300))

			scored, err := scorer.Score(o, now)

			require.NoError(t, err)
			assert.Equal(t, tc.expected, scored.Breakdown.Window,
				"window closing in %v", tc.minutes)
		}
	})

	t.Run("any medicine product makes the order fragile", func(t *testing.T) {
		o := mustOrder(t, order.PriorityStandard,
			now.Add(-time.Hour), now.Add(3*time.Hour),
			mustProduct(t, order.CategorySnack, 10, 1, 300),
			mustProduct(t, order.CategoryMedicine, 30, 1, 700))

		scored, err := scorer.Score(o, now)

		require.NoError(t, err)
		assert.Equal(t, 100.0, scored.Breakdown.Fragility)
	})

	t.Run("unknown customer priority scores the standard default", func(t *testing.T) {
		o := mustOrder(t, order.CustomerPriorityFromString("vip_platinum"),
			now.Add(-time.Hour), now.Add(3*time.Hour),
			mustProduct(t, order.CategorySnack, 10, 1, 300))

		scored, err := scorer.Score(o, now)

		require.NoError(t, err)
		assert.Equal(t, 50.0, scored.Breakdown.Customer)
	})
}

func TestPriorityScorer_Score_Properties(t *testing.T) {
	scorer := services.NewPriorityScorer()
	now := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)

	t.Run("score stays within 0 and 100", func(t *testing.T) {
		categories := []order.Category{
			order.CategoryHotFood, order.CategoryFrozen, order.CategoryChilled,
			order.CategoryBeverage, order.CategorySnack, order.CategoryDailyGoods,
			order.CategoryMedicine, order.CategoryUnknown,
		}
		priorities := []order.CustomerPriority{
			order.PriorityUrgent, order.PriorityHigh,
			order.PriorityStandard, order.PriorityEconomy,
		}

		for _, category := range categories {
			for _, priority := range priorities {
				for _, minutes := range []time.Duration{-60, 10, 45, 300} {
					o := mustOrder(t, priority,
						now.Add(-time.Hour), now.Add(minutes*time.Minute),
						mustProduct(t, category, 700, 1, 2))

					scored, err := scorer.Score(o, now)

					require.NoError(t, err)
					assert.GreaterOrEqual(t, scored.PriorityScore, 0.0)
					assert.LessOrEqual(t, scored.PriorityScore, 100.0)
				}
			}
		}
	})

	t.Run("scoring is idempotent for the same order and reference time", func(t *testing.T) {
		o := mustOrder(t, order.PriorityHigh,
			now.Add(-time.Hour), now.Add(70*time.Minute),
			mustProduct(t, order.CategoryChilled, 42.5, 3, 19))

		first, err := scorer.Score(o, now)
		require.NoError(t, err)
		second, err := scorer.Score(o, now)
		require.NoError(t, err)

		assert.Equal(t, first, second)
	})
}

func TestClassifyScore_Boundaries(t *testing.T) {
	cases := []struct {
		score    float64
		expected services.PriorityClass
	}{
		{75.00, services.ClassCritical},
		{74.99, services.ClassHigh},
		{60.00, services.ClassHigh},
		{59.99, services.ClassMedium},
		{40.00, services.ClassMedium},
		{39.99, services.ClassLow},
		{0, services.ClassLow},
		{100, services.ClassCritical},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.expected, services.ClassifyScore(tc.score),
			"score %.2f", tc.score)
	}
}

func TestPriorityScorer_Rank(t *testing.T) {
	scorer := services.NewPriorityScorer()
	now := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)

	t.Run("ranks descending with a contiguous 1..N sequence", func(t *testing.T) {
		low := mustOrder(t, order.PriorityEconomy,
			now.Add(-time.Hour), now.Add(5*time.Hour),
			mustProduct(t, order.CategoryDailyGoods, 12, 1, 700))
		critical := mustOrder(t, order.PriorityUrgent,
			now.Add(-time.Hour), now.Add(10*time.Minute),
			mustProduct(t, order.CategoryHotFood, 80, 2, 1))
		medium := mustOrder(t, order.PriorityStandard,
			now.Add(-time.Hour), now.Add(200*time.Minute),
			mustProduct(t, order.CategoryMedicine, 120, 1, 17520))

		ranked, err := scorer.Rank([]*order.Order{low, critical, medium}, now)

		require.NoError(t, err)
		require.Len(t, ranked, 3)

		for i, scored := range ranked {
			assert.Equal(t, i+1, scored.SuggestedDeliveryOrder)
			if i > 0 {
				assert.GreaterOrEqual(t, ranked[i-1].PriorityScore, scored.PriorityScore)
			}
		}
		assert.True(t, ranked[0].Order.IsEqual(critical))
		assert.True(t, ranked[2].Order.IsEqual(low))
	})

	t.Run("equal scores preserve input order", func(t *testing.T) {
		makeTwin := func() *order.Order {
			return mustOrder(t, order.PriorityStandard,
				now.Add(-time.Hour), now.Add(3*time.Hour),
				mustProduct(t, order.CategorySnack, 10, 1, 300))
		}
		first := makeTwin()
		second := makeTwin()
		third := makeTwin()

		ranked, err := scorer.Rank([]*order.Order{first, second, third}, now)

		require.NoError(t, err)
		require.Len(t, ranked, 3)
		assert.True(t, ranked[0].Order.IsEqual(first))
		assert.True(t, ranked[1].Order.IsEqual(second))
		assert.True(t, ranked[2].Order.IsEqual(third))
	})

	t.Run("empty batch ranks to an empty result", func(t *testing.T) {
		ranked, err := scorer.Rank(nil, now)

		require.NoError(t, err)
		assert.Empty(t, ranked)
	})
}
