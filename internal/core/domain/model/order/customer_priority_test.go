package order_test

import (
	"testing"

	"triage/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
)

func TestCustomerPriorityFromString(t *testing.T) {
	t.Run("parses every known tier", func(t *testing.T) {
		cases := map[string]order.CustomerPriority{
			"urgent":   order.PriorityUrgent,
			"high":     order.PriorityHigh,
			"standard": order.PriorityStandard,
			"economy":  order.PriorityEconomy,
		}

		for wire, expected := range cases {
			assert.Equal(t, expected, order.CustomerPriorityFromString(wire))
			assert.Equal(t, wire, expected.String())
		}
	})

	t.Run("unrecognized values map to unknown", func(t *testing.T) {
		assert.Equal(t, order.PriorityUnknown, order.CustomerPriorityFromString("vip"))
		assert.Equal(t, order.PriorityUnknown, order.CustomerPriorityFromString(""))
	})
}

func TestCustomerPriority_UrgencyScore(t *testing.T) {
	cases := []struct {
		priority order.CustomerPriority
		score    float64
	}{
		{order.PriorityUrgent, 100},
		{order.PriorityHigh, 75},
		{order.PriorityStandard, 50},
		{order.PriorityEconomy, 25},
		{order.PriorityUnknown, 50},
		{order.CustomerPriority(42), 50},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.score, tc.priority.UrgencyScore(), "priority %s", tc.priority)
	}
}
