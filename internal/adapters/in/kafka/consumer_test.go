package kafka

import (
	"fmt"
	"log/slog"
	"testing"
	"time"

	"triage/internal/core/application/usecases/commands"
	"triage/internal/core/domain/model/kernel"
	"triage/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validOrderPlacedPayload(id kernel.UUID) string {
	return fmt.Sprintf(`{
		"id": %q,
		"customer_name": "Aoi Tanaka",
		"customer_address": "2-11-3 Meguro, Tokyo",
		"customer_priority": "urgent",
		"order_time": "2026-08-29T10:00:00Z",
		"delivery_window_end": "2026-08-29T10:30:00Z",
		"products": [
			{"id": "prod-001", "name": "Ramen Set", "category": "hot_food",
			 "price": 12.5, "quantity": 2, "expiration_hours": 2}
		]
	}`, id.String())
}

func Test_decodeOrderPlaced(t *testing.T) {
	t.Run("should decode a valid event into an intake command", func(t *testing.T) {
		id := kernel.NewUUID()

		cmd, err := decodeOrderPlaced([]byte(validOrderPlacedPayload(id)))

		require.NoError(t, err)
		assert.True(t, cmd.OrderID().IsEqual(id))
		assert.Equal(t, "Aoi Tanaka", cmd.CustomerName())
		assert.Equal(t, order.PriorityUrgent, cmd.CustomerPriority())
		assert.Equal(t, time.Date(2026, 8, 29, 10, 0, 0, 0, time.UTC), cmd.OrderTime().UTC())
		require.Len(t, cmd.Products(), 1)
		assert.Equal(t, order.CategoryHotFood, cmd.Products()[0].Category())
	})

	t.Run("should map unknown category and priority to their fallbacks", func(t *testing.T) {
		id := kernel.NewUUID()
		payload := fmt.Sprintf(`{
			"id": %q,
			"customer_name": "Ren Sato",
			"customer_address": "4-1-9 Shibuya, Tokyo",
			"customer_priority": "platinum",
			"order_time": "2026-08-29T10:00:00Z",
			"delivery_window_end": "2026-08-29T11:00:00Z",
			"products": [
				{"id": "prod-009", "name": "Mystery Box", "category": "cryogenic",
				 "price": 10, "quantity": 1, "expiration_hours": 48}
			]
		}`, id.String())

		cmd, err := decodeOrderPlaced([]byte(payload))

		require.NoError(t, err)
		assert.Equal(t, order.PriorityUnknown, cmd.CustomerPriority())
		assert.Equal(t, order.CategoryUnknown, cmd.Products()[0].Category())
	})

	t.Run("should fail on malformed JSON", func(t *testing.T) {
		_, err := decodeOrderPlaced([]byte(`{"id": `))

		assert.Error(t, err)
	})

	t.Run("should fail on an invalid order id", func(t *testing.T) {
		payload := `{"id": "nope", "customer_name": "x", "customer_address": "y",
			"order_time": "2026-08-29T10:00:00Z",
			"delivery_window_end": "2026-08-29T11:00:00Z",
			"products": [{"id": "p", "name": "n", "price": 1, "quantity": 1}]}`

		_, err := decodeOrderPlaced([]byte(payload))

		assert.Error(t, err)
	})

	t.Run("should fail on an event without products", func(t *testing.T) {
		id := kernel.NewUUID()
		payload := fmt.Sprintf(`{
			"id": %q,
			"customer_name": "Ren Sato",
			"customer_address": "4-1-9 Shibuya, Tokyo",
			"order_time": "2026-08-29T10:00:00Z",
			"delivery_window_end": "2026-08-29T11:00:00Z",
			"products": []
		}`, id.String())

		_, err := decodeOrderPlaced([]byte(payload))

		require.Error(t, err)
		assert.ErrorIs(t, err, commands.ErrProductsAreRequired)
	})

	t.Run("should fail on a product with invalid quantity", func(t *testing.T) {
		id := kernel.NewUUID()
		payload := fmt.Sprintf(`{
			"id": %q,
			"customer_name": "Ren Sato",
			"customer_address": "4-1-9 Shibuya, Tokyo",
			"order_time": "2026-08-29T10:00:00Z",
			"delivery_window_end": "2026-08-29T11:00:00Z",
			"products": [{"id": "p", "name": "n", "price": 1, "quantity": 0}]
		}`, id.String())

		_, err := decodeOrderPlaced([]byte(payload))

		assert.Error(t, err)
	})
}

func Test_NewOrderPlacedConsumer(t *testing.T) {
	handler := commands.CreateOrderCommandHandler{}
	logger := slog.Default()

	t.Run("should require a logger", func(t *testing.T) {
		cfg := ConsumerConfig{Brokers: []string{"localhost:9092"}, Topic: "orders.placed", GroupID: "triage"}

		_, err := NewOrderPlacedConsumer(cfg, handler, nil)

		assert.Error(t, err)
	})

	t.Run("should require brokers, topic, and group", func(t *testing.T) {
		testCases := []struct {
			name string
			cfg  ConsumerConfig
		}{
			{name: "no brokers", cfg: ConsumerConfig{Topic: "orders.placed", GroupID: "triage"}},
			{name: "no topic", cfg: ConsumerConfig{Brokers: []string{"localhost:9092"}, GroupID: "triage"}},
			{name: "no group", cfg: ConsumerConfig{Brokers: []string{"localhost:9092"}, Topic: "orders.placed"}},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := NewOrderPlacedConsumer(tc.cfg, handler, logger)
				assert.Error(t, err)
			})
		}
	})

	t.Run("should build a consumer from a complete config", func(t *testing.T) {
		cfg := ConsumerConfig{Brokers: []string{"localhost:9092"}, Topic: "orders.placed", GroupID: "triage"}

		consumer, err := NewOrderPlacedConsumer(cfg, handler, logger)

		require.NoError(t, err)
		require.NotNil(t, consumer)
		assert.NoError(t, consumer.Close())
	})
}
