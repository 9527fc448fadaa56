// Package kafka ingests order-placed events from upstream systems and feeds
// them into the order intake use case. The consumer is an alternative inbound
// adapter to the HTTP API; both produce the same CreateOrderCommand.
package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"triage/internal/core/application/usecases/commands"
	"triage/internal/core/domain/model/kernel"
	"triage/internal/core/domain/model/order"

	"github.com/segmentio/kafka-go"
)

// ConsumerConfig captures the runtime tunables for the order-placed stream.
type ConsumerConfig struct {
	Brokers []string
	Topic   string
	GroupID string
}

// OrderPlacedConsumer streams order-placed events from Kafka and persists
// each one through the intake command handler.
type OrderPlacedConsumer struct {
	reader  *kafka.Reader
	handler commands.CreateOrderCommandHandler
	log     *slog.Logger
}

// NewOrderPlacedConsumer builds a consumer-group reader for the configured
// topic. Messages are committed only after the intake handler has run, so a
// crash mid-batch replays unprocessed orders.
func NewOrderPlacedConsumer(
	cfg ConsumerConfig,
	handler commands.CreateOrderCommandHandler,
	log *slog.Logger,
) (*OrderPlacedConsumer, error) {
	if log == nil {
		return nil, errors.New("logger must not be nil")
	}
	if len(cfg.Brokers) == 0 {
		return nil, errors.New("at least one broker is required")
	}
	if cfg.Topic == "" {
		return nil, errors.New("topic must not be empty")
	}
	if cfg.GroupID == "" {
		return nil, errors.New("consumer group must not be empty")
	}

	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers:  cfg.Brokers,
		GroupID:  cfg.GroupID,
		Topic:    cfg.Topic,
		MinBytes: 1,
		MaxBytes: 10e6,
		MaxWait:  500 * time.Millisecond,
	})

	return &OrderPlacedConsumer{
		reader:  reader,
		handler: handler,
		log:     log.With("component", "order-placed-consumer"),
	}, nil
}

// Close shuts down the underlying Kafka reader.
func (c *OrderPlacedConsumer) Close() error {
	if c == nil || c.reader == nil {
		return nil
	}
	return c.reader.Close()
}

// Run blocks until the context is cancelled or the reader is closed,
// consuming order-placed events. Undecodable messages are logged and
// skipped; intake failures (for example duplicate order ids on replay) are
// logged and committed so the stream keeps moving.
func (c *OrderPlacedConsumer) Run(ctx context.Context) error {
	c.log.Info("consumer started",
		slog.String("topic", c.reader.Config().Topic),
		slog.String("group", c.reader.Config().GroupID),
	)
	defer c.log.Info("consumer stopped")

	for {
		msg, err := c.reader.FetchMessage(ctx)
		if err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				return ctx.Err()
			}
			if errors.Is(err, io.EOF) || errors.Is(err, kafka.ErrGroupClosed) {
				return nil
			}
			c.log.Error("fetch failed", slog.Any("err", err))
			continue
		}

		cmd, decodeErr := decodeOrderPlaced(msg.Value)
		if decodeErr != nil {
			c.log.Warn("skipping undecodable message",
				slog.Any("err", decodeErr),
				slog.Int64("offset", msg.Offset),
			)
		} else if handleErr := c.handler.Handle(ctx, cmd); handleErr != nil {
			c.log.Warn("order intake failed",
				slog.Any("err", handleErr),
				slog.String("orderId", cmd.OrderID().String()),
			)
		} else {
			c.log.Info("order ingested", slog.String("orderId", cmd.OrderID().String()))
		}

		if commitErr := c.reader.CommitMessages(ctx, msg); commitErr != nil {
			if errors.Is(commitErr, context.Canceled) {
				return ctx.Err()
			}
			c.log.Error("commit failed", slog.Any("err", commitErr))
		}
	}
}

// orderPlacedMessage mirrors the HTTP intake payload on the event stream.
type orderPlacedMessage struct {
	ID                string               `json:"id"`
	CustomerName      string               `json:"customer_name"`
	CustomerAddress   string               `json:"customer_address"`
	CustomerPriority  string               `json:"customer_priority"`
	OrderTime         time.Time            `json:"order_time"`
	DeliveryWindowEnd time.Time            `json:"delivery_window_end"`
	Products          []productLineMessage `json:"products"`
}

type productLineMessage struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	Category        string  `json:"category"`
	Price           float64 `json:"price"`
	Quantity        int     `json:"quantity"`
	ExpirationHours float64 `json:"expiration_hours"`
}

// decodeOrderPlaced parses an order-placed event into the intake command.
// Unknown category and priority strings pass through as their Unknown
// variants; structural violations fail the decode.
func decodeOrderPlaced(value []byte) (commands.CreateOrderCommand, error) {
	var message orderPlacedMessage
	if err := json.Unmarshal(value, &message); err != nil {
		return commands.CreateOrderCommand{}, fmt.Errorf("unmarshal order-placed event: %w", err)
	}

	orderID, err := kernel.UUIDFromString(message.ID)
	if err != nil {
		return commands.CreateOrderCommand{}, err
	}

	products := make([]order.Product, 0, len(message.Products))
	for _, line := range message.Products {
		product, productErr := order.NewProduct(
			line.ID,
			line.Name,
			order.CategoryFromString(line.Category),
			line.Price,
			line.Quantity,
			line.ExpirationHours,
		)
		if productErr != nil {
			return commands.CreateOrderCommand{}, productErr
		}
		products = append(products, product)
	}

	return commands.NewCreateOrderCommand(
		orderID,
		message.CustomerName,
		message.CustomerAddress,
		order.CustomerPriorityFromString(message.CustomerPriority),
		message.OrderTime,
		message.DeliveryWindowEnd,
		products,
	)
}
