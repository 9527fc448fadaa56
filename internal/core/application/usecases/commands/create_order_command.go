package commands

import (
	"errors"
	"time"

	"triage/internal/core/domain/model/kernel"
	"triage/internal/core/domain/model/order"
	"triage/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrCustomerNameIsRequired = errors.New("customer name is required")
	ErrProductsAreRequired    = errors.New("at least one product is required")
)

// CreateOrderCommand represents a request to ingest a new delivery order
// into the triage pool. Carries everything the scorer later needs:
// customer metadata, the delivery deadline, and the product lines.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(kernel.NewUUID(), "Dana Okonkwo",
//	    "12 Harbor Lane", order.PriorityHigh, orderTime, windowEnd, products)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create order: %w", err)
//	}
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID           kernel.UUID
	customerName      string
	customerAddress   string
	customerPriority  order.CustomerPriority
	orderTime         time.Time
	deliveryWindowEnd time.Time
	products          []order.Product

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to register a new delivery order.
// Validates that the order ID is valid, the customer name is present, and
// at least one product is supplied; full invariants are enforced when the
// aggregate is constructed.
func NewCreateOrderCommand(
	orderID kernel.UUID,
	customerName string,
	customerAddress string,
	customerPriority order.CustomerPriority,
	orderTime time.Time,
	deliveryWindowEnd time.Time,
	products []order.Product,
) (CreateOrderCommand, error) {
	orderCommand := CreateOrderCommand{
		customerAddress:   customerAddress,
		customerPriority:  customerPriority,
		orderTime:         orderTime,
		deliveryWindowEnd: deliveryWindowEnd,
		guard:             guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderCommand.setOrderID(orderID),
		orderCommand.setCustomerName(customerName),
		orderCommand.setProducts(products),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return orderCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateOrderCommandIsNotConstructed if validation fails.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the order.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// CustomerName returns the customer's display name.
func (c CreateOrderCommand) CustomerName() string {
	return c.customerName
}

// CustomerAddress returns the delivery address text.
func (c CreateOrderCommand) CustomerAddress() string {
	return c.customerAddress
}

// CustomerPriority returns the customer's service tier.
func (c CreateOrderCommand) CustomerPriority() order.CustomerPriority {
	return c.customerPriority
}

// OrderTime returns the timestamp the order was placed.
func (c CreateOrderCommand) OrderTime() time.Time {
	return c.orderTime
}

// DeliveryWindowEnd returns the deadline the order must arrive by.
func (c CreateOrderCommand) DeliveryWindowEnd() time.Time {
	return c.deliveryWindowEnd
}

// Products returns the order's line items.
func (c CreateOrderCommand) Products() []order.Product {
	return c.products
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setCustomerName(customerName string) error {
	if customerName == "" {
		return ErrCustomerNameIsRequired
	}

	c.customerName = customerName
	return nil
}

func (c *CreateOrderCommand) setProducts(products []order.Product) error {
	if len(products) == 0 {
		return ErrProductsAreRequired
	}

	c.products = products
	return nil
}
