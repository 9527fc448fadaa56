package order

import (
	"errors"
	"time"

	"triage/internal/core/domain/model/kernel"
	"triage/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not
	// created through NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	// ErrOrderHasNoProducts is returned when constructing an order with an
	// empty product list. An order without products has no defined urgency,
	// so it is rejected at the boundary instead of silently scoring on
	// fallbacks.
	ErrOrderHasNoProducts = errs.NewValueIsRequiredError("order must contain at least one product")
)

// Order is the aggregate root for a delivery order awaiting triage.
//
// Invariants:
//   - Must have a valid unique identifier
//   - Customer name and address must be non-empty
//   - Order time and delivery window end must be set
//   - Must contain at least one valid product
//
// A delivery window ending before the order time is tolerated: the order is
// simply overdue and scores maximum window urgency. Product order within
// the aggregate is irrelevant to scoring.
type Order struct {
	id kernel.UUID

	customerName      string
	customerAddress   string
	customerPriority  CustomerPriority
	orderTime         time.Time
	deliveryWindowEnd time.Time
	products          []Product

	status Status

	isConstructed bool
}

// NewOrder creates a new pending Order with validation. This is the only way
// to create a valid Order from upstream data.
func NewOrder(
	id kernel.UUID,
	customerName string,
	customerAddress string,
	customerPriority CustomerPriority,
	orderTime time.Time,
	deliveryWindowEnd time.Time,
	products []Product,
) (*Order, error) {
	order := &Order{
		customerPriority: customerPriority,
		status:           Pending,
		isConstructed:    true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setCustomerName(customerName),
		order.setCustomerAddress(customerAddress),
		order.setOrderTime(orderTime),
		order.setDeliveryWindowEnd(deliveryWindowEnd),
		order.setProducts(products),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// RestoreOrder reconstructs an Order from persistence, including its status.
// Unlike NewOrder it accepts any valid status, so delivered orders can be
// rehydrated.
func RestoreOrder(
	id kernel.UUID,
	customerName string,
	customerAddress string,
	customerPriority CustomerPriority,
	orderTime time.Time,
	deliveryWindowEnd time.Time,
	products []Product,
	status Status,
) (*Order, error) {
	order, err := NewOrder(id, customerName, customerAddress, customerPriority,
		orderTime, deliveryWindowEnd, products)
	if err != nil {
		return nil, err
	}

	if err = status.Validate(); err != nil {
		return nil, err
	}
	order.status = status

	return order, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// CustomerName returns the customer's display name.
func (o *Order) CustomerName() string {
	return o.customerName
}

// CustomerAddress returns the delivery address text.
func (o *Order) CustomerAddress() string {
	return o.customerAddress
}

// CustomerPriority returns the customer's service tier.
func (o *Order) CustomerPriority() CustomerPriority {
	return o.customerPriority
}

// OrderTime returns the timestamp the order was placed.
func (o *Order) OrderTime() time.Time {
	return o.orderTime
}

// DeliveryWindowEnd returns the deadline the order must arrive by.
func (o *Order) DeliveryWindowEnd() time.Time {
	return o.deliveryWindowEnd
}

// Products returns a copy of the order's line items.
func (o *Order) Products() []Product {
	products := make([]Product, len(o.products))
	copy(products, o.products)
	return products
}

// Status returns the current delivery status.
func (o *Order) Status() Status {
	return o.status
}

// MarkDelivered transitions the order to Delivered.
// Returns an error if the order is not Pending.
func (o *Order) MarkDelivered() error {
	newStatus, err := o.status.Deliver()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCustomerName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("customer name")
	}
	o.customerName = name
	return nil
}

func (o *Order) setCustomerAddress(address string) error {
	if address == "" {
		return errs.NewValueIsRequiredError("customer address")
	}
	o.customerAddress = address
	return nil
}

func (o *Order) setOrderTime(orderTime time.Time) error {
	if orderTime.IsZero() {
		return errs.NewValueIsRequiredError("order time")
	}
	o.orderTime = orderTime
	return nil
}

func (o *Order) setDeliveryWindowEnd(deliveryWindowEnd time.Time) error {
	if deliveryWindowEnd.IsZero() {
		return errs.NewValueIsRequiredError("delivery window end")
	}
	o.deliveryWindowEnd = deliveryWindowEnd
	return nil
}

func (o *Order) setProducts(products []Product) error {
	if len(products) == 0 {
		return ErrOrderHasNoProducts
	}

	for _, product := range products {
		if err := product.Validate(); err != nil {
			return err
		}
	}

	o.products = make([]Product, len(products))
	copy(o.products, products)
	return nil
}
