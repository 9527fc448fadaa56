package order

import (
	"errors"
	"fmt"

	"triage/internal/pkg/errs"
	"triage/internal/pkg/guard"
)

// ErrProductIsNotConstructed is returned when a Product was not created
// through the NewProduct constructor.
var ErrProductIsNotConstructed = errors.New("Product must be created via NewProduct constructor")

// Product is one line item of an order. It is an immutable value object
// owned by exactly one Order.
//
// Invariants:
//   - ID and name must be non-empty
//   - Unit price must be non-negative
//   - Quantity must be positive
//   - Expiration hours (remaining shelf life at order time) must be non-negative
//
// The category is not validated beyond parsing: unknown categories are
// legal and score with documented fallbacks.
type Product struct { //nolint:recvcheck //using for validation
	id              string
	name            string
	category        Category
	price           float64
	quantity        int
	expirationHours float64

	guard guard.ConstructorGuard
}

// NewProduct creates a validated product line item.
//
// Parameters:
//   - id: upstream product identifier (required)
//   - name: display name (required)
//   - category: storage-temperature category, CategoryUnknown allowed
//   - price: unit price, must be >= 0
//   - quantity: ordered units, must be > 0
//   - expirationHours: hours until spoilage at order time, must be >= 0
func NewProduct(
	id string,
	name string,
	category Category,
	price float64,
	quantity int,
	expirationHours float64,
) (Product, error) {
	product := Product{
		category: category,
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		product.setID(id),
		product.setName(name),
		product.setPrice(price),
		product.setQuantity(quantity),
		product.setExpirationHours(expirationHours),
	); err != nil {
		return Product{}, err
	}

	return product, nil
}

// Validate ensures the product was created through NewProduct.
func (p Product) Validate() error {
	return p.guard.Validate(ErrProductIsNotConstructed)
}

// ID returns the upstream product identifier.
func (p Product) ID() string {
	return p.id
}

// Name returns the display name.
func (p Product) Name() string {
	return p.name
}

// Category returns the storage-temperature category.
func (p Product) Category() Category {
	return p.category
}

// Price returns the unit price.
func (p Product) Price() float64 {
	return p.price
}

// Quantity returns the number of ordered units.
func (p Product) Quantity() int {
	return p.quantity
}

// ExpirationHours returns the remaining shelf life in hours at order time.
func (p Product) ExpirationHours() float64 {
	return p.expirationHours
}

// LineValue returns price multiplied by quantity.
func (p Product) LineValue() float64 {
	return p.price * float64(p.quantity)
}

func (p *Product) setID(id string) error {
	if id == "" {
		return errs.NewValueIsRequiredError("product id")
	}
	p.id = id
	return nil
}

func (p *Product) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("product name")
	}
	p.name = name
	return nil
}

func (p *Product) setPrice(price float64) error {
	if price < 0 {
		return errs.NewValueIsInvalidErrorWithCause("price",
			fmt.Errorf("%v is negative", price))
	}
	p.price = price
	return nil
}

func (p *Product) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", quantity))
	}
	p.quantity = quantity
	return nil
}

func (p *Product) setExpirationHours(expirationHours float64) error {
	if expirationHours < 0 {
		return errs.NewValueIsInvalidErrorWithCause("expiration hours",
			fmt.Errorf("%v is negative", expirationHours))
	}
	p.expirationHours = expirationHours
	return nil
}
