// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"triage/internal/core/domain/model/kernel"
	"triage/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Maps order domain entities to relational database tables with an index on
// status for efficient pending-order queries.
type OrderDTO struct {
	ID                uuid.UUID `gorm:"type:uuid;primaryKey"`
	CustomerName      string
	CustomerAddress   string
	CustomerPriority  int
	OrderTime         time.Time
	DeliveryWindowEnd time.Time
	Status            int          `gorm:"index"`
	Products          []ProductDTO `gorm:"foreignKey:OrderID;references:ID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// ProductDTO represents one product line of an order. Product lines are
// written together with their order and never updated independently.
//
// Category is stored as its wire string so rows stay readable and new
// upstream categories survive a round trip unchanged.
type ProductDTO struct {
	ID              uint      `gorm:"primaryKey;autoIncrement"`
	OrderID         uuid.UUID `gorm:"type:uuid;index"`
	ProductID       string
	Name            string
	Category        string
	Price           float64
	Quantity        int
	ExpirationHours float64
}

// TableName specifies the database table name for product lines.
func (ProductDTO) TableName() string {
	return "products"
}

// fromDomain converts an order domain aggregate to its database representation,
// including all product lines.
func fromDomain(aggregate *order.Order) OrderDTO {
	products := aggregate.Products()
	productDTOs := make([]ProductDTO, 0, len(products))
	for _, product := range products {
		productDTOs = append(productDTOs, ProductDTO{
			OrderID:         aggregate.ID().Bytes(),
			ProductID:       product.ID(),
			Name:            product.Name(),
			Category:        product.Category().String(),
			Price:           product.Price(),
			Quantity:        product.Quantity(),
			ExpirationHours: product.ExpirationHours(),
		})
	}

	return OrderDTO{
		ID:                aggregate.ID().Bytes(),
		CustomerName:      aggregate.CustomerName(),
		CustomerAddress:   aggregate.CustomerAddress(),
		CustomerPriority:  int(aggregate.CustomerPriority()),
		OrderTime:         aggregate.OrderTime(),
		DeliveryWindowEnd: aggregate.DeliveryWindowEnd(),
		Status:            int(aggregate.Status()),
		Products:          productDTOs,
	}
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate including status and product lines using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	products := make([]order.Product, 0, len(dto.Products))
	for _, productDTO := range dto.Products {
		product, productErr := order.NewProduct(
			productDTO.ProductID,
			productDTO.Name,
			order.CategoryFromString(productDTO.Category),
			productDTO.Price,
			productDTO.Quantity,
			productDTO.ExpirationHours,
		)
		if productErr != nil {
			return nil, productErr
		}
		products = append(products, product)
	}

	return order.RestoreOrder(
		id,
		dto.CustomerName,
		dto.CustomerAddress,
		order.CustomerPriority(dto.CustomerPriority),
		dto.OrderTime,
		dto.DeliveryWindowEnd,
		products,
		order.Status(dto.Status),
	)
}
