package queries

import (
	"context"
	"time"

	"triage/internal/core/domain/model/kernel"
	"triage/internal/core/domain/model/order"
	"triage/internal/core/domain/services"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetRankedOrdersQueryHandler loads pending orders from the database,
// scores them against the current time, and returns them sorted by urgency.
//
// The handler is the single point where persistence meets the pure scorer:
// the scorer itself performs no I/O.
type GetRankedOrdersQueryHandler struct {
	db     *gorm.DB
	scorer services.PriorityScorer
	now    func() time.Time
}

// NewGetRankedOrdersQueryHandler creates a handler for ranked order queries.
// Requires a GORM database connection for query execution.
func NewGetRankedOrdersQueryHandler(db *gorm.DB) GetRankedOrdersQueryHandler {
	return GetRankedOrdersQueryHandler{
		db:     db,
		scorer: services.NewPriorityScorer(),
		now:    time.Now,
	}
}

// Handle executes the query: loads every pending order with its products,
// ranks the batch, and maps the result to response structs. Orders are
// loaded sorted by id so equal scores rank deterministically.
func (h GetRankedOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetRankedOrdersQuery,
) (GetRankedOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetRankedOrdersQueryResponse{}, err
	}

	orders, err := h.loadPendingOrders(ctx)
	if err != nil {
		return GetRankedOrdersQueryResponse{}, err
	}

	now := h.now()
	scored, err := h.scorer.Rank(orders, now)
	if err != nil {
		return GetRankedOrdersQueryResponse{}, err
	}

	response := GetRankedOrdersQueryResponse{
		GeneratedAt: now,
		TotalOrders: len(scored),
		Orders:      make([]RankedOrderResponse, 0, len(scored)),
		Summary:     services.SummarizeScores(scored),
	}

	for _, s := range scored {
		response.Orders = append(response.Orders, RankedOrderResponse{
			ID:                     s.Order.ID(),
			CustomerName:           s.Order.CustomerName(),
			CustomerAddress:        s.Order.CustomerAddress(),
			CustomerPriority:       s.Order.CustomerPriority(),
			OrderTime:              s.Order.OrderTime(),
			DeliveryWindowEnd:      s.Order.DeliveryWindowEnd(),
			PriorityScore:          s.PriorityScore,
			PriorityClass:          s.PriorityClass,
			HighestTempRequirement: s.HighestTempRequirement,
			TotalValue:             s.TotalValue,
			EarliestExpiration:     s.EarliestExpiration,
			SuggestedDeliveryOrder: s.SuggestedDeliveryOrder,
			Breakdown:              s.Breakdown,
		})
	}

	return response, nil
}

// loadPendingOrders reads pending orders and their products, reconstructing
// domain aggregates for the scorer.
func (h GetRankedOrdersQueryHandler) loadPendingOrders(ctx context.Context) ([]*order.Order, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			customer_name,
			customer_address,
			customer_priority,
			order_time,
			delivery_window_end
		FROM orders
		WHERE status = ?
		ORDER BY id
	`, order.Pending).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	type orderRow struct {
		id                kernel.UUID
		customerName      string
		customerAddress   string
		customerPriority  int
		orderTime         time.Time
		deliveryWindowEnd time.Time
	}

	orderRows := make([]orderRow, 0)
	for rows.Next() {
		var row orderRow
		var id uuid.UUID

		if err = rows.Scan(
			&id,
			&row.customerName,
			&row.customerAddress,
			&row.customerPriority,
			&row.orderTime,
			&row.deliveryWindowEnd,
		); err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		row.id = orderID
		orderRows = append(orderRows, row)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	products, err := h.loadProducts(ctx)
	if err != nil {
		return nil, err
	}

	orders := make([]*order.Order, 0, len(orderRows))
	for _, row := range orderRows {
		o, restoreErr := order.RestoreOrder(
			row.id,
			row.customerName,
			row.customerAddress,
			order.CustomerPriority(row.customerPriority),
			row.orderTime,
			row.deliveryWindowEnd,
			products[row.id.String()],
			order.Pending,
		)
		if restoreErr != nil {
			return nil, restoreErr
		}
		orders = append(orders, o)
	}

	return orders, nil
}

// loadProducts reads the product lines of every pending order, grouped by
// order id.
func (h GetRankedOrdersQueryHandler) loadProducts(ctx context.Context) (map[string][]order.Product, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			p.order_id,
			p.product_id,
			p.name,
			p.category,
			p.price,
			p.quantity,
			p.expiration_hours
		FROM products p
		INNER JOIN orders o ON o.id = p.order_id
		WHERE o.status = ?
		ORDER BY p.order_id, p.id
	`, order.Pending).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	products := make(map[string][]order.Product)
	for rows.Next() {
		var orderID uuid.UUID
		var productID, name, category string
		var price, expirationHours float64
		var quantity int

		if err = rows.Scan(
			&orderID,
			&productID,
			&name,
			&category,
			&price,
			&quantity,
			&expirationHours,
		); err != nil {
			return nil, err
		}

		product, productErr := order.NewProduct(
			productID,
			name,
			order.CategoryFromString(category),
			price,
			quantity,
			expirationHours,
		)
		if productErr != nil {
			return nil, productErr
		}

		products[orderID.String()] = append(products[orderID.String()], product)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return products, nil
}
