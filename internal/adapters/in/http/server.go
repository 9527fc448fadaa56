// Package http exposes the application's use cases over a JSON API.
// Handlers are thin: they bind and validate wire DTOs, delegate to command
// and query handlers, and translate domain errors into HTTP status codes.
package http

import (
	"errors"
	"net/http"
	"time"

	"triage/internal/core/application/usecases/commands"
	"triage/internal/core/application/usecases/queries"
	"triage/internal/core/domain/model/kernel"
	"triage/internal/core/domain/model/order"
	"triage/internal/core/domain/services"
	"triage/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createOrderHandler   commands.CreateOrderCommandHandler
	completeOrderHandler commands.CompleteOrderCommandHandler

	// Query handlers
	getRankedOrdersHandler queries.GetRankedOrdersQueryHandler

	// Read-side state
	snapshot *queries.RankedOrdersSnapshot

	scorer services.PriorityScorer
	now    func() time.Time
}

// NewServer creates a new HTTP server with the required command and query
// handlers plus the dashboard snapshot store.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	completeOrderHandler commands.CompleteOrderCommandHandler,
	getRankedOrdersHandler queries.GetRankedOrdersQueryHandler,
	snapshot *queries.RankedOrdersSnapshot,
) *Server {
	return &Server{
		createOrderHandler:     createOrderHandler,
		completeOrderHandler:   completeOrderHandler,
		getRankedOrdersHandler: getRankedOrdersHandler,
		snapshot:               snapshot,
		scorer:                 services.NewPriorityScorer(),
		now:                    time.Now,
	}
}

// RegisterRoutes attaches all API routes to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)

	v1 := e.Group("/api/v1")
	v1.POST("/orders/rank", s.RankOrders)
	v1.POST("/orders", s.CreateOrder)
	v1.GET("/orders/ranked", s.GetRankedOrders)
	v1.GET("/dashboard", s.GetDashboard)
	v1.POST("/orders/:id/complete", s.CompleteOrder)
}

// RankOrders handles POST /api/v1/orders/rank - scores and ranks a batch of
// orders from the request payload without persisting anything.
//
//	@Summary		Score and rank a batch of orders
//	@Description	Computes priority scores for the supplied orders and returns them sorted by urgency
//	@Tags			orders
//	@Accept			json
//	@Produce		json
//	@Param			request	body		RankOrdersRequest	true	"Orders to rank"
//	@Success		200		{object}	RankOrdersResponse
//	@Failure		400		{object}	ErrorResponse
//	@Failure		500		{object}	ErrorResponse
//	@Router			/api/v1/orders/rank [post]
func (s *Server) RankOrders(ctx echo.Context) error {
	var request RankOrdersRequest
	if err := ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	if request.Orders == nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Field 'orders' is required and must be an array",
		})
	}

	domainOrders, err := s.bindOrders(*request.Orders)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid order data: " + err.Error(),
		})
	}

	scored, err := s.scorer.Rank(domainOrders, s.now())
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, ErrorResponse{
			Code:    http.StatusInternalServerError,
			Message: "Failed to rank orders",
		})
	}

	response := RankOrdersResponse{
		Success:     true,
		TotalOrders: len(scored),
		Orders:      make([]ScoredOrderResponse, 0, len(scored)),
		Summary:     toSummaryResponse(services.SummarizeScores(scored)),
	}
	for _, scoredOrder := range scored {
		response.Orders = append(response.Orders, toScoredOrderResponse(scoredOrder))
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateOrder handles POST /api/v1/orders - persists a new order into the
// triage pool.
//
//	@Summary		Create an order
//	@Description	Stores a new pending order so it participates in ranked views
//	@Tags			orders
//	@Accept			json
//	@Param			request	body	OrderRequest	true	"Order to create"
//	@Success		201
//	@Failure		400	{object}	ErrorResponse
//	@Failure		409	{object}	ErrorResponse
//	@Router			/api/v1/orders [post]
func (s *Server) CreateOrder(ctx echo.Context) error {
	var request OrderRequest
	if err := ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}
	if err := ctx.Validate(&request); err != nil {
		return err
	}

	cmd, err := newCreateOrderCommand(request)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid order data: " + err.Error(),
		})
	}

	if handleErr := s.createOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return ctx.JSON(http.StatusConflict, ErrorResponse{
			Code:    http.StatusConflict,
			Message: "Failed to create order",
		})
	}

	return ctx.NoContent(http.StatusCreated)
}

// GetRankedOrders handles GET /api/v1/orders/ranked - loads pending orders
// and returns them ranked against the current time.
//
//	@Summary	Get pending orders ranked by urgency
//	@Tags		orders
//	@Produce	json
//	@Success	200	{object}	RankedOrdersResponse
//	@Failure	500	{object}	ErrorResponse
//	@Router		/api/v1/orders/ranked [get]
func (s *Server) GetRankedOrders(ctx echo.Context) error {
	query := queries.NewGetRankedOrdersQuery()

	response, err := s.getRankedOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, ErrorResponse{
			Code:    http.StatusInternalServerError,
			Message: "Failed to rank pending orders",
		})
	}

	return ctx.JSON(http.StatusOK, toRankedOrdersResponse(response))
}

// GetDashboard handles GET /api/v1/dashboard - serves the latest ranked
// snapshot computed by the background refresh job.
//
//	@Summary	Get the latest ranked dashboard snapshot
//	@Tags		dashboard
//	@Produce	json
//	@Success	200	{object}	RankedOrdersResponse
//	@Failure	503	{object}	ErrorResponse
//	@Router		/api/v1/dashboard [get]
func (s *Server) GetDashboard(ctx echo.Context) error {
	snapshot, ok := s.snapshot.Latest()
	if !ok {
		return ctx.JSON(http.StatusServiceUnavailable, ErrorResponse{
			Code:    http.StatusServiceUnavailable,
			Message: "Dashboard snapshot is not ready yet",
		})
	}

	return ctx.JSON(http.StatusOK, toRankedOrdersResponse(snapshot))
}

// CompleteOrder handles POST /api/v1/orders/:id/complete - marks an order
// as delivered so it leaves the ranked views.
//
//	@Summary	Mark an order as delivered
//	@Tags		orders
//	@Param		id	path	string	true	"Order ID"
//	@Success	204
//	@Failure	400	{object}	ErrorResponse
//	@Failure	404	{object}	ErrorResponse
//	@Failure	409	{object}	ErrorResponse
//	@Router		/api/v1/orders/{id}/complete [post]
func (s *Server) CompleteOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid order id",
		})
	}

	cmd, err := commands.NewCompleteOrderCommand(orderID)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid order id",
		})
	}

	if handleErr := s.completeOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		var notFoundErr *errs.ObjectNotFoundError
		if errors.As(handleErr, &notFoundErr) {
			return ctx.JSON(http.StatusNotFound, ErrorResponse{
				Code:    http.StatusNotFound,
				Message: "Order not found",
			})
		}

		var invalidErr *errs.ValueIsInvalidError
		if errors.As(handleErr, &invalidErr) {
			return ctx.JSON(http.StatusConflict, ErrorResponse{
				Code:    http.StatusConflict,
				Message: "Order is already delivered",
			})
		}

		return ctx.JSON(http.StatusInternalServerError, ErrorResponse{
			Code:    http.StatusInternalServerError,
			Message: "Failed to complete order",
		})
	}

	return ctx.NoContent(http.StatusNoContent)
}

// Health handles GET /health.
//
//	@Summary	Health check
//	@Tags		health
//	@Produce	json
//	@Success	200	{object}	map[string]string
//	@Router		/health [get]
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// bindOrders converts the request payload into domain aggregates, failing
// fast on the first structural violation.
func (s *Server) bindOrders(requests []OrderRequest) ([]*order.Order, error) {
	orders := make([]*order.Order, 0, len(requests))
	for _, request := range requests {
		domainOrder, err := toDomainOrder(request)
		if err != nil {
			return nil, err
		}
		orders = append(orders, domainOrder)
	}
	return orders, nil
}

// newCreateOrderCommand maps an order payload to the intake command.
func newCreateOrderCommand(request OrderRequest) (commands.CreateOrderCommand, error) {
	domainOrder, err := toDomainOrder(request)
	if err != nil {
		return commands.CreateOrderCommand{}, err
	}

	return commands.NewCreateOrderCommand(
		domainOrder.ID(),
		domainOrder.CustomerName(),
		domainOrder.CustomerAddress(),
		domainOrder.CustomerPriority(),
		domainOrder.OrderTime(),
		domainOrder.DeliveryWindowEnd(),
		domainOrder.Products(),
	)
}
