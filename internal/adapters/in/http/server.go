package http

import (
	"errors"
	"net/http"

	"tracking/internal/core/application/usecases/commands"
	"tracking/internal/core/application/usecases/queries"
	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/core/domain/model/order"
	"tracking/internal/generated/servers"
	"tracking/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
	"gorm.io/gorm"
)

// Server implements the ServerInterface for handling HTTP requests.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createOrderHandler       commands.CreateOrderCommandHandler
	updateOrderStatusHandler commands.UpdateOrderStatusCommandHandler
	cancelOrderHandler       commands.CancelOrderCommandHandler

	// Query handlers
	listOrdersHandler        queries.ListOrdersQueryHandler
	getOrderHandler          queries.GetOrderQueryHandler
	getStatusHistoryHandler  queries.GetStatusHistoryQueryHandler
	getStatusTimelineHandler queries.GetStatusTimelineQueryHandler
	trackOrderHandler        queries.TrackOrderQueryHandler

	// db backs the database health probe only; all reads and writes go
	// through the handlers above.
	db *gorm.DB
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	updateOrderStatusHandler commands.UpdateOrderStatusCommandHandler,
	cancelOrderHandler commands.CancelOrderCommandHandler,
	listOrdersHandler queries.ListOrdersQueryHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	getStatusHistoryHandler queries.GetStatusHistoryQueryHandler,
	getStatusTimelineHandler queries.GetStatusTimelineQueryHandler,
	trackOrderHandler queries.TrackOrderQueryHandler,
	db *gorm.DB,
) *Server {
	return &Server{
		createOrderHandler:       createOrderHandler,
		updateOrderStatusHandler: updateOrderStatusHandler,
		cancelOrderHandler:       cancelOrderHandler,
		listOrdersHandler:        listOrdersHandler,
		getOrderHandler:          getOrderHandler,
		getStatusHistoryHandler:  getStatusHistoryHandler,
		getStatusTimelineHandler: getStatusTimelineHandler,
		trackOrderHandler:        trackOrderHandler,
		db:                       db,
	}
}

// ListOrders handles GET /api/orders - retrieves a page of orders.
func (s *Server) ListOrders(ctx echo.Context, params servers.ListOrdersParams) error {
	statusFilter := ""
	if params.Status != nil {
		statusFilter = string(*params.Status)
	}

	var page, limit int
	if params.Page != nil {
		page = *params.Page
	}
	if params.Limit != nil {
		limit = *params.Limit
	}

	sortBy, sortOrder := "", ""
	if params.SortBy != nil {
		sortBy = string(*params.SortBy)
	}
	if params.SortOrder != nil {
		sortOrder = string(*params.SortOrder)
	}

	query, err := queries.NewListOrdersQuery(statusFilter, page, limit, sortBy, sortOrder)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid filter parameters: " + err.Error(),
		})
	}

	result, err := s.listOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, servers.Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to retrieve orders",
		})
	}

	orders := make([]servers.Order, len(result.Orders))
	for i, orderResponse := range result.Orders {
		orders[i] = toAPIOrder(orderResponse)
	}

	return ctx.JSON(http.StatusOK, servers.OrderList{
		Orders: orders,
		Pagination: servers.Pagination{
			Page:       result.Pagination.Page,
			Limit:      result.Pagination.Limit,
			Total:      result.Pagination.Total,
			TotalPages: result.Pagination.TotalPages,
		},
	})
}

// CreateOrder handles POST /api/orders - creates a new order.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var newOrder servers.NewOrder
	if err := ctx.Bind(&newOrder); err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	cmd, err := commands.NewCreateOrderCommand(
		kernel.NewUUID(),
		newOrder.SenderName,
		newOrder.RecipientName,
		newOrder.Origin,
		newOrder.Destination,
	)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid order data: " + err.Error(),
		})
	}

	created, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		if isValidationError(err) {
			return ctx.JSON(http.StatusBadRequest, servers.Error{
				Code:    http.StatusBadRequest,
				Message: "Invalid order data: " + err.Error(),
			})
		}
		return ctx.JSON(http.StatusInternalServerError, servers.Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to create order",
		})
	}

	return s.respondWithOrder(ctx, http.StatusCreated, created.ID())
}

// GetOrderById handles GET /api/orders/{orderId} - retrieves a single order.
func (s *Server) GetOrderById(ctx echo.Context, orderId openapi_types.UUID) error {
	orderID, err := kernel.UUIDFromBytes(orderId[:])
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid order ID",
		})
	}

	return s.respondWithOrder(ctx, http.StatusOK, orderID)
}

// UpdateOrderStatus handles PUT /api/orders/{orderId}/status - moves an order
// to a new lifecycle status.
func (s *Server) UpdateOrderStatus(ctx echo.Context, orderId openapi_types.UUID) error {
	var body servers.UpdateStatusRequest
	if err := ctx.Bind(&body); err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	newStatus, err := order.StatusFromString(string(body.Status))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid status: " + err.Error(),
		})
	}

	notes := ""
	if body.Notes != nil {
		notes = *body.Notes
	}

	orderID, err := kernel.UUIDFromBytes(orderId[:])
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid order ID",
		})
	}

	cmd, err := commands.NewUpdateOrderStatusCommand(orderID, newStatus, notes)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid status update: " + err.Error(),
		})
	}

	result, err := s.updateOrderStatusHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.orderMutationError(ctx, err, "Failed to update order status")
	}

	orderResponse, err := s.readOrder(ctx, result.Order.ID())
	if err != nil {
		return s.orderReadError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, servers.StatusUpdateResult{
		Order:          toAPIOrder(orderResponse),
		PreviousStatus: result.PreviousStatus.String(),
	})
}

// DeleteOrder handles DELETE /api/orders/{orderId} - cancels a Pending order.
// The order row stays in place; only its status changes.
func (s *Server) DeleteOrder(ctx echo.Context, orderId openapi_types.UUID) error {
	orderID, err := kernel.UUIDFromBytes(orderId[:])
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid order ID",
		})
	}

	cmd, err := commands.NewCancelOrderCommand(orderID)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid order ID: " + err.Error(),
		})
	}

	canceled, err := s.cancelOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.orderMutationError(ctx, err, "Failed to cancel order")
	}

	return s.respondWithOrder(ctx, http.StatusOK, canceled.ID())
}

// GetOrderHistory handles GET /api/orders/{orderId}/history - retrieves the
// raw status change ledger of an order.
func (s *Server) GetOrderHistory(ctx echo.Context, orderId openapi_types.UUID) error {
	orderID, err := kernel.UUIDFromBytes(orderId[:])
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid order ID",
		})
	}

	query, err := queries.NewGetStatusHistoryQuery(orderID)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid order ID: " + err.Error(),
		})
	}

	entries, err := s.getStatusHistoryHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return ctx.JSON(http.StatusNotFound, servers.Error{
				Code:    http.StatusNotFound,
				Message: "Order not found",
			})
		}
		return ctx.JSON(http.StatusInternalServerError, servers.Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to retrieve status history",
		})
	}

	response := make([]servers.StatusChange, len(entries))
	for i, entry := range entries {
		response[i] = servers.StatusChange{
			Seq:            entry.Seq,
			PreviousStatus: entry.PreviousStatus,
			NewStatus:      entry.NewStatus,
			ChangedAt:      entry.ChangedAt,
			Notes:          optionalString(entry.Notes),
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetOrderTimeline handles GET /api/orders/{orderId}/timeline - retrieves the
// display-ready projection of an order's status history.
func (s *Server) GetOrderTimeline(ctx echo.Context, orderId openapi_types.UUID) error {
	orderID, err := kernel.UUIDFromBytes(orderId[:])
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid order ID",
		})
	}

	query, err := queries.NewGetStatusTimelineQuery(orderID)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid order ID: " + err.Error(),
		})
	}

	steps, err := s.getStatusTimelineHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return ctx.JSON(http.StatusNotFound, servers.Error{
				Code:    http.StatusNotFound,
				Message: "Order not found",
			})
		}
		return ctx.JSON(http.StatusInternalServerError, servers.Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to retrieve timeline",
		})
	}

	return ctx.JSON(http.StatusOK, toAPITimeline(steps))
}

// TrackOrder handles GET /api/orders/track/{trackingNumber} - retrieves an
// order and its timeline by public tracking number.
func (s *Server) TrackOrder(ctx echo.Context, trackingNumber string) error {
	query, err := queries.NewTrackOrderQuery(trackingNumber)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid tracking number: " + err.Error(),
		})
	}

	result, err := s.trackOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return ctx.JSON(http.StatusNotFound, servers.Error{
				Code:    http.StatusNotFound,
				Message: "No order found for tracking number " + trackingNumber,
			})
		}
		return ctx.JSON(http.StatusInternalServerError, servers.Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to track order",
		})
	}

	return ctx.JSON(http.StatusOK, servers.TrackedOrder{
		Order:    toAPIOrder(result.Order),
		Timeline: toAPITimeline(result.Timeline),
	})
}

// GetHealth handles GET /health - liveness probe.
func (s *Server) GetHealth(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, servers.Health{Status: "ok"})
}

// GetHealthDb handles GET /health/db - readiness probe against the database.
func (s *Server) GetHealthDb(ctx echo.Context) error {
	database := "ok"

	sqlDB, err := s.db.DB()
	if err == nil {
		err = sqlDB.PingContext(ctx.Request().Context())
	}
	if err != nil {
		database = "unreachable"
		return ctx.JSON(http.StatusServiceUnavailable, servers.Health{
			Status:   "degraded",
			Database: &database,
		})
	}

	return ctx.JSON(http.StatusOK, servers.Health{
		Status:   "ok",
		Database: &database,
	})
}

// respondWithOrder reads an order through the query handler and writes it as
// the response body. Command handlers return the bare aggregate; reading the
// row back picks up the database-managed timestamps.
func (s *Server) respondWithOrder(ctx echo.Context, status int, orderID kernel.UUID) error {
	orderResponse, err := s.readOrder(ctx, orderID)
	if err != nil {
		return s.orderReadError(ctx, err)
	}

	return ctx.JSON(status, toAPIOrder(orderResponse))
}

func (s *Server) readOrder(ctx echo.Context, orderID kernel.UUID) (queries.OrderResponse, error) {
	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return queries.OrderResponse{}, err
	}

	return s.getOrderHandler.Handle(ctx.Request().Context(), query)
}

func (s *Server) orderReadError(ctx echo.Context, err error) error {
	if errors.Is(err, errs.ErrObjectNotFound) {
		return ctx.JSON(http.StatusNotFound, servers.Error{
			Code:    http.StatusNotFound,
			Message: "Order not found",
		})
	}

	return ctx.JSON(http.StatusInternalServerError, servers.Error{
		Code:    http.StatusInternalServerError,
		Message: "Failed to retrieve order",
	})
}

// orderMutationError maps a command handler failure to an HTTP response. An
// illegal lifecycle transition surfaces as 400 with both statuses named, a
// missing order as 404, everything else as 500 with the fallback message.
func (s *Server) orderMutationError(ctx echo.Context, err error, fallback string) error {
	var transitionErr *order.InvalidTransitionError
	if errors.As(err, &transitionErr) {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: transitionErr.Error(),
		})
	}

	if errors.Is(err, errs.ErrObjectNotFound) {
		return ctx.JSON(http.StatusNotFound, servers.Error{
			Code:    http.StatusNotFound,
			Message: "Order not found",
		})
	}

	if isValidationError(err) {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		})
	}

	return ctx.JSON(http.StatusInternalServerError, servers.Error{
		Code:    http.StatusInternalServerError,
		Message: fallback,
	})
}

func isValidationError(err error) bool {
	return errors.Is(err, errs.ErrValueIsInvalid) ||
		errors.Is(err, errs.ErrValueIsOutOfRange) ||
		errors.Is(err, errs.ErrValueIsRequired)
}

func toAPIOrder(resp queries.OrderResponse) servers.Order {
	return servers.Order{
		Id:             resp.ID.Bytes(),
		TrackingNumber: resp.TrackingNumber,
		SenderName:     resp.SenderName,
		RecipientName:  resp.RecipientName,
		Origin:         resp.Origin,
		Destination:    resp.Destination,
		Status:         servers.OrderStatus(resp.Status),
		CreatedAt:      resp.CreatedAt,
		UpdatedAt:      resp.UpdatedAt,
	}
}

func toAPITimeline(steps []queries.TimelineStepResponse) []servers.TimelineStep {
	timeline := make([]servers.TimelineStep, len(steps))
	for i, step := range steps {
		timeline[i] = servers.TimelineStep{
			StepNumber:     step.StepNumber,
			Status:         step.Status,
			PreviousStatus: step.PreviousStatus,
			Timestamp:      step.Timestamp,
			Description:    step.Description,
			Notes:          optionalString(step.Notes),
			IsInitial:      step.IsInitial,
			Icon:           step.Icon,
			Color:          step.Color,
		}
	}

	return timeline
}

func optionalString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
