package http

import (
	"context"
	"log/slog"
	"net/http"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/staff"
	"fulfillment/internal/generated/servers"

	"github.com/labstack/echo/v4"
)

// CommandHandler is satisfied by every command handler without a result.
type CommandHandler[C any] interface {
	Handle(ctx context.Context, cmd C) error
}

// QueryHandler is satisfied by query handlers and by commands that return a result.
type QueryHandler[Q, R any] interface {
	Handle(ctx context.Context, query Q) (R, error)
}

// Commands groups the write use cases exposed over HTTP.
type Commands struct {
	SeedOrders          CommandHandler[commands.SeedOrdersCommand]
	CreateHandler       CommandHandler[commands.CreateHandlerCommand]
	RecomputePriorities CommandHandler[commands.RecomputePrioritiesCommand]
	UpdateOrderStatus   CommandHandler[commands.UpdateOrderStatusCommand]
	ReorderOrder        CommandHandler[commands.ReorderOrderCommand]
	AssignOrder         QueryHandler[commands.AssignOrderCommand, commands.AssignOrderResult]
}

// Queries groups the read use cases exposed over HTTP.
type Queries struct {
	ListOrders     QueryHandler[queries.ListOrdersQuery, []queries.OrderView]
	GetOrder       QueryHandler[queries.GetOrderQuery, queries.OrderView]
	GetPackingList QueryHandler[queries.GetPackingListQuery, []queries.OrderView]
	GetHandlers    QueryHandler[queries.GetHandlersQuery, []queries.HandlerView]
	GetMetrics     QueryHandler[queries.GetFulfillmentMetricsQuery, queries.FulfillmentMetrics]
}

// Server implements the ServerInterface for handling HTTP requests.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	commands Commands
	queries  Queries
	logger   *slog.Logger
}

var _ servers.ServerInterface = (*Server)(nil)

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(cmds Commands, qs Queries, logger *slog.Logger) *Server {
	return &Server{
		commands: cmds,
		queries:  qs,
		logger:   logger.With("component", "http"),
	}
}

// ListOrders handles GET /api/v1/orders - the board in its current sequence.
func (s *Server) ListOrders(ctx echo.Context, params servers.ListOrdersParams) error {
	var filter order.Filter
	if params.Filter != nil {
		filter = order.Filter(*params.Filter)
	}

	var limit int
	if params.Limit != nil {
		limit = *params.Limit
	}

	query, err := queries.NewListOrdersQuery(filter, limit)
	if err != nil {
		return s.fail(ctx, err)
	}

	views, err := s.queries.ListOrders.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrders(views))
}

// SeedOrders handles POST /api/v1/orders/seed - replaces the board.
func (s *Server) SeedOrders(ctx echo.Context) error {
	var body servers.SeedOrdersJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return s.badRequest(ctx)
	}

	seeds, err := toSeedOrders(body.Orders)
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewSeedOrdersCommand(seeds)
	if err != nil {
		return s.fail(ctx, err)
	}

	if err = s.commands.SeedOrders.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RecomputePriorities handles POST /api/v1/orders/recompute.
func (s *Server) RecomputePriorities(ctx echo.Context) error {
	cmd := commands.NewRecomputePrioritiesCommand()
	if err := s.commands.RecomputePriorities.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetOrder handles GET /api/v1/orders/{orderId}.
func (s *Server) GetOrder(ctx echo.Context, orderID servers.OrderId) error {
	id, err := kernel.OrderIDFromString(orderID)
	if err != nil {
		return s.fail(ctx, err)
	}

	query, err := queries.NewGetOrderQuery(id)
	if err != nil {
		return s.fail(ctx, err)
	}

	view, err := s.queries.GetOrder.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrder(view))
}

// UpdateOrderStatus handles PUT /api/v1/orders/{orderId}/status.
func (s *Server) UpdateOrderStatus(ctx echo.Context, orderID servers.OrderId) error {
	var body servers.UpdateOrderStatusJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return s.badRequest(ctx)
	}

	id, err := kernel.OrderIDFromString(orderID)
	if err != nil {
		return s.fail(ctx, err)
	}

	status, err := order.ParseStatus(string(body.Status))
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewUpdateOrderStatusCommand(id, status)
	if err != nil {
		return s.fail(ctx, err)
	}

	if err = s.commands.UpdateOrderStatus.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// AssignOrder handles POST /api/v1/orders/{orderId}/assignment.
func (s *Server) AssignOrder(ctx echo.Context, orderID servers.OrderId) error {
	id, err := kernel.OrderIDFromString(orderID)
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewAssignOrderCommand(id)
	if err != nil {
		return s.fail(ctx, err)
	}

	result, err := s.commands.AssignOrder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, servers.Assignment{
		OrderId:     result.OrderID.String(),
		HandlerId:   result.HandlerID.Bytes(),
		HandlerName: result.HandlerName,
	})
}

// ReorderOrder handles POST /api/v1/orders/{orderId}/reorder.
func (s *Server) ReorderOrder(ctx echo.Context, orderID servers.OrderId) error {
	var body servers.ReorderOrderJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return s.badRequest(ctx)
	}

	movedID, err := kernel.OrderIDFromString(orderID)
	if err != nil {
		return s.fail(ctx, err)
	}

	beforeID, err := kernel.OrderIDFromString(body.BeforeId)
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewReorderOrderCommand(movedID, beforeID)
	if err != nil {
		return s.fail(ctx, err)
	}

	if err = s.commands.ReorderOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetPackingList handles GET /api/v1/packing-list.
func (s *Server) GetPackingList(ctx echo.Context, params servers.GetPackingListParams) error {
	var limit int
	if params.Limit != nil {
		limit = *params.Limit
	}

	query, err := queries.NewGetPackingListQuery(limit)
	if err != nil {
		return s.fail(ctx, err)
	}

	views, err := s.queries.GetPackingList.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrders(views))
}

// GetHandlers handles GET /api/v1/handlers - the roster with current load.
func (s *Server) GetHandlers(ctx echo.Context) error {
	views, err := s.queries.GetHandlers.Handle(ctx.Request().Context(), queries.NewGetHandlersQuery())
	if err != nil {
		return s.fail(ctx, err)
	}

	response := make([]servers.Handler, len(views))
	for i, v := range views {
		response[i] = servers.Handler{
			Id:            v.ID.Bytes(),
			Name:          v.Name,
			Role:          v.Role,
			Capacity:      v.Capacity,
			AssignedCount: v.AssignedCount,
			LoadRatio:     v.LoadRatio,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateHandler handles POST /api/v1/handlers - adds a handler to the roster.
func (s *Server) CreateHandler(ctx echo.Context) error {
	var body servers.CreateHandlerJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return s.badRequest(ctx)
	}

	var assigned int
	if body.AssignedCount != nil {
		assigned = *body.AssignedCount
	}

	cmd, err := commands.NewCreateHandlerCommand(kernel.NewUUID(), body.Name, body.Role, body.Capacity, assigned)
	if err != nil {
		return s.fail(ctx, err)
	}

	if err = s.commands.CreateHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	created, err := staff.NewHandler(cmd.HandlerID(), cmd.Name(), cmd.Role(), cmd.Capacity(), cmd.AssignedCount())
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, servers.Handler{
		Id:            created.ID().Bytes(),
		Name:          created.Name(),
		Role:          created.Role(),
		Capacity:      created.Capacity(),
		AssignedCount: created.AssignedCount(),
		LoadRatio:     created.LoadRatio(),
	})
}

// GetMetrics handles GET /api/v1/metrics.
func (s *Server) GetMetrics(ctx echo.Context) error {
	metrics, err := s.queries.GetMetrics.Handle(ctx.Request().Context(), queries.NewGetFulfillmentMetricsQuery())
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, servers.Metrics{
		Total:      metrics.Total,
		Pending:    metrics.Pending,
		Processing: metrics.Processing,
		Ready:      metrics.Ready,
		Unassigned: metrics.Unassigned,
		Critical:   metrics.Critical,
	})
}

// GetZones handles GET /api/v1/zones - the shipping zone catalog.
func (s *Server) GetZones(ctx echo.Context) error {
	zones := kernel.Zones()

	response := make([]servers.Zone, len(zones))
	for i, z := range zones {
		response[i] = servers.Zone{
			Name:         z.Name(),
			Weight:       z.Weight(),
			ShippingDays: z.ShippingDays(),
		}
	}

	return ctx.JSON(http.StatusOK, response)
}
