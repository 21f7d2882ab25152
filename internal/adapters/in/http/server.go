// Package http exposes the storefront and back-office REST API over Echo.
package http

import (
	"fmt"
	"net/http"
	"strconv"

	"shop/internal/core/application/usecases/commands"
	"shop/internal/core/application/usecases/queries"
	"shop/internal/core/domain/model/order"
	"shop/internal/core/domain/model/returns"
	"shop/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Server handles HTTP requests for the shop API.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createOrderHandler        commands.CreateOrderCommandHandler
	cancelOrderHandler        commands.CancelOrderCommandHandler
	updateOrderStatusHandler  commands.UpdateOrderStatusCommandHandler
	openReturnHandler         commands.OpenReturnCommandHandler
	updateReturnStatusHandler commands.UpdateReturnStatusCommandHandler

	// Query handlers
	getOrdersHandler     queries.GetOrdersQueryHandler
	getOrderHandler      queries.GetOrderQueryHandler
	getAllOrdersHandler  queries.GetAllOrdersQueryHandler
	getReturnsHandler    queries.GetReturnsQueryHandler
	getReturnHandler     queries.GetReturnQueryHandler
	getAllReturnsHandler queries.GetAllReturnsQueryHandler
	getProductsHandler   queries.GetProductsQueryHandler
	getProductHandler    queries.GetProductQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	cancelOrderHandler commands.CancelOrderCommandHandler,
	updateOrderStatusHandler commands.UpdateOrderStatusCommandHandler,
	openReturnHandler commands.OpenReturnCommandHandler,
	updateReturnStatusHandler commands.UpdateReturnStatusCommandHandler,
	getOrdersHandler queries.GetOrdersQueryHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	getAllOrdersHandler queries.GetAllOrdersQueryHandler,
	getReturnsHandler queries.GetReturnsQueryHandler,
	getReturnHandler queries.GetReturnQueryHandler,
	getAllReturnsHandler queries.GetAllReturnsQueryHandler,
	getProductsHandler queries.GetProductsQueryHandler,
	getProductHandler queries.GetProductQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:        createOrderHandler,
		cancelOrderHandler:        cancelOrderHandler,
		updateOrderStatusHandler:  updateOrderStatusHandler,
		openReturnHandler:         openReturnHandler,
		updateReturnStatusHandler: updateReturnStatusHandler,
		getOrdersHandler:          getOrdersHandler,
		getOrderHandler:           getOrderHandler,
		getAllOrdersHandler:       getAllOrdersHandler,
		getReturnsHandler:         getReturnsHandler,
		getReturnHandler:          getReturnHandler,
		getAllReturnsHandler:      getAllReturnsHandler,
		getProductsHandler:        getProductsHandler,
		getProductHandler:         getProductHandler,
	}
}

// RegisterRoutes wires the API routes onto the Echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	api := e.Group("/api/v1")

	api.GET("/products", s.GetProducts)
	api.GET("/products/:id", s.GetProduct)

	api.POST("/orders", s.CreateOrder)
	api.GET("/orders", s.GetOrders)
	api.GET("/orders/:id", s.GetOrder)
	api.POST("/orders/:id/cancel", s.CancelOrder)

	api.POST("/returns", s.OpenReturn)
	api.GET("/returns", s.GetReturns)
	api.GET("/returns/:id", s.GetReturn)

	admin := api.Group("/admin")
	admin.GET("/orders", s.GetAllOrders)
	admin.PUT("/orders/:id/status", s.UpdateOrderStatus)
	admin.GET("/returns", s.GetAllReturns)
	admin.PUT("/returns/:id/status", s.UpdateReturnStatus)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// GetProducts handles GET /api/v1/products - lists the catalog, optionally
// filtered by the category query parameter.
func (s *Server) GetProducts(ctx echo.Context) error {
	query := queries.NewGetProductsQuery(ctx.QueryParam("category"))

	products, err := s.getProductsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, products)
}

// GetProduct handles GET /api/v1/products/:id.
func (s *Server) GetProduct(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	query, err := queries.NewGetProductQuery(id)
	if err != nil {
		return respondError(ctx, errs.NewValueIsInvalidErrorWithCause("productID", err))
	}

	product, err := s.getProductHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, product)
}

// CreateOrder handles POST /api/v1/orders - places a new order.
func (s *Server) CreateOrder(ctx echo.Context) error {
	actor, err := actorFromRequest(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	var req CreateOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return respondError(ctx, errs.NewValueIsInvalidErrorWithCause("body", err))
	}

	lines := make([]commands.OrderLine, 0, len(req.Items))
	for _, item := range req.Items {
		line, err := commands.NewOrderLine(item.ProductID, item.Quantity)
		if err != nil {
			return respondError(ctx, err)
		}
		lines = append(lines, line)
	}

	cmd, err := commands.NewCreateOrderCommand(actor, req.ShippingAddress, req.DeliveryMethod, lines)
	if err != nil {
		return respondError(ctx, err)
	}

	result, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreateOrderResponse{
		OrderID:     result.OrderID,
		TotalAmount: result.Total.String(),
	})
}

// GetOrders handles GET /api/v1/orders - lists the caller's orders.
func (s *Server) GetOrders(ctx echo.Context) error {
	actor, err := actorFromRequest(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	query, err := queries.NewGetOrdersQuery(actor)
	if err != nil {
		return respondError(ctx, err)
	}

	orders, err := s.getOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orders)
}

// GetOrder handles GET /api/v1/orders/:id.
func (s *Server) GetOrder(ctx echo.Context) error {
	actor, err := actorFromRequest(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	id, err := pathID(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	query, err := queries.NewGetOrderQuery(actor, id)
	if err != nil {
		return respondError(ctx, err)
	}

	orderResponse, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderResponse)
}

// CancelOrder handles POST /api/v1/orders/:id/cancel.
func (s *Server) CancelOrder(ctx echo.Context) error {
	actor, err := actorFromRequest(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	id, err := pathID(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewCancelOrderCommand(actor, id)
	if err != nil {
		return respondError(ctx, err)
	}

	result, err := s.cancelOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, CancelOrderResponse{OrderID: result.OrderID})
}

// GetAllOrders handles GET /api/v1/admin/orders - lists every order.
func (s *Server) GetAllOrders(ctx echo.Context) error {
	actor, err := actorFromRequest(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	query, err := queries.NewGetAllOrdersQuery(actor)
	if err != nil {
		return respondError(ctx, err)
	}

	orders, err := s.getAllOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orders)
}

// UpdateOrderStatus handles PUT /api/v1/admin/orders/:id/status.
func (s *Server) UpdateOrderStatus(ctx echo.Context) error {
	actor, err := actorFromRequest(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	id, err := pathID(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	var req UpdateOrderStatusRequest
	if err := ctx.Bind(&req); err != nil {
		return respondError(ctx, errs.NewValueIsInvalidErrorWithCause("body", err))
	}

	status, err := order.ParseStatus(req.Status)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewUpdateOrderStatusCommand(actor, id, status, req.Location, req.Description)
	if err != nil {
		return respondError(ctx, err)
	}

	result, err := s.updateOrderStatusHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, UpdateOrderStatusResponse{
		OrderID:        result.OrderID,
		Status:         result.Status.String(),
		TrackingNumber: result.TrackingNumber,
	})
}

// OpenReturn handles POST /api/v1/returns - opens a return request against a
// delivered order.
func (s *Server) OpenReturn(ctx echo.Context) error {
	actor, err := actorFromRequest(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	var req OpenReturnRequest
	if err := ctx.Bind(&req); err != nil {
		return respondError(ctx, errs.NewValueIsInvalidErrorWithCause("body", err))
	}

	lines := make([]commands.ReturnLine, 0, len(req.Items))
	for _, item := range req.Items {
		condition, err := returns.ParseItemCondition(item.Condition)
		if err != nil {
			return respondError(ctx, err)
		}

		line, err := commands.NewReturnLine(item.OrderItemID, item.Quantity, item.Reason, condition)
		if err != nil {
			return respondError(ctx, err)
		}
		lines = append(lines, line)
	}

	cmd, err := commands.NewOpenReturnCommand(actor, req.OrderID, req.Reason, req.Comments, lines)
	if err != nil {
		return respondError(ctx, err)
	}

	result, err := s.openReturnHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, OpenReturnResponse{
		ReturnID:     result.ReturnID,
		RefundAmount: result.RefundAmount.String(),
	})
}

// GetReturns handles GET /api/v1/returns - lists the caller's return requests.
func (s *Server) GetReturns(ctx echo.Context) error {
	actor, err := actorFromRequest(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	query, err := queries.NewGetReturnsQuery(actor)
	if err != nil {
		return respondError(ctx, err)
	}

	returnResponses, err := s.getReturnsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, returnResponses)
}

// GetReturn handles GET /api/v1/returns/:id.
func (s *Server) GetReturn(ctx echo.Context) error {
	actor, err := actorFromRequest(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	id, err := pathID(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	query, err := queries.NewGetReturnQuery(actor, id)
	if err != nil {
		return respondError(ctx, err)
	}

	returnResponse, err := s.getReturnHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, returnResponse)
}

// GetAllReturns handles GET /api/v1/admin/returns - lists every return request.
func (s *Server) GetAllReturns(ctx echo.Context) error {
	actor, err := actorFromRequest(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	query, err := queries.NewGetAllReturnsQuery(actor)
	if err != nil {
		return respondError(ctx, err)
	}

	returnResponses, err := s.getAllReturnsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, returnResponses)
}

// UpdateReturnStatus handles PUT /api/v1/admin/returns/:id/status.
func (s *Server) UpdateReturnStatus(ctx echo.Context) error {
	actor, err := actorFromRequest(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	id, err := pathID(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	var req UpdateReturnStatusRequest
	if err := ctx.Bind(&req); err != nil {
		return respondError(ctx, errs.NewValueIsInvalidErrorWithCause("body", err))
	}

	status, err := returns.ParseStatus(req.Status)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewUpdateReturnStatusCommand(actor, id, status, req.Comments)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.updateReturnStatusHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// pathID parses the :id path parameter as a positive identifier.
func pathID(ctx echo.Context) (int64, error) {
	raw := ctx.Param("id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"id",
			fmt.Errorf("%q is not a positive identifier", raw),
		)
	}
	return id, nil
}
