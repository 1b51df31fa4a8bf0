// Package http exposes the ordering use cases over an echo HTTP API.
// Authentication happens upstream; requests arrive with trusted identity
// headers that this adapter normalizes before calling into the core.
package http

import (
	"net/http"

	"cafe/internal/core/application/usecases/commands"
	"cafe/internal/core/application/usecases/queries"
	"cafe/internal/core/domain/model/kernel"
	"cafe/internal/core/domain/model/order"
	"cafe/internal/core/domain/model/tax"

	"github.com/labstack/echo/v4"
)

// Server handles HTTP requests for the café ordering API.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createOrderHandler       commands.CreateOrderCommandHandler
	updateOrderHandler       commands.UpdateOrderCommandHandler
	deleteOrderHandler       commands.DeleteOrderCommandHandler
	changeOrderStatusHandler commands.ChangeOrderStatusCommandHandler
	setTaxRateHandler        commands.SetTaxRateCommandHandler
	createItemHandler        commands.CreateItemCommandHandler
	updateItemHandler        commands.UpdateItemCommandHandler
	deleteItemHandler        commands.DeleteItemCommandHandler

	// Query handlers
	getOrderHandler        queries.GetOrderQueryHandler
	getAllOrdersHandler    queries.GetAllOrdersQueryHandler
	getOrdersByNameHandler queries.GetOrdersByNameQueryHandler
	getTaxRateHandler      queries.GetTaxRateQueryHandler
	getAllItemsHandler     queries.GetAllItemsQueryHandler
	getItemHandler         queries.GetItemQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	updateOrderHandler commands.UpdateOrderCommandHandler,
	deleteOrderHandler commands.DeleteOrderCommandHandler,
	changeOrderStatusHandler commands.ChangeOrderStatusCommandHandler,
	setTaxRateHandler commands.SetTaxRateCommandHandler,
	createItemHandler commands.CreateItemCommandHandler,
	updateItemHandler commands.UpdateItemCommandHandler,
	deleteItemHandler commands.DeleteItemCommandHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	getAllOrdersHandler queries.GetAllOrdersQueryHandler,
	getOrdersByNameHandler queries.GetOrdersByNameQueryHandler,
	getTaxRateHandler queries.GetTaxRateQueryHandler,
	getAllItemsHandler queries.GetAllItemsQueryHandler,
	getItemHandler queries.GetItemQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:       createOrderHandler,
		updateOrderHandler:       updateOrderHandler,
		deleteOrderHandler:       deleteOrderHandler,
		changeOrderStatusHandler: changeOrderStatusHandler,
		setTaxRateHandler:        setTaxRateHandler,
		createItemHandler:        createItemHandler,
		updateItemHandler:        updateItemHandler,
		deleteItemHandler:        deleteItemHandler,
		getOrderHandler:          getOrderHandler,
		getAllOrdersHandler:      getAllOrdersHandler,
		getOrdersByNameHandler:   getOrdersByNameHandler,
		getTaxRateHandler:        getTaxRateHandler,
		getAllItemsHandler:       getAllItemsHandler,
		getItemHandler:           getItemHandler,
	}
}

// RegisterRoutes attaches all API routes to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/orders", s.CreateOrder)
	api.GET("/orders", s.GetOrders)
	api.GET("/orders/:id", s.GetOrder)
	api.PUT("/orders/:id", s.UpdateOrder)
	api.DELETE("/orders/:id", s.DeleteOrder)
	api.GET("/orders/name/:name", s.GetOrdersByName)
	api.PUT("/orders/:id/status", s.ChangeOrderStatus)

	api.GET("/tax", s.GetTaxRate)
	api.PUT("/tax", s.SetTaxRate)

	api.POST("/items", s.CreateItem)
	api.GET("/items", s.GetItems)
	api.GET("/items/:id", s.GetItem)
	api.PUT("/items/:id", s.UpdateItem)
	api.DELETE("/items/:id", s.DeleteItem)
}

// CreateOrder handles POST /api/v1/orders - places a new order for the caller.
func (s *Server) CreateOrder(ctx echo.Context) error {
	who, err := callerFromRequest(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	var request NewOrderRequest
	if err = ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	lines, err := parseLineRequests(request.Lines)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewCreateOrderCommand(kernel.NewUUID(), who.username, lines, request.Tip)
	if err != nil {
		return respondError(ctx, err)
	}

	placed, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, orderToResponse(placed))
}

// UpdateOrder handles PUT /api/v1/orders/:id - rebuilds a pending order.
func (s *Server) UpdateOrder(ctx echo.Context) error {
	who, err := callerFromRequest(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	orderID, err := parseIDParam(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	var request UpdateOrderRequest
	if err = ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	lines, err := parseLineRequests(request.Lines)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewUpdateOrderCommand(orderID, request.Name, lines, who.role)
	if err != nil {
		return respondError(ctx, err)
	}

	updated, err := s.updateOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderToResponse(updated))
}

// DeleteOrder handles DELETE /api/v1/orders/:id - removes an order.
func (s *Server) DeleteOrder(ctx echo.Context) error {
	who, err := callerFromRequest(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	orderID, err := parseIDParam(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewDeleteOrderCommand(orderID, who.role)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.deleteOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ChangeOrderStatus handles PUT /api/v1/orders/:id/status - moves an order
// through its lifecycle (fulfillment by staff, pickup by the owner).
func (s *Server) ChangeOrderStatus(ctx echo.Context) error {
	who, err := callerFromRequest(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	orderID, err := parseIDParam(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	var request ChangeStatusRequest
	if err = ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	target, err := order.ParseStatus(request.Status)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewChangeOrderStatusCommand(orderID, target, who.username, who.role)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.changeOrderStatusHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetOrders handles GET /api/v1/orders - retrieves all orders.
func (s *Server) GetOrders(ctx echo.Context) error {
	query := queries.NewGetAllOrdersQuery()

	orders, err := s.getAllOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]OrderResponse, 0, len(orders))
	for _, resp := range orders {
		response = append(response, orderReadToResponse(resp))
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetOrder handles GET /api/v1/orders/:id - retrieves a single order.
func (s *Server) GetOrder(ctx echo.Context) error {
	orderID, err := parseIDParam(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return respondError(ctx, err)
	}

	resp, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderReadToResponse(resp))
}

// GetOrdersByName handles GET /api/v1/orders/name/:name - retrieves all
// orders placed under a customer name.
func (s *Server) GetOrdersByName(ctx echo.Context) error {
	query, err := queries.NewGetOrdersByNameQuery(ctx.Param("name"))
	if err != nil {
		return respondError(ctx, err)
	}

	orders, err := s.getOrdersByNameHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]OrderResponse, 0, len(orders))
	for _, resp := range orders {
		response = append(response, orderReadToResponse(resp))
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetTaxRate handles GET /api/v1/tax - retrieves the active tax rate.
func (s *Server) GetTaxRate(ctx echo.Context) error {
	query := queries.NewGetTaxRateQuery()

	resp, err := s.getTaxRateHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, TaxRateResponse{Rate: resp.Rate})
}

// SetTaxRate handles PUT /api/v1/tax - replaces the active tax rate.
func (s *Server) SetTaxRate(ctx echo.Context) error {
	who, err := callerFromRequest(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	var request TaxRateRequest
	if err = ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	rate, err := tax.NewRate(request.Rate)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewSetTaxRateCommand(rate, who.role)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.setTaxRateHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CreateItem handles POST /api/v1/items - adds a catalog item.
func (s *Server) CreateItem(ctx echo.Context) error {
	who, err := callerFromRequest(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	var request ItemRequest
	if err = ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	itemID := kernel.NewUUID()
	cmd, err := commands.NewCreateItemCommand(itemID, request.Name, request.Description,
		request.Amount, request.Price, who.role)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.createItemHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, ItemResponse{
		ID:          itemID.String(),
		Name:        request.Name,
		Description: request.Description,
		Amount:      request.Amount,
		Price:       request.Price,
	})
}

// UpdateItem handles PUT /api/v1/items/:id - edits a catalog item.
func (s *Server) UpdateItem(ctx echo.Context) error {
	who, err := callerFromRequest(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	itemID, err := parseIDParam(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	var request ItemRequest
	if err = ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	cmd, err := commands.NewUpdateItemCommand(itemID, request.Name, request.Description,
		request.Amount, request.Price, who.role)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.updateItemHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// DeleteItem handles DELETE /api/v1/items/:id - removes a catalog item.
func (s *Server) DeleteItem(ctx echo.Context) error {
	who, err := callerFromRequest(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	itemID, err := parseIDParam(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewDeleteItemCommand(itemID, who.role)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.deleteItemHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetItems handles GET /api/v1/items - retrieves the catalog.
func (s *Server) GetItems(ctx echo.Context) error {
	query := queries.NewGetAllItemsQuery()

	items, err := s.getAllItemsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]ItemResponse, 0, len(items))
	for _, resp := range items {
		response = append(response, itemReadToResponse(resp))
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetItem handles GET /api/v1/items/:id - retrieves a single catalog item.
func (s *Server) GetItem(ctx echo.Context) error {
	itemID, err := parseIDParam(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	query, err := queries.NewGetItemQuery(itemID)
	if err != nil {
		return respondError(ctx, err)
	}

	resp, err := s.getItemHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, itemReadToResponse(resp))
}

// parseIDParam reads the :id path parameter as a UUID.
func parseIDParam(ctx echo.Context) (kernel.UUID, error) {
	return kernel.UUIDFromString(ctx.Param("id"))
}

// parseLineRequests converts the JSON line payloads into command line requests.
func parseLineRequests(lines []LineRequest) ([]commands.LineRequest, error) {
	requests := make([]commands.LineRequest, 0, len(lines))
	for _, line := range lines {
		itemID, err := kernel.UUIDFromString(line.ItemID)
		if err != nil {
			return nil, err
		}

		request, err := commands.NewLineRequest(itemID, line.Amount)
		if err != nil {
			return nil, err
		}

		requests = append(requests, request)
	}

	return requests, nil
}
