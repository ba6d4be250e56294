// Package http exposes the coordinator's REST surface. Handlers translate
// between the JSON wire contract and the command/query layer; they hold no
// business rules of their own.
package http

import (
	"errors"
	"net/http"

	"tableservice/internal/core/application/usecases/commands"
	"tableservice/internal/core/application/usecases/queries"
	"tableservice/internal/core/domain/model/kernel"
	"tableservice/internal/core/domain/model/menu"
	"tableservice/internal/core/domain/model/order"
	"tableservice/internal/core/domain/model/table"
	"tableservice/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server wires the REST routes to the application use cases.
type Server struct {
	// Command handlers
	createOrderHandler       commands.CreateOrderCommandHandler
	updateOrderStatusHandler commands.UpdateOrderStatusCommandHandler
	cancelOrderHandler       commands.CancelOrderCommandHandler
	createTableHandler       commands.CreateTableCommandHandler
	updateTableStatusHandler commands.UpdateTableStatusCommandHandler
	createMenuItemHandler    commands.CreateMenuItemCommandHandler
	seedDataHandler          commands.SeedDataCommandHandler

	// Query handlers
	getOrdersHandler         queries.GetOrdersQueryHandler
	getActiveOrdersHandler   queries.GetActiveOrdersQueryHandler
	getTablesHandler         queries.GetTablesQueryHandler
	getMenuHandler           queries.GetMenuQueryHandler
	getMenuCategoriesHandler queries.GetMenuCategoriesQueryHandler
	getDashboardStatsHandler queries.GetDashboardStatsQueryHandler
}

// NewServer creates an HTTP server over the given use case handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	updateOrderStatusHandler commands.UpdateOrderStatusCommandHandler,
	cancelOrderHandler commands.CancelOrderCommandHandler,
	createTableHandler commands.CreateTableCommandHandler,
	updateTableStatusHandler commands.UpdateTableStatusCommandHandler,
	createMenuItemHandler commands.CreateMenuItemCommandHandler,
	seedDataHandler commands.SeedDataCommandHandler,
	getOrdersHandler queries.GetOrdersQueryHandler,
	getActiveOrdersHandler queries.GetActiveOrdersQueryHandler,
	getTablesHandler queries.GetTablesQueryHandler,
	getMenuHandler queries.GetMenuQueryHandler,
	getMenuCategoriesHandler queries.GetMenuCategoriesQueryHandler,
	getDashboardStatsHandler queries.GetDashboardStatsQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:       createOrderHandler,
		updateOrderStatusHandler: updateOrderStatusHandler,
		cancelOrderHandler:       cancelOrderHandler,
		createTableHandler:       createTableHandler,
		updateTableStatusHandler: updateTableStatusHandler,
		createMenuItemHandler:    createMenuItemHandler,
		seedDataHandler:          seedDataHandler,
		getOrdersHandler:         getOrdersHandler,
		getActiveOrdersHandler:   getActiveOrdersHandler,
		getTablesHandler:         getTablesHandler,
		getMenuHandler:           getMenuHandler,
		getMenuCategoriesHandler: getMenuCategoriesHandler,
		getDashboardStatsHandler: getDashboardStatsHandler,
	}
}

// RegisterRoutes mounts the REST surface on the given echo instance. All
// business routes live under /api; the root route is a bare liveness probe.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/", s.Root)

	api := e.Group("/api")

	api.GET("/menu", s.GetMenu)
	api.POST("/menu", s.CreateMenuItem)
	api.GET("/menu/categories", s.GetMenuCategories)

	api.GET("/tables", s.GetTables)
	api.POST("/tables", s.CreateTable)
	api.PUT("/tables/:table_id", s.UpdateTableStatus)

	api.GET("/orders", s.GetOrders)
	api.GET("/orders/active", s.GetActiveOrders)
	api.POST("/orders", s.CreateOrder)
	api.PUT("/orders/:order_id/status", s.UpdateOrderStatus)
	api.DELETE("/orders/:order_id", s.CancelOrder)

	api.GET("/dashboard/stats", s.GetDashboardStats)
	api.POST("/init-data", s.InitData)
}

type messageResponse struct {
	Message string `json:"message"`
}

type errorResponse struct {
	Detail string `json:"detail"`
}

type orderItemRequest struct {
	MenuItemID      string  `json:"menu_item_id"`
	MenuItemName    string  `json:"menu_item_name"`
	Quantity        int     `json:"quantity"`
	Price           float64 `json:"price"`
	SpecialRequests *string `json:"special_requests"`
}

type createOrderRequest struct {
	TableNumber     int                `json:"table_number"`
	Items           []orderItemRequest `json:"items"`
	WaiterName      string             `json:"waiter_name"`
	SpecialRequests *string            `json:"special_requests"`
}

type orderStatusUpdateRequest struct {
	Status string `json:"status"`
}

type createTableRequest struct {
	Number   int `json:"number"`
	Capacity int `json:"capacity"`
}

type tableStatusUpdateRequest struct {
	Status string `json:"status"`
}

type createMenuItemRequest struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Category    string  `json:"category"`
	Image       *string `json:"image"`
}

// Root handles GET / as a liveness probe.
func (s *Server) Root(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, messageResponse{Message: "Backend online"})
}

// GetMenu handles GET /api/menu.
func (s *Server) GetMenu(ctx echo.Context) error {
	items, err := s.getMenuHandler.Handle(ctx.Request().Context(), queries.NewGetMenuQuery())
	if err != nil {
		return s.respondError(ctx, err, "")
	}

	return ctx.JSON(http.StatusOK, items)
}

// CreateMenuItem handles POST /api/menu.
func (s *Server) CreateMenuItem(ctx echo.Context) error {
	var req createMenuItemRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, errorResponse{Detail: "Invalid request body"})
	}

	image := ""
	if req.Image != nil {
		image = *req.Image
	}

	cmd, err := commands.NewCreateMenuItemCommand(kernel.NewUUID(),
		req.Name, req.Description, req.Price, req.Category, image)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, errorResponse{Detail: err.Error()})
	}

	item, err := s.createMenuItemHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.respondError(ctx, err, "")
	}

	return ctx.JSON(http.StatusCreated, menuItemToResponse(item))
}

// GetMenuCategories handles GET /api/menu/categories.
func (s *Server) GetMenuCategories(ctx echo.Context) error {
	categories, err := s.getMenuCategoriesHandler.Handle(ctx.Request().Context(), queries.NewGetMenuCategoriesQuery())
	if err != nil {
		return s.respondError(ctx, err, "")
	}

	return ctx.JSON(http.StatusOK, categories)
}

// GetTables handles GET /api/tables.
func (s *Server) GetTables(ctx echo.Context) error {
	tables, err := s.getTablesHandler.Handle(ctx.Request().Context(), queries.NewGetTablesQuery())
	if err != nil {
		return s.respondError(ctx, err, "")
	}

	return ctx.JSON(http.StatusOK, tables)
}

// CreateTable handles POST /api/tables.
func (s *Server) CreateTable(ctx echo.Context) error {
	var req createTableRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, errorResponse{Detail: "Invalid request body"})
	}

	cmd, err := commands.NewCreateTableCommand(kernel.NewUUID(), req.Number, req.Capacity)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, errorResponse{Detail: err.Error()})
	}

	created, err := s.createTableHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		if errors.Is(err, errs.ErrObjectAlreadyExists) {
			return ctx.JSON(http.StatusConflict, errorResponse{Detail: "Table number already exists"})
		}
		return s.respondError(ctx, err, "")
	}

	return ctx.JSON(http.StatusCreated, tableToResponse(created))
}

// UpdateTableStatus handles PUT /api/tables/:table_id.
func (s *Server) UpdateTableStatus(ctx echo.Context) error {
	tableID, err := kernel.UUIDFromString(ctx.Param("table_id"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, errorResponse{Detail: "Invalid table id"})
	}

	// The status rides in the query string; a JSON body works too.
	raw := ctx.QueryParam("status")
	if raw == "" {
		var req tableStatusUpdateRequest
		if err = ctx.Bind(&req); err != nil {
			return ctx.JSON(http.StatusBadRequest, errorResponse{Detail: "Invalid request body"})
		}
		raw = req.Status
	}

	status, err := table.StatusFromString(raw)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, errorResponse{Detail: err.Error()})
	}

	cmd, err := commands.NewUpdateTableStatusCommand(tableID, status)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, errorResponse{Detail: err.Error()})
	}

	if err = s.updateTableStatusHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.respondError(ctx, err, "Table not found")
	}

	return ctx.JSON(http.StatusOK, messageResponse{Message: "Table status updated"})
}

// GetOrders handles GET /api/orders.
func (s *Server) GetOrders(ctx echo.Context) error {
	orders, err := s.getOrdersHandler.Handle(ctx.Request().Context(), queries.NewGetOrdersQuery())
	if err != nil {
		return s.respondError(ctx, err, "")
	}

	return ctx.JSON(http.StatusOK, orders)
}

// GetActiveOrders handles GET /api/orders/active.
func (s *Server) GetActiveOrders(ctx echo.Context) error {
	orders, err := s.getActiveOrdersHandler.Handle(ctx.Request().Context(), queries.NewGetActiveOrdersQuery())
	if err != nil {
		return s.respondError(ctx, err, "")
	}

	return ctx.JSON(http.StatusOK, orders)
}

// CreateOrder handles POST /api/orders.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var req createOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, errorResponse{Detail: "Invalid request body"})
	}

	items := make([]order.Item, 0, len(req.Items))
	for _, itemReq := range req.Items {
		menuItemID, err := kernel.UUIDFromString(itemReq.MenuItemID)
		if err != nil {
			return ctx.JSON(http.StatusBadRequest, errorResponse{Detail: "Invalid menu item id"})
		}

		note := ""
		if itemReq.SpecialRequests != nil {
			note = *itemReq.SpecialRequests
		}

		item, err := order.NewItem(menuItemID, itemReq.MenuItemName, itemReq.Quantity, itemReq.Price, note)
		if err != nil {
			return ctx.JSON(http.StatusBadRequest, errorResponse{Detail: err.Error()})
		}
		items = append(items, item)
	}

	note := ""
	if req.SpecialRequests != nil {
		note = *req.SpecialRequests
	}

	cmd, err := commands.NewCreateOrderCommand(kernel.NewUUID(), req.TableNumber, items, req.WaiterName, note)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, errorResponse{Detail: err.Error()})
	}

	created, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.respondError(ctx, err, "Table not found")
	}

	return ctx.JSON(http.StatusCreated, orderToResponse(created))
}

// UpdateOrderStatus handles PUT /api/orders/:order_id/status.
func (s *Server) UpdateOrderStatus(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("order_id"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, errorResponse{Detail: "Invalid order id"})
	}

	var req orderStatusUpdateRequest
	if err = ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, errorResponse{Detail: "Invalid request body"})
	}

	status, err := order.StatusFromString(req.Status)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, errorResponse{Detail: err.Error()})
	}

	cmd, err := commands.NewUpdateOrderStatusCommand(orderID, status)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, errorResponse{Detail: err.Error()})
	}

	if err = s.updateOrderStatusHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.respondError(ctx, err, "Order not found")
	}

	return ctx.JSON(http.StatusOK, messageResponse{Message: "Order status updated"})
}

// CancelOrder handles DELETE /api/orders/:order_id.
func (s *Server) CancelOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("order_id"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, errorResponse{Detail: "Invalid order id"})
	}

	cmd, err := commands.NewCancelOrderCommand(orderID)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, errorResponse{Detail: err.Error()})
	}

	if err = s.cancelOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.respondError(ctx, err, "Order not found")
	}

	return ctx.JSON(http.StatusOK, messageResponse{Message: "Order cancelled"})
}

// GetDashboardStats handles GET /api/dashboard/stats.
func (s *Server) GetDashboardStats(ctx echo.Context) error {
	stats, err := s.getDashboardStatsHandler.Handle(ctx.Request().Context(), queries.NewGetDashboardStatsQuery())
	if err != nil {
		return s.respondError(ctx, err, "")
	}

	return ctx.JSON(http.StatusOK, stats)
}

// InitData handles POST /api/init-data.
func (s *Server) InitData(ctx echo.Context) error {
	seeded, err := s.seedDataHandler.Handle(ctx.Request().Context(), commands.NewSeedDataCommand())
	if err != nil {
		return s.respondError(ctx, err, "")
	}

	if !seeded {
		return ctx.JSON(http.StatusOK, messageResponse{Message: "Data already initialized"})
	}

	return ctx.JSON(http.StatusOK, messageResponse{Message: "Default data initialized successfully"})
}

// respondError maps use case failures onto HTTP status codes. The not-found
// message is endpoint-specific because the wire contract spells out which
// object was missing.
func (s *Server) respondError(ctx echo.Context, err error, notFoundDetail string) error {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		if notFoundDetail == "" {
			notFoundDetail = "Not found"
		}
		return ctx.JSON(http.StatusNotFound, errorResponse{Detail: notFoundDetail})
	case errors.Is(err, errs.ErrObjectAlreadyExists):
		return ctx.JSON(http.StatusConflict, errorResponse{Detail: err.Error()})
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return ctx.JSON(http.StatusBadRequest, errorResponse{Detail: err.Error()})
	default:
		return ctx.JSON(http.StatusInternalServerError, errorResponse{Detail: "Internal server error"})
	}
}

func orderToResponse(aggregate *order.Order) queries.OrderResponse {
	items := make([]queries.OrderItemResponse, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		itemResp := queries.OrderItemResponse{
			MenuItemID:   item.MenuItemID().String(),
			MenuItemName: item.MenuItemName(),
			Quantity:     item.Quantity(),
			Price:        item.Price(),
		}
		if note := item.Note(); note != "" {
			itemResp.SpecialRequests = &note
		}
		items = append(items, itemResp)
	}

	resp := queries.OrderResponse{
		ID:          aggregate.ID().String(),
		TableNumber: aggregate.TableNumber(),
		Items:       items,
		Status:      aggregate.Status().String(),
		TotalAmount: aggregate.Total(),
		WaiterName:  aggregate.WaiterName(),
		CreatedAt:   aggregate.CreatedAt(),
		UpdatedAt:   aggregate.UpdatedAt(),
	}
	if note := aggregate.Note(); note != "" {
		resp.SpecialRequests = &note
	}

	return resp
}

func tableToResponse(aggregate *table.Table) queries.TableResponse {
	return queries.TableResponse{
		ID:               aggregate.ID().String(),
		Number:           aggregate.Number(),
		Status:           aggregate.Status().String(),
		Capacity:         aggregate.Capacity(),
		CurrentCustomers: aggregate.Guests(),
	}
}

func menuItemToResponse(item *menu.Item) queries.MenuItemResponse {
	resp := queries.MenuItemResponse{
		ID:          item.ID().String(),
		Name:        item.Name(),
		Description: item.Description(),
		Price:       item.Price(),
		Category:    item.Category(),
		Available:   item.Available(),
		CreatedAt:   item.CreatedAt(),
	}
	if image := item.Image(); image != "" {
		resp.Image = &image
	}

	return resp
}
