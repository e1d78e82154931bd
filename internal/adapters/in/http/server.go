// Package http exposes the order lifecycle engine over REST. Routes,
// envelopes, and status codes follow the storefront API contract: user
// endpoints are scoped by the authenticated email, admin endpoints see and
// mutate everything, and the menu is public.
package http

import (
	"net/http"
	"strings"

	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/core/application/usecases/queries"
	"storefront/internal/core/domain/model/order"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	placeOrderHandler        commands.PlaceOrderCommandHandler
	updateOrderStatusHandler commands.UpdateOrderStatusCommandHandler
	deleteOrderHandler       commands.DeleteOrderCommandHandler

	// Query handlers
	getOrderHandler          queries.GetOrderQueryHandler
	listOrdersHandler        queries.ListOrdersQueryHandler
	getMenuHandler           queries.GetMenuQueryHandler
	getMenuCategoriesHandler queries.GetMenuCategoriesQueryHandler
	getMenuItemHandler       queries.GetMenuItemQueryHandler

	adminEmail string
	wsHandler  http.Handler
}

// NewServer creates an HTTP server with the required command and query
// handlers. wsHandler may be nil when the deployment runs without a push
// channel; the /ws route is simply not registered then.
func NewServer(
	placeOrderHandler commands.PlaceOrderCommandHandler,
	updateOrderStatusHandler commands.UpdateOrderStatusCommandHandler,
	deleteOrderHandler commands.DeleteOrderCommandHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	listOrdersHandler queries.ListOrdersQueryHandler,
	getMenuHandler queries.GetMenuQueryHandler,
	getMenuCategoriesHandler queries.GetMenuCategoriesQueryHandler,
	getMenuItemHandler queries.GetMenuItemQueryHandler,
	adminEmail string,
	wsHandler http.Handler,
) *Server {
	return &Server{
		placeOrderHandler:        placeOrderHandler,
		updateOrderStatusHandler: updateOrderStatusHandler,
		deleteOrderHandler:       deleteOrderHandler,
		getOrderHandler:          getOrderHandler,
		listOrdersHandler:        listOrdersHandler,
		getMenuHandler:           getMenuHandler,
		getMenuCategoriesHandler: getMenuCategoriesHandler,
		getMenuItemHandler:       getMenuItemHandler,
		adminEmail:               adminEmail,
		wsHandler:                wsHandler,
	}
}

// RegisterRoutes wires every endpoint onto the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)

	e.POST("/api/auth/login", s.Login)

	menu := e.Group("/api/menu")
	menu.GET("", s.GetMenuItems)
	menu.GET("/categories", s.GetMenuCategories)
	menu.GET("/:id", s.GetMenuItem)

	orders := e.Group("/api/orders", Authenticate)
	orders.GET("", s.GetUserOrders)
	orders.GET("/:id", s.GetUserOrder)
	orders.POST("", s.CreateOrder)

	admin := e.Group("/api/admin", Authenticate, AdminOnly(s.adminEmail))
	admin.GET("/orders", s.GetAllOrders)
	admin.GET("/orders/:id", s.GetOrder)
	admin.PATCH("/orders/:id/status", s.UpdateOrderStatus)
	admin.DELETE("/orders/:id", s.DeleteOrder)

	if s.wsHandler != nil {
		e.GET("/ws", echo.WrapHandler(s.wsHandler))
	}
}

// Health handles GET /health - liveness probe.
func (s *Server) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

type loginRequest struct {
	Email string `json:"email"`
}

// Login handles POST /api/auth/login - validates the email and returns the
// identity with its admin flag. There are no credentials; identity is the
// email itself.
func (s *Server) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return respondError(c, http.StatusBadRequest, "Invalid request body")
	}
	if req.Email == "" {
		return respondError(c, http.StatusBadRequest, "Email is required")
	}
	if !IsValidEmail(req.Email) {
		return respondError(c, http.StatusBadRequest, "Invalid email address")
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	return respondData(c, http.StatusOK, map[string]any{
		"email":   email,
		"isAdmin": email == s.adminEmail,
	})
}

// GetMenuItems handles GET /api/menu - lists the catalog, optionally
// filtered with ?category=.
func (s *Server) GetMenuItems(c echo.Context) error {
	items, err := s.getMenuHandler.Handle(c.Request().Context(),
		queries.NewGetMenuQuery(c.QueryParam("category")))
	if err != nil {
		return respondDomainError(c, err)
	}
	return respondList(c, items, len(items))
}

// GetMenuCategories handles GET /api/menu/categories.
func (s *Server) GetMenuCategories(c echo.Context) error {
	categories, err := s.getMenuCategoriesHandler.Handle(c.Request().Context(),
		queries.NewGetMenuCategoriesQuery())
	if err != nil {
		return respondDomainError(c, err)
	}
	return respondData(c, http.StatusOK, categories)
}

// GetMenuItem handles GET /api/menu/:id.
func (s *Server) GetMenuItem(c echo.Context) error {
	query, err := queries.NewGetMenuItemQuery(c.Param("id"))
	if err != nil {
		return respondDomainError(c, err)
	}

	item, err := s.getMenuItemHandler.Handle(c.Request().Context(), query)
	if err != nil {
		return respondDomainError(c, err)
	}
	return respondData(c, http.StatusOK, item)
}

// GetUserOrders handles GET /api/orders - the requester's own orders.
func (s *Server) GetUserOrders(c echo.Context) error {
	orders, err := s.listOrdersHandler.Handle(c.Request().Context(),
		queries.NewListOrdersQueryForOwner(userEmail(c)))
	if err != nil {
		return respondDomainError(c, err)
	}
	return respondList(c, orders, len(orders))
}

// GetUserOrder handles GET /api/orders/:id - the requester's own order.
// Somebody else's order is answered exactly like a missing one.
func (s *Server) GetUserOrder(c echo.Context) error {
	query, err := queries.NewGetOrderQueryForRequester(c.Param("id"), userEmail(c))
	if err != nil {
		return respondDomainError(c, err)
	}

	found, err := s.getOrderHandler.Handle(c.Request().Context(), query)
	if err != nil {
		return respondDomainError(c, err)
	}
	return respondData(c, http.StatusOK, found)
}

type orderItemRequest struct {
	MenuItemID string `json:"menuItemId"`
	Quantity   int    `json:"quantity"`
}

type customerRequest struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
}

type placeOrderRequest struct {
	Items    []orderItemRequest `json:"items"`
	Customer customerRequest    `json:"customer"`
}

// CreateOrder handles POST /api/orders - places an order for the
// authenticated customer. String inputs are sanitized before they reach the
// domain: tags stripped, whitespace collapsed, and the phone re-formatted
// from its digits.
func (s *Server) CreateOrder(c echo.Context) error {
	var req placeOrderRequest
	if err := c.Bind(&req); err != nil {
		return respondError(c, http.StatusBadRequest, "Invalid request body")
	}

	selections := make([]commands.ItemSelection, 0, len(req.Items))
	for _, item := range req.Items {
		id := strings.TrimSpace(item.MenuItemID)
		if id != "" && !isValidMenuItemID(id) {
			return respondError(c, http.StatusBadRequest,
				"menuItemId contains invalid characters")
		}
		selections = append(selections, commands.ItemSelection{
			MenuItemID: id,
			Quantity:   item.Quantity,
		})
	}

	cmd, err := commands.NewPlaceOrderCommand(
		selections,
		SanitizeString(req.Customer.Name),
		SanitizeString(req.Customer.Address),
		SanitizePhone(req.Customer.Phone),
		userEmail(c),
	)
	if err != nil {
		return respondDomainError(c, err)
	}

	placed, err := s.placeOrderHandler.Handle(c.Request().Context(), cmd)
	if err != nil {
		return respondDomainError(c, err)
	}
	return respondData(c, http.StatusCreated, placed)
}

// GetAllOrders handles GET /api/admin/orders - every live order.
func (s *Server) GetAllOrders(c echo.Context) error {
	orders, err := s.listOrdersHandler.Handle(c.Request().Context(), queries.NewListOrdersQuery())
	if err != nil {
		return respondDomainError(c, err)
	}
	return respondList(c, orders, len(orders))
}

// GetOrder handles GET /api/admin/orders/:id - any order, unscoped.
func (s *Server) GetOrder(c echo.Context) error {
	query, err := queries.NewGetOrderQuery(c.Param("id"))
	if err != nil {
		return respondDomainError(c, err)
	}

	found, err := s.getOrderHandler.Handle(c.Request().Context(), query)
	if err != nil {
		return respondDomainError(c, err)
	}
	return respondData(c, http.StatusOK, found)
}

type statusUpdateRequest struct {
	Status string `json:"status"`
}

// UpdateOrderStatus handles PATCH /api/admin/orders/:id/status.
func (s *Server) UpdateOrderStatus(c echo.Context) error {
	var req statusUpdateRequest
	if err := c.Bind(&req); err != nil {
		return respondError(c, http.StatusBadRequest, "Invalid request body")
	}

	status, err := order.ParseStatus(req.Status)
	if err != nil {
		return respondDomainError(c, err)
	}

	cmd, err := commands.NewUpdateOrderStatusCommand(c.Param("id"), status)
	if err != nil {
		return respondDomainError(c, err)
	}

	updated, err := s.updateOrderStatusHandler.Handle(c.Request().Context(), cmd)
	if err != nil {
		return respondDomainError(c, err)
	}
	return respondData(c, http.StatusOK, updated)
}

// DeleteOrder handles DELETE /api/admin/orders/:id.
func (s *Server) DeleteOrder(c echo.Context) error {
	cmd, err := commands.NewDeleteOrderCommand(c.Param("id"))
	if err != nil {
		return respondDomainError(c, err)
	}

	if err := s.deleteOrderHandler.Handle(c.Request().Context(), cmd); err != nil {
		return respondDomainError(c, err)
	}
	return respondMessage(c, "Order deleted successfully")
}
