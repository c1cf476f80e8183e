// Package http exposes the order coordination API over REST.
// It coordinates between HTTP handlers and application use cases,
// translating domain errors into HTTP status codes.
package http

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"fooddelivery/internal/core/application/usecases/commands"
	"fooddelivery/internal/core/application/usecases/queries"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// ErrorResponse is the JSON error body returned by all endpoints.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// ItemRequest is one line item in an order creation request.
type ItemRequest struct {
	ItemID    string  `json:"item_id"`
	Name      string  `json:"name"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
}

// AddressRequest is the delivery destination in an order creation request.
type AddressRequest struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Text      string  `json:"text"`
}

// CreateOrderRequest is the body of POST /api/orders.
type CreateOrderRequest struct {
	CustomerID    string         `json:"customer_id"`
	RestaurantID  string         `json:"restaurant_id"`
	Items         []ItemRequest  `json:"items"`
	Address       AddressRequest `json:"address"`
	TotalAmount   *float64       `json:"total_amount"`
	PaymentMethod string         `json:"payment_method"`
}

// AcceptOrderRequest is the body of POST /api/rider/accept.
type AcceptOrderRequest struct {
	OrderID string `json:"order_id"`
	RiderID string `json:"rider_id"`
}

// ChangeStatusRequest is the body of PATCH /api/orders/:orderId/status.
type ChangeStatusRequest struct {
	Status       string  `json:"status"`
	TrackingLink *string `json:"live_tracking_link"`
}

// OrderResponse is the order representation returned by command endpoints.
// Query endpoints return the read-side projection directly.
type OrderResponse struct {
	ID            string                 `json:"id"`
	CustomerID    string                 `json:"customer_id"`
	RestaurantID  string                 `json:"restaurant_id"`
	RiderID       *string                `json:"rider_id"`
	Items         []queries.ItemResponse `json:"items"`
	Address       AddressRequest         `json:"address"`
	TotalAmount   *float64               `json:"total_amount"`
	PaymentMethod string                 `json:"payment_method"`
	Status        string                 `json:"status"`
	TrackingLink  *string                `json:"live_tracking_link"`
	CreatedAt     time.Time              `json:"created_at"`
	UpdatedAt     time.Time              `json:"updated_at"`
}

func orderToResponse(aggregate *order.Order) OrderResponse {
	items := make([]queries.ItemResponse, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		items = append(items, queries.ItemResponse{
			ItemID:    item.ItemID(),
			Name:      item.Name(),
			Quantity:  item.Quantity(),
			UnitPrice: item.UnitPrice(),
		})
	}

	address := aggregate.DeliveryAddress()
	return OrderResponse{
		ID:           aggregate.ID().String(),
		CustomerID:   aggregate.CustomerID(),
		RestaurantID: aggregate.RestaurantID(),
		RiderID:      aggregate.Rider(),
		Items:        items,
		Address: AddressRequest{
			Latitude:  address.Point().Latitude(),
			Longitude: address.Point().Longitude(),
			Text:      address.Text(),
		},
		TotalAmount:   aggregate.TotalAmount(),
		PaymentMethod: aggregate.PaymentMethod().String(),
		Status:        aggregate.Status().String(),
		TrackingLink:  aggregate.TrackingLink(),
		CreatedAt:     aggregate.CreatedAt(),
		UpdatedAt:     aggregate.UpdatedAt(),
	}
}

// Server handles the REST surface of the order coordination API.
type Server struct {
	// Command handlers
	createOrderHandler  commands.CreateOrderCommandHandler
	acceptOrderHandler  commands.AcceptOrderCommandHandler
	changeStatusHandler commands.ChangeOrderStatusCommandHandler

	// Query handlers
	getOrderHandler            queries.GetOrderQueryHandler
	getRestaurantActiveHandler queries.GetRestaurantActiveOrdersQueryHandler
	getAllActiveOrdersHandler  queries.GetAllActiveOrdersQueryHandler
	getAvailableOrdersHandler  queries.GetAvailableOrdersQueryHandler
	getRiderOrdersHandler      queries.GetRiderOrdersQueryHandler
	getCustomerOrdersHandler   queries.GetCustomerOrdersQueryHandler
	getNearestRidersHandler    queries.GetNearestRidersQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	acceptOrderHandler commands.AcceptOrderCommandHandler,
	changeStatusHandler commands.ChangeOrderStatusCommandHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	getRestaurantActiveHandler queries.GetRestaurantActiveOrdersQueryHandler,
	getAllActiveOrdersHandler queries.GetAllActiveOrdersQueryHandler,
	getAvailableOrdersHandler queries.GetAvailableOrdersQueryHandler,
	getRiderOrdersHandler queries.GetRiderOrdersQueryHandler,
	getCustomerOrdersHandler queries.GetCustomerOrdersQueryHandler,
	getNearestRidersHandler queries.GetNearestRidersQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:         createOrderHandler,
		acceptOrderHandler:         acceptOrderHandler,
		changeStatusHandler:        changeStatusHandler,
		getOrderHandler:            getOrderHandler,
		getRestaurantActiveHandler: getRestaurantActiveHandler,
		getAllActiveOrdersHandler:  getAllActiveOrdersHandler,
		getAvailableOrdersHandler:  getAvailableOrdersHandler,
		getRiderOrdersHandler:      getRiderOrdersHandler,
		getCustomerOrdersHandler:   getCustomerOrdersHandler,
		getNearestRidersHandler:    getNearestRidersHandler,
	}
}

// RegisterRoutes binds all REST endpoints on the given echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)

	e.POST("/api/orders", s.CreateOrder)
	e.GET("/api/orders/active", s.GetAllActiveOrders)
	e.GET("/api/orders/available", s.GetAvailableOrders)
	// The restaurant and order routes share the same path segment, so they
	// must share the :id parameter name; echo rejects conflicting names.
	e.GET("/api/orders/rider/:riderId", s.GetRiderOrders)
	e.GET("/api/orders/user/:userId", s.GetCustomerOrders)
	e.GET("/api/orders/:id/active", s.GetRestaurantActiveOrders)
	e.GET("/api/orders/:id", s.GetOrder)
	e.PATCH("/api/orders/:id/status", s.ChangeOrderStatus)

	e.POST("/api/rider/accept", s.AcceptOrder)
	e.GET("/api/riders/nearest", s.GetNearestRiders)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// CreateOrder handles POST /api/orders - places a new order.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var req CreateOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	items := make([]order.Item, 0, len(req.Items))
	for _, itemReq := range req.Items {
		item, err := order.NewItem(itemReq.ItemID, itemReq.Name, itemReq.Quantity, itemReq.UnitPrice)
		if err != nil {
			return errorJSON(ctx, err)
		}
		items = append(items, item)
	}

	point, err := kernel.NewGeoPoint(req.Address.Latitude, req.Address.Longitude)
	if err != nil {
		return errorJSON(ctx, err)
	}
	address, err := order.NewDeliveryAddress(point, req.Address.Text)
	if err != nil {
		return errorJSON(ctx, err)
	}

	paymentMethod := order.PaymentMethod(req.PaymentMethod)
	if req.PaymentMethod == "" {
		paymentMethod = order.PaymentCashOnDelivery
	}

	cmd, err := commands.NewCreateOrderCommand(req.CustomerID, req.RestaurantID,
		items, address, req.TotalAmount, paymentMethod)
	if err != nil {
		return errorJSON(ctx, err)
	}

	created, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorJSON(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, orderToResponse(created))
}

// GetOrder handles GET /api/orders/:id.
func (s *Server) GetOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return errorJSON(ctx, err)
	}

	resp, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorJSON(ctx, err)
	}

	return ctx.JSON(http.StatusOK, resp)
}

// GetAllActiveOrders handles GET /api/orders/active.
func (s *Server) GetAllActiveOrders(ctx echo.Context) error {
	result, err := s.getAllActiveOrdersHandler.Handle(
		ctx.Request().Context(), queries.NewGetAllActiveOrdersQuery())
	if err != nil {
		return errorJSON(ctx, err)
	}

	return ctx.JSON(http.StatusOK, result)
}

// GetAvailableOrders handles GET /api/orders/available - the rider claim queue.
func (s *Server) GetAvailableOrders(ctx echo.Context) error {
	result, err := s.getAvailableOrdersHandler.Handle(
		ctx.Request().Context(), queries.NewGetAvailableOrdersQuery())
	if err != nil {
		return errorJSON(ctx, err)
	}

	return ctx.JSON(http.StatusOK, result)
}

// GetRestaurantActiveOrders handles GET /api/orders/:id/active.
func (s *Server) GetRestaurantActiveOrders(ctx echo.Context) error {
	query, err := queries.NewGetRestaurantActiveOrdersQuery(ctx.Param("id"))
	if err != nil {
		return errorJSON(ctx, err)
	}

	result, err := s.getRestaurantActiveHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorJSON(ctx, err)
	}

	return ctx.JSON(http.StatusOK, result)
}

// GetRiderOrders handles GET /api/orders/rider/:riderId.
func (s *Server) GetRiderOrders(ctx echo.Context) error {
	query, err := queries.NewGetRiderOrdersQuery(ctx.Param("riderId"))
	if err != nil {
		return errorJSON(ctx, err)
	}

	result, err := s.getRiderOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorJSON(ctx, err)
	}

	return ctx.JSON(http.StatusOK, result)
}

// GetCustomerOrders handles GET /api/orders/user/:userId.
func (s *Server) GetCustomerOrders(ctx echo.Context) error {
	query, err := queries.NewGetCustomerOrdersQuery(ctx.Param("userId"))
	if err != nil {
		return errorJSON(ctx, err)
	}

	result, err := s.getCustomerOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorJSON(ctx, err)
	}

	return ctx.JSON(http.StatusOK, result)
}

// AcceptOrder handles POST /api/rider/accept - a rider claims an order.
func (s *Server) AcceptOrder(ctx echo.Context) error {
	var req AcceptOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	orderID, err := kernel.UUIDFromString(req.OrderID)
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	cmd, err := commands.NewAcceptOrderCommand(orderID, req.RiderID)
	if err != nil {
		return errorJSON(ctx, err)
	}

	accepted, err := s.acceptOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorJSON(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderToResponse(accepted))
}

// ChangeOrderStatus handles PATCH /api/orders/:id/status.
func (s *Server) ChangeOrderStatus(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	var req ChangeStatusRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewChangeOrderStatusCommand(orderID, order.Status(req.Status), req.TrackingLink)
	if err != nil {
		return errorJSON(ctx, err)
	}

	updated, err := s.changeStatusHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorJSON(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderToResponse(updated))
}

// GetNearestRiders handles GET /api/riders/nearest?lat=&lng=&limit=.
func (s *Server) GetNearestRiders(ctx echo.Context) error {
	lat, err := strconv.ParseFloat(ctx.QueryParam("lat"), 64)
	if err != nil {
		return badRequest(ctx, "Invalid lat")
	}
	lng, err := strconv.ParseFloat(ctx.QueryParam("lng"), 64)
	if err != nil {
		return badRequest(ctx, "Invalid lng")
	}
	limit := 0
	if raw := ctx.QueryParam("limit"); raw != "" {
		if limit, err = strconv.Atoi(raw); err != nil {
			return badRequest(ctx, "Invalid limit")
		}
	}

	point, err := kernel.NewGeoPoint(lat, lng)
	if err != nil {
		return errorJSON(ctx, err)
	}
	query, err := queries.NewGetNearestRidersQuery(point, limit)
	if err != nil {
		return errorJSON(ctx, err)
	}

	result, err := s.getNearestRidersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorJSON(ctx, err)
	}

	return ctx.JSON(http.StatusOK, result)
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, ErrorResponse{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

// errorJSON maps domain errors onto HTTP status codes: validation failures
// are 400, missing objects 404, lost claims 409, an unreachable store 503,
// anything unclassified 500.
func errorJSON(ctx echo.Context, err error) error {
	code := http.StatusInternalServerError
	switch {
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange),
		errors.Is(err, errs.ErrStatusNotAllowed):
		code = http.StatusBadRequest
	case errors.Is(err, errs.ErrObjectNotFound):
		code = http.StatusNotFound
	case errors.Is(err, errs.ErrOrderAlreadyAssigned):
		code = http.StatusConflict
	case errors.Is(err, errs.ErrStoreUnavailable):
		code = http.StatusServiceUnavailable
	}

	return ctx.JSON(code, ErrorResponse{
		Code:    code,
		Message: err.Error(),
	})
}
