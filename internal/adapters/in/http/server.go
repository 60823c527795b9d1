// Package http exposes the order service REST API on echo: placing orders
// and tracking them by their public tracking identifier.
package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"ordering/internal/core/application/usecases/commands"
	"ordering/internal/core/application/usecases/queries"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/core/domain/services"
	"ordering/internal/pkg/errs"
)

// ErrorResponse is the JSON body returned for failed requests.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// AddressRequest is the delivery address part of an order request.
type AddressRequest struct {
	Street  string `json:"street"`
	City    string `json:"city"`
	ZipCode string `json:"zip_code"`
}

// OrderItemRequest is one requested order line.
type OrderItemRequest struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
	Price     string `json:"price"`
	SubTotal  string `json:"sub_total"`
}

// CreateOrderRequest is the body of POST /api/v1/orders.
type CreateOrderRequest struct {
	CustomerID   string             `json:"customer_id"`
	RestaurantID string             `json:"restaurant_id"`
	Address      AddressRequest     `json:"address"`
	Price        string             `json:"price"`
	Items        []OrderItemRequest `json:"items"`
}

// CreateOrderResponse reports the identifiers of a freshly created order.
type CreateOrderResponse struct {
	OrderID    string `json:"order_id"`
	TrackingID string `json:"tracking_id"`
	Status     string `json:"status"`
}

// TrackOrderResponse reports the public progress of an order.
type TrackOrderResponse struct {
	TrackingID      string   `json:"tracking_id"`
	Status          string   `json:"status"`
	FailureMessages []string `json:"failure_messages,omitempty"`
}

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	createOrderHandler commands.CreateOrderCommandHandler
	trackOrderHandler  queries.TrackOrderQueryHandler
}

// NewServer creates an HTTP server with the required command and query
// handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	trackOrderHandler queries.TrackOrderQueryHandler,
) *Server {
	return &Server{
		createOrderHandler: createOrderHandler,
		trackOrderHandler:  trackOrderHandler,
	}
}

// RegisterRoutes mounts the API endpoints on the given echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.POST("/api/v1/orders", s.CreateOrder)
	e.GET("/api/v1/orders/:trackingId", s.TrackOrder)
}

// CreateOrder handles POST /api/v1/orders.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var request CreateOrderRequest
	if err := ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	cmd, err := commandFromRequest(request)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid order data: " + err.Error(),
		})
	}

	result, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorToResponse(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreateOrderResponse{
		OrderID:    result.OrderID.String(),
		TrackingID: result.TrackingID.String(),
		Status:     result.Status.String(),
	})
}

// TrackOrder handles GET /api/v1/orders/:trackingId.
func (s *Server) TrackOrder(ctx echo.Context) error {
	trackingID, err := kernel.TrackingIDFromString(ctx.Param("trackingId"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid tracking identifier",
		})
	}

	query, err := queries.NewTrackOrderQuery(trackingID)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid tracking identifier",
		})
	}

	result, err := s.trackOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorToResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, TrackOrderResponse{
		TrackingID:      result.TrackingID.String(),
		Status:          result.Status.String(),
		FailureMessages: result.FailureMessages,
	})
}

func commandFromRequest(request CreateOrderRequest) (commands.CreateOrderCommand, error) {
	customerID, err := kernel.CustomerIDFromString(request.CustomerID)
	if err != nil {
		return commands.CreateOrderCommand{}, err
	}

	restaurantID, err := kernel.RestaurantIDFromString(request.RestaurantID)
	if err != nil {
		return commands.CreateOrderCommand{}, err
	}

	price, err := kernel.NewMoneyFromString(request.Price)
	if err != nil {
		return commands.CreateOrderCommand{}, err
	}

	items := make([]commands.CreateOrderCommandItem, 0, len(request.Items))
	for _, item := range request.Items {
		productID, itemErr := kernel.ProductIDFromString(item.ProductID)
		if itemErr != nil {
			return commands.CreateOrderCommand{}, itemErr
		}

		itemPrice, itemErr := kernel.NewMoneyFromString(item.Price)
		if itemErr != nil {
			return commands.CreateOrderCommand{}, itemErr
		}

		subTotal, itemErr := kernel.NewMoneyFromString(item.SubTotal)
		if itemErr != nil {
			return commands.CreateOrderCommand{}, itemErr
		}

		items = append(items, commands.CreateOrderCommandItem{
			ProductID: productID,
			Price:     itemPrice,
			Quantity:  item.Quantity,
			SubTotal:  subTotal,
		})
	}

	return commands.NewCreateOrderCommand(
		customerID,
		restaurantID,
		request.Address.Street,
		request.Address.City,
		request.Address.ZipCode,
		price,
		items,
	)
}

// errorToResponse maps domain failures to HTTP statuses: missing objects to
// 404, business rule violations to 422, everything else to 500.
func errorToResponse(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return ctx.JSON(http.StatusNotFound, ErrorResponse{
			Code:    http.StatusNotFound,
			Message: err.Error(),
		})

	case errors.Is(err, order.ErrInvalidPrice),
		errors.Is(err, order.ErrInvalidState),
		errors.Is(err, order.ErrInvalidStateTransition),
		errors.Is(err, services.ErrRestaurantInactive):
		return ctx.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Code:    http.StatusUnprocessableEntity,
			Message: err.Error(),
		})

	default:
		return ctx.JSON(http.StatusInternalServerError, ErrorResponse{
			Code:    http.StatusInternalServerError,
			Message: "Internal server error",
		})
	}
}
