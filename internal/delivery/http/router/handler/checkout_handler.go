package handler

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	deliverycontext "github.com/MaulikI8/imperialwatch/internal/delivery/context"
	"github.com/MaulikI8/imperialwatch/internal/delivery/http/response"
	"github.com/MaulikI8/imperialwatch/internal/domain/entity"
	domainerrors "github.com/MaulikI8/imperialwatch/internal/domain/errors"
	"github.com/MaulikI8/imperialwatch/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// CheckoutHandler holds dependencies for payment and order handlers.
type CheckoutHandler struct {
	uc     usecase.CheckoutUsecase
	logger *slog.Logger
}

// NewCheckoutHandler is the constructor for CheckoutHandler, injected by Fx.
func NewCheckoutHandler(uc usecase.CheckoutUsecase, logger *slog.Logger) *CheckoutHandler {
	return &CheckoutHandler{
		uc:     uc,
		logger: logger,
	}
}

type createPaymentIntentRequest struct {
	Amount     int64  `json:"amount"`
	Currency   string `json:"currency"`
	CustomerID int64  `json:"customer_id"`
}

type createPaymentIntentResponse struct {
	ClientSecret    string `json:"client_secret"`
	PaymentIntentID string `json:"payment_intent_id"`
}

type orderItemRequest struct {
	WatchID  int64   `json:"watch_id" validate:"required"`
	Quantity int     `json:"quantity" validate:"required,min=1"`
	Price    float64 `json:"price" validate:"required"`
}

type confirmPaymentRequest struct {
	PaymentIntentID string             `json:"payment_intent_id" validate:"required"`
	CustomerID      int64              `json:"customer_id"`
	Items           []orderItemRequest `json:"items" validate:"omitempty,dive"`
}

type confirmPaymentResponse struct {
	OrderID     int64   `json:"order_id"`
	Status      string  `json:"status"`
	TotalAmount float64 `json:"total_amount"`
}

type orderItemResponse struct {
	ID        int64   `json:"id"`
	WatchID   int64   `json:"watch_id"`
	Quantity  int     `json:"quantity"`
	Price     float64 `json:"price"`
	WatchName string  `json:"watch_name"`
	Brand     string  `json:"brand"`
	ImageURL  string  `json:"image_url"`
}

type orderResponse struct {
	ID              int64                `json:"id"`
	CustomerID      int64                `json:"customer_id"`
	TotalAmount     float64              `json:"total_amount"`
	Status          string               `json:"status"`
	PaymentIntentID string               `json:"payment_intent_id"`
	CreatedAt       time.Time            `json:"created_at"`
	CustomerName    string               `json:"customer_name"`
	CustomerEmail   string               `json:"customer_email"`
	Items           []*orderItemResponse `json:"items"`
}

// CreatePaymentIntent handles POST /api/create-payment-intent.
func (h *CheckoutHandler) CreatePaymentIntent(c echo.Context) error {
	var req createPaymentIntentRequest
	if err := c.Bind(&req); err != nil {
		return errors.WithStack(err)
	}

	input := &usecase.CreatePaymentIntentInput{
		Amount:     req.Amount,
		Currency:   req.Currency,
		CustomerID: req.CustomerID,
	}
	if id, ok := deliverycontext.GetCustomerID(c); ok {
		input.CustomerID = id
	}

	out, err := h.uc.CreatePaymentIntent(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusOK, &createPaymentIntentResponse{
		ClientSecret:    out.ClientSecret,
		PaymentIntentID: out.PaymentIntentID,
	})
}

// ConfirmPayment handles POST /api/confirm-payment.
func (h *CheckoutHandler) ConfirmPayment(c echo.Context) error {
	var req confirmPaymentRequest
	if err := c.Bind(&req); err != nil {
		return errors.WithStack(err)
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	input := &usecase.ConfirmPaymentInput{
		PaymentIntentID: req.PaymentIntentID,
		CustomerID:      req.CustomerID,
		Items:           make([]usecase.OrderItemInput, 0, len(req.Items)),
	}
	for _, item := range req.Items {
		input.Items = append(input.Items, usecase.OrderItemInput{
			WatchID:  item.WatchID,
			Quantity: item.Quantity,
			Price:    item.Price,
		})
	}
	if id, ok := deliverycontext.GetCustomerID(c); ok {
		input.CustomerID = id
	}

	out, err := h.uc.ConfirmPayment(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusCreated, &confirmPaymentResponse{
		OrderID:     out.OrderID,
		Status:      out.Status,
		TotalAmount: out.TotalAmount,
	})
}

// GetOrder handles GET /api/orders/:id.
func (h *CheckoutHandler) GetOrder(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return errors.WithStack(domainerrors.ErrOrderNotFound)
	}

	order, err := h.uc.GetOrder(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusOK, toOrderResponse(order))
}

func toOrderResponse(order *entity.Order) *orderResponse {
	items := make([]*orderItemResponse, 0, len(order.Items))
	for _, item := range order.Items {
		items = append(items, &orderItemResponse{
			ID:        item.ID,
			WatchID:   item.WatchID,
			Quantity:  item.Quantity,
			Price:     item.Price,
			WatchName: item.WatchName,
			Brand:     item.WatchBrand,
			ImageURL:  item.ImageURL,
		})
	}

	return &orderResponse{
		ID:              order.ID,
		CustomerID:      order.CustomerID,
		TotalAmount:     order.TotalAmount,
		Status:          order.Status.String(),
		PaymentIntentID: order.PaymentIntentID,
		CreatedAt:       order.CreatedAt,
		CustomerName:    order.CustomerName,
		CustomerEmail:   order.CustomerEmail,
		Items:           items,
	}
}
