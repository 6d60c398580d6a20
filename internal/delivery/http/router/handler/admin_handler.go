package handler

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/MaulikI8/imperialwatch/internal/delivery/http/response"
	"github.com/MaulikI8/imperialwatch/internal/domain/entity"
	domainerrors "github.com/MaulikI8/imperialwatch/internal/domain/errors"
	"github.com/MaulikI8/imperialwatch/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AdminHandler holds dependencies for the admin management handlers.
type AdminHandler struct {
	uc     usecase.AdminUsecase
	logger *slog.Logger
}

// NewAdminHandler is the constructor for AdminHandler, injected by Fx.
func NewAdminHandler(uc usecase.AdminUsecase, logger *slog.Logger) *AdminHandler {
	return &AdminHandler{
		uc:     uc,
		logger: logger,
	}
}

type dashboardResponse struct {
	TotalWatches   int64   `json:"total_watches"`
	TotalCustomers int64   `json:"total_customers"`
	TotalOrders    int64   `json:"total_orders"`
	TotalRevenue   float64 `json:"total_revenue"`
	PendingOrders  int64   `json:"pending_orders"`
}

type adminCustomerResponse struct {
	ID        int64      `json:"id"`
	Name      string     `json:"name"`
	Email     string     `json:"email"`
	Phone     string     `json:"phone"`
	Address   string     `json:"address"`
	Role      string     `json:"role"`
	IsActive  bool       `json:"is_active"`
	CreatedAt time.Time  `json:"created_at"`
	LastLogin *time.Time `json:"last_login"`
}

type updateOrderStatusRequest struct {
	Status string `json:"status"`
}

// Dashboard handles GET /api/admin/dashboard.
func (h *AdminHandler) Dashboard(c echo.Context) error {
	stats, err := h.uc.Dashboard(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusOK, &dashboardResponse{
		TotalWatches:   stats.TotalWatches,
		TotalCustomers: stats.TotalCustomers,
		TotalOrders:    stats.TotalOrders,
		TotalRevenue:   stats.TotalRevenue,
		PendingOrders:  stats.PendingOrders,
	})
}

// ListOrders handles GET /api/admin/orders.
func (h *AdminHandler) ListOrders(c echo.Context) error {
	input := &usecase.ListOrdersInput{
		Status: c.QueryParam("status"),
	}
	if raw := c.QueryParam("limit"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil {
			input.Limit = v
		}
	}
	if raw := c.QueryParam("offset"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil {
			input.Offset = v
		}
	}

	orders, err := h.uc.ListOrders(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	out := make([]*orderResponse, 0, len(orders))
	for _, order := range orders {
		out = append(out, toOrderResponse(order))
	}

	return response.JSON(c, http.StatusOK, out)
}

// ListCustomers handles GET /api/admin/customers.
func (h *AdminHandler) ListCustomers(c echo.Context) error {
	input := &usecase.ListCustomersInput{}
	if raw := c.QueryParam("limit"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil {
			input.Limit = v
		}
	}
	if raw := c.QueryParam("offset"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil {
			input.Offset = v
		}
	}

	customers, err := h.uc.ListCustomers(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	out := make([]*adminCustomerResponse, 0, len(customers))
	for _, customer := range customers {
		out = append(out, toAdminCustomerResponse(customer))
	}

	return response.JSON(c, http.StatusOK, out)
}

// UpdateOrderStatus handles PUT /api/admin/orders/:id/status.
func (h *AdminHandler) UpdateOrderStatus(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return errors.WithStack(domainerrors.ErrOrderNotFound)
	}

	var req updateOrderStatusRequest
	if err := c.Bind(&req); err != nil {
		return errors.WithStack(err)
	}

	order, err := h.uc.UpdateOrderStatus(c.Request().Context(), &usecase.UpdateOrderStatusInput{
		OrderID: id,
		Status:  req.Status,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusOK, toOrderResponse(order))
}

func toAdminCustomerResponse(customer *entity.Customer) *adminCustomerResponse {
	return &adminCustomerResponse{
		ID:        customer.ID,
		Name:      customer.Name,
		Email:     customer.Email,
		Phone:     customer.Phone,
		Address:   customer.Address,
		Role:      customer.Role.String(),
		IsActive:  customer.IsActive,
		CreatedAt: customer.CreatedAt,
		LastLogin: customer.LastLogin,
	}
}
