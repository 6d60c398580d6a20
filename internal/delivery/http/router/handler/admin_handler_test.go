package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/MaulikI8/imperialwatch/internal/domain/entity"
	domainerrors "github.com/MaulikI8/imperialwatch/internal/domain/errors"
	mockUsecase "github.com/MaulikI8/imperialwatch/internal/mocks/usecase"
	"github.com/MaulikI8/imperialwatch/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestAdminHandler_Dashboard(t *testing.T) {
	t.Parallel()

	uc := mockUsecase.NewMockAdminUsecase(t)
	h := NewAdminHandler(uc, newDiscardLogger())

	uc.EXPECT().Dashboard(mock.Anything).Return(&usecase.DashboardStats{
		TotalWatches:   12,
		TotalCustomers: 3,
		TotalOrders:    5,
		TotalRevenue:   150000,
		PendingOrders:  2,
	}, nil)

	e := newTestEcho()
	e.GET("/api/admin/dashboard", h.Dashboard)

	req := httptest.NewRequest(http.MethodGet, "/api/admin/dashboard", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{
		"total_watches": 12,
		"total_customers": 3,
		"total_orders": 5,
		"total_revenue": 150000,
		"pending_orders": 2
	}`, rec.Body.String())
}

func TestAdminHandler_ListOrders(t *testing.T) {
	t.Parallel()

	uc := mockUsecase.NewMockAdminUsecase(t)
	h := NewAdminHandler(uc, newDiscardLogger())

	created := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	uc.EXPECT().ListOrders(mock.Anything, &usecase.ListOrdersInput{Status: "shipped"}).Return([]*entity.Order{
		{
			ID:            42,
			CustomerID:    7,
			TotalAmount:   12500,
			Status:        entity.OrderStatusShipped,
			CreatedAt:     created,
			CustomerName:  "Ana Jones",
			CustomerEmail: "ana@example.com",
		},
	}, nil)

	e := newTestEcho()
	e.GET("/api/admin/orders", h.ListOrders)

	req := httptest.NewRequest(http.MethodGet, "/api/admin/orders?status=shipped", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	// Bare array, not an envelope.
	assert.True(t, strings.HasPrefix(strings.TrimSpace(rec.Body.String()), "["))
	assert.Contains(t, rec.Body.String(), `"status":"shipped"`)
	assert.Contains(t, rec.Body.String(), `"customer_email":"ana@example.com"`)
}

func TestAdminHandler_ListCustomers_OmitsPasswordHash(t *testing.T) {
	t.Parallel()

	uc := mockUsecase.NewMockAdminUsecase(t)
	h := NewAdminHandler(uc, newDiscardLogger())

	created := time.Date(2025, 2, 1, 9, 0, 0, 0, time.UTC)
	uc.EXPECT().ListCustomers(mock.Anything, mock.Anything).Return([]*entity.Customer{
		{
			ID:           7,
			Name:         "Ana Jones",
			Email:        "ana@example.com",
			PasswordHash: "$2a$10$secret",
			Role:         entity.RoleCustomer,
			IsActive:     true,
			CreatedAt:    created,
		},
	}, nil)

	e := newTestEcho()
	e.GET("/api/admin/customers", h.ListCustomers)

	req := httptest.NewRequest(http.MethodGet, "/api/admin/customers", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"email":"ana@example.com"`)
	assert.NotContains(t, rec.Body.String(), "secret")
	assert.NotContains(t, rec.Body.String(), "password")
}

func TestAdminHandler_UpdateOrderStatus_Success(t *testing.T) {
	t.Parallel()

	uc := mockUsecase.NewMockAdminUsecase(t)
	h := NewAdminHandler(uc, newDiscardLogger())

	uc.EXPECT().UpdateOrderStatus(mock.Anything, &usecase.UpdateOrderStatusInput{
		OrderID: 42,
		Status:  "shipped",
	}).Return(&entity.Order{
		ID:     42,
		Status: entity.OrderStatusShipped,
	}, nil)

	e := newTestEcho()
	e.PUT("/api/admin/orders/:id/status", h.UpdateOrderStatus)

	req := httptest.NewRequest(http.MethodPut, "/api/admin/orders/42/status", strings.NewReader(`{"status":"shipped"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"shipped"`)
}

func TestAdminHandler_UpdateOrderStatus_InvalidStatus(t *testing.T) {
	t.Parallel()

	uc := mockUsecase.NewMockAdminUsecase(t)
	h := NewAdminHandler(uc, newDiscardLogger())

	uc.EXPECT().UpdateOrderStatus(mock.Anything, mock.Anything).Return(nil, domainerrors.ErrInvalidOrderStatus)

	e := newTestEcho()
	e.PUT("/api/admin/orders/:id/status", h.UpdateOrderStatus)

	req := httptest.NewRequest(http.MethodPut, "/api/admin/orders/42/status", strings.NewReader(`{"status":"bogus"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":"Invalid status"}`, rec.Body.String())
}
