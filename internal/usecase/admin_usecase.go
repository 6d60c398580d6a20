package usecase

import (
	"context"

	"github.com/MaulikI8/imperialwatch/internal/domain/entity"
)

// --- Input DTOs ---

// ListOrdersInput defines the optional admin order filters.
type ListOrdersInput struct {
	Status string
	Limit  int
	Offset int
}

// ListCustomersInput defines pagination for the admin customer listing.
type ListCustomersInput struct {
	Limit  int
	Offset int
}

// UpdateOrderStatusInput sets a new status on an order.
type UpdateOrderStatusInput struct {
	OrderID int64
	Status  string
}

// --- Output DTOs ---

// DashboardStats aggregates storefront totals for the admin dashboard.
type DashboardStats struct {
	TotalWatches   int64
	TotalCustomers int64
	TotalOrders    int64
	TotalRevenue   float64
	PendingOrders  int64
}

// AdminUsecase defines the interface for back-office operations.
// All methods require the caller to hold the admin role; enforcement
// happens in the delivery layer's auth middleware.
type AdminUsecase interface {
	Dashboard(ctx context.Context) (*DashboardStats, error)
	ListOrders(ctx context.Context, input *ListOrdersInput) ([]*entity.Order, error)
	ListCustomers(ctx context.Context, input *ListCustomersInput) ([]*entity.Customer, error)
	UpdateOrderStatus(ctx context.Context, input *UpdateOrderStatusInput) (*entity.Order, error)
}
