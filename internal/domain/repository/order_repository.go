package repository

import (
	"context"
	"errors"

	"github.com/MaulikI8/imperialwatch/internal/domain/entity"
)

// ErrOrderNotFound is returned when an order is not found.
var ErrOrderNotFound = errors.New("order not found")

// OrderListFilter narrows admin order listings.
type OrderListFilter struct {
	Status string
	Limit  int
	Offset int
}

// OrderRepository defines the interface for order operations
type OrderRepository interface {
	// Create persists an order together with its items.
	Create(ctx context.Context, order *entity.Order) error
	// FindByID returns an order with its items loaded.
	// Returns ErrOrderNotFound when the order does not exist.
	FindByID(ctx context.Context, id int64) (*entity.Order, error)
	// List returns orders matching the filter, newest first, with the
	// owning customer's name and email attached.
	List(ctx context.Context, filter OrderListFilter) ([]*entity.Order, error)
	// UpdateStatus sets the order status.
	// Returns ErrOrderNotFound when the order does not exist.
	UpdateStatus(ctx context.Context, id int64, status entity.OrderStatus) error
	// Count returns the total number of orders.
	Count(ctx context.Context) (int64, error)
	// CountByStatus returns the number of orders in the given status.
	CountByStatus(ctx context.Context, status entity.OrderStatus) (int64, error)
	// SumCompletedRevenue sums total_amount over completed orders.
	SumCompletedRevenue(ctx context.Context) (float64, error)
}
