package impl

import (
	"context"
	"log/slog"

	deliverycontext "github.com/MaulikI8/imperialwatch/internal/delivery/context"
	"github.com/MaulikI8/imperialwatch/internal/domain/entity"
	domainerrors "github.com/MaulikI8/imperialwatch/internal/domain/errors"
	"github.com/MaulikI8/imperialwatch/internal/domain/repository"
	"github.com/MaulikI8/imperialwatch/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// adminService implements the AdminUsecase interface.
type adminService struct {
	watchRepo    repository.WatchRepository
	customerRepo repository.CustomerRepository
	orderRepo    repository.OrderRepository
	logger       *slog.Logger
}

// AdminServiceParams holds dependencies for adminService, injected by Fx.
type AdminServiceParams struct {
	fx.In

	WatchRepo    repository.WatchRepository
	CustomerRepo repository.CustomerRepository
	OrderRepo    repository.OrderRepository
	Logger       *slog.Logger
}

// NewAdminService is the constructor for adminService.
func NewAdminService(params AdminServiceParams) usecase.AdminUsecase {
	return &adminService{
		watchRepo:    params.WatchRepo,
		customerRepo: params.CustomerRepo,
		orderRepo:    params.OrderRepo,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *adminService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Dashboard aggregates storefront totals.
func (srv *adminService) Dashboard(ctx context.Context) (*usecase.DashboardStats, error) {
	totalWatches, err := srv.watchRepo.Count(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count watches")
	}

	totalCustomers, err := srv.customerRepo.Count(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count customers")
	}

	totalOrders, err := srv.orderRepo.Count(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count orders")
	}

	totalRevenue, err := srv.orderRepo.SumCompletedRevenue(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to sum revenue")
	}

	pendingOrders, err := srv.orderRepo.CountByStatus(ctx, entity.OrderStatusPending)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count pending orders")
	}

	return &usecase.DashboardStats{
		TotalWatches:   totalWatches,
		TotalCustomers: totalCustomers,
		TotalOrders:    totalOrders,
		TotalRevenue:   totalRevenue,
		PendingOrders:  pendingOrders,
	}, nil
}

// ListOrders returns orders for the back office, optionally filtered by status.
func (srv *adminService) ListOrders(ctx context.Context, input *usecase.ListOrdersInput) ([]*entity.Order, error) {
	filter := repository.OrderListFilter{}
	if input != nil {
		if input.Status != "" {
			status := entity.OrderStatus(input.Status)
			if !status.IsValid() {
				return nil, domainerrors.ErrInvalidOrderStatus
			}
			filter.Status = status.String()
		}
		filter.Limit = input.Limit
		filter.Offset = input.Offset
	}

	orders, err := srv.orderRepo.List(ctx, filter)
	if err != nil {
		srv.log(ctx).Error("Failed to list orders", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list orders")
	}

	return orders, nil
}

// ListCustomers returns registered customers for the back office.
func (srv *adminService) ListCustomers(ctx context.Context, input *usecase.ListCustomersInput) ([]*entity.Customer, error) {
	limit, offset := 0, 0
	if input != nil {
		limit, offset = input.Limit, input.Offset
	}

	customers, err := srv.customerRepo.List(ctx, limit, offset)
	if err != nil {
		srv.log(ctx).Error("Failed to list customers", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list customers")
	}

	return customers, nil
}

// UpdateOrderStatus sets a new status on an order. Only statuses an
// operator may assign are accepted.
func (srv *adminService) UpdateOrderStatus(ctx context.Context, input *usecase.UpdateOrderStatusInput) (*entity.Order, error) {
	status := entity.OrderStatus(input.Status)
	if !status.IsAdminAssignable() {
		return nil, domainerrors.ErrInvalidOrderStatus
	}

	if err := srv.orderRepo.UpdateStatus(ctx, input.OrderID, status); err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, domainerrors.ErrOrderNotFound
		}
		srv.log(ctx).Error("Failed to update order status",
			slog.Int64("orderID", input.OrderID),
			slog.String("status", input.Status),
			slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to update order status")
	}

	order, err := srv.orderRepo.FindByID(ctx, input.OrderID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to reload order")
	}

	srv.log(ctx).Info("Order status updated",
		slog.Int64("orderID", input.OrderID),
		slog.String("status", input.Status))

	return order, nil
}
