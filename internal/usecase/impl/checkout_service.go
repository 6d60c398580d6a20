package impl

import (
	"context"
	"log/slog"

	"github.com/MaulikI8/imperialwatch/config"
	deliverycontext "github.com/MaulikI8/imperialwatch/internal/delivery/context"
	"github.com/MaulikI8/imperialwatch/internal/domain/entity"
	domainerrors "github.com/MaulikI8/imperialwatch/internal/domain/errors"
	"github.com/MaulikI8/imperialwatch/internal/domain/repository"
	"github.com/MaulikI8/imperialwatch/internal/domain/service"
	"github.com/MaulikI8/imperialwatch/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// checkoutService implements the CheckoutUsecase interface.
type checkoutService struct {
	txManager      repository.TransactionManager
	orderRepo      repository.OrderRepository
	paymentService service.PaymentService
	currency       string
	logger         *slog.Logger
}

// CheckoutServiceParams holds dependencies for checkoutService, injected by Fx.
type CheckoutServiceParams struct {
	fx.In

	TxManager      repository.TransactionManager
	OrderRepo      repository.OrderRepository
	PaymentService service.PaymentService
	Config         *config.Config
	Logger         *slog.Logger
}

// NewCheckoutService is the constructor for checkoutService.
func NewCheckoutService(params CheckoutServiceParams) usecase.CheckoutUsecase {
	currency := "usd"
	if params.Config != nil && params.Config.Stripe != nil && params.Config.Stripe.Currency != "" {
		currency = params.Config.Stripe.Currency
	}

	return &checkoutService{
		txManager:      params.TxManager,
		orderRepo:      params.OrderRepo,
		paymentService: params.PaymentService,
		currency:       currency,
		logger:         params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *checkoutService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreatePaymentIntent opens a payment intent for the cart total.
func (srv *checkoutService) CreatePaymentIntent(ctx context.Context, input *usecase.CreatePaymentIntentInput) (*usecase.CreatePaymentIntentOutput, error) {
	if input == nil || input.Amount <= 0 {
		return nil, domainerrors.ErrInvalidAmount
	}

	currency := input.Currency
	if currency == "" {
		currency = srv.currency
	}

	metadata := map[string]string{"integration": "imperialwatch_storefront"}

	intent, err := srv.paymentService.CreateIntent(ctx, input.Amount, currency, metadata)
	if err != nil {
		srv.log(ctx).Error("Failed to create payment intent",
			slog.Int64("amount", input.Amount),
			slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create payment intent")
	}

	srv.log(ctx).Debug("Payment intent created", slog.String("paymentIntentID", intent.ID))

	return &usecase.CreatePaymentIntentOutput{
		ClientSecret:    intent.ClientSecret,
		PaymentIntentID: intent.ID,
	}, nil
}

// ConfirmPayment verifies the payment succeeded with the provider and
// persists the order with its items in a single transaction.
func (srv *checkoutService) ConfirmPayment(ctx context.Context, input *usecase.ConfirmPaymentInput) (*usecase.ConfirmPaymentOutput, error) {
	if input == nil || input.CustomerID == 0 || len(input.Items) == 0 {
		return nil, domainerrors.ErrOrderItemsRequired
	}

	intent, err := srv.paymentService.RetrieveIntent(ctx, input.PaymentIntentID)
	if err != nil {
		srv.log(ctx).Error("Failed to retrieve payment intent",
			slog.String("paymentIntentID", input.PaymentIntentID),
			slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to retrieve payment intent")
	}

	if intent.Status != service.PaymentIntentStatusSucceeded {
		return nil, domainerrors.ErrPaymentNotCompleted
	}

	// Line prices arrive from the client; totals are recomputed server-side
	// from those values.
	var total float64
	items := make([]*entity.OrderItem, 0, len(input.Items))
	for _, item := range input.Items {
		total += item.Price * float64(item.Quantity)
		items = append(items, &entity.OrderItem{
			WatchID:  item.WatchID,
			Quantity: item.Quantity,
			Price:    item.Price,
		})
	}

	order := &entity.Order{
		CustomerID:      input.CustomerID,
		TotalAmount:     total,
		Status:          entity.OrderStatusCompleted,
		PaymentIntentID: intent.ID,
		Items:           items,
	}

	// The order row and its item rows commit or roll back together.
	err = srv.txManager.Execute(ctx, func(txRepo repository.RepositoryFactory) error {
		return txRepo.OrderRepo().Create(ctx, order)
	})
	if err != nil {
		srv.log(ctx).Error("Failed to persist order",
			slog.Int64("customerID", input.CustomerID),
			slog.String("paymentIntentID", intent.ID),
			slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to persist order")
	}

	srv.log(ctx).Info("Order confirmed",
		slog.Int64("orderID", order.ID),
		slog.Int64("customerID", input.CustomerID),
		slog.Float64("totalAmount", total))

	return &usecase.ConfirmPaymentOutput{
		OrderID:     order.ID,
		Status:      order.Status.String(),
		TotalAmount: order.TotalAmount,
	}, nil
}

// GetOrder returns an order with its items.
func (srv *checkoutService) GetOrder(ctx context.Context, orderID int64) (*entity.Order, error) {
	order, err := srv.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, domainerrors.ErrOrderNotFound
		}
		srv.log(ctx).Error("Failed to get order", slog.Int64("orderID", orderID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to get order")
	}

	return order, nil
}
