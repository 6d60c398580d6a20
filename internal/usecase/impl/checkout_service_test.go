package impl

import (
	"context"
	"testing"

	"github.com/MaulikI8/imperialwatch/internal/domain/entity"
	domainerrors "github.com/MaulikI8/imperialwatch/internal/domain/errors"
	"github.com/MaulikI8/imperialwatch/internal/domain/repository"
	"github.com/MaulikI8/imperialwatch/internal/domain/service"
	mockRepo "github.com/MaulikI8/imperialwatch/internal/mocks/repository"
	mockSvc "github.com/MaulikI8/imperialwatch/internal/mocks/service"
	"github.com/MaulikI8/imperialwatch/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// checkoutServiceFixtures holds all test dependencies for checkout service tests.
type checkoutServiceFixtures struct {
	service        usecase.CheckoutUsecase
	txManager      *mockRepo.MockTransactionManager
	orderRepo      *mockRepo.MockOrderRepository
	paymentService *mockSvc.MockPaymentService
}

func createTestCheckoutService(t *testing.T) checkoutServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	orderRepo := mockRepo.NewMockOrderRepository(t)
	paymentService := mockSvc.NewMockPaymentService(t)

	service := NewCheckoutService(CheckoutServiceParams{
		TxManager:      txManager,
		OrderRepo:      orderRepo,
		PaymentService: paymentService,
		Config:         newTestConfig(),
		Logger:         newDiscardLogger(),
	})

	return checkoutServiceFixtures{
		service:        service,
		txManager:      txManager,
		orderRepo:      orderRepo,
		paymentService: paymentService,
	}
}

func TestCheckoutService_CreatePaymentIntent_Success(t *testing.T) {
	fx := createTestCheckoutService(t)

	ctx := context.Background()

	fx.paymentService.EXPECT().
		CreateIntent(ctx, int64(1836000_00), "usd", mock.AnythingOfType("map[string]string")).
		Return(&service.PaymentIntent{
			ID:           "pi_123",
			ClientSecret: "pi_123_secret",
			Status:       "requires_payment_method",
			Amount:       1836000_00,
			Currency:     "usd",
		}, nil)

	out, err := fx.service.CreatePaymentIntent(ctx, &usecase.CreatePaymentIntentInput{
		Amount:     1836000_00,
		CustomerID: 5,
	})
	require.NoError(t, err)
	assert.Equal(t, "pi_123_secret", out.ClientSecret)
	assert.Equal(t, "pi_123", out.PaymentIntentID)
}

func TestCheckoutService_CreatePaymentIntent_RejectsNonPositiveAmount(t *testing.T) {
	fx := createTestCheckoutService(t)

	for _, amount := range []int64{0, -100} {
		_, err := fx.service.CreatePaymentIntent(context.Background(), &usecase.CreatePaymentIntentInput{
			Amount:     amount,
			CustomerID: 5,
		})
		require.Error(t, err)
		assert.ErrorIs(t, err, domainerrors.ErrInvalidAmount)
	}
}

func TestCheckoutService_ConfirmPayment_Success(t *testing.T) {
	fx := createTestCheckoutService(t)

	ctx := context.Background()

	fx.paymentService.EXPECT().
		RetrieveIntent(ctx, "pi_123").
		Return(&service.PaymentIntent{
			ID:     "pi_123",
			Status: service.PaymentIntentStatusSucceeded,
		}, nil)

	orderRepo := mockRepo.NewMockOrderRepository(t)
	orderRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Order")).
		Run(func(_ context.Context, order *entity.Order) {
			order.ID = 42
		}).
		Return(nil)

	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().OrderRepo().Return(orderRepo)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})

	out, err := fx.service.ConfirmPayment(ctx, &usecase.ConfirmPaymentInput{
		PaymentIntentID: "pi_123",
		CustomerID:      5,
		Items: []usecase.OrderItemInput{
			{WatchID: 1, Quantity: 2, Price: 15000},
			{WatchID: 3, Quantity: 1, Price: 89000},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, int64(42), out.OrderID)
	assert.Equal(t, "completed", out.Status)
	assert.InDelta(t, 119000.0, out.TotalAmount, 0.001)
}

func TestCheckoutService_ConfirmPayment_PaymentNotCompleted(t *testing.T) {
	fx := createTestCheckoutService(t)

	ctx := context.Background()

	fx.paymentService.EXPECT().
		RetrieveIntent(ctx, "pi_123").
		Return(&service.PaymentIntent{
			ID:     "pi_123",
			Status: "requires_payment_method",
		}, nil)

	_, err := fx.service.ConfirmPayment(ctx, &usecase.ConfirmPaymentInput{
		PaymentIntentID: "pi_123",
		CustomerID:      5,
		Items:           []usecase.OrderItemInput{{WatchID: 1, Quantity: 1, Price: 100}},
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrPaymentNotCompleted)
}

func TestCheckoutService_ConfirmPayment_RequiresCustomerAndItems(t *testing.T) {
	fx := createTestCheckoutService(t)

	ctx := context.Background()

	_, err := fx.service.ConfirmPayment(ctx, &usecase.ConfirmPaymentInput{
		PaymentIntentID: "pi_123",
		CustomerID:      0,
		Items:           []usecase.OrderItemInput{{WatchID: 1, Quantity: 1, Price: 100}},
	})
	assert.ErrorIs(t, err, domainerrors.ErrOrderItemsRequired)

	_, err = fx.service.ConfirmPayment(ctx, &usecase.ConfirmPaymentInput{
		PaymentIntentID: "pi_123",
		CustomerID:      5,
		Items:           nil,
	})
	assert.ErrorIs(t, err, domainerrors.ErrOrderItemsRequired)
}

func TestCheckoutService_ConfirmPayment_RollsUpFailedTransaction(t *testing.T) {
	fx := createTestCheckoutService(t)

	ctx := context.Background()

	fx.paymentService.EXPECT().
		RetrieveIntent(ctx, "pi_123").
		Return(&service.PaymentIntent{
			ID:     "pi_123",
			Status: service.PaymentIntentStatusSucceeded,
		}, nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Return(domainerrors.NewDatabaseExecuteError(assert.AnError, "failed to create order"))

	_, err := fx.service.ConfirmPayment(ctx, &usecase.ConfirmPaymentInput{
		PaymentIntentID: "pi_123",
		CustomerID:      5,
		Items:           []usecase.OrderItemInput{{WatchID: 1, Quantity: 1, Price: 100}},
	})
	assert.Error(t, err)
}

func TestCheckoutService_GetOrder_NotFound(t *testing.T) {
	fx := createTestCheckoutService(t)

	ctx := context.Background()

	fx.orderRepo.EXPECT().
		FindByID(ctx, int64(999)).
		Return(nil, repository.ErrOrderNotFound)

	_, err := fx.service.GetOrder(ctx, 999)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrOrderNotFound)
}

func TestCheckoutService_GetOrder_Success(t *testing.T) {
	fx := createTestCheckoutService(t)

	ctx := context.Background()
	order := &entity.Order{
		ID:          42,
		CustomerID:  5,
		TotalAmount: 119000,
		Status:      entity.OrderStatusCompleted,
		Items: []*entity.OrderItem{
			{ID: 1, WatchID: 1, Quantity: 2, Price: 15000, WatchName: "Submariner Date"},
		},
	}

	fx.orderRepo.EXPECT().
		FindByID(ctx, int64(42)).
		Return(order, nil)

	got, err := fx.service.GetOrder(ctx, 42)
	require.NoError(t, err)
	assert.Equal(t, order, got)
}
