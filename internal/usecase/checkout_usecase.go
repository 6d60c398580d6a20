package usecase

import (
	"context"

	"github.com/MaulikI8/imperialwatch/internal/domain/entity"
)

// --- Input DTOs ---

// CreatePaymentIntentInput carries the charge amount in the currency's
// smallest unit (cents).
type CreatePaymentIntentInput struct {
	Amount     int64
	Currency   string
	CustomerID int64
}

// OrderItemInput is one purchased line at checkout. Price is the unit
// price in dollars as submitted by the client.
type OrderItemInput struct {
	WatchID  int64
	Quantity int
	Price    float64
}

// ConfirmPaymentInput finalizes a paid checkout into a persisted order.
type ConfirmPaymentInput struct {
	PaymentIntentID string
	CustomerID      int64
	Items           []OrderItemInput
}

// --- Output DTOs ---

// CreatePaymentIntentOutput returns the provider handle for the client to
// complete the charge.
type CreatePaymentIntentOutput struct {
	ClientSecret    string
	PaymentIntentID string
}

// ConfirmPaymentOutput returns the persisted order's identity.
type ConfirmPaymentOutput struct {
	OrderID     int64
	Status      string
	TotalAmount float64
}

// CheckoutUsecase defines the interface for payment and order operations.
type CheckoutUsecase interface {
	CreatePaymentIntent(ctx context.Context, input *CreatePaymentIntentInput) (*CreatePaymentIntentOutput, error)
	ConfirmPayment(ctx context.Context, input *ConfirmPaymentInput) (*ConfirmPaymentOutput, error)
	GetOrder(ctx context.Context, orderID int64) (*entity.Order, error)
}
