// Package payment implements the PaymentService interface against Stripe.
package payment

import (
	"context"
	"log/slog"

	"github.com/pkg/errors"
	"github.com/stripe/stripe-go/v80"
	"github.com/stripe/stripe-go/v80/paymentintent"
	"go.uber.org/fx"

	"github.com/MaulikI8/imperialwatch/config"
	"github.com/MaulikI8/imperialwatch/internal/domain/service"
)

// Params defines the parameters required for the Stripe payment service
type Params struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

type stripeService struct {
	currency string
	logger   *slog.Logger
}

// NewStripeService configures the Stripe client from config and returns
// the implementation as a service.PaymentService interface.
func NewStripeService(params Params) (service.PaymentService, error) {
	if params.Config.Stripe == nil || params.Config.Stripe.SecretKey == "" {
		return nil, errors.New("stripe secret key must be provided")
	}
	stripe.Key = params.Config.Stripe.SecretKey

	currency := params.Config.Stripe.Currency
	if currency == "" {
		currency = "usd"
	}
	return &stripeService{
		currency: currency,
		logger:   params.Logger,
	}, nil
}

// CreateIntent opens a payment intent for the given amount in cents.
func (s *stripeService) CreateIntent(ctx context.Context, amount int64, currency string, metadata map[string]string) (*service.PaymentIntent, error) {
	if currency == "" {
		currency = s.currency
	}

	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(amount),
		Currency: stripe.String(currency),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
	}
	params.Context = ctx
	for key, value := range metadata {
		params.AddMetadata(key, value)
	}

	intent, err := paymentintent.New(params)
	if err != nil {
		s.logger.Error("failed to create stripe payment intent", slog.Any("error", err))
		return nil, errors.Wrap(err, "create payment intent")
	}

	return toPaymentIntent(intent), nil
}

// RetrieveIntent fetches the current state of an intent by ID.
func (s *stripeService) RetrieveIntent(ctx context.Context, id string) (*service.PaymentIntent, error) {
	params := &stripe.PaymentIntentParams{}
	params.Context = ctx

	intent, err := paymentintent.Get(id, params)
	if err != nil {
		s.logger.Error("failed to retrieve stripe payment intent",
			slog.String("paymentIntentID", id),
			slog.Any("error", err))
		return nil, errors.Wrap(err, "retrieve payment intent")
	}

	return toPaymentIntent(intent), nil
}

func toPaymentIntent(intent *stripe.PaymentIntent) *service.PaymentIntent {
	return &service.PaymentIntent{
		ID:           intent.ID,
		ClientSecret: intent.ClientSecret,
		Status:       string(intent.Status),
		Amount:       intent.Amount,
		Currency:     string(intent.Currency),
	}
}
