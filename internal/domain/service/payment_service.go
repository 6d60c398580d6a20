package service

import "context"

// PaymentIntentStatusSucceeded is the provider status of a captured payment.
const PaymentIntentStatusSucceeded = "succeeded"

// PaymentIntent is the provider-neutral view of a payment intent.
type PaymentIntent struct {
	ID           string
	ClientSecret string
	Status       string
	Amount       int64
	Currency     string
}

// PaymentService abstracts the payment provider.
type PaymentService interface {
	// CreateIntent opens a payment intent for the given amount in the
	// currency's smallest unit (cents).
	CreateIntent(ctx context.Context, amount int64, currency string, metadata map[string]string) (*PaymentIntent, error)
	// RetrieveIntent fetches the current state of an intent by ID.
	RetrieveIntent(ctx context.Context, id string) (*PaymentIntent, error)
}
