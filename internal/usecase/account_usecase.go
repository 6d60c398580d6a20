package usecase

import (
	"context"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a customer account.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Phone    string
	Address  string
}

// LoginInput defines the data required for a customer to log in.
type LoginInput struct {
	Email    string
	Password string
}

// --- Output DTOs ---

// CustomerSummary is the client-facing view of an authenticated customer.
type CustomerSummary struct {
	ID    int64
	Name  string
	Email string
	Role  string
}

// AuthOutput returns the generated token after registration or login.
type AuthOutput struct {
	Token    string
	Customer *CustomerSummary
}

// AccountUsecase defines the interface for customer account operations.
type AccountUsecase interface {
	Register(ctx context.Context, input *RegisterInput) (*AuthOutput, error)
	Login(ctx context.Context, input *LoginInput) (*AuthOutput, error)
}
