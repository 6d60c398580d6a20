package repository

import (
	"context"
	"errors"

	"github.com/MaulikI8/imperialwatch/internal/domain/entity"
)

// ErrCustomerNotFound is returned when a customer is not found.
var ErrCustomerNotFound = errors.New("customer not found")

// CustomerRepository defines the interface for customer account operations
type CustomerRepository interface {
	// FindByID looks up a customer by primary key.
	// Returns ErrCustomerNotFound when the customer does not exist.
	FindByID(ctx context.Context, id int64) (*entity.Customer, error)
	// FindByEmail looks up a customer by email address.
	// Returns ErrCustomerNotFound when no account uses the email.
	FindByEmail(ctx context.Context, email string) (*entity.Customer, error)
	// Create persists a new customer, assigning its ID.
	// Returns ErrEmailAlreadyRegistered when the email is taken.
	Create(ctx context.Context, customer *entity.Customer) error
	// UpdateLastLogin stamps the customer's last successful login time.
	UpdateLastLogin(ctx context.Context, id int64) error
	// List returns customers ordered by registration time, newest first.
	List(ctx context.Context, limit, offset int) ([]*entity.Customer, error)
	// Count returns the total number of customers.
	Count(ctx context.Context) (int64, error)
}
