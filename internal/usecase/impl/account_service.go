package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "github.com/MaulikI8/imperialwatch/internal/delivery/context"
	"github.com/MaulikI8/imperialwatch/internal/domain/entity"
	domainerrors "github.com/MaulikI8/imperialwatch/internal/domain/errors"
	"github.com/MaulikI8/imperialwatch/internal/domain/repository"
	"github.com/MaulikI8/imperialwatch/internal/domain/service"
	"github.com/MaulikI8/imperialwatch/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// accountService implements the AccountUsecase interface.
type accountService struct {
	customerRepo repository.CustomerRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	logger       *slog.Logger
}

// AccountServiceParams holds dependencies for accountService, injected by Fx.
type AccountServiceParams struct {
	fx.In

	CustomerRepo repository.CustomerRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewAccountService is the constructor for accountService.
func NewAccountService(params AccountServiceParams) usecase.AccountUsecase {
	return &accountService{
		customerRepo: params.CustomerRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *accountService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register creates a new customer account and returns an access token.
func (srv *accountService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.AuthOutput, error) {
	email := normalizeEmail(input.Email)

	srv.log(ctx).Info("Starting customer registration", slog.String("email", email))

	// Reject duplicates up front for a clean error; the unique constraint
	// on customers.email still catches concurrent registrations.
	_, err := srv.customerRepo.FindByEmail(ctx, email)
	if err == nil {
		return nil, domainerrors.ErrEmailAlreadyRegistered
	}
	if !errors.Is(err, repository.ErrCustomerNotFound) {
		srv.log(ctx).Error("Failed to check existing email", slog.String("email", email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to check existing email")
	}

	hash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, errors.Wrap(err, "failed to hash password")
	}

	customer := &entity.Customer{
		Name:         input.Name,
		Email:        email,
		PasswordHash: hash,
		Phone:        input.Phone,
		Address:      input.Address,
		Role:         entity.RoleCustomer,
		IsActive:     true,
	}

	if err := srv.customerRepo.Create(ctx, customer); err != nil {
		srv.log(ctx).Error("Failed to create customer", slog.String("email", email), slog.Any("error", err))

		return nil, err
	}

	token, err := srv.tokenService.Generate(customer.ID, customer.Role.String())
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate token")
	}

	srv.log(ctx).Debug("Customer registered", slog.Int64("customerID", customer.ID))

	return &usecase.AuthOutput{
		Token:    token,
		Customer: toCustomerSummary(customer),
	}, nil
}

// Login authenticates a customer and returns an access token.
func (srv *accountService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.AuthOutput, error) {
	email := normalizeEmail(input.Email)

	customer, err := srv.customerRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrCustomerNotFound) {
			// Same error as a bad password so the response does not leak
			// which emails are registered.
			return nil, domainerrors.ErrInvalidCredentials
		}
		srv.log(ctx).Error("Failed to find customer", slog.String("email", email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to find customer")
	}

	if !srv.hasher.Check(input.Password, customer.PasswordHash) {
		return nil, domainerrors.ErrInvalidCredentials
	}

	if !customer.IsActive {
		return nil, domainerrors.ErrAccountDisabled
	}

	if err := srv.customerRepo.UpdateLastLogin(ctx, customer.ID); err != nil {
		// Non-fatal: the login itself succeeded.
		srv.log(ctx).Warn("Failed to update last login", slog.Int64("customerID", customer.ID), slog.Any("error", err))
	}

	token, err := srv.tokenService.Generate(customer.ID, customer.Role.String())
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate token")
	}

	srv.log(ctx).Debug("Customer logged in", slog.Int64("customerID", customer.ID))

	return &usecase.AuthOutput{
		Token:    token,
		Customer: toCustomerSummary(customer),
	}, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func toCustomerSummary(customer *entity.Customer) *usecase.CustomerSummary {
	return &usecase.CustomerSummary{
		ID:    customer.ID,
		Name:  customer.Name,
		Email: customer.Email,
		Role:  customer.Role.String(),
	}
}
