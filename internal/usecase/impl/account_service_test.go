package impl

import (
	"context"
	"testing"

	"github.com/MaulikI8/imperialwatch/internal/domain/entity"
	domainerrors "github.com/MaulikI8/imperialwatch/internal/domain/errors"
	"github.com/MaulikI8/imperialwatch/internal/domain/repository"
	mockRepo "github.com/MaulikI8/imperialwatch/internal/mocks/repository"
	mockSvc "github.com/MaulikI8/imperialwatch/internal/mocks/service"
	"github.com/MaulikI8/imperialwatch/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// accountServiceFixtures holds all test dependencies for account service tests.
type accountServiceFixtures struct {
	service      usecase.AccountUsecase
	customerRepo *mockRepo.MockCustomerRepository
	hasher       *mockSvc.MockPasswordHasher
	tokenService *mockSvc.MockTokenService
}

func createTestAccountService(t *testing.T) accountServiceFixtures {
	customerRepo := mockRepo.NewMockCustomerRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenService := mockSvc.NewMockTokenService(t)

	service := NewAccountService(AccountServiceParams{
		CustomerRepo: customerRepo,
		Hasher:       hasher,
		TokenService: tokenService,
		Logger:       newDiscardLogger(),
	})

	return accountServiceFixtures{
		service:      service,
		customerRepo: customerRepo,
		hasher:       hasher,
		tokenService: tokenService,
	}
}

func TestAccountService_Register_Success(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()

	fx.customerRepo.EXPECT().
		FindByEmail(ctx, "ana@example.com").
		Return(nil, repository.ErrCustomerNotFound)

	fx.hasher.EXPECT().
		Hash("secret123").
		Return("$2a$10$hash", nil)

	fx.customerRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Customer")).
		Run(func(_ context.Context, customer *entity.Customer) {
			customer.ID = 7
		}).
		Return(nil)

	fx.tokenService.EXPECT().
		Generate(int64(7), "customer").
		Return("signed-token", nil)

	out, err := fx.service.Register(ctx, &usecase.RegisterInput{
		Name:     "Ana",
		Email:    "Ana@Example.com",
		Password: "secret123",
	})
	require.NoError(t, err)
	assert.Equal(t, "signed-token", out.Token)
	assert.Equal(t, int64(7), out.Customer.ID)
	assert.Equal(t, "ana@example.com", out.Customer.Email)
	assert.Equal(t, "customer", out.Customer.Role)
}

func TestAccountService_Register_DuplicateEmail(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	existing := &entity.Customer{ID: 1, Email: "ana@example.com"}

	fx.customerRepo.EXPECT().
		FindByEmail(ctx, "ana@example.com").
		Return(existing, nil)

	_, err := fx.service.Register(ctx, &usecase.RegisterInput{
		Name:     "Ana",
		Email:    "ana@example.com",
		Password: "secret123",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrEmailAlreadyRegistered)
}

func TestAccountService_Login_Success(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	customer := &entity.Customer{
		ID:           5,
		Name:         "Ben",
		Email:        "ben@example.com",
		PasswordHash: "$2a$10$hash",
		Role:         entity.RoleCustomer,
		IsActive:     true,
	}

	fx.customerRepo.EXPECT().
		FindByEmail(ctx, "ben@example.com").
		Return(customer, nil)

	fx.hasher.EXPECT().
		Check("secret123", "$2a$10$hash").
		Return(true)

	fx.customerRepo.EXPECT().
		UpdateLastLogin(ctx, int64(5)).
		Return(nil)

	fx.tokenService.EXPECT().
		Generate(int64(5), "customer").
		Return("signed-token", nil)

	out, err := fx.service.Login(ctx, &usecase.LoginInput{
		Email:    "ben@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)
	assert.Equal(t, "signed-token", out.Token)
	assert.Equal(t, int64(5), out.Customer.ID)
}

func TestAccountService_Login_UnknownEmail(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()

	fx.customerRepo.EXPECT().
		FindByEmail(ctx, "nobody@example.com").
		Return(nil, repository.ErrCustomerNotFound)

	_, err := fx.service.Login(ctx, &usecase.LoginInput{
		Email:    "nobody@example.com",
		Password: "whatever",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAccountService_Login_WrongPassword(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	customer := &entity.Customer{
		ID:           5,
		Email:        "ben@example.com",
		PasswordHash: "$2a$10$hash",
		Role:         entity.RoleCustomer,
		IsActive:     true,
	}

	fx.customerRepo.EXPECT().
		FindByEmail(ctx, "ben@example.com").
		Return(customer, nil)

	fx.hasher.EXPECT().
		Check("wrong", "$2a$10$hash").
		Return(false)

	_, err := fx.service.Login(ctx, &usecase.LoginInput{
		Email:    "ben@example.com",
		Password: "wrong",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAccountService_Login_DisabledAccount(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	customer := &entity.Customer{
		ID:           5,
		Email:        "ben@example.com",
		PasswordHash: "$2a$10$hash",
		Role:         entity.RoleCustomer,
		IsActive:     false,
	}

	fx.customerRepo.EXPECT().
		FindByEmail(ctx, "ben@example.com").
		Return(customer, nil)

	fx.hasher.EXPECT().
		Check("secret123", "$2a$10$hash").
		Return(true)

	_, err := fx.service.Login(ctx, &usecase.LoginInput{
		Email:    "ben@example.com",
		Password: "secret123",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrAccountDisabled)
}

func TestAccountService_Login_LastLoginFailureIsNonFatal(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	customer := &entity.Customer{
		ID:           5,
		Email:        "ben@example.com",
		PasswordHash: "$2a$10$hash",
		Role:         entity.RoleCustomer,
		IsActive:     true,
	}

	fx.customerRepo.EXPECT().
		FindByEmail(ctx, "ben@example.com").
		Return(customer, nil)

	fx.hasher.EXPECT().
		Check("secret123", "$2a$10$hash").
		Return(true)

	fx.customerRepo.EXPECT().
		UpdateLastLogin(ctx, int64(5)).
		Return(repository.ErrCustomerNotFound)

	fx.tokenService.EXPECT().
		Generate(int64(5), "customer").
		Return("signed-token", nil)

	out, err := fx.service.Login(ctx, &usecase.LoginInput{
		Email:    "ben@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)
	assert.Equal(t, "signed-token", out.Token)
}
