package main

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/MaulikI8/imperialwatch/config"
	"github.com/MaulikI8/imperialwatch/internal/domain/entity"
	"github.com/MaulikI8/imperialwatch/internal/domain/repository"
	mockRepo "github.com/MaulikI8/imperialwatch/internal/mocks/repository"
	mockService "github.com/MaulikI8/imperialwatch/internal/mocks/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestSeedWatches_EmptyCatalog(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := mockRepo.NewMockWatchRepository(t)

	repo.EXPECT().Count(ctx).Return(0, nil)

	var created []string
	repo.EXPECT().Create(ctx, mock.Anything).Run(func(_ context.Context, watch *entity.Watch) {
		created = append(created, watch.Name)
	}).Return(nil).Times(len(sampleWatches()))

	err := seedWatches(ctx, repo, newDiscardLogger())

	require.NoError(t, err)
	assert.Len(t, created, 12)
	assert.Contains(t, created, "Rolex Submariner")
	assert.Contains(t, created, "Fitbit Versa 4")
}

func TestSeedWatches_AlreadySeeded(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := mockRepo.NewMockWatchRepository(t)

	repo.EXPECT().Count(ctx).Return(12, nil)

	err := seedWatches(ctx, repo, newDiscardLogger())

	require.NoError(t, err)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestSeedAdmin_CreatesAccount(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := mockRepo.NewMockCustomerRepository(t)
	hasher := mockService.NewMockPasswordHasher(t)

	repo.EXPECT().FindByEmail(ctx, "admin@imperialwatch.test").Return(nil, repository.ErrCustomerNotFound)
	hasher.EXPECT().Hash("changeme").Return("$2a$10$hash", nil)
	repo.EXPECT().Create(ctx, mock.Anything).Run(func(_ context.Context, customer *entity.Customer) {
		assert.Equal(t, "admin@imperialwatch.test", customer.Email)
		assert.Equal(t, "$2a$10$hash", customer.PasswordHash)
		assert.Equal(t, entity.RoleAdmin, customer.Role)
		assert.True(t, customer.IsActive)
	}).Return(nil)

	seed := &config.SeedConfig{
		AdminName:     "Admin",
		AdminEmail:    "  Admin@ImperialWatch.test ",
		AdminPassword: "changeme",
	}
	err := seedAdmin(ctx, repo, hasher, seed, newDiscardLogger())

	require.NoError(t, err)
}

func TestSeedAdmin_AlreadyExists(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := mockRepo.NewMockCustomerRepository(t)
	hasher := mockService.NewMockPasswordHasher(t)

	repo.EXPECT().FindByEmail(ctx, "admin@imperialwatch.test").Return(&entity.Customer{ID: 1}, nil)

	seed := &config.SeedConfig{
		AdminName:     "Admin",
		AdminEmail:    "admin@imperialwatch.test",
		AdminPassword: "changeme",
	}
	err := seedAdmin(ctx, repo, hasher, seed, newDiscardLogger())

	require.NoError(t, err)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestSeedAdmin_NotConfigured(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := mockRepo.NewMockCustomerRepository(t)
	hasher := mockService.NewMockPasswordHasher(t)

	err := seedAdmin(ctx, repo, hasher, nil, newDiscardLogger())

	require.NoError(t, err)
	repo.AssertNotCalled(t, "FindByEmail", mock.Anything, mock.Anything)
}
