package impl

import (
	"context"
	"testing"

	"github.com/MaulikI8/imperialwatch/internal/domain/entity"
	domainerrors "github.com/MaulikI8/imperialwatch/internal/domain/errors"
	"github.com/MaulikI8/imperialwatch/internal/domain/repository"
	mockRepo "github.com/MaulikI8/imperialwatch/internal/mocks/repository"
	"github.com/MaulikI8/imperialwatch/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// catalogServiceFixtures holds all test dependencies for catalog service tests.
type catalogServiceFixtures struct {
	service   usecase.CatalogUsecase
	watchRepo *mockRepo.MockWatchRepository
}

func createTestCatalogService(t *testing.T) catalogServiceFixtures {
	watchRepo := mockRepo.NewMockWatchRepository(t)
	service := NewCatalogService(CatalogServiceParams{
		WatchRepo: watchRepo,
		Config:    newTestConfig(),
		Logger:    newDiscardLogger(),
	})

	return catalogServiceFixtures{
		service:   service,
		watchRepo: watchRepo,
	}
}

func TestCatalogService_ListWatches_AppliesFilters(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	minPrice := 10000.0
	watches := []*entity.Watch{
		{ID: 1, Name: "Submariner Date", Brand: "Rolex", Price: 15000, Category: "diving"},
	}

	fx.watchRepo.EXPECT().
		List(ctx, repository.WatchFilter{
			Category: "diving",
			Brand:    "Rolex",
			MinPrice: &minPrice,
			Limit:    50,
		}).
		Return(watches, nil)

	out, err := fx.service.ListWatches(ctx, &usecase.ListWatchesInput{
		Category: "diving",
		Brand:    "Rolex",
		MinPrice: &minPrice,
	})
	require.NoError(t, err)
	require.Len(t, out.Watches, 1)
	assert.Equal(t, "Submariner Date", out.Watches[0].Name)
}

func TestCatalogService_ListWatches_NilInputUsesDefaults(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()

	fx.watchRepo.EXPECT().
		List(ctx, repository.WatchFilter{Limit: 50}).
		Return([]*entity.Watch{}, nil)

	out, err := fx.service.ListWatches(ctx, nil)
	require.NoError(t, err)
	assert.Empty(t, out.Watches)
}

func TestCatalogService_GetWatch_Found(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	watch := &entity.Watch{ID: 3, Name: "Nautilus", Brand: "Patek Philippe", Price: 89000}

	fx.watchRepo.EXPECT().
		FindByID(ctx, int64(3)).
		Return(watch, nil)

	got, err := fx.service.GetWatch(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, watch, got)
}

func TestCatalogService_GetWatch_NotFound(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()

	fx.watchRepo.EXPECT().
		FindByID(ctx, int64(999)).
		Return(nil, repository.ErrWatchNotFound)

	_, err := fx.service.GetWatch(ctx, 999)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrWatchNotFound)
}

func TestCatalogService_SearchWatches_RequiresQuery(t *testing.T) {
	fx := createTestCatalogService(t)

	_, err := fx.service.SearchWatches(context.Background(), "   ")
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrSearchQueryRequired)
}

func TestCatalogService_SearchWatches_TrimsQuery(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	watches := []*entity.Watch{{ID: 1, Name: "Speedmaster Professional", Brand: "Omega"}}

	fx.watchRepo.EXPECT().
		Search(ctx, "omega").
		Return(watches, nil)

	out, err := fx.service.SearchWatches(ctx, "  omega  ")
	require.NoError(t, err)
	assert.Len(t, out.Watches, 1)
}

func TestCatalogService_ListCategories_Error(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()

	fx.watchRepo.EXPECT().
		Categories(ctx).
		Return(nil, errors.New("db down"))

	_, err := fx.service.ListCategories(ctx)
	assert.Error(t, err)
}

func TestCatalogService_ListBrands_Success(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()

	fx.watchRepo.EXPECT().
		Brands(ctx).
		Return([]string{"Audemars Piguet", "Omega", "Rolex"}, nil)

	brands, err := fx.service.ListBrands(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Audemars Piguet", "Omega", "Rolex"}, brands)
}
