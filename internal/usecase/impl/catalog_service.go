// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"strings"

	"github.com/MaulikI8/imperialwatch/config"
	deliverycontext "github.com/MaulikI8/imperialwatch/internal/delivery/context"
	"github.com/MaulikI8/imperialwatch/internal/domain/entity"
	domainerrors "github.com/MaulikI8/imperialwatch/internal/domain/errors"
	"github.com/MaulikI8/imperialwatch/internal/domain/repository"
	"github.com/MaulikI8/imperialwatch/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// catalogService implements the CatalogUsecase interface.
type catalogService struct {
	watchRepo    repository.WatchRepository
	productLimit int
	logger       *slog.Logger
}

// CatalogServiceParams holds dependencies for catalogService, injected by Fx.
type CatalogServiceParams struct {
	fx.In

	WatchRepo repository.WatchRepository
	Config    *config.Config
	Logger    *slog.Logger
}

// NewCatalogService is the constructor for catalogService.
func NewCatalogService(params CatalogServiceParams) usecase.CatalogUsecase {
	productLimit := 0
	if params.Config != nil && params.Config.Store != nil {
		productLimit = params.Config.Store.ProductLimit
	}

	return &catalogService{
		watchRepo:    params.WatchRepo,
		productLimit: productLimit,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *catalogService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListWatches returns the catalog filtered by category, brand and price range.
func (srv *catalogService) ListWatches(ctx context.Context, input *usecase.ListWatchesInput) (*usecase.ListWatchesOutput, error) {
	filter := repository.WatchFilter{
		Limit: srv.productLimit,
	}
	if input != nil {
		filter.Category = input.Category
		filter.Brand = input.Brand
		filter.MinPrice = input.MinPrice
		filter.MaxPrice = input.MaxPrice
		if input.Limit > 0 {
			filter.Limit = input.Limit
		}
	}

	watches, err := srv.watchRepo.List(ctx, filter)
	if err != nil {
		srv.log(ctx).Error("Failed to list watches", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list watches")
	}

	return &usecase.ListWatchesOutput{Watches: watches}, nil
}

// GetWatch returns a single watch by ID.
func (srv *catalogService) GetWatch(ctx context.Context, id int64) (*entity.Watch, error) {
	watch, err := srv.watchRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrWatchNotFound) {
			return nil, domainerrors.ErrWatchNotFound
		}
		srv.log(ctx).Error("Failed to get watch", slog.Int64("watchID", id), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to get watch")
	}

	return watch, nil
}

// SearchWatches matches the query against watch name, brand and description.
func (srv *catalogService) SearchWatches(ctx context.Context, query string) (*usecase.SearchWatchesOutput, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, domainerrors.ErrSearchQueryRequired
	}

	watches, err := srv.watchRepo.Search(ctx, query)
	if err != nil {
		srv.log(ctx).Error("Failed to search watches", slog.String("query", query), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to search watches")
	}

	return &usecase.SearchWatchesOutput{Watches: watches}, nil
}

// ListCategories returns the distinct category names in the catalog.
func (srv *catalogService) ListCategories(ctx context.Context) ([]string, error) {
	categories, err := srv.watchRepo.Categories(ctx)
	if err != nil {
		srv.log(ctx).Error("Failed to list categories", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list categories")
	}

	return categories, nil
}

// ListBrands returns the distinct brand names in the catalog.
func (srv *catalogService) ListBrands(ctx context.Context) ([]string, error) {
	brands, err := srv.watchRepo.Brands(ctx)
	if err != nil {
		srv.log(ctx).Error("Failed to list brands", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list brands")
	}

	return brands, nil
}
