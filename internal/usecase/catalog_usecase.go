// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"github.com/MaulikI8/imperialwatch/internal/domain/entity"
)

// --- Input DTOs ---

// ListWatchesInput defines the optional catalog filters.
// Limit of 0 means the configured default.
type ListWatchesInput struct {
	Category string
	Brand    string
	MinPrice *float64
	MaxPrice *float64
	Limit    int
}

// --- Output DTOs ---

// ListWatchesOutput returns the filtered catalog.
type ListWatchesOutput struct {
	Watches []*entity.Watch
}

// SearchWatchesOutput returns watches matching a free-text query.
type SearchWatchesOutput struct {
	Watches []*entity.Watch
}

// CatalogUsecase defines the interface for catalog browsing operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type CatalogUsecase interface {
	ListWatches(ctx context.Context, input *ListWatchesInput) (*ListWatchesOutput, error)
	GetWatch(ctx context.Context, id int64) (*entity.Watch, error)
	SearchWatches(ctx context.Context, query string) (*SearchWatchesOutput, error)
	ListCategories(ctx context.Context) ([]string, error)
	ListBrands(ctx context.Context) ([]string, error)
}
