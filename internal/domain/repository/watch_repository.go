// Package repository defines data access interfaces for the storefront.
package repository

import (
	"context"
	"errors"

	"github.com/MaulikI8/imperialwatch/internal/domain/entity"
)

// ErrWatchNotFound is returned when a watch is not found.
var ErrWatchNotFound = errors.New("watch not found")

// WatchFilter narrows catalog listings. Zero values mean "no constraint".
type WatchFilter struct {
	Category string
	Brand    string
	MinPrice *float64
	MaxPrice *float64
	Limit    int
}

// WatchRepository defines the interface for watch catalog operations
type WatchRepository interface {
	// List returns watches matching the filter, newest first.
	List(ctx context.Context, filter WatchFilter) ([]*entity.Watch, error)
	// FindByID looks up a single watch.
	// Returns ErrWatchNotFound when no watch exists with the given ID.
	FindByID(ctx context.Context, id int64) (*entity.Watch, error)
	// Search matches the query against watch name, brand and description.
	Search(ctx context.Context, query string) ([]*entity.Watch, error)
	// Categories returns the distinct category names in the catalog.
	Categories(ctx context.Context) ([]string, error)
	// Brands returns the distinct brand names in the catalog.
	Brands(ctx context.Context) ([]string, error)
	// Count returns the total number of watches.
	Count(ctx context.Context) (int64, error)
	// Create persists a new watch, assigning its ID.
	Create(ctx context.Context, watch *entity.Watch) error
}
