// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"github.com/MaulikI8/imperialwatch/internal/domain/entity"
	"github.com/MaulikI8/imperialwatch/internal/domain/repository"
	"github.com/MaulikI8/imperialwatch/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// watchRepository implements the repository.WatchRepository interface.
type watchRepository struct {
	db *gorm.DB
}

// NewWatchRepository is the constructor for watchRepository.
func NewWatchRepository(db *gorm.DB) repository.WatchRepository {
	return &watchRepository{
		db: db,
	}
}

// List retrieves in-stock watches matching the filter, best rated first.
func (repo *watchRepository) List(ctx context.Context, filter repository.WatchFilter) ([]*entity.Watch, error) {
	var watchModels []*model.WatchModel

	query := repo.db.WithContext(ctx).
		Where("in_stock = ?", true).
		Order("rating DESC, created_at DESC")

	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
	}
	if filter.Brand != "" {
		query = query.Where("brand = ?", filter.Brand)
	}
	if filter.MinPrice != nil {
		query = query.Where("price >= ?", *filter.MinPrice)
	}
	if filter.MaxPrice != nil {
		query = query.Where("price <= ?", *filter.MaxPrice)
	}
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}

	if err := query.Find(&watchModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list watches")
	}

	watches := make([]*entity.Watch, 0, len(watchModels))
	for _, watchM := range watchModels {
		watches = append(watches, toWatchDomain(watchM))
	}

	return watches, nil
}

// FindByID retrieves a watch by its unique ID.
func (repo *watchRepository) FindByID(ctx context.Context, id int64) (*entity.Watch, error) {
	var watchM model.WatchModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&watchM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrWatchNotFound
		}

		return nil, errors.Wrap(err, "failed to find watch by ID")
	}

	return toWatchDomain(&watchM), nil
}

// Search matches the query against watch name, brand, description and
// category, restricted to in-stock watches.
func (repo *watchRepository) Search(ctx context.Context, query string) ([]*entity.Watch, error) {
	var watchModels []*model.WatchModel

	pattern := "%" + query + "%"
	if err := repo.db.WithContext(ctx).
		Where("in_stock = ?", true).
		Where("name ILIKE ? OR brand ILIKE ? OR description ILIKE ? OR category ILIKE ?",
			pattern, pattern, pattern, pattern).
		Order("rating DESC").
		Find(&watchModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to search watches")
	}

	watches := make([]*entity.Watch, 0, len(watchModels))
	for _, watchM := range watchModels {
		watches = append(watches, toWatchDomain(watchM))
	}

	return watches, nil
}

// Categories retrieves the distinct category names in the catalog.
func (repo *watchRepository) Categories(ctx context.Context) ([]string, error) {
	var categories []string

	if err := repo.db.WithContext(ctx).
		Model(&model.WatchModel{}).
		Distinct("category").
		Order("category").
		Pluck("category", &categories).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list categories")
	}

	return categories, nil
}

// Brands retrieves the distinct brand names in the catalog.
func (repo *watchRepository) Brands(ctx context.Context) ([]string, error) {
	var brands []string

	if err := repo.db.WithContext(ctx).
		Model(&model.WatchModel{}).
		Distinct("brand").
		Order("brand").
		Pluck("brand", &brands).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list brands")
	}

	return brands, nil
}

// Count returns the total number of watches.
func (repo *watchRepository) Count(ctx context.Context) (int64, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.WatchModel{}).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count watches")
	}

	return count, nil
}

// Create persists a new watch.
func (repo *watchRepository) Create(ctx context.Context, watch *entity.Watch) error {
	watchM := fromWatchDomain(watch)

	if err := repo.db.WithContext(ctx).Create(watchM).Error; err != nil {
		return errors.Wrap(err, "failed to create watch")
	}

	// Update the entity with generated values
	watch.ID = watchM.ID
	watch.CreatedAt = watchM.CreatedAt

	return nil
}

// --- Mapper Functions ---

// toWatchDomain converts a GORM WatchModel to a domain Watch entity.
func toWatchDomain(data *model.WatchModel) *entity.Watch {
	if data == nil {
		return nil
	}

	return &entity.Watch{
		ID:          data.ID,
		Name:        data.Name,
		Brand:       data.Brand,
		Price:       data.Price,
		Description: data.Description,
		ImageURL:    data.ImageURL,
		Category:    data.Category,
		InStock:     data.InStock,
		Rating:      data.Rating,
		CreatedAt:   data.CreatedAt,
	}
}

// fromWatchDomain converts a domain Watch entity to a GORM WatchModel.
func fromWatchDomain(data *entity.Watch) *model.WatchModel {
	if data == nil {
		return nil
	}

	return &model.WatchModel{
		ID:          data.ID,
		Name:        data.Name,
		Brand:       data.Brand,
		Price:       data.Price,
		Description: data.Description,
		ImageURL:    data.ImageURL,
		Category:    data.Category,
		InStock:     data.InStock,
		Rating:      data.Rating,
		CreatedAt:   data.CreatedAt,
	}
}
