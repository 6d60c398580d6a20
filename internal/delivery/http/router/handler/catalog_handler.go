// Package handler contains the HTTP handlers for the storefront API.
package handler

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/MaulikI8/imperialwatch/internal/delivery/http/response"
	"github.com/MaulikI8/imperialwatch/internal/domain/entity"
	domainerrors "github.com/MaulikI8/imperialwatch/internal/domain/errors"
	"github.com/MaulikI8/imperialwatch/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// CatalogHandler holds dependencies for catalog browsing handlers.
type CatalogHandler struct {
	uc     usecase.CatalogUsecase
	logger *slog.Logger
}

// NewCatalogHandler is the constructor for CatalogHandler, injected by Fx.
func NewCatalogHandler(uc usecase.CatalogUsecase, logger *slog.Logger) *CatalogHandler {
	return &CatalogHandler{
		uc:     uc,
		logger: logger,
	}
}

// watchResponse is the wire representation of a catalog watch.
type watchResponse struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Brand       string    `json:"brand"`
	Price       float64   `json:"price"`
	Description string    `json:"description"`
	ImageURL    string    `json:"image_url"`
	Category    string    `json:"category"`
	InStock     bool      `json:"in_stock"`
	Rating      float64   `json:"rating"`
	CreatedAt   time.Time `json:"created_at"`
}

// ListProducts handles GET /api/products with optional filters.
func (h *CatalogHandler) ListProducts(c echo.Context) error {
	input := &usecase.ListWatchesInput{
		Category: c.QueryParam("category"),
		Brand:    c.QueryParam("brand"),
	}

	if raw := c.QueryParam("min_price"); raw != "" {
		if v, err := strconv.ParseFloat(raw, 64); err == nil {
			input.MinPrice = &v
		}
	}
	if raw := c.QueryParam("max_price"); raw != "" {
		if v, err := strconv.ParseFloat(raw, 64); err == nil {
			input.MaxPrice = &v
		}
	}
	if raw := c.QueryParam("limit"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil {
			input.Limit = v
		}
	}

	out, err := h.uc.ListWatches(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusOK, toWatchResponses(out.Watches))
}

// GetProduct handles GET /api/products/:id.
func (h *CatalogHandler) GetProduct(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return errors.WithStack(domainerrors.ErrWatchNotFound)
	}

	watch, err := h.uc.GetWatch(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusOK, toWatchResponse(watch))
}

// Search handles GET /api/search?q=.
func (h *CatalogHandler) Search(c echo.Context) error {
	out, err := h.uc.SearchWatches(c.Request().Context(), c.QueryParam("q"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusOK, toWatchResponses(out.Watches))
}

// Categories handles GET /api/categories.
func (h *CatalogHandler) Categories(c echo.Context) error {
	categories, err := h.uc.ListCategories(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusOK, categories)
}

// Brands handles GET /api/brands.
func (h *CatalogHandler) Brands(c echo.Context) error {
	brands, err := h.uc.ListBrands(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusOK, brands)
}

func toWatchResponse(watch *entity.Watch) *watchResponse {
	return &watchResponse{
		ID:          watch.ID,
		Name:        watch.Name,
		Brand:       watch.Brand,
		Price:       watch.Price,
		Description: watch.Description,
		ImageURL:    watch.ImageURL,
		Category:    watch.Category,
		InStock:     watch.InStock,
		Rating:      watch.Rating,
		CreatedAt:   watch.CreatedAt,
	}
}

func toWatchResponses(watches []*entity.Watch) []*watchResponse {
	out := make([]*watchResponse, 0, len(watches))
	for _, watch := range watches {
		out = append(out, toWatchResponse(watch))
	}

	return out
}
