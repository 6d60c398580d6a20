package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MaulikI8/imperialwatch/internal/domain/entity"
	domainerrors "github.com/MaulikI8/imperialwatch/internal/domain/errors"
	mockUsecase "github.com/MaulikI8/imperialwatch/internal/mocks/usecase"
	"github.com/MaulikI8/imperialwatch/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCatalogHandler_ListProducts(t *testing.T) {
	t.Parallel()

	uc := mockUsecase.NewMockCatalogUsecase(t)
	h := NewCatalogHandler(uc, newDiscardLogger())

	created := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	uc.EXPECT().ListWatches(mock.Anything, mock.Anything).Run(func(ctx context.Context, input *usecase.ListWatchesInput) {
		assert.Equal(t, "Diving", input.Category)
		assert.Equal(t, "Rolex", input.Brand)
		require.NotNil(t, input.MinPrice)
		assert.InDelta(t, 5000, *input.MinPrice, 0.001)
		assert.Equal(t, 10, input.Limit)
	}).Return(&usecase.ListWatchesOutput{
		Watches: []*entity.Watch{
			{
				ID:        1,
				Name:      "Rolex Submariner",
				Brand:     "Rolex",
				Price:     12500,
				ImageURL:  "images/submariner.jpg",
				Category:  "Diving",
				InStock:   true,
				Rating:    4.9,
				CreatedAt: created,
			},
		},
	}, nil)

	e := newTestEcho()
	e.GET("/api/products", h.ListProducts)

	req := httptest.NewRequest(http.MethodGet, "/api/products?category=Diving&brand=Rolex&min_price=5000&limit=10", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"name":"Rolex Submariner"`)
	assert.Contains(t, rec.Body.String(), `"image_url":"images/submariner.jpg"`)
	assert.Contains(t, rec.Body.String(), `"in_stock":true`)
}

func TestCatalogHandler_GetProduct_NotFound(t *testing.T) {
	t.Parallel()

	uc := mockUsecase.NewMockCatalogUsecase(t)
	h := NewCatalogHandler(uc, newDiscardLogger())

	uc.EXPECT().GetWatch(mock.Anything, int64(99)).Return(nil, domainerrors.ErrWatchNotFound)

	e := newTestEcho()
	e.GET("/api/products/:id", h.GetProduct)

	req := httptest.NewRequest(http.MethodGet, "/api/products/99", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"Watch not found"}`, rec.Body.String())
}

func TestCatalogHandler_GetProduct_NonNumericID(t *testing.T) {
	t.Parallel()

	uc := mockUsecase.NewMockCatalogUsecase(t)
	h := NewCatalogHandler(uc, newDiscardLogger())

	e := newTestEcho()
	e.GET("/api/products/:id", h.GetProduct)

	req := httptest.NewRequest(http.MethodGet, "/api/products/abc", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"Watch not found"}`, rec.Body.String())
}

func TestCatalogHandler_Search_MissingQuery(t *testing.T) {
	t.Parallel()

	uc := mockUsecase.NewMockCatalogUsecase(t)
	h := NewCatalogHandler(uc, newDiscardLogger())

	uc.EXPECT().SearchWatches(mock.Anything, "").Return(nil, domainerrors.ErrSearchQueryRequired)

	e := newTestEcho()
	e.GET("/api/search", h.Search)

	req := httptest.NewRequest(http.MethodGet, "/api/search", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":"Search query required"}`, rec.Body.String())
}

func TestCatalogHandler_Categories(t *testing.T) {
	t.Parallel()

	uc := mockUsecase.NewMockCatalogUsecase(t)
	h := NewCatalogHandler(uc, newDiscardLogger())

	uc.EXPECT().ListCategories(mock.Anything).Return([]string{"Diving", "Dress", "Sport"}, nil)

	e := newTestEcho()
	e.GET("/api/categories", h.Categories)

	req := httptest.NewRequest(http.MethodGet, "/api/categories", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `["Diving","Dress","Sport"]`, rec.Body.String())
}
