package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	deliverycontext "github.com/MaulikI8/imperialwatch/internal/delivery/context"
	"github.com/MaulikI8/imperialwatch/internal/domain/service"
	mockService "github.com/MaulikI8/imperialwatch/internal/mocks/service"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func okHandler(c echo.Context) error {
	return c.NoContent(http.StatusOK)
}

func TestAuthMiddleware_Authenticate_MissingHeader(t *testing.T) {
	t.Parallel()

	tokenSvc := mockService.NewMockTokenService(t)
	m := NewAuthMiddleware(tokenSvc)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/admin/dashboard", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := m.Authenticate(okHandler)(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"error":"Authorization header is missing"}`, rec.Body.String())
}

func TestAuthMiddleware_Authenticate_NotBearer(t *testing.T) {
	t.Parallel()

	tokenSvc := mockService.NewMockTokenService(t)
	m := NewAuthMiddleware(tokenSvc)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/admin/dashboard", nil)
	req.Header.Set("Authorization", "Basic abc123")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := m.Authenticate(okHandler)(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"error":"Invalid token format, must be Bearer token"}`, rec.Body.String())
}

func TestAuthMiddleware_Authenticate_InvalidToken(t *testing.T) {
	t.Parallel()

	tokenSvc := mockService.NewMockTokenService(t)
	tokenSvc.EXPECT().Validate("bad-token").Return(nil, errors.New("token is malformed"))
	m := NewAuthMiddleware(tokenSvc)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/admin/dashboard", nil)
	req.Header.Set("Authorization", "Bearer bad-token")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := m.Authenticate(okHandler)(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"error":"Invalid or expired token"}`, rec.Body.String())
}

func TestAuthMiddleware_Authenticate_SetsCustomerContext(t *testing.T) {
	t.Parallel()

	tokenSvc := mockService.NewMockTokenService(t)
	tokenSvc.EXPECT().Validate("good-token").Return(&service.Claims{
		CustomerID: 7,
		Role:       "admin",
	}, nil)
	m := NewAuthMiddleware(tokenSvc)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/admin/dashboard", nil)
	req.Header.Set("Authorization", "Bearer good-token")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var gotID int64
	var gotRole string
	next := func(c echo.Context) error {
		gotID, _ = deliverycontext.GetCustomerID(c)
		gotRole = deliverycontext.GetCustomerRole(c)

		return c.NoContent(http.StatusOK)
	}

	err := m.Authenticate(next)(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(7), gotID)
	assert.Equal(t, "admin", gotRole)
}

func TestAuthMiddleware_RequireRole_Forbidden(t *testing.T) {
	t.Parallel()

	tokenSvc := mockService.NewMockTokenService(t)
	m := NewAuthMiddleware(tokenSvc)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/admin/dashboard", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(string(deliverycontext.KeyCustomerRole), "customer")

	err := m.RequireRole("admin")(okHandler)(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.JSONEq(t, `{"error":"Admin access required"}`, rec.Body.String())
}

func TestAuthMiddleware_RequireRole_Allowed(t *testing.T) {
	t.Parallel()

	tokenSvc := mockService.NewMockTokenService(t)
	m := NewAuthMiddleware(tokenSvc)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/admin/dashboard", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(string(deliverycontext.KeyCustomerRole), "admin")

	err := m.RequireRole("admin")(okHandler)(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}
