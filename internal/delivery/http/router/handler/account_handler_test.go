package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	domainerrors "github.com/MaulikI8/imperialwatch/internal/domain/errors"
	mockUsecase "github.com/MaulikI8/imperialwatch/internal/mocks/usecase"
	"github.com/MaulikI8/imperialwatch/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestAccountHandler_Register_Success(t *testing.T) {
	t.Parallel()

	uc := mockUsecase.NewMockAccountUsecase(t)
	h := NewAccountHandler(uc, newDiscardLogger())

	uc.EXPECT().Register(mock.Anything, &usecase.RegisterInput{
		Name:     "Ana Jones",
		Email:    "ana@example.com",
		Password: "secret123",
		Phone:    "+1-555-0101",
		Address:  "1 Fifth Ave",
	}).Return(&usecase.AuthOutput{
		Token: "signed.jwt.token",
		Customer: &usecase.CustomerSummary{
			ID:    7,
			Name:  "Ana Jones",
			Email: "ana@example.com",
			Role:  "customer",
		},
	}, nil)

	e := newTestEcho()
	e.POST("/api/auth/register", h.Register)

	body := `{"name":"Ana Jones","email":"ana@example.com","password":"secret123","phone":"+1-555-0101","address":"1 Fifth Ave"}`
	req := httptest.NewRequest(http.MethodPost, "/api/auth/register", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t, `{"token":"signed.jwt.token","user":{"id":7,"name":"Ana Jones","email":"ana@example.com","role":"customer"}}`, rec.Body.String())
}

func TestAccountHandler_Register_DuplicateEmail(t *testing.T) {
	t.Parallel()

	uc := mockUsecase.NewMockAccountUsecase(t)
	h := NewAccountHandler(uc, newDiscardLogger())

	uc.EXPECT().Register(mock.Anything, mock.Anything).Return(nil, domainerrors.ErrEmailAlreadyRegistered)

	e := newTestEcho()
	e.POST("/api/auth/register", h.Register)

	body := `{"name":"Ana Jones","email":"ana@example.com","password":"secret123"}`
	req := httptest.NewRequest(http.MethodPost, "/api/auth/register", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":"Email already registered"}`, rec.Body.String())
}

func TestAccountHandler_Register_MissingFields(t *testing.T) {
	t.Parallel()

	uc := mockUsecase.NewMockAccountUsecase(t)
	h := NewAccountHandler(uc, newDiscardLogger())

	e := newTestEcho()
	e.POST("/api/auth/register", h.Register)

	// No email or password; validation rejects before reaching the usecase.
	body := `{"name":"Ana Jones"}`
	req := httptest.NewRequest(http.MethodPost, "/api/auth/register", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "error")
}

func TestAccountHandler_Login_Success(t *testing.T) {
	t.Parallel()

	uc := mockUsecase.NewMockAccountUsecase(t)
	h := NewAccountHandler(uc, newDiscardLogger())

	uc.EXPECT().Login(mock.Anything, &usecase.LoginInput{
		Email:    "ana@example.com",
		Password: "secret123",
	}).Return(&usecase.AuthOutput{
		Token: "signed.jwt.token",
		Customer: &usecase.CustomerSummary{
			ID:    7,
			Name:  "Ana Jones",
			Email: "ana@example.com",
			Role:  "customer",
		},
	}, nil)

	e := newTestEcho()
	e.POST("/api/auth/login", h.Login)

	body := `{"email":"ana@example.com","password":"secret123"}`
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"token":"signed.jwt.token"`)
}

func TestAccountHandler_Login_WrongPassword(t *testing.T) {
	t.Parallel()

	uc := mockUsecase.NewMockAccountUsecase(t)
	h := NewAccountHandler(uc, newDiscardLogger())

	uc.EXPECT().Login(mock.Anything, mock.Anything).Return(nil, domainerrors.ErrInvalidCredentials)

	e := newTestEcho()
	e.POST("/api/auth/login", h.Login)

	body := `{"email":"ana@example.com","password":"wrong"}`
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"error":"Invalid email or password"}`, rec.Body.String())
}
