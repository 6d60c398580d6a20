package middleware

import (
	"strings"

	deliverycontext "github.com/MaulikI8/imperialwatch/internal/delivery/context"
	"github.com/MaulikI8/imperialwatch/internal/delivery/http/response"
	"github.com/MaulikI8/imperialwatch/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// AuthMiddleware provides middleware for JWT authentication and authorization.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate is the core middleware function that validates the JWT access token.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return response.Unauthorized(c, "Authorization header is missing")
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return response.Unauthorized(c, "Invalid token format, must be Bearer token")
		}

		claims, err := m.tokenSvc.Validate(tokenString)
		if err != nil {
			return response.Unauthorized(c, "Invalid or expired token")
		}

		// Set customer info on the context for handlers to use
		c.Set(string(deliverycontext.KeyCustomerID), claims.CustomerID)
		c.Set(string(deliverycontext.KeyCustomerRole), claims.Role)

		return next(c)
	}
}

// RequireRole is a middleware factory that checks if the customer has a specific role.
// It must be used AFTER the Authenticate middleware.
func (m *AuthMiddleware) RequireRole(requiredRole string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if deliverycontext.GetCustomerRole(c) != requiredRole {
				return response.Forbidden(c, "Admin access required")
			}

			return next(c)
		}
	}
}
