package service

import "github.com/golang-jwt/jwt/v5"

// Claims carries the authenticated customer's identity inside a token.
type Claims struct {
	CustomerID int64  `json:"customerId"`
	Role       string `json:"role"`
	jwt.RegisteredClaims
}

// TokenService issues and validates access tokens.
type TokenService interface {
	// Generate issues a signed access token for the customer.
	Generate(customerID int64, role string) (string, error)
	// Validate parses and verifies a token, returning its claims.
	Validate(tokenString string) (*Claims, error)
}
