package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MaulikI8/imperialwatch/config"
	"github.com/MaulikI8/imperialwatch/internal/domain/entity"
)

func testJWTConfig(ttl time.Duration) *config.Config {
	return &config.Config{
		SecretKey: config.SecretKey{Access: "test-secret"},
		Auth:      &config.AuthConfig{AccessTTL: ttl},
	}
}

func TestNewJWTService_RequiresSecret(t *testing.T) {
	_, err := NewJWTService(&config.Config{})
	assert.Error(t, err)
}

func TestJWTService_GenerateAndValidate(t *testing.T) {
	svc, err := NewJWTService(testJWTConfig(time.Hour))
	require.NoError(t, err)

	token, err := svc.Generate(42, entity.RoleCustomer.String())
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := svc.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.CustomerID)
	assert.Equal(t, entity.RoleCustomer.String(), claims.Role)
	assert.Equal(t, "42", claims.Subject)
}

func TestJWTService_ValidateRejectsTampered(t *testing.T) {
	svc, err := NewJWTService(testJWTConfig(time.Hour))
	require.NoError(t, err)

	token, err := svc.Generate(42, entity.RoleAdmin.String())
	require.NoError(t, err)

	// Flip a byte in the signature segment.
	tampered := token[:len(token)-2] + "xx"
	_, err = svc.Validate(tampered)
	assert.Error(t, err)
}

func TestJWTService_ValidateRejectsExpired(t *testing.T) {
	svc, err := NewJWTService(testJWTConfig(-time.Minute))
	require.NoError(t, err)

	token, err := svc.Generate(7, entity.RoleCustomer.String())
	require.NoError(t, err)

	_, err = svc.Validate(token)
	assert.Error(t, err)
}

func TestJWTService_ValidateRejectsOtherSecret(t *testing.T) {
	svc, err := NewJWTService(testJWTConfig(time.Hour))
	require.NoError(t, err)

	other, err := NewJWTService(&config.Config{
		SecretKey: config.SecretKey{Access: "different-secret"},
		Auth:      &config.AuthConfig{AccessTTL: time.Hour},
	})
	require.NoError(t, err)

	token, err := other.Generate(7, entity.RoleCustomer.String())
	require.NoError(t, err)

	_, err = svc.Validate(token)
	assert.Error(t, err)
}
