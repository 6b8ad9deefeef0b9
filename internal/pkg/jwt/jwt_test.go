package jwt

import (
	"testing"

	"github.com/retouchhive/office-backend/internal/domain/user"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-key-for-jwt"

func TestGenerateSessionToken(t *testing.T) {
	svc := NewJWTService(testSecret, "24h", "168h")

	token, expiresAt, err := svc.GenerateSessionToken("hr@example.com", user.RoleHRAdmin)
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Greater(t, expiresAt, int64(0))

	decoded, err := svc.JWTAuth().Decode(token)
	require.NoError(t, err)

	email, _ := decoded.Get("email")
	assert.Equal(t, "hr@example.com", email)
	role, _ := decoded.Get("role")
	assert.Equal(t, "hr-admin", role)
	tokenType, _ := decoded.Get("type")
	assert.Equal(t, "access", tokenType)
}

func TestActivationTokenRoundTrip(t *testing.T) {
	svc := NewJWTService(testSecret, "24h", "168h")

	token, _, err := svc.GenerateActivationToken("new.hire@example.com")
	require.NoError(t, err)

	email, err := svc.ValidateActivationToken(token)
	require.NoError(t, err)
	assert.Equal(t, "new.hire@example.com", email)
}

func TestValidateActivationTokenRejectsSessionToken(t *testing.T) {
	svc := NewJWTService(testSecret, "24h", "168h")

	token, _, err := svc.GenerateSessionToken("someone@example.com", user.RoleEmployee)
	require.NoError(t, err)

	_, err = svc.ValidateActivationToken(token)
	assert.Error(t, err)
}

func TestValidateActivationTokenRejectsGarbage(t *testing.T) {
	svc := NewJWTService(testSecret, "24h", "168h")

	_, err := svc.ValidateActivationToken("not-a-token")
	assert.Error(t, err)
}
