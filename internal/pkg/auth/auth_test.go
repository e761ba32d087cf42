package auth_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ravikt/tuitiondesk/internal/pkg/auth"
)

func newJWTService(exp time.Duration) *auth.JWTService {
	return auth.NewJWTService(auth.JWTConfig{
		SecretKey:   "test-secret-key",
		TokenExp:    exp,
		TokenIssuer: "tuitiondesk",
	})
}

func TestGenerateAndValidateToken(t *testing.T) {
	svc := newJWTService(time.Hour)

	token, expiresIn, err := svc.GenerateToken("admin")
	require.NoError(t, err)
	require.NotEmpty(t, token)
	assert.Equal(t, 3600, expiresIn)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "admin", claims.Username)
	assert.Equal(t, "admin", claims.Role)
	assert.Equal(t, "tuitiondesk", claims.Issuer)
}

func TestValidateExpiredToken(t *testing.T) {
	svc := newJWTService(-time.Minute)

	token, _, err := svc.GenerateToken("admin")
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)
	assert.ErrorIs(t, err, auth.ErrExpiredToken)
}

func TestValidateTokenWithWrongSecret(t *testing.T) {
	token, _, err := newJWTService(time.Hour).GenerateToken("admin")
	require.NoError(t, err)

	other := auth.NewJWTService(auth.JWTConfig{
		SecretKey:   "different-secret",
		TokenExp:    time.Hour,
		TokenIssuer: "tuitiondesk",
	})
	_, err = other.ValidateToken(token)
	assert.Error(t, err)
}

func TestExtractBearerToken(t *testing.T) {
	token, err := auth.ExtractBearerToken("Bearer abc.def.ghi")
	require.NoError(t, err)
	assert.Equal(t, "abc.def.ghi", token)

	_, err = auth.ExtractBearerToken("")
	assert.ErrorIs(t, err, auth.ErrInvalidFormat)

	_, err = auth.ExtractBearerToken("Token abc.def.ghi")
	assert.ErrorIs(t, err, auth.ErrInvalidFormat)
}

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := auth.HashPassword("s3cret-pass")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret-pass", hash)

	assert.True(t, auth.CheckPassword(hash, "s3cret-pass"))
	assert.False(t, auth.CheckPassword(hash, "wrong-pass"))
}
