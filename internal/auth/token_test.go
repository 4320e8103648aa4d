package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/rookgm/chefbazaar/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testKey = []byte("f53ac685bbceebd75043e6be2e06ee07")

func TestAuthToken_RoundTrip(t *testing.T) {
	at := NewAuthToken(testKey)

	token, err := at.CreateToken(&models.TokenPayload{Email: "buyer@example.com", Role: models.RoleChef})
	require.NoError(t, err)

	payload, err := at.VerifyToken(token)
	require.NoError(t, err)
	assert.Equal(t, &models.TokenPayload{Email: "buyer@example.com", Role: models.RoleChef}, payload)
}

func TestAuthToken_DefaultRole(t *testing.T) {
	at := NewAuthToken(testKey)

	token, err := at.CreateToken(&models.TokenPayload{Email: "buyer@example.com"})
	require.NoError(t, err)

	payload, err := at.VerifyToken(token)
	require.NoError(t, err)
	assert.Equal(t, models.RoleUser, payload.Role)
}

func TestAuthToken_Rejects(t *testing.T) {
	at := NewAuthToken(testKey)

	expired := &AuthToken{
		key: testKey,
		now: func() time.Time { return time.Now().Add(-48 * time.Hour) },
	}
	expiredToken, err := expired.CreateToken(&models.TokenPayload{Email: "buyer@example.com"})
	require.NoError(t, err)

	otherKeyToken, err := NewAuthToken([]byte("another key")).CreateToken(&models.TokenPayload{Email: "buyer@example.com"})
	require.NoError(t, err)

	noEmail, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims{Role: models.RoleAdmin}).SignedString(testKey)
	require.NoError(t, err)

	noneAlg, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims{Email: "buyer@example.com"}).
		SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
	}{
		{name: "garbage", token: "not-a-token"},
		{name: "expired", token: expiredToken},
		{name: "wrong_key", token: otherKeyToken},
		{name: "no_email", token: noEmail},
		{name: "none_alg", token: noneAlg},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := at.VerifyToken(tt.token)
			assert.ErrorIs(t, err, models.ErrUnauthorized)
		})
	}
}
