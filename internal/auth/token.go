package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/rookgm/chefbazaar/internal/models"
)

const tokenTTL = 24 * time.Hour

type claims struct {
	jwt.RegisteredClaims
	Email string `json:"email"`
	Role  string `json:"role,omitempty"`
}

// AuthToken signs and verifies HS256 tokens
type AuthToken struct {
	key []byte
	now func() time.Time
}

// NewAuthToken creates new AuthToken with secret key
func NewAuthToken(key []byte) *AuthToken {
	return &AuthToken{
		key: key,
		now: time.Now,
	}
}

// CreateToken creates signed token for payload
func (at *AuthToken) CreateToken(payload *models.TokenPayload) (string, error) {
	now := at.now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   payload.Email,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenTTL)),
		},
		Email: payload.Email,
		Role:  payload.Role,
	})

	return token.SignedString(at.key)
}

// VerifyToken verifies token and returns its payload
func (at *AuthToken) VerifyToken(tokenString string) (*models.TokenPayload, error) {
	c := &claims{}
	token, err := jwt.ParseWithClaims(tokenString, c, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return at.key, nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", models.ErrUnauthorized, err)
	}

	if !token.Valid || c.Email == "" {
		return nil, models.ErrUnauthorized
	}

	role := c.Role
	if role == "" {
		role = models.RoleUser
	}

	return &models.TokenPayload{
		Email: c.Email,
		Role:  role,
	}, nil
}
