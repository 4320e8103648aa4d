package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/rookgm/chefbazaar/internal/logger"
	"github.com/rookgm/chefbazaar/internal/models"
	"github.com/rookgm/chefbazaar/internal/service"
	"go.uber.org/zap"
)

type contextKey int

const (
	contextKeyRequest contextKey = iota
)

// RequestContext carries verified request identity to handlers
type RequestContext struct {
	Identity *models.TokenPayload
}

// Guard checks request before it reaches handler.
// Guard may fill rc for the guards and handler that follow.
type Guard func(r *http.Request, rc *RequestContext) error

// GuardError rejects request with status and reason
type GuardError struct {
	Status int
	Reason string
}

func (e *GuardError) Error() string {
	return e.Reason
}

// Reject returns GuardError
func Reject(status int, reason string) error {
	return &GuardError{Status: status, Reason: reason}
}

// Pipeline runs guards in order, the first failing guard ends the request
func Pipeline(guards ...Guard) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			rc, ok := FromContext(r.Context())
			if !ok {
				rc = &RequestContext{}
			}

			for _, guard := range guards {
				if err := guard(r, rc); err != nil {
					var ge *GuardError
					if !errors.As(err, &ge) {
						logger.Log.Error("request guard", zap.Error(err))
						http.Error(w, "internal error", http.StatusInternalServerError)
						return
					}
					http.Error(w, ge.Reason, ge.Status)
					return
				}
			}

			ctx := context.WithValue(r.Context(), contextKeyRequest, rc)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// Authenticate verifies bearer token from Authorization header
func Authenticate(ts service.TokenService) Guard {
	return func(r *http.Request, rc *RequestContext) error {
		scheme, token, ok := strings.Cut(r.Header.Get("Authorization"), " ")
		if !ok || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(token) == "" {
			return Reject(http.StatusUnauthorized, "unauthorized")
		}

		payload, err := ts.VerifyToken(strings.TrimSpace(token))
		if err != nil {
			return Reject(http.StatusUnauthorized, "unauthorized")
		}

		rc.Identity = payload
		return nil
	}
}

// RequireRole passes only identities with one of roles
func RequireRole(roles ...string) Guard {
	return func(_ *http.Request, rc *RequestContext) error {
		if rc.Identity == nil {
			return Reject(http.StatusUnauthorized, "unauthorized")
		}
		for _, role := range roles {
			if rc.Identity.Role == role {
				return nil
			}
		}
		return Reject(http.StatusForbidden, "forbidden")
	}
}

// FromContext extracts request context
func FromContext(ctx context.Context) (*RequestContext, bool) {
	rc, ok := ctx.Value(contextKeyRequest).(*RequestContext)
	return rc, ok
}

// Identity extracts verified identity from context
func Identity(ctx context.Context) (*models.TokenPayload, bool) {
	rc, ok := FromContext(ctx)
	if !ok || rc.Identity == nil {
		return nil, false
	}
	return rc.Identity, true
}

// WithIdentity returns context carrying identity
func WithIdentity(ctx context.Context, identity *models.TokenPayload) context.Context {
	return context.WithValue(ctx, contextKeyRequest, &RequestContext{Identity: identity})
}
