package selfservice

import (
	"context"
	"net/http"
	"time"

	"github.com/dmitrymomot/billingkit/pkg/billing"
	"github.com/dmitrymomot/billingkit/pkg/jwt"
)

// Authenticator parses a Bearer token and stores its subject in the request
// context as the caller identity. An absent or invalid token is not a
// transport error here: the request proceeds without an identity and the
// billing core's gate answers with the unauthenticated payload.
func Authenticator(tokens *jwt.Service) func(http.Handler) http.Handler {
	if tokens == nil {
		panic("selfservice: jwt.Service is required")
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if token, err := jwt.BearerToken(r.Header.Get("Authorization")); err == nil {
				if claims, err := tokens.Parse(token); err == nil && claims.Subject != "" {
					r = r.WithContext(billing.WithUserID(r.Context(), claims.Subject))
				}
			}
			next.ServeHTTP(w, r)
		})
	}
}

// RequestBudget enforces a wall-clock ceiling per request. When the budget
// runs out the in-flight provider call observes the context cancellation.
func RequestBudget(d time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, cancel := context.WithTimeout(r.Context(), d)
			defer cancel()
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
