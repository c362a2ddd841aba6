package billing

import (
	"context"
	"strings"
)

type userIDContextKey struct{}

// WithUserID stores the authenticated caller's identity in the context.
// It is typically called by authentication middleware after token validation.
func WithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, userIDContextKey{}, userID)
}

// UserIDFromContext extracts the caller's identity from the context.
// An absent or blank identity reports false; this is the gate every
// operation checks before touching the billing provider.
func UserIDFromContext(ctx context.Context) (string, bool) {
	userID, ok := ctx.Value(userIDContextKey{}).(string)
	if !ok || strings.TrimSpace(userID) == "" {
		return "", false
	}
	return userID, true
}
