package auth

import (
	"context"

	"github.com/dixitshiv/Roomate-Meal/internal/model"
)

type contextKey struct{}

// WithUser attaches the authenticated user to the request context.
func WithUser(ctx context.Context, u model.User) context.Context {
	return context.WithValue(ctx, contextKey{}, u)
}

// UserFromContext extracts the authenticated user, if any.
func UserFromContext(ctx context.Context) (model.User, bool) {
	u, ok := ctx.Value(contextKey{}).(model.User)
	return u, ok
}
