package auth

import (
	"context"

	"github.com/stillpoint-health/backend/internal/model"
)

type ctxKey int

const identityKey ctxKey = 0

// WithIdentity returns a context carrying the verified identity.
func WithIdentity(ctx context.Context, id *model.Identity) context.Context {
	return context.WithValue(ctx, identityKey, id)
}

// IdentityFrom extracts the verified identity, if any.
func IdentityFrom(ctx context.Context) (*model.Identity, bool) {
	id, ok := ctx.Value(identityKey).(*model.Identity)
	return id, ok
}
