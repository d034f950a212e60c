package ctxutil

import (
	"context"
	"slices"
)

type ctxKey string

const (
	identityKey  ctxKey = "identity"
	requestIDKey ctxKey = "request_id"
)

// Identity is the authenticated caller as extracted from the access token.
type Identity struct {
	Subject        string
	Username       string
	OrganizationID string
	Roles          []string
}

// WithIdentity stores the caller identity in the context.
func WithIdentity(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, identityKey, id)
}

// IdentityFromCtx extracts the caller identity from the context.
// Returns false if the value is missing or has an empty subject.
func IdentityFromCtx(ctx context.Context) (Identity, bool) {
	id, ok := ctx.Value(identityKey).(Identity)
	if !ok || id.Subject == "" {
		return Identity{}, false
	}
	return id, true
}

// HasAnyRole reports whether the context identity holds at least one of roles.
func HasAnyRole(ctx context.Context, roles ...string) bool {
	id, ok := IdentityFromCtx(ctx)
	if !ok {
		return false
	}
	for _, r := range roles {
		if slices.Contains(id.Roles, r) {
			return true
		}
	}
	return false
}

// WithRequestID stores the request ID in the context.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

// RequestIDFromCtx extracts the request ID from the context.
// Returns an empty string if absent.
func RequestIDFromCtx(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}
