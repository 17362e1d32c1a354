package utils

import (
	"context"

	"seafresh-be/internal/auth"
)

type contextKey string

const identityKey contextKey = "identity"

// WithIdentity stores the verified request subject (called by the auth middleware).
func WithIdentity(ctx context.Context, id auth.Identity) context.Context {
	return context.WithValue(ctx, identityKey, id)
}

func IdentityFrom(ctx context.Context) (auth.Identity, bool) {
	id, ok := ctx.Value(identityKey).(auth.Identity)
	return id, ok && id.SubjectID != ""
}

// SubjectIDFrom returns the subject id only when it carries the given role.
func SubjectIDFrom(ctx context.Context, role auth.Role) (string, bool) {
	id, ok := IdentityFrom(ctx)
	if !ok || id.Role != role {
		return "", false
	}
	return id.SubjectID, true
}
