package gate

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
)

// AuthUser is the authenticated actor resolved from the request token.
type AuthUser struct {
	ProfileID uuid.UUID
	Email     string
}

func (u AuthUser) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("profile_id", u.ProfileID.String()),
		slog.String("email", u.Email),
	)
}

// contextKey is a value for use with context.WithValue. It's used as
// a pointer so it fits in an interface{} without allocation.
type contextKey struct {
	name string
}

func (k *contextKey) String() string {
	return "gate context value " + k.name
}

var authUserKey = &contextKey{"AuthUser"}

// WithAuthUser returns a copy of ctx carrying the authenticated actor.
func WithAuthUser(ctx context.Context, user *AuthUser) context.Context {
	return context.WithValue(ctx, authUserKey, user)
}

// AuthUserFromContext returns the authenticated actor stored in ctx, if any.
func AuthUserFromContext(ctx context.Context) (*AuthUser, bool) {
	user, ok := ctx.Value(authUserKey).(*AuthUser)
	return user, ok
}
