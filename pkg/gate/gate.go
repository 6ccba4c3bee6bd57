package gate

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"

	"github.com/redcrest/donorflow/pkg/profile"
)

// RoleLookup resolves the stored role for a profile. A lookup failure is
// treated the same as the profile having no role.
type RoleLookup interface {
	GetRole(ctx context.Context, id uuid.UUID) (profile.Role, error)
}

// Gate authorizes actors against required roles. The gate performs the
// identity lookup and nothing else; callers must abort before any workflow
// logic when it returns an error.
type Gate struct {
	roles RoleLookup
}

// New creates a new authorization gate backed by the given role lookup.
func New(roles RoleLookup) *Gate {
	return &Gate{
		roles: roles,
	}
}

// Require verifies that actor is authenticated and, when allowed roles are
// supplied, that the actor's stored role matches one of them exactly.
// Roles carry no hierarchy: admin satisfies a secretary requirement only
// when both are listed.
func (g *Gate) Require(ctx context.Context, actor *AuthUser, allowed ...profile.Role) error {
	if actor == nil || actor.ProfileID == uuid.Nil {
		return ErrUnauthenticated
	}
	if len(allowed) == 0 {
		return nil
	}

	role, err := g.roles.GetRole(ctx, actor.ProfileID)
	if err != nil {
		if !errors.Is(err, profile.ErrProfileNotFound) {
			slog.Error("Role lookup failed", "actor", actor, "err", err)
		}
		return ErrForbidden
	}

	for _, a := range allowed {
		if role == a {
			return nil
		}
	}

	slog.Warn("Actor denied by role check", "actor", actor, "role", role)
	return ErrForbidden
}
