package domain

import (
	"context"
	"slices"
)

// Permission is a capability string asserted by the auth gateway.
type Permission string

const (
	Permission_ImagesRead  Permission = "images:read"
	Permission_ImagesWrite Permission = "images:write"
	Permission_StatsRead   Permission = "stats:read"
	Permission_All         Permission = "*:*"
)

const (
	Role_Admin    = "admin"
	Role_Designer = "designer"
)

// Principal is the authenticated caller of a request.
type Principal struct {
	UserID      string
	Roles       []string
	Permissions []Permission
}

// IsAdmin reports whether the principal has the admin role or the wildcard permission.
func (p Principal) IsAdmin() bool {
	return slices.Contains(p.Roles, Role_Admin) || slices.Contains(p.Permissions, Permission_All)
}

// Can reports whether the principal holds the permission.
func (p Principal) Can(permission Permission) bool {
	return p.IsAdmin() || slices.Contains(p.Permissions, permission)
}

// HasRole reports whether the principal has the role, admins having every role.
func (p Principal) HasRole(role string) bool {
	return p.IsAdmin() || slices.Contains(p.Roles, role)
}

type principalKey struct{}

// WithPrincipal returns a context carrying the principal.
func WithPrincipal(ctx context.Context, p Principal) context.Context {
	return context.WithValue(ctx, principalKey{}, p)
}

// PrincipalFromContext returns the principal carried by the context, if any.
func PrincipalFromContext(ctx context.Context) (Principal, bool) {
	p, ok := ctx.Value(principalKey{}).(Principal)
	if !ok || p.UserID == "" {
		return Principal{}, false
	}
	return p, true
}

// RequirePermission returns the principal when it holds the permission.
func RequirePermission(ctx context.Context, permission Permission) (Principal, error) {
	p, ok := PrincipalFromContext(ctx)
	if !ok {
		return Principal{}, NewUnauthorizedErr("authentication required")
	}
	if !p.Can(permission) {
		return Principal{}, NewForbiddenErr("missing permission " + string(permission))
	}
	return p, nil
}

// RequireRole returns the principal when it has the role.
func RequireRole(ctx context.Context, role string) (Principal, error) {
	p, ok := PrincipalFromContext(ctx)
	if !ok {
		return Principal{}, NewUnauthorizedErr("authentication required")
	}
	if !p.HasRole(role) {
		return Principal{}, NewForbiddenErr("role " + role + " required")
	}
	return p, nil
}
