package domain

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRequirePermission(t *testing.T) {
	tests := map[string]struct {
		principal   *Principal
		permission  Permission
		expectedErr error
	}{
		"granted": {
			principal:  &Principal{UserID: "u1", Permissions: []Permission{Permission_ImagesRead}},
			permission: Permission_ImagesRead,
		},
		"admin-role": {
			principal:  &Principal{UserID: "u1", Roles: []string{Role_Admin}},
			permission: Permission_StatsRead,
		},
		"wildcard-permission": {
			principal:  &Principal{UserID: "u1", Permissions: []Permission{Permission_All}},
			permission: Permission_ImagesWrite,
		},
		"missing-permission": {
			principal:   &Principal{UserID: "u1", Permissions: []Permission{Permission_ImagesRead}},
			permission:  Permission_ImagesWrite,
			expectedErr: NewForbiddenErr("missing permission images:write"),
		},
		"no-principal": {
			permission:  Permission_ImagesRead,
			expectedErr: NewUnauthorizedErr("authentication required"),
		},
		"empty-user-id": {
			principal:   &Principal{Permissions: []Permission{Permission_All}},
			permission:  Permission_ImagesRead,
			expectedErr: NewUnauthorizedErr("authentication required"),
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			if tt.principal != nil {
				ctx = WithPrincipal(ctx, *tt.principal)
			}
			p, err := RequirePermission(ctx, tt.permission)
			assert.Equal(t, tt.expectedErr, err)
			if tt.expectedErr == nil {
				assert.Equal(t, *tt.principal, p)
			}
		})
	}
}

func TestRequireRole(t *testing.T) {
	tests := map[string]struct {
		principal   *Principal
		role        string
		expectedErr error
	}{
		"designer": {
			principal: &Principal{UserID: "u1", Roles: []string{Role_Designer}},
			role:      Role_Designer,
		},
		"admin-has-every-role": {
			principal: &Principal{UserID: "u1", Roles: []string{Role_Admin}},
			role:      Role_Designer,
		},
		"missing-role": {
			principal:   &Principal{UserID: "u1", Roles: []string{"viewer"}},
			role:        Role_Designer,
			expectedErr: NewForbiddenErr("role designer required"),
		},
		"no-principal": {
			role:        Role_Designer,
			expectedErr: NewUnauthorizedErr("authentication required"),
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			if tt.principal != nil {
				ctx = WithPrincipal(ctx, *tt.principal)
			}
			_, err := RequireRole(ctx, tt.role)
			assert.Equal(t, tt.expectedErr, err)
		})
	}
}
