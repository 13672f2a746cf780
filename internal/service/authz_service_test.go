package service

import (
	"context"
	"testing"

	"github.com/clinicbook/api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func seedUser(t *testing.T, repo *fakeUserRepo, email string, role domain.Role) {
	t.Helper()
	_, err := repo.Upsert(context.Background(), &domain.User{Email: email, Role: role})
	require.NoError(t, err)
}

func TestRequire_AdminHoldsManagementCapabilities(t *testing.T) {
	users := newFakeUserRepo()
	seedUser(t, users, "root@example.com", domain.RoleAdmin)
	authz := NewAuthorizer(users, zap.NewNop())

	assert.NoError(t, authz.Require(context.Background(), "root@example.com", domain.CapManageUsers))
	assert.NoError(t, authz.Require(context.Background(), "root@example.com", domain.CapManageDoctors))
	assert.NoError(t, authz.Require(context.Background(), "root@example.com", domain.CapViewAllBookings))
}

func TestRequire_PatientDenied(t *testing.T) {
	users := newFakeUserRepo()
	seedUser(t, users, "ana@example.com", domain.RolePatient)
	authz := NewAuthorizer(users, zap.NewNop())

	err := authz.Require(context.Background(), "ana@example.com", domain.CapManageUsers)
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestRequire_UnknownUserDeniedNotErrored(t *testing.T) {
	users := newFakeUserRepo()
	authz := NewAuthorizer(users, zap.NewNop())

	// A valid token whose subject no longer exists in the directory must read
	// as a plain denial, indistinguishable from a role mismatch.
	err := authz.Require(context.Background(), "ghost@example.com", domain.CapManageUsers)
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestRequire_ChecksStoredRoleNotToken(t *testing.T) {
	users := newFakeUserRepo()
	seedUser(t, users, "demoted@example.com", domain.RoleAdmin)
	authz := NewAuthorizer(users, zap.NewNop())

	require.NoError(t, authz.Require(context.Background(), "demoted@example.com", domain.CapManageUsers))

	// Demotion takes effect immediately, even while old tokens are in flight.
	require.NoError(t, users.SetRole(context.Background(), "demoted@example.com", domain.RolePatient))
	err := authz.Require(context.Background(), "demoted@example.com", domain.CapManageUsers)
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestHasRole(t *testing.T) {
	users := newFakeUserRepo()
	seedUser(t, users, "root@example.com", domain.RoleAdmin)
	seedUser(t, users, "ana@example.com", domain.RolePatient)
	authz := NewAuthorizer(users, zap.NewNop())

	isAdmin, err := authz.HasRole(context.Background(), "root@example.com", domain.RoleAdmin)
	require.NoError(t, err)
	assert.True(t, isAdmin)

	isAdmin, err = authz.HasRole(context.Background(), "ana@example.com", domain.RoleAdmin)
	require.NoError(t, err)
	assert.False(t, isAdmin)

	isAdmin, err = authz.HasRole(context.Background(), "ghost@example.com", domain.RoleAdmin)
	require.NoError(t, err)
	assert.False(t, isAdmin)
}
