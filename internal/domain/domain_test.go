package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoleHas(t *testing.T) {
	caps := []Capability{CapManageUsers, CapManageDoctors, CapViewAllBookings}

	for _, c := range caps {
		assert.True(t, RoleAdmin.Has(c), string(c))
		assert.False(t, RolePatient.Has(c), string(c))
	}

	// Unknown roles hold nothing.
	assert.False(t, Role("superuser").Has(CapManageUsers))
}

func TestRoleIsValid(t *testing.T) {
	assert.True(t, RoleAdmin.IsValid())
	assert.True(t, RolePatient.IsValid())
	assert.False(t, Role("").IsValid())
	assert.False(t, Role("doctor").IsValid())
}
