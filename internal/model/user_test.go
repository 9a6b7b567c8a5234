package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseRole(t *testing.T) {
	for _, raw := range []string{"CITIZEN", "NGO", "ADMIN"} {
		role, ok := ParseRole(raw)
		assert.True(t, ok)
		assert.Equal(t, raw, role.String())
	}

	for _, raw := range []string{"", "citizen", "ROOT", "admin "} {
		_, ok := ParseRole(raw)
		assert.False(t, ok, "role %q should not parse", raw)
	}
}

func TestUserPublicOmitsHash(t *testing.T) {
	user := User{
		ID:           "u1",
		Email:        "a@x.com",
		PasswordHash: "secret-hash",
		Role:         RoleCitizen,
		IsActive:     true,
	}

	public := user.Public()
	assert.Equal(t, "a@x.com", public.Email)
	assert.Equal(t, RoleCitizen, public.Role)
}
