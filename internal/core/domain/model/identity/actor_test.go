package identity_test

import (
	"testing"

	"shop/internal/core/domain/model/identity"
	"shop/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRole(t *testing.T) {
	t.Run("should parse known roles", func(t *testing.T) {
		role, err := identity.ParseRole("customer")
		require.NoError(t, err)
		assert.Equal(t, identity.RoleCustomer, role)

		role, err = identity.ParseRole("admin")
		require.NoError(t, err)
		assert.Equal(t, identity.RoleAdmin, role)
	})

	t.Run("should reject unknown roles", func(t *testing.T) {
		_, err := identity.ParseRole("superuser")

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestNewActor(t *testing.T) {
	t.Run("should create actor with valid inputs", func(t *testing.T) {
		actor, err := identity.NewActor(42, identity.RoleCustomer)

		require.NoError(t, err)
		require.NoError(t, actor.Validate())
		assert.Equal(t, int64(42), actor.UserID())
		assert.Equal(t, identity.RoleCustomer, actor.Role())
		assert.False(t, actor.IsAdmin())
	})

	t.Run("should reject non-positive user IDs", func(t *testing.T) {
		_, err := identity.NewActor(0, identity.RoleCustomer)
		require.Error(t, err)

		_, err = identity.NewActor(-1, identity.RoleAdmin)
		require.Error(t, err)
	})

	t.Run("should reject invalid roles", func(t *testing.T) {
		_, err := identity.NewActor(1, identity.RoleUnknown)

		require.Error(t, err)
	})
}

func TestActor_RequireAdmin(t *testing.T) {
	t.Run("admin passes the gate", func(t *testing.T) {
		admin, _ := identity.NewActor(1, identity.RoleAdmin)

		require.NoError(t, admin.RequireAdmin("update order status"))
	})

	t.Run("customer is rejected with unauthorized", func(t *testing.T) {
		customer, _ := identity.NewActor(2, identity.RoleCustomer)

		err := customer.RequireAdmin("update order status")

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrUnauthorized)
		assert.Contains(t, err.Error(), "update order status")
	})

	t.Run("zero value actor fails validation", func(t *testing.T) {
		var actor identity.Actor

		require.Error(t, actor.RequireAdmin("anything"))
	})
}

func TestActor_Owns(t *testing.T) {
	actor, _ := identity.NewActor(7, identity.RoleCustomer)

	assert.True(t, actor.Owns(7))
	assert.False(t, actor.Owns(8))
}
