package queries_test

import (
	"testing"

	"shop/internal/core/application/usecases/queries"
	"shop/internal/core/domain/model/identity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func customerActor(t *testing.T) identity.Actor {
	t.Helper()

	actor, err := identity.NewActor(7, identity.RoleCustomer)
	require.NoError(t, err)
	return actor
}

func TestNewGetOrdersQuery_Valid(t *testing.T) {
	query, err := queries.NewGetOrdersQuery(customerActor(t))
	require.NoError(t, err)
	require.NoError(t, query.Validate())
	assert.Equal(t, int64(7), query.Actor().UserID())
}

func TestNewGetOrdersQuery_InvalidActor(t *testing.T) {
	_, err := queries.NewGetOrdersQuery(identity.Actor{})
	require.Error(t, err)
}

func TestGetOrdersQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetOrdersQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetOrdersQueryIsNotConstructed)
}

func TestNewGetOrderQuery_InvalidID(t *testing.T) {
	_, err := queries.NewGetOrderQuery(customerActor(t), 0)
	require.Error(t, err)
}

func TestGetOrderQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetOrderQuery{}
	require.ErrorIs(t, query.Validate(), queries.ErrGetOrderQueryIsNotConstructed)
}

func TestGetAllOrdersQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetAllOrdersQuery{}
	require.ErrorIs(t, query.Validate(), queries.ErrGetAllOrdersQueryIsNotConstructed)
}

func TestNewGetReturnQuery_InvalidID(t *testing.T) {
	_, err := queries.NewGetReturnQuery(customerActor(t), -1)
	require.Error(t, err)
}

func TestGetReturnsQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetReturnsQuery{}
	require.ErrorIs(t, query.Validate(), queries.ErrGetReturnsQueryIsNotConstructed)
}

func TestNewGetProductsQuery_Valid(t *testing.T) {
	query := queries.NewGetProductsQuery("electronics")
	require.NoError(t, query.Validate())
	assert.Equal(t, "electronics", query.Category())
}

func TestNewGetProductQuery_InvalidID(t *testing.T) {
	_, err := queries.NewGetProductQuery(0)
	require.Error(t, err)
}
