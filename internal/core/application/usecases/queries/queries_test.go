package queries_test

import (
	"testing"

	"cafe/internal/core/application/usecases/queries"
	"cafe/internal/core/domain/model/kernel"
	"cafe/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetOrderQuery(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		orderID := kernel.NewUUID()

		query, err := queries.NewGetOrderQuery(orderID)

		require.NoError(t, err)
		require.NoError(t, query.Validate())
		assert.True(t, query.OrderID().IsEqual(orderID))
	})

	t.Run("invalid ID", func(t *testing.T) {
		_, err := queries.NewGetOrderQuery(kernel.UUID{})

		require.Error(t, err)
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		query := queries.GetOrderQuery{}

		require.ErrorIs(t, query.Validate(), queries.ErrGetOrderQueryIsNotConstructed)
	})
}

func TestNewGetAllOrdersQuery(t *testing.T) {
	require.NoError(t, queries.NewGetAllOrdersQuery().Validate())

	query := queries.GetAllOrdersQuery{}
	require.ErrorIs(t, query.Validate(), queries.ErrGetAllOrdersQueryIsNotConstructed)
}

func TestNewGetOrdersByNameQuery(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		query, err := queries.NewGetOrdersByNameQuery("alice")

		require.NoError(t, err)
		require.NoError(t, query.Validate())
		assert.Equal(t, "alice", query.Name())
	})

	t.Run("empty name", func(t *testing.T) {
		_, err := queries.NewGetOrdersByNameQuery("")

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestNewGetTaxRateQuery(t *testing.T) {
	require.NoError(t, queries.NewGetTaxRateQuery().Validate())

	query := queries.GetTaxRateQuery{}
	require.ErrorIs(t, query.Validate(), queries.ErrGetTaxRateQueryIsNotConstructed)
}

func TestNewGetAllItemsQuery(t *testing.T) {
	require.NoError(t, queries.NewGetAllItemsQuery().Validate())

	query := queries.GetAllItemsQuery{}
	require.ErrorIs(t, query.Validate(), queries.ErrGetAllItemsQueryIsNotConstructed)
}

func TestNewGetItemQuery(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		itemID := kernel.NewUUID()

		query, err := queries.NewGetItemQuery(itemID)

		require.NoError(t, err)
		assert.True(t, query.ItemID().IsEqual(itemID))
	})

	t.Run("invalid ID", func(t *testing.T) {
		_, err := queries.NewGetItemQuery(kernel.UUID{})

		require.Error(t, err)
	})
}

func TestNewGetLowStockItemsQuery(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		query, err := queries.NewGetLowStockItemsQuery(5)

		require.NoError(t, err)
		require.NoError(t, query.Validate())
		assert.Equal(t, 5, query.Threshold())
	})

	t.Run("zero threshold allowed", func(t *testing.T) {
		_, err := queries.NewGetLowStockItemsQuery(0)

		require.NoError(t, err)
	})

	t.Run("negative threshold rejected", func(t *testing.T) {
		_, err := queries.NewGetLowStockItemsQuery(-1)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}
