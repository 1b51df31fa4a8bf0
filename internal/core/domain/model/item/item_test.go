package item_test

import (
	"testing"

	"cafe/internal/core/domain/model/item"
	"cafe/internal/core/domain/model/kernel"
	"cafe/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewItem(t *testing.T) {
	validID := kernel.NewUUID()

	t.Run("should create valid item with all valid parameters", func(t *testing.T) {
		i, err := item.NewItem(validID, "Latte", "espresso with milk", 10, 3.00)

		require.NoError(t, err)
		assert.NotNil(t, i)
		require.NoError(t, i.Validate())
		assert.True(t, i.ID().IsEqual(validID))
		assert.Equal(t, "Latte", i.Name())
		assert.Equal(t, "espresso with milk", i.Description())
		assert.Equal(t, 10, i.Amount())
		assert.InDelta(t, 3.00, i.Price(), 1e-9)
	})

	t.Run("should fail with invalid UUID", func(t *testing.T) {
		var invalidID kernel.UUID

		i, err := item.NewItem(invalidID, "Latte", "", 10, 3.00)

		require.Error(t, err)
		assert.Nil(t, i)
		assert.Contains(t, err.Error(), "UUID must be created")
	})

	t.Run("should fail with empty name", func(t *testing.T) {
		i, err := item.NewItem(validID, "", "", 10, 3.00)

		require.Error(t, err)
		assert.Nil(t, i)
		assert.Contains(t, err.Error(), "item name")
	})

	t.Run("should fail with negative amount", func(t *testing.T) {
		i, err := item.NewItem(validID, "Latte", "", -1, 3.00)

		require.Error(t, err)
		assert.Nil(t, i)
		assert.Contains(t, err.Error(), "item amount")
	})

	t.Run("should fail with negative price", func(t *testing.T) {
		i, err := item.NewItem(validID, "Latte", "", 10, -0.01)

		require.Error(t, err)
		assert.Nil(t, i)
		assert.Contains(t, err.Error(), "item price")
	})

	t.Run("should accept zero amount and zero price", func(t *testing.T) {
		i, err := item.NewItem(validID, "Water", "", 0, 0)

		require.NoError(t, err)
		assert.Equal(t, 0, i.Amount())
		assert.InDelta(t, 0.0, i.Price(), 1e-9)
	})

	t.Run("should handle multiple validation errors", func(t *testing.T) {
		var invalidID kernel.UUID

		i, err := item.NewItem(invalidID, "", "", -1, -1)

		require.Error(t, err)
		assert.Nil(t, i)
		assert.Contains(t, err.Error(), "UUID must be created")
		assert.Contains(t, err.Error(), "item name")
		assert.Contains(t, err.Error(), "item amount")
		assert.Contains(t, err.Error(), "item price")
	})
}

func TestItem_Validate(t *testing.T) {
	t.Run("should fail validation for nil item", func(t *testing.T) {
		var i *item.Item

		err := i.Validate()

		require.Error(t, err)
		assert.Equal(t, item.ErrItemIsNotConstructed, err)
	})

	t.Run("should fail validation for directly instantiated item", func(t *testing.T) {
		i := &item.Item{}

		err := i.Validate()

		require.Error(t, err)
		assert.Equal(t, item.ErrItemIsNotConstructed, err)
	})
}

func TestItem_Decrement(t *testing.T) {
	newItem := func(amount int) *item.Item {
		i, err := item.NewItem(kernel.NewUUID(), "Espresso", "", amount, 4.00)
		require.NoError(t, err)
		return i
	}

	t.Run("should decrement when stock covers quantity", func(t *testing.T) {
		i := newItem(10)

		require.NoError(t, i.Decrement(3))
		assert.Equal(t, 7, i.Amount())
	})

	t.Run("should allow decrement to exactly zero", func(t *testing.T) {
		i := newItem(5)

		require.NoError(t, i.Decrement(5))
		assert.Equal(t, 0, i.Amount())
	})

	t.Run("should fail when stock cannot cover quantity", func(t *testing.T) {
		i := newItem(2)

		err := i.Decrement(3)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrInsufficientInventory)

		var invErr *errs.InsufficientInventoryError
		require.ErrorAs(t, err, &invErr)
		assert.Equal(t, "Espresso", invErr.ItemName)
		assert.Equal(t, 3, invErr.Requested)
		assert.Equal(t, 2, invErr.Available)

		// Failed decrement leaves stock unchanged, never clamped.
		assert.Equal(t, 2, i.Amount())
	})

	t.Run("should reject non-positive quantity", func(t *testing.T) {
		i := newItem(10)

		require.Error(t, i.Decrement(0))
		require.Error(t, i.Decrement(-1))
		assert.Equal(t, 10, i.Amount())
	})
}

func TestItem_CanCover(t *testing.T) {
	i, err := item.NewItem(kernel.NewUUID(), "Muffin", "", 4, 2.50)
	require.NoError(t, err)

	assert.True(t, i.CanCover(3))
	assert.True(t, i.CanCover(4))
	assert.False(t, i.CanCover(5))
}

func TestItem_Update(t *testing.T) {
	t.Run("should replace catalog details", func(t *testing.T) {
		i, err := item.NewItem(kernel.NewUUID(), "Latte", "old", 10, 3.00)
		require.NoError(t, err)

		require.NoError(t, i.Update("Oat Latte", "with oat milk", 8, 3.50))

		assert.Equal(t, "Oat Latte", i.Name())
		assert.Equal(t, "with oat milk", i.Description())
		assert.Equal(t, 8, i.Amount())
		assert.InDelta(t, 3.50, i.Price(), 1e-9)
	})

	t.Run("should leave item unchanged on invalid update", func(t *testing.T) {
		i, err := item.NewItem(kernel.NewUUID(), "Latte", "old", 10, 3.00)
		require.NoError(t, err)

		require.Error(t, i.Update("", "desc", -1, -1))

		assert.Equal(t, "Latte", i.Name())
		assert.Equal(t, "old", i.Description())
		assert.Equal(t, 10, i.Amount())
		assert.InDelta(t, 3.00, i.Price(), 1e-9)
	})
}
