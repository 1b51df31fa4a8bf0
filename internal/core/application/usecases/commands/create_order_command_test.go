package commands_test

import (
	"testing"

	"cafe/internal/core/application/usecases/commands"
	"cafe/internal/core/domain/model/kernel"
	"cafe/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validLineRequests(t *testing.T) []commands.LineRequest {
	t.Helper()

	first, err := commands.NewLineRequest(kernel.NewUUID(), 2)
	require.NoError(t, err)
	second, err := commands.NewLineRequest(kernel.NewUUID(), 1)
	require.NoError(t, err)

	return []commands.LineRequest{first, second}
}

func TestNewLineRequest(t *testing.T) {
	t.Run("should create valid request", func(t *testing.T) {
		itemID := kernel.NewUUID()

		request, err := commands.NewLineRequest(itemID, 3)

		require.NoError(t, err)
		require.NoError(t, request.Validate())
		assert.True(t, request.ItemID().IsEqual(itemID))
		assert.Equal(t, 3, request.Amount())
	})

	t.Run("should reject non-positive amount", func(t *testing.T) {
		for _, amount := range []int{0, -1} {
			_, err := commands.NewLineRequest(kernel.NewUUID(), amount)

			require.Error(t, err)
			require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		}
	})

	t.Run("should reject invalid item ID", func(t *testing.T) {
		_, err := commands.NewLineRequest(kernel.UUID{}, 1)

		require.Error(t, err)
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var request commands.LineRequest

		require.ErrorIs(t, request.Validate(), commands.ErrLineRequestIsNotConstructed)
	})
}

func TestNewCreateOrderCommand(t *testing.T) {
	t.Run("should create valid command", func(t *testing.T) {
		orderID := kernel.NewUUID()
		lines := validLineRequests(t)

		cmd, err := commands.NewCreateOrderCommand(orderID, "alice", lines, 1.50)

		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		assert.True(t, cmd.OrderID().IsEqual(orderID))
		assert.Equal(t, "alice", cmd.Name())
		assert.Len(t, cmd.Lines(), 2)
		assert.InDelta(t, 1.50, cmd.Tip(), 1e-9)
	})

	t.Run("should allow empty lines and zero tip", func(t *testing.T) {
		cmd, err := commands.NewCreateOrderCommand(kernel.NewUUID(), "alice", nil, 0)

		require.NoError(t, err)
		assert.Empty(t, cmd.Lines())
	})

	t.Run("should fail with invalid parameters", func(t *testing.T) {
		lines := validLineRequests(t)

		_, err := commands.NewCreateOrderCommand(kernel.UUID{}, "alice", lines, 0)
		require.Error(t, err)

		_, err = commands.NewCreateOrderCommand(kernel.NewUUID(), "", lines, 0)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)

		_, err = commands.NewCreateOrderCommand(kernel.NewUUID(), "alice",
			[]commands.LineRequest{{}}, 0)
		require.ErrorIs(t, err, commands.ErrLineRequestIsNotConstructed)

		_, err = commands.NewCreateOrderCommand(kernel.NewUUID(), "alice", lines, -1)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var cmd commands.CreateOrderCommand

		require.ErrorIs(t, cmd.Validate(), commands.ErrCreateOrderCommandIsNotConstructed)
	})
}
