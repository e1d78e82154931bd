package order_test

import (
	"testing"

	"storefront/internal/core/domain/model/order"
	"storefront/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlow(t *testing.T) {
	t.Run("flow_matches_wire_contract", func(t *testing.T) {
		assert.Equal(t, []order.Status{
			"Order Received", "Preparing", "Out for Delivery", "Delivered",
		}, order.Flow())
	})

	t.Run("flow_returns_a_copy", func(t *testing.T) {
		flow := order.Flow()
		flow[0] = "Mutated"
		assert.Equal(t, order.Received, order.Flow()[0])
	})
}

func TestParseStatus(t *testing.T) {
	t.Run("accepts_every_flow_state", func(t *testing.T) {
		for _, want := range order.Flow() {
			got, err := order.ParseStatus(string(want))
			require.NoError(t, err)
			assert.Equal(t, want, got)
		}
	})

	t.Run("rejects_unknown_strings", func(t *testing.T) {
		for _, raw := range []string{"", "Cancelled", "order received", "DELIVERED"} {
			_, err := order.ParseStatus(raw)
			require.ErrorIs(t, err, errs.ErrValueIsInvalid, "raw=%q", raw)
		}
	})
}

func TestStatus_Rank(t *testing.T) {
	assert.Equal(t, 0, order.Received.Rank())
	assert.Equal(t, 1, order.Preparing.Rank())
	assert.Equal(t, 2, order.OutForDelivery.Rank())
	assert.Equal(t, 3, order.Delivered.Rank())
	assert.Equal(t, -1, order.Status("Cancelled").Rank())
}

func TestStatus_Next(t *testing.T) {
	t.Run("walks_the_full_flow", func(t *testing.T) {
		next, ok := order.Received.Next()
		require.True(t, ok)
		assert.Equal(t, order.Preparing, next)

		next, ok = order.Preparing.Next()
		require.True(t, ok)
		assert.Equal(t, order.OutForDelivery, next)

		next, ok = order.OutForDelivery.Next()
		require.True(t, ok)
		assert.Equal(t, order.Delivered, next)
	})

	t.Run("terminal_status_has_no_next", func(t *testing.T) {
		_, ok := order.Delivered.Next()
		assert.False(t, ok)
		assert.True(t, order.Delivered.IsTerminal())
	})

	t.Run("unknown_status_has_no_next", func(t *testing.T) {
		_, ok := order.Status("Cancelled").Next()
		assert.False(t, ok)
	})
}

func TestStatus_Transition(t *testing.T) {
	t.Run("forward_moves_are_legal", func(t *testing.T) {
		got, err := order.Received.Transition(order.Preparing)
		require.NoError(t, err)
		assert.Equal(t, order.Preparing, got)

		// Skipping stages forward is allowed.
		got, err = order.Received.Transition(order.Delivered)
		require.NoError(t, err)
		assert.Equal(t, order.Delivered, got)
	})

	t.Run("same_rank_is_an_idempotent_noop", func(t *testing.T) {
		got, err := order.Preparing.Transition(order.Preparing)
		require.NoError(t, err)
		assert.Equal(t, order.Preparing, got)
	})

	t.Run("backward_moves_are_rejected", func(t *testing.T) {
		_, err := order.Preparing.Transition(order.Received)
		require.ErrorIs(t, err, errs.ErrIllegalTransition)

		_, err = order.Delivered.Transition(order.OutForDelivery)
		require.ErrorIs(t, err, errs.ErrIllegalTransition)
	})

	t.Run("unknown_statuses_are_invalid_input", func(t *testing.T) {
		_, err := order.Received.Transition(order.Status("Cancelled"))
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)

		_, err = order.Status("").Transition(order.Preparing)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}
