package order

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/retouchhive/office-backend/internal/domain/order"
)

func TestStatusLocks(t *testing.T) {
	tests := []struct {
		status order.Status
		locks  bool
	}{
		{order.StatusPending, false},
		{order.StatusReviewing, false},
		{order.StatusInProgress, false},
		{order.StatusReadyToQC, false},
		{order.StatusReadyToUpload, false},
		{order.StatusDelivered, false},
		{order.StatusHold, false},
		{order.StatusCompleted, true},
		{order.StatusCancel, true},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			assert.Equal(t, tt.locks, tt.status.Locks())
		})
	}
}

func TestCanTransition(t *testing.T) {
	t.Run("unlocked order accepts any known status", func(t *testing.T) {
		o := order.Order{OrderStatus: order.StatusPending}

		for _, target := range []order.Status{
			order.StatusReviewing, order.StatusInProgress, order.StatusReadyToQC,
			order.StatusReadyToUpload, order.StatusCompleted, order.StatusDelivered,
			order.StatusHold, order.StatusCancel, order.StatusPending,
		} {
			assert.NoError(t, o.CanTransition(target), "target %s", target)
		}
	})

	t.Run("locked order rejects every change", func(t *testing.T) {
		o := order.Order{OrderStatus: order.StatusCompleted, IsLocked: true}

		for _, target := range []order.Status{
			order.StatusPending, order.StatusReviewing, order.StatusDelivered, order.StatusHold,
		} {
			assert.ErrorIs(t, o.CanTransition(target), order.ErrOrderLocked, "target %s", target)
		}
	})

	t.Run("unknown status rejected before lock check", func(t *testing.T) {
		o := order.Order{OrderStatus: order.StatusCompleted, IsLocked: true}
		assert.ErrorIs(t, o.CanTransition(order.Status("Shipped")), order.ErrUnknownStatus)
	})
}
