package services_test

import (
	"testing"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/staff"
	"fulfillment/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestOrder(t *testing.T) *order.Order {
	t.Helper()
	id, _ := kernel.NewOrderID(1)
	product, _ := kernel.NewProduct("Set LeBoret No. 1")
	zone, _ := kernel.NewZone(kernel.ZoneSur)

	o, err := order.NewOrder(id, product, zone, time.Now().Add(-48*time.Hour), 1)
	require.NoError(t, err)
	return o
}

func newTestHandler(t *testing.T, name string, capacity, assigned int) *staff.Handler {
	t.Helper()
	h, err := staff.NewHandler(kernel.NewUUID(), name, "Operations", capacity, assigned)
	require.NoError(t, err)
	return h
}

func TestAssignmentPolicy_Assign(t *testing.T) {
	policy := services.NewAssignmentPolicy()

	t.Run("should pick the least loaded handler", func(t *testing.T) {
		german := newTestHandler(t, "German Gomez", 15, 6)
		valeria := newTestHandler(t, "Valeria Elizondo", 10, 8)
		o := newTestOrder(t)

		result, err := policy.Assign(o, []*staff.Handler{german, valeria})

		require.NoError(t, err)
		assert.True(t, result.IsEqual(german))
		assert.Equal(t, 7, german.AssignedCount())
		assert.Equal(t, 8, valeria.AssignedCount(), "other handlers are untouched")
		assert.True(t, o.Handler().IsEqual(german.ID()))
	})

	t.Run("should not depend on roster position", func(t *testing.T) {
		busy := newTestHandler(t, "Busy", 4, 3)
		idle := newTestHandler(t, "Idle", 4, 1)

		result, err := policy.Assign(newTestOrder(t), []*staff.Handler{busy, idle})

		require.NoError(t, err)
		assert.True(t, result.IsEqual(idle))
		assert.Equal(t, 3, busy.AssignedCount())
	})

	t.Run("should pick the first handler on a tie", func(t *testing.T) {
		first := newTestHandler(t, "First", 15, 6)
		second := newTestHandler(t, "Second", 10, 4)

		result, err := policy.Assign(newTestOrder(t), []*staff.Handler{first, second})

		require.NoError(t, err)
		assert.True(t, result.IsEqual(first))
		assert.Equal(t, 4, second.AssignedCount())
	})

	t.Run("should spread consecutive orders", func(t *testing.T) {
		a := newTestHandler(t, "A", 2, 0)
		b := newTestHandler(t, "B", 2, 0)
		roster := []*staff.Handler{a, b}

		for range 4 {
			_, err := policy.Assign(newTestOrder(t), roster)
			require.NoError(t, err)
		}

		assert.Equal(t, 2, a.AssignedCount())
		assert.Equal(t, 2, b.AssignedCount())
	})

	t.Run("should reassign and leave the previous owner's count", func(t *testing.T) {
		a := newTestHandler(t, "A", 10, 5)
		b := newTestHandler(t, "B", 10, 0)
		o := newTestOrder(t)
		require.NoError(t, o.AssignTo(a.ID()))

		result, err := policy.Assign(o, []*staff.Handler{a, b})

		require.NoError(t, err)
		assert.True(t, result.IsEqual(b))
		assert.Equal(t, 5, a.AssignedCount())
		assert.True(t, o.Handler().IsEqual(b.ID()))
	})

	t.Run("should fail on an empty roster", func(t *testing.T) {
		o := newTestOrder(t)

		result, err := policy.Assign(o, nil)

		require.ErrorIs(t, err, services.ErrNoHandlersAvailable)
		assert.Nil(t, result)
		assert.Nil(t, o.Handler())
	})

	t.Run("should reject an invalid order", func(t *testing.T) {
		h := newTestHandler(t, "A", 10, 0)

		_, err := policy.Assign(nil, []*staff.Handler{h})

		require.ErrorIs(t, err, order.ErrOrderIsNotConstructed)
		assert.Zero(t, h.AssignedCount())
	})

	t.Run("should reject an invalid handler", func(t *testing.T) {
		h := newTestHandler(t, "A", 10, 0)

		_, err := policy.Assign(newTestOrder(t), []*staff.Handler{h, {}})

		require.ErrorIs(t, err, staff.ErrHandlerIsNotConstructed)
		assert.Zero(t, h.AssignedCount())
	})
}
