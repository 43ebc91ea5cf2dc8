package orderstore_test

import (
	"slices"
	"testing"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/orderstore"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2024, time.March, 10, 12, 0, 0, 0, time.UTC)

func clock() time.Time { return now }

func newOrder(t *testing.T, seq, ageDays int, zone, product string) *order.Order {
	t.Helper()
	id, err := kernel.NewOrderID(seq)
	require.NoError(t, err)
	z, err := kernel.NewZone(zone)
	require.NoError(t, err)
	p, err := kernel.NewProduct(product)
	require.NoError(t, err)

	o, err := order.NewOrder(id, p, z, now.Add(-time.Duration(ageDays)*24*time.Hour), 1)
	require.NoError(t, err)
	return o
}

func ids(store *orderstore.Store) []string {
	out := make([]string, 0, store.Len())
	for _, o := range store.Orders() {
		out = append(out, o.ID().String())
	}
	return out
}

func orderID(t *testing.T, raw string) kernel.OrderID {
	t.Helper()
	id, err := kernel.OrderIDFromString(raw)
	require.NoError(t, err)
	return id
}

// restored builds a store holding ORD-0001, ORD-0002, ORD-0005, ORD-0009 in that order.
func restored(t *testing.T) *orderstore.Store {
	t.Helper()
	store := orderstore.New(clock)
	require.NoError(t, store.Restore([]*order.Order{
		newOrder(t, 1, 4, kernel.ZoneSur, "Set LeBoret No. 1"),
		newOrder(t, 2, 3, kernel.ZoneCentro, "Tundra Eau de Parfum"),
		newOrder(t, 5, 1, kernel.ZoneNorte, "Sahara Eau de Parfum"),
		newOrder(t, 9, 0, kernel.ZoneNorte, "Manhattan Eau de Parfum"),
	}))
	return store
}

func TestStore_Seed(t *testing.T) {
	t.Run("should score and sort by descending score", func(t *testing.T) {
		store := orderstore.New(clock)

		err := store.Seed([]*order.Order{
			newOrder(t, 1, 0, kernel.ZoneNorte, "Tundra Eau de Parfum"),
			newOrder(t, 2, 5, kernel.ZoneSur, "Set LeBoret No. 1"),
			newOrder(t, 3, 2, kernel.ZoneCentro, "Sahara Eau de Parfum"),
			newOrder(t, 4, 1, kernel.ZoneSur, "Manhattan Eau de Parfum"),
			newOrder(t, 5, 3, kernel.ZoneBajioOccidente, "Set LeBoret x"),
		})

		require.NoError(t, err)
		assert.Equal(t, []string{"ORD-0002", "ORD-0005", "ORD-0003", "ORD-0004", "ORD-0001"}, ids(store),
			"equal scores keep input order")
		assert.False(t, store.Dirty())
		assert.Equal(t, 5, store.Len())
	})

	t.Run("should replace previous contents", func(t *testing.T) {
		store := restored(t)

		require.NoError(t, store.Seed([]*order.Order{newOrder(t, 42, 1, kernel.ZoneNorte, "Tundra Eau de Parfum")}))

		assert.Equal(t, []string{"ORD-0042"}, ids(store))
	})

	t.Run("should reject duplicates and keep contents", func(t *testing.T) {
		store := restored(t)
		before := ids(store)

		err := store.Seed([]*order.Order{
			newOrder(t, 3, 1, kernel.ZoneNorte, "Tundra Eau de Parfum"),
			newOrder(t, 3, 2, kernel.ZoneNorte, "Tundra Eau de Parfum"),
		})

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "duplicate order id ORD-0003")
		assert.Equal(t, before, ids(store))
	})

	t.Run("should reject nil orders", func(t *testing.T) {
		store := orderstore.New(clock)

		err := store.Seed([]*order.Order{nil})

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Zero(t, store.Len())
	})
}

func TestStore_Restore(t *testing.T) {
	t.Run("unsorted sequence is dirty", func(t *testing.T) {
		store := orderstore.New(clock)
		low := newOrder(t, 1, 0, kernel.ZoneNorte, "Tundra Eau de Parfum")
		high := newOrder(t, 2, 5, kernel.ZoneSur, "Set LeBoret No. 1")
		low.RefreshPriority(now)
		high.RefreshPriority(now)

		require.NoError(t, store.Restore([]*order.Order{low, high}))

		assert.Equal(t, []string{"ORD-0001", "ORD-0002"}, ids(store))
		assert.True(t, store.Dirty())
	})

	t.Run("sorted sequence is clean", func(t *testing.T) {
		store := orderstore.New(clock)
		high := newOrder(t, 2, 5, kernel.ZoneSur, "Set LeBoret No. 1")
		high.RefreshPriority(now)

		require.NoError(t, store.Restore([]*order.Order{high, newOrder(t, 1, 0, kernel.ZoneNorte, "Tundra")}))

		assert.False(t, store.Dirty())
		assert.Equal(t, 70, store.Orders()[0].PriorityScore(), "cached score is kept")
	})
}

func TestStore_RecomputeAll(t *testing.T) {
	store := restored(t)
	require.NoError(t, store.Reorder(orderID(t, "ORD-0009"), orderID(t, "ORD-0001")))
	require.True(t, store.Dirty())

	store.RecomputeAll()

	orders := store.Orders()
	for i := 0; i+1 < len(orders); i++ {
		assert.GreaterOrEqual(t, orders[i].PriorityScore(), orders[i+1].PriorityScore())
	}
	assert.Equal(t, "ORD-0001", orders[0].ID().String())
	assert.Equal(t, 60, orders[0].PriorityScore())
	assert.False(t, store.Dirty())
}

func TestStore_UpdateStatus(t *testing.T) {
	t.Run("should change only the status", func(t *testing.T) {
		store := restored(t)
		store.RecomputeAll()
		before := ids(store)
		target, err := store.Get(orderID(t, "ORD-0002"))
		require.NoError(t, err)
		score := target.PriorityScore()

		require.NoError(t, store.UpdateStatus(orderID(t, "ORD-0002"), order.Processing))

		assert.Equal(t, order.Processing, target.Status())
		assert.Equal(t, score, target.PriorityScore())
		assert.Equal(t, before, ids(store))
	})

	t.Run("unknown id is not found and store is unchanged", func(t *testing.T) {
		store := restored(t)
		before := ids(store)

		err := store.UpdateStatus(orderID(t, "ORD-9999"), order.Processing)

		require.ErrorIs(t, err, errs.ErrObjectNotFound)
		assert.Equal(t, before, ids(store))
		for _, o := range store.Orders() {
			assert.Equal(t, order.Pending, o.Status())
		}
	})

	t.Run("invalid status is rejected", func(t *testing.T) {
		store := restored(t)

		err := store.UpdateStatus(orderID(t, "ORD-0001"), order.Status("shipped"))

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestStore_Reorder(t *testing.T) {
	t.Run("moves an order up the list", func(t *testing.T) {
		store := restored(t)

		require.NoError(t, store.Reorder(orderID(t, "ORD-0005"), orderID(t, "ORD-0002")))

		assert.Equal(t, []string{"ORD-0001", "ORD-0005", "ORD-0002", "ORD-0009"}, ids(store))
		assert.True(t, store.Dirty())
	})

	t.Run("moves an order down the list", func(t *testing.T) {
		store := restored(t)

		require.NoError(t, store.Reorder(orderID(t, "ORD-0001"), orderID(t, "ORD-0009")))

		assert.Equal(t, []string{"ORD-0002", "ORD-0005", "ORD-0001", "ORD-0009"}, ids(store))
	})

	t.Run("moving before itself is a no-op", func(t *testing.T) {
		store := restored(t)
		before := ids(store)
		wasDirty := store.Dirty()

		require.NoError(t, store.Reorder(orderID(t, "ORD-0002"), orderID(t, "ORD-0002")))

		assert.Equal(t, before, ids(store))
		assert.Equal(t, wasDirty, store.Dirty())
	})

	t.Run("preserves relative order of the rest", func(t *testing.T) {
		store := restored(t)
		moved := orderID(t, "ORD-0009")
		others := slices.DeleteFunc(ids(store), func(id string) bool { return id == moved.String() })

		require.NoError(t, store.Reorder(moved, orderID(t, "ORD-0002")))

		after := ids(store)
		idx := slices.Index(after, "ORD-0009")
		assert.Equal(t, "ORD-0002", after[idx+1])
		assert.Equal(t, others, slices.DeleteFunc(slices.Clone(after), func(id string) bool { return id == moved.String() }))
	})

	t.Run("unknown ids are not found", func(t *testing.T) {
		store := restored(t)
		before := ids(store)

		err := store.Reorder(orderID(t, "ORD-0404"), orderID(t, "ORD-0002"))
		require.ErrorIs(t, err, errs.ErrObjectNotFound)

		err = store.Reorder(orderID(t, "ORD-0002"), orderID(t, "ORD-0404"))
		require.ErrorIs(t, err, errs.ErrObjectNotFound)

		assert.Equal(t, before, ids(store))
	})
}

func TestStore_List(t *testing.T) {
	store := orderstore.New(clock)
	require.NoError(t, store.Seed([]*order.Order{
		newOrder(t, 1, 5, kernel.ZoneSur, "Set LeBoret No. 1"),
		newOrder(t, 2, 7, kernel.ZoneNorte, "Tundra Eau de Parfum"),
		newOrder(t, 3, 2, kernel.ZoneCentro, "Tundra Eau de Parfum"),
	}))

	collect := func(f order.Filter) []string {
		var out []string
		for snap := range store.List(f) {
			out = append(out, snap.ID.String())
		}
		return out
	}

	assert.Equal(t, []string{"ORD-0001", "ORD-0002", "ORD-0003"}, collect(order.All))
	assert.Equal(t, []string{"ORD-0001", "ORD-0002"}, collect(order.Priority))
	assert.Equal(t, []string{"ORD-0003"}, collect(order.Standard))

	t.Run("is a snapshot at call time and restartable", func(t *testing.T) {
		seq := store.List(order.All)
		require.NoError(t, store.UpdateStatus(orderID(t, "ORD-0001"), order.Ready))

		for range 2 {
			var statuses []order.Status
			for snap := range seq {
				statuses = append(statuses, snap.Status)
			}
			assert.Equal(t, []order.Status{order.Pending, order.Pending, order.Pending}, statuses)
		}
	})

	t.Run("supports early break", func(t *testing.T) {
		count := 0
		for range store.List(order.All) {
			count++
			break
		}
		assert.Equal(t, 1, count)
	})
}

func TestStore_Get(t *testing.T) {
	store := restored(t)

	o, err := store.Get(orderID(t, "ORD-0005"))
	require.NoError(t, err)
	assert.Equal(t, "ORD-0005", o.ID().String())

	_, err = store.Get(orderID(t, "ORD-0006"))
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}
