package commands

import (
	"context"
	"time"

	"fulfillment/internal/core/domain/model/orderstore"
	"fulfillment/internal/core/ports"
)

// Clock supplies the current time to handlers that score orders.
type Clock func() time.Time

// loadBoard takes the board lock and rebuilds the store from the persisted sequence.
func loadBoard(
	ctx context.Context,
	locker BoardLocker,
	orderRepo ports.OrderRepository,
	clock Clock,
) (*orderstore.Store, error) {
	if err := locker.LockBoard(ctx); err != nil {
		return nil, err
	}

	orders, err := orderRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	store := orderstore.New(clock)
	if err = store.Restore(orders); err != nil {
		return nil, err
	}

	return store, nil
}
