package queries

import (
	"context"
	"time"

	"fulfillment/internal/core/domain/model/orderstore"

	"gorm.io/gorm"
)

// ListOrdersQueryHandler reads the persisted sequence and replays it through an
// order store so that filtering matches the write side exactly.
type ListOrdersQueryHandler struct {
	db    *gorm.DB
	clock func() time.Time
}

// NewListOrdersQueryHandler creates the handler. A nil clock means time.Now.
func NewListOrdersQueryHandler(db *gorm.DB, clock func() time.Time) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{db: db, clock: nowFrom(clock)}
}

func (h ListOrdersQueryHandler) Handle(ctx context.Context, query ListOrdersQuery) ([]OrderView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	board, err := readBoard(ctx, h.db, selectOrderViews+`
		ORDER BY o.position, o.id
	`)
	if err != nil {
		return nil, err
	}

	store := orderstore.New(h.clock)
	if err = store.Restore(board.orders); err != nil {
		return nil, err
	}

	shippingDays := make(map[string]int, len(board.orders))
	for _, o := range board.orders {
		shippingDays[o.ID().String()] = o.Zone().ShippingDays()
	}

	views := make([]OrderView, 0, store.Len())
	for snapshot := range store.List(query.Filter()) {
		id := snapshot.ID.String()
		views = append(views, viewOf(snapshot, shippingDays[id], board.handlerNames[id]))

		if query.Limit() > 0 && len(views) == query.Limit() {
			break
		}
	}

	return views, nil
}
