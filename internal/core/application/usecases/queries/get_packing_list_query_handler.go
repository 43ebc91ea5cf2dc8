package queries

import (
	"context"
	"time"

	"fulfillment/internal/core/domain/model/order"

	"gorm.io/gorm"
)

type GetPackingListQueryHandler struct {
	db    *gorm.DB
	clock func() time.Time
}

func NewGetPackingListQueryHandler(db *gorm.DB, clock func() time.Time) GetPackingListQueryHandler {
	return GetPackingListQueryHandler{db: db, clock: nowFrom(clock)}
}

func (h GetPackingListQueryHandler) Handle(ctx context.Context, query GetPackingListQuery) ([]OrderView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	board, err := readBoard(ctx, h.db, selectOrderViews+`
		WHERE o.status = ?
		ORDER BY o.position, o.id
		LIMIT ?
	`, order.Pending.String(), query.Limit())
	if err != nil {
		return nil, err
	}

	now := h.clock()
	views := make([]OrderView, 0, len(board.orders))
	for _, o := range board.orders {
		views = append(views, newOrderView(o, now, board.handlerNames[o.ID().String()]))
	}

	return views, nil
}
