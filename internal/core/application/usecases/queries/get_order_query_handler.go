package queries

import (
	"context"
	"time"

	"fulfillment/internal/pkg/errs"

	"gorm.io/gorm"
)

type GetOrderQueryHandler struct {
	db    *gorm.DB
	clock func() time.Time
}

func NewGetOrderQueryHandler(db *gorm.DB, clock func() time.Time) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db, clock: nowFrom(clock)}
}

// Handle returns the order view or an ObjectNotFoundError.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (OrderView, error) {
	if err := query.Validate(); err != nil {
		return OrderView{}, err
	}

	id := query.OrderID().String()
	board, err := readBoard(ctx, h.db, selectOrderViews+`
		WHERE o.id = ?
	`, id)
	if err != nil {
		return OrderView{}, err
	}

	if len(board.orders) == 0 {
		return OrderView{}, errs.NewObjectNotFoundError("orderId", id)
	}

	return newOrderView(board.orders[0], h.clock(), board.handlerNames[id]), nil
}
