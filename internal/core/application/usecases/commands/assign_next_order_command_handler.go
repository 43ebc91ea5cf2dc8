package commands

import (
	"context"
	"errors"

	"fulfillment/internal/core/domain/model/order"
)

var ErrNoOrderFound = errors.New("no order found")

// AssignNextOrderCommandHandler walks the board from the top and assigns the
// first pending, unassigned order. Returns ErrNoOrderFound when there is none.
type AssignNextOrderCommandHandler struct {
	uowFactory UoWFactory
}

func NewAssignNextOrderCommandHandler(uowFactory UoWFactory) AssignNextOrderCommandHandler {
	return AssignNextOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h AssignNextOrderCommandHandler) Handle(ctx context.Context, cmd AssignNextOrderCommand) (AssignOrderResult, error) {
	if err := cmd.Validate(); err != nil {
		return AssignOrderResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return AssignOrderResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	store, err := loadBoard(ctx, uow, orderRepo, nil)
	if err != nil {
		return AssignOrderResult{}, err
	}

	var next *order.Order
	for _, o := range store.Orders() {
		if o.Status() == order.Pending && !o.IsAssigned() {
			next = o
			break
		}
	}
	if next == nil {
		return AssignOrderResult{}, ErrNoOrderFound
	}

	result, err := assign(ctx, uow, orderRepo, next)
	if err != nil {
		return AssignOrderResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return AssignOrderResult{}, err
	}

	return result, nil
}
