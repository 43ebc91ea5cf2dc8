package commands

import (
	"context"
)

// ReorderOrderCommandHandler applies a manual move on the board and saves the
// new sequence. The manual order holds until the next recompute.
type ReorderOrderCommandHandler struct {
	uowFactory UoWFactory
}

func NewReorderOrderCommandHandler(uowFactory UoWFactory) ReorderOrderCommandHandler {
	return ReorderOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h ReorderOrderCommandHandler) Handle(ctx context.Context, cmd ReorderOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	store, err := loadBoard(ctx, uow, orderRepo, nil)
	if err != nil {
		return err
	}

	if err = store.Reorder(cmd.MovedID(), cmd.BeforeID()); err != nil {
		return err
	}

	if err = orderRepo.SaveSequence(ctx, store.Orders()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
