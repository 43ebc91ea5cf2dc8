package commands

import (
	"context"
)

// UpdateOrderStatusCommandHandler changes the status of one order.
// The score and the position on the board stay as they are.
type UpdateOrderStatusCommandHandler struct {
	uowFactory UoWFactory
}

func NewUpdateOrderStatusCommandHandler(uowFactory UoWFactory) UpdateOrderStatusCommandHandler {
	return UpdateOrderStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h UpdateOrderStatusCommandHandler) Handle(ctx context.Context, cmd UpdateOrderStatusCommand) error {
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

	if err = store.UpdateStatus(cmd.OrderID(), cmd.Status()); err != nil {
		return err
	}

	updated, err := store.Get(cmd.OrderID())
	if err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, updated); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
