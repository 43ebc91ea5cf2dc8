package commands

import (
	"context"

	"fulfillment/internal/core/domain/model/staff"
)

// CreateHandlerCommandHandler appends a handler to the roster.
//
// Example:
//
//	handler := NewCreateHandlerCommandHandler(uowFactory)
//	cmd, _ := NewCreateHandlerCommand(kernel.NewUUID(), "German Gomez", "Direction", 15, 6)
//	if err := handler.Handle(ctx, cmd); errors.Is(err, errs.ErrObjectAlreadyExists) {
//	    // the name is already on the roster
//	}
type CreateHandlerCommandHandler struct {
	uowFactory HandlerUoWFactory
}

func NewCreateHandlerCommandHandler(uowFactory HandlerUoWFactory) CreateHandlerCommandHandler {
	return CreateHandlerCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h CreateHandlerCommandHandler) Handle(ctx context.Context, cmd CreateHandlerCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	handler, err := staff.NewHandler(cmd.HandlerID(), cmd.Name(), cmd.Role(), cmd.Capacity(), cmd.AssignedCount())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	// Roster rank is derived from the current maximum.
	if err = uow.LockBoard(ctx); err != nil {
		return err
	}

	if err = uow.HandlerRepository().Add(ctx, handler); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
