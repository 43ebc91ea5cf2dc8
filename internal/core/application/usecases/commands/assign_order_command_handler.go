package commands

import (
	"context"

	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/services"
	"fulfillment/internal/core/ports"
)

// AssignOrderCommandHandler hands one order to the least loaded handler and
// saves both the order and the handler in one transaction.
//
// Example:
//
//	handler := NewAssignOrderCommandHandler(uowFactory)
//	result, err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, errs.ErrObjectNotFound):
//	    // no such order
//	case errors.Is(err, services.ErrNoHandlersAvailable):
//	    // the roster is empty
//	}
type AssignOrderCommandHandler struct {
	uowFactory UoWFactory
}

func NewAssignOrderCommandHandler(uowFactory UoWFactory) AssignOrderCommandHandler {
	return AssignOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h AssignOrderCommandHandler) Handle(ctx context.Context, cmd AssignOrderCommand) (AssignOrderResult, error) {
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

	target, err := store.Get(cmd.OrderID())
	if err != nil {
		return AssignOrderResult{}, err
	}

	result, err := assign(ctx, uow, orderRepo, target)
	if err != nil {
		return AssignOrderResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return AssignOrderResult{}, err
	}

	return result, nil
}

// assign runs the assignment policy over the roster and persists the outcome.
func assign(ctx context.Context, uow UoW, orderRepo ports.OrderRepository, target *order.Order) (AssignOrderResult, error) {
	handlerRepo := uow.HandlerRepository()

	roster, err := handlerRepo.GetAll(ctx)
	if err != nil {
		return AssignOrderResult{}, err
	}

	chosen, err := services.NewAssignmentPolicy().Assign(target, roster)
	if err != nil {
		return AssignOrderResult{}, err
	}

	if err = orderRepo.Update(ctx, target); err != nil {
		return AssignOrderResult{}, err
	}

	if err = handlerRepo.Update(ctx, chosen); err != nil {
		return AssignOrderResult{}, err
	}

	return AssignOrderResult{
		OrderID:     target.ID(),
		HandlerID:   chosen.ID(),
		HandlerName: chosen.Name(),
	}, nil
}
