package commands

import (
	"context"
)

// RecomputePrioritiesCommandHandler refreshes every score against the clock.
// Manual ordering is discarded.
type RecomputePrioritiesCommandHandler struct {
	uowFactory UoWFactory
	clock      Clock
}

func NewRecomputePrioritiesCommandHandler(uowFactory UoWFactory, clock Clock) RecomputePrioritiesCommandHandler {
	return RecomputePrioritiesCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

func (h RecomputePrioritiesCommandHandler) Handle(ctx context.Context, cmd RecomputePrioritiesCommand) error {
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
	store, err := loadBoard(ctx, uow, orderRepo, h.clock)
	if err != nil {
		return err
	}

	store.RecomputeAll()

	if err = orderRepo.SaveSequence(ctx, store.Orders()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
