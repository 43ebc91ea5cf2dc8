package commands

import (
	"context"
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/orderstore"
	"fulfillment/internal/pkg/errs"
)

// SeedOrdersCommandHandler loads a fresh set of orders onto the board.
// Every referenced handler must already be on the roster. Orders are scored
// and sorted before being saved, replacing whatever the board held.
type SeedOrdersCommandHandler struct {
	uowFactory UoWFactory
	clock      Clock
}

func NewSeedOrdersCommandHandler(uowFactory UoWFactory, clock Clock) SeedOrdersCommandHandler {
	return SeedOrdersCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

func (h SeedOrdersCommandHandler) Handle(ctx context.Context, cmd SeedOrdersCommand) error {
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

	if err := uow.LockBoard(ctx); err != nil {
		return err
	}

	if err := h.checkHandlers(ctx, uow, cmd); err != nil {
		return err
	}

	store := orderstore.New(h.clock)
	if err := store.Seed(cmd.Orders()); err != nil {
		return err
	}

	if err := uow.OrderRepository().Replace(ctx, store.Orders()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

func (h SeedOrdersCommandHandler) checkHandlers(ctx context.Context, uow UoW, cmd SeedOrdersCommand) error {
	handlerRepo := uow.HandlerRepository()
	checked := make(map[kernel.UUID]struct{})

	for _, o := range cmd.Orders() {
		id := o.Handler()
		if id == nil {
			continue
		}
		if _, ok := checked[*id]; ok {
			continue
		}
		_, err := handlerRepo.Get(ctx, *id)
		if errors.Is(err, errs.ErrObjectNotFound) {
			return errs.NewObjectNotFoundErrorWithCause("handlerId", id.String(), err)
		}
		if err != nil {
			return err
		}
		checked[*id] = struct{}{}
	}

	return nil
}
