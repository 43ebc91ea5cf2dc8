package commands

import (
	"errors"

	"fulfillment/internal/pkg/guard"
)

var ErrRecomputePrioritiesCommandIsNotConstructed = errors.New(
	"RecomputePrioritiesCommand must be created via NewRecomputePrioritiesCommand constructor",
)

// RecomputePrioritiesCommand rescores every order and puts the board back in score order.
type RecomputePrioritiesCommand struct {
	guard guard.ConstructorGuard
}

func NewRecomputePrioritiesCommand() RecomputePrioritiesCommand {
	return RecomputePrioritiesCommand{
		guard: guard.NewConstructorGuard(),
	}
}

func (c RecomputePrioritiesCommand) Validate() error {
	return c.guard.Validate(ErrRecomputePrioritiesCommandIsNotConstructed)
}
