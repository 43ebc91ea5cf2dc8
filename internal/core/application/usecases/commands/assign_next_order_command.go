package commands

import (
	"errors"

	"fulfillment/internal/pkg/guard"
)

var ErrAssignNextOrderCommandIsNotConstructed = errors.New(
	"AssignNextOrderCommand must be created via NewAssignNextOrderCommand constructor",
)

// AssignNextOrderCommand assigns the highest placed pending order that nobody owns yet.
//
// Example:
//
//	cmd := NewAssignNextOrderCommand()
//	handler := NewAssignNextOrderCommandHandler(uowFactory)
//	_, err := handler.Handle(ctx, cmd)
//	if errors.Is(err, ErrNoOrderFound) {
//	    // every pending order already has a handler
//	}
type AssignNextOrderCommand struct {
	guard guard.ConstructorGuard
}

func NewAssignNextOrderCommand() AssignNextOrderCommand {
	return AssignNextOrderCommand{
		guard: guard.NewConstructorGuard(),
	}
}

func (c AssignNextOrderCommand) Validate() error {
	return c.guard.Validate(ErrAssignNextOrderCommandIsNotConstructed)
}
