package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrReorderOrderCommandIsNotConstructed = errors.New(
	"ReorderOrderCommand must be created via NewReorderOrderCommand constructor",
)

// ReorderOrderCommand drops the moved order right in front of another one.
//
// Example:
//
//	moved, _ := kernel.OrderIDFromString("ORD-0005")
//	before, _ := kernel.OrderIDFromString("ORD-0002")
//	cmd, err := NewReorderOrderCommand(moved, before)
type ReorderOrderCommand struct { //nolint:recvcheck //using for validation
	movedID  kernel.OrderID
	beforeID kernel.OrderID

	guard guard.ConstructorGuard
}

func NewReorderOrderCommand(movedID, beforeID kernel.OrderID) (ReorderOrderCommand, error) {
	cmd := ReorderOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setMovedID(movedID),
		cmd.setBeforeID(beforeID),
	); err != nil {
		return ReorderOrderCommand{}, err
	}

	return cmd, nil
}

func (c ReorderOrderCommand) Validate() error {
	return c.guard.Validate(ErrReorderOrderCommandIsNotConstructed)
}

func (c ReorderOrderCommand) MovedID() kernel.OrderID {
	return c.movedID
}

func (c ReorderOrderCommand) BeforeID() kernel.OrderID {
	return c.beforeID
}

func (c *ReorderOrderCommand) setMovedID(id kernel.OrderID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.movedID = id
	return nil
}

func (c *ReorderOrderCommand) setBeforeID(id kernel.OrderID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.beforeID = id
	return nil
}
