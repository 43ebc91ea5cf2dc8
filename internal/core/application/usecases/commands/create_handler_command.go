package commands

import (
	"errors"
	"strings"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var (
	ErrCreateHandlerCommandIsNotConstructed = errors.New(
		"CreateHandlerCommand must be created via NewCreateHandlerCommand constructor",
	)
	ErrNameIsRequired          = errs.NewValueIsRequiredError("name")
	ErrRoleIsRequired          = errs.NewValueIsRequiredError("role")
	ErrCapacityIsInvalid       = errs.NewValueIsInvalidError("capacity must be greater than 0")
	ErrAssignedCountIsNegative = errs.NewValueIsInvalidError("assigned count must not be negative")
)

// CreateHandlerCommand adds a member to the fulfillment team.
//
// Example:
//
//	cmd, err := NewCreateHandlerCommand(kernel.NewUUID(), "Valeria Elizondo", "Operations", 10, 0)
//	if err != nil {
//	    return fmt.Errorf("invalid handler data: %w", err)
//	}
type CreateHandlerCommand struct { //nolint:recvcheck //using for validation
	handlerID     kernel.UUID
	name          string
	role          string
	capacity      int
	assignedCount int

	guard guard.ConstructorGuard
}

// NewCreateHandlerCommand validates the roster entry. assignedCount lets a
// handler join with the workload they already carry.
func NewCreateHandlerCommand(
	handlerID kernel.UUID,
	name, role string,
	capacity, assignedCount int,
) (CreateHandlerCommand, error) {
	cmd := CreateHandlerCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setHandlerID(handlerID),
		cmd.setName(name),
		cmd.setRole(role),
		cmd.setCapacity(capacity),
		cmd.setAssignedCount(assignedCount),
	); err != nil {
		return CreateHandlerCommand{}, err
	}

	return cmd, nil
}

func (c CreateHandlerCommand) Validate() error {
	return c.guard.Validate(ErrCreateHandlerCommandIsNotConstructed)
}

func (c CreateHandlerCommand) HandlerID() kernel.UUID {
	return c.handlerID
}

func (c CreateHandlerCommand) Name() string {
	return c.name
}

func (c CreateHandlerCommand) Role() string {
	return c.role
}

func (c CreateHandlerCommand) Capacity() int {
	return c.capacity
}

func (c CreateHandlerCommand) AssignedCount() int {
	return c.assignedCount
}

func (c *CreateHandlerCommand) setHandlerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.handlerID = id
	return nil
}

func (c *CreateHandlerCommand) setName(name string) error {
	if strings.TrimSpace(name) == "" {
		return ErrNameIsRequired
	}
	c.name = name
	return nil
}

func (c *CreateHandlerCommand) setRole(role string) error {
	if strings.TrimSpace(role) == "" {
		return ErrRoleIsRequired
	}
	c.role = role
	return nil
}

func (c *CreateHandlerCommand) setCapacity(capacity int) error {
	if capacity <= 0 {
		return ErrCapacityIsInvalid
	}
	c.capacity = capacity
	return nil
}

func (c *CreateHandlerCommand) setAssignedCount(count int) error {
	if count < 0 {
		return ErrAssignedCountIsNegative
	}
	c.assignedCount = count
	return nil
}
