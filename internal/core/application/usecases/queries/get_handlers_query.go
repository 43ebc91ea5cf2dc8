package queries

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrGetHandlersQueryIsNotConstructed = errors.New(
	"GetHandlersQuery must be created via NewGetHandlersQuery constructor",
)

// GetHandlersQuery reads the roster in the order handlers were added.
type GetHandlersQuery struct {
	guard guard.ConstructorGuard
}

func NewGetHandlersQuery() GetHandlersQuery {
	return GetHandlersQuery{guard: guard.NewConstructorGuard()}
}

func (q GetHandlersQuery) Validate() error {
	return q.guard.Validate(ErrGetHandlersQueryIsNotConstructed)
}

// HandlerView is one roster entry with its current load.
type HandlerView struct {
	ID            kernel.UUID
	Name          string
	Role          string
	Capacity      int
	AssignedCount int
	LoadRatio     float64
}
