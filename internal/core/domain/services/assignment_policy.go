package services

import (
	"errors"

	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/staff"
)

// ErrNoHandlersAvailable is returned when an order must be assigned but the roster is empty.
var ErrNoHandlersAvailable = errors.New("no handlers available")

// AssignmentPolicy hands orders to the handler with the lowest load ratio.
//
// Business rules:
//   - The order and every handler must be valid
//   - The handler with the smallest assignedCount/capacity wins
//   - On a tie the handler listed first wins
//   - The winner's assignedCount grows by one; the other handlers are untouched
//
// Example usage:
//
//	policy := services.NewAssignmentPolicy()
//	handler, err := policy.Assign(o, roster)
//	if errors.Is(err, services.ErrNoHandlersAvailable) {
//	    // nobody to give the order to
//	}
type AssignmentPolicy struct{}

func NewAssignmentPolicy() AssignmentPolicy {
	return AssignmentPolicy{}
}

// Assign picks a handler for o, records the order against it and points the
// order at it. Nothing is changed when an error is returned.
func (p AssignmentPolicy) Assign(o *order.Order, handlers []*staff.Handler) (*staff.Handler, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}

	best, err := p.findLeastLoaded(handlers)
	if err != nil {
		return nil, err
	}

	if err = o.AssignTo(best.ID()); err != nil {
		return nil, err
	}
	best.TakeOrder()

	return best, nil
}

// findLeastLoaded returns the first handler whose load ratio no other handler beats.
func (p AssignmentPolicy) findLeastLoaded(handlers []*staff.Handler) (*staff.Handler, error) {
	var best *staff.Handler

	for _, h := range handlers {
		if err := h.Validate(); err != nil {
			return nil, err
		}

		if best == nil || h.HasLowerLoadThan(best) {
			best = h
		}
	}

	if best == nil {
		return nil, ErrNoHandlersAvailable
	}

	return best, nil
}
