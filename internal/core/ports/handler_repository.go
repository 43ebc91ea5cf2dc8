package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/staff"
)

// HandlerRepository defines the persistence contract for the handler roster.
type HandlerRepository interface {
	// Add appends a handler at the end of the roster.
	// Returns an ObjectAlreadyExistsError when the ID or the name is taken.
	Add(ctx context.Context, handler *staff.Handler) error

	// Update persists the assigned count of an existing handler.
	Update(ctx context.Context, handler *staff.Handler) error

	// Get retrieves a handler by ID.
	Get(ctx context.Context, id kernel.UUID) (*staff.Handler, error)

	// GetAll returns the roster in the order handlers were added. Ties in
	// assignment are broken by this order.
	GetAll(ctx context.Context) ([]*staff.Handler, error)
}
