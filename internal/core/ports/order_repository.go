// Package ports defines the persistence contracts of the fulfillment board.
// These interfaces establish contracts between the domain layer and infrastructure,
// enabling dependency inversion and testability.
package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Orders are stored together with their position on the board, so that the
// sequence survives restarts, manual reordering included.
type OrderRepository interface {
	// Replace drops every stored order and saves orders in the given sequence.
	Replace(ctx context.Context, orders []*order.Order) error

	// Update persists the status, handler and score of an existing order.
	// Its position is left as it is.
	Update(ctx context.Context, aggregate *order.Order) error

	// SaveSequence stores the position and score of every order in orders.
	// All orders must already exist.
	SaveSequence(ctx context.Context, orders []*order.Order) error

	// Get retrieves an order by its identifier.
	Get(ctx context.Context, id kernel.OrderID) (*order.Order, error)

	// GetAll returns every order in board order.
	GetAll(ctx context.Context) ([]*order.Order, error)
}
