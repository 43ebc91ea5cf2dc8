package commands

import (
	"errors"
	"fmt"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/guard"
)

var ErrSeedOrdersCommandIsNotConstructed = errors.New(
	"SeedOrdersCommand must be created via NewSeedOrdersCommand constructor",
)

// SeedOrder is the raw description of one order to load onto the board.
// An empty Status means pending; a nil HandlerID leaves the order unassigned.
type SeedOrder struct {
	ID        string
	Product   string
	Zone      string
	CreatedAt time.Time
	Quantity  int
	Status    string
	HandlerID *kernel.UUID
}

// SeedOrdersCommand replaces the whole board with a new set of orders.
//
// Example:
//
//	cmd, err := NewSeedOrdersCommand([]SeedOrder{{
//	    ID: "ORD-0001", Product: "Set LeBoret No. 1", Zone: "Zona Sur",
//	    CreatedAt: time.Now().Add(-72 * time.Hour), Quantity: 2,
//	}})
type SeedOrdersCommand struct {
	orders []*order.Order
	guard  guard.ConstructorGuard
}

// NewSeedOrdersCommand validates every entry and reports all broken entries at once.
func NewSeedOrdersCommand(seeds []SeedOrder) (SeedOrdersCommand, error) {
	orders := make([]*order.Order, 0, len(seeds))
	var errList []error

	for i, seed := range seeds {
		o, err := buildSeedOrder(seed)
		if err != nil {
			errList = append(errList, fmt.Errorf("order %d (%s): %w", i+1, seed.ID, err))
			continue
		}
		orders = append(orders, o)
	}

	if err := errors.Join(errList...); err != nil {
		return SeedOrdersCommand{}, err
	}

	return SeedOrdersCommand{
		orders: orders,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

func (c SeedOrdersCommand) Validate() error {
	return c.guard.Validate(ErrSeedOrdersCommandIsNotConstructed)
}

// Orders returns the orders in input order.
func (c SeedOrdersCommand) Orders() []*order.Order {
	return c.orders
}

func buildSeedOrder(seed SeedOrder) (*order.Order, error) {
	id, idErr := kernel.OrderIDFromString(seed.ID)
	product, productErr := kernel.NewProduct(seed.Product)
	zone, zoneErr := kernel.NewZone(seed.Zone)
	if err := errors.Join(idErr, productErr, zoneErr); err != nil {
		return nil, err
	}

	status := order.Pending
	if seed.Status != "" {
		var err error
		if status, err = order.ParseStatus(seed.Status); err != nil {
			return nil, err
		}
	}

	return order.RestoreOrder(id, product, zone, seed.CreatedAt, seed.Quantity, status, seed.HandlerID, 0)
}
