package order

import (
	"errors"
	"fmt"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

const day = 24 * time.Hour

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
)

// Order is a customer order waiting on the fulfillment board.
//
// Order follows these invariants:
//   - Must have a non-blank identifier, product and zone
//   - Quantity must be positive
//   - Status is always one of pending, processing, ready
//   - The cached priority score lies in [0, 100]
//
// The priority score is cached rather than derived on every read: the board
// keeps showing the score from the last refresh until the next one, even as
// the order ages.
type Order struct {
	id        kernel.OrderID
	product   kernel.Product
	zone      kernel.Zone
	createdAt time.Time
	quantity  int
	status    Status

	// handlerID is nil while nobody owns the order.
	handlerID *kernel.UUID

	priorityScore int

	guard guard.ConstructorGuard
}

// NewOrder creates a pending, unassigned order. Its score stays 0 until the
// first RefreshPriority.
//
// Example:
//
//	id, _ := kernel.NewOrderID(1)
//	product, _ := kernel.NewProduct("Set LeBoret No. 1")
//	zone, _ := kernel.NewZone(kernel.ZoneSur)
//	o, err := order.NewOrder(id, product, zone, time.Now().Add(-48*time.Hour), 2)
func NewOrder(
	id kernel.OrderID,
	product kernel.Product,
	zone kernel.Zone,
	createdAt time.Time,
	quantity int,
) (*Order, error) {
	order := &Order{
		status: Pending,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		order.setID(id),
		order.setProduct(product),
		order.setZone(zone),
		order.setCreatedAt(createdAt),
		order.setQuantity(quantity),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// RestoreOrder reconstructs an Order from persistent storage, keeping the
// cached score exactly as it was saved.
func RestoreOrder(
	id kernel.OrderID,
	product kernel.Product,
	zone kernel.Zone,
	createdAt time.Time,
	quantity int,
	status Status,
	handlerID *kernel.UUID,
	priorityScore int,
) (*Order, error) {
	order := &Order{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		order.setID(id),
		order.setProduct(product),
		order.setZone(zone),
		order.setCreatedAt(createdAt),
		order.setQuantity(quantity),
		order.SetStatus(status),
		order.setHandler(handlerID),
		order.setPriorityScore(priorityScore),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// IsEqual compares two orders by identifier.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

func (o *Order) ID() kernel.OrderID {
	return o.id
}

func (o *Order) Product() kernel.Product {
	return o.product
}

func (o *Order) Zone() kernel.Zone {
	return o.zone
}

func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

func (o *Order) Quantity() int {
	return o.quantity
}

func (o *Order) Status() Status {
	return o.status
}

// Handler returns the owning handler's ID, or nil while unassigned.
func (o *Order) Handler() *kernel.UUID {
	return o.handlerID
}

// IsAssigned reports whether a handler owns the order.
func (o *Order) IsAssigned() bool {
	return o.handlerID != nil
}

// PriorityScore returns the score cached by the last RefreshPriority.
func (o *Order) PriorityScore() int {
	return o.priorityScore
}

// PriorityLevel classifies the cached score.
func (o *Order) PriorityLevel() Level {
	return LevelOf(o.priorityScore)
}

// AgeInDays counts whole days elapsed since creation. Orders dated in the
// future are 0 days old.
func (o *Order) AgeInDays(now time.Time) int {
	elapsed := now.Sub(o.createdAt)
	if elapsed <= 0 {
		return 0
	}
	return int(elapsed / day)
}

// RefreshPriority recomputes and caches the score as of now.
func (o *Order) RefreshPriority(now time.Time) int {
	o.priorityScore = CalculatePriorityScore(o.AgeInDays(now), o.zone, o.product)
	return o.priorityScore
}

// SetStatus moves the order to status. Any valid status is accepted from any
// other; the score and the handler are left untouched.
func (o *Order) SetStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}

// AssignTo hands the order to a handler, replacing any previous owner.
func (o *Order) AssignTo(handlerID kernel.UUID) error {
	if err := handlerID.Validate(); err != nil {
		return err
	}
	o.handlerID = &handlerID
	return nil
}

// Snapshot is an immutable view of an order at a point in time.
type Snapshot struct {
	ID            kernel.OrderID
	Product       string
	Zone          string
	CreatedAt     time.Time
	AgeInDays     int
	PriorityScore int
	Level         Level
	Status        Status
	HandlerID     *kernel.UUID
	Quantity      int
}

// Snapshot captures the order as seen at now. Age is computed against now while
// the score is the cached one.
func (o *Order) Snapshot(now time.Time) Snapshot {
	var handlerID *kernel.UUID
	if o.handlerID != nil {
		id := *o.handlerID
		handlerID = &id
	}

	return Snapshot{
		ID:            o.id,
		Product:       o.product.Name(),
		Zone:          o.zone.Name(),
		CreatedAt:     o.createdAt,
		AgeInDays:     o.AgeInDays(now),
		PriorityScore: o.priorityScore,
		Level:         o.PriorityLevel(),
		Status:        o.status,
		HandlerID:     handlerID,
		Quantity:      o.quantity,
	}
}

func (o *Order) setID(id kernel.OrderID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setProduct(product kernel.Product) error {
	if err := product.Validate(); err != nil {
		return err
	}
	o.product = product
	return nil
}

func (o *Order) setZone(zone kernel.Zone) error {
	if err := zone.Validate(); err != nil {
		return err
	}
	o.zone = zone
	return nil
}

func (o *Order) setCreatedAt(createdAt time.Time) error {
	if createdAt.IsZero() {
		return errs.NewValueIsRequiredError("createdAt")
	}
	o.createdAt = createdAt
	return nil
}

// setQuantity rejects empty orders.
func (o *Order) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity is invalid", fmt.Errorf("%d is not greater than 0", quantity))
	}
	o.quantity = quantity
	return nil
}

func (o *Order) setHandler(handlerID *kernel.UUID) error {
	if handlerID == nil {
		o.handlerID = nil
		return nil
	}
	return o.AssignTo(*handlerID)
}

func (o *Order) setPriorityScore(score int) error {
	if score < 0 || score > MaxPriorityScore {
		return errs.NewValueIsOutOfRangeError("priorityScore", score, 0, MaxPriorityScore)
	}
	o.priorityScore = score
	return nil
}
