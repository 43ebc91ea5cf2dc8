package order

import (
	"time"

	"fulfillment/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// Record is the flat, stored form of an order as repositories and read models
// scan it.
type Record struct {
	ID            string
	Product       string
	Zone          string
	CreatedAt     time.Time
	Quantity      int
	Status        string
	HandlerID     *uuid.UUID
	PriorityScore int
}

// FromRecord validates a stored row and restores the order it describes.
func FromRecord(r Record) (*Order, error) {
	id, err := kernel.OrderIDFromString(r.ID)
	if err != nil {
		return nil, err
	}

	product, err := kernel.NewProduct(r.Product)
	if err != nil {
		return nil, err
	}

	zone, err := kernel.NewZone(r.Zone)
	if err != nil {
		return nil, err
	}

	status, err := ParseStatus(r.Status)
	if err != nil {
		return nil, err
	}

	var handlerID *kernel.UUID
	if r.HandlerID != nil {
		hID, idErr := kernel.UUIDFromBytes(r.HandlerID[:])
		if idErr != nil {
			return nil, idErr
		}
		handlerID = &hID
	}

	return RestoreOrder(id, product, zone, r.CreatedAt, r.Quantity, status, handlerID, r.PriorityScore)
}

// Record flattens the order for storage.
func (o *Order) Record() Record {
	var handlerID *uuid.UUID
	if o.handlerID != nil {
		raw := o.handlerID.Bytes()
		handlerID = &raw
	}

	return Record{
		ID:            o.id.String(),
		Product:       o.product.Name(),
		Zone:          o.zone.Name(),
		CreatedAt:     o.createdAt,
		Quantity:      o.quantity,
		Status:        o.status.String(),
		HandlerID:     handlerID,
		PriorityScore: o.priorityScore,
	}
}
