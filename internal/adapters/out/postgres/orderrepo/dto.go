// Package orderrepo persists the fulfillment board: every order together with
// its position in the board sequence.
package orderrepo

import (
	"time"

	"fulfillment/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Position keeps the board sequence, manual moves included.
type OrderDTO struct {
	ID            string     `gorm:"type:varchar(64);primaryKey"`
	Product       string     `gorm:"type:varchar(64);not null"`
	Zone          string     `gorm:"type:varchar(64);not null"`
	CreatedAt     time.Time  `gorm:"not null"`
	Quantity      int        `gorm:"not null"`
	Status        string     `gorm:"type:varchar(16);not null;index"`
	HandlerID     *uuid.UUID `gorm:"type:uuid;index"`
	PriorityScore int        `gorm:"not null"`
	Position      int        `gorm:"not null;index"`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

func fromDomain(o *order.Order, position int) OrderDTO {
	r := o.Record()
	return OrderDTO{
		ID:            r.ID,
		Product:       r.Product,
		Zone:          r.Zone,
		CreatedAt:     r.CreatedAt.UTC(),
		Quantity:      r.Quantity,
		Status:        r.Status,
		HandlerID:     r.HandlerID,
		PriorityScore: r.PriorityScore,
		Position:      position,
	}
}

// ToDomain rebuilds an order aggregate from its stored row.
func ToDomain(dto OrderDTO) (*order.Order, error) {
	return order.FromRecord(order.Record{
		ID:            dto.ID,
		Product:       dto.Product,
		Zone:          dto.Zone,
		CreatedAt:     dto.CreatedAt,
		Quantity:      dto.Quantity,
		Status:        dto.Status,
		HandlerID:     dto.HandlerID,
		PriorityScore: dto.PriorityScore,
	})
}
