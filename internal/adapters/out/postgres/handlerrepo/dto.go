// Package handlerrepo persists the roster of warehouse handlers.
package handlerrepo

import (
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/staff"

	"github.com/google/uuid"
)

// HandlerDTO represents the database structure for persisting handlers.
// Rank records the roster order, which breaks ties during assignment.
type HandlerDTO struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name          string    `gorm:"type:varchar(128);not null;uniqueIndex"`
	Role          string    `gorm:"type:varchar(128);not null"`
	Capacity      int       `gorm:"not null"`
	AssignedCount int       `gorm:"not null"`
	Rank          int       `gorm:"column:roster_rank;not null;index"`
}

// TableName specifies the database table name for handler entities.
func (HandlerDTO) TableName() string {
	return "handlers"
}

func fromDomain(h *staff.Handler, rank int) HandlerDTO {
	return HandlerDTO{
		ID:            h.ID().Bytes(),
		Name:          h.Name(),
		Role:          h.Role(),
		Capacity:      h.Capacity(),
		AssignedCount: h.AssignedCount(),
		Rank:          rank,
	}
}

// ToDomain rebuilds a handler from its stored row.
func ToDomain(dto HandlerDTO) (*staff.Handler, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return staff.NewHandler(id, dto.Name, dto.Role, dto.Capacity, dto.AssignedCount)
}
