package queries

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/staff"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type GetHandlersQueryHandler struct {
	db *gorm.DB
}

func NewGetHandlersQueryHandler(db *gorm.DB) GetHandlersQueryHandler {
	return GetHandlersQueryHandler{db: db}
}

func (h GetHandlersQueryHandler) Handle(ctx context.Context, query GetHandlersQuery) ([]HandlerView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	handlers := make([]HandlerView, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			role,
			capacity,
			assigned_count
		FROM handlers
		ORDER BY roster_rank, name
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			id                      uuid.UUID
			name, role              string
			capacity, assignedCount int
		)

		if err = rows.Scan(&id, &name, &role, &capacity, &assignedCount); err != nil {
			return nil, err
		}

		handlerID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}

		// Rebuilding the aggregate keeps the ratio rule in one place.
		handler, buildErr := staff.NewHandler(handlerID, name, role, capacity, assignedCount)
		if buildErr != nil {
			return nil, buildErr
		}

		handlers = append(handlers, HandlerView{
			ID:            handler.ID(),
			Name:          handler.Name(),
			Role:          handler.Role(),
			Capacity:      handler.Capacity(),
			AssignedCount: handler.AssignedCount(),
			LoadRatio:     handler.LoadRatio(),
		})
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return handlers, nil
}
