package handlerrepo

import (
	"context"
	"errors"

	"fulfillment/internal/adapters/out/postgres/pgerr"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/staff"
	"fulfillment/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormHandlerRepository implements HandlerRepository using GORM.
type GormHandlerRepository struct {
	db *gorm.DB
}

// NewGormHandlerRepository creates a new GORM handler repository.
func NewGormHandlerRepository(db *gorm.DB) *GormHandlerRepository {
	return &GormHandlerRepository{db: db}
}

// Add appends a handler at the end of the roster.
func (r *GormHandlerRepository) Add(ctx context.Context, handler *staff.Handler) error {
	if err := handler.Validate(); err != nil {
		return err
	}

	db := r.db.WithContext(ctx)

	var last int
	if err := db.Model(&HandlerDTO{}).Select("COALESCE(MAX(roster_rank), 0)").Scan(&last).Error; err != nil {
		return err
	}

	dto := fromDomain(handler, last+1)
	if err := db.Create(&dto).Error; err != nil {
		if pgerr.IsUniqueViolation(err) {
			return errs.NewObjectAlreadyExistsErrorWithCause("handler", handler.Name(), err)
		}
		return err
	}

	return nil
}

// Update saves the assigned count of an existing handler.
func (r *GormHandlerRepository) Update(ctx context.Context, handler *staff.Handler) error {
	if err := handler.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).
		Model(&HandlerDTO{}).
		Where("id = ?", handler.ID().Bytes()).
		Update("assigned_count", handler.AssignedCount())
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("handler", handler.ID().String())
	}

	return nil
}

// Get retrieves a handler by ID.
func (r *GormHandlerRepository) Get(ctx context.Context, id kernel.UUID) (*staff.Handler, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto HandlerDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("handler", id.String())
		}
		return nil, err
	}

	return ToDomain(dto)
}

// GetAll retrieves the roster in rank order.
func (r *GormHandlerRepository) GetAll(ctx context.Context) ([]*staff.Handler, error) {
	var dtos []HandlerDTO
	if err := r.db.WithContext(ctx).Order("roster_rank").Order("name").Find(&dtos).Error; err != nil {
		return nil, err
	}

	handlers := make([]*staff.Handler, 0, len(dtos))
	for _, dto := range dtos {
		h, err := ToDomain(dto)
		if err != nil {
			return nil, err
		}
		handlers = append(handlers, h)
	}

	return handlers, nil
}
