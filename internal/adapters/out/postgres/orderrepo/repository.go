package orderrepo

import (
	"context"
	"errors"

	"fulfillment/internal/adapters/out/postgres/pgerr"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"

	"gorm.io/gorm"
)

const batchSize = 100

// GormOrderRepository implements OrderRepository using GORM.
type GormOrderRepository struct {
	db *gorm.DB
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

// Replace deletes every stored order and inserts orders at positions 0..n-1.
func (r *GormOrderRepository) Replace(ctx context.Context, orders []*order.Order) error {
	dtos := make([]OrderDTO, 0, len(orders))
	for i, o := range orders {
		if err := o.Validate(); err != nil {
			return err
		}
		dtos = append(dtos, fromDomain(o, i))
	}

	db := r.db.WithContext(ctx)
	if err := db.Where("1 = 1").Delete(&OrderDTO{}).Error; err != nil {
		return err
	}

	if len(dtos) == 0 {
		return nil
	}

	if err := db.CreateInBatches(&dtos, batchSize).Error; err != nil {
		if pgerr.IsUniqueViolation(err) {
			return errs.NewObjectAlreadyExistsErrorWithCause("order", "seed", err)
		}
		return err
	}

	return nil
}

// Update saves the mutable state of an existing order.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate, 0)
	result := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("id = ?", dto.ID).
		Select("Status", "HandlerID", "PriorityScore").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("order", dto.ID)
	}

	return nil
}

// SaveSequence writes the position and score of every order.
func (r *GormOrderRepository) SaveSequence(ctx context.Context, orders []*order.Order) error {
	db := r.db.WithContext(ctx)
	for i, o := range orders {
		if err := o.Validate(); err != nil {
			return err
		}

		result := db.Model(&OrderDTO{}).
			Where("id = ?", o.ID().String()).
			Select("Position", "PriorityScore").
			Updates(&OrderDTO{Position: i, PriorityScore: o.PriorityScore()})
		if result.Error != nil {
			return result.Error
		}

		if result.RowsAffected == 0 {
			return errs.NewObjectNotFoundError("order", o.ID().String())
		}
	}

	return nil
}

// Get retrieves an order by ID.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.OrderID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.String()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}
		return nil, err
	}

	return ToDomain(dto)
}

// GetAll retrieves every order in board sequence.
func (r *GormOrderRepository) GetAll(ctx context.Context) ([]*order.Order, error) {
	var dtos []OrderDTO
	if err := r.db.WithContext(ctx).Order("position").Order("id").Find(&dtos).Error; err != nil {
		return nil, err
	}

	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		o, err := ToDomain(dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}

	return orders, nil
}
