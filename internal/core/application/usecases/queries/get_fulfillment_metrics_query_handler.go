package queries

import (
	"context"

	"fulfillment/internal/core/domain/model/order"

	"gorm.io/gorm"
)

type GetFulfillmentMetricsQueryHandler struct {
	db *gorm.DB
}

func NewGetFulfillmentMetricsQueryHandler(db *gorm.DB) GetFulfillmentMetricsQueryHandler {
	return GetFulfillmentMetricsQueryHandler{db: db}
}

func (h GetFulfillmentMetricsQueryHandler) Handle(
	ctx context.Context,
	query GetFulfillmentMetricsQuery,
) (FulfillmentMetrics, error) {
	if err := query.Validate(); err != nil {
		return FulfillmentMetrics{}, err
	}

	var metrics FulfillmentMetrics
	err := h.db.WithContext(ctx).Raw(`
		SELECT
			COUNT(*),
			COUNT(*) FILTER (WHERE status = ?),
			COUNT(*) FILTER (WHERE status = ?),
			COUNT(*) FILTER (WHERE status = ?),
			COUNT(*) FILTER (WHERE handler_id IS NULL),
			COUNT(*) FILTER (WHERE priority_score >= ?)
		FROM orders
	`,
		order.Pending.String(),
		order.Processing.String(),
		order.Ready.String(),
		order.CriticalThreshold,
	).Row().Scan(
		&metrics.Total,
		&metrics.Pending,
		&metrics.Processing,
		&metrics.Ready,
		&metrics.Unassigned,
		&metrics.Critical,
	)
	if err != nil {
		return FulfillmentMetrics{}, err
	}

	return metrics, nil
}
