package queries

import (
	"errors"

	"fulfillment/internal/pkg/guard"
)

var ErrGetFulfillmentMetricsQueryIsNotConstructed = errors.New(
	"GetFulfillmentMetricsQuery must be created via NewGetFulfillmentMetricsQuery constructor",
)

// GetFulfillmentMetricsQuery reads the board summary shown above the matrix.
type GetFulfillmentMetricsQuery struct {
	guard guard.ConstructorGuard
}

func NewGetFulfillmentMetricsQuery() GetFulfillmentMetricsQuery {
	return GetFulfillmentMetricsQuery{guard: guard.NewConstructorGuard()}
}

func (q GetFulfillmentMetricsQuery) Validate() error {
	return q.guard.Validate(ErrGetFulfillmentMetricsQueryIsNotConstructed)
}

// FulfillmentMetrics counts orders on the board. Critical counts orders whose
// cached score reaches the critical threshold.
type FulfillmentMetrics struct {
	Total      int
	Pending    int
	Processing int
	Ready      int
	Unassigned int
	Critical   int
}
