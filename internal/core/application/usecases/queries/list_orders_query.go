package queries

import (
	"errors"

	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var (
	ErrListOrdersQueryIsNotConstructed = errors.New(
		"ListOrdersQuery must be created via NewListOrdersQuery constructor",
	)
	ErrLimitIsNegative = errs.NewValueIsInvalidError("limit must not be negative")
)

// ListOrdersQuery reads the board in its current sequence, optionally
// narrowed to priority or standard orders. A zero limit returns every match.
//
// Example:
//
//	query, err := NewListOrdersQuery(order.FilterPriority, 20)
//	views, err := handler.Handle(ctx, query)
type ListOrdersQuery struct {
	filter order.Filter
	limit  int
	guard  guard.ConstructorGuard
}

func NewListOrdersQuery(filter order.Filter, limit int) (ListOrdersQuery, error) {
	parsed, err := order.ParseFilter(filter.String())
	if err != nil {
		return ListOrdersQuery{}, err
	}

	if limit < 0 {
		return ListOrdersQuery{}, ErrLimitIsNegative
	}

	return ListOrdersQuery{
		filter: parsed,
		limit:  limit,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

func (q ListOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersQueryIsNotConstructed)
}

func (q ListOrdersQuery) Filter() order.Filter {
	return q.filter
}

func (q ListOrdersQuery) Limit() int {
	return q.limit
}
