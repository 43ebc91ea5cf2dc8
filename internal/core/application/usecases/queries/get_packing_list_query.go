package queries

import (
	"errors"

	"fulfillment/internal/pkg/guard"
)

// DefaultPackingListSize is the number of orders on the daily packing list.
const DefaultPackingListSize = 15

var ErrGetPackingListQueryIsNotConstructed = errors.New(
	"GetPackingListQuery must be created via NewGetPackingListQuery constructor",
)

// GetPackingListQuery reads the next pending orders to pack, in board order.
// A zero limit falls back to DefaultPackingListSize.
type GetPackingListQuery struct {
	limit int
	guard guard.ConstructorGuard
}

func NewGetPackingListQuery(limit int) (GetPackingListQuery, error) {
	if limit < 0 {
		return GetPackingListQuery{}, ErrLimitIsNegative
	}

	if limit == 0 {
		limit = DefaultPackingListSize
	}

	return GetPackingListQuery{
		limit: limit,
		guard: guard.NewConstructorGuard(),
	}, nil
}

func (q GetPackingListQuery) Validate() error {
	return q.guard.Validate(ErrGetPackingListQueryIsNotConstructed)
}

func (q GetPackingListQuery) Limit() int {
	return q.limit
}
