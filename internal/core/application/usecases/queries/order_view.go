package queries

import (
	"context"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// OrderView is the dashboard row of one order.
type OrderView struct {
	ID            string
	Product       string
	Zone          string
	ShippingDays  int
	CreatedAt     time.Time
	AgeInDays     int
	PriorityScore int
	Level         order.Level
	Status        order.Status
	HandlerID     *kernel.UUID
	HandlerName   string
	Quantity      int
}

const selectOrderViews = `
	SELECT
		o.id,
		o.product,
		o.zone,
		o.created_at,
		o.quantity,
		o.status,
		o.handler_id,
		o.priority_score,
		COALESCE(h.name, '')
	FROM orders o
	LEFT JOIN handlers h ON h.id = o.handler_id`

// boardRows is the result of reading orders with their handler names.
type boardRows struct {
	orders       []*order.Order
	handlerNames map[string]string
}

// readBoard runs a select built on selectOrderViews and rebuilds the orders.
func readBoard(ctx context.Context, db *gorm.DB, sql string, args ...any) (boardRows, error) {
	result := boardRows{
		orders:       make([]*order.Order, 0),
		handlerNames: make(map[string]string),
	}

	rows, err := db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return boardRows{}, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			r           order.Record
			handlerName string
		)

		err = rows.Scan(
			&r.ID,
			&r.Product,
			&r.Zone,
			&r.CreatedAt,
			&r.Quantity,
			&r.Status,
			&r.HandlerID,
			&r.PriorityScore,
			&handlerName,
		)
		if err != nil {
			return boardRows{}, err
		}

		o, buildErr := order.FromRecord(r)
		if buildErr != nil {
			return boardRows{}, buildErr
		}

		result.orders = append(result.orders, o)
		result.handlerNames[r.ID] = handlerName
	}

	if err = rows.Err(); err != nil {
		return boardRows{}, err
	}

	return result, nil
}

func newOrderView(o *order.Order, now time.Time, handlerName string) OrderView {
	return viewOf(o.Snapshot(now), o.Zone().ShippingDays(), handlerName)
}

func viewOf(s order.Snapshot, shippingDays int, handlerName string) OrderView {
	return OrderView{
		ID:            s.ID.String(),
		Product:       s.Product,
		Zone:          s.Zone,
		ShippingDays:  shippingDays,
		CreatedAt:     s.CreatedAt,
		AgeInDays:     s.AgeInDays,
		PriorityScore: s.PriorityScore,
		Level:         s.Level,
		Status:        s.Status,
		HandlerID:     s.HandlerID,
		HandlerName:   handlerName,
		Quantity:      s.Quantity,
	}
}

func nowFrom(clock func() time.Time) func() time.Time {
	if clock == nil {
		return time.Now
	}
	return clock
}
