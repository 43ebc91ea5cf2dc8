package orderstore

import (
	"fmt"
	"iter"
	"slices"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"
)

// Store is the ordered collection of orders on the board.
type Store struct {
	orders []*order.Order
	clock  func() time.Time
	dirty  bool
}

// New returns an empty store reading time from clock. A nil clock means time.Now.
func New(clock func() time.Time) *Store {
	if clock == nil {
		clock = time.Now
	}
	return &Store{clock: clock}
}

// Seed replaces the contents with orders, scores every order and sorts the
// sequence by descending score. Orders with equal scores keep their input order.
// On error the store is left unchanged.
func (s *Store) Seed(orders []*order.Order) error {
	if err := validateAll(orders); err != nil {
		return err
	}

	now := s.clock()
	next := slices.Clone(orders)
	for _, o := range next {
		o.RefreshPriority(now)
	}
	sortByScore(next)

	s.orders = next
	s.dirty = false
	return nil
}

// Restore loads a persisted sequence as it was saved, cached scores included.
// The store is dirty unless the sequence is already in score order.
func (s *Store) Restore(orders []*order.Order) error {
	if err := validateAll(orders); err != nil {
		return err
	}

	s.orders = slices.Clone(orders)
	s.dirty = !isSortedByScore(s.orders)
	return nil
}

// RecomputeAll refreshes every score against the clock and restores score order,
// discarding any manual ordering.
func (s *Store) RecomputeAll() {
	now := s.clock()
	for _, o := range s.orders {
		o.RefreshPriority(now)
	}
	sortByScore(s.orders)
	s.dirty = false
}

// UpdateStatus sets the status of one order. The score and the position of the
// order do not change.
func (s *Store) UpdateStatus(id kernel.OrderID, status order.Status) error {
	o, err := s.Get(id)
	if err != nil {
		return err
	}
	return o.SetStatus(status)
}

// Reorder moves the order movedID so that it sits immediately before beforeID.
// Every other order keeps its relative position. Moving an order before itself
// does nothing.
func (s *Store) Reorder(movedID, beforeID kernel.OrderID) error {
	from := s.indexOf(movedID)
	if from < 0 {
		return errs.NewObjectNotFoundError("movedId", movedID.String())
	}
	if s.indexOf(beforeID) < 0 {
		return errs.NewObjectNotFoundError("beforeId", beforeID.String())
	}
	if movedID.IsEqual(beforeID) {
		return nil
	}

	moved := s.orders[from]
	s.orders = slices.Delete(s.orders, from, from+1)
	to := s.indexOf(beforeID)
	s.orders = slices.Insert(s.orders, to, moved)
	s.dirty = true
	return nil
}

// Get returns the order with id.
func (s *Store) Get(id kernel.OrderID) (*order.Order, error) {
	i := s.indexOf(id)
	if i < 0 {
		return nil, errs.NewObjectNotFoundError("orderId", id.String())
	}
	return s.orders[i], nil
}

// List yields snapshots of the orders passing filter, in board order. The
// snapshots are taken when List is called, so later changes to the store are
// not visible and the sequence can be ranged over more than once.
func (s *Store) List(filter order.Filter) iter.Seq[order.Snapshot] {
	now := s.clock()
	snapshots := make([]order.Snapshot, 0, len(s.orders))
	for _, o := range s.orders {
		if filter.Matches(o.PriorityScore()) {
			snapshots = append(snapshots, o.Snapshot(now))
		}
	}

	return func(yield func(order.Snapshot) bool) {
		for _, snap := range snapshots {
			if !yield(snap) {
				return
			}
		}
	}
}

// Orders returns the current sequence. The slice is a copy; the orders are shared.
func (s *Store) Orders() []*order.Order {
	return slices.Clone(s.orders)
}

// Dirty reports whether the sequence was rearranged by hand since the last
// Seed or RecomputeAll.
func (s *Store) Dirty() bool {
	return s.dirty
}

func (s *Store) Len() int {
	return len(s.orders)
}

func (s *Store) indexOf(id kernel.OrderID) int {
	return slices.IndexFunc(s.orders, func(o *order.Order) bool {
		return o.ID().IsEqual(id)
	})
}

func validateAll(orders []*order.Order) error {
	seen := make(map[string]struct{}, len(orders))
	for i, o := range orders {
		if err := o.Validate(); err != nil {
			return errs.NewValueIsInvalidErrorWithCause("orders", fmt.Errorf("order at %d: %w", i, err))
		}
		id := o.ID().String()
		if _, ok := seen[id]; ok {
			return errs.NewValueIsInvalidErrorWithCause("orders", fmt.Errorf("duplicate order id %s", id))
		}
		seen[id] = struct{}{}
	}
	return nil
}

func sortByScore(orders []*order.Order) {
	slices.SortStableFunc(orders, func(a, b *order.Order) int {
		return b.PriorityScore() - a.PriorityScore()
	})
}

func isSortedByScore(orders []*order.Order) bool {
	return slices.IsSortedFunc(orders, func(a, b *order.Order) int {
		return b.PriorityScore() - a.PriorityScore()
	})
}
