// Package orderstore keeps the ordered sequence of orders shown on the
// fulfillment board.
//
// The sequence is normally sorted by priority score, highest first. An operator
// may drag an order to a new place; the manual order then holds until the next
// recompute puts the board back in score order.
//
// A Store is owned by its caller and is not safe for concurrent use. The
// application layer builds one per unit of work from persisted state.
package orderstore
