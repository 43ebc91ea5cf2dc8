package kernel

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"fulfillment/internal/pkg/errs"
)

const orderIDPrefix = "ORD-"

// MaxOrderIDLength is the longest identifier, in characters, the board stores.
const MaxOrderIDLength = 64

// ErrOrderIDIsNotConstructed is returned when validating a zero-value OrderID.
var ErrOrderIDIsNotConstructed = errs.NewValueIsRequiredError("OrderID must be created via NewOrderID or OrderIDFromString")

// OrderID is the opaque, stable identifier of an order.
// Generated identifiers look like "ORD-0001"; imported identifiers may be any
// non-blank string.
type OrderID struct {
	value string
}

// NewOrderID formats the sequence number as "ORD-%04d". seq must be positive.
func NewOrderID(seq int) (OrderID, error) {
	if seq <= 0 {
		return OrderID{}, errs.NewValueIsOutOfRangeError("order sequence", seq, 1, "unbounded")
	}
	return OrderID{value: fmt.Sprintf("%s%04d", orderIDPrefix, seq)}, nil
}

// OrderIDFromString accepts any non-blank identifier of at most
// MaxOrderIDLength characters. Surrounding whitespace is trimmed.
func OrderIDFromString(s string) (OrderID, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return OrderID{}, errs.NewValueIsRequiredError("order id")
	}
	if n := utf8.RuneCountInString(trimmed); n > MaxOrderIDLength {
		return OrderID{}, errs.NewValueIsOutOfRangeError("order id length", n, 1, MaxOrderIDLength)
	}
	return OrderID{value: trimmed}, nil
}

func (id OrderID) String() string {
	return id.value
}

// IsEqual reports whether both identifiers are the same.
func (id OrderID) IsEqual(other OrderID) bool {
	return id.value == other.value
}

// Validate rejects the zero value.
func (id OrderID) Validate() error {
	if id.value == "" {
		return ErrOrderIDIsNotConstructed
	}
	return nil
}
