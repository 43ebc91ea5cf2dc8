package order

import (
	"fmt"
	"strings"

	"fulfillment/internal/pkg/errs"
)

// Status is the packing state of an order.
//
// There is no transition graph: an order may move from any status to any
// other, including back to pending when a packed box has to be reopened.
type Status string

const (
	// Pending orders have not been picked yet. Only they appear on the packing list.
	Pending Status = "pending"

	// Processing orders are being picked and packed.
	Processing Status = "processing"

	// Ready orders are packed and waiting for the carrier.
	Ready Status = "ready"
)

// Statuses returns every valid status in board order.
func Statuses() []Status {
	return []Status{Pending, Processing, Ready}
}

// ParseStatus converts a raw value into a Status. Matching ignores case and
// surrounding whitespace.
func ParseStatus(raw string) (Status, error) {
	s := Status(strings.ToLower(strings.TrimSpace(raw)))
	if err := s.Validate(); err != nil {
		return "", err
	}
	return s, nil
}

// Validate rejects anything outside pending, processing and ready.
func (s Status) Validate() error {
	switch s {
	case Pending, Processing, Ready:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%q is not one of pending, processing, ready", string(s)),
		)
	}
}

func (s Status) String() string {
	return string(s)
}
