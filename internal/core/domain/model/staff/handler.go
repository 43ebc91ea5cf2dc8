package staff

import (
	"errors"
	"fmt"
	"strings"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var (
	// ErrNameIsRequired is returned when a handler has a blank name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrRoleIsRequired is returned when a handler has a blank role.
	ErrRoleIsRequired = errs.NewValueIsRequiredError("role")
	// ErrHandlerIsNotConstructed is returned when using an improperly initialized Handler.
	ErrHandlerIsNotConstructed = errors.New("Handler must be created via NewHandler constructor")
)

// Handler is a member of the fulfillment team.
//
// Business rules:
//   - Capacity is positive and assignedCount is never negative
//   - Every order taken adds exactly one to assignedCount
//   - assignedCount is never decremented and may exceed capacity; capacity
//     only weighs the load, it is not a ceiling
//
// Example:
//
//	h, err := staff.NewHandler(kernel.NewUUID(), "Valeria Elizondo", "Operations", 10, 8)
//	h.LoadRatio() // 0.8
type Handler struct {
	id            kernel.UUID
	name          string
	role          string
	capacity      int
	assignedCount int
	guard         guard.ConstructorGuard
}

// NewHandler builds a handler that already carries assignedCount orders.
// It is used both for new roster entries and for rows read back from storage.
func NewHandler(id kernel.UUID, name, role string, capacity, assignedCount int) (*Handler, error) {
	h := &Handler{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		h.setID(id),
		h.setName(name),
		h.setRole(role),
		h.setCapacity(capacity),
		h.setAssignedCount(assignedCount),
	); err != nil {
		return nil, err
	}

	return h, nil
}

// Validate checks that the Handler was built by NewHandler.
func (h *Handler) Validate() error {
	if h == nil {
		return ErrHandlerIsNotConstructed
	}
	return h.guard.Validate(ErrHandlerIsNotConstructed)
}

// IsEqual compares handlers by ID.
func (h *Handler) IsEqual(other *Handler) bool {
	return other != nil && h.id.IsEqual(other.id)
}

func (h *Handler) ID() kernel.UUID {
	return h.id
}

func (h *Handler) Name() string {
	return h.name
}

func (h *Handler) Role() string {
	return h.role
}

func (h *Handler) Capacity() int {
	return h.capacity
}

func (h *Handler) AssignedCount() int {
	return h.assignedCount
}

// LoadRatio is assignedCount/capacity. Use HasLowerLoadThan to compare
// handlers exactly.
func (h *Handler) LoadRatio() float64 {
	return float64(h.assignedCount) / float64(h.capacity)
}

// HasLowerLoadThan reports whether h is strictly less loaded than other.
// Ratios are compared by cross-multiplication, so equal ratios such as 6/15
// and 4/10 compare equal.
func (h *Handler) HasLowerLoadThan(other *Handler) bool {
	return h.assignedCount*other.capacity < other.assignedCount*h.capacity
}

// TakeOrder records one more order for the handler.
func (h *Handler) TakeOrder() {
	h.assignedCount++
}

func (h *Handler) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	h.id = id
	return nil
}

func (h *Handler) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrNameIsRequired
	}
	h.name = name
	return nil
}

func (h *Handler) setRole(role string) error {
	role = strings.TrimSpace(role)
	if role == "" {
		return ErrRoleIsRequired
	}
	h.role = role
	return nil
}

func (h *Handler) setCapacity(capacity int) error {
	if capacity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("capacity is invalid", fmt.Errorf("%d is not greater than 0", capacity))
	}
	h.capacity = capacity
	return nil
}

func (h *Handler) setAssignedCount(count int) error {
	if count < 0 {
		return errs.NewValueIsInvalidErrorWithCause("assignedCount is invalid", fmt.Errorf("%d is negative", count))
	}
	h.assignedCount = count
	return nil
}
