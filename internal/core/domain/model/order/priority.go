package order

import (
	"fmt"
	"strings"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

const (
	// MaxPriorityScore caps the score so that very old orders do not drown the scale.
	MaxPriorityScore = 100

	pointsPerDay = 10
	setBonus     = 5
)

// CalculatePriorityScore ranks an order by how urgently it must be packed.
//
//	score = min(100, ageInDays*10 + zone.Weight() + 5 if the product is a set)
//
// Negative ages count as zero, so the result always lies in [0, 100].
// The function is pure: equal inputs yield equal scores.
func CalculatePriorityScore(ageInDays int, zone kernel.Zone, product kernel.Product) int {
	score := max(ageInDays, 0)*pointsPerDay + zone.Weight()
	if product.IsSet() {
		score += setBonus
	}
	return min(score, MaxPriorityScore)
}

// Level is the urgency band of a priority score.
type Level string

const (
	Critical Level = "critical"
	High     Level = "high"
	Medium   Level = "medium"
	Low      Level = "low"
)

// Lower bounds of each band, inclusive.
const (
	CriticalThreshold = 70
	HighThreshold     = 50
	MediumThreshold   = 30
)

// LevelOf classifies a score. Bands are checked from the top down.
func LevelOf(score int) Level {
	switch {
	case score >= CriticalThreshold:
		return Critical
	case score >= HighThreshold:
		return High
	case score >= MediumThreshold:
		return Medium
	default:
		return Low
	}
}

func (l Level) String() string {
	return string(l)
}

// Filter selects which part of the board a listing shows.
type Filter string

const (
	// All keeps every order.
	All Filter = "all"
	// Priority keeps critical orders only.
	Priority Filter = "priority"
	// Standard keeps everything below critical.
	Standard Filter = "standard"
)

// ParseFilter accepts all, priority or standard. An empty value means all.
func ParseFilter(raw string) (Filter, error) {
	f := Filter(strings.ToLower(strings.TrimSpace(raw)))
	switch f {
	case "":
		return All, nil
	case All, Priority, Standard:
		return f, nil
	default:
		return "", errs.NewValueIsInvalidErrorWithCause(
			"filter is invalid",
			fmt.Errorf("%q is not one of all, priority, standard", raw),
		)
	}
}

// Matches reports whether an order with the given score passes the filter.
func (f Filter) Matches(score int) bool {
	switch f {
	case Priority:
		return score >= CriticalThreshold
	case Standard:
		return score < CriticalThreshold
	default:
		return true
	}
}

func (f Filter) String() string {
	return string(f)
}
