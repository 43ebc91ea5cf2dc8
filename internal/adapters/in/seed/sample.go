package seed

import (
	"math/rand/v2"
	"time"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
)

// DefaultSampleSize is the number of generated orders on a fresh board.
const DefaultSampleSize = 50

const (
	maxSampleAgeDays  = 6
	maxSampleQuantity = 5
)

// SampleOrders generates n orders placed within the last week. Each order goes
// to the first roster entry with probability 0.6, to the second with 0.3 and
// stays unassigned otherwise. Missing roster entries leave the order unassigned.
func SampleOrders(n int, roster []kernel.UUID, now time.Time, rng *rand.Rand) ([]commands.SeedOrder, error) {
	statuses := order.Statuses()
	seeds := make([]commands.SeedOrder, 0, n)

	for i := 1; i <= n; i++ {
		id, err := kernel.NewOrderID(i)
		if err != nil {
			return nil, err
		}

		product, err := kernel.NewRandomProduct(rng)
		if err != nil {
			return nil, err
		}

		zone, err := kernel.NewRandomZone(rng)
		if err != nil {
			return nil, err
		}

		age := rng.IntN(maxSampleAgeDays + 1)
		status := statuses[rng.IntN(len(statuses))]

		seeds = append(seeds, commands.SeedOrder{
			ID:        id.String(),
			Product:   product.Name(),
			Zone:      zone.Name(),
			CreatedAt: now.AddDate(0, 0, -age),
			Quantity:  rng.IntN(maxSampleQuantity) + 1,
			Status:    status.String(),
			HandlerID: pickHandler(roster, rng.Float64()),
		})
	}

	return seeds, nil
}

func pickHandler(roster []kernel.UUID, draw float64) *kernel.UUID {
	var slot int
	switch {
	case draw < 0.6:
		slot = 0
	case draw < 0.9:
		slot = 1
	default:
		return nil
	}

	if slot >= len(roster) {
		return nil
	}

	id := roster[slot]
	return &id
}
