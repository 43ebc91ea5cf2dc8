// Package seed fills an empty board at startup, either from a CSV export or
// from generated sample orders.
package seed

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/pkg/errs"

	"github.com/gocarina/gocsv"
)

var dateLayouts = []string{time.RFC3339, time.DateOnly}

// orderRecord is one CSV row. Columns: id,product,zone,created_at,quantity,status.
type orderRecord struct {
	ID        string `csv:"id"`
	Product   string `csv:"product"`
	Zone      string `csv:"zone"`
	CreatedAt string `csv:"created_at"`
	Quantity  int    `csv:"quantity"`
	Status    string `csv:"status"`
}

// ReadOrdersCSV parses a headered CSV export into seed orders. created_at is
// RFC 3339 or a plain date; a blank status means pending.
func ReadOrdersCSV(r io.Reader) ([]commands.SeedOrder, error) {
	var records []orderRecord
	if err := gocsv.Unmarshal(r, &records); err != nil {
		if errors.Is(err, gocsv.ErrEmptyCSVFile) {
			return []commands.SeedOrder{}, nil
		}
		return nil, errs.NewValueIsInvalidErrorWithCause("csv", err)
	}

	seeds := make([]commands.SeedOrder, 0, len(records))
	for i, rec := range records {
		createdAt, err := parseDate(rec.CreatedAt)
		if err != nil {
			// Row 1 is the header.
			return nil, errs.NewValueIsInvalidErrorWithCause(fmt.Sprintf("csv row %d: created_at", i+2), err)
		}

		seeds = append(seeds, commands.SeedOrder{
			ID:        rec.ID,
			Product:   rec.Product,
			Zone:      rec.Zone,
			CreatedAt: createdAt,
			Quantity:  rec.Quantity,
			Status:    strings.TrimSpace(rec.Status),
		})
	}

	return seeds, nil
}

func parseDate(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("%q is neither RFC 3339 nor YYYY-MM-DD", raw)
}
