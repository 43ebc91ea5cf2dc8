package kernel

import (
	"math/rand/v2"
	"strings"

	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

// Catalog zone names.
const (
	ZoneNorte          = "Zona Norte"
	ZoneCentro         = "Zona Centro"
	ZoneBajioOccidente = "Zona Bajío-Occidente"
	ZoneSur            = "Zona Sur"
)

type zoneProfile struct {
	weight       int
	shippingDays int
}

// zoneCatalog lists the shipping zones in display order. The farther the zone,
// the higher its urgency weight.
var zoneCatalog = []struct {
	name    string
	profile zoneProfile
}{
	{ZoneNorte, zoneProfile{weight: 0, shippingDays: 2}},
	{ZoneCentro, zoneProfile{weight: 5, shippingDays: 3}},
	{ZoneBajioOccidente, zoneProfile{weight: 10, shippingDays: 4}},
	{ZoneSur, zoneProfile{weight: 15, shippingDays: 5}},
}

// ErrZoneIsNotConstructed is returned when validating a zero-value Zone.
var ErrZoneIsNotConstructed = errs.NewValueIsRequiredError("zone must be created via NewZone")

// Zone is a shipping destination category. Names outside the catalog are
// accepted and carry no urgency weight.
type Zone struct { //nolint:recvcheck //using for validation
	name  string
	guard guard.ConstructorGuard
}

// NewZone normalizes the name (trimmed, en-dash spelled as hyphen) and builds a Zone.
func NewZone(name string) (Zone, error) {
	z := Zone{
		guard: guard.NewConstructorGuard(),
	}

	if err := z.setName(name); err != nil {
		return Zone{}, err
	}

	return z, nil
}

// NewRandomZone picks a catalog zone.
func NewRandomZone(rng *rand.Rand) (Zone, error) {
	entry := zoneCatalog[rng.IntN(len(zoneCatalog))]
	return NewZone(entry.name)
}

// Zones returns the catalog zones in display order.
func Zones() []Zone {
	zones := make([]Zone, 0, len(zoneCatalog))
	for _, entry := range zoneCatalog {
		zones = append(zones, Zone{name: entry.name, guard: guard.NewConstructorGuard()})
	}
	return zones
}

func (z Zone) Validate() error {
	return z.guard.Validate(ErrZoneIsNotConstructed)
}

func (z Zone) Name() string {
	return z.name
}

func (z Zone) String() string {
	return z.name
}

// IsKnown reports whether the zone is part of the catalog.
func (z Zone) IsKnown() bool {
	_, ok := z.profile()
	return ok
}

// Weight is the urgency bonus added to the priority score; 0 for unknown zones.
func (z Zone) Weight() int {
	p, _ := z.profile()
	return p.weight
}

// ShippingDays is the expected transit time; 0 for unknown zones.
func (z Zone) ShippingDays() int {
	p, _ := z.profile()
	return p.shippingDays
}

func (z Zone) IsEqual(other Zone) bool {
	return z.name == other.name
}

func (z Zone) profile() (zoneProfile, bool) {
	for _, entry := range zoneCatalog {
		if entry.name == z.name {
			return entry.profile, true
		}
	}
	return zoneProfile{}, false
}

func (z *Zone) setName(name string) error {
	normalized := strings.TrimSpace(strings.ReplaceAll(name, "–", "-"))
	if normalized == "" {
		return errs.NewValueIsRequiredError("zone")
	}

	z.name = normalized
	return nil
}
