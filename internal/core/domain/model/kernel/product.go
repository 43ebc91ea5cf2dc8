package kernel

import (
	"math/rand/v2"
	"strings"

	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

// setMarker identifies multi-item gift sets, which take longer to pack.
const setMarker = "Set"

var productCatalog = []string{
	"Tundra Eau de Parfum",
	"Set LeBoret No. 1",
	"Set Descubriendo LeBoret",
	"Sahara Eau de Parfum",
	"Manhattan Eau de Parfum",
}

// ErrProductIsNotConstructed is returned when validating a zero-value Product.
var ErrProductIsNotConstructed = errs.NewValueIsRequiredError("product must be created via NewProduct")

// Product is the name of the item being fulfilled.
type Product struct { //nolint:recvcheck //using for validation
	name  string
	guard guard.ConstructorGuard
}

func NewProduct(name string) (Product, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return Product{}, errs.NewValueIsRequiredError("product")
	}

	return Product{name: trimmed, guard: guard.NewConstructorGuard()}, nil
}

// NewRandomProduct picks a catalog product.
func NewRandomProduct(rng *rand.Rand) (Product, error) {
	return NewProduct(productCatalog[rng.IntN(len(productCatalog))])
}

func (p Product) Validate() error {
	return p.guard.Validate(ErrProductIsNotConstructed)
}

func (p Product) Name() string {
	return p.name
}

func (p Product) String() string {
	return p.name
}

// IsSet reports whether the product is a multi-item set.
func (p Product) IsSet() bool {
	return strings.Contains(p.name, setMarker)
}
