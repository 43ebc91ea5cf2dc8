// Package kernel provides the shared value objects of the fulfillment domain.
//
// The package includes:
//   - UUID: identifier of fulfillment handlers (staff members)
//   - OrderID: opaque, stable identifier of an order (e.g. "ORD-0001")
//   - Zone: shipping destination with its urgency weight and shipping days
//   - Product: product name with the multi-item "set" classification
//
// All value objects are immutable. Zero values are invalid and are rejected
// by their Validate methods, so aggregates built from them can rely on every
// field having passed through a constructor.
package kernel
