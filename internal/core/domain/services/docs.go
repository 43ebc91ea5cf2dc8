// Package services provides domain services that coordinate several aggregates
// of the fulfillment board.
//
// The package includes:
//   - AssignmentPolicy: gives an order to the least loaded handler
package services
