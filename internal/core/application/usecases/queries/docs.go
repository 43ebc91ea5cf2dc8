// Package queries contains read operations for the fulfillment board.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries read straight from the database with SQL and return read models
// shaped for the dashboard, never aggregates.
package queries
