// Package order holds the Order aggregate of the fulfillment board together
// with the pure rules that rank it.
//
// The package includes:
//   - Order: the aggregate that carries product, zone, age, status and the
//     handler it was given to, plus its cached priority score
//   - Status: pending, processing or ready; any status may follow any other
//   - CalculatePriorityScore: age, zone distance and set packing folded into
//     a score between 0 and 100
//   - Level and Filter: the bands and views the board is read through
//
// Key business rules:
//   - Every day of age adds 10 points, far zones add up to 15, sets add 5
//   - Scores never exceed 100
//   - Orders scoring 70 or more are critical and make up the priority view
package order
