// Package staff models the people who pick and pack orders.
//
// A Handler has a capacity and a running count of orders it has been given.
// The ratio between the two is the load the assignment policy balances.
package staff
