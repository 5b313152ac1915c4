// Package courier provides the Courier entity: the identity a dispatch
// worker stamps on the orders it takes.
package courier
