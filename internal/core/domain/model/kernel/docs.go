// Package kernel provides the shared primitives of the dispatch domain.
//
// The package includes:
//   - UUID: a value object identifying couriers (dispatch workers)
//   - Sequence: a goroutine-safe, monotonically increasing order number
//     generator shared by every producer that stages orders
//
// Both types are safe for concurrent use.
package kernel
