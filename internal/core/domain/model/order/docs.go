// Package order provides the Order entity of the dispatch pipeline together
// with its value objects.
//
// The package includes:
//   - Order: identity, priority, lifecycle status, assigned courier and the
//     kind-specific attributes (distance, weight)
//   - Status: the lifecycle state machine
//     Pending -> InTransit -> Delivered, with Cancelled reachable from
//     Pending and InTransit
//   - Priority: the urgency class used by the staging buffer (High before
//     Medium before Low)
//   - Kind: the closed set of order variants (Food, Express, Parcel), each
//     with its own assignment checks and delivery-time estimate
//
// Orders are not internally synchronized. Ownership is exclusive: the
// staging buffer owns a Pending order, and after withdrawal exactly one
// courier owns it until it is handed to the ledger.
package order
