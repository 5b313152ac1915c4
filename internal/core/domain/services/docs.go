// Package services provides domain services that span more than one
// entity of the dispatch pipeline.
//
// The package includes:
//   - OrderDispatcher: picks the most urgent staged order and drives the
//     order through its courier-side transitions (dispatch, deliver, abandon)
package services
