// Package queries contains the read side: staging buffer occupancy, the
// delivery report and the courier roster. Queries never change state.
package queries
