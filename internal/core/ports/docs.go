// Package ports declares the contracts between the application core and
// its adapters: the staging buffer that orders wait in and the ledger that
// completed orders are handed to.
package ports
