// Package commands contains the operations that change pipeline state.
// Each command is constructor-guarded and validated up front; its handler
// talks to the staging buffer and the delivery ledger only through ports.
package commands
