// Package order contains the replenishment order aggregate and its lifecycle
// state machine. The aggregate enforces every transition guard: who may act,
// from which status, with what evidence, and how item quantities reconcile
// during approval and issue replies.
//
// The package deliberately knows nothing about persistence or notification
// delivery. Repositories restore aggregates via RestoreOrder and persist them
// conditionally on the status they were loaded with; notification events are
// assembled by the application layer from the data this package returns.
package order
