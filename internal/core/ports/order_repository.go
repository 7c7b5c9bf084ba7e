// Package ports defines the narrow interfaces between the workflow core and
// its collaborators: the order store, the manager-branch resolver and the
// notification gateway. These contracts enable dependency inversion and
// testability.
package ports

import (
	"context"
	"time"

	"replenish/internal/core/domain/model/kernel"
	"replenish/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
//
// Update is a conditional atomic update: the implementation must apply the
// aggregate's mutations only while the stored status still equals the status
// the aggregate was loaded with (order.LoadedStatus). When the guard fails,
// Update returns an InvalidStateError so a racing transition loses cleanly
// instead of overwriting the winner.
type OrderRepository interface {
	// Add persists a newly created order with its items.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists aggregate mutations conditionally on the loaded status.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order with all items, tracking and issue records.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// FindDueForAutoClose returns orders in ConfirmOrderReceived whose
	// auto-close deadline is at or before now. Closed orders are never
	// selected.
	FindDueForAutoClose(ctx context.Context, now time.Time) ([]*order.Order, error)
}
