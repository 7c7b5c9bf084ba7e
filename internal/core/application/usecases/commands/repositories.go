// Package commands contains the business operations that drive the order
// workflow. Implements the Command pattern for write operations in the CQRS
// architecture. All commands follow a consistent pattern: validation,
// transaction management, a guarded aggregate transition, and exactly one
// notification event emitted after the commit.
package commands

import (
	"context"
	"time"

	"replenish/internal/core/domain/model/kernel"
	"replenish/internal/core/domain/model/order"
	"replenish/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles the database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// AssignmentRepoFactory provides access to the manager-branch assignment
	// repository within a transaction.
	AssignmentRepoFactory interface {
		AssignmentRepository() ports.AssignmentRepository
	}

	// OrderUoW manages transactions for order-only operations.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// UoW manages transactions for operations that also consult the
	// manager-branch assignment, such as approval.
	UoW interface {
		TxManager
		OrderRepoFactory
		AssignmentRepoFactory
	}

	// UoWFactory creates new full unit of work instances.
	UoWFactory interface {
		Create() UoW
	}
)

// newOrderEvent assembles the notification payload for a completed transition.
func newOrderEvent(eventType ports.EventType, o *order.Order, actorID kernel.UUID, occurredAt time.Time) ports.Event {
	return ports.Event{
		Type:        eventType,
		OrderID:     o.ID().String(),
		OrderNumber: o.Number(),
		Status:      o.Status().String(),
		ActorID:     actorID.String(),
		BranchID:    o.BranchID().String(),
		OccurredAt:  occurredAt,
	}
}
