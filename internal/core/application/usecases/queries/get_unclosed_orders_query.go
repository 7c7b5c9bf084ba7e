// Package queries contains the read side of the workflow: denormalized
// projections served straight from the database, bypassing the aggregate.
package queries

import (
	"errors"
	"time"

	"replenish/internal/core/domain/model/kernel"
	"replenish/internal/pkg/guard"
)

var ErrGetUnclosedOrdersQueryIsNotConstructed = errors.New(
	"GetUnclosedOrdersQuery must be created via NewGetUnclosedOrdersQuery constructor",
)

// GetUnclosedOrdersQuery retrieves every order that has not reached the
// terminal ClosedOrder status, for branch and manager dashboards.
type GetUnclosedOrdersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetUnclosedOrdersQuery creates a query for all open orders.
func NewGetUnclosedOrdersQuery() GetUnclosedOrdersQuery {
	return GetUnclosedOrdersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetUnclosedOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetUnclosedOrdersQueryIsNotConstructed)
}

// GetUnclosedOrdersQueryResponse is one open order row in the listing.
type GetUnclosedOrdersQueryResponse struct {
	ID         kernel.UUID
	Number     string
	Status     string
	BranchID   kernel.UUID
	TotalItems int
	TotalValue float64
	CreatedAt  time.Time
}
