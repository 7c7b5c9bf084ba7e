package queries

import (
	"errors"
	"time"

	"replenish/internal/core/domain/model/kernel"
	"replenish/internal/pkg/guard"
)

var ErrGetOrderQueryIsNotConstructed = errors.New(
	"GetOrderQuery must be created via NewGetOrderQuery constructor",
)

// GetOrderQuery retrieves the full detail view of a single order, including
// its items and reconciliation state.
type GetOrderQuery struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrderQuery creates a detail query for the given order.
func NewGetOrderQuery(orderID kernel.UUID) (GetOrderQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderQuery{}, err
	}

	return GetOrderQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

// OrderID returns the requested order identifier.
func (q GetOrderQuery) OrderID() kernel.UUID { return q.orderID }

// GetOrderItemResponse is one item line of the detail view. QtyApproved is
// nil while the order is still under review.
type GetOrderItemResponse struct {
	SKU          string
	QtyRequested int
	QtyApproved  *int
	UnitPrice    float64
	TotalPrice   float64
}

// GetOrderQueryResponse is the order detail view.
type GetOrderQueryResponse struct {
	ID           kernel.UUID
	Number       string
	Status       string
	RequesterID  kernel.UUID
	BranchID     kernel.UUID
	ManagerID    *kernel.UUID
	Items        []GetOrderItemResponse
	Remarks      string
	ManagerReply string
	TotalItems   int
	TotalValue   float64
	Courier      string
	TrackingLink string
	CreatedAt    time.Time
	ReceivedAt   *time.Time
	AutoCloseAt  *time.Time
}
