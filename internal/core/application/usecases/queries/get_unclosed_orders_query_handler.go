package queries

import (
	"context"

	"replenish/internal/core/domain/model/kernel"
	"replenish/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetUnclosedOrdersQueryHandler lists open orders from the database.
// Reads the orders table directly; the aggregate is not materialized.
type GetUnclosedOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetUnclosedOrdersQueryHandler creates a handler for the open-order listing.
func NewGetUnclosedOrdersQueryHandler(db *gorm.DB) GetUnclosedOrdersQueryHandler {
	return GetUnclosedOrdersQueryHandler{db: db}
}

// Handle returns every order not yet in ClosedOrder, sorted by creation time
// so the oldest open work surfaces first.
func (h GetUnclosedOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetUnclosedOrdersQuery,
) ([]GetUnclosedOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]GetUnclosedOrdersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			number,
			status,
			branch_id,
			total_items,
			total_value,
			created_at
		FROM orders
		WHERE status != ?
		ORDER BY created_at, id
	`, order.ClosedOrder).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetUnclosedOrdersQueryResponse
		var id, branchID uuid.UUID
		var status int

		err = rows.Scan(
			&id,
			&resp.Number,
			&status,
			&branchID,
			&resp.TotalItems,
			&resp.TotalValue,
			&resp.CreatedAt,
		)
		if err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.ID = orderID

		branch, idErr := kernel.UUIDFromBytes(branchID[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.BranchID = branch

		resp.Status = order.Status(status).String()
		orders = append(orders, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
