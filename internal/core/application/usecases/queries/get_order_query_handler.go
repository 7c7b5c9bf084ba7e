package queries

import (
	"context"
	"database/sql"
	"errors"

	"replenish/internal/core/domain/model/kernel"
	"replenish/internal/core/domain/model/order"
	"replenish/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrderQueryHandler serves the order detail view from the database.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for order detail queries.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle fetches the order header and its item lines. Returns an
// ObjectNotFoundError when no order exists with the given identifier.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (GetOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderQueryResponse{}, err
	}

	resp, err := h.fetchHeader(ctx, query.OrderID())
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	items, err := h.fetchItems(ctx, query.OrderID())
	if err != nil {
		return GetOrderQueryResponse{}, err
	}
	resp.Items = items

	return resp, nil
}

func (h GetOrderQueryHandler) fetchHeader(ctx context.Context, orderID kernel.UUID) (GetOrderQueryResponse, error) {
	var resp GetOrderQueryResponse
	var id, requesterID, branchID uuid.UUID
	var managerID uuid.NullUUID
	var status int
	var courier, trackingLink sql.NullString

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			number,
			status,
			requester_id,
			branch_id,
			manager_id,
			remarks,
			manager_reply,
			total_items,
			total_value,
			courier,
			tracking_link,
			created_at,
			received_at,
			auto_close_at
		FROM orders
		WHERE id = ?
	`, orderID.Bytes()).Row()

	err := row.Scan(
		&id,
		&resp.Number,
		&status,
		&requesterID,
		&branchID,
		&managerID,
		&resp.Remarks,
		&resp.ManagerReply,
		&resp.TotalItems,
		&resp.TotalValue,
		&courier,
		&trackingLink,
		&resp.CreatedAt,
		&resp.ReceivedAt,
		&resp.AutoCloseAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return GetOrderQueryResponse{}, errs.NewObjectNotFoundError("orderID", orderID.String())
	}
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
		return GetOrderQueryResponse{}, err
	}
	if resp.RequesterID, err = kernel.UUIDFromBytes(requesterID[:]); err != nil {
		return GetOrderQueryResponse{}, err
	}
	if resp.BranchID, err = kernel.UUIDFromBytes(branchID[:]); err != nil {
		return GetOrderQueryResponse{}, err
	}
	if managerID.Valid {
		manager, idErr := kernel.UUIDFromBytes(managerID.UUID[:])
		if idErr != nil {
			return GetOrderQueryResponse{}, idErr
		}
		resp.ManagerID = &manager
	}

	resp.Status = order.Status(status).String()
	resp.Courier = courier.String
	resp.TrackingLink = trackingLink.String
	return resp, nil
}

func (h GetOrderQueryHandler) fetchItems(ctx context.Context, orderID kernel.UUID) ([]GetOrderItemResponse, error) {
	items := make([]GetOrderItemResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			sku,
			qty_requested,
			qty_approved,
			unit_price,
			total_price
		FROM order_items
		WHERE order_id = ?
		ORDER BY sku
	`, orderID.Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var item GetOrderItemResponse
		var qtyApproved sql.NullInt64

		err = rows.Scan(
			&item.SKU,
			&item.QtyRequested,
			&qtyApproved,
			&item.UnitPrice,
			&item.TotalPrice,
		)
		if err != nil {
			return nil, err
		}

		if qtyApproved.Valid {
			qty := int(qtyApproved.Int64)
			item.QtyApproved = &qty
		}
		items = append(items, item)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}
