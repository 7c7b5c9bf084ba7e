package orderrepo

import (
	"context"
	"errors"
	"time"

	"replenish/internal/core/domain/model/kernel"
	"replenish/internal/core/domain/model/order"
	"replenish/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormOrderRepository implements OrderRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new order with its item lines.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update persists aggregate mutations conditionally: the order row is written
// only while its stored status still equals the status the aggregate was
// loaded with. When another transition committed in between, zero rows match
// and the caller gets an InvalidStateError instead of overwriting the winner.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&OrderDTO{}).
		Where("id = ? AND status = ?", dto.ID, int(aggregate.LoadedStatus())).
		Updates(map[string]any{
			"number":             dto.Number,
			"requester_id":       dto.RequesterID,
			"branch_id":          dto.BranchID,
			"manager_id":         dto.ManagerID,
			"status":             dto.Status,
			"remarks":            dto.Remarks,
			"manager_reply":      dto.ManagerReply,
			"total_items":        dto.TotalItems,
			"total_value":        dto.TotalValue,
			"arranging_evidence": dto.ArrangingEvidence,
			"packaging_evidence": dto.PackagingEvidence,
			"transit_evidence":   dto.TransitEvidence,
			"courier":            dto.Courier,
			"tracking_link":      dto.TrackingLink,
			"approved_at":        dto.ApprovedAt,
			"dispatched_at":      dto.DispatchedAt,
			"received_at":        dto.ReceivedAt,
			"closed_at":          dto.ClosedAt,
			"auto_close_at":      dto.AutoCloseAt,
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewInvalidStateError("persist changes to", aggregate.LoadedStatus().String())
	}

	if err := r.updateChildren(ctx, dto, aggregate); err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// updateChildren upserts item lines and appends newly reported delivery
// issues. Item lines never disappear from an order, so an upsert is
// sufficient. Issue rows are append-only: a report does not change the order
// status, so the conditional guard on the order row cannot see a concurrent
// report. Only the rows this instance added are inserted; existing rows are
// never rewritten or deleted.
func (r *GormOrderRepository) updateChildren(ctx context.Context, dto OrderDTO, aggregate *order.Order) error {
	if len(dto.Items) > 0 {
		err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "order_id"}, {Name: "sku"}},
			UpdateAll: true,
		}).Create(&dto.Items).Error
		if err != nil {
			return err
		}
	}

	newIssues := aggregate.NewDeliveryIssues()
	if len(newIssues) == 0 {
		return nil
	}

	rows := make([]DeliveryIssueDTO, 0, len(newIssues))
	for _, issue := range newIssues {
		rows = append(rows, DeliveryIssueDTO{
			OrderID:    dto.ID,
			SKU:        issue.SKU(),
			Reason:     issue.Reason(),
			Evidence:   issue.Evidence(),
			ReportedAt: issue.ReportedAt(),
		})
	}

	return r.db.WithContext(ctx).Create(&rows).Error
}

// Get retrieves an order with its items, tracking and issue records.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	err := r.db.WithContext(ctx).
		Preload("Items").
		Preload("DeliveryIssues").
		First(&dto, "id = ?", id.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// FindDueForAutoClose retrieves orders in ConfirmOrderReceived whose deadline
// is at or before now. A delayed sweep still picks up everything it missed.
func (r *GormOrderRepository) FindDueForAutoClose(ctx context.Context, now time.Time) ([]*order.Order, error) {
	var dtos []OrderDTO
	err := r.db.WithContext(ctx).
		Preload("Items").
		Preload("DeliveryIssues").
		Where("status = ? AND auto_close_at <= ?", int(order.ConfirmOrderReceived), now).
		Order("auto_close_at").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		o, domainErr := toDomain(dto)
		if domainErr != nil {
			return nil, domainErr
		}
		orders = append(orders, o)
	}

	return orders, nil
}
