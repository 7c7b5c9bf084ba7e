// Package orderrepo persists the order aggregate: the order row, its item
// lines and its post-delivery issue reports. The package owns the mapping
// between domain entities and their relational representation.
package orderrepo

import (
	"time"

	"replenish/internal/core/domain/model/kernel"
	"replenish/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// OrderDTO is the database row for an order aggregate. Evidence collections
// are stored as postgres text arrays; items and delivery issues live in child
// tables keyed by the order id.
type OrderDTO struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Number      string     `gorm:"uniqueIndex"`
	RequesterID uuid.UUID  `gorm:"type:uuid;index"`
	BranchID    uuid.UUID  `gorm:"type:uuid;index"`
	ManagerID   *uuid.UUID `gorm:"type:uuid;index"`

	Status       int `gorm:"index"`
	Remarks      string
	ManagerReply string

	TotalItems int
	TotalValue float64

	ArrangingEvidence pq.StringArray `gorm:"type:text[]"`
	PackagingEvidence pq.StringArray `gorm:"type:text[]"`
	TransitEvidence   pq.StringArray `gorm:"type:text[]"`

	Courier      *string
	TrackingLink *string

	CreatedAt    time.Time
	ApprovedAt   *time.Time
	DispatchedAt *time.Time
	ReceivedAt   *time.Time
	ClosedAt     *time.Time
	AutoCloseAt  *time.Time `gorm:"index"`

	Items          []OrderItemDTO     `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	DeliveryIssues []DeliveryIssueDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName overrides GORM's default naming to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// OrderItemDTO is one item line, keyed by order id and SKU.
type OrderItemDTO struct {
	OrderID      uuid.UUID `gorm:"type:uuid;primaryKey"`
	SKU          string    `gorm:"primaryKey;column:sku"`
	QtyRequested int
	QtyApproved  *int
	UnitPrice    float64
	TotalPrice   float64
}

// TableName overrides GORM's default naming to use "order_items".
func (OrderItemDTO) TableName() string {
	return "order_items"
}

// DeliveryIssueDTO is one post-delivery item report.
type DeliveryIssueDTO struct {
	ID         uint      `gorm:"primaryKey;autoIncrement"`
	OrderID    uuid.UUID `gorm:"type:uuid;index"`
	SKU        string    `gorm:"column:sku"`
	Reason     string
	Evidence   pq.StringArray `gorm:"type:text[]"`
	ReportedAt time.Time
}

// TableName overrides GORM's default naming to use "delivery_issues".
func (DeliveryIssueDTO) TableName() string {
	return "delivery_issues"
}

// fromDomain maps an order aggregate to its database rows.
func fromDomain(aggregate *order.Order) OrderDTO {
	var managerID *uuid.UUID
	if id := aggregate.ManagerID(); id != nil {
		raw := id.Bytes()
		managerID = &raw
	}

	var courier, trackingLink *string
	if tracking := aggregate.TrackingDetails(); tracking != nil {
		c := tracking.Courier()
		l := tracking.Link()
		courier = &c
		trackingLink = &l
	}

	items := make([]OrderItemDTO, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		items = append(items, OrderItemDTO{
			OrderID:      aggregate.ID().Bytes(),
			SKU:          item.SKU(),
			QtyRequested: item.QtyRequested(),
			QtyApproved:  item.QtyApproved(),
			UnitPrice:    item.UnitPrice(),
			TotalPrice:   item.TotalPrice(),
		})
	}

	issues := make([]DeliveryIssueDTO, 0, len(aggregate.DeliveryIssues()))
	for _, issue := range aggregate.DeliveryIssues() {
		issues = append(issues, DeliveryIssueDTO{
			OrderID:    aggregate.ID().Bytes(),
			SKU:        issue.SKU(),
			Reason:     issue.Reason(),
			Evidence:   issue.Evidence(),
			ReportedAt: issue.ReportedAt(),
		})
	}

	return OrderDTO{
		ID:                aggregate.ID().Bytes(),
		Number:            aggregate.Number(),
		RequesterID:       aggregate.RequesterID().Bytes(),
		BranchID:          aggregate.BranchID().Bytes(),
		ManagerID:         managerID,
		Status:            int(aggregate.Status()),
		Remarks:           aggregate.Remarks(),
		ManagerReply:      aggregate.ManagerReply(),
		TotalItems:        aggregate.TotalItems(),
		TotalValue:        aggregate.TotalValue(),
		ArrangingEvidence: aggregate.ArrangingEvidence(),
		PackagingEvidence: aggregate.PackagingEvidence(),
		TransitEvidence:   aggregate.TransitEvidence(),
		Courier:           courier,
		TrackingLink:      trackingLink,
		CreatedAt:         aggregate.CreatedAt(),
		ApprovedAt:        aggregate.ApprovedAt(),
		DispatchedAt:      aggregate.DispatchedAt(),
		ReceivedAt:        aggregate.ReceivedAt(),
		ClosedAt:          aggregate.ClosedAt(),
		AutoCloseAt:       aggregate.AutoCloseAt(),
		Items:             items,
		DeliveryIssues:    issues,
	}
}

// toDomain rebuilds an order aggregate from its database rows.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	requesterID, err := kernel.UUIDFromBytes(dto.RequesterID[:])
	if err != nil {
		return nil, err
	}

	branchID, err := kernel.UUIDFromBytes(dto.BranchID[:])
	if err != nil {
		return nil, err
	}

	var managerID *kernel.UUID
	if dto.ManagerID != nil {
		mID, managerErr := kernel.UUIDFromBytes((*dto.ManagerID)[:])
		if managerErr != nil {
			return nil, managerErr
		}
		managerID = &mID
	}

	items := make([]*order.Item, 0, len(dto.Items))
	for _, item := range dto.Items {
		items = append(items, order.RestoreItem(
			item.SKU,
			item.QtyRequested,
			item.QtyApproved,
			item.UnitPrice,
			item.TotalPrice,
		))
	}

	issues := make([]order.DeliveryIssue, 0, len(dto.DeliveryIssues))
	for _, issue := range dto.DeliveryIssues {
		issues = append(issues, order.RestoreDeliveryIssue(
			issue.SKU,
			issue.Reason,
			issue.Evidence,
			issue.ReportedAt,
		))
	}

	var tracking *order.Tracking
	if dto.Courier != nil {
		link := ""
		if dto.TrackingLink != nil {
			link = *dto.TrackingLink
		}
		t, trackingErr := order.NewTracking(*dto.Courier, link)
		if trackingErr != nil {
			return nil, trackingErr
		}
		tracking = &t
	}

	return order.RestoreOrder(order.RestoreArgs{
		ID:                id,
		Number:            dto.Number,
		RequesterID:       requesterID,
		BranchID:          branchID,
		ManagerID:         managerID,
		Status:            order.Status(dto.Status),
		Items:             items,
		Remarks:           dto.Remarks,
		ManagerReply:      dto.ManagerReply,
		ArrangingEvidence: dto.ArrangingEvidence,
		PackagingEvidence: dto.PackagingEvidence,
		TransitEvidence:   dto.TransitEvidence,
		Tracking:          tracking,
		DeliveryIssues:    issues,
		CreatedAt:         dto.CreatedAt,
		ApprovedAt:        dto.ApprovedAt,
		DispatchedAt:      dto.DispatchedAt,
		ReceivedAt:        dto.ReceivedAt,
		ClosedAt:          dto.ClosedAt,
		AutoCloseAt:       dto.AutoCloseAt,
	})
}
