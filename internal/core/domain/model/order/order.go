package order

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"replenish/internal/core/domain/model/kernel"
	"replenish/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not
	// created through NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")

	// ErrAutoCloseDeadlineNotReached is returned when a close is attempted
	// before the working-hours deadline has elapsed.
	ErrAutoCloseDeadlineNotReached = errors.New("auto-close deadline has not been reached")
)

// Order is the aggregate root of the replenishment workflow. It owns the
// lifecycle status, the requested items, the issue records and the evidence
// collections, and it is the single place where transition guards are
// enforced.
//
// Invariants:
//   - status transitions follow the Status state machine
//   - requesterID and branchID are set at creation and immutable
//   - managerID is nil until the first manager action; once set it never
//     changes, and other managers are rejected with NotAuthorized
//   - totals are rederived whenever item quantities change
//   - the order is never deleted; ClosedOrder is a terminal status
//
// An order restored from persistence remembers the status it was loaded with
// (LoadedStatus). Repositories condition their UPDATE on that status so two
// racing transitions cannot both commit.
type Order struct {
	id          kernel.UUID
	number      string
	requesterID kernel.UUID
	branchID    kernel.UUID
	managerID   *kernel.UUID

	status Status
	items  []*Item

	remarks      string
	managerReply string

	totalItems int
	totalValue float64

	arrangingEvidence []string
	packagingEvidence []string
	transitEvidence   []string

	tracking       *Tracking
	deliveryIssues []DeliveryIssue

	createdAt    time.Time
	approvedAt   *time.Time
	dispatchedAt *time.Time
	receivedAt   *time.Time
	closedAt     *time.Time
	autoCloseAt  *time.Time

	loadedStatus     Status
	loadedIssueCount int
	isConstructed    bool
}

// NewOrder creates an order in UnderReview with one item per requested line.
// The human-readable order number is assigned here and never changes.
func NewOrder(id, requesterID, branchID kernel.UUID, items []*Item, now time.Time) (*Order, error) {
	if err := errors.Join(
		id.Validate(),
		requesterID.Validate(),
		branchID.Validate(),
	); err != nil {
		return nil, err
	}

	if len(items) == 0 {
		return nil, errs.NewValueIsRequiredError("items")
	}

	seen := make(map[string]struct{}, len(items))
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return nil, err
		}
		if _, dup := seen[item.SKU()]; dup {
			return nil, errs.NewValueIsInvalidErrorWithCause("items",
				fmt.Errorf("duplicate sku %s", item.SKU()))
		}
		seen[item.SKU()] = struct{}{}
	}

	o := &Order{
		id:            id,
		number:        newOrderNumber(id, now),
		requesterID:   requesterID,
		branchID:      branchID,
		status:        UnderReview,
		items:         items,
		createdAt:     now,
		loadedStatus:  Unknown,
		isConstructed: true,
	}
	o.recalcTotals()

	return o, nil
}

// newOrderNumber derives the sequence number shown to branch and manager
// staff: the creation date plus a short prefix of the order id.
func newOrderNumber(id kernel.UUID, at time.Time) string {
	return fmt.Sprintf("RO-%s-%s", at.Format("20060102"), strings.ToUpper(id.String()[:8]))
}

// RestoreArgs carries the persisted state needed to rebuild an Order.
type RestoreArgs struct {
	ID          kernel.UUID
	Number      string
	RequesterID kernel.UUID
	BranchID    kernel.UUID
	ManagerID   *kernel.UUID

	Status Status
	Items  []*Item

	Remarks      string
	ManagerReply string

	ArrangingEvidence []string
	PackagingEvidence []string
	TransitEvidence   []string

	Tracking       *Tracking
	DeliveryIssues []DeliveryIssue

	CreatedAt    time.Time
	ApprovedAt   *time.Time
	DispatchedAt *time.Time
	ReceivedAt   *time.Time
	ClosedAt     *time.Time
	AutoCloseAt  *time.Time
}

// RestoreOrder reconstructs an order from persistence. The restored order
// remembers its loaded status for conditional updates.
func RestoreOrder(args RestoreArgs) (*Order, error) {
	if err := errors.Join(
		args.ID.Validate(),
		args.RequesterID.Validate(),
		args.BranchID.Validate(),
		args.Status.Validate(),
	); err != nil {
		return nil, err
	}

	o := &Order{
		id:                args.ID,
		number:            args.Number,
		requesterID:       args.RequesterID,
		branchID:          args.BranchID,
		managerID:         args.ManagerID,
		status:            args.Status,
		items:             args.Items,
		remarks:           args.Remarks,
		managerReply:      args.ManagerReply,
		arrangingEvidence: args.ArrangingEvidence,
		packagingEvidence: args.PackagingEvidence,
		transitEvidence:   args.TransitEvidence,
		tracking:          args.Tracking,
		deliveryIssues:    args.DeliveryIssues,
		createdAt:         args.CreatedAt,
		approvedAt:        args.ApprovedAt,
		dispatchedAt:      args.DispatchedAt,
		receivedAt:        args.ReceivedAt,
		closedAt:          args.ClosedAt,
		autoCloseAt:       args.AutoCloseAt,
		loadedStatus:      args.Status,
		loadedIssueCount:  len(args.DeliveryIssues),
		isConstructed:     true,
	}
	o.recalcTotals()

	return o, nil
}

// Validate ensures the Order was built via NewOrder or RestoreOrder.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by identifier.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID { return o.id }

// Number returns the immutable human-readable sequence number.
func (o *Order) Number() string { return o.number }

// RequesterID returns the branch actor who created the order.
func (o *Order) RequesterID() kernel.UUID { return o.requesterID }

// BranchID returns the requesting branch.
func (o *Order) BranchID() kernel.UUID { return o.branchID }

// ManagerID returns the owning manager, or nil before the first manager action.
func (o *Order) ManagerID() *kernel.UUID { return o.managerID }

// Status returns the current lifecycle status.
func (o *Order) Status() Status { return o.status }

// LoadedStatus returns the status the order was restored with, or Unknown for
// a freshly created order. Repositories key conditional updates on it.
func (o *Order) LoadedStatus() Status { return o.loadedStatus }

// Items returns the order's lines.
func (o *Order) Items() []*Item { return o.items }

// Remarks returns the requester-side issue text.
func (o *Order) Remarks() string { return o.remarks }

// ManagerReply returns the manager's latest issue reply.
func (o *Order) ManagerReply() string { return o.managerReply }

// TotalItems returns the derived total quantity across items.
func (o *Order) TotalItems() int { return o.totalItems }

// TotalValue returns the derived order value.
func (o *Order) TotalValue() float64 { return o.totalValue }

// ArrangingEvidence returns attachment tokens proving the arranging stage.
func (o *Order) ArrangingEvidence() []string { return o.arrangingEvidence }

// PackagingEvidence returns attachment tokens proving the packaging hand-off.
func (o *Order) PackagingEvidence() []string { return o.packagingEvidence }

// TransitEvidence returns attachment tokens proving dispatch.
func (o *Order) TransitEvidence() []string { return o.transitEvidence }

// TrackingDetails returns courier tracking, or nil before dispatch.
func (o *Order) TrackingDetails() *Tracking { return o.tracking }

// DeliveryIssues returns the post-delivery issue reports.
func (o *Order) DeliveryIssues() []DeliveryIssue { return o.deliveryIssues }

// NewDeliveryIssues returns only the issues reported on this instance since
// it was loaded. Reports do not change the status, so the conditional update
// cannot see a concurrent report; persisting reports append-only keeps two
// writers from destroying each other's rows.
func (o *Order) NewDeliveryIssues() []DeliveryIssue {
	return o.deliveryIssues[o.loadedIssueCount:]
}

// CreatedAt returns the creation timestamp.
func (o *Order) CreatedAt() time.Time { return o.createdAt }

// ApprovedAt returns when a manager first approved, or nil.
func (o *Order) ApprovedAt() *time.Time { return o.approvedAt }

// DispatchedAt returns when the order entered transit, or nil.
func (o *Order) DispatchedAt() *time.Time { return o.dispatchedAt }

// ReceivedAt returns when the requester confirmed receipt, or nil.
func (o *Order) ReceivedAt() *time.Time { return o.receivedAt }

// ClosedAt returns when the scheduler closed the order, or nil.
func (o *Order) ClosedAt() *time.Time { return o.closedAt }

// AutoCloseAt returns the computed working-hours deadline, or nil before
// receipt is confirmed.
func (o *Order) AutoCloseAt() *time.Time { return o.autoCloseAt }

// claimManager binds the first acting manager to the order and rejects any
// other manager afterwards.
func (o *Order) claimManager(managerID kernel.UUID) error {
	if err := managerID.Validate(); err != nil {
		return err
	}
	if o.managerID == nil {
		o.managerID = &managerID
		return nil
	}
	if !o.managerID.IsEqual(managerID) {
		return errs.NewNotAuthorizedError(managerID.String(), "order is owned by another manager")
	}
	return nil
}

// requireRequester rejects actors other than the order's creator.
func (o *Order) requireRequester(actorID kernel.UUID) error {
	if err := actorID.Validate(); err != nil {
		return err
	}
	if !o.requesterID.IsEqual(actorID) {
		return errs.NewNotAuthorizedError(actorID.String(), "actor did not create this order")
	}
	return nil
}

// Approve runs quantity reconciliation over the supplied per-item quantities,
// binds the acting manager and moves the order to ConfirmPending. The order
// must be in UnderReview. The returned change map feeds the notification to
// the requester.
func (o *Order) Approve(managerID kernel.UUID, approvals []ItemApproval, now time.Time) (map[string]QuantityChange, error) {
	newStatus, err := o.status.Approve()
	if err != nil {
		return nil, err
	}

	if err = o.claimManager(managerID); err != nil {
		return nil, err
	}

	changes, err := o.applyApprovals(approvals)
	if err != nil {
		return nil, err
	}

	o.status = newStatus
	o.approvedAt = &now
	return changes, nil
}

// Confirm records the requester's acceptance of the approved quantities and
// moves the order to ApprovedOrder. No quantity change happens here.
func (o *Order) Confirm(requesterID kernel.UUID) error {
	if err := o.requireRequester(requesterID); err != nil {
		return err
	}

	newStatus, err := o.status.Confirm()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// RaiseIssue attaches one or more item-scoped concerns and moves the order to
// RaisedIssue. Every referenced item must exist on the order. The reasons are
// collapsed into the order's remarks for the manager to read.
func (o *Order) RaiseIssue(requesterID kernel.UUID, issues []ItemIssue) error {
	if err := o.requireRequester(requesterID); err != nil {
		return err
	}

	newStatus, err := o.status.RaiseIssue()
	if err != nil {
		return err
	}

	if len(issues) == 0 {
		return errs.NewValueIsRequiredError("issues")
	}

	parts := make([]string, 0, len(issues))
	for _, issue := range issues {
		if err = issue.validate(); err != nil {
			return err
		}
		if o.findItem(issue.SKU) == nil {
			return errs.NewItemNotFoundError(issue.SKU)
		}
		parts = append(parts, fmt.Sprintf("%s: %s", issue.SKU, issue.Reason))
	}

	o.remarks = strings.Join(parts, "; ")
	o.status = newStatus
	return nil
}

// ReplyToIssue records the manager's reply to a raised issue and moves the
// order back to ConfirmPending. The reply may adjust quantities per replied
// item, which re-runs reconciliation; the returned map is nil when no
// adjustments were supplied.
func (o *Order) ReplyToIssue(managerID kernel.UUID, reply string, adjustments []ItemApproval) (map[string]QuantityChange, error) {
	newStatus, err := o.status.ReplyToIssue()
	if err != nil {
		return nil, err
	}

	if err = o.claimManager(managerID); err != nil {
		return nil, err
	}

	if reply == "" {
		return nil, errs.NewValueIsRequiredError("reply")
	}

	var changes map[string]QuantityChange
	if len(adjustments) > 0 {
		if changes, err = o.applyApprovals(adjustments); err != nil {
			return nil, err
		}
	}

	o.managerReply = reply
	o.status = newStatus
	return changes, nil
}

// StartArranging moves an approved order into the Arranging sub-stage.
func (o *Order) StartArranging(managerID kernel.UUID) error {
	newStatus, err := o.status.StartArranging()
	if err != nil {
		return err
	}
	if err = o.claimManager(managerID); err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// MarkArranged finishes the arranging stage. At least one evidence attachment
// must prove the physical handling step.
func (o *Order) MarkArranged(managerID kernel.UUID, evidence []string) error {
	newStatus, err := o.status.MarkArranged()
	if err != nil {
		return err
	}
	if err = o.claimManager(managerID); err != nil {
		return err
	}
	if len(evidence) == 0 {
		return errs.NewEvidenceRequiredError(Arranged.String())
	}

	o.arrangingEvidence = append(o.arrangingEvidence, evidence...)
	o.status = newStatus
	return nil
}

// SendForPackaging hands the goods to packaging, with mandatory evidence.
func (o *Order) SendForPackaging(managerID kernel.UUID, evidence []string) error {
	newStatus, err := o.status.SendForPackaging()
	if err != nil {
		return err
	}
	if err = o.claimManager(managerID); err != nil {
		return err
	}
	if len(evidence) == 0 {
		return errs.NewEvidenceRequiredError(SentForPackaging.String())
	}

	o.packagingEvidence = append(o.packagingEvidence, evidence...)
	o.status = newStatus
	return nil
}

// StartPackaging marks packaging as in progress. No evidence is required for
// this step.
func (o *Order) StartPackaging(managerID kernel.UUID) error {
	newStatus, err := o.status.StartPackaging()
	if err != nil {
		return err
	}
	if err = o.claimManager(managerID); err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// Dispatch moves the order into transit. Tracking details and at least one
// evidence attachment are mandatory. The auto-close deadline is NOT set here;
// it starts only once receipt is confirmed.
func (o *Order) Dispatch(managerID kernel.UUID, tracking Tracking, evidence []string, now time.Time) error {
	newStatus, err := o.status.Dispatch()
	if err != nil {
		return err
	}
	if err = o.claimManager(managerID); err != nil {
		return err
	}
	if err = tracking.Validate(); err != nil {
		return err
	}
	if len(evidence) == 0 {
		return errs.NewEvidenceRequiredError(InTransit.String())
	}

	o.tracking = &tracking
	o.transitEvidence = append(o.transitEvidence, evidence...)
	o.dispatchedAt = &now
	o.status = newStatus
	return nil
}

// ConfirmReceived records receipt and starts the auto-close deadline, which
// the caller computes from the business calendar.
func (o *Order) ConfirmReceived(requesterID kernel.UUID, now, autoCloseAt time.Time) error {
	if err := o.requireRequester(requesterID); err != nil {
		return err
	}

	newStatus, err := o.status.ConfirmReceived()
	if err != nil {
		return err
	}

	if !autoCloseAt.After(now) {
		return errs.NewValueIsInvalidErrorWithCause("autoCloseAt",
			fmt.Errorf("deadline %s is not after receipt time %s", autoCloseAt, now))
	}

	o.receivedAt = &now
	o.autoCloseAt = &autoCloseAt
	o.status = newStatus
	return nil
}

// ReportDeliveryIssues attaches post-delivery per-item quality reports. This
// is a parallel side-channel: the status does not change and the auto-close
// deadline keeps running.
func (o *Order) ReportDeliveryIssues(requesterID kernel.UUID, issues []DeliveryIssue) error {
	if err := o.requireRequester(requesterID); err != nil {
		return err
	}

	if o.status != ConfirmOrderReceived {
		return errs.NewInvalidStateError("report delivery issues on", o.status.String())
	}

	if len(issues) == 0 {
		return errs.NewValueIsRequiredError("issues")
	}

	for _, issue := range issues {
		if o.findItem(issue.SKU()) == nil {
			return errs.NewItemNotFoundError(issue.SKU())
		}
	}

	o.deliveryIssues = append(o.deliveryIssues, issues...)
	return nil
}

// Close performs the scheduler's terminal transition. The order must be in
// ConfirmOrderReceived with an elapsed auto-close deadline.
func (o *Order) Close(now time.Time) error {
	newStatus, err := o.status.Close()
	if err != nil {
		return err
	}

	if o.autoCloseAt == nil || o.autoCloseAt.After(now) {
		return ErrAutoCloseDeadlineNotReached
	}

	o.closedAt = &now
	o.status = newStatus
	return nil
}
