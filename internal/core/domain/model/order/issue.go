package order

import (
	"time"

	"replenish/internal/pkg/errs"
)

// ItemIssue is a pre-fulfillment concern scoped to a single item.
// Issues raised together are collapsed into the order's remarks and block
// forward progress until the manager replies.
type ItemIssue struct {
	SKU    string
	Reason string
}

func (i ItemIssue) validate() error {
	if i.SKU == "" {
		return errs.NewValueIsRequiredError("issue sku")
	}
	if i.Reason == "" {
		return errs.NewValueIsRequiredError("issue reason")
	}
	return nil
}

// DeliveryIssue is a post-delivery quality report for a single item, raised
// after receipt is confirmed. Delivery issues are advisory: they never change
// the order status and never pause the auto-close deadline.
type DeliveryIssue struct {
	sku        string
	reason     string
	evidence   []string
	reportedAt time.Time
}

// NewDeliveryIssue creates a post-delivery issue report. Evidence is optional
// here, unlike stage transitions.
func NewDeliveryIssue(sku, reason string, evidence []string, reportedAt time.Time) (DeliveryIssue, error) {
	if sku == "" {
		return DeliveryIssue{}, errs.NewValueIsRequiredError("issue sku")
	}
	if reason == "" {
		return DeliveryIssue{}, errs.NewValueIsRequiredError("issue reason")
	}

	return DeliveryIssue{
		sku:        sku,
		reason:     reason,
		evidence:   append([]string(nil), evidence...),
		reportedAt: reportedAt,
	}, nil
}

// RestoreDeliveryIssue reconstructs a delivery issue from persistence.
func RestoreDeliveryIssue(sku, reason string, evidence []string, reportedAt time.Time) DeliveryIssue {
	return DeliveryIssue{sku: sku, reason: reason, evidence: evidence, reportedAt: reportedAt}
}

// SKU returns the affected item reference.
func (d DeliveryIssue) SKU() string {
	return d.sku
}

// Reason returns the reported concern.
func (d DeliveryIssue) Reason() string {
	return d.reason
}

// Evidence returns the attachment tokens grouped under this item's report.
func (d DeliveryIssue) Evidence() []string {
	return d.evidence
}

// ReportedAt returns when the issue was reported.
func (d DeliveryIssue) ReportedAt() time.Time {
	return d.reportedAt
}
