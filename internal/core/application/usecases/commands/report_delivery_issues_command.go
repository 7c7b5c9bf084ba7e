package commands

import (
	"errors"

	"replenish/internal/core/domain/model/kernel"
	"replenish/internal/pkg/errs"
	"replenish/internal/pkg/guard"
)

var ErrReportDeliveryIssuesCommandIsNotConstructed = errors.New(
	"ReportDeliveryIssuesCommand must be created via NewReportDeliveryIssuesCommand constructor",
)

// DeliveryIssueLine is one post-delivery item report in the request payload.
type DeliveryIssueLine struct {
	SKU      string
	Reason   string
	Evidence []string
}

// ReportDeliveryIssuesCommand attaches post-delivery quality reports to a
// received order. This channel is advisory: the order status does not change
// and the auto-close deadline keeps running.
type ReportDeliveryIssuesCommand struct { //nolint:recvcheck //using for validation
	orderID     kernel.UUID
	requesterID kernel.UUID
	issues      []DeliveryIssueLine

	guard guard.ConstructorGuard
}

// NewReportDeliveryIssuesCommand validates identities and the issue payload.
func NewReportDeliveryIssuesCommand(orderID, requesterID kernel.UUID, issues []DeliveryIssueLine) (ReportDeliveryIssuesCommand, error) {
	cmd := ReportDeliveryIssuesCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderID.Validate(),
		requesterID.Validate(),
		cmd.setIssues(issues),
	); err != nil {
		return ReportDeliveryIssuesCommand{}, err
	}

	cmd.orderID = orderID
	cmd.requesterID = requesterID
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ReportDeliveryIssuesCommand) Validate() error {
	return c.guard.Validate(ErrReportDeliveryIssuesCommandIsNotConstructed)
}

// OrderID returns the received order.
func (c ReportDeliveryIssuesCommand) OrderID() kernel.UUID { return c.orderID }

// RequesterID returns the reporting requester.
func (c ReportDeliveryIssuesCommand) RequesterID() kernel.UUID { return c.requesterID }

// Issues returns the per-item reports.
func (c ReportDeliveryIssuesCommand) Issues() []DeliveryIssueLine { return c.issues }

func (c *ReportDeliveryIssuesCommand) setIssues(issues []DeliveryIssueLine) error {
	if len(issues) == 0 {
		return errs.NewValueIsRequiredError("issues")
	}
	for _, issue := range issues {
		if issue.SKU == "" {
			return errs.NewValueIsRequiredError("issue sku")
		}
		if issue.Reason == "" {
			return errs.NewValueIsRequiredError("issue reason")
		}
	}

	c.issues = issues
	return nil
}
