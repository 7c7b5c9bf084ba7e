package commands

import (
	"errors"

	"replenish/internal/core/domain/model/kernel"
	"replenish/internal/core/domain/model/order"
	"replenish/internal/pkg/errs"
	"replenish/internal/pkg/guard"
)

var ErrReplyIssueCommandIsNotConstructed = errors.New(
	"ReplyIssueCommand must be created via NewReplyIssueCommand constructor",
)

// ReplyIssueCommand carries the manager's answer to a raised issue, with
// optional per-item quantity adjustments that re-run reconciliation.
type ReplyIssueCommand struct { //nolint:recvcheck //using for validation
	orderID     kernel.UUID
	managerID   kernel.UUID
	reply       string
	adjustments []order.ItemApproval

	guard guard.ConstructorGuard
}

// NewReplyIssueCommand validates identities and the reply text. Adjustments
// are optional; when present they are checked for negative quantities.
func NewReplyIssueCommand(orderID, managerID kernel.UUID, reply string, adjustments []order.ItemApproval) (ReplyIssueCommand, error) {
	cmd := ReplyIssueCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderID.Validate(),
		managerID.Validate(),
		cmd.setReply(reply),
		cmd.setAdjustments(adjustments),
	); err != nil {
		return ReplyIssueCommand{}, err
	}

	cmd.orderID = orderID
	cmd.managerID = managerID
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ReplyIssueCommand) Validate() error {
	return c.guard.Validate(ErrReplyIssueCommandIsNotConstructed)
}

// OrderID returns the disputed order.
func (c ReplyIssueCommand) OrderID() kernel.UUID { return c.orderID }

// ManagerID returns the replying manager.
func (c ReplyIssueCommand) ManagerID() kernel.UUID { return c.managerID }

// Reply returns the manager's answer text.
func (c ReplyIssueCommand) Reply() string { return c.reply }

// Adjustments returns the optional quantity adjustments.
func (c ReplyIssueCommand) Adjustments() []order.ItemApproval { return c.adjustments }

func (c *ReplyIssueCommand) setReply(reply string) error {
	if reply == "" {
		return errs.NewValueIsRequiredError("reply")
	}

	c.reply = reply
	return nil
}

func (c *ReplyIssueCommand) setAdjustments(adjustments []order.ItemApproval) error {
	for _, adjustment := range adjustments {
		if adjustment.SKU == "" {
			return errs.NewValueIsRequiredError("adjustment sku")
		}
		if adjustment.QtyApproved < 0 {
			return errs.NewInvalidQuantityError(adjustment.SKU, adjustment.QtyApproved)
		}
	}

	c.adjustments = adjustments
	return nil
}
