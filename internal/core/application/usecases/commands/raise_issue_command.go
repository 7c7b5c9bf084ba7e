package commands

import (
	"errors"

	"replenish/internal/core/domain/model/kernel"
	"replenish/internal/core/domain/model/order"
	"replenish/internal/pkg/errs"
	"replenish/internal/pkg/guard"
)

var ErrRaiseIssueCommandIsNotConstructed = errors.New(
	"RaiseIssueCommand must be created via NewRaiseIssueCommand constructor",
)

// RaiseIssueCommand carries the requester's item-scoped concerns about the
// approved quantities. Raising an issue blocks the fulfillment flow until the
// manager replies.
type RaiseIssueCommand struct { //nolint:recvcheck //using for validation
	orderID     kernel.UUID
	requesterID kernel.UUID
	issues      []order.ItemIssue

	guard guard.ConstructorGuard
}

// NewRaiseIssueCommand validates identities and the issue payload.
func NewRaiseIssueCommand(orderID, requesterID kernel.UUID, issues []order.ItemIssue) (RaiseIssueCommand, error) {
	cmd := RaiseIssueCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderID.Validate(),
		requesterID.Validate(),
		cmd.setIssues(issues),
	); err != nil {
		return RaiseIssueCommand{}, err
	}

	cmd.orderID = orderID
	cmd.requesterID = requesterID
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RaiseIssueCommand) Validate() error {
	return c.guard.Validate(ErrRaiseIssueCommandIsNotConstructed)
}

// OrderID returns the order the issue concerns.
func (c RaiseIssueCommand) OrderID() kernel.UUID { return c.orderID }

// RequesterID returns the reporting requester.
func (c RaiseIssueCommand) RequesterID() kernel.UUID { return c.requesterID }

// Issues returns the per-item concerns.
func (c RaiseIssueCommand) Issues() []order.ItemIssue { return c.issues }

func (c *RaiseIssueCommand) setIssues(issues []order.ItemIssue) error {
	if len(issues) == 0 {
		return errs.NewValueIsRequiredError("issues")
	}

	c.issues = issues
	return nil
}
