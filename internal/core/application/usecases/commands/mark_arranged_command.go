package commands

import (
	"errors"

	"replenish/internal/core/domain/model/kernel"
	"replenish/internal/pkg/errs"
	"replenish/internal/pkg/guard"
)

var ErrMarkArrangedCommandIsNotConstructed = errors.New(
	"MarkArrangedCommand must be created via NewMarkArrangedCommand constructor",
)

// MarkArrangedCommand finishes the arranging stage with proof attachments.
type MarkArrangedCommand struct { //nolint:recvcheck //using for validation
	orderID   kernel.UUID
	managerID kernel.UUID
	evidence  []string

	guard guard.ConstructorGuard
}

// NewMarkArrangedCommand validates identities and requires at least one
// evidence attachment.
func NewMarkArrangedCommand(orderID, managerID kernel.UUID, evidence []string) (MarkArrangedCommand, error) {
	cmd := MarkArrangedCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderID.Validate(),
		managerID.Validate(),
		cmd.setEvidence(evidence),
	); err != nil {
		return MarkArrangedCommand{}, err
	}

	cmd.orderID = orderID
	cmd.managerID = managerID
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c MarkArrangedCommand) Validate() error {
	return c.guard.Validate(ErrMarkArrangedCommandIsNotConstructed)
}

// OrderID returns the order finishing arrangement.
func (c MarkArrangedCommand) OrderID() kernel.UUID { return c.orderID }

// ManagerID returns the acting manager.
func (c MarkArrangedCommand) ManagerID() kernel.UUID { return c.managerID }

// Evidence returns the proof attachments.
func (c MarkArrangedCommand) Evidence() []string { return c.evidence }

func (c *MarkArrangedCommand) setEvidence(evidence []string) error {
	if len(evidence) == 0 {
		return errs.NewValueIsRequiredError("evidence")
	}

	c.evidence = evidence
	return nil
}
