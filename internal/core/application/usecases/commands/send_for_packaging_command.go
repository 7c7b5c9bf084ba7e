package commands

import (
	"errors"

	"replenish/internal/core/domain/model/kernel"
	"replenish/internal/pkg/errs"
	"replenish/internal/pkg/guard"
)

var ErrSendForPackagingCommandIsNotConstructed = errors.New(
	"SendForPackagingCommand must be created via NewSendForPackagingCommand constructor",
)

// SendForPackagingCommand hands arranged goods to the packaging team, with
// proof attachments.
type SendForPackagingCommand struct { //nolint:recvcheck //using for validation
	orderID   kernel.UUID
	managerID kernel.UUID
	evidence  []string

	guard guard.ConstructorGuard
}

// NewSendForPackagingCommand validates identities and requires at least one
// evidence attachment.
func NewSendForPackagingCommand(orderID, managerID kernel.UUID, evidence []string) (SendForPackagingCommand, error) {
	cmd := SendForPackagingCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderID.Validate(),
		managerID.Validate(),
		cmd.setEvidence(evidence),
	); err != nil {
		return SendForPackagingCommand{}, err
	}

	cmd.orderID = orderID
	cmd.managerID = managerID
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c SendForPackagingCommand) Validate() error {
	return c.guard.Validate(ErrSendForPackagingCommandIsNotConstructed)
}

// OrderID returns the order being handed to packaging.
func (c SendForPackagingCommand) OrderID() kernel.UUID { return c.orderID }

// ManagerID returns the acting manager.
func (c SendForPackagingCommand) ManagerID() kernel.UUID { return c.managerID }

// Evidence returns the proof attachments.
func (c SendForPackagingCommand) Evidence() []string { return c.evidence }

func (c *SendForPackagingCommand) setEvidence(evidence []string) error {
	if len(evidence) == 0 {
		return errs.NewValueIsRequiredError("evidence")
	}

	c.evidence = evidence
	return nil
}
