package commands

import (
	"errors"

	"replenish/internal/core/domain/model/kernel"
	"replenish/internal/pkg/guard"
)

var ErrConfirmOrderCommandIsNotConstructed = errors.New(
	"ConfirmOrderCommand must be created via NewConfirmOrderCommand constructor",
)

// ConfirmOrderCommand records the requester's acceptance of the approved
// quantities.
type ConfirmOrderCommand struct {
	orderID     kernel.UUID
	requesterID kernel.UUID

	guard guard.ConstructorGuard
}

// NewConfirmOrderCommand validates the order and requester identities.
func NewConfirmOrderCommand(orderID, requesterID kernel.UUID) (ConfirmOrderCommand, error) {
	if err := errors.Join(
		orderID.Validate(),
		requesterID.Validate(),
	); err != nil {
		return ConfirmOrderCommand{}, err
	}

	return ConfirmOrderCommand{
		orderID:     orderID,
		requesterID: requesterID,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c ConfirmOrderCommand) Validate() error {
	return c.guard.Validate(ErrConfirmOrderCommandIsNotConstructed)
}

// OrderID returns the order being confirmed.
func (c ConfirmOrderCommand) OrderID() kernel.UUID { return c.orderID }

// RequesterID returns the confirming requester.
func (c ConfirmOrderCommand) RequesterID() kernel.UUID { return c.requesterID }
