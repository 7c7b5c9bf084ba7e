package commands

import (
	"errors"

	"replenish/internal/core/domain/model/kernel"
	"replenish/internal/pkg/guard"
)

var ErrConfirmReceivedCommandIsNotConstructed = errors.New(
	"ConfirmReceivedCommand must be created via NewConfirmReceivedCommand constructor",
)

// ConfirmReceivedCommand records the requester's confirmation that the goods
// arrived. Confirming receipt starts the auto-close countdown.
type ConfirmReceivedCommand struct {
	orderID     kernel.UUID
	requesterID kernel.UUID

	guard guard.ConstructorGuard
}

// NewConfirmReceivedCommand validates the order and requester identities.
func NewConfirmReceivedCommand(orderID, requesterID kernel.UUID) (ConfirmReceivedCommand, error) {
	if err := errors.Join(
		orderID.Validate(),
		requesterID.Validate(),
	); err != nil {
		return ConfirmReceivedCommand{}, err
	}

	return ConfirmReceivedCommand{
		orderID:     orderID,
		requesterID: requesterID,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c ConfirmReceivedCommand) Validate() error {
	return c.guard.Validate(ErrConfirmReceivedCommandIsNotConstructed)
}

// OrderID returns the delivered order.
func (c ConfirmReceivedCommand) OrderID() kernel.UUID { return c.orderID }

// RequesterID returns the confirming requester.
func (c ConfirmReceivedCommand) RequesterID() kernel.UUID { return c.requesterID }
