package commands

import (
	"errors"

	"replenish/internal/core/domain/model/kernel"
	"replenish/internal/pkg/guard"
)

var ErrStartArrangingCommandIsNotConstructed = errors.New(
	"StartArrangingCommand must be created via NewStartArrangingCommand constructor",
)

// StartArrangingCommand begins the physical arranging of an approved order.
type StartArrangingCommand struct {
	orderID   kernel.UUID
	managerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewStartArrangingCommand validates the order and manager identities.
func NewStartArrangingCommand(orderID, managerID kernel.UUID) (StartArrangingCommand, error) {
	if err := errors.Join(
		orderID.Validate(),
		managerID.Validate(),
	); err != nil {
		return StartArrangingCommand{}, err
	}

	return StartArrangingCommand{
		orderID:   orderID,
		managerID: managerID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c StartArrangingCommand) Validate() error {
	return c.guard.Validate(ErrStartArrangingCommandIsNotConstructed)
}

// OrderID returns the order entering the arranging stage.
func (c StartArrangingCommand) OrderID() kernel.UUID { return c.orderID }

// ManagerID returns the acting manager.
func (c StartArrangingCommand) ManagerID() kernel.UUID { return c.managerID }
