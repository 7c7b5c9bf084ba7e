package commands

import (
	"errors"

	"replenish/internal/core/domain/model/kernel"
	"replenish/internal/pkg/guard"
)

var ErrStartPackagingCommandIsNotConstructed = errors.New(
	"StartPackagingCommand must be created via NewStartPackagingCommand constructor",
)

// StartPackagingCommand marks packaging as in progress.
type StartPackagingCommand struct {
	orderID   kernel.UUID
	managerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewStartPackagingCommand validates the order and manager identities.
func NewStartPackagingCommand(orderID, managerID kernel.UUID) (StartPackagingCommand, error) {
	if err := errors.Join(
		orderID.Validate(),
		managerID.Validate(),
	); err != nil {
		return StartPackagingCommand{}, err
	}

	return StartPackagingCommand{
		orderID:   orderID,
		managerID: managerID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c StartPackagingCommand) Validate() error {
	return c.guard.Validate(ErrStartPackagingCommandIsNotConstructed)
}

// OrderID returns the order under packaging.
func (c StartPackagingCommand) OrderID() kernel.UUID { return c.orderID }

// ManagerID returns the acting manager.
func (c StartPackagingCommand) ManagerID() kernel.UUID { return c.managerID }
