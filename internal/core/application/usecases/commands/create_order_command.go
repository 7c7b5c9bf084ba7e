package commands

import (
	"errors"

	"replenish/internal/core/domain/model/kernel"
	"replenish/internal/pkg/errs"
	"replenish/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// ItemLine is one requested catalog line in a create request. The unit price
// is the catalog price snapshotted by the caller at request time.
type ItemLine struct {
	SKU       string
	Qty       int
	UnitPrice float64
}

// CreateOrderCommand represents a branch request for stock replenishment.
// The order starts in UnderReview with one item per line.
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID     kernel.UUID
	requesterID kernel.UUID
	branchID    kernel.UUID
	lines       []ItemLine

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand validates identities and requested lines.
func NewCreateOrderCommand(orderID, requesterID, branchID kernel.UUID, lines []ItemLine) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setIDs(orderID, requesterID, branchID),
		cmd.setLines(lines),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the identifier minted for the new order.
func (c CreateOrderCommand) OrderID() kernel.UUID { return c.orderID }

// RequesterID returns the branch actor creating the order.
func (c CreateOrderCommand) RequesterID() kernel.UUID { return c.requesterID }

// BranchID returns the requesting branch.
func (c CreateOrderCommand) BranchID() kernel.UUID { return c.branchID }

// Lines returns the requested catalog lines.
func (c CreateOrderCommand) Lines() []ItemLine { return c.lines }

func (c *CreateOrderCommand) setIDs(orderID, requesterID, branchID kernel.UUID) error {
	if err := errors.Join(
		orderID.Validate(),
		requesterID.Validate(),
		branchID.Validate(),
	); err != nil {
		return err
	}

	c.orderID = orderID
	c.requesterID = requesterID
	c.branchID = branchID
	return nil
}

func (c *CreateOrderCommand) setLines(lines []ItemLine) error {
	if len(lines) == 0 {
		return errs.NewValueIsRequiredError("lines")
	}

	c.lines = lines
	return nil
}
