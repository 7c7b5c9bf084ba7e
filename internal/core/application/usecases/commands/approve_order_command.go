package commands

import (
	"errors"

	"replenish/internal/core/domain/model/kernel"
	"replenish/internal/core/domain/model/order"
	"replenish/internal/pkg/errs"
	"replenish/internal/pkg/guard"
)

var ErrApproveOrderCommandIsNotConstructed = errors.New(
	"ApproveOrderCommand must be created via NewApproveOrderCommand constructor",
)

// ApproveOrderCommand carries a manager's per-item approved quantities for an
// order under review. Quantities may exceed the requested amounts.
type ApproveOrderCommand struct { //nolint:recvcheck //using for validation
	orderID   kernel.UUID
	managerID kernel.UUID
	approvals []order.ItemApproval

	guard guard.ConstructorGuard
}

// NewApproveOrderCommand validates identities and the approval payload.
// Negative quantities are rejected here as well as in the aggregate, so an
// invalid payload fails before a transaction is opened.
func NewApproveOrderCommand(orderID, managerID kernel.UUID, approvals []order.ItemApproval) (ApproveOrderCommand, error) {
	cmd := ApproveOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderID.Validate(),
		managerID.Validate(),
		cmd.setApprovals(approvals),
	); err != nil {
		return ApproveOrderCommand{}, err
	}

	cmd.orderID = orderID
	cmd.managerID = managerID
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ApproveOrderCommand) Validate() error {
	return c.guard.Validate(ErrApproveOrderCommandIsNotConstructed)
}

// OrderID returns the order under review.
func (c ApproveOrderCommand) OrderID() kernel.UUID { return c.orderID }

// ManagerID returns the acting manager.
func (c ApproveOrderCommand) ManagerID() kernel.UUID { return c.managerID }

// Approvals returns the per-item approved quantities.
func (c ApproveOrderCommand) Approvals() []order.ItemApproval { return c.approvals }

func (c *ApproveOrderCommand) setApprovals(approvals []order.ItemApproval) error {
	if len(approvals) == 0 {
		return errs.NewValueIsRequiredError("approvals")
	}
	for _, approval := range approvals {
		if approval.SKU == "" {
			return errs.NewValueIsRequiredError("approval sku")
		}
		if approval.QtyApproved < 0 {
			return errs.NewInvalidQuantityError(approval.SKU, approval.QtyApproved)
		}
	}

	c.approvals = approvals
	return nil
}
