package commands

import (
	"context"
	"time"

	"replenish/internal/core/ports"
	"replenish/internal/pkg/errs"
)

// ApproveOrderCommandHandler orchestrates the manager approval of an order
// under review: eligibility check against the manager-branch assignment,
// quantity reconciliation on the aggregate, and a conditional persist that
// loses cleanly if a concurrent approval committed first.
type ApproveOrderCommandHandler struct {
	uowFactory UoWFactory
	notifier   ports.Notifier
}

// NewApproveOrderCommandHandler creates a handler for order approval.
// Requires a full UoWFactory since approval consults the assignment table.
func NewApproveOrderCommandHandler(uowFactory UoWFactory, notifier ports.Notifier) ApproveOrderCommandHandler {
	return ApproveOrderCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle approves the order with the supplied quantities. The approval and
// the status transition commit in one atomic unit; the quantity change map is
// attached to the ORDER_CONFIRM_PENDING event for the requester.
func (h ApproveOrderCommandHandler) Handle(ctx context.Context, cmd ApproveOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	aggregate, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	eligible, err := uow.AssignmentRepository().IsEligible(ctx, cmd.ManagerID(), aggregate.BranchID())
	if err != nil {
		return err
	}
	if !eligible {
		return errs.NewNotAuthorizedError(cmd.ManagerID().String(),
			"manager has no active assignment to the order's branch")
	}

	now := time.Now().UTC()
	changes, err := aggregate.Approve(cmd.ManagerID(), cmd.Approvals(), now)
	if err != nil {
		return err
	}

	if err = uow.OrderRepository().Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	event := newOrderEvent(ports.EventOrderConfirmPending, aggregate, cmd.ManagerID(), now)
	event.Changes = changes
	h.notifier.Emit(event)
	return nil
}
