package commands

import (
	"errors"

	"replenish/internal/core/domain/model/kernel"
	"replenish/internal/core/domain/model/order"
	"replenish/internal/pkg/errs"
	"replenish/internal/pkg/guard"
)

var ErrDispatchOrderCommandIsNotConstructed = errors.New(
	"DispatchOrderCommand must be created via NewDispatchOrderCommand constructor",
)

// DispatchOrderCommand moves a packaged order into transit with courier
// tracking details and proof attachments.
type DispatchOrderCommand struct { //nolint:recvcheck //using for validation
	orderID   kernel.UUID
	managerID kernel.UUID
	tracking  order.Tracking
	evidence  []string

	guard guard.ConstructorGuard
}

// NewDispatchOrderCommand validates identities, tracking details and the
// mandatory evidence.
func NewDispatchOrderCommand(orderID, managerID kernel.UUID, tracking order.Tracking, evidence []string) (DispatchOrderCommand, error) {
	cmd := DispatchOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderID.Validate(),
		managerID.Validate(),
		tracking.Validate(),
		cmd.setEvidence(evidence),
	); err != nil {
		return DispatchOrderCommand{}, err
	}

	cmd.orderID = orderID
	cmd.managerID = managerID
	cmd.tracking = tracking
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c DispatchOrderCommand) Validate() error {
	return c.guard.Validate(ErrDispatchOrderCommandIsNotConstructed)
}

// OrderID returns the order being dispatched.
func (c DispatchOrderCommand) OrderID() kernel.UUID { return c.orderID }

// ManagerID returns the acting manager.
func (c DispatchOrderCommand) ManagerID() kernel.UUID { return c.managerID }

// TrackingDetails returns the courier tracking details.
func (c DispatchOrderCommand) TrackingDetails() order.Tracking { return c.tracking }

// Evidence returns the proof attachments.
func (c DispatchOrderCommand) Evidence() []string { return c.evidence }

func (c *DispatchOrderCommand) setEvidence(evidence []string) error {
	if len(evidence) == 0 {
		return errs.NewValueIsRequiredError("evidence")
	}

	c.evidence = evidence
	return nil
}
