package commands

import (
	"context"
	"time"

	"replenish/internal/core/ports"
)

// RaiseIssueCommandHandler moves a pre-fulfillment order into RaisedIssue when
// the requester disputes the approved quantities.
type RaiseIssueCommandHandler struct {
	uowFactory OrderUoWFactory
	notifier   ports.Notifier
}

// NewRaiseIssueCommandHandler creates a handler for the pre-fulfillment issue
// channel.
func NewRaiseIssueCommandHandler(uowFactory OrderUoWFactory, notifier ports.Notifier) RaiseIssueCommandHandler {
	return RaiseIssueCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle records the issue and emits ORDER_ISSUE_RAISED to the owning manager.
func (h RaiseIssueCommandHandler) Handle(ctx context.Context, cmd RaiseIssueCommand) error {
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

	if err = aggregate.RaiseIssue(cmd.RequesterID(), cmd.Issues()); err != nil {
		return err
	}

	if err = uow.OrderRepository().Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	event := newOrderEvent(ports.EventOrderIssueRaised, aggregate, cmd.RequesterID(), time.Now().UTC())
	event.Extra = map[string]string{"remarks": aggregate.Remarks()}
	h.notifier.Emit(event)
	return nil
}
