package commands

import (
	"context"
	"time"

	"replenish/internal/core/ports"
)

// ConfirmOrderCommandHandler moves a ConfirmPending order to ApprovedOrder on
// the requester's acceptance.
type ConfirmOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	notifier   ports.Notifier
}

// NewConfirmOrderCommandHandler creates a handler for requester confirmation.
func NewConfirmOrderCommandHandler(uowFactory OrderUoWFactory, notifier ports.Notifier) ConfirmOrderCommandHandler {
	return ConfirmOrderCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle confirms the approved quantities and emits ORDER_CONFIRMED.
func (h ConfirmOrderCommandHandler) Handle(ctx context.Context, cmd ConfirmOrderCommand) error {
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

	if err = aggregate.Confirm(cmd.RequesterID()); err != nil {
		return err
	}

	if err = uow.OrderRepository().Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.notifier.Emit(newOrderEvent(ports.EventOrderConfirmed, aggregate, cmd.RequesterID(), time.Now().UTC()))
	return nil
}
