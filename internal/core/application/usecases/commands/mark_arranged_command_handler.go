package commands

import (
	"context"
	"time"

	"replenish/internal/core/ports"
)

// MarkArrangedCommandHandler completes the arranging stage.
type MarkArrangedCommandHandler struct {
	uowFactory OrderUoWFactory
	notifier   ports.Notifier
}

// NewMarkArrangedCommandHandler creates a handler for arranging completion.
func NewMarkArrangedCommandHandler(uowFactory OrderUoWFactory, notifier ports.Notifier) MarkArrangedCommandHandler {
	return MarkArrangedCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle marks the order Arranged and emits ORDER_ARRANGED.
func (h MarkArrangedCommandHandler) Handle(ctx context.Context, cmd MarkArrangedCommand) error {
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

	if err = aggregate.MarkArranged(cmd.ManagerID(), cmd.Evidence()); err != nil {
		return err
	}

	if err = uow.OrderRepository().Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.notifier.Emit(newOrderEvent(ports.EventOrderArranged, aggregate, cmd.ManagerID(), time.Now().UTC()))
	return nil
}
