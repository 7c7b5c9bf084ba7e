package commands

import (
	"context"
	"time"

	"replenish/internal/core/ports"
)

// StartArrangingCommandHandler moves an ApprovedOrder into Arranging.
type StartArrangingCommandHandler struct {
	uowFactory OrderUoWFactory
	notifier   ports.Notifier
}

// NewStartArrangingCommandHandler creates a handler for the arranging kickoff.
func NewStartArrangingCommandHandler(uowFactory OrderUoWFactory, notifier ports.Notifier) StartArrangingCommandHandler {
	return StartArrangingCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle starts arranging and emits ORDER_ARRANGING.
func (h StartArrangingCommandHandler) Handle(ctx context.Context, cmd StartArrangingCommand) error {
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

	if err = aggregate.StartArranging(cmd.ManagerID()); err != nil {
		return err
	}

	if err = uow.OrderRepository().Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.notifier.Emit(newOrderEvent(ports.EventOrderArranging, aggregate, cmd.ManagerID(), time.Now().UTC()))
	return nil
}
