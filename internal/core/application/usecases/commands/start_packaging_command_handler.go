package commands

import (
	"context"
	"time"

	"replenish/internal/core/ports"
)

// StartPackagingCommandHandler moves a SentForPackaging order into UnderPackaging.
type StartPackagingCommandHandler struct {
	uowFactory OrderUoWFactory
	notifier   ports.Notifier
}

// NewStartPackagingCommandHandler creates a handler for the packaging start.
func NewStartPackagingCommandHandler(uowFactory OrderUoWFactory, notifier ports.Notifier) StartPackagingCommandHandler {
	return StartPackagingCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle starts packaging and emits ORDER_UNDER_PACKAGING.
func (h StartPackagingCommandHandler) Handle(ctx context.Context, cmd StartPackagingCommand) error {
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

	if err = aggregate.StartPackaging(cmd.ManagerID()); err != nil {
		return err
	}

	if err = uow.OrderRepository().Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.notifier.Emit(newOrderEvent(ports.EventOrderUnderPackaging, aggregate, cmd.ManagerID(), time.Now().UTC()))
	return nil
}
