package commands

import (
	"context"
	"time"

	"replenish/internal/core/ports"
)

// SendForPackagingCommandHandler hands an arranged order to packaging.
type SendForPackagingCommandHandler struct {
	uowFactory OrderUoWFactory
	notifier   ports.Notifier
}

// NewSendForPackagingCommandHandler creates a handler for the packaging hand-off.
func NewSendForPackagingCommandHandler(uowFactory OrderUoWFactory, notifier ports.Notifier) SendForPackagingCommandHandler {
	return SendForPackagingCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle records the hand-off and emits ORDER_SENT_FOR_PACKAGING.
func (h SendForPackagingCommandHandler) Handle(ctx context.Context, cmd SendForPackagingCommand) error {
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

	if err = aggregate.SendForPackaging(cmd.ManagerID(), cmd.Evidence()); err != nil {
		return err
	}

	if err = uow.OrderRepository().Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.notifier.Emit(newOrderEvent(ports.EventOrderSentForPackaging, aggregate, cmd.ManagerID(), time.Now().UTC()))
	return nil
}
