package commands

import (
	"context"
	"time"

	"replenish/internal/core/domain/services"
	"replenish/internal/core/ports"
)

// ConfirmReceivedCommandHandler records receipt and schedules the auto-close
// deadline from the business calendar.
type ConfirmReceivedCommandHandler struct {
	uowFactory     OrderUoWFactory
	notifier       ports.Notifier
	calendar       services.WorkCalendar
	autoCloseHours int
}

// NewConfirmReceivedCommandHandler creates a handler for receipt confirmation.
// autoCloseHours is the working-hours grace period before the scheduler closes
// the order.
func NewConfirmReceivedCommandHandler(
	uowFactory OrderUoWFactory,
	notifier ports.Notifier,
	calendar services.WorkCalendar,
	autoCloseHours int,
) ConfirmReceivedCommandHandler {
	return ConfirmReceivedCommandHandler{
		uowFactory:     uowFactory,
		notifier:       notifier,
		calendar:       calendar,
		autoCloseHours: autoCloseHours,
	}
}

// Handle confirms receipt, stamps the auto-close deadline and emits
// ORDER_RECEIVED with the deadline attached.
func (h ConfirmReceivedCommandHandler) Handle(ctx context.Context, cmd ConfirmReceivedCommand) error {
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

	now := time.Now().UTC()
	autoCloseAt := h.calendar.AddWorkingHours(now, h.autoCloseHours)
	if err = aggregate.ConfirmReceived(cmd.RequesterID(), now, autoCloseAt); err != nil {
		return err
	}

	if err = uow.OrderRepository().Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	event := newOrderEvent(ports.EventOrderReceived, aggregate, cmd.RequesterID(), now)
	event.Extra = map[string]string{"auto_close_at": autoCloseAt.Format(time.RFC3339)}
	h.notifier.Emit(event)
	return nil
}
