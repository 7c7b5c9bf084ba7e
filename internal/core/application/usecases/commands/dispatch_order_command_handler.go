package commands

import (
	"context"
	"time"

	"replenish/internal/core/ports"
)

// DispatchOrderCommandHandler moves an UnderPackaging order into InTransit.
type DispatchOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	notifier   ports.Notifier
}

// NewDispatchOrderCommandHandler creates a handler for dispatch.
func NewDispatchOrderCommandHandler(uowFactory OrderUoWFactory, notifier ports.Notifier) DispatchOrderCommandHandler {
	return DispatchOrderCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle records tracking and dispatch evidence, then emits ORDER_IN_TRANSIT
// with the courier details so the requester can follow the shipment.
func (h DispatchOrderCommandHandler) Handle(ctx context.Context, cmd DispatchOrderCommand) error {
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
	if err = aggregate.Dispatch(cmd.ManagerID(), cmd.TrackingDetails(), cmd.Evidence(), now); err != nil {
		return err
	}

	if err = uow.OrderRepository().Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	event := newOrderEvent(ports.EventOrderInTransit, aggregate, cmd.ManagerID(), now)
	event.Extra = map[string]string{
		"courier":       cmd.TrackingDetails().Courier(),
		"tracking_link": cmd.TrackingDetails().Link(),
	}
	h.notifier.Emit(event)
	return nil
}
