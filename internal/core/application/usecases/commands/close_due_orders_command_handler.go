package commands

import (
	"context"
	"errors"
	"log/slog"

	"replenish/internal/core/domain/model/order"
	"replenish/internal/core/ports"
	"replenish/internal/pkg/errs"
)

// CloseDueOrdersCommandHandler is the scheduler sweep: it closes every
// received order whose auto-close deadline has elapsed. Each order is closed
// in its own transaction so one failure never blocks the rest of the batch,
// and an order already closed by a concurrent sweep is skipped silently.
type CloseDueOrdersCommandHandler struct {
	uowFactory OrderUoWFactory
	notifier   ports.Notifier
	logger     *slog.Logger
}

// NewCloseDueOrdersCommandHandler creates a handler for the auto-close sweep.
func NewCloseDueOrdersCommandHandler(
	uowFactory OrderUoWFactory,
	notifier ports.Notifier,
	logger *slog.Logger,
) CloseDueOrdersCommandHandler {
	return CloseDueOrdersCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
		logger:     logger.With("component", "close_due_orders"),
	}
}

// Handle finds and closes all due orders. Returns an error only when the due
// set itself cannot be read; per-order failures are logged and skipped.
func (h CloseDueOrdersCommandHandler) Handle(ctx context.Context, cmd CloseDueOrdersCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	due, err := h.findDue(ctx, cmd)
	if err != nil {
		return err
	}

	for _, aggregate := range due {
		if err = h.closeOne(ctx, aggregate, cmd); err != nil {
			var invalidState *errs.InvalidStateError
			if errors.As(err, &invalidState) {
				// Lost the race to a concurrent sweep or transition.
				continue
			}
			h.logger.Error("failed to close order",
				"order_id", aggregate.ID().String(),
				"error", err)
		}
	}

	return nil
}

func (h CloseDueOrdersCommandHandler) findDue(ctx context.Context, cmd CloseDueOrdersCommand) ([]*order.Order, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	due, err := uow.OrderRepository().FindDueForAutoClose(ctx, cmd.Now())
	if err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}
	return due, nil
}

func (h CloseDueOrdersCommandHandler) closeOne(ctx context.Context, aggregate *order.Order, cmd CloseDueOrdersCommand) error {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := aggregate.Close(cmd.Now()); err != nil {
		return err
	}

	if err := uow.OrderRepository().Update(ctx, aggregate); err != nil {
		return err
	}

	if err := uow.Commit(ctx); err != nil {
		return err
	}

	h.notifier.Emit(newOrderEvent(ports.EventOrderClosed, aggregate, aggregate.RequesterID(), cmd.Now()))
	return nil
}
