package commands

import (
	"context"
	"time"

	"replenish/internal/core/domain/model/order"
	"replenish/internal/core/ports"
)

// CreateOrderCommandHandler handles the business logic for order creation.
// Creates new orders in UnderReview and notifies the branch's managers.
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	notifier   ports.Notifier
}

// NewCreateOrderCommandHandler creates a handler for order creation operations.
func NewCreateOrderCommandHandler(uowFactory OrderUoWFactory, notifier ports.Notifier) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle builds the aggregate from the requested lines and persists it.
// Emits ORDER_CREATED once the transaction commits.
func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	now := time.Now().UTC()
	items := make([]*order.Item, 0, len(cmd.Lines()))
	for _, line := range cmd.Lines() {
		item, err := order.NewItem(line.SKU, line.Qty, line.UnitPrice)
		if err != nil {
			return err
		}
		items = append(items, item)
	}

	aggregate, err := order.NewOrder(cmd.OrderID(), cmd.RequesterID(), cmd.BranchID(), items, now)
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.OrderRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.notifier.Emit(newOrderEvent(ports.EventOrderCreated, aggregate, cmd.RequesterID(), now))
	return nil
}
