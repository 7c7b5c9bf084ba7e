package commands

import (
	"context"
	"time"

	"replenish/internal/core/domain/model/order"
	"replenish/internal/core/ports"
)

// ReportDeliveryIssuesCommandHandler records post-delivery item reports on a
// received order.
type ReportDeliveryIssuesCommandHandler struct {
	uowFactory OrderUoWFactory
	notifier   ports.Notifier
}

// NewReportDeliveryIssuesCommandHandler creates a handler for the post-delivery
// issue channel.
func NewReportDeliveryIssuesCommandHandler(uowFactory OrderUoWFactory, notifier ports.Notifier) ReportDeliveryIssuesCommandHandler {
	return ReportDeliveryIssuesCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle attaches the reports and alerts the owning manager. The status stays
// ConfirmOrderReceived, so the alert goes out as SYSTEM_ALERT rather than a
// transition event.
func (h ReportDeliveryIssuesCommandHandler) Handle(ctx context.Context, cmd ReportDeliveryIssuesCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	now := time.Now().UTC()
	issues := make([]order.DeliveryIssue, 0, len(cmd.Issues()))
	for _, line := range cmd.Issues() {
		issue, err := order.NewDeliveryIssue(line.SKU, line.Reason, line.Evidence, now)
		if err != nil {
			return err
		}
		issues = append(issues, issue)
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

	if err = aggregate.ReportDeliveryIssues(cmd.RequesterID(), issues); err != nil {
		return err
	}

	if err = uow.OrderRepository().Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	event := newOrderEvent(ports.EventSystemAlert, aggregate, cmd.RequesterID(), now)
	event.Extra = map[string]string{"alert": "delivery issues reported"}
	h.notifier.Emit(event)
	return nil
}
