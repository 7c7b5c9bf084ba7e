package commands

import (
	"context"
	"time"

	"replenish/internal/core/ports"
)

// ReplyIssueCommandHandler resolves a raised issue: the manager's reply moves
// the order back to ConfirmPending for another requester decision.
type ReplyIssueCommandHandler struct {
	uowFactory OrderUoWFactory
	notifier   ports.Notifier
}

// NewReplyIssueCommandHandler creates a handler for manager issue replies.
func NewReplyIssueCommandHandler(uowFactory OrderUoWFactory, notifier ports.Notifier) ReplyIssueCommandHandler {
	return ReplyIssueCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle records the reply, applies any quantity adjustments and emits
// ORDER_MANAGER_REPLY with the resulting change map.
func (h ReplyIssueCommandHandler) Handle(ctx context.Context, cmd ReplyIssueCommand) error {
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

	changes, err := aggregate.ReplyToIssue(cmd.ManagerID(), cmd.Reply(), cmd.Adjustments())
	if err != nil {
		return err
	}

	if err = uow.OrderRepository().Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	event := newOrderEvent(ports.EventOrderManagerReply, aggregate, cmd.ManagerID(), time.Now().UTC())
	event.Changes = changes
	event.Extra = map[string]string{"reply": aggregate.ManagerReply()}
	h.notifier.Emit(event)
	return nil
}
