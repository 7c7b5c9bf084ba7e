package ports

import (
	"context"
	"time"

	"replenish/internal/core/domain/model/order"
)

// EventType identifies a workflow notification in the gateway's taxonomy.
type EventType string

const (
	EventOrderCreated          EventType = "ORDER_CREATED"
	EventOrderConfirmPending   EventType = "ORDER_CONFIRM_PENDING"
	EventOrderConfirmed        EventType = "ORDER_CONFIRMED"
	EventOrderIssueRaised      EventType = "ORDER_ISSUE_RAISED"
	EventOrderManagerReply     EventType = "ORDER_MANAGER_REPLY"
	EventOrderArranging        EventType = "ORDER_ARRANGING"
	EventOrderArranged         EventType = "ORDER_ARRANGED"
	EventOrderSentForPackaging EventType = "ORDER_SENT_FOR_PACKAGING"
	EventOrderUnderPackaging   EventType = "ORDER_UNDER_PACKAGING"
	EventOrderInTransit        EventType = "ORDER_IN_TRANSIT"
	EventOrderReceived         EventType = "ORDER_RECEIVED"
	EventOrderClosed           EventType = "ORDER_CLOSED"
	EventStockLow              EventType = "STOCK_LOW"
	EventSystemAlert           EventType = "SYSTEM_ALERT"
)

// Event is the payload emitted to the notification gateway after a successful
// transition. Exactly one event is emitted per transition; delivery is
// best-effort and a failure never rolls the transition back.
type Event struct {
	Type        EventType                       `json:"type"`
	OrderID     string                          `json:"order_id"`
	OrderNumber string                          `json:"order_number"`
	Status      string                          `json:"status"`
	ActorID     string                          `json:"actor_id,omitempty"`
	BranchID    string                          `json:"branch_id"`
	OccurredAt  time.Time                       `json:"occurred_at"`
	Changes     map[string]order.QuantityChange `json:"quantity_changes,omitempty"`
	Extra       map[string]string               `json:"extra,omitempty"`
}

// NotificationPublisher delivers a single event to the gateway's transport.
// Implementations may block; they are called from the notifier's worker, not
// from the transition's critical path.
type NotificationPublisher interface {
	Publish(ctx context.Context, event Event) error
}

// Notifier is the fire-and-forget facade used by command handlers. Emit must
// never block the caller beyond queueing and must swallow delivery failures,
// recovering them locally (log, count).
type Notifier interface {
	Emit(event Event)
}
