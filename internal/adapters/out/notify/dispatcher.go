package notify

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"replenish/internal/core/ports"
)

const publishTimeout = 10 * time.Second

// Dispatcher implements the fire-and-forget Notifier. Emit enqueues onto a
// bounded buffer and returns immediately; a single worker goroutine drains the
// buffer and hands each event to the publisher. When the buffer is full the
// event is dropped and logged rather than blocking a transition.
type Dispatcher struct {
	publisher ports.NotificationPublisher
	logger    *slog.Logger
	queue     chan ports.Event
	done      chan struct{}

	mu      sync.Mutex
	started bool
	closed  bool
}

// NewDispatcher creates a dispatcher with the given buffer size. Call Start
// before emitting and Stop on shutdown.
func NewDispatcher(publisher ports.NotificationPublisher, bufferSize int, logger *slog.Logger) *Dispatcher {
	return &Dispatcher{
		publisher: publisher,
		logger:    logger.With("component", "notify_dispatcher"),
		queue:     make(chan ports.Event, bufferSize),
		done:      make(chan struct{}),
	}
}

// Start launches the worker goroutine. Starting twice, or after Stop, is a
// no-op.
func (d *Dispatcher) Start() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.started || d.closed {
		return
	}
	d.started = true
	go d.run()
}

// Stop closes the queue and waits for the worker to drain the remaining
// events. Safe to call more than once, and returns immediately when the
// worker was never started.
func (d *Dispatcher) Stop() {
	d.mu.Lock()
	started := d.started
	if !d.closed {
		d.closed = true
		close(d.queue)
	}
	d.mu.Unlock()

	if started {
		<-d.done
	}
}

// Emit queues the event without blocking. Delivery failures never reach the
// caller, and an event emitted during shutdown is dropped rather than
// panicking on the closed queue.
func (d *Dispatcher) Emit(event ports.Event) {
	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		d.logger.Warn("dispatcher stopped, dropping event",
			"event_type", string(event.Type),
			"order_id", event.OrderID)
		return
	}

	select {
	case d.queue <- event:
		d.mu.Unlock()
		return
	default:
	}
	d.mu.Unlock()

	d.logger.Warn("notification buffer full, dropping event",
		"event_type", string(event.Type),
		"order_id", event.OrderID)
}

func (d *Dispatcher) run() {
	defer close(d.done)

	for event := range d.queue {
		ctx, cancel := context.WithTimeout(context.Background(), publishTimeout)
		err := d.publisher.Publish(ctx, event)
		cancel()

		if err != nil {
			d.logger.Error("failed to publish notification",
				"event_type", string(event.Type),
				"order_id", event.OrderID,
				"error", err)
		}
	}
}
