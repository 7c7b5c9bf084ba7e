package notify_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"replenish/internal/adapters/out/notify"
	"replenish/internal/core/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type capturingPublisher struct {
	mu     sync.Mutex
	events []ports.Event
	err    error
}

func (p *capturingPublisher) Publish(_ context.Context, event ports.Event) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.err != nil {
		return p.err
	}
	p.events = append(p.events, event)
	return nil
}

func (p *capturingPublisher) Events() []ports.Event {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]ports.Event(nil), p.events...)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestDispatcher_DeliversEventsInOrder(t *testing.T) {
	publisher := &capturingPublisher{}
	dispatcher := notify.NewDispatcher(publisher, 16, discardLogger())
	dispatcher.Start()

	dispatcher.Emit(ports.Event{Type: ports.EventOrderCreated, OrderID: "a"})
	dispatcher.Emit(ports.Event{Type: ports.EventOrderConfirmPending, OrderID: "a"})
	dispatcher.Emit(ports.Event{Type: ports.EventOrderConfirmed, OrderID: "a"})

	dispatcher.Stop()

	events := publisher.Events()
	require.Len(t, events, 3)
	assert.Equal(t, ports.EventOrderCreated, events[0].Type)
	assert.Equal(t, ports.EventOrderConfirmPending, events[1].Type)
	assert.Equal(t, ports.EventOrderConfirmed, events[2].Type)
}

func TestDispatcher_PublishFailureDoesNotPropagate(t *testing.T) {
	publisher := &capturingPublisher{err: errors.New("broker unavailable")}
	dispatcher := notify.NewDispatcher(publisher, 16, discardLogger())
	dispatcher.Start()

	dispatcher.Emit(ports.Event{Type: ports.EventOrderClosed, OrderID: "b"})
	dispatcher.Stop()

	assert.Empty(t, publisher.Events())
}

func TestDispatcher_FullBufferDropsInsteadOfBlocking(t *testing.T) {
	publisher := &capturingPublisher{}
	// Worker not started: the buffer fills and stays full.
	dispatcher := notify.NewDispatcher(publisher, 1, discardLogger())

	done := make(chan struct{})
	go func() {
		dispatcher.Emit(ports.Event{Type: ports.EventOrderCreated, OrderID: "c"})
		dispatcher.Emit(ports.Event{Type: ports.EventOrderCreated, OrderID: "d"})
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Emit blocked on a full buffer")
	}

	dispatcher.Start()
	dispatcher.Stop()

	events := publisher.Events()
	require.Len(t, events, 1)
	assert.Equal(t, "c", events[0].OrderID)
}

func TestDispatcher_StopIsIdempotent(t *testing.T) {
	dispatcher := notify.NewDispatcher(&capturingPublisher{}, 4, discardLogger())
	dispatcher.Start()
	dispatcher.Stop()
	assert.NotPanics(t, func() { dispatcher.Stop() })
}

func TestDispatcher_EmitAfterStopIsDropped(t *testing.T) {
	publisher := &capturingPublisher{}
	dispatcher := notify.NewDispatcher(publisher, 4, discardLogger())
	dispatcher.Start()
	dispatcher.Stop()

	assert.NotPanics(t, func() {
		dispatcher.Emit(ports.Event{Type: ports.EventOrderClosed, OrderID: "late"})
	})
	assert.Empty(t, publisher.Events())
}

func TestDispatcher_StopWithoutStartReturns(t *testing.T) {
	dispatcher := notify.NewDispatcher(&capturingPublisher{}, 4, discardLogger())

	done := make(chan struct{})
	go func() {
		dispatcher.Stop()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Stop blocked without a running worker")
	}
}
