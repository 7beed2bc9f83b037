package messaging

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"wordhoard-backend/application/ports"
	"wordhoard-backend/domain/events"
)

var _ ports.EventBus = (*Dispatcher)(nil)

// Dispatcher is an in-process event bus used in memory mode and tests.
// Handlers run synchronously in subscription order; a failing handler
// is logged and does not block the others.
type Dispatcher struct {
	mu       sync.RWMutex
	handlers map[string][]ports.EventHandler
	logger   *zap.Logger
}

// NewDispatcher creates an in-process event dispatcher
func NewDispatcher(logger *zap.Logger) *Dispatcher {
	return &Dispatcher{
		handlers: make(map[string][]ports.EventHandler),
		logger:   logger,
	}
}

// Publish delivers an event to all matching subscribers
func (d *Dispatcher) Publish(ctx context.Context, event events.DomainEvent) error {
	d.mu.RLock()
	subscribers := make([]ports.EventHandler, len(d.handlers[event.GetEventType()]))
	copy(subscribers, d.handlers[event.GetEventType()])
	d.mu.RUnlock()

	for _, handler := range subscribers {
		if !handler.CanHandle(event.GetEventType()) {
			continue
		}
		if err := handler.Handle(ctx, event); err != nil {
			d.logger.Error("event handler failed",
				zap.String("event_type", event.GetEventType()),
				zap.String("aggregate_id", event.GetAggregateID()),
				zap.Error(err),
			)
		}
	}
	return nil
}

// PublishBatch delivers each event in order
func (d *Dispatcher) PublishBatch(ctx context.Context, batch []events.DomainEvent) error {
	for _, event := range batch {
		if err := d.Publish(ctx, event); err != nil {
			return err
		}
	}
	return nil
}

// Subscribe registers a handler for an event type
func (d *Dispatcher) Subscribe(eventType string, handler ports.EventHandler) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.handlers[eventType] = append(d.handlers[eventType], handler)
	return nil
}

// Unsubscribe removes a handler for an event type
func (d *Dispatcher) Unsubscribe(eventType string, handler ports.EventHandler) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	subscribers := d.handlers[eventType]
	for i, existing := range subscribers {
		if existing == handler {
			d.handlers[eventType] = append(subscribers[:i], subscribers[i+1:]...)
			return nil
		}
	}
	return nil
}
