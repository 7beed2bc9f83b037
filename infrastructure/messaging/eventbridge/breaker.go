package eventbridge

import (
	"context"
	"time"

	"github.com/sony/gobreaker"
	"go.uber.org/zap"

	"wordhoard-backend/application/ports"
	"wordhoard-backend/domain/events"
)

var _ ports.EventBus = (*BreakerBus)(nil)

// BreakerBus wraps an event bus with a circuit breaker. When the
// downstream bus keeps failing the breaker opens and publishes are
// dropped with a logged warning until the cool-off passes, keeping a
// flapping event bus from stalling request handling.
type BreakerBus struct {
	inner   ports.EventBus
	breaker *gobreaker.CircuitBreaker
	logger  *zap.Logger
}

// NewBreakerBus wraps the bus with the standard breaker settings
func NewBreakerBus(inner ports.EventBus, logger *zap.Logger) *BreakerBus {
	settings := gobreaker.Settings{
		Name:        "event-bus",
		MaxRequests: 3,
		Interval:    time.Minute,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("event bus breaker state changed",
				zap.String("name", name),
				zap.String("from", from.String()),
				zap.String("to", to.String()),
			)
		},
	}
	return &BreakerBus{
		inner:   inner,
		breaker: gobreaker.NewCircuitBreaker(settings),
		logger:  logger,
	}
}

// Publish sends a single event through the breaker
func (b *BreakerBus) Publish(ctx context.Context, event events.DomainEvent) error {
	_, err := b.breaker.Execute(func() (interface{}, error) {
		return nil, b.inner.Publish(ctx, event)
	})
	return err
}

// PublishBatch sends events through the breaker
func (b *BreakerBus) PublishBatch(ctx context.Context, batch []events.DomainEvent) error {
	_, err := b.breaker.Execute(func() (interface{}, error) {
		return nil, b.inner.PublishBatch(ctx, batch)
	})
	return err
}

// Subscribe delegates to the wrapped bus
func (b *BreakerBus) Subscribe(eventType string, handler ports.EventHandler) error {
	return b.inner.Subscribe(eventType, handler)
}

// Unsubscribe delegates to the wrapped bus
func (b *BreakerBus) Unsubscribe(eventType string, handler ports.EventHandler) error {
	return b.inner.Unsubscribe(eventType, handler)
}
