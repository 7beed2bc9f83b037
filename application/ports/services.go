package ports

import (
	"context"

	"wordhoard-backend/domain/events"
)

// EpochClock supplies the current claim epoch. The clock is external to
// the core: it only promises non-decreasing values, and the duplicate
// claim guard is built on that promise alone.
type EpochClock interface {
	// Current returns the current epoch number
	Current(ctx context.Context) (uint64, error)
}

// LetterSource draws one letter for an accepted claim. Implementations
// must draw uniformly over the 26 uppercase letters.
type LetterSource interface {
	// Draw returns a single uppercase letter A-Z
	Draw(ctx context.Context) (byte, error)
}

// EventPublisher defines the interface for publishing domain events
type EventPublisher interface {
	// Publish sends a single event
	Publish(ctx context.Context, event events.DomainEvent) error

	// PublishBatch sends multiple events
	PublishBatch(ctx context.Context, events []events.DomainEvent) error
}

// EventBus defines the interface for publishing domain events
type EventBus interface {
	EventPublisher

	// Subscribe registers a handler for an event type
	Subscribe(eventType string, handler EventHandler) error

	// Unsubscribe removes a handler
	Unsubscribe(eventType string, handler EventHandler) error
}

// EventHandler defines the interface for handling domain events
type EventHandler interface {
	// Handle processes an event
	Handle(ctx context.Context, event events.DomainEvent) error

	// CanHandle checks if this handler can process the event
	CanHandle(eventType string) bool
}

// LockManager serializes writers per entity. Handlers acquire every key
// they will mutate up front; implementations take the keys in a single
// deterministic order so two handlers can never deadlock each other.
type LockManager interface {
	// Acquire blocks until all keys are held, returning a release function
	Acquire(ctx context.Context, keys ...string) (func(), error)
}
