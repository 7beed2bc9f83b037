package handlers

import (
	"context"

	"go.uber.org/zap"

	"wordhoard-backend/application/ports"
	"wordhoard-backend/domain/events"
)

// publishEvents sends committed domain events to the bus. Publishing is
// fire-and-forget after the state mutation: a publish failure is logged,
// never surfaced to the caller, and never retried by the core.
func publishEvents(ctx context.Context, bus ports.EventPublisher, logger *zap.Logger, evts []events.DomainEvent) {
	if bus == nil || len(evts) == 0 {
		return
	}
	if err := bus.PublishBatch(ctx, evts); err != nil {
		logger.Warn("failed to publish domain events",
			zap.Int("count", len(evts)),
			zap.Error(err),
		)
	}
}
