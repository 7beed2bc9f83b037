package eventbridge

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awseventbridge "github.com/aws/aws-sdk-go-v2/service/eventbridge"
	"github.com/aws/aws-sdk-go-v2/service/eventbridge/types"
	"go.uber.org/zap"

	"wordhoard-backend/application/ports"
	"wordhoard-backend/domain/events"
	"wordhoard-backend/pkg/observability"
)

// EventBridge caps PutEvents at 10 entries per call
const maxBatchSize = 10

var _ ports.EventBus = (*Publisher)(nil)

// Publisher sends domain events to an EventBridge bus. Publishing is
// best-effort after commit; callers log failures and move on.
type Publisher struct {
	client  *awseventbridge.Client
	busName string
	metrics *observability.Collector
	logger  *zap.Logger
}

// NewPublisher creates an EventBridge-backed event publisher
func NewPublisher(client *awseventbridge.Client, busName string, metrics *observability.Collector, logger *zap.Logger) *Publisher {
	return &Publisher{
		client:  client,
		busName: busName,
		metrics: metrics,
		logger:  logger,
	}
}

// Publish sends a single domain event
func (p *Publisher) Publish(ctx context.Context, event events.DomainEvent) error {
	return p.PublishBatch(ctx, []events.DomainEvent{event})
}

// PublishBatch sends domain events in chunks of the EventBridge limit
func (p *Publisher) PublishBatch(ctx context.Context, batch []events.DomainEvent) error {
	if len(batch) == 0 {
		return nil
	}

	for start := 0; start < len(batch); start += maxBatchSize {
		end := start + maxBatchSize
		if end > len(batch) {
			end = len(batch)
		}
		if err := p.putEvents(ctx, batch[start:end]); err != nil {
			return err
		}
	}
	return nil
}

func (p *Publisher) putEvents(ctx context.Context, batch []events.DomainEvent) error {
	entries := make([]types.PutEventsRequestEntry, 0, len(batch))
	for _, event := range batch {
		detail, err := json.Marshal(event)
		if err != nil {
			return fmt.Errorf("failed to marshal event %s: %w", event.GetEventType(), err)
		}
		entries = append(entries, types.PutEventsRequestEntry{
			Source:       aws.String(events.SourceBackend),
			DetailType:   aws.String(event.GetEventType()),
			Detail:       aws.String(string(detail)),
			EventBusName: aws.String(p.busName),
			Time:         aws.Time(event.GetTimestamp()),
		})
	}

	result, err := p.client.PutEvents(ctx, &awseventbridge.PutEventsInput{Entries: entries})
	if err != nil {
		return fmt.Errorf("failed to put events: %w", err)
	}

	if result.FailedEntryCount > 0 {
		for i, entry := range result.Entries {
			if entry.ErrorCode != nil {
				p.metrics.EventsPublished.WithLabelValues(batch[i].GetEventType(), "failed").Inc()
				p.logger.Error("event entry rejected",
					zap.String("event_type", batch[i].GetEventType()),
					zap.String("aggregate_id", batch[i].GetAggregateID()),
					zap.Stringp("error_code", entry.ErrorCode),
					zap.Stringp("error_message", entry.ErrorMessage),
				)
			}
		}
		return fmt.Errorf("%d of %d event entries rejected", result.FailedEntryCount, len(entries))
	}

	for _, event := range batch {
		p.metrics.EventsPublished.WithLabelValues(event.GetEventType(), "ok").Inc()
	}
	return nil
}

// Subscribe is not supported on the EventBridge publisher; consumers
// attach through EventBridge rules instead.
func (p *Publisher) Subscribe(eventType string, handler ports.EventHandler) error {
	p.logger.Warn("subscribe called on eventbridge publisher", zap.String("event_type", eventType))
	return nil
}

// Unsubscribe is not supported on the EventBridge publisher
func (p *Publisher) Unsubscribe(eventType string, handler ports.EventHandler) error {
	p.logger.Warn("unsubscribe called on eventbridge publisher", zap.String("event_type", eventType))
	return nil
}
