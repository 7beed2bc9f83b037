package messaging_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"wordhoard-backend/domain/core/valueobjects"
	"wordhoard-backend/domain/events"
	"wordhoard-backend/infrastructure/messaging"
)

type recordingHandler struct {
	accepts  string
	failWith error
	received []events.DomainEvent
}

func (h *recordingHandler) Handle(ctx context.Context, event events.DomainEvent) error {
	h.received = append(h.received, event)
	return h.failWith
}

func (h *recordingHandler) CanHandle(eventType string) bool {
	return eventType == h.accepts
}

func TestDispatcher_DeliversToSubscribers(t *testing.T) {
	d := messaging.NewDispatcher(zap.NewNop())
	handler := &recordingHandler{accepts: events.TypeAccountCreated}
	require.NoError(t, d.Subscribe(events.TypeAccountCreated, handler))

	event := events.NewAccountCreated(valueobjects.NewAccountID(), time.Now())
	require.NoError(t, d.Publish(context.Background(), event))

	require.Len(t, handler.received, 1)
	assert.Equal(t, events.TypeAccountCreated, handler.received[0].GetEventType())
}

func TestDispatcher_IgnoresUnsubscribedTypes(t *testing.T) {
	d := messaging.NewDispatcher(zap.NewNop())
	handler := &recordingHandler{accepts: events.TypeAccountCreated}
	require.NoError(t, d.Subscribe(events.TypeAccountCreated, handler))

	other := events.NewLocationCreated(valueobjects.NewLocationID(), "Pier 7", time.Now())
	require.NoError(t, d.Publish(context.Background(), other))

	assert.Empty(t, handler.received)
}

func TestDispatcher_HandlerErrorDoesNotBlockOthers(t *testing.T) {
	d := messaging.NewDispatcher(zap.NewNop())
	failing := &recordingHandler{accepts: events.TypeAccountCreated, failWith: errors.New("boom")}
	healthy := &recordingHandler{accepts: events.TypeAccountCreated}
	require.NoError(t, d.Subscribe(events.TypeAccountCreated, failing))
	require.NoError(t, d.Subscribe(events.TypeAccountCreated, healthy))

	event := events.NewAccountCreated(valueobjects.NewAccountID(), time.Now())
	require.NoError(t, d.Publish(context.Background(), event))

	assert.Len(t, failing.received, 1)
	assert.Len(t, healthy.received, 1)
}

func TestDispatcher_Unsubscribe(t *testing.T) {
	d := messaging.NewDispatcher(zap.NewNop())
	handler := &recordingHandler{accepts: events.TypeAccountCreated}
	require.NoError(t, d.Subscribe(events.TypeAccountCreated, handler))
	require.NoError(t, d.Unsubscribe(events.TypeAccountCreated, handler))

	event := events.NewAccountCreated(valueobjects.NewAccountID(), time.Now())
	require.NoError(t, d.Publish(context.Background(), event))

	assert.Empty(t, handler.received)
}

func TestDispatcher_PublishBatchKeepsOrder(t *testing.T) {
	d := messaging.NewDispatcher(zap.NewNop())
	handler := &recordingHandler{accepts: events.TypeAccountCreated}
	require.NoError(t, d.Subscribe(events.TypeAccountCreated, handler))

	first := events.NewAccountCreated(valueobjects.NewAccountID(), time.Now())
	second := events.NewAccountCreated(valueobjects.NewAccountID(), time.Now())
	require.NoError(t, d.PublishBatch(context.Background(), []events.DomainEvent{first, second}))

	require.Len(t, handler.received, 2)
	assert.Equal(t, first.GetAggregateID(), handler.received[0].GetAggregateID())
	assert.Equal(t, second.GetAggregateID(), handler.received[1].GetAggregateID())
}
