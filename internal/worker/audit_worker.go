package worker

import (
	"context"

	"go.uber.org/zap"

	"github.com/spec-kit/portfolio-service/internal/events"
)

// StartAuditWorker subscribes an audit-log handler to every content and
// account event so mutations leave a structured trail.
func StartAuditWorker(dispatcher events.Dispatcher, logger *zap.Logger) {
	if dispatcher == nil {
		return
	}

	handler := func(_ context.Context, event events.Event) error {
		logger.Info("audit",
			zap.String("event_id", event.ID),
			zap.String("type", string(event.Type)),
			zap.String("resource", event.Resource),
			zap.Int64("resource_id", event.ResourceID),
			zap.String("actor", event.Actor),
		)
		return nil
	}

	for _, eventType := range []events.EventType{
		events.EventContentCreated,
		events.EventContentUpdated,
		events.EventContentDeleted,
		events.EventResumeReloaded,
		events.EventUserCreated,
	} {
		dispatcher.Subscribe(eventType, handler)
	}
}
