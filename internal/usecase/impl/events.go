package impl

import (
	"context"
	"log/slog"

	deliverycontext "portal/internal/delivery/context"
	"portal/internal/domain/entity"
	"portal/internal/domain/service"
)

// publishBestEffort sends event and only logs failures. Committed state never
// depends on the event being delivered.
func publishBestEffort(ctx context.Context, publisher service.EventPublisher, logger *slog.Logger, event *entity.DomainEvent) {
	if publisher == nil {
		return
	}
	if event.RequestID == "" {
		event.RequestID = deliverycontext.GetRequestIDFromContext(ctx)
	}

	if err := publisher.Publish(ctx, event); err != nil {
		logger.Warn("Failed to publish event",
			slog.String("type", event.Type), slog.String("identity", event.Identity.String()), slog.Any("error", err))
	}
}
