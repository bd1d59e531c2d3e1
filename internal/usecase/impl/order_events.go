package impl

import (
	"context"
	"log/slog"

	deliverycontext "kix/internal/delivery/context"
	"kix/internal/domain/entity"
	"kix/internal/domain/service"
)

// publishOrderEvent emits an order lifecycle event. Publishing is best
// effort; the order is already durable, so failures are logged and dropped.
func publishOrderEvent(ctx context.Context, logger *slog.Logger, publisher service.EventPublisher, eventType string, order *entity.Order) {
	event := &service.OrderEvent{
		RequestID: deliverycontext.GetRequestIDFromContext(ctx),
		EventType: eventType,
		OrderID:   order.ID.String(),
		UserID:    order.UserID.String(),
		UserEmail: order.UserEmail,
		Total:     order.Total,
		ItemCount: order.ItemCount(),
	}
	if order.Promo != nil {
		event.PromoCode = order.Promo.Code
	}

	if err := publisher.PublishOrderEvent(ctx, event); err != nil {
		logger.Error("Failed to publish order event",
			"eventType", eventType, "orderId", order.ID, "error", err)
	}
}
