package commands

import (
	"context"
	"log/slog"

	"fooddelivery/internal/core/domain/model/rider"
	"fooddelivery/internal/core/domain/services"
)

// PublishLocationCommandHandler processes rider position samples.
//
// Persistence and broadcast are deliberately decoupled: the sample is
// fanned out to live subscribers even when storing the last known location
// fails, so a database hiccup degrades history but never the live feed.
// Store failures are logged, not returned.
type PublishLocationCommandHandler struct {
	uowFactory LocationUoWFactory
	hub        *services.TrackingHub
	logger     *slog.Logger
}

// NewPublishLocationCommandHandler creates a handler for position samples.
func NewPublishLocationCommandHandler(
	uowFactory LocationUoWFactory,
	hub *services.TrackingHub,
	logger *slog.Logger,
) PublishLocationCommandHandler {
	return PublishLocationCommandHandler{
		uowFactory: uowFactory,
		hub:        hub,
		logger:     logger,
	}
}

// Handle stores the sample as the rider's last known location and, when the
// sample is tagged with an order, publishes it to that order's subscribers.
func (h *PublishLocationCommandHandler) Handle(ctx context.Context, cmd PublishLocationCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	aggregate, err := rider.NewLocation(cmd.RiderID(), cmd.OrderID(), cmd.Point(), cmd.Heading())
	if err != nil {
		return err
	}

	if err = h.store(ctx, aggregate); err != nil {
		h.logger.Warn("failed to store rider location",
			"rider_id", cmd.RiderID(),
			"error", err,
		)
	}

	if orderID := aggregate.OrderID(); orderID != nil {
		h.hub.Publish(services.LocationEvent{
			OrderID:    *orderID,
			RiderID:    aggregate.RiderID(),
			Point:      aggregate.Point(),
			Heading:    aggregate.Heading(),
			ReportedAt: aggregate.ReportedAt(),
		})
	}

	return nil
}

func (h *PublishLocationCommandHandler) store(ctx context.Context, aggregate *rider.Location) error {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.LocationRepository().Upsert(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
