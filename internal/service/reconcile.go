package service

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/SergeyBogomolovv/transport-sync/internal/entities"
	"github.com/SergeyBogomolovv/transport-sync/internal/tracker"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// HookTransportStatus is the job name of the per order reconciliation.
const HookTransportStatus = "get_order_transport_status"

// RegisterIfAbsent schedules the recurring status check of an order, once.
func (s *transportService) RegisterIfAbsent(ctx context.Context, orderID int64) error {
	created, err := s.scheduler.ScheduleRecurring(ctx,
		HookTransportStatus,
		strconv.FormatInt(orderID, 10),
		s.now().Add(s.cfg.FirstRunDelay),
		s.cfg.Interval,
	)
	if err != nil {
		return fmt.Errorf("failed to register reconciliation: %w", err)
	}
	if created {
		s.logger.DebugContext(ctx, "reconciliation registered", slog.Int64("order_id", orderID))
	}
	return nil
}

// HandleJob is the scheduler entry point, key is the order id.
func (s *transportService) HandleJob(ctx context.Context, key string) error {
	orderID, err := strconv.ParseInt(key, 10, 64)
	if err != nil {
		return fmt.Errorf("%w: job key %q", entities.ErrInvalidArgument, key)
	}
	return s.Run(ctx, orderID)
}

// Run fetches the shipment of an order and applies the provider state.
// On a fetch error the job stays scheduled and the next tick retries.
func (s *transportService) Run(ctx context.Context, orderID int64) error {
	ctx, span := s.tracer.Start(ctx, "TransportService.Reconcile",
		trace.WithAttributes(attribute.Int64("order.id", orderID)))
	defer span.End()

	err := s.run(ctx, orderID)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "reconciliation failed")
	}
	return err
}

func (s *transportService) run(ctx context.Context, orderID int64) error {
	record, err := s.transports.GetTransport(ctx, orderID)
	if err != nil {
		return fmt.Errorf("failed to get transport: %w", err)
	}
	if record.ShipmentID == "" {
		return fmt.Errorf("%w: order %d has no shipment id", entities.ErrInvalidArgument, orderID)
	}

	shipment, err := s.gateway.Fetch(ctx, record.ShipmentID)
	if err != nil {
		return fmt.Errorf("failed to fetch shipment: %w", err)
	}

	res := tracker.Reconcile(record, shipment)

	if !res.Update.IsEmpty() {
		if err := s.transports.UpdateTransport(ctx, orderID, res.Update); err != nil {
			return fmt.Errorf("failed to update transport: %w", err)
		}
		s.cache.Delete(cacheKey(orderID))
	}

	if res.StatusChanged {
		updated := res.Update.ApplyTo(record)
		s.logger.InfoContext(ctx, "transport status changed",
			slog.Int64("order_id", orderID),
			slog.String("from", string(record.Status)),
			slog.String("to", string(updated.Status)),
		)
		s.publish(ctx, record, updated)
	}

	if res.Terminal {
		if err := s.scheduler.Unschedule(ctx, HookTransportStatus, strconv.FormatInt(orderID, 10)); err != nil {
			return fmt.Errorf("failed to unschedule reconciliation: %w", err)
		}
		s.logger.InfoContext(ctx, "reconciliation finished", slog.Int64("order_id", orderID), slog.String("status", string(shipment.State)))
	}

	return nil
}

// publish never fails the run, the stored status is the source of truth.
func (s *transportService) publish(ctx context.Context, before, after entities.Transport) {
	change := entities.StatusChange{
		EventID:      uuid.NewString(),
		OrderID:      after.OrderID,
		ShipmentID:   after.ShipmentID,
		From:         before.Status,
		To:           after.Status,
		ShippingDate: after.ShippingDate,
		OccurredAt:   s.now().UTC(),
	}
	if !after.ShippedBy.IsZero() {
		by := after.ShippedBy
		change.ShippedBy = &by
	}

	if err := s.publisher.PublishStatusChanged(ctx, change); err != nil {
		s.logger.WarnContext(ctx, "failed to publish status change", slog.Int64("order_id", after.OrderID), slog.Any("error", err))
	}
}
