package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/SergeyBogomolovv/transport-sync/internal/builder"
	"github.com/SergeyBogomolovv/transport-sync/internal/config"
	"github.com/SergeyBogomolovv/transport-sync/internal/entities"
	"github.com/SergeyBogomolovv/transport-sync/pkg/trm"
	"github.com/SergeyBogomolovv/transport-sync/pkg/utils"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/singleflight"
)

// CreateOptions carries operator overrides. Nil fields keep the computed values.
type CreateOptions struct {
	Items    []entities.OverrideItem
	Delivery *entities.DeliveryOptions
}

type transportService struct {
	logger    *slog.Logger
	txManager trm.Manager
	tracer    trace.Tracer

	orders     OrderStore
	transports TransportRepo
	gateway    ShipmentGateway
	scheduler  JobScheduler
	publisher  StatusPublisher
	cache      Cache

	builder  *builder.Builder
	methodID string
	cfg      config.Reconcile
	now      func() time.Time

	creates singleflight.Group
}

func NewTransportService(
	logger *slog.Logger,
	txManager trm.Manager,
	orders OrderStore,
	transports TransportRepo,
	gateway ShipmentGateway,
	scheduler JobScheduler,
	publisher StatusPublisher,
	cache Cache,
	settings config.ShippingMethod,
	cfg config.Reconcile,
) *transportService {
	return &transportService{
		logger:     logger.With(slog.String("service", "transport")),
		txManager:  txManager,
		tracer:     otel.Tracer("transport-service"),
		orders:     orders,
		transports: transports,
		gateway:    gateway,
		scheduler:  scheduler,
		publisher:  publisher,
		cache:      cache,
		builder:    builder.New(settings),
		methodID:   settings.MethodID,
		cfg:        cfg,
		now:        time.Now,
	}
}

var persistRetry = utils.RetryConfig{
	InitialDelay: 100 * time.Millisecond,
	MaxAttempts:  3,
	Multiplier:   2,
}

// CreateTransport submits the order to the provider and starts status reconciliation.
// Provider errors and invalid arguments are returned. Any other local failure is logged
// and reported as (false, nil). Concurrent calls for one order share a single submission.
func (s *transportService) CreateTransport(ctx context.Context, orderID int64, opts CreateOptions) (bool, error) {
	v, err, shared := s.creates.Do(strconv.FormatInt(orderID, 10), func() (any, error) {
		return s.createTransport(ctx, orderID, opts)
	})
	if shared {
		s.logger.DebugContext(ctx, "transport creation shared", slog.Int64("order_id", orderID))
	}
	ok, _ := v.(bool)
	return ok, err
}

func (s *transportService) createTransport(ctx context.Context, orderID int64, opts CreateOptions) (bool, error) {
	ctx, span := s.tracer.Start(ctx, "TransportService.CreateTransport",
		trace.WithAttributes(attribute.Int64("order.id", orderID)))
	defer span.End()

	order, err := s.orders.GetOrder(ctx, orderID)
	if errors.Is(err, entities.ErrInvalidArgument) {
		return false, err
	}
	if err != nil {
		return s.localFailure(ctx, span, orderID, "failed to get order", err)
	}

	record, err := s.transports.GetTransport(ctx, orderID)
	if err != nil {
		return s.localFailure(ctx, span, orderID, "failed to get transport", err)
	}
	if record.Status != entities.StateNotCreated {
		return false, entities.ErrTransportExists
	}

	req := s.builder.Build(order)
	if opts.Items != nil {
		req = builder.ApplyItemOverrides(req, opts.Items)
	}
	if opts.Delivery != nil {
		req = builder.ApplyDeliveryOverrides(req, *opts.Delivery)
	}

	if err := req.Validate(); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "invalid shipment request")
		return false, err
	}

	shipment, err := s.gateway.Create(ctx, req)
	var apiErr *entities.APIError
	if errors.As(err, &apiErr) {
		span.RecordError(err)
		span.SetStatus(codes.Error, "provider rejected shipment")
		return false, err
	}
	if err != nil {
		return s.localFailure(ctx, span, orderID, "failed to create shipment", err)
	}
	span.SetAttributes(attribute.String("shipment.id", shipment.ID))

	persist := func() error {
		return s.txManager.Do(ctx, func(ctx context.Context) error {
			if err := s.transports.SaveCreatedShipment(ctx, orderID, shipment); err != nil {
				return err
			}
			return s.RegisterIfAbsent(ctx, orderID)
		})
	}
	if err := utils.Retry(persistRetry, persist); err != nil {
		s.logger.ErrorContext(ctx, "shipment created but not stored",
			slog.Int64("order_id", orderID),
			slog.String("shipment_id", shipment.ID),
			slog.Any("error", err),
		)
		return s.localFailure(ctx, span, orderID, "failed to store shipment", err)
	}
	s.cache.Delete(cacheKey(orderID))

	s.logger.InfoContext(ctx, "transport created",
		slog.Int64("order_id", orderID),
		slog.String("shipment_id", shipment.ID),
		slog.String("state", string(shipment.State)),
	)
	return true, nil
}

func (s *transportService) localFailure(ctx context.Context, span trace.Span, orderID int64, msg string, err error) (bool, error) {
	span.RecordError(err)
	span.SetStatus(codes.Error, msg)
	s.logger.ErrorContext(ctx, msg, slog.Int64("order_id", orderID), slog.Any("error", err))
	return false, nil
}

// InitTransport stores a not_created record when the order ships with the provider.
func (s *transportService) InitTransport(ctx context.Context, orderID int64) (bool, error) {
	order, err := s.orders.GetOrder(ctx, orderID)
	if err != nil {
		return false, fmt.Errorf("failed to get order: %w", err)
	}
	if !order.HasShippingMethod(s.methodID) {
		return false, nil
	}

	if err := s.transports.InitTransport(ctx, orderID); err != nil {
		return false, fmt.Errorf("failed to init transport: %w", err)
	}
	s.cache.Delete(cacheKey(orderID))
	return true, nil
}

// Order reads an order for the action handlers.
func (s *transportService) Order(ctx context.Context, orderID int64) (entities.Order, error) {
	return s.orders.GetOrder(ctx, orderID)
}

func (s *transportService) GetTransport(ctx context.Context, orderID int64) (entities.Transport, error) {
	key := cacheKey(orderID)

	if data, ok := s.cache.Get(key); ok {
		var t entities.Transport
		err := t.Unmarshal(data)
		if err == nil {
			return t, nil
		}
		s.logger.WarnContext(ctx, "failed to unmarshal cached transport", slog.String("key", key), slog.Any("error", err))
	}

	var t entities.Transport
	fn := func() error {
		var err error
		t, err = s.transports.GetTransport(ctx, orderID)
		return err
	}
	cfg := utils.RetryConfig{
		InitialDelay: 100 * time.Millisecond,
		MaxAttempts:  3,
		Multiplier:   2,
	}
	if err := utils.Retry(cfg, fn, entities.ErrInvalidArgument); err != nil {
		return entities.Transport{}, err
	}

	data, err := t.Marshal()
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to marshal transport", slog.Int64("order_id", orderID), slog.Any("error", err))
		return t, nil
	}
	s.cache.Set(key, data)
	return t, nil
}

func cacheKey(orderID int64) string {
	return "transport:" + strconv.FormatInt(orderID, 10)
}
