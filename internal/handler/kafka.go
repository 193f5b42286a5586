package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/SergeyBogomolovv/transport-sync/internal/config"
	"github.com/SergeyBogomolovv/transport-sync/internal/dispatch"
	"github.com/SergeyBogomolovv/transport-sync/internal/entities"

	"github.com/go-playground/validator/v10"
	"github.com/segmentio/kafka-go"
)

type OrderSaver interface {
	SaveOrder(ctx context.Context, order entities.Order) error
}

type TransportInitializer interface {
	InitTransport(ctx context.Context, orderID int64) (bool, error)
}

type messageReader interface {
	FetchMessage(ctx context.Context) (kafka.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type kafkaHandler struct {
	dlq        messageWriter
	reader     messageReader
	logger     *slog.Logger
	validate   *validator.Validate
	saver      OrderSaver
	transports TransportInitializer
	dispatcher Dispatcher
}

func NewKafkaHandler(
	logger *slog.Logger,
	cfg config.Kafka,
	saver OrderSaver,
	transports TransportInitializer,
	dispatcher Dispatcher,
) *kafkaHandler {
	return &kafkaHandler{
		logger: logger.With(slog.String("handler", "kafka")),
		reader: kafka.NewReader(kafka.ReaderConfig{
			Brokers: cfg.Brokers,
			GroupID: cfg.GroupID,
			Topic:   cfg.OrdersTopic,
			MaxWait: cfg.ReaderMaxWait,
		}),
		dlq: &kafka.Writer{
			Addr:         kafka.TCP(cfg.Brokers...),
			Balancer:     &kafka.LeastBytes{},
			BatchTimeout: cfg.BatchTimeout,
		},
		validate:   validator.New(),
		saver:      saver,
		transports: transports,
		dispatcher: dispatcher,
	}
}

func (h *kafkaHandler) Consume(ctx context.Context) {
	for {
		m, err := h.reader.FetchMessage(ctx)
		if err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, context.Canceled) {
				break
			}
			h.logger.Error("failed to fetch message", slog.Any("error", err))
			continue
		}

		h.process(ctx, m)

		if err := h.reader.CommitMessages(ctx, m); err != nil {
			commitErrors.Inc()
			h.logger.Error("failed to commit message", slog.Any("error", err))
		}
	}
}

func (h *kafkaHandler) process(ctx context.Context, m kafka.Message) {
	messagesInProgress.Inc()
	defer messagesInProgress.Dec()
	start := time.Now()
	defer func() { messageProcessingDuration.Observe(time.Since(start).Seconds()) }()

	eventType, err := h.handleMessage(ctx, m)
	if err == nil {
		messagesProcessed.WithLabelValues(eventType).Inc()
		return
	}

	messagesFailed.WithLabelValues(eventType).Inc()
	h.logger.Error("failed to handle message",
		slog.Any("error", err),
		slog.String("type", eventType),
		slog.Int64("offset", m.Offset),
	)

	// kafka-go сам повторяет запись
	if err := h.WriteToDLQ(ctx, m); err != nil {
		h.logger.Error("failed to write message to DLQ", slog.Any("error", err))
		return
	}
	messagesDLQ.Inc()
}

func (h *kafkaHandler) handleMessage(ctx context.Context, m kafka.Message) (string, error) {
	var event Event
	if err := json.Unmarshal(m.Value, &event); err != nil {
		return "unknown", fmt.Errorf("failed to unmarshal event: %w", err)
	}
	if err := h.validate.Struct(event); err != nil {
		return "unknown", fmt.Errorf("invalid event: %w", err)
	}

	switch event.Type {
	case EventOrderCreated:
		return event.Type, h.handleOrderCreated(ctx, event.Payload)
	case EventOrderAction:
		return event.Type, h.handleOrderAction(ctx, event.Payload)
	}
	return "unknown", fmt.Errorf("unsupported event type %q", event.Type)
}

func (h *kafkaHandler) handleOrderCreated(ctx context.Context, payload json.RawMessage) error {
	var order Order
	if err := json.Unmarshal(payload, &order); err != nil {
		return fmt.Errorf("failed to unmarshal order: %w", err)
	}
	if err := h.validate.Struct(order); err != nil {
		return fmt.Errorf("invalid order data: %w", err)
	}

	// В операции сохранения уже есть retry
	if err := h.saver.SaveOrder(ctx, OrderJSONToEntity(order)); err != nil {
		return err
	}

	tracked, err := h.transports.InitTransport(ctx, order.ID)
	if err != nil {
		return err
	}
	if tracked {
		h.logger.Debug("transport initialized", slog.Int64("order_id", order.ID))
	}
	return nil
}

func (h *kafkaHandler) handleOrderAction(ctx context.Context, payload json.RawMessage) error {
	var action ActionEvent
	if err := json.Unmarshal(payload, &action); err != nil {
		return fmt.Errorf("failed to unmarshal action: %w", err)
	}
	if err := h.validate.Struct(action); err != nil {
		return fmt.Errorf("invalid action data: %w", err)
	}

	notice, err := h.dispatcher.Dispatch(ctx, dispatch.Command{
		Action:   action.Action,
		OrderID:  action.OrderID,
		Items:    action.Items,
		Delivery: action.Delivery,
	})
	if err != nil {
		actionsTotal.WithLabelValues(action.Action, "error").Inc()
		return err
	}
	actionsTotal.WithLabelValues(action.Action, notice.Status).Inc()

	h.logger.Info("action handled",
		slog.Int64("order_id", action.OrderID),
		slog.String("action", action.Action),
		slog.String("status", notice.Status),
		slog.String("message", notice.Message()),
	)
	return nil
}

func (h *kafkaHandler) WriteToDLQ(ctx context.Context, m kafka.Message) error {
	m.Topic = fmt.Sprintf("%s-dlq", m.Topic)
	return h.dlq.WriteMessages(ctx, m)
}

func (h *kafkaHandler) Close() error {
	if err := h.reader.Close(); err != nil {
		return err
	}
	return h.dlq.Close()
}
