package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/SergeyBogomolovv/transport-sync/internal/config"
	"github.com/SergeyBogomolovv/transport-sync/internal/entities"

	"github.com/segmentio/kafka-go"
)

const EventTransportStatusChanged = "transport.status_changed"

// StatusPublisher пишет изменения статуса доставки в Kafka.
// Ключ сообщения id заказа, поэтому события одного заказа упорядочены.
type StatusPublisher struct {
	logger *slog.Logger
	writer messageWriter
}

func NewStatusPublisher(logger *slog.Logger, cfg config.Kafka) *StatusPublisher {
	return &StatusPublisher{
		logger: logger.With(slog.String("handler", "publisher")),
		writer: &kafka.Writer{
			Addr:         kafka.TCP(cfg.Brokers...),
			Topic:        cfg.StatusTopic,
			Balancer:     &kafka.Hash{},
			BatchTimeout: cfg.BatchTimeout,
			RequiredAcks: kafka.RequireOne,
		},
	}
}

func (p *StatusPublisher) PublishStatusChanged(ctx context.Context, change entities.StatusChange) error {
	value, err := json.Marshal(change)
	if err != nil {
		return fmt.Errorf("failed to marshal status change: %w", err)
	}

	msg := kafka.Message{
		Key:   []byte(strconv.FormatInt(change.OrderID, 10)),
		Value: value,
		Headers: []kafka.Header{
			{Key: "type", Value: []byte(EventTransportStatusChanged)},
			{Key: "event_id", Value: []byte(change.EventID)},
		},
	}

	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		statusEventsPublished.WithLabelValues("error").Inc()
		return fmt.Errorf("failed to write status change: %w", err)
	}
	statusEventsPublished.WithLabelValues("ok").Inc()

	p.logger.DebugContext(ctx, "status change published",
		slog.Int64("order_id", change.OrderID),
		slog.String("to", string(change.To)),
	)
	return nil
}

func (p *StatusPublisher) Close() error {
	return p.writer.Close()
}
