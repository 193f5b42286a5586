package handler

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/SergeyBogomolovv/transport-sync/internal/classifier"
	"github.com/SergeyBogomolovv/transport-sync/internal/dispatch"
	"github.com/SergeyBogomolovv/transport-sync/internal/entities"
	mocks "github.com/SergeyBogomolovv/transport-sync/internal/handler/mocks"
	"github.com/go-playground/validator/v10"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type fakeWriter struct {
	mu   sync.Mutex
	msgs []kafka.Message
	err  error
}

func (w *fakeWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.err != nil {
		return w.err
	}
	w.msgs = append(w.msgs, msgs...)
	return nil
}

func (w *fakeWriter) Close() error { return nil }

type fakeReader struct {
	msgs      []kafka.Message
	committed []kafka.Message
}

func (r *fakeReader) FetchMessage(ctx context.Context) (kafka.Message, error) {
	if len(r.msgs) == 0 {
		return kafka.Message{}, io.EOF
	}
	m := r.msgs[0]
	r.msgs = r.msgs[1:]
	return m, nil
}

func (r *fakeReader) CommitMessages(_ context.Context, msgs ...kafka.Message) error {
	r.committed = append(r.committed, msgs...)
	return nil
}

func (r *fakeReader) Close() error { return nil }

func event(t *testing.T, typ string, payload any) kafka.Message {
	t.Helper()
	raw, err := json.Marshal(payload)
	require.NoError(t, err)
	value, err := json.Marshal(Event{Type: typ, Payload: raw})
	require.NoError(t, err)
	return kafka.Message{Topic: "orders", Value: value}
}

func newTestKafkaHandler(t *testing.T, reader messageReader, dlq messageWriter) (*kafkaHandler, *mocks.MockOrderSaver, *mocks.MockTransportInitializer, *mocks.MockDispatcher) {
	saver := mocks.NewMockOrderSaver(t)
	transports := mocks.NewMockTransportInitializer(t)
	dispatcher := mocks.NewMockDispatcher(t)
	return &kafkaHandler{
		reader:     reader,
		dlq:        dlq,
		logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
		validate:   validator.New(),
		saver:      saver,
		transports: transports,
		dispatcher: dispatcher,
	}, saver, transports, dispatcher
}

func TestKafkaHandler_Consume(t *testing.T) {
	order := Order{
		ID:              42,
		ShippingMethods: []string{"brenger"},
		Shipping:        ShippingAddress{FirstName: "Piet", City: "Rotterdam", Country: "NL"},
		LineItems: []LineItem{
			{ID: 1, ProductID: 10, Quantity: 1, Product: &Product{ID: 10, Name: "Sofa"}},
		},
	}

	t.Run("order created", func(t *testing.T) {
		reader := &fakeReader{msgs: []kafka.Message{event(t, EventOrderCreated, order)}}
		dlq := &fakeWriter{}
		h, saver, transports, _ := newTestKafkaHandler(t, reader, dlq)

		saver.EXPECT().SaveOrder(mock.Anything, mock.MatchedBy(func(o entities.Order) bool {
			return o.ID == 42 && o.Shipping.City == "Rotterdam" &&
				len(o.Items) == 1 && o.Items[0].Product != nil && o.Items[0].Product.Name == "Sofa"
		})).Return(nil).Once()
		transports.EXPECT().InitTransport(mock.Anything, int64(42)).Return(true, nil).Once()

		h.Consume(context.Background())

		assert.Len(t, reader.committed, 1)
		assert.Empty(t, dlq.msgs)
	})

	t.Run("order action", func(t *testing.T) {
		action := ActionEvent{OrderID: 42, Action: dispatch.ActionCreateTransport}
		reader := &fakeReader{msgs: []kafka.Message{event(t, EventOrderAction, action)}}
		dlq := &fakeWriter{}
		h, _, _, dispatcher := newTestKafkaHandler(t, reader, dlq)

		dispatcher.EXPECT().
			Dispatch(mock.Anything, dispatch.Command{Action: dispatch.ActionCreateTransport, OrderID: 42}).
			Return(classifier.Success(), nil).Once()

		h.Consume(context.Background())

		assert.Len(t, reader.committed, 1)
		assert.Empty(t, dlq.msgs)
	})

	t.Run("invalid messages go to DLQ", func(t *testing.T) {
		reader := &fakeReader{msgs: []kafka.Message{
			{Topic: "orders", Value: []byte("not json")},
			event(t, "order.deleted", order),
			event(t, EventOrderCreated, Order{ID: 0}),
		}}
		dlq := &fakeWriter{}
		h, _, _, _ := newTestKafkaHandler(t, reader, dlq)

		h.Consume(context.Background())

		assert.Len(t, reader.committed, 3)
		require.Len(t, dlq.msgs, 3)
		assert.Equal(t, "orders-dlq", dlq.msgs[0].Topic)
	})

	t.Run("save failure goes to DLQ", func(t *testing.T) {
		reader := &fakeReader{msgs: []kafka.Message{event(t, EventOrderCreated, order)}}
		dlq := &fakeWriter{}
		h, saver, _, _ := newTestKafkaHandler(t, reader, dlq)

		saver.EXPECT().SaveOrder(mock.Anything, mock.Anything).Return(errors.New("db error")).Once()

		h.Consume(context.Background())

		assert.Len(t, reader.committed, 1)
		assert.Len(t, dlq.msgs, 1)
	})
}

func TestStatusPublisher_PublishStatusChanged(t *testing.T) {
	w := &fakeWriter{}
	p := &StatusPublisher{
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		writer: w,
	}

	change := entities.StatusChange{
		EventID:    "evt-1",
		OrderID:    42,
		ShipmentID: "shp-1",
		From:       entities.StatePickedUp,
		To:         entities.StateDelivered,
		OccurredAt: time.Date(2026, 10, 18, 12, 0, 0, 0, time.UTC),
	}

	require.NoError(t, p.PublishStatusChanged(context.Background(), change))
	require.Len(t, w.msgs, 1)

	msg := w.msgs[0]
	assert.Equal(t, "42", string(msg.Key))
	assert.Contains(t, msg.Headers, kafka.Header{Key: "type", Value: []byte(EventTransportStatusChanged)})

	var got entities.StatusChange
	require.NoError(t, json.Unmarshal(msg.Value, &got))
	assert.Equal(t, change, got)

	w.err = errors.New("broker down")
	assert.Error(t, p.PublishStatusChanged(context.Background(), change))
}
