package main

import (
	"context"
	"encoding/json"
	"flag"
	"log"
	"os/signal"
	"syscall"
	"time"

	"github.com/SergeyBogomolovv/transport-sync/internal/dispatch"
	"github.com/SergeyBogomolovv/transport-sync/internal/handler"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/segmentio/kafka-go"
)

var shippingClasses = []string{"bulky", "furniture", "parcel"}

func dims(f *gofakeit.Faker, optional bool) handler.Dimensions {
	if optional && f.Bool() {
		return handler.Dimensions{}
	}
	l, w, h := f.Float64Range(20, 250), f.Float64Range(20, 120), f.Float64Range(10, 200)
	weight := f.Float64Range(1, 90)
	return handler.Dimensions{Length: &l, Width: &w, Height: &h, Weight: &weight}
}

func newOrder(f *gofakeit.Faker, id int64, method string) handler.Order {
	addr := f.Address()

	var items []handler.LineItem
	for i := range f.Number(1, 3) {
		productID := int64(f.Number(1000, 9999))
		items = append(items, handler.LineItem{
			ID:                 id*10 + int64(i) + 1,
			ProductID:          productID,
			Quantity:           f.Number(1, 3),
			ProviderDimensions: dims(f, true),
			Product: &handler.Product{
				ID:                 productID,
				Name:               f.ProductName(),
				ShippingClass:      f.RandomString(shippingClasses),
				Dimensions:         dims(f, false),
				ProviderDimensions: dims(f, true),
			},
		})
	}

	methods := []string{method}
	if f.Number(0, 4) == 0 {
		methods = []string{"flat_rate"}
	}

	return handler.Order{
		ID:              id,
		ShippingMethods: methods,
		Shipping: handler.ShippingAddress{
			FirstName: f.FirstName(),
			LastName:  f.LastName(),
			Address1:  addr.Street,
			Postcode:  addr.Zip,
			City:      addr.City,
			Country:   "NL",
		},
		Billing: handler.Billing{
			Phone: f.Phone(),
			Email: f.Email(),
		},
		LineItems: items,
	}
}

func message(typ string, payload any) (kafka.Message, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return kafka.Message{}, err
	}
	value, err := json.Marshal(handler.Event{Type: typ, Payload: raw})
	if err != nil {
		return kafka.Message{}, err
	}
	return kafka.Message{Value: value}, nil
}

func main() {
	brokers := flag.String("brokers", "localhost:9092", "kafka broker address")
	topic := flag.String("topic", "orders", "orders topic")
	method := flag.String("method", "brenger", "provider shipping method id")
	every := flag.Duration("every", 2*time.Second, "interval between orders")
	flag.Parse()

	writer := &kafka.Writer{
		Addr:  kafka.TCP(*brokers),
		Topic: *topic,
	}
	defer writer.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	f := gofakeit.New(0)
	nextID := time.Now().Unix()

	ticker := time.NewTicker(*every)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			nextID++
			order := newOrder(f, nextID, *method)

			created, err := message(handler.EventOrderCreated, order)
			if err != nil {
				log.Println("failed to encode order:", err)
				continue
			}
			action, err := message(handler.EventOrderAction, handler.ActionEvent{
				OrderID: order.ID,
				Action:  dispatch.ActionCreateTransport,
			})
			if err != nil {
				log.Println("failed to encode action:", err)
				continue
			}

			if err := writer.WriteMessages(ctx, created, action); err != nil {
				log.Println("failed to write order:", err)
				continue
			}
			log.Println("order generated", order.ID)
		case <-ctx.Done():
			return
		}
	}
}
