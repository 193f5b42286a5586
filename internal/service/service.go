package service

import (
	"context"
	"time"

	"github.com/SergeyBogomolovv/transport-sync/internal/entities"
)

type OrderStore interface {
	GetOrder(ctx context.Context, orderID int64) (entities.Order, error)
}

type OrderRepo interface {
	// Повторная запись того же заказа ничего не меняет (ON CONFLICT)
	SaveOrder(ctx context.Context, o entities.Order) error
	SaveProducts(ctx context.Context, products []entities.Product) error
	SaveItems(ctx context.Context, orderID int64, items []entities.LineItem) error
}

type TransportRepo interface {
	GetTransport(ctx context.Context, orderID int64) (entities.Transport, error)
	InitTransport(ctx context.Context, orderID int64) error
	SaveCreatedShipment(ctx context.Context, orderID int64, s entities.CreatedShipment) error
	UpdateTransport(ctx context.Context, orderID int64, u entities.TransportUpdate) error
}

type ShipmentGateway interface {
	Create(ctx context.Context, req entities.ShipmentRequest) (entities.CreatedShipment, error)
	Fetch(ctx context.Context, id string) (entities.CreatedShipment, error)
}

type JobScheduler interface {
	ScheduleRecurring(ctx context.Context, hook, key string, firstRun time.Time, interval time.Duration) (bool, error)
	Unschedule(ctx context.Context, hook, key string) error
}

type StatusPublisher interface {
	PublishStatusChanged(ctx context.Context, change entities.StatusChange) error
}

type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte)
	Delete(key string)
}
