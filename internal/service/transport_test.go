package service_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/SergeyBogomolovv/transport-sync/internal/config"
	"github.com/SergeyBogomolovv/transport-sync/internal/entities"
	"github.com/SergeyBogomolovv/transport-sync/internal/service"
	mocks "github.com/SergeyBogomolovv/transport-sync/internal/service/mocks"
	txMocks "github.com/SergeyBogomolovv/transport-sync/pkg/trm/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type deps struct {
	tx         *txMocks.MockManager
	orders     *mocks.MockOrderStore
	transports *mocks.MockTransportRepo
	gateway    *mocks.MockShipmentGateway
	scheduler  *mocks.MockJobScheduler
	publisher  *mocks.MockStatusPublisher
	cache      *mocks.MockCache
}

var reconcileCfg = config.Reconcile{
	FirstRunDelay: time.Hour,
	Interval:      time.Hour,
}

func newDeps(t *testing.T) deps {
	return deps{
		tx:         txMocks.NewMockManager(t),
		orders:     mocks.NewMockOrderStore(t),
		transports: mocks.NewMockTransportRepo(t),
		gateway:    mocks.NewMockShipmentGateway(t),
		scheduler:  mocks.NewMockJobScheduler(t),
		publisher:  mocks.NewMockStatusPublisher(t),
		cache:      mocks.NewMockCache(t),
	}
}

func (d deps) service() interface {
	CreateTransport(ctx context.Context, orderID int64, opts service.CreateOptions) (bool, error)
	InitTransport(ctx context.Context, orderID int64) (bool, error)
	GetTransport(ctx context.Context, orderID int64) (entities.Transport, error)
	RegisterIfAbsent(ctx context.Context, orderID int64) error
	HandleJob(ctx context.Context, key string) error
	Run(ctx context.Context, orderID int64) error
} {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	settings := config.ShippingMethod{
		MethodID:  "brenger",
		StoreName: "Demo Store",
		FirstName: "Jan",
		LastName:  "Jansen",
		Address:   "Damrak 1",
		Locality:  "Amsterdam",
		Country:   "NL",
		Situation: "store",
	}
	return service.NewTransportService(logger, d.tx, d.orders, d.transports, d.gateway,
		d.scheduler, d.publisher, d.cache, settings, reconcileCfg)
}

func (d deps) passThroughTx() {
	d.tx.EXPECT().
		Do(mock.Anything, mock.Anything).
		RunAndReturn(
			func(ctx context.Context, cb func(ctx context.Context) error) error {
				return cb(ctx)
			})
}

func testOrder() entities.Order {
	length := 100.0
	return entities.Order{
		ID:              42,
		ShippingMethods: []string{"brenger"},
		Shipping: entities.ShippingAddress{
			FirstName:  "Piet",
			LastName:   "Pietersen",
			Line1:      "Coolsingel 5",
			PostalCode: "3011AD",
			City:       "Rotterdam",
			Country:    "NL",
		},
		BillingPhone: "+31600000000",
		BillingEmail: "piet@example.com",
		Items: []entities.LineItem{
			{
				ID:        1,
				ProductID: 10,
				Quantity:  2,
				Product: &entities.Product{
					ID:         10,
					Name:       "Chair",
					Dimensions: entities.Dimensions{Length: &length},
				},
			},
		},
	}
}

func TestTransportService_CreateTransport(t *testing.T) {
	type MockBehavior func(d deps)

	apiErr := &entities.APIError{StatusCode: 422, Body: []byte(`{"validation_errors":{"pickup":"bad"}}`)}
	created := entities.CreatedShipment{
		ID:          "shp-1",
		TrackingURL: "https://track/shp-1",
		State:       entities.StateReadyForPickup,
	}

	testCases := []struct {
		name         string
		opts         service.CreateOptions
		mockBehavior MockBehavior
		want         bool
		wantErr      error
	}{
		{
			name: "OK",
			mockBehavior: func(d deps) {
				d.orders.EXPECT().GetOrder(mock.Anything, int64(42)).Return(testOrder(), nil)
				d.transports.EXPECT().GetTransport(mock.Anything, int64(42)).
					Return(entities.Transport{OrderID: 42, Status: entities.StateNotCreated}, nil)
				d.gateway.EXPECT().Create(mock.Anything, mock.MatchedBy(func(req entities.ShipmentRequest) bool {
					return len(req.ItemSets) == 1 &&
						req.ItemSets[0].ClientReference == "Demo Store - #42" &&
						req.ItemSets[0].Title == "2x Chair"
				})).Return(created, nil)
				d.passThroughTx()
				d.transports.EXPECT().SaveCreatedShipment(mock.Anything, int64(42), created).Return(nil)
				d.scheduler.EXPECT().ScheduleRecurring(mock.Anything, service.HookTransportStatus, "42",
					mock.AnythingOfType("time.Time"), time.Hour).Return(true, nil)
				d.cache.EXPECT().Delete("transport:42").Return()
			},
			want: true,
		},
		{
			name: "With delivery overrides",
			opts: service.CreateOptions{
				Delivery: &entities.DeliveryOptions{Floor: "3", ElevatorAvailable: "1"},
			},
			mockBehavior: func(d deps) {
				d.orders.EXPECT().GetOrder(mock.Anything, int64(42)).Return(testOrder(), nil)
				d.transports.EXPECT().GetTransport(mock.Anything, int64(42)).
					Return(entities.Transport{OrderID: 42, Status: entities.StateNotCreated}, nil)
				d.gateway.EXPECT().Create(mock.Anything, mock.MatchedBy(func(req entities.ShipmentRequest) bool {
					return req.Delivery.Details.FloorLevel == 3 && req.Delivery.Details.Elevator
				})).Return(created, nil)
				d.passThroughTx()
				d.transports.EXPECT().SaveCreatedShipment(mock.Anything, int64(42), created).Return(nil)
				d.scheduler.EXPECT().ScheduleRecurring(mock.Anything, mock.Anything, mock.Anything,
					mock.Anything, mock.Anything).Return(false, nil)
				d.cache.EXPECT().Delete("transport:42").Return()
			},
			want: true,
		},
		{
			name: "Provider error is returned",
			mockBehavior: func(d deps) {
				d.orders.EXPECT().GetOrder(mock.Anything, int64(42)).Return(testOrder(), nil)
				d.transports.EXPECT().GetTransport(mock.Anything, int64(42)).
					Return(entities.Transport{OrderID: 42, Status: entities.StateNotCreated}, nil)
				d.gateway.EXPECT().Create(mock.Anything, mock.Anything).
					Return(entities.CreatedShipment{}, apiErr)
			},
			wantErr: apiErr,
		},
		{
			name: "Transport already exists",
			mockBehavior: func(d deps) {
				d.orders.EXPECT().GetOrder(mock.Anything, int64(42)).Return(testOrder(), nil)
				d.transports.EXPECT().GetTransport(mock.Anything, int64(42)).
					Return(entities.Transport{OrderID: 42, ShipmentID: "shp-1", Status: entities.StatePickedUp}, nil)
			},
			wantErr: entities.ErrTransportExists,
		},
		{
			name: "Order not found",
			mockBehavior: func(d deps) {
				d.orders.EXPECT().GetOrder(mock.Anything, int64(42)).
					Return(entities.Order{}, entities.ErrOrderNotFound)
			},
			wantErr: entities.ErrInvalidArgument,
		},
		{
			name: "Delivery without country",
			mockBehavior: func(d deps) {
				order := testOrder()
				order.Shipping.Country = ""
				d.orders.EXPECT().GetOrder(mock.Anything, int64(42)).Return(order, nil)
				d.transports.EXPECT().GetTransport(mock.Anything, int64(42)).
					Return(entities.Transport{OrderID: 42, Status: entities.StateNotCreated}, nil)
			},
			wantErr: entities.ErrInvalidArgument,
		},
		{
			name: "Local failure is swallowed",
			mockBehavior: func(d deps) {
				d.orders.EXPECT().GetOrder(mock.Anything, int64(42)).Return(testOrder(), nil)
				d.transports.EXPECT().GetTransport(mock.Anything, int64(42)).
					Return(entities.Transport{}, errors.New("db down"))
			},
		},
		{
			name: "Network error is a local failure",
			mockBehavior: func(d deps) {
				d.orders.EXPECT().GetOrder(mock.Anything, int64(42)).Return(testOrder(), nil)
				d.transports.EXPECT().GetTransport(mock.Anything, int64(42)).
					Return(entities.Transport{OrderID: 42, Status: entities.StateNotCreated}, nil)
				d.gateway.EXPECT().Create(mock.Anything, mock.Anything).
					Return(entities.CreatedShipment{}, errors.New("connection reset"))
			},
		},
		{
			name: "Store failure after create is swallowed",
			mockBehavior: func(d deps) {
				d.orders.EXPECT().GetOrder(mock.Anything, int64(42)).Return(testOrder(), nil)
				d.transports.EXPECT().GetTransport(mock.Anything, int64(42)).
					Return(entities.Transport{OrderID: 42, Status: entities.StateNotCreated}, nil)
				d.gateway.EXPECT().Create(mock.Anything, mock.Anything).Return(created, nil)
				d.passThroughTx()
				d.transports.EXPECT().SaveCreatedShipment(mock.Anything, int64(42), created).
					Return(errors.New("db down"))
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			d := newDeps(t)
			tc.mockBehavior(d)

			ok, err := d.service().CreateTransport(context.Background(), 42, tc.opts)

			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				assert.False(t, ok)
				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tc.want, ok)
		})
	}
}

func TestTransportService_CreateTransport_Concurrent(t *testing.T) {
	const callers = 5

	created := entities.CreatedShipment{ID: "shp-1", State: entities.StateReadyForPickup}
	var stored atomic.Bool
	release := make(chan struct{})
	inFlight := make(chan struct{})

	d := newDeps(t)
	d.orders.EXPECT().GetOrder(mock.Anything, int64(42)).Return(testOrder(), nil)
	d.transports.EXPECT().GetTransport(mock.Anything, int64(42)).
		RunAndReturn(func(ctx context.Context, orderID int64) (entities.Transport, error) {
			if stored.Load() {
				return entities.Transport{OrderID: orderID, ShipmentID: created.ID, Status: created.State}, nil
			}
			return entities.Transport{OrderID: orderID, Status: entities.StateNotCreated}, nil
		})
	d.gateway.EXPECT().Create(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, req entities.ShipmentRequest) (entities.CreatedShipment, error) {
			close(inFlight)
			<-release
			return created, nil
		}).Once()
	d.passThroughTx()
	d.transports.EXPECT().SaveCreatedShipment(mock.Anything, int64(42), created).
		RunAndReturn(func(ctx context.Context, orderID int64, shipment entities.CreatedShipment) error {
			stored.Store(true)
			return nil
		}).Once()
	d.scheduler.EXPECT().ScheduleRecurring(mock.Anything, service.HookTransportStatus, "42",
		mock.AnythingOfType("time.Time"), time.Hour).Return(true, nil).Once()
	d.cache.EXPECT().Delete("transport:42").Return().Once()

	svc := d.service()

	type result struct {
		ok  bool
		err error
	}
	results := make(chan result, callers)

	var started, done sync.WaitGroup
	started.Add(callers)
	done.Add(callers)
	for range callers {
		go func() {
			defer done.Done()
			started.Done()
			ok, err := svc.CreateTransport(context.Background(), 42, service.CreateOptions{})
			results <- result{ok: ok, err: err}
		}()
	}

	started.Wait()
	<-inFlight
	time.Sleep(50 * time.Millisecond)
	close(release)
	done.Wait()
	close(results)

	var succeeded int
	for r := range results {
		if r.err != nil {
			assert.ErrorIs(t, r.err, entities.ErrTransportExists)
			continue
		}
		assert.True(t, r.ok)
		succeeded++
	}
	assert.GreaterOrEqual(t, succeeded, 1)

	ok, err := svc.CreateTransport(context.Background(), 42, service.CreateOptions{})
	assert.ErrorIs(t, err, entities.ErrTransportExists)
	assert.False(t, ok)
}

func TestTransportService_InitTransport(t *testing.T) {
	t.Run("ships with provider", func(t *testing.T) {
		d := newDeps(t)
		d.orders.EXPECT().GetOrder(mock.Anything, int64(42)).Return(testOrder(), nil)
		d.transports.EXPECT().InitTransport(mock.Anything, int64(42)).Return(nil)
		d.cache.EXPECT().Delete("transport:42").Return()

		ok, err := d.service().InitTransport(context.Background(), 42)
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("other shipping method", func(t *testing.T) {
		d := newDeps(t)
		order := testOrder()
		order.ShippingMethods = []string{"flat_rate"}
		d.orders.EXPECT().GetOrder(mock.Anything, int64(42)).Return(order, nil)

		ok, err := d.service().InitTransport(context.Background(), 42)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("order not found", func(t *testing.T) {
		d := newDeps(t)
		d.orders.EXPECT().GetOrder(mock.Anything, int64(42)).Return(entities.Order{}, entities.ErrOrderNotFound)

		_, err := d.service().InitTransport(context.Background(), 42)
		assert.ErrorIs(t, err, entities.ErrOrderNotFound)
	})
}

func TestTransportService_GetTransport(t *testing.T) {
	stored := entities.Transport{
		OrderID:     42,
		ShipmentID:  "shp-1",
		Status:      entities.StatePickedUp,
		TrackingURL: "https://track/shp-1",
	}

	t.Run("cache hit", func(t *testing.T) {
		d := newDeps(t)
		data, err := stored.Marshal()
		require.NoError(t, err)
		d.cache.EXPECT().Get("transport:42").Return(data, true)

		got, err := d.service().GetTransport(context.Background(), 42)
		require.NoError(t, err)
		assert.Equal(t, stored.ShipmentID, got.ShipmentID)
		assert.Equal(t, stored.Status, got.Status)
	})

	t.Run("cache miss", func(t *testing.T) {
		d := newDeps(t)
		d.cache.EXPECT().Get("transport:42").Return(nil, false)
		d.transports.EXPECT().GetTransport(mock.Anything, int64(42)).Return(stored, nil)
		d.cache.EXPECT().Set("transport:42", mock.Anything).Return()

		got, err := d.service().GetTransport(context.Background(), 42)
		require.NoError(t, err)
		assert.Equal(t, stored, got)
	})

	t.Run("corrupted cache entry falls back to repo", func(t *testing.T) {
		d := newDeps(t)
		d.cache.EXPECT().Get("transport:42").Return([]byte("garbage"), true)
		d.transports.EXPECT().GetTransport(mock.Anything, int64(42)).Return(stored, nil)
		d.cache.EXPECT().Set("transport:42", mock.Anything).Return()

		got, err := d.service().GetTransport(context.Background(), 42)
		require.NoError(t, err)
		assert.Equal(t, stored, got)
	})

	t.Run("invalid argument is not retried", func(t *testing.T) {
		d := newDeps(t)
		d.cache.EXPECT().Get("transport:42").Return(nil, false)
		d.transports.EXPECT().GetTransport(mock.Anything, int64(42)).
			Return(entities.Transport{}, entities.ErrInvalidArgument).Once()

		_, err := d.service().GetTransport(context.Background(), 42)
		assert.ErrorIs(t, err, entities.ErrInvalidArgument)
	})
}
