package repo

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/SergeyBogomolovv/transport-sync/internal/entities"
	"github.com/SergeyBogomolovv/transport-sync/internal/jobs"
	"github.com/SergeyBogomolovv/transport-sync/pkg/trm"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupMock(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return sqlx.NewDb(db, "postgres"), mock
}

func ptr(v float64) *float64 { return &v }

func TestPostgresRepo_GetOrder(t *testing.T) {
	db, mock := setupMock(t)
	r := NewPostgresRepo(db)

	mock.ExpectQuery(regexp.QuoteMeta(`FROM orders WHERE id = $1`)).
		WithArgs(int64(42)).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "shipping_methods", "shipping_first_name", "shipping_last_name",
			"shipping_address_1", "shipping_address_2", "shipping_postcode", "shipping_city",
			"shipping_state", "shipping_country", "billing_phone", "billing_email",
		}).AddRow(42, "{brenger,flat_rate}", "Piet", "Pietersen", "Coolsingel 5", nil, "3011AD", "Rotterdam", "Zuid-Holland", "NL", "0687654321", nil))

	mock.ExpectQuery(regexp.QuoteMeta(`FROM order_items i LEFT JOIN products p`)).
		WithArgs(int64(42)).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "order_id", "product_id", "variation_id", "quantity",
			"override_length", "override_width", "override_height", "override_weight",
			"p_id", "name", "shipping_class", "virtual",
			"length", "width", "height", "weight",
			"provider_length", "provider_width", "provider_height", "provider_weight",
		}).
			AddRow(1, 42, 10, 0, 2, nil, nil, nil, "5", 10, "Chair", "bulky", false, "50", "50", "90", "7", nil, nil, nil, "6.5").
			AddRow(2, 42, 11, 0, 1, nil, nil, nil, nil, nil, nil, nil, nil, nil, nil, nil, nil, nil, nil, nil, nil))

	order, err := r.GetOrder(context.Background(), 42)
	require.NoError(t, err)

	assert.Equal(t, int64(42), order.ID)
	assert.Equal(t, []string{"brenger", "flat_rate"}, order.ShippingMethods)
	assert.Equal(t, "Rotterdam", order.Shipping.City)
	assert.Empty(t, order.Shipping.Line2)
	assert.Empty(t, order.BillingEmail)

	require.Len(t, order.Items, 2)
	first := order.Items[0]
	require.NotNil(t, first.Product)
	assert.Equal(t, "Chair", first.Product.Name)
	assert.Equal(t, "bulky", first.Product.ShippingClass)
	assert.Equal(t, ptr(5), first.Override.Weight)
	assert.Equal(t, ptr(6.5), first.Product.StoredDimensions.Weight)
	assert.Equal(t, ptr(90), first.Product.Dimensions.Height)
	assert.Nil(t, first.Product.StoredDimensions.Length)

	assert.Nil(t, order.Items[1].Product, "removed product")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresRepo_GetOrder_NotFound(t *testing.T) {
	db, mock := setupMock(t)
	r := NewPostgresRepo(db)

	mock.ExpectQuery(`FROM orders`).WillReturnError(sql.ErrNoRows)

	_, err := r.GetOrder(context.Background(), 1)
	assert.ErrorIs(t, err, entities.ErrOrderNotFound)
	assert.ErrorIs(t, err, entities.ErrInvalidArgument)
}

func TestPostgresRepo_SaveOrderInTx(t *testing.T) {
	db, mock := setupMock(t)
	r := NewPostgresRepo(db)
	manager := trm.NewManager(db)

	order := entities.Order{
		ID:              7,
		ShippingMethods: []string{"brenger"},
		Items: []entities.LineItem{
			{ID: 1, ProductID: 10, Quantity: 1, Product: &entities.Product{ID: 10, Name: "Chair"}},
		},
	}

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO orders`)).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO products`)).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO order_items`)).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := manager.Do(context.Background(), func(ctx context.Context) error {
		if err := r.SaveOrder(ctx, order); err != nil {
			return err
		}
		if err := r.SaveProducts(ctx, []entities.Product{*order.Items[0].Product}); err != nil {
			return err
		}
		return r.SaveItems(ctx, order.ID, order.Items)
	})

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresRepo_SaveOrderInTx_Rollback(t *testing.T) {
	db, mock := setupMock(t)
	r := NewPostgresRepo(db)
	manager := trm.NewManager(db)
	dbErr := errors.New("db error")

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO orders`).WillReturnError(dbErr)
	mock.ExpectRollback()

	err := manager.Do(context.Background(), func(ctx context.Context) error {
		return r.SaveOrder(ctx, entities.Order{ID: 7})
	})

	assert.ErrorIs(t, err, dbErr)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresRepo_GetTransport(t *testing.T) {
	columns := []string{"order_id", "shipment_id", "transport_status", "tracking_url", "shipping_date", "shipped_by", "updated_at"}
	updated := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	testCases := []struct {
		name    string
		rows    *sqlmock.Rows
		err     error
		want    entities.Transport
		wantErr bool
	}{
		{
			name: "stored record",
			rows: sqlmock.NewRows(columns).
				AddRow(5, "abc", "picked_up", "https://track/abc", "2024-05-01", []byte(`{"name":"Kees","phone":"06"}`), updated),
			want: entities.Transport{
				OrderID:      5,
				ShipmentID:   "abc",
				Status:       entities.StatePickedUp,
				TrackingURL:  "https://track/abc",
				ShippingDate: "2024-05-01",
				ShippedBy:    entities.ShippedBy{Name: "Kees", Phone: "06"},
				UpdatedAt:    updated,
			},
		},
		{
			name: "missing record defaults to not created",
			err:  sql.ErrNoRows,
			want: entities.Transport{OrderID: 5, Status: entities.StateNotCreated},
		},
		{
			name:    "broken shipped by",
			rows:    sqlmock.NewRows(columns).AddRow(5, "abc", "picked_up", "", "", []byte(`{`), updated),
			wantErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			db, mock := setupMock(t)
			r := NewPostgresRepo(db)

			exp := mock.ExpectQuery(regexp.QuoteMeta(`FROM transports WHERE order_id = $1`)).WithArgs(int64(5))
			if tc.err != nil {
				exp.WillReturnError(tc.err)
			} else {
				exp.WillReturnRows(tc.rows)
			}

			got, err := r.GetTransport(context.Background(), 5)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestPostgresRepo_InitTransport(t *testing.T) {
	db, mock := setupMock(t)
	r := NewPostgresRepo(db)

	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO transports (order_id,transport_status) VALUES ($1,$2) ON CONFLICT (order_id) DO NOTHING`)).
		WithArgs(int64(5), "not_created").
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, r.InitTransport(context.Background(), 5))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresRepo_SaveCreatedShipment(t *testing.T) {
	db, mock := setupMock(t)
	r := NewPostgresRepo(db)

	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO transports`)).
		WithArgs(int64(5), "abc", "ready_for_pickup", "https://track/abc", "", nil).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := r.SaveCreatedShipment(context.Background(), 5, entities.CreatedShipment{
		ID:          "abc",
		TrackingURL: "https://track/abc",
		State:       entities.StateReadyForPickup,
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresRepo_UpdateTransport(t *testing.T) {
	t.Run("only set fields", func(t *testing.T) {
		db, mock := setupMock(t)
		r := NewPostgresRepo(db)

		status := entities.StateDelivered
		date := "2024-05-01"

		mock.ExpectExec(regexp.QuoteMeta(`UPDATE transports SET updated_at = NOW(), transport_status = $1, shipping_date = $2 WHERE order_id = $3`)).
			WithArgs("delivered", "2024-05-01", int64(5)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := r.UpdateTransport(context.Background(), 5, entities.TransportUpdate{Status: &status, ShippingDate: &date})
		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("shipped by as json", func(t *testing.T) {
		db, mock := setupMock(t)
		r := NewPostgresRepo(db)

		mock.ExpectExec(regexp.QuoteMeta(`UPDATE transports SET updated_at = NOW(), shipped_by = $1 WHERE order_id = $2`)).
			WithArgs(`{"name":"Kees"}`, int64(5)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := r.UpdateTransport(context.Background(), 5, entities.TransportUpdate{ShippedBy: &entities.ShippedBy{Name: "Kees"}})
		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("empty update", func(t *testing.T) {
		db, mock := setupMock(t)
		r := NewPostgresRepo(db)

		require.NoError(t, r.UpdateTransport(context.Background(), 5, entities.TransportUpdate{}))
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestJobStore_Schedule(t *testing.T) {
	testCases := []struct {
		name     string
		affected int64
		want     bool
	}{
		{name: "new job", affected: 1, want: true},
		{name: "already scheduled", affected: 0, want: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			db, mock := setupMock(t)
			s := NewJobStore(db)
			job := jobs.Job{ID: uuid.New(), Hook: "get_order_transport_status", Key: "5", NextRunAt: time.Now(), Interval: time.Hour}

			mock.ExpectExec(regexp.QuoteMeta(`ON CONFLICT (hook, job_key) DO NOTHING`)).
				WithArgs(job.ID, job.Hook, job.Key, job.NextRunAt, int64(3600000)).
				WillReturnResult(sqlmock.NewResult(0, tc.affected))

			created, err := s.Schedule(context.Background(), job)
			require.NoError(t, err)
			assert.Equal(t, tc.want, created)
		})
	}
}

func TestJobStore_Exists(t *testing.T) {
	db, mock := setupMock(t)
	s := NewJobStore(db)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT EXISTS ( SELECT 1 FROM scheduled_jobs WHERE hook = $1 AND job_key = $2 )`)).
		WithArgs("hook", "5").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	exists, err := s.Exists(context.Background(), "hook", "5")
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestJobStore_Unschedule(t *testing.T) {
	db, mock := setupMock(t)
	s := NewJobStore(db)

	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM scheduled_jobs WHERE hook = $1 AND job_key = $2`)).
		WithArgs("hook", "5").
		WillReturnResult(sqlmock.NewResult(0, 2))

	n, err := s.Unschedule(context.Background(), "hook", "5")
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)
}

func TestJobStore_Due(t *testing.T) {
	db, mock := setupMock(t)
	s := NewJobStore(db)
	id := uuid.New()
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta(`FROM scheduled_jobs WHERE next_run_at <= $1 ORDER BY next_run_at LIMIT 10`)).
		WithArgs(now).
		WillReturnRows(sqlmock.NewRows([]string{"id", "hook", "job_key", "next_run_at", "interval_ms"}).
			AddRow(id.String(), "hook", "5", now, 3600000))

	due, err := s.Due(context.Background(), now, 10)
	require.NoError(t, err)
	require.Len(t, due, 1)
	assert.Equal(t, id, due[0].ID)
	assert.Equal(t, "5", due[0].Key)
	assert.Equal(t, time.Hour, due[0].Interval)
}

func TestJobStore_Reschedule(t *testing.T) {
	db, mock := setupMock(t)
	s := NewJobStore(db)
	id := uuid.New()
	next := time.Now().Add(time.Hour)

	mock.ExpectExec(regexp.QuoteMeta(`UPDATE scheduled_jobs SET next_run_at = $1 WHERE id = $2`)).
		WithArgs(next, id).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, s.Reschedule(context.Background(), id, next))
	assert.NoError(t, mock.ExpectationsWereMet())
}
