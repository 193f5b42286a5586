package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/SergeyBogomolovv/transport-sync/internal/entities"

	sq "github.com/Masterminds/squirrel"
)

// GetTransport returns the record of an order, a not_created one when there is none.
func (r *postgresRepo) GetTransport(ctx context.Context, orderID int64) (entities.Transport, error) {
	query, args := r.qb.Select(
		"order_id", "shipment_id", "transport_status", "tracking_url",
		"shipping_date", "shipped_by", "updated_at").
		From("transports").
		Where(sq.Eq{"order_id": orderID}).
		MustSql()

	var t Transport
	err := r.getContext(ctx, &t, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Transport{OrderID: orderID, Status: entities.StateNotCreated}, nil
	}
	if err != nil {
		return entities.Transport{}, fmt.Errorf("failed to get transport: %w", err)
	}

	tr, err := TransportToEntity(t)
	if err != nil {
		return entities.Transport{}, fmt.Errorf("failed to decode shipped by: %w", err)
	}
	return tr, nil
}

func (r *postgresRepo) InitTransport(ctx context.Context, orderID int64) error {
	query, args := r.qb.Insert("transports").
		Columns("order_id", "transport_status").
		Values(orderID, string(entities.StateNotCreated)).
		Suffix("ON CONFLICT (order_id) DO NOTHING").
		MustSql()

	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to init transport: %w", err)
	}
	return nil
}

// SaveCreatedShipment writes the initial provider fields of a shipment.
func (r *postgresRepo) SaveCreatedShipment(ctx context.Context, orderID int64, s entities.CreatedShipment) error {
	shippedBy, err := shippedByJSON(s.ShippedBy)
	if err != nil {
		return fmt.Errorf("failed to encode shipped by: %w", err)
	}

	status := s.State
	if status == "" {
		status = entities.StateNotCreated
	}

	query, args := r.qb.Insert("transports").
		Columns("order_id", "shipment_id", "transport_status", "tracking_url", "shipping_date", "shipped_by", "updated_at").
		Values(orderID, s.ID, string(status), s.TrackingURL, s.ShippingDate, shippedBy, sq.Expr("NOW()")).
		Suffix(`ON CONFLICT (order_id) DO UPDATE SET
			shipment_id = EXCLUDED.shipment_id,
			transport_status = EXCLUDED.transport_status,
			tracking_url = EXCLUDED.tracking_url,
			shipping_date = EXCLUDED.shipping_date,
			shipped_by = EXCLUDED.shipped_by,
			updated_at = EXCLUDED.updated_at`).
		MustSql()

	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to save created shipment: %w", err)
	}
	return nil
}

// UpdateTransport writes only the fields set on the update.
func (r *postgresRepo) UpdateTransport(ctx context.Context, orderID int64, u entities.TransportUpdate) error {
	if u.IsEmpty() {
		return nil
	}

	q := r.qb.Update("transports").
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"order_id": orderID})

	if u.Status != nil {
		q = q.Set("transport_status", string(*u.Status))
	}
	if u.ShippingDate != nil {
		q = q.Set("shipping_date", *u.ShippingDate)
	}
	if u.ShippedBy != nil {
		shippedBy, err := shippedByJSON(u.ShippedBy)
		if err != nil {
			return fmt.Errorf("failed to encode shipped by: %w", err)
		}
		q = q.Set("shipped_by", shippedBy)
	}

	query, args := q.MustSql()
	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to update transport: %w", err)
	}
	return nil
}
