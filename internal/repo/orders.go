package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/SergeyBogomolovv/transport-sync/internal/entities"

	sq "github.com/Masterminds/squirrel"
	"github.com/lib/pq"
)

func (r *postgresRepo) GetOrder(ctx context.Context, orderID int64) (entities.Order, error) {
	query, args := r.qb.Select(
		"id", "shipping_methods", "shipping_first_name", "shipping_last_name",
		"shipping_address_1", "shipping_address_2", "shipping_postcode", "shipping_city",
		"shipping_state", "shipping_country", "billing_phone", "billing_email").
		From("orders").
		Where(sq.Eq{"id": orderID}).
		MustSql()

	var order Order
	err := r.getContext(ctx, &order, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Order{}, entities.ErrOrderNotFound
	}
	if err != nil {
		return entities.Order{}, fmt.Errorf("failed to get order: %w", err)
	}

	// A variation line reads the variation's own product row.
	query, args = r.qb.Select(
		"i.id", "i.order_id", "i.product_id", "i.variation_id", "i.quantity",
		"i.override_length", "i.override_width", "i.override_height", "i.override_weight",
		"p.id AS p_id", "p.name", "p.shipping_class", "p.virtual",
		"p.length", "p.width", "p.height", "p.weight",
		"p.provider_length", "p.provider_width", "p.provider_height", "p.provider_weight").
		From("order_items i").
		LeftJoin("products p ON p.id = CASE WHEN i.variation_id <> 0 THEN i.variation_id ELSE i.product_id END").
		Where(sq.Eq{"i.order_id": orderID}).
		OrderBy("i.id").
		MustSql()

	var items []Item
	if err := r.selectContext(ctx, &items, query, args...); err != nil {
		return entities.Order{}, fmt.Errorf("failed to get order items: %w", err)
	}

	return OrderToEntity(order, items), nil
}

// SaveOrder stores the order snapshot. Orders are immutable, a replay is a no-op.
func (r *postgresRepo) SaveOrder(ctx context.Context, o entities.Order) error {
	methods := o.ShippingMethods
	if methods == nil {
		methods = []string{}
	}

	query, args := r.qb.Insert("orders").
		Columns(
			"id", "shipping_methods", "shipping_first_name", "shipping_last_name",
			"shipping_address_1", "shipping_address_2", "shipping_postcode", "shipping_city",
			"shipping_state", "shipping_country", "billing_phone", "billing_email",
		).
		Values(
			o.ID, pq.Array(methods), o.Shipping.FirstName, o.Shipping.LastName,
			o.Shipping.Line1, nullString(o.Shipping.Line2), o.Shipping.PostalCode, o.Shipping.City,
			nullString(o.Shipping.State), o.Shipping.Country, nullString(o.BillingPhone), nullString(o.BillingEmail),
		).
		Suffix("ON CONFLICT (id) DO NOTHING").
		MustSql()

	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to save order: %w", err)
	}
	return nil
}

// SaveProducts upserts the products referenced by the order lines.
func (r *postgresRepo) SaveProducts(ctx context.Context, products []entities.Product) error {
	if len(products) == 0 {
		return nil
	}

	q := r.qb.Insert("products").
		Columns("id", "name", "shipping_class", "virtual",
			"length", "width", "height", "weight",
			"provider_length", "provider_width", "provider_height", "provider_weight").
		Suffix(`ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name,
			shipping_class = EXCLUDED.shipping_class,
			virtual = EXCLUDED.virtual,
			length = EXCLUDED.length,
			width = EXCLUDED.width,
			height = EXCLUDED.height,
			weight = EXCLUDED.weight,
			provider_length = EXCLUDED.provider_length,
			provider_width = EXCLUDED.provider_width,
			provider_height = EXCLUDED.provider_height,
			provider_weight = EXCLUDED.provider_weight`)

	seen := make(map[int64]struct{}, len(products))
	for _, p := range products {
		if _, dup := seen[p.ID]; dup {
			continue
		}
		seen[p.ID] = struct{}{}

		q = q.Values(
			p.ID, p.Name, p.ShippingClass, p.Virtual,
			nullFloat(p.Dimensions.Length), nullFloat(p.Dimensions.Width),
			nullFloat(p.Dimensions.Height), nullFloat(p.Dimensions.Weight),
			nullFloat(p.StoredDimensions.Length), nullFloat(p.StoredDimensions.Width),
			nullFloat(p.StoredDimensions.Height), nullFloat(p.StoredDimensions.Weight),
		)
	}

	query, args := q.MustSql()
	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to save products: %w", err)
	}
	return nil
}

func (r *postgresRepo) SaveItems(ctx context.Context, orderID int64, items []entities.LineItem) error {
	if len(items) == 0 {
		return nil
	}

	q := r.qb.Insert("order_items").
		Columns("id", "order_id", "product_id", "variation_id", "quantity",
			"override_length", "override_width", "override_height", "override_weight").
		Suffix("ON CONFLICT (id) DO NOTHING")

	for _, it := range items {
		q = q.Values(
			it.ID, orderID, it.ProductID, it.VariationID, it.Quantity,
			nullFloat(it.Override.Length), nullFloat(it.Override.Width),
			nullFloat(it.Override.Height), nullFloat(it.Override.Weight),
		)
	}

	query, args := q.MustSql()
	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to save items: %w", err)
	}
	return nil
}
