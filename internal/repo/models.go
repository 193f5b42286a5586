package repo

import (
	"database/sql"
	"encoding/json"
	"time"

	"github.com/SergeyBogomolovv/transport-sync/internal/entities"
	"github.com/SergeyBogomolovv/transport-sync/internal/jobs"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

type Order struct {
	ID                int64          `db:"id"`
	ShippingMethods   pq.StringArray `db:"shipping_methods"`
	ShippingFirstName string         `db:"shipping_first_name"`
	ShippingLastName  string         `db:"shipping_last_name"`
	ShippingAddress1  string         `db:"shipping_address_1"`
	ShippingAddress2  sql.NullString `db:"shipping_address_2"`
	ShippingPostcode  string         `db:"shipping_postcode"`
	ShippingCity      string         `db:"shipping_city"`
	ShippingState     sql.NullString `db:"shipping_state"`
	ShippingCountry   string         `db:"shipping_country"`
	BillingPhone      sql.NullString `db:"billing_phone"`
	BillingEmail      sql.NullString `db:"billing_email"`
}

// Item is an order line joined with its product, which may be gone.
type Item struct {
	ID             int64           `db:"id"`
	OrderID        int64           `db:"order_id"`
	ProductID      int64           `db:"product_id"`
	VariationID    int64           `db:"variation_id"`
	Quantity       int             `db:"quantity"`
	OverrideLength sql.NullFloat64 `db:"override_length"`
	OverrideWidth  sql.NullFloat64 `db:"override_width"`
	OverrideHeight sql.NullFloat64 `db:"override_height"`
	OverrideWeight sql.NullFloat64 `db:"override_weight"`

	PID            sql.NullInt64   `db:"p_id"`
	Name           sql.NullString  `db:"name"`
	ShippingClass  sql.NullString  `db:"shipping_class"`
	Virtual        sql.NullBool    `db:"virtual"`
	Length         sql.NullFloat64 `db:"length"`
	Width          sql.NullFloat64 `db:"width"`
	Height         sql.NullFloat64 `db:"height"`
	Weight         sql.NullFloat64 `db:"weight"`
	ProviderLength sql.NullFloat64 `db:"provider_length"`
	ProviderWidth  sql.NullFloat64 `db:"provider_width"`
	ProviderHeight sql.NullFloat64 `db:"provider_height"`
	ProviderWeight sql.NullFloat64 `db:"provider_weight"`
}

type Transport struct {
	OrderID      int64     `db:"order_id"`
	ShipmentID   string    `db:"shipment_id"`
	Status       string    `db:"transport_status"`
	TrackingURL  string    `db:"tracking_url"`
	ShippingDate string    `db:"shipping_date"`
	ShippedBy    []byte    `db:"shipped_by"`
	UpdatedAt    time.Time `db:"updated_at"`
}

type Job struct {
	ID         uuid.UUID `db:"id"`
	Hook       string    `db:"hook"`
	Key        string    `db:"job_key"`
	NextRunAt  time.Time `db:"next_run_at"`
	IntervalMs int64     `db:"interval_ms"`
}

func ItemToEntity(i Item) entities.LineItem {
	line := entities.LineItem{
		ID:          i.ID,
		ProductID:   i.ProductID,
		VariationID: i.VariationID,
		Quantity:    i.Quantity,
		Override: entities.Dimensions{
			Length: nullFloatToPtr(i.OverrideLength),
			Width:  nullFloatToPtr(i.OverrideWidth),
			Height: nullFloatToPtr(i.OverrideHeight),
			Weight: nullFloatToPtr(i.OverrideWeight),
		},
	}

	if !i.PID.Valid {
		return line
	}

	line.Product = &entities.Product{
		ID:            i.PID.Int64,
		Name:          nullStringToString(i.Name),
		ShippingClass: nullStringToString(i.ShippingClass),
		Virtual:       i.Virtual.Valid && i.Virtual.Bool,
		Dimensions: entities.Dimensions{
			Length: nullFloatToPtr(i.Length),
			Width:  nullFloatToPtr(i.Width),
			Height: nullFloatToPtr(i.Height),
			Weight: nullFloatToPtr(i.Weight),
		},
		StoredDimensions: entities.Dimensions{
			Length: nullFloatToPtr(i.ProviderLength),
			Width:  nullFloatToPtr(i.ProviderWidth),
			Height: nullFloatToPtr(i.ProviderHeight),
			Weight: nullFloatToPtr(i.ProviderWeight),
		},
	}
	return line
}

func OrderToEntity(o Order, items []Item) entities.Order {
	order := entities.Order{
		ID:              o.ID,
		ShippingMethods: []string(o.ShippingMethods),
		Shipping: entities.ShippingAddress{
			FirstName:  o.ShippingFirstName,
			LastName:   o.ShippingLastName,
			Line1:      o.ShippingAddress1,
			Line2:      nullStringToString(o.ShippingAddress2),
			PostalCode: o.ShippingPostcode,
			City:       o.ShippingCity,
			State:      nullStringToString(o.ShippingState),
			Country:    o.ShippingCountry,
		},
		BillingPhone: nullStringToString(o.BillingPhone),
		BillingEmail: nullStringToString(o.BillingEmail),
	}

	if len(items) > 0 {
		order.Items = make([]entities.LineItem, 0, len(items))
		for _, it := range items {
			order.Items = append(order.Items, ItemToEntity(it))
		}
	}

	return order
}

func TransportToEntity(t Transport) (entities.Transport, error) {
	tr := entities.Transport{
		OrderID:      t.OrderID,
		ShipmentID:   t.ShipmentID,
		Status:       entities.TransportState(t.Status),
		TrackingURL:  t.TrackingURL,
		ShippingDate: t.ShippingDate,
		UpdatedAt:    t.UpdatedAt,
	}
	if len(t.ShippedBy) > 0 {
		if err := json.Unmarshal(t.ShippedBy, &tr.ShippedBy); err != nil {
			return entities.Transport{}, err
		}
	}
	return tr, nil
}

// shippedByJSON returns nil for an empty payload so the column stays NULL.
func shippedByJSON(s *entities.ShippedBy) (any, error) {
	if s == nil || s.IsZero() {
		return nil, nil
	}
	data, err := json.Marshal(s)
	if err != nil {
		return nil, err
	}
	return string(data), nil
}

func JobToEntity(j Job) jobs.Job {
	return jobs.Job{
		ID:        j.ID,
		Hook:      j.Hook,
		Key:       j.Key,
		NextRunAt: j.NextRunAt,
		Interval:  time.Duration(j.IntervalMs) * time.Millisecond,
	}
}
