package entities

import (
	"bytes"
	"encoding/gob"
	"time"
)

type TransportState string

const (
	StateNotCreated      TransportState = "not_created"
	StateReadyForPickup  TransportState = "ready_for_pickup"
	StatePickedUp        TransportState = "picked_up"
	StateDelivered       TransportState = "delivered"
	StateCancelled       TransportState = "cancelled"
	StateFailedToPickup  TransportState = "failed_to_pickup"
	StateFailedToDeliver TransportState = "failed_to_deliver"
	StateNotAvailable    TransportState = "not_available"
)

// Transport is the per order transport record. It is never deleted.
type Transport struct {
	OrderID      int64
	ShipmentID   string
	Status       TransportState
	TrackingURL  string
	ShippingDate string
	ShippedBy    ShippedBy
	UpdatedAt    time.Time
}

// TransportUpdate is a partial write, nil fields are left untouched.
type TransportUpdate struct {
	Status       *TransportState
	ShippingDate *string
	ShippedBy    *ShippedBy
}

func (u TransportUpdate) IsEmpty() bool {
	return u.Status == nil && u.ShippingDate == nil && u.ShippedBy == nil
}

// ApplyTo returns t with the update applied.
func (u TransportUpdate) ApplyTo(t Transport) Transport {
	if u.Status != nil {
		t.Status = *u.Status
	}
	if u.ShippingDate != nil {
		t.ShippingDate = *u.ShippingDate
	}
	if u.ShippedBy != nil {
		t.ShippedBy = *u.ShippedBy
	}
	return t
}

func (t *Transport) Marshal() ([]byte, error) {
	var buf bytes.Buffer
	enc := gob.NewEncoder(&buf)
	if err := enc.Encode(t); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (t *Transport) Unmarshal(data []byte) error {
	buf := bytes.NewBuffer(data)
	dec := gob.NewDecoder(buf)
	return dec.Decode(t)
}

func init() {
	gob.Register(Transport{})
	gob.Register(ShippedBy{})
}

// StatusChange is published whenever reconciliation moves a transport to a new state.
type StatusChange struct {
	EventID      string         `json:"event_id"`
	OrderID      int64          `json:"order_id"`
	ShipmentID   string         `json:"shipment_id"`
	From         TransportState `json:"from"`
	To           TransportState `json:"to"`
	ShippingDate string         `json:"shipping_date,omitempty"`
	ShippedBy    *ShippedBy     `json:"shipped_by,omitempty"`
	OccurredAt   time.Time      `json:"occurred_at"`
}
