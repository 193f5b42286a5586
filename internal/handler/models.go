package handler

import (
	"encoding/json"
	"time"

	"github.com/SergeyBogomolovv/transport-sync/internal/classifier"
	"github.com/SergeyBogomolovv/transport-sync/internal/entities"
	"github.com/SergeyBogomolovv/transport-sync/internal/tracker"
)

const (
	EventOrderCreated = "order.created"
	EventOrderAction  = "order.action"
)

// Event конверт сообщения в топике заказов
type Event struct {
	Type    string          `json:"type" validate:"required,oneof=order.created order.action"`
	Payload json.RawMessage `json:"payload" validate:"required"`
}

// Order заказ магазина
type Order struct {
	ID              int64           `json:"id" validate:"required,gt=0"`
	ShippingMethods []string        `json:"shipping_methods"`
	Shipping        ShippingAddress `json:"shipping"`
	Billing         Billing         `json:"billing"`
	LineItems       []LineItem      `json:"line_items" validate:"dive"`
}

// ShippingAddress адрес доставки
type ShippingAddress struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Address1  string `json:"address_1"`
	Address2  string `json:"address_2,omitempty"`
	Postcode  string `json:"postcode"`
	City      string `json:"city"`
	State     string `json:"state,omitempty"`
	Country   string `json:"country" validate:"omitempty,len=2"`
}

type Billing struct {
	Phone string `json:"phone,omitempty"`
	Email string `json:"email,omitempty" validate:"omitempty,email"`
}

// LineItem позиция заказа
type LineItem struct {
	ID                 int64      `json:"id" validate:"required,gt=0"`
	ProductID          int64      `json:"product_id" validate:"required,gt=0"`
	VariationID        int64      `json:"variation_id,omitempty"`
	Quantity           int        `json:"quantity" validate:"gte=1"`
	ProviderDimensions Dimensions `json:"provider_dimensions"`
	Product            *Product   `json:"product,omitempty"`
}

// Product товар или вариация позиции
type Product struct {
	ID                 int64      `json:"id" validate:"required,gt=0"`
	Name               string     `json:"name" validate:"required"`
	ShippingClass      string     `json:"shipping_class,omitempty"`
	Virtual            bool       `json:"virtual,omitempty"`
	Dimensions         Dimensions `json:"dimensions"`
	ProviderDimensions Dimensions `json:"provider_dimensions"`
}

type Dimensions struct {
	Length *float64 `json:"length,omitempty" validate:"omitempty,gte=0"`
	Width  *float64 `json:"width,omitempty" validate:"omitempty,gte=0"`
	Height *float64 `json:"height,omitempty" validate:"omitempty,gte=0"`
	Weight *float64 `json:"weight,omitempty" validate:"omitempty,gte=0"`
}

// ActionRequest тело запроса на действие с заказом
type ActionRequest struct {
	Items    []entities.OverrideItem   `json:"items,omitempty" validate:"omitempty,dive"`
	Delivery *entities.DeliveryOptions `json:"delivery,omitempty"`
}

// ActionEvent действие оператора, пришедшее через Kafka
type ActionEvent struct {
	OrderID int64  `json:"order_id" validate:"required,gt=0"`
	Action  string `json:"action" validate:"required"`
	ActionRequest
}

// Notice результат действия
type Notice struct {
	Status  string `json:"status"`
	Code    string `json:"code,omitempty"`
	Message string `json:"message"`
}

// Transport статус доставки заказа
type Transport struct {
	OrderID       int64     `json:"order_id"`
	ShipmentID    string    `json:"shipment_id,omitempty"`
	Status        string    `json:"status"`
	StatusClass   string    `json:"status_class"`
	StatusMessage string    `json:"status_message"`
	TrackingURL   string    `json:"tracking_url,omitempty"`
	ShippingDate  string    `json:"shipping_date,omitempty"`
	ShippedBy     string    `json:"shipped_by,omitempty"`
	UpdatedAt     time.Time `json:"updated_at,omitzero"`
}

func DimensionsJSONToEntity(d Dimensions) entities.Dimensions {
	return entities.Dimensions{
		Length: d.Length,
		Width:  d.Width,
		Height: d.Height,
		Weight: d.Weight,
	}
}

func ProductJSONToEntity(p Product) entities.Product {
	return entities.Product{
		ID:               p.ID,
		Name:             p.Name,
		ShippingClass:    p.ShippingClass,
		Virtual:          p.Virtual,
		Dimensions:       DimensionsJSONToEntity(p.Dimensions),
		StoredDimensions: DimensionsJSONToEntity(p.ProviderDimensions),
	}
}

func LineItemJSONToEntity(li LineItem) entities.LineItem {
	item := entities.LineItem{
		ID:          li.ID,
		ProductID:   li.ProductID,
		VariationID: li.VariationID,
		Quantity:    li.Quantity,
		Override:    DimensionsJSONToEntity(li.ProviderDimensions),
	}
	if li.Product != nil {
		p := ProductJSONToEntity(*li.Product)
		item.Product = &p
	}
	return item
}

func OrderJSONToEntity(o Order) entities.Order {
	items := make([]entities.LineItem, 0, len(o.LineItems))
	for _, li := range o.LineItems {
		items = append(items, LineItemJSONToEntity(li))
	}

	return entities.Order{
		ID:              o.ID,
		ShippingMethods: o.ShippingMethods,
		Shipping: entities.ShippingAddress{
			FirstName:  o.Shipping.FirstName,
			LastName:   o.Shipping.LastName,
			Line1:      o.Shipping.Address1,
			Line2:      o.Shipping.Address2,
			PostalCode: o.Shipping.Postcode,
			City:       o.Shipping.City,
			State:      o.Shipping.State,
			Country:    o.Shipping.Country,
		},
		BillingPhone: o.Billing.Phone,
		BillingEmail: o.Billing.Email,
		Items:        items,
	}
}

func NoticeToJSON(n classifier.Notice) Notice {
	return Notice{
		Status:  n.Status,
		Code:    n.Code,
		Message: n.Message(),
	}
}

func TransportEntityToJSON(t entities.Transport) Transport {
	class, message := tracker.Describe(t.Status)
	return Transport{
		OrderID:       t.OrderID,
		ShipmentID:    t.ShipmentID,
		Status:        string(t.Status),
		StatusClass:   class,
		StatusMessage: message,
		TrackingURL:   t.TrackingURL,
		ShippingDate:  t.ShippingDate,
		ShippedBy:     t.ShippedBy.String(),
		UpdatedAt:     t.UpdatedAt,
	}
}
