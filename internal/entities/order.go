package entities

// Order is a read-only snapshot of a shop order.
type Order struct {
	ID              int64
	ShippingMethods []string
	Shipping        ShippingAddress
	BillingPhone    string
	BillingEmail    string

	Items []LineItem
}

func (o Order) HasShippingMethod(methodID string) bool {
	for _, m := range o.ShippingMethods {
		if m == methodID {
			return true
		}
	}
	return false
}

type ShippingAddress struct {
	FirstName  string
	LastName   string
	Line1      string
	Line2      string
	PostalCode string
	City       string
	State      string
	Country    string
}

type LineItem struct {
	ID          int64
	ProductID   int64
	VariationID int64
	Quantity    int

	// Override is set by the shop per order line and wins over product data.
	Override Dimensions

	// Product is the variation when the line has one. Nil when the product was removed.
	Product *Product
}

type Product struct {
	ID            int64
	Name          string
	ShippingClass string
	Virtual       bool

	// Dimensions are the product's own physical dimensions.
	Dimensions Dimensions
	// StoredDimensions are the provider specific dimensions kept per product or variation.
	StoredDimensions Dimensions
}

// OverrideItem is an operator supplied item replacing the computed ones.
type OverrideItem struct {
	Quantity int      `json:"qty" validate:"gte=1"`
	Title    string   `json:"title" validate:"required"`
	Length   *float64 `json:"length,omitempty" validate:"omitempty,gte=0"`
	Width    *float64 `json:"width,omitempty" validate:"omitempty,gte=0"`
	Height   *float64 `json:"height,omitempty" validate:"omitempty,gte=0"`
	Weight   *float64 `json:"weight,omitempty" validate:"omitempty,gte=0"`
}

// DeliveryOptions carries raw form values, "1" marks a checked box.
type DeliveryOptions struct {
	Floor             string `json:"floor"`
	ElevatorAvailable string `json:"elevator_available"`
	ExtraCarryingHelp string `json:"extra_carrying_help"`
}
