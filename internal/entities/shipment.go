package entities

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

type Contact struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Phone     string `json:"phone"`
	Email     string `json:"email"`
}

type Address struct {
	Name               string `json:"name"`
	Line1              string `json:"line1"`
	Line2              string `json:"line2,omitempty"`
	PostalCode         string `json:"postal_code"`
	Locality           string `json:"locality"`
	AdministrativeArea string `json:"administrative_area"`
	CountryCode        string `json:"country_code" validate:"len=2"`
}

type Situation string

const (
	SituationStore   Situation = "store"
	SituationHome    Situation = "home"
	SituationAuction Situation = "auction"
)

// Details describes the situation at one end of a transport.
// ExtraCarryingHelp is only sent for the delivery side.
type Details struct {
	Situation         Situation `json:"situation"`
	FloorLevel        int       `json:"floor_level"`
	Elevator          bool      `json:"elevator"`
	Instruction       string    `json:"instruction"`
	ExtraCarryingHelp bool      `json:"extra_carrying_help,omitempty"`
}

// Stop is one endpoint of a transport: pickup or delivery.
type Stop struct {
	Contact Contact `json:"contact"`
	Address Address `json:"address"`
	Details Details `json:"details"`
}

// Dimensions holds optional sizes in cm and weight in kg. A nil field is unknown.
type Dimensions struct {
	Length *float64 `json:"length,omitempty"`
	Width  *float64 `json:"width,omitempty"`
	Height *float64 `json:"height,omitempty"`
	Weight *float64 `json:"weight,omitempty"`
}

// Or fills every unknown field of d from fallback.
func (d Dimensions) Or(fallback Dimensions) Dimensions {
	return Dimensions{
		Length: firstKnown(d.Length, fallback.Length),
		Width:  firstKnown(d.Width, fallback.Width),
		Height: firstKnown(d.Height, fallback.Height),
		Weight: firstKnown(d.Weight, fallback.Weight),
	}
}

func firstKnown(a, b *float64) *float64 {
	if a != nil {
		return a
	}
	return b
}

type Item struct {
	Count  int      `json:"count"`
	Title  string   `json:"title"`
	Length *float64 `json:"length,omitempty"`
	Width  *float64 `json:"width,omitempty"`
	Height *float64 `json:"height,omitempty"`
	Weight *float64 `json:"weight,omitempty"`
}

type ItemSet struct {
	Title           string `json:"title"`
	ClientReference string `json:"client_reference"`
	Items           []Item `json:"items"`
}

// ShipmentRequest is the body of a shipment creation call.
type ShipmentRequest struct {
	ItemSets []ItemSet `json:"item_sets"`
	Pickup   Stop      `json:"pickup"`
	Delivery Stop      `json:"delivery"`
}

// Validate rejects requests the provider would refuse on shape alone.
func (r ShipmentRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidArgument, err)
	}
	return nil
}

// ShippedBy is the free-form carrier payload reported by the provider.
type ShippedBy struct {
	Name    string `json:"name,omitempty"`
	Phone   string `json:"phone,omitempty"`
	Vehicle string `json:"vehicle,omitempty"`
}

func (s ShippedBy) IsZero() bool {
	return s == ShippedBy{}
}

func (s ShippedBy) String() string {
	parts := make([]string, 0, 3)
	for _, p := range []string{s.Name, s.Phone, s.Vehicle} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, ", ")
}

// CreatedShipment is the provider's view of a shipment.
type CreatedShipment struct {
	ID           string         `json:"id"`
	TrackingURL  string         `json:"tracking_url"`
	State        TransportState `json:"state"`
	ShippingDate string         `json:"shipping_date,omitempty"`
	ShippedBy    *ShippedBy     `json:"shipped_by,omitempty"`
}
