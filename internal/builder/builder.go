package builder

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/SergeyBogomolovv/transport-sync/internal/config"
	"github.com/SergeyBogomolovv/transport-sync/internal/entities"
)

const deliveryInstruction = "..."

type Builder struct {
	settings config.ShippingMethod
}

func New(settings config.ShippingMethod) *Builder {
	return &Builder{settings: settings}
}

// Build creates a shipment request with a single item set from the order.
// Lines without a product or with a virtual product are skipped, so the set may be empty.
func (b *Builder) Build(order entities.Order) entities.ShipmentRequest {
	items := make([]entities.Item, 0, len(order.Items))
	titles := make([]string, 0, len(order.Items))

	for _, line := range order.Items {
		if line.Product == nil || line.Product.Virtual {
			continue
		}
		item := newItem(line)
		items = append(items, item)
		titles = append(titles, itemTitle(item))
	}

	return entities.ShipmentRequest{
		ItemSets: []entities.ItemSet{{
			Title:           strings.Join(titles, ", "),
			ClientReference: fmt.Sprintf("%s - #%d", b.settings.StoreName, order.ID),
			Items:           items,
		}},
		Pickup:   b.pickup(),
		Delivery: delivery(order),
	}
}

func (b *Builder) pickup() entities.Stop {
	s := b.settings
	return entities.Stop{
		Contact: entities.Contact{
			FirstName: s.FirstName,
			LastName:  s.LastName,
			Phone:     s.Phone,
			Email:     s.Email,
		},
		Address: entities.Address{
			Name:               fullName(s.FirstName, s.LastName),
			Line1:              s.Address,
			Line2:              s.AddressLine2,
			PostalCode:         s.PostalCode,
			Locality:           s.Locality,
			AdministrativeArea: s.Province,
			CountryCode:        s.Country,
		},
		Details: entities.Details{
			Situation:   entities.Situation(s.Situation),
			FloorLevel:  s.Floor,
			Elevator:    s.Elevator,
			Instruction: s.Instructions,
		},
	}
}

func delivery(order entities.Order) entities.Stop {
	sh := order.Shipping
	return entities.Stop{
		Contact: entities.Contact{
			FirstName: sh.FirstName,
			LastName:  sh.LastName,
			Phone:     order.BillingPhone,
			Email:     order.BillingEmail,
		},
		Address: entities.Address{
			Name:               fullName(sh.FirstName, sh.LastName),
			Line1:              sh.Line1,
			Line2:              sh.Line2,
			PostalCode:         sh.PostalCode,
			Locality:           sh.City,
			AdministrativeArea: sh.State,
			CountryCode:        sh.Country,
		},
		Details: entities.Details{
			Situation:   entities.SituationHome,
			FloorLevel:  0,
			Elevator:    false,
			Instruction: deliveryInstruction,
		},
	}
}

// newItem resolves every dimension: line override, stored product value, physical product value.
func newItem(line entities.LineItem) entities.Item {
	dims := line.Override.
		Or(line.Product.StoredDimensions).
		Or(line.Product.Dimensions)

	return entities.Item{
		Count:  line.Quantity,
		Title:  line.Product.Name,
		Length: dims.Length,
		Width:  dims.Width,
		Height: dims.Height,
		Weight: dims.Weight,
	}
}

func itemTitle(item entities.Item) string {
	return strconv.Itoa(item.Count) + "x " + item.Title
}

func fullName(first, last string) string {
	return strings.TrimSpace(first + " " + last)
}

// ApplyItemOverrides replaces the items of the item set wholesale. The set title is kept.
func ApplyItemOverrides(req entities.ShipmentRequest, overrides []entities.OverrideItem) entities.ShipmentRequest {
	items := make([]entities.Item, 0, len(overrides))
	for _, o := range overrides {
		items = append(items, entities.Item{
			Count:  o.Quantity,
			Title:  o.Title,
			Length: o.Length,
			Width:  o.Width,
			Height: o.Height,
			Weight: o.Weight,
		})
	}

	out := req
	out.ItemSets = slices.Clone(req.ItemSets)
	if len(out.ItemSets) == 0 {
		out.ItemSets = []entities.ItemSet{{}}
	}
	out.ItemSets[0].Items = items
	return out
}

// ApplyDeliveryOverrides sets the delivery floor, elevator and carrying help from raw form values.
// The floor is the leading integer of the value ("2.5" is 2, "third" is 0), the flags are set only by "1".
func ApplyDeliveryOverrides(req entities.ShipmentRequest, opts entities.DeliveryOptions) entities.ShipmentRequest {
	floor := leadingInt(opts.Floor)

	out := req
	out.Delivery.Details.FloorLevel = floor
	out.Delivery.Details.Elevator = opts.ElevatorAvailable == "1"
	out.Delivery.Details.ExtraCarryingHelp = opts.ExtraCarryingHelp == "1"
	return out
}

func HasShippingClass(order entities.Order, classes []string) bool {
	for _, line := range order.Items {
		if line.Product == nil {
			continue
		}
		if slices.Contains(classes, line.Product.ShippingClass) {
			return true
		}
	}
	return false
}

func leadingInt(s string) int {
	s = strings.TrimSpace(s)
	end := 0
	if end < len(s) && (s[end] == '-' || s[end] == '+') {
		end++
	}
	digits := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digits {
		return 0
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0
	}
	return n
}
