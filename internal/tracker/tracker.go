// Package tracker holds the transport status state machine.
// The provider is authoritative, any reported state is accepted.
package tracker

import "github.com/SergeyBogomolovv/transport-sync/internal/entities"

// Apply returns the status after a provider report and whether it changed.
func Apply(current, reported entities.TransportState) (entities.TransportState, bool) {
	if reported == "" || reported == current {
		return current, false
	}
	return reported, true
}

// IsTerminal reports whether polling stops in state s.
// failed_to_pickup, failed_to_deliver and not_available keep polling.
func IsTerminal(s entities.TransportState) bool {
	switch s {
	case entities.StateNotCreated, entities.StateDelivered, entities.StateCancelled:
		return true
	}
	return false
}

type Result struct {
	Update        entities.TransportUpdate
	StatusChanged bool
	Terminal      bool
}

// Reconcile compares a stored record with the provider's shipment.
// Shipping date and carrier are written whenever reported, even without a status change.
func Reconcile(record entities.Transport, shipment entities.CreatedShipment) Result {
	var res Result

	if status, changed := Apply(record.Status, shipment.State); changed {
		res.Update.Status = &status
		res.StatusChanged = true
	}

	if shipment.ShippingDate != "" {
		date := shipment.ShippingDate
		res.Update.ShippingDate = &date
	}

	if shipment.ShippedBy != nil && !shipment.ShippedBy.IsZero() {
		by := *shipment.ShippedBy
		res.Update.ShippedBy = &by
	}

	res.Terminal = shipment.State != "" && IsTerminal(shipment.State)
	return res
}
