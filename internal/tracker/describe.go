package tracker

import "github.com/SergeyBogomolovv/transport-sync/internal/entities"

type description struct {
	class   string
	message string
}

var descriptions = map[entities.TransportState]description{
	entities.StateNotCreated:      {"on-hold", "Not created"},
	entities.StateReadyForPickup:  {"processing", "Ready for pickup"},
	entities.StatePickedUp:        {"processing", "Picked up"},
	entities.StateDelivered:       {"completed", "Delivered"},
	entities.StateCancelled:       {"cancelled", "Cancelled"},
	entities.StateFailedToPickup:  {"cancelled", "Failed to pickup"},
	entities.StateFailedToDeliver: {"cancelled", "Failed to deliver"},
	entities.StateNotAvailable:    {"cancelled", "Not available"},
}

func Known(s entities.TransportState) bool {
	_, ok := descriptions[s]
	return ok
}

// Unmodelled states are shown verbatim.
func Describe(s entities.TransportState) (class, message string) {
	if d, ok := descriptions[s]; ok {
		return d.class, d.message
	}
	return "processing", string(s)
}
