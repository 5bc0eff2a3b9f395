package model

import "github.com/routeforge/vrpsolver/internal/domain"

// NodeKind distinguishes the four shapes a Node can take. Go has no sum
// types; this is the idiomatic stand-in, same as the reference pack's own
// Algorithm/BoundAlgo enums.
type NodeKind int

const (
	// ShipmentPickup is where a shipment's cargo is collected.
	ShipmentPickup NodeKind = iota
	// ShipmentDelivery is where a shipment's cargo is dropped off.
	ShipmentDelivery
	// VehicleStart is where a dummy vehicle's shift begins.
	VehicleStart
	// VehicleEnd is where a dummy vehicle's shift ends.
	VehicleEnd
)

func (k NodeKind) String() string {
	switch k {
	case ShipmentPickup:
		return "ShipmentPickup"
	case ShipmentDelivery:
		return "ShipmentDelivery"
	case VehicleStart:
		return "VehicleStart"
	case VehicleEnd:
		return "VehicleEnd"
	default:
		return "Unknown"
	}
}

// Node is one stop candidate in the solver's dense node space: a shipment's
// pickup or delivery, or a dummy vehicle's start or end. A nil Location
// marks the node arbitrary: every cost/distance/duration to or from it is
// zero, and the output factory skips it as a stop but keeps walking the
// route through it.
type Node struct {
	Kind     NodeKind
	Location *domain.LocationID

	// Valid when Kind is ShipmentPickup or ShipmentDelivery.
	ShipmentID domain.ShipmentID

	// Valid when Kind is VehicleStart or VehicleEnd; indexes DummyVehicles.
	DummyVehicleIndex int

	// WeightDemand is +shipment.Weight for a pickup, -shipment.Weight for a
	// delivery, and 0 for start/end nodes.
	WeightDemand int64
	// TimeDemand is the handling time consumed at this node (0 for
	// start/end nodes).
	TimeDemand int64
	// TimeWindow is the window the node must be visited within.
	TimeWindow domain.ValueRange
}

// IsArbitrary reports whether the node carries no concrete location.
func (n Node) IsArbitrary() bool {
	return n.Location == nil
}
