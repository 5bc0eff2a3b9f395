package model

import "github.com/routeforge/vrpsolver/internal/domain"

// ShipmentNodes is the (pickup, delivery) node-index pair for one shipment.
type ShipmentNodes struct {
	Pickup   int
	Delivery int
}

// DummyVehicleNodes is the (start, end) node-index pair for one dummy
// vehicle.
type DummyVehicleNodes struct {
	Start int
	End   int
}

// SolverModel is the internal, dense representation the routing engine is
// built against: an ordered node list, an ordered dummy-vehicle list, and
// the lookup maps tying shipments and dummy vehicles back to their nodes.
type SolverModel struct {
	Nodes         []Node
	DummyVehicles []DummyVehicle

	ShipmentNodes     map[domain.ShipmentID]ShipmentNodes
	DummyVehicleNodes []DummyVehicleNodes

	Problem domain.Problem
}

// NodeCount returns len(Nodes).
func (m *SolverModel) NodeCount() int {
	return len(m.Nodes)
}

// DummyVehicleCount returns len(DummyVehicles).
func (m *SolverModel) DummyVehicleCount() int {
	return len(m.DummyVehicles)
}
