// Package configure applies the six vehicle/dimension/linking
// configurators spec §4.5 describes, in the fixed order required for a
// deterministic objective: vehicle cost, time, distance, weight, arc
// cost, then pickup-and-delivery linking.
package configure

import (
	"github.com/routeforge/vrpsolver/internal/callback"
	"github.com/routeforge/vrpsolver/internal/dimension"
	"github.com/routeforge/vrpsolver/internal/engine"
	"github.com/routeforge/vrpsolver/internal/model"
)

// Configurator applies one piece of the objective/constraint setup to an
// already-registered engine.
type Configurator interface {
	Apply(eng engine.RoutingEngine, m *model.SolverModel, handles callback.Handles, dims *dimension.Dimensions)
}

// ApplyAll runs every configurator in spec order.
func ApplyAll(eng engine.RoutingEngine, m *model.SolverModel, handles callback.Handles, dims *dimension.Dimensions) {
	configurators := []Configurator{
		vehicleCostConfigurator{},
		timeConfigurator{},
		distanceConfigurator{},
		weightConfigurator{},
		arcCostConfigurator{},
		pickupDeliveryConfigurator{},
	}
	for _, c := range configurators {
		c.Apply(eng, m, handles, dims)
	}
}

// vehicleCostConfigurator sets each dummy vehicle's fixed cost and marks
// it used-when-empty whenever that fixed cost is non-zero, matching
// OR-tools' SetFixedCostOfVehicle semantics: a non-zero fixed cost that
// only ever fired for routes with stops would never be paid by an
// intentionally standing-by vehicle.
type vehicleCostConfigurator struct{}

func (vehicleCostConfigurator) Apply(eng engine.RoutingEngine, m *model.SolverModel, _ callback.Handles, _ *dimension.Dimensions) {
	for i, dv := range m.DummyVehicles {
		eng.SetFixedCostOfVehicle(dv.FixedCost+dv.BaseCost, i)
		eng.SetVehicleUsedWhenEmpty(dv.FixedCost > 0, i)
	}
}

type timeConfigurator struct{}

func (timeConfigurator) Apply(_ engine.RoutingEngine, m *model.SolverModel, _ callback.Handles, dims *dimension.Dimensions) {
	for i, dv := range m.DummyVehicles {
		dims.Time.SetSpanCostCoefficientForVehicle(dv.TimeCost, i)
		dims.Time.SetSlackCostCoefficientForVehicle(dv.WaitingTimeCost, i)
	}
}

type distanceConfigurator struct{}

func (distanceConfigurator) Apply(_ engine.RoutingEngine, m *model.SolverModel, _ callback.Handles, dims *dimension.Dimensions) {
	for i, dv := range m.DummyVehicles {
		dims.Distance.SetSpanCostCoefficientForVehicle(dv.DistanceCost, i)
		dims.Distance.SetSlackCostCoefficientForVehicle(dv.DistanceCost, i)
	}
}

type weightConfigurator struct{}

func (weightConfigurator) Apply(_ engine.RoutingEngine, m *model.SolverModel, _ callback.Handles, dims *dimension.Dimensions) {
	for i, dv := range m.DummyVehicles {
		dims.Weight.SetSpanCostCoefficientForVehicle(dv.WeightCost, i)
		dims.Weight.SetSlackCostCoefficientForVehicle(dv.WeightCost, i)
	}
}

type arcCostConfigurator struct{}

func (arcCostConfigurator) Apply(eng engine.RoutingEngine, _ *model.SolverModel, handles callback.Handles, _ *dimension.Dimensions) {
	eng.SetArcCostEvaluatorOfAllVehicles(handles.ArcCost)
}

// pickupDeliveryConfigurator links each shipment's pickup and delivery:
// both must land on the same vehicle, and the delivery's distance-cumul
// must not precede the pickup's (it can never be reached before being
// picked up).
type pickupDeliveryConfigurator struct{}

func (pickupDeliveryConfigurator) Apply(eng engine.RoutingEngine, m *model.SolverModel, _ callback.Handles, dims *dimension.Dimensions) {
	constraints := eng.ConstraintStore()
	// Iterate Problem.Shipments rather than the ShipmentNodes map so the
	// engine sees pickup/delivery pairs registered in the same
	// deterministic order model.BuildModel assigned their node indices.
	for _, s := range m.Problem.Shipments {
		nodes := m.ShipmentNodes[s.ID]
		eng.AddPickupAndDelivery(nodes.Pickup, nodes.Delivery)
		constraints.AddEquality(eng.VehicleVar(nodes.Pickup), eng.VehicleVar(nodes.Delivery))
		constraints.AddLessOrEqual(dims.Distance.CumulVar(nodes.Pickup), dims.Distance.CumulVar(nodes.Delivery))
	}
}
