package model

import (
	"github.com/routeforge/vrpsolver/internal/domain"
	"github.com/routeforge/vrpsolver/internal/vrperr"
)

// BuildModel translates a domain.Problem into a SolverModel. It is pure —
// no engine interaction — and deterministic: node and dummy-vehicle
// indices are stable functions of the input's iteration order (spec
// §4.1's ordering contract), which is why this function only ever ranges
// over problem.Shipments and problem.Vehicles[i].Shifts in their given
// order, never a map.
func BuildModel(problem domain.Problem) (*SolverModel, error) {
	if err := validate(problem); err != nil {
		return nil, err
	}

	shipmentCount := len(problem.Shipments)
	dummyVehicleCount := 0
	for _, v := range problem.Vehicles {
		dummyVehicleCount += len(v.Shifts)
	}
	nodeCount := 2*shipmentCount + 2*dummyVehicleCount

	nodes := make([]Node, 0, nodeCount)
	dummyVehicles := make([]DummyVehicle, 0, dummyVehicleCount)
	shipmentNodes := make(map[domain.ShipmentID]ShipmentNodes, shipmentCount)
	dummyVehicleNodes := make([]DummyVehicleNodes, 0, dummyVehicleCount)

	for _, s := range problem.Shipments {
		pickupIdx := len(nodes)
		nodes = append(nodes, Node{
			Kind:         ShipmentPickup,
			Location:     s.PickupLocation,
			ShipmentID:   s.ID,
			WeightDemand: s.Weight,
			TimeDemand:   s.PickupHandlingTime,
			TimeWindow:   s.PickupTimeWindow,
		})
		deliveryIdx := len(nodes)
		nodes = append(nodes, Node{
			Kind:         ShipmentDelivery,
			Location:     s.DeliveryLocation,
			ShipmentID:   s.ID,
			WeightDemand: -s.Weight,
			TimeDemand:   s.DeliveryHandlingTime,
			TimeWindow:   s.DeliveryTimeWindow,
		})
		shipmentNodes[s.ID] = ShipmentNodes{Pickup: pickupIdx, Delivery: deliveryIdx}
	}

	for vehicleIdx, vehicle := range problem.Vehicles {
		for shiftIdx, shift := range vehicle.Shifts {
			dv := aggregateDummyVehicle(vehicleIdx, shiftIdx, vehicle, shift)
			dv.Index = len(dummyVehicles)
			dummyVehicles = append(dummyVehicles, dv)

			startIdx := len(nodes)
			nodes = append(nodes, Node{
				Kind:       VehicleStart,
				Location:   shift.StartLocation,
				TimeWindow: shift.ShiftTimeWindow,
			})
			endIdx := len(nodes)
			nodes = append(nodes, Node{
				Kind:       VehicleEnd,
				Location:   shift.EndLocation,
				TimeWindow: shift.ShiftTimeWindow,
			})

			// Back-fill the DummyVehicleIndex now that we know it.
			nodes[startIdx].DummyVehicleIndex = dv.Index
			nodes[endIdx].DummyVehicleIndex = dv.Index

			dummyVehicleNodes = append(dummyVehicleNodes, DummyVehicleNodes{Start: startIdx, End: endIdx})
		}
	}

	return &SolverModel{
		Nodes:             nodes,
		DummyVehicles:     dummyVehicles,
		ShipmentNodes:     shipmentNodes,
		DummyVehicleNodes: dummyVehicleNodes,
		Problem:           problem,
	}, nil
}

// validate checks the invariants spec §3/§7 require before any engine
// interaction: every shipment/shift location, when not arbitrary, must be
// a location the problem actually declares.
func validate(problem domain.Problem) error {
	known := make(map[domain.LocationID]struct{}, len(problem.Locations))
	for _, loc := range problem.Locations {
		known[loc.ID] = struct{}{}
	}

	checkLocation := func(loc *domain.LocationID) error {
		if loc == nil {
			return nil
		}
		if _, ok := known[*loc]; !ok {
			return &vrperr.InvalidInputError{
				Reason: "location " + string(*loc) + " is not declared in Problem.Locations",
			}
		}
		return nil
	}

	for _, s := range problem.Shipments {
		if err := checkLocation(s.PickupLocation); err != nil {
			return err
		}
		if err := checkLocation(s.DeliveryLocation); err != nil {
			return err
		}
	}
	for _, v := range problem.Vehicles {
		if len(v.Shifts) == 0 {
			return &vrperr.InvalidInputError{
				Reason: "vehicle " + string(v.ID) + " has no shifts",
			}
		}
		for _, shift := range v.Shifts {
			if err := checkLocation(shift.StartLocation); err != nil {
				return err
			}
			if err := checkLocation(shift.EndLocation); err != nil {
				return err
			}
		}
	}
	return nil
}
