// Package output walks a solved assignment back into domain.Solution
// (spec §4.6): per dummy vehicle, it follows the route from start to end,
// turns every non-arbitrary node into a stop, merges consecutive stops at
// the same location, and groups the resulting stops/trips by the parent
// vehicle, concatenating shifts in order.
package output

import (
	"github.com/routeforge/vrpsolver/internal/dimension"
	"github.com/routeforge/vrpsolver/internal/domain"
	"github.com/routeforge/vrpsolver/internal/engine"
	"github.com/routeforge/vrpsolver/internal/model"
)

// Build turns a solved assignment into a domain.Solution.
func Build(m *model.SolverModel, assignment engine.Assignment, dims *dimension.Dimensions) domain.Solution {
	var plans []domain.VehiclePlan
	currentVehicleIndex := -1
	stopSeq := 0

	for _, dv := range m.DummyVehicles {
		if dv.VehicleIndex != currentVehicleIndex {
			plans = append(plans, domain.VehiclePlan{Vehicle: dv.Vehicle})
			currentVehicleIndex = dv.VehicleIndex
			stopSeq = 0
		}

		startIdx := m.DummyVehicleNodes[dv.Index].Start
		route := walkRoute(assignment, startIdx)
		stops, trips := buildStopsAndTrips(m, dv, assignment, dims, route)

		// Stop.Index is a fresh 1-based sequence per vehicle plan: it
		// restarts at 1 for each vehicle and keeps counting across that
		// vehicle's shifts — assigned here, not from the dense solver-model node index, since
		// merging collapses some raw stops before this point.
		for i := range stops {
			stopSeq++
			stops[i].Index = stopSeq
		}

		plan := &plans[len(plans)-1]
		plan.Stops = append(plan.Stops, stops...)
		plan.Trips = append(plan.Trips, trips...)
	}

	return domain.Solution{
		VehiclePlans: plans,
		TotalCost:    assignment.ObjectiveValue(),
	}
}

func walkRoute(assignment engine.Assignment, startIdx int) []int {
	route := []int{startIdx}
	idx := startIdx
	for !assignment.IsEnd(idx) {
		idx = assignment.NextIndex(idx)
		route = append(route, idx)
	}
	return route
}

type rawStop struct {
	pos     int
	nodeIdx int
}

func buildStopsAndTrips(m *model.SolverModel, dv model.DummyVehicle, assignment engine.Assignment, dims *dimension.Dimensions, route []int) ([]domain.VehicleStop, []domain.VehicleTrip) {
	var rawStops []rawStop
	for pos, nodeIdx := range route {
		if !m.Nodes[nodeIdx].IsArbitrary() {
			rawStops = append(rawStops, rawStop{pos: pos, nodeIdx: nodeIdx})
		}
	}

	type mergedStop struct {
		stop     domain.VehicleStop
		lastPos  int
		firstPos int
	}
	var merged []mergedStop

	for _, rs := range rawStops {
		node := m.Nodes[rs.nodeIdx]
		arrivalMin, _ := assignment.CumulVar(dims.Time, rs.nodeIdx)
		waitMin, _ := assignment.SlackVar(dims.Time, rs.nodeIdx)
		departureMin := arrivalMin + node.TimeDemand
		waitingMin := waitMin + node.TimeDemand

		stop := domain.VehicleStop{
			Location:  node.Location,
			Arrival:   domain.NewValueRange(arrivalMin, arrivalMin),
			Departure: domain.NewValueRange(departureMin, departureMin),
			Waiting:   domain.NewValueRange(waitingMin, waitingMin),
		}
		switch node.Kind {
		case model.ShipmentPickup:
			stop.Pickups = []domain.ShipmentID{node.ShipmentID}
		case model.ShipmentDelivery:
			stop.Deliveries = []domain.ShipmentID{node.ShipmentID}
		}

		if len(merged) > 0 && sameLocation(merged[len(merged)-1].stop.Location, stop.Location) {
			last := &merged[len(merged)-1]
			last.stop.Pickups = unionShipments(last.stop.Pickups, stop.Pickups)
			last.stop.Deliveries = unionShipments(last.stop.Deliveries, stop.Deliveries)
			last.stop.Arrival = last.stop.Arrival.Intersect(stop.Arrival)
			last.stop.Departure = last.stop.Departure.Intersect(stop.Departure)
			last.stop.Waiting = last.stop.Waiting.Intersect(stop.Waiting)
			last.lastPos = rs.pos
			continue
		}

		merged = append(merged, mergedStop{stop: stop, firstPos: rs.pos, lastPos: rs.pos})
	}

	stops := make([]domain.VehicleStop, len(merged))
	for i, ms := range merged {
		stops[i] = ms.stop
	}

	var trips []domain.VehicleTrip
	for i := 0; i+1 < len(merged); i++ {
		from := merged[i]
		to := merged[i+1]

		var distance, duration int64
		for p := from.lastPos; p < to.firstPos; p++ {
			distance = domain.SaturatingAdd(distance, model.ArcDistance(m, route[p], route[p+1]))
			duration = domain.SaturatingAdd(duration, model.ArcDuration(m, route[p], route[p+1]))
		}

		trips = append(trips, domain.VehicleTrip{
			Index:        i,
			FromLocation: from.stop.Location,
			ToLocation:   to.stop.Location,
			Distance:     distance,
			Duration:     duration,
			Departure:    from.stop.Departure,
			Arrival:      to.stop.Arrival,
			DistanceCost: domain.SaturatingMul(distance, dv.DistanceCost),
			TimeCost:     domain.SaturatingMul(duration, dv.TimeCost),
		})
	}

	return stops, trips
}

func sameLocation(a, b *domain.LocationID) bool {
	if a == nil || b == nil {
		return false
	}
	return *a == *b
}

func unionShipments(a, b []domain.ShipmentID) []domain.ShipmentID {
	if len(b) == 0 {
		return a
	}
	seen := make(map[domain.ShipmentID]bool, len(a))
	for _, id := range a {
		seen[id] = true
	}
	out := append([]domain.ShipmentID(nil), a...)
	for _, id := range b {
		if !seen[id] {
			out = append(out, id)
			seen[id] = true
		}
	}
	return out
}
