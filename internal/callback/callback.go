// Package callback registers the transit and arc-cost functions the
// routing engine evaluates during search (spec §4.3). Every function
// here is pure: given node indices, it asks the model for the nodes at
// those indices and the route matrix for the edge between them, applying
// the matrix-self-edge and arbitrary-node-transparency rules from
// model.ArcDistance/ArcDuration exactly once.
package callback

import (
	"github.com/routeforge/vrpsolver/internal/domain"
	"github.com/routeforge/vrpsolver/internal/engine"
	"github.com/routeforge/vrpsolver/internal/model"
)

// Handles bundles the callback handles every downstream component
// (dimension registration, vehicle-cost configuration) needs, keyed by
// role rather than by the engine's opaque int so callers never have to
// remember which handle is which.
type Handles struct {
	Distance engine.CallbackHandle
	Time     engine.CallbackHandle
	Weight   engine.CallbackHandle
	ArcCost  engine.CallbackHandle
}

// Register builds and registers every callback exactly once against eng,
// grounded in m.
func Register(eng engine.RoutingEngine, m *model.SolverModel) Handles {
	distanceHandle := eng.RegisterTransitCallback(func(from, to int) int64 {
		return model.ArcDistance(m, from, to)
	})
	timeHandle := eng.RegisterTransitCallback(func(from, to int) int64 {
		return model.ArcDuration(m, from, to)
	})
	weightHandle := eng.RegisterUnaryTransitCallback(func(index int) int64 {
		return m.Nodes[index].WeightDemand
	})
	arcCostHandle := eng.RegisterArcCostEvaluator(func(vehicle, from, to int) int64 {
		dv := m.DummyVehicles[vehicle]
		distance := model.ArcDistance(m, from, to)
		duration := model.ArcDuration(m, from, to)
		return domain.SaturatingAdd(
			domain.SaturatingMul(distance, dv.DistanceCost),
			domain.SaturatingMul(duration, dv.TimeCost),
		)
	})

	return Handles{
		Distance: distanceHandle,
		Time:     timeHandle,
		Weight:   weightHandle,
		ArcCost:  arcCostHandle,
	}
}
