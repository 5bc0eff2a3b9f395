// Package dimension registers the time, distance, and weight dimensions
// against the routing engine (spec §4.4): each is a capacity-bounded
// accumulator over one of the callbacks internal/callback registered,
// with per-vehicle capacities pulled straight from the dummy-vehicle
// aggregation internal/model already computed.
package dimension

import (
	"github.com/routeforge/vrpsolver/internal/callback"
	"github.com/routeforge/vrpsolver/internal/domain"
	"github.com/routeforge/vrpsolver/internal/engine"
	"github.com/routeforge/vrpsolver/internal/model"
)

const (
	timeName     = "time"
	distanceName = "distance"
	weightName   = "weight"
)

// Dimensions holds the three registered dimensions so configure and
// output can look them up by role instead of by string name.
type Dimensions struct {
	Time     engine.Dimension
	Distance engine.Dimension
	Weight   engine.Dimension
}

// RegisterAll adds the time, distance, and weight dimensions to eng and
// attaches every node's time window to the time dimension's cumulative
// variable. maxVehicleWaitingTime, when set, caps the wait insertable at
// any single node (spec §4.4's "user cap" on the time dimension's slack).
func RegisterAll(eng engine.RoutingEngine, m *model.SolverModel, handles callback.Handles, maxVehicleWaitingTime *int64) (*Dimensions, error) {
	maxSlack := domain.MaxCost
	if maxVehicleWaitingTime != nil {
		maxSlack = *maxVehicleWaitingTime
	}

	timeCaps := make([]int64, len(m.DummyVehicles))
	distanceCaps := make([]int64, len(m.DummyVehicles))
	weightCaps := make([]int64, len(m.DummyVehicles))
	for i, dv := range m.DummyVehicles {
		timeCaps[i] = dv.MaxDuration
		distanceCaps[i] = dv.MaxDistance
		weightCaps[i] = dv.MaxWeight
	}

	timeDim, err := eng.AddDimensionWithVehicleCapacity(handles.Time, maxSlack, timeCaps, false, timeName)
	if err != nil {
		return nil, err
	}
	distanceDim, err := eng.AddDimensionWithVehicleCapacity(handles.Distance, 0, distanceCaps, true, distanceName)
	if err != nil {
		return nil, err
	}
	weightDim, err := eng.AddDimensionWithVehicleCapacity(handles.Weight, 0, weightCaps, true, weightName)
	if err != nil {
		return nil, err
	}

	for i, node := range m.Nodes {
		timeDim.SetCumulVarRange(i, node.TimeWindow.Min, node.TimeWindow.Max)
	}

	return &Dimensions{Time: timeDim, Distance: distanceDim, Weight: weightDim}, nil
}
