package callback

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/routeforge/vrpsolver/internal/domain"
	"github.com/routeforge/vrpsolver/internal/engine"
	"github.com/routeforge/vrpsolver/internal/model"
)

// recordingEngine implements engine.RoutingEngine, capturing only what
// Register needs to exercise: the four registered callbacks. Every
// other method is an unused stub.
type recordingEngine struct {
	binary  map[engine.CallbackHandle]func(int, int) int64
	unary   map[engine.CallbackHandle]func(int) int64
	arcCost map[engine.CallbackHandle]func(int, int, int) int64
	next    engine.CallbackHandle
}

func newRecordingEngine() *recordingEngine {
	return &recordingEngine{
		binary:  make(map[engine.CallbackHandle]func(int, int) int64),
		unary:   make(map[engine.CallbackHandle]func(int) int64),
		arcCost: make(map[engine.CallbackHandle]func(int, int, int) int64),
	}
}

func (r *recordingEngine) RegisterTransitCallback(fn func(int, int) int64) engine.CallbackHandle {
	h := r.next
	r.next++
	r.binary[h] = fn
	return h
}

func (r *recordingEngine) RegisterUnaryTransitCallback(fn func(int) int64) engine.CallbackHandle {
	h := r.next
	r.next++
	r.unary[h] = fn
	return h
}

func (r *recordingEngine) RegisterArcCostEvaluator(fn func(int, int, int) int64) engine.CallbackHandle {
	h := r.next
	r.next++
	r.arcCost[h] = fn
	return h
}

func (r *recordingEngine) AddDimension(engine.CallbackHandle, int64, int64, bool, string) (engine.Dimension, error) {
	return nil, nil
}
func (r *recordingEngine) AddDimensionWithVehicleCapacity(engine.CallbackHandle, int64, []int64, bool, string) (engine.Dimension, error) {
	return nil, nil
}
func (r *recordingEngine) GetMutableDimension(string) (engine.Dimension, error)    { return nil, nil }
func (r *recordingEngine) SetFixedCostOfVehicle(int64, int)                       {}
func (r *recordingEngine) SetVehicleUsedWhenEmpty(bool, int)                      {}
func (r *recordingEngine) SetArcCostEvaluatorOfAllVehicles(engine.CallbackHandle) {}
func (r *recordingEngine) AddPickupAndDelivery(int, int)                         {}
func (r *recordingEngine) VehicleVar(int) engine.Var                             { return engine.Var{} }
func (r *recordingEngine) ConstraintStore() engine.ConstraintStore               { return nil }
func (r *recordingEngine) IndexToNode(i int) int                                 { return i }
func (r *recordingEngine) NodeToIndex(i int) int                                 { return i }
func (r *recordingEngine) Start(int) int                                         { return 0 }
func (r *recordingEngine) End(int) int                                           { return 0 }
func (r *recordingEngine) IsEnd(int) bool                                        { return false }
func (r *recordingEngine) SearchWithParameters(engine.SearchParameters) (engine.Assignment, error) {
	return nil, nil
}

func locPtr(id string) *domain.LocationID {
	l := domain.LocationID(id)
	return &l
}

func TestRegisterCallbacks(t *testing.T) {
	matrix := domain.NewDirectedRouteMatrix()
	matrix.Set("A", "B", domain.DefinedEdge(7, 9))
	distanceCost, timeCost := int64(3), int64(2)

	m := &model.SolverModel{
		Nodes: []model.Node{
			{Kind: model.ShipmentPickup, Location: locPtr("A"), WeightDemand: 5},
			{Kind: model.ShipmentDelivery, Location: locPtr("B"), WeightDemand: -5},
		},
		DummyVehicles: []model.DummyVehicle{
			{DistanceCost: distanceCost, TimeCost: timeCost},
		},
		Problem: domain.Problem{Matrix: matrix},
	}

	rec := newRecordingEngine()
	handles := Register(rec, m)

	require.Contains(t, rec.binary, handles.Distance)
	require.Contains(t, rec.binary, handles.Time)
	require.Contains(t, rec.unary, handles.Weight)
	require.Contains(t, rec.arcCost, handles.ArcCost)

	assert.Equal(t, int64(7), rec.binary[handles.Distance](0, 1))
	assert.Equal(t, int64(9), rec.binary[handles.Time](0, 1))
	assert.Equal(t, int64(5), rec.unary[handles.Weight](0))
	assert.Equal(t, int64(-5), rec.unary[handles.Weight](1))

	// arc cost = distance*distanceCost + duration*timeCost = 7*3 + 9*2 = 39
	assert.Equal(t, int64(39), rec.arcCost[handles.ArcCost](0, 0, 1))
}
