package configure

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/routeforge/vrpsolver/internal/callback"
	"github.com/routeforge/vrpsolver/internal/dimension"
	"github.com/routeforge/vrpsolver/internal/domain"
	"github.com/routeforge/vrpsolver/internal/engine"
	"github.com/routeforge/vrpsolver/internal/model"
)

func locPtr(id string) *domain.LocationID {
	l := domain.LocationID(id)
	return &l
}

func buildWiredEngine(t *testing.T) (*model.SolverModel, engine.RoutingEngine, callback.Handles, *dimension.Dimensions) {
	t.Helper()
	fixedCost := int64(20)
	matrix := domain.NewDirectedRouteMatrix()
	matrix.Set("L0", "L1", domain.DefinedEdge(5, 5))
	matrix.Set("L1", "L0", domain.DefinedEdge(5, 5))
	problem := domain.Problem{
		Locations: []domain.Location{{ID: "L0"}, {ID: "L1"}},
		Shipments: []domain.Shipment{
			{
				ID:                 "S0",
				PickupLocation:     locPtr("L0"),
				DeliveryLocation:   locPtr("L1"),
				PickupTimeWindow:   domain.NewValueRange(0, 50),
				DeliveryTimeWindow: domain.NewValueRange(0, 100),
				Weight:             3,
			},
		},
		Vehicles: []domain.Vehicle{
			{
				ID:        "V0",
				FixedCost: &fixedCost,
				Shifts: []domain.Shift{
					domain.NewShift(domain.NewValueRange(0, 1000), locPtr("L0"), locPtr("L0"), nil, domain.ShiftCostOverrides{}),
				},
			},
		},
		Matrix: matrix,
	}
	m, err := model.BuildModel(problem)
	require.NoError(t, err)

	starts := make([]int, len(m.DummyVehicleNodes))
	ends := make([]int, len(m.DummyVehicleNodes))
	for i, dv := range m.DummyVehicleNodes {
		starts[i] = dv.Start
		ends[i] = dv.End
	}
	eng := engine.NewLocalSearchEngine(m.NodeCount(), starts, ends)
	handles := callback.Register(eng, m)
	dims, err := dimension.RegisterAll(eng, m, handles, nil)
	require.NoError(t, err)
	return m, eng, handles, dims
}

func TestApplyAllWiresCostsAndLinking(t *testing.T) {
	m, eng, handles, dims := buildWiredEngine(t)
	ApplyAll(eng, m, handles, dims)

	assignment, err := eng.SearchWithParameters(engine.SearchParameters{})
	require.NoError(t, err)
	require.NotNil(t, assignment)

	pickup := m.ShipmentNodes["S0"].Pickup
	delivery := m.ShipmentNodes["S0"].Delivery
	start := m.DummyVehicleNodes[0].Start
	end := m.DummyVehicleNodes[0].End

	assert.Equal(t, pickup, assignment.NextIndex(start))
	assert.Equal(t, delivery, assignment.NextIndex(pickup))
	assert.Equal(t, end, assignment.NextIndex(delivery))
}
