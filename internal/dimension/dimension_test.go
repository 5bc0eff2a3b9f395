package dimension

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/routeforge/vrpsolver/internal/callback"
	"github.com/routeforge/vrpsolver/internal/domain"
	"github.com/routeforge/vrpsolver/internal/engine"
	"github.com/routeforge/vrpsolver/internal/model"
)

func locPtr(id string) *domain.LocationID {
	l := domain.LocationID(id)
	return &l
}

func buildModel(t *testing.T) *model.SolverModel {
	t.Helper()
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
				ID: "V0",
				Shifts: []domain.Shift{
					domain.NewShift(domain.NewValueRange(0, 1000), locPtr("L0"), locPtr("L0"), nil, domain.ShiftCostOverrides{}),
				},
			},
		},
		Matrix: domain.NewDirectedRouteMatrix(),
	}
	m, err := model.BuildModel(problem)
	require.NoError(t, err)
	return m
}

func newEngine(m *model.SolverModel) engine.RoutingEngine {
	starts := make([]int, len(m.DummyVehicleNodes))
	ends := make([]int, len(m.DummyVehicleNodes))
	for i, dv := range m.DummyVehicleNodes {
		starts[i] = dv.Start
		ends[i] = dv.End
	}
	return engine.NewLocalSearchEngine(m.NodeCount(), starts, ends)
}

func TestRegisterAllWiresThreeDimensions(t *testing.T) {
	m := buildModel(t)
	eng := newEngine(m)
	handles := callback.Register(eng, m)

	dims, err := RegisterAll(eng, m, handles, nil)
	require.NoError(t, err)
	require.NotNil(t, dims)

	assert.Equal(t, "time", dims.Time.Name())
	assert.Equal(t, "distance", dims.Distance.Name())
	assert.Equal(t, "weight", dims.Weight.Name())

	got, err := eng.GetMutableDimension("time")
	require.NoError(t, err)
	assert.Equal(t, dims.Time, got)
}

func TestRegisterAllRejectsDuplicateName(t *testing.T) {
	m := buildModel(t)
	eng := newEngine(m)
	handles := callback.Register(eng, m)

	_, err := RegisterAll(eng, m, handles, nil)
	require.NoError(t, err)

	_, err = RegisterAll(eng, m, handles, nil)
	assert.Error(t, err)
}

func TestRegisterAllAcceptsWaitingTimeCap(t *testing.T) {
	m := buildModel(t)
	eng := newEngine(m)
	handles := callback.Register(eng, m)
	cap := int64(15)

	dims, err := RegisterAll(eng, m, handles, &cap)
	require.NoError(t, err)
	require.NotNil(t, dims.Time)
}
