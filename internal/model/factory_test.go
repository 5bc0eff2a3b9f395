package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/routeforge/vrpsolver/internal/domain"
)

func locPtr(id string) *domain.LocationID {
	l := domain.LocationID(id)
	return &l
}

func buildTestProblem() domain.Problem {
	locations := []domain.Location{
		{ID: "L0"}, {ID: "L1"}, {ID: "L2"}, {ID: "L3"},
	}
	shipments := []domain.Shipment{
		{
			ID:                   "S0",
			PickupLocation:       locPtr("L1"),
			DeliveryLocation:     locPtr("L2"),
			PickupHandlingTime:   3,
			DeliveryHandlingTime: 5,
			PickupTimeWindow:     domain.NewValueRange(0, 100),
			DeliveryTimeWindow:   domain.NewValueRange(0, 100),
			Weight:               10,
		},
		{
			ID:                   "S1",
			PickupLocation:       locPtr("L3"),
			DeliveryLocation:     locPtr("L0"),
			PickupHandlingTime:   1,
			DeliveryHandlingTime: 1,
			PickupTimeWindow:     domain.NewValueRange(0, 100),
			DeliveryTimeWindow:   domain.NewValueRange(0, 100),
			Weight:               4,
		},
	}
	vehicles := []domain.Vehicle{
		{
			ID: "V0",
			Shifts: []domain.Shift{
				domain.NewShift(domain.NewValueRange(0, 500), locPtr("L0"), locPtr("L0"), nil, domain.ShiftCostOverrides{}),
				domain.NewShift(domain.NewValueRange(500, 1000), locPtr("L0"), locPtr("L0"), nil, domain.ShiftCostOverrides{}),
			},
		},
		{
			ID: "V1",
			Shifts: []domain.Shift{
				domain.NewShift(domain.NewValueRange(0, 1000), locPtr("L0"), locPtr("L0"), nil, domain.ShiftCostOverrides{}),
			},
		},
	}

	return domain.Problem{
		Locations: locations,
		Vehicles:  vehicles,
		Shipments: shipments,
		Matrix:    domain.NewDirectedRouteMatrix(),
	}
}

func TestBuildModelIndexDeterminism(t *testing.T) {
	problem := buildTestProblem()
	m, err := BuildModel(problem)
	require.NoError(t, err)

	shipmentCount := len(problem.Shipments)
	dummyVehicleCount := 3 // 2 shifts + 1 shift
	assert.Equal(t, 2*shipmentCount+2*dummyVehicleCount, m.NodeCount())
	assert.Equal(t, dummyVehicleCount, m.DummyVehicleCount())

	s0 := m.ShipmentNodes["S0"]
	assert.Equal(t, 0, s0.Pickup)
	assert.Equal(t, 1, s0.Delivery)

	s1 := m.ShipmentNodes["S1"]
	assert.Equal(t, 2, s1.Pickup)
	assert.Equal(t, 3, s1.Delivery)

	S := shipmentCount
	for j, dv := range m.DummyVehicleNodes {
		assert.Equal(t, 2*S+2*j, dv.Start)
		assert.Equal(t, 2*S+2*j+1, dv.End)
	}
}

func TestBuildModelWeightConservation(t *testing.T) {
	problem := buildTestProblem()
	m, err := BuildModel(problem)
	require.NoError(t, err)

	var total int64
	for _, n := range m.Nodes {
		total += n.WeightDemand
	}
	assert.Equal(t, int64(0), total)
}

func TestBuildModelRejectsUnknownLocation(t *testing.T) {
	problem := buildTestProblem()
	problem.Shipments[0].PickupLocation = locPtr("unknown")

	_, err := BuildModel(problem)
	assert.Error(t, err)
}

func TestBuildModelDummyVehicleAggregation(t *testing.T) {
	fixedCost := int64(100)
	distanceCost := int64(2)
	problem := domain.Problem{
		Locations: []domain.Location{{ID: "L0"}},
		Matrix:    domain.NewDirectedRouteMatrix(),
		Vehicles: []domain.Vehicle{
			{
				ID:           "V0",
				FixedCost:    &fixedCost,
				DistanceCost: &distanceCost,
				Shifts: []domain.Shift{
					domain.NewShift(domain.NewValueRange(0, 200), locPtr("L0"), locPtr("L0"), nil, domain.ShiftCostOverrides{}),
					domain.NewShift(domain.NewValueRange(200, 600), locPtr("L0"), locPtr("L0"), nil, domain.ShiftCostOverrides{}),
				},
			},
		},
	}

	m, err := BuildModel(problem)
	require.NoError(t, err)
	require.Len(t, m.DummyVehicles, 2)

	for _, dv := range m.DummyVehicles {
		assert.Equal(t, int64(50), dv.FixedCost) // floor(100/2)
		assert.Equal(t, int64(2), dv.DistanceCost)
		assert.Equal(t, domain.MaxCost, dv.MaxWeight)
	}
	assert.Equal(t, int64(200), m.DummyVehicles[0].MaxDuration)
	assert.Equal(t, int64(400), m.DummyVehicles[1].MaxDuration)
}
