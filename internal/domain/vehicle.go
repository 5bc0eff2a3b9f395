package domain

// Vehicle is an ordered, non-empty list of shifts plus optional cost
// coefficients and a capacity. The internal model expands each (vehicle,
// shift) pair into its own DummyVehicle.
type Vehicle struct {
	ID     VehicleID
	Shifts []Shift

	FixedCost             *int64
	BaseCost              *int64
	DistanceCost          *int64
	TimeCost              *int64
	WeightCost            *int64
	WaitingTimeCost       *int64
	CostPerWeightDistance *int64

	MaxWeight *int64
}
