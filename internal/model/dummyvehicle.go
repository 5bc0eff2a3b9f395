package model

import "github.com/routeforge/vrpsolver/internal/domain"

// DummyVehicle is the expansion of one (Vehicle, Shift) pair: an
// independent routing-engine vehicle with its own aggregated cost vector,
// capacity, and availability window. It is identified by its dense index
// into SolverModel.DummyVehicles.
type DummyVehicle struct {
	Index        int
	VehicleIndex int
	ShiftIndex   int
	Vehicle      domain.Vehicle

	FixedCost             int64
	BaseCost              int64
	DistanceCost          int64
	TimeCost              int64
	WaitingTimeCost       int64
	WeightCost            int64
	CostPerWeightDistance int64

	MaxWeight   int64
	MaxDistance int64
	MaxDuration int64

	AvailableTimeWindow domain.ValueRange
	Breaks              []domain.Break
}

// optOrZero returns *p, or 0 when p is nil.
func optOrZero(p *int64) int64 {
	if p == nil {
		return 0
	}
	return *p
}

// optOrMax returns *p, or domain.MaxCost when p is nil.
func optOrMax(p *int64) int64 {
	if p == nil {
		return domain.MaxCost
	}
	return *p
}

// aggregateDummyVehicle implements the §4.2 cost-aggregation table for one
// (vehicle, shift) pair.
func aggregateDummyVehicle(vehicleIndex, shiftIndex int, vehicle domain.Vehicle, shift domain.Shift) DummyVehicle {
	n := len(vehicle.Shifts)

	maxDuration := optOrMax(shift.MaxDuration)
	if windowLen := shift.ShiftTimeWindow.Length(); windowLen < maxDuration {
		maxDuration = windowLen
	}

	return DummyVehicle{
		VehicleIndex: vehicleIndex,
		ShiftIndex:   shiftIndex,
		Vehicle:      vehicle,

		FixedCost: domain.SaturatingAdd(
			domain.SaturatingDiv(optOrZero(vehicle.FixedCost), n),
			optOrZero(shift.FixedCost),
		),
		BaseCost: domain.SaturatingAdd(
			domain.SaturatingDiv(optOrZero(vehicle.BaseCost), n),
			optOrZero(shift.BaseCost),
		),
		DistanceCost: domain.SaturatingAdd(
			optOrZero(vehicle.DistanceCost),
			optOrZero(shift.DistanceCost),
		),
		TimeCost: domain.SaturatingAdd(
			optOrZero(vehicle.TimeCost),
			optOrZero(shift.TimeCost),
		),
		WaitingTimeCost: domain.SaturatingAdd(
			optOrZero(vehicle.WaitingTimeCost),
			optOrZero(shift.WaitingTimeCost),
		),
		WeightCost:            optOrZero(vehicle.WeightCost),
		CostPerWeightDistance: optOrZero(vehicle.CostPerWeightDistance),

		MaxWeight:   optOrMax(vehicle.MaxWeight),
		MaxDistance: optOrMax(shift.MaxDistance),
		MaxDuration: maxDuration,

		AvailableTimeWindow: shift.ShiftTimeWindow,
		Breaks:              shift.Breaks,
	}
}
