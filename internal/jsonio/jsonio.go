// Package jsonio is the JSON wire format the CLI and HTTP entry points
// marshal/unmarshal against — external collaborators per spec §1, kept
// deliberately separate from the domain package so the domain's value
// objects stay free of serialization tags.
package jsonio

import "github.com/routeforge/vrpsolver/internal/domain"

type ValueRange struct {
	Min int64 `json:"min"`
	Max int64 `json:"max"`
}

func (r ValueRange) toDomain() domain.ValueRange {
	return domain.NewValueRange(r.Min, r.Max)
}

func fromDomainRange(r domain.ValueRange) ValueRange {
	return ValueRange{Min: r.Min, Max: r.Max}
}

type Location struct {
	ID                 string `json:"id"`
	MaxVehicleCapacity *int64 `json:"maxVehicleCapacity,omitempty"`
}

type RouteEdge struct {
	From     string `json:"from"`
	To       string `json:"to"`
	Distance int64  `json:"distance"`
	Duration int64  `json:"duration"`
}

type Shipment struct {
	ID                   string     `json:"id"`
	PickupLocation       *string    `json:"pickupLocation,omitempty"`
	DeliveryLocation     *string    `json:"deliveryLocation,omitempty"`
	PickupHandlingTime   int64      `json:"pickupHandlingTime"`
	DeliveryHandlingTime int64      `json:"deliveryHandlingTime"`
	PickupTimeWindow     ValueRange `json:"pickupTimeWindow"`
	DeliveryTimeWindow   ValueRange `json:"deliveryTimeWindow"`
	Weight               int64      `json:"weight"`
}

type Break struct {
	AllowedTimeWindow ValueRange `json:"allowedTimeWindow"`
	Duration          int64      `json:"duration"`
	Mandatory         bool       `json:"mandatory"`
	Location          *string    `json:"location,omitempty"`
}

type Shift struct {
	TimeWindow      ValueRange `json:"timeWindow"`
	StartLocation   *string    `json:"startLocation,omitempty"`
	EndLocation     *string    `json:"endLocation,omitempty"`
	Breaks          []Break    `json:"breaks,omitempty"`
	FixedCost       *int64     `json:"fixedCost,omitempty"`
	BaseCost        *int64     `json:"baseCost,omitempty"`
	DistanceCost    *int64     `json:"distanceCost,omitempty"`
	TimeCost        *int64     `json:"timeCost,omitempty"`
	WaitingTimeCost *int64     `json:"waitingTimeCost,omitempty"`
	MaxDuration     *int64     `json:"maxDuration,omitempty"`
	MaxDistance     *int64     `json:"maxDistance,omitempty"`
}

type Vehicle struct {
	ID                    string  `json:"id"`
	Shifts                []Shift `json:"shifts"`
	FixedCost             *int64  `json:"fixedCost,omitempty"`
	BaseCost              *int64  `json:"baseCost,omitempty"`
	DistanceCost          *int64  `json:"distanceCost,omitempty"`
	TimeCost              *int64  `json:"timeCost,omitempty"`
	WeightCost            *int64  `json:"weightCost,omitempty"`
	WaitingTimeCost       *int64  `json:"waitingTimeCost,omitempty"`
	CostPerWeightDistance *int64  `json:"costPerWeightDistance,omitempty"`
	MaxWeight             *int64  `json:"maxWeight,omitempty"`
}

// Problem is the wire form of domain.Problem.
type Problem struct {
	Locations             []Location  `json:"locations"`
	Vehicles              []Vehicle   `json:"vehicles"`
	Shipments             []Shipment  `json:"shipments"`
	Matrix                []RouteEdge `json:"matrix"`
	MaxVehicleWaitingTime *int64      `json:"maxVehicleWaitingTime,omitempty"`
}

func locPtr(s *string) *domain.LocationID {
	if s == nil {
		return nil
	}
	l := domain.LocationID(*s)
	return &l
}

// ToDomain converts the wire Problem into domain.Problem.
func (p Problem) ToDomain() domain.Problem {
	locations := make([]domain.Location, len(p.Locations))
	for i, l := range p.Locations {
		locations[i] = domain.Location{ID: domain.LocationID(l.ID), MaxVehicleCapacity: l.MaxVehicleCapacity}
	}

	matrix := domain.NewDirectedRouteMatrix()
	for _, e := range p.Matrix {
		matrix.Set(domain.LocationID(e.From), domain.LocationID(e.To), domain.DefinedEdge(e.Distance, e.Duration))
	}

	shipments := make([]domain.Shipment, len(p.Shipments))
	for i, s := range p.Shipments {
		shipments[i] = domain.Shipment{
			ID:                   domain.ShipmentID(s.ID),
			PickupLocation:       locPtr(s.PickupLocation),
			DeliveryLocation:     locPtr(s.DeliveryLocation),
			PickupHandlingTime:   s.PickupHandlingTime,
			DeliveryHandlingTime: s.DeliveryHandlingTime,
			PickupTimeWindow:     s.PickupTimeWindow.toDomain(),
			DeliveryTimeWindow:   s.DeliveryTimeWindow.toDomain(),
			Weight:               s.Weight,
		}
	}

	vehicles := make([]domain.Vehicle, len(p.Vehicles))
	for i, v := range p.Vehicles {
		shifts := make([]domain.Shift, len(v.Shifts))
		for j, sh := range v.Shifts {
			breaks := make([]domain.Break, len(sh.Breaks))
			for k, b := range sh.Breaks {
				option := domain.Optional
				if b.Mandatory {
					option = domain.Mandatory
				}
				breaks[k] = domain.NewBreak(b.AllowedTimeWindow.toDomain(), b.Duration, option, locPtr(b.Location))
			}
			shifts[j] = domain.NewShift(sh.TimeWindow.toDomain(), locPtr(sh.StartLocation), locPtr(sh.EndLocation), breaks,
				domain.ShiftCostOverrides{
					FixedCost:       sh.FixedCost,
					BaseCost:        sh.BaseCost,
					DistanceCost:    sh.DistanceCost,
					TimeCost:        sh.TimeCost,
					WaitingTimeCost: sh.WaitingTimeCost,
					MaxDuration:     sh.MaxDuration,
					MaxDistance:     sh.MaxDistance,
				})
		}
		vehicles[i] = domain.Vehicle{
			ID:                    domain.VehicleID(v.ID),
			Shifts:                shifts,
			FixedCost:             v.FixedCost,
			BaseCost:              v.BaseCost,
			DistanceCost:          v.DistanceCost,
			TimeCost:              v.TimeCost,
			WeightCost:            v.WeightCost,
			WaitingTimeCost:       v.WaitingTimeCost,
			CostPerWeightDistance: v.CostPerWeightDistance,
			MaxWeight:             v.MaxWeight,
		}
	}

	return domain.Problem{
		Locations:             locations,
		Vehicles:              vehicles,
		Shipments:             shipments,
		Matrix:                matrix,
		MaxVehicleWaitingTime: p.MaxVehicleWaitingTime,
	}
}

// Solution is the wire form of domain.Solution.
type Solution struct {
	TotalCost    int64         `json:"totalCost"`
	VehiclePlans []VehiclePlan `json:"vehiclePlans"`
}

type VehiclePlan struct {
	VehicleID string        `json:"vehicleId"`
	Stops     []VehicleStop `json:"stops"`
	Trips     []VehicleTrip `json:"trips"`
}

type VehicleStop struct {
	Location   *string    `json:"location,omitempty"`
	Pickups    []string   `json:"pickups,omitempty"`
	Deliveries []string   `json:"deliveries,omitempty"`
	Arrival    ValueRange `json:"arrival"`
	Departure  ValueRange `json:"departure"`
	Waiting    ValueRange `json:"waiting"`
}

type VehicleTrip struct {
	FromLocation *string `json:"fromLocation,omitempty"`
	ToLocation   *string `json:"toLocation,omitempty"`
	Distance     int64   `json:"distance"`
	Duration     int64   `json:"duration"`
	DistanceCost int64   `json:"distanceCost"`
	TimeCost     int64   `json:"timeCost"`
}

func strPtr(l *domain.LocationID) *string {
	if l == nil {
		return nil
	}
	s := string(*l)
	return &s
}

func shipmentIDs(ids []domain.ShipmentID) []string {
	if len(ids) == 0 {
		return nil
	}
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = string(id)
	}
	return out
}

// FromDomainSolution converts domain.Solution into its wire form.
func FromDomainSolution(s domain.Solution) Solution {
	plans := make([]VehiclePlan, len(s.VehiclePlans))
	for i, plan := range s.VehiclePlans {
		stops := make([]VehicleStop, len(plan.Stops))
		for j, stop := range plan.Stops {
			stops[j] = VehicleStop{
				Location:   strPtr(stop.Location),
				Pickups:    shipmentIDs(stop.Pickups),
				Deliveries: shipmentIDs(stop.Deliveries),
				Arrival:    fromDomainRange(stop.Arrival),
				Departure:  fromDomainRange(stop.Departure),
				Waiting:    fromDomainRange(stop.Waiting),
			}
		}
		trips := make([]VehicleTrip, len(plan.Trips))
		for j, trip := range plan.Trips {
			trips[j] = VehicleTrip{
				FromLocation: strPtr(trip.FromLocation),
				ToLocation:   strPtr(trip.ToLocation),
				Distance:     trip.Distance,
				Duration:     trip.Duration,
				DistanceCost: trip.DistanceCost,
				TimeCost:     trip.TimeCost,
			}
		}
		plans[i] = VehiclePlan{VehicleID: string(plan.Vehicle.ID), Stops: stops, Trips: trips}
	}

	return Solution{TotalCost: s.TotalCost, VehiclePlans: plans}
}
