package domain

// Problem is the immutable input to the solver: the universe of locations,
// vehicles, and shipments, the route matrix between locations, and an
// optional global waiting-time cap.
type Problem struct {
	Locations             []Location
	Vehicles              []Vehicle
	Shipments             []Shipment
	Matrix                *DirectedRouteMatrix
	MaxVehicleWaitingTime *int64
}
