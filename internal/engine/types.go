package engine

import "time"

// CallbackHandle is an opaque reference to a registered transit, unary
// transit, or arc-cost callback. Handles are only ever passed back into
// the engine that issued them.
type CallbackHandle int

type varKind int

const (
	varKindVehicle varKind = iota
	varKindCumul
	varKindSlack
)

// Var is an opaque reference to a pre-search decision variable: which
// vehicle visits a node, or a dimension's cumulative/slack value at a
// node. Var values are only meaningful to the engine that produced them.
type Var struct {
	kind varKind
	dim  string
	node int
}

// Dimension tracks an accumulated quantity (time, distance, weight, ...)
// along every vehicle's route and lets callers price its span and slack.
type Dimension interface {
	Name() string
	CumulVar(nodeIndex int) Var
	SlackVar(nodeIndex int) Var
	SetSpanCostCoefficientForVehicle(coefficient int64, vehicle int)
	SetSlackCostCoefficientForVehicle(coefficient int64, vehicle int)
	// SetCumulVarRange constrains the dimension's cumulative value at a
	// node to [min, max]. Used to attach time windows to nodes; dimensions
	// with no inherent per-node window (distance, weight) simply go unused
	// by callers.
	SetCumulVarRange(nodeIndex int, min, max int64)
}

// ConstraintStore accumulates constraints between Vars. The concrete
// engine re-checks every recorded constraint once after search, in
// buildAssignment: construction is built to satisfy them by design, so a
// violation there means the construction algorithm itself has a bug, not
// that the caller needs to handle a new failure mode.
type ConstraintStore interface {
	AddEquality(a, b Var)
	AddLessOrEqual(a, b Var)
}

// Assignment is the post-search, concrete routing: for every node the
// engine decided to visit, which node follows it, and the resolved
// cumulative/slack values for each dimension.
type Assignment interface {
	NextIndex(index int) int
	CumulVar(dim Dimension, index int) (min, max int64)
	SlackVar(dim Dimension, index int) (min, max int64)
	Start(vehicle int) int
	End(vehicle int) int
	IsEnd(index int) bool
	// ObjectiveValue returns the total cost of this assignment: every
	// vehicle's fixed cost (if used), every dimension's span and slack
	// cost, and the arc-cost evaluator's running total — mirrors the
	// method of the same name on a real constraint-solver assignment.
	ObjectiveValue() int64
}

// SearchParameters bounds a single SearchWithParameters call.
type SearchParameters struct {
	// TimeLimit caps search wall-clock time. Zero means unbounded.
	TimeLimit time.Duration
}

// RoutingEngine is the boundary spec §6 describes: index space, transit
// callbacks, dimensions, a constraint store, and a single search call.
// Implementations must offer at least these operations; LocalSearchEngine
// adds SetCumulVarRange to Dimension (above) because node time windows
// have to attach somewhere and the minimal list doesn't name another way.
type RoutingEngine interface {
	RegisterTransitCallback(fn func(fromIndex, toIndex int) int64) CallbackHandle
	RegisterUnaryTransitCallback(fn func(index int) int64) CallbackHandle
	RegisterArcCostEvaluator(fn func(vehicle, fromIndex, toIndex int) int64) CallbackHandle

	AddDimension(callback CallbackHandle, maxSlack int64, capacity int64, startAtZero bool, name string) (Dimension, error)
	AddDimensionWithVehicleCapacity(callback CallbackHandle, maxSlack int64, capacities []int64, startAtZero bool, name string) (Dimension, error)
	GetMutableDimension(name string) (Dimension, error)

	SetFixedCostOfVehicle(cost int64, vehicle int)
	SetVehicleUsedWhenEmpty(used bool, vehicle int)
	SetArcCostEvaluatorOfAllVehicles(callback CallbackHandle)
	AddPickupAndDelivery(pickupIndex, deliveryIndex int)
	VehicleVar(index int) Var
	ConstraintStore() ConstraintStore

	IndexToNode(index int) int
	NodeToIndex(node int) int
	Start(vehicle int) int
	End(vehicle int) int
	IsEnd(index int) bool

	SearchWithParameters(params SearchParameters) (Assignment, error)
}
