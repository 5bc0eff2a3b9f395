package engine

import "github.com/routeforge/vrpsolver/internal/vrperr"

// dimensionImpl is the concrete Dimension: a name, the callback that
// drives its per-step accumulation, a maxSlack, a per-vehicle capacity
// vector, whether its cumulative value is pinned to zero at every route
// start, per-vehicle cost coefficients, and any per-node ranges callers
// attached via SetCumulVarRange.
type dimensionImpl struct {
	name        string
	callback    CallbackHandle
	maxSlack    int64
	capacities  []int64
	startAtZero bool

	spanCoeff  []int64
	slackCoeff []int64

	nodeRanges map[int][2]int64
}

func (d *dimensionImpl) Name() string { return d.name }

func (d *dimensionImpl) CumulVar(nodeIndex int) Var {
	return Var{kind: varKindCumul, dim: d.name, node: nodeIndex}
}

func (d *dimensionImpl) SlackVar(nodeIndex int) Var {
	return Var{kind: varKindSlack, dim: d.name, node: nodeIndex}
}

func (d *dimensionImpl) SetSpanCostCoefficientForVehicle(coefficient int64, vehicle int) {
	d.spanCoeff[vehicle] = coefficient
}

func (d *dimensionImpl) SetSlackCostCoefficientForVehicle(coefficient int64, vehicle int) {
	d.slackCoeff[vehicle] = coefficient
}

func (d *dimensionImpl) SetCumulVarRange(nodeIndex int, min, max int64) {
	if d.nodeRanges == nil {
		d.nodeRanges = make(map[int][2]int64)
	}
	d.nodeRanges[nodeIndex] = [2]int64{min, max}
}

type constraintKind int

const (
	constraintEquality constraintKind = iota
	constraintLessOrEqual
)

type constraintRecord struct {
	kind constraintKind
	a, b Var
}

type constraintStore struct {
	records *[]constraintRecord
}

func (s constraintStore) AddEquality(a, b Var) {
	*s.records = append(*s.records, constraintRecord{kind: constraintEquality, a: a, b: b})
}

func (s constraintStore) AddLessOrEqual(a, b Var) {
	*s.records = append(*s.records, constraintRecord{kind: constraintLessOrEqual, a: a, b: b})
}

// LocalSearchEngine is the one RoutingEngine this module binds: a
// cheapest-feasible-insertion constructor plus an Or-opt improvement pass,
// described in full in search.go. Everything in this file is pure
// bookkeeping — registries, dimension construction, the index manager —
// none of it knows what a shipment or a vehicle cost is; that knowledge
// lives entirely in the closures callers register.
type LocalSearchEngine struct {
	nodeCount    int
	vehicleCount int
	starts       []int
	ends         []int
	endSet       map[int]bool

	nextHandle       CallbackHandle
	binaryCallbacks  map[CallbackHandle]func(int, int) int64
	unaryCallbacks   map[CallbackHandle]func(int) int64
	arcCostCallbacks map[CallbackHandle]func(int, int, int) int64

	dimensions map[string]*dimensionImpl
	dimOrder   []string

	fixedCost     []int64
	usedWhenEmpty []bool
	arcCostHandle CallbackHandle
	arcCostSet    bool

	pickupDelivery [][2]int
	constraints    []constraintRecord
}

// NewLocalSearchEngine builds an engine over a dense node space of size
// nodeCount, with one (start, end) index pair per dummy vehicle. Matching
// model.BuildModel's layout, IndexToNode/NodeToIndex are identities: this
// module never shares or compacts nodes across vehicles, so there is no
// index/node distinction to bridge.
func NewLocalSearchEngine(nodeCount int, starts, ends []int) *LocalSearchEngine {
	vehicleCount := len(starts)
	endSet := make(map[int]bool, vehicleCount)
	for _, e := range ends {
		endSet[e] = true
	}
	return &LocalSearchEngine{
		nodeCount:        nodeCount,
		vehicleCount:     vehicleCount,
		starts:           starts,
		ends:             ends,
		endSet:           endSet,
		binaryCallbacks:  make(map[CallbackHandle]func(int, int) int64),
		unaryCallbacks:   make(map[CallbackHandle]func(int) int64),
		arcCostCallbacks: make(map[CallbackHandle]func(int, int, int) int64),
		dimensions:       make(map[string]*dimensionImpl),
		fixedCost:        make([]int64, vehicleCount),
		usedWhenEmpty:    make([]bool, vehicleCount),
	}
}

func (e *LocalSearchEngine) RegisterTransitCallback(fn func(fromIndex, toIndex int) int64) CallbackHandle {
	h := e.nextHandle
	e.nextHandle++
	e.binaryCallbacks[h] = fn
	return h
}

func (e *LocalSearchEngine) RegisterUnaryTransitCallback(fn func(index int) int64) CallbackHandle {
	h := e.nextHandle
	e.nextHandle++
	e.unaryCallbacks[h] = fn
	return h
}

func (e *LocalSearchEngine) RegisterArcCostEvaluator(fn func(vehicle, fromIndex, toIndex int) int64) CallbackHandle {
	h := e.nextHandle
	e.nextHandle++
	e.arcCostCallbacks[h] = fn
	return h
}

func (e *LocalSearchEngine) addDimension(name string, callback CallbackHandle, maxSlack int64, capacities []int64, startAtZero bool) (Dimension, error) {
	if _, exists := e.dimensions[name]; exists {
		return nil, &vrperr.EngineRegistrationError{Dimension: name, Cause: vrperr.ErrEngineRegistration}
	}
	if len(capacities) != e.vehicleCount {
		return nil, &vrperr.EngineRegistrationError{
			Dimension: name,
			Cause:     vrperr.ErrEngineRegistration,
		}
	}
	dim := &dimensionImpl{
		name:        name,
		callback:    callback,
		maxSlack:    maxSlack,
		capacities:  append([]int64(nil), capacities...),
		startAtZero: startAtZero,
		spanCoeff:   make([]int64, e.vehicleCount),
		slackCoeff:  make([]int64, e.vehicleCount),
	}
	e.dimensions[name] = dim
	e.dimOrder = append(e.dimOrder, name)
	return dim, nil
}

func (e *LocalSearchEngine) AddDimension(callback CallbackHandle, maxSlack int64, capacity int64, startAtZero bool, name string) (Dimension, error) {
	capacities := make([]int64, e.vehicleCount)
	for i := range capacities {
		capacities[i] = capacity
	}
	return e.addDimension(name, callback, maxSlack, capacities, startAtZero)
}

func (e *LocalSearchEngine) AddDimensionWithVehicleCapacity(callback CallbackHandle, maxSlack int64, capacities []int64, startAtZero bool, name string) (Dimension, error) {
	return e.addDimension(name, callback, maxSlack, capacities, startAtZero)
}

func (e *LocalSearchEngine) GetMutableDimension(name string) (Dimension, error) {
	dim, ok := e.dimensions[name]
	if !ok {
		return nil, &vrperr.EngineRegistrationError{Dimension: name, Cause: vrperr.ErrEngineRegistration}
	}
	return dim, nil
}

func (e *LocalSearchEngine) SetFixedCostOfVehicle(cost int64, vehicle int) {
	e.fixedCost[vehicle] = cost
}

func (e *LocalSearchEngine) SetVehicleUsedWhenEmpty(used bool, vehicle int) {
	e.usedWhenEmpty[vehicle] = used
}

func (e *LocalSearchEngine) SetArcCostEvaluatorOfAllVehicles(callback CallbackHandle) {
	e.arcCostHandle = callback
	e.arcCostSet = true
}

func (e *LocalSearchEngine) AddPickupAndDelivery(pickupIndex, deliveryIndex int) {
	e.pickupDelivery = append(e.pickupDelivery, [2]int{pickupIndex, deliveryIndex})
}

func (e *LocalSearchEngine) VehicleVar(index int) Var {
	return Var{kind: varKindVehicle, node: index}
}

func (e *LocalSearchEngine) ConstraintStore() ConstraintStore {
	return constraintStore{records: &e.constraints}
}

func (e *LocalSearchEngine) IndexToNode(index int) int { return index }
func (e *LocalSearchEngine) NodeToIndex(node int) int  { return node }
func (e *LocalSearchEngine) Start(vehicle int) int     { return e.starts[vehicle] }
func (e *LocalSearchEngine) End(vehicle int) int       { return e.ends[vehicle] }
func (e *LocalSearchEngine) IsEnd(index int) bool      { return e.endSet[index] }
