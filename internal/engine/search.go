package engine

import (
	"fmt"
	"time"

	"github.com/routeforge/vrpsolver/internal/domain"
	"github.com/routeforge/vrpsolver/internal/vrperr"
)

// simResult is the per-dimension outcome of walking a candidate route:
// the resolved cumulative and slack value at each route position.
type simResult struct {
	cumul map[string][]int64
	slack map[string][]int64
}

// simulateRoute walks route (a sequence of node indices, start..end)
// for the given vehicle, evaluating every registered dimension against
// its own callback, capacity, maxSlack, and any per-node ranges. It
// knows nothing about what "time" or "weight" means; a dimension is just
// a name with a callback and bounds.
func (e *LocalSearchEngine) simulateRoute(vehicle int, route []int) (ok bool, result simResult) {
	result = simResult{cumul: make(map[string][]int64), slack: make(map[string][]int64)}
	n := len(route)

	for _, name := range e.dimOrder {
		dim := e.dimensions[name]
		binaryFn, isBinary := e.binaryCallbacks[dim.callback]
		unaryFn, isUnary := e.unaryCallbacks[dim.callback]

		cv := make([]int64, n)
		sv := make([]int64, n)

		init := int64(0)
		if !dim.startAtZero {
			if r, has := dim.nodeRanges[route[0]]; has {
				init = r[0]
			}
		}
		cv[0] = init
		if !e.withinNodeRange(dim, route[0], cv[0]) {
			return false, simResult{}
		}
		if cv[0] < 0 || cv[0] > dim.capacities[vehicle] {
			return false, simResult{}
		}

		for i := 1; i < n; i++ {
			var step int64
			switch {
			case isBinary:
				step = binaryFn(route[i-1], route[i])
			case isUnary:
				step = unaryFn(route[i])
			}
			raw := domain.SaturatingAdd(cv[i-1], step)

			wait := int64(0)
			if r, has := dim.nodeRanges[route[i]]; has && raw < r[0] {
				wait = r[0] - raw
			}
			if wait > dim.maxSlack {
				return false, simResult{}
			}
			actual := domain.SaturatingAdd(raw, wait)
			if !e.withinNodeRange(dim, route[i], actual) {
				return false, simResult{}
			}
			if actual < 0 || actual > dim.capacities[vehicle] {
				return false, simResult{}
			}
			cv[i] = actual
			sv[i] = wait
		}

		result.cumul[name] = cv
		result.slack[name] = sv
	}

	return true, result
}

func (e *LocalSearchEngine) withinNodeRange(dim *dimensionImpl, node int, value int64) bool {
	r, has := dim.nodeRanges[node]
	if !has {
		return true
	}
	return value >= r[0] && value <= r[1]
}

// routeCost prices a fully simulated route: fixed cost if used (or
// always, when the vehicle is marked used-when-empty), every dimension's
// span and slack cost, and the arc-cost evaluator's running total. This
// is the entire objective function, assembled purely from what callers
// registered — spec §4.5's six configurators are exactly what populates
// these numbers.
func (e *LocalSearchEngine) routeCost(vehicle int, route []int, sim simResult) int64 {
	var total int64
	used := len(route) > 2
	if used || e.usedWhenEmpty[vehicle] {
		total = domain.SaturatingAdd(total, e.fixedCost[vehicle])
	}

	for _, name := range e.dimOrder {
		dim := e.dimensions[name]
		cv := sim.cumul[name]
		sv := sim.slack[name]
		if len(cv) == 0 {
			continue
		}
		span := cv[len(cv)-1] - cv[0]
		if span < 0 {
			span = -span
		}
		var totalSlack int64
		for _, s := range sv {
			totalSlack = domain.SaturatingAdd(totalSlack, s)
		}
		total = domain.SaturatingAdd(total, domain.SaturatingMul(dim.spanCoeff[vehicle], span))
		total = domain.SaturatingAdd(total, domain.SaturatingMul(dim.slackCoeff[vehicle], totalSlack))
	}

	if e.arcCostSet {
		fn := e.arcCostCallbacks[e.arcCostHandle]
		for i := 1; i < len(route); i++ {
			total = domain.SaturatingAdd(total, fn(vehicle, route[i-1], route[i]))
		}
	}

	return total
}

// insertPair returns the route with pickup inserted at position pickupPos
// and delivery inserted at position deliveryPos of the ORIGINAL route
// (deliveryPos >= pickupPos; the pickup's own shift is accounted for).
func insertPair(route []int, pickup, delivery, pickupPos, deliveryPos int) []int {
	out := make([]int, 0, len(route)+2)
	out = append(out, route[:pickupPos]...)
	out = append(out, pickup)
	out = append(out, route[pickupPos:deliveryPos]...)
	out = append(out, delivery)
	out = append(out, route[deliveryPos:]...)
	return out
}

type candidate struct {
	vehicle  int
	route    []int
	sim      simResult
	cost     int64
	feasible bool
}

// bestInsertion scans every vehicle and every (pickupPos, deliveryPos)
// pair for the cheapest feasible place to add (pickup, delivery),
// skipping excluded (if >= 0, a vehicle currently holding the pair, so it
// isn't re-offered itself during improvement).
func (e *LocalSearchEngine) bestInsertion(routes [][]int, pickup, delivery int, exclude int) (candidate, bool) {
	var best candidate
	found := false

	for v := 0; v < e.vehicleCount; v++ {
		if v == exclude {
			continue
		}
		route := routes[v]
		for pickupPos := 1; pickupPos < len(route); pickupPos++ {
			for deliveryPos := pickupPos; deliveryPos < len(route); deliveryPos++ {
				candidateRoute := insertPair(route, pickup, delivery, pickupPos, deliveryPos)
				ok, sim := e.simulateRoute(v, candidateRoute)
				if !ok {
					continue
				}
				cost := e.routeCost(v, candidateRoute, sim)
				if !found || cost < best.cost {
					best = candidate{vehicle: v, route: candidateRoute, sim: sim, cost: cost, feasible: true}
					found = true
				}
			}
		}
	}
	return best, found
}

// removePair returns route with the pickup and delivery node indices
// removed, preserving order of everything else.
func removePair(route []int, pickup, delivery int) []int {
	out := make([]int, 0, len(route)-2)
	for _, idx := range route {
		if idx == pickup || idx == delivery {
			continue
		}
		out = append(out, idx)
	}
	return out
}

// SearchWithParameters runs cheapest-feasible-insertion construction
// followed by a bounded Or-opt improvement pass, both respecting
// params.TimeLimit. It always succeeds with every vehicle's route at
// least holding its own start/end; individual pickup/delivery pairs that
// never found a feasible home are simply absent from every route (spec
// §7's NoSolution is reserved for the case where not even an empty
// assignment makes sense — no vehicles at all).
func (e *LocalSearchEngine) SearchWithParameters(params SearchParameters) (Assignment, error) {
	if e.vehicleCount == 0 {
		return nil, nil
	}

	var deadline time.Time
	hasDeadline := params.TimeLimit > 0
	if hasDeadline {
		deadline = time.Now().Add(params.TimeLimit)
	}
	outOfTime := func() bool { return hasDeadline && time.Now().After(deadline) }

	routes := make([][]int, e.vehicleCount)
	sims := make([]simResult, e.vehicleCount)
	for v := 0; v < e.vehicleCount; v++ {
		routes[v] = []int{e.starts[v], e.ends[v]}
		_, sims[v] = e.simulateRoute(v, routes[v])
	}

	assignedVehicle := make(map[int]int) // pickup index -> vehicle

	for _, pair := range e.pickupDelivery {
		if outOfTime() {
			break
		}
		pickup, delivery := pair[0], pair[1]
		best, ok := e.bestInsertion(routes, pickup, delivery, -1)
		if !ok {
			continue
		}
		routes[best.vehicle] = best.route
		sims[best.vehicle] = best.sim
		assignedVehicle[pickup] = best.vehicle
	}

	// Or-opt improvement: try relocating each assigned pair to a cheaper
	// position, possibly on another vehicle. A small, fixed pass count
	// keeps this bounded without needing its own convergence detection
	// beyond "no improving move found".
	for pass := 0; pass < 2 && !outOfTime(); pass++ {
		improved := false
		for _, pair := range e.pickupDelivery {
			if outOfTime() {
				break
			}
			pickup, delivery := pair[0], pair[1]
			from, ok := assignedVehicle[pickup]
			if !ok {
				continue
			}
			currentCost := e.routeCost(from, routes[from], sims[from])
			withoutPair := removePair(routes[from], pickup, delivery)
			okSim, simWithout := e.simulateRoute(from, withoutPair)
			if !okSim {
				continue
			}
			baseCost := e.routeCost(from, withoutPair, simWithout)

			// Evaluate candidate insertions against a view of the world
			// with the pair already pulled out of its current route —
			// otherwise bestInsertion would be offered routes[from] still
			// containing the pair and could "insert" a duplicate.
			probe := make([][]int, len(routes))
			copy(probe, routes)
			probe[from] = withoutPair
			best, found := e.bestInsertion(probe, pickup, delivery, -1)
			if !found {
				continue
			}
			var savings int64
			if best.vehicle == from {
				savings = currentCost - best.cost
			} else {
				otherCurrent := e.routeCost(best.vehicle, routes[best.vehicle], sims[best.vehicle])
				savings = (currentCost + otherCurrent) - (baseCost + best.cost)
			}
			if savings <= 0 {
				continue
			}

			if best.vehicle == from {
				routes[from] = best.route
				sims[from] = best.sim
			} else {
				routes[from] = withoutPair
				sims[from] = simWithout
				routes[best.vehicle] = best.route
				sims[best.vehicle] = best.sim
				assignedVehicle[pickup] = best.vehicle
			}
			improved = true
		}
		if !improved {
			break
		}
	}

	return e.buildAssignment(routes, sims)
}

func (e *LocalSearchEngine) buildAssignment(routes [][]int, sims []simResult) (Assignment, error) {
	var objective int64
	for v, route := range routes {
		objective = domain.SaturatingAdd(objective, e.routeCost(v, route, sims[v]))
	}

	next := make(map[int]int)
	nodeVehicle := make(map[int]int)
	nodeCumul := make(map[string]map[int]int64, len(e.dimOrder))
	nodeSlack := make(map[string]map[int]int64, len(e.dimOrder))
	for _, name := range e.dimOrder {
		nodeCumul[name] = make(map[int]int64)
		nodeSlack[name] = make(map[int]int64)
	}

	for v, route := range routes {
		for i := 0; i+1 < len(route); i++ {
			next[route[i]] = route[i+1]
		}
		for _, node := range route {
			nodeVehicle[node] = v
		}
		sim := sims[v]
		for _, name := range e.dimOrder {
			cv := sim.cumul[name]
			sv := sim.slack[name]
			for i, node := range route {
				nodeCumul[name][node] = cv[i]
				nodeSlack[name][node] = sv[i]
			}
		}
	}

	if err := e.checkConstraints(nodeVehicle, nodeCumul, nodeSlack); err != nil {
		return nil, err
	}

	return &localAssignment{
		eng:       e,
		next:      next,
		nodeCumul: nodeCumul,
		nodeSlack: nodeSlack,
		objective: objective,
	}, nil
}

// checkConstraints re-verifies every constraint recorded through
// ConstraintStore against the final routed assignment. Construction only
// ever offers a pickup and its delivery a home together (see insertPair),
// so this should never fire; it exists so a future construction bug trips
// a clear EngineSearchError instead of silently shipping a broken plan. A
// constraint whose endpoint was never routed (the pair was dropped, not
// misplaced) is skipped rather than treated as a violation.
func (e *LocalSearchEngine) checkConstraints(nodeVehicle map[int]int, nodeCumul, nodeSlack map[string]map[int]int64) error {
	for _, c := range e.constraints {
		a, aok := resolveVar(c.a, nodeVehicle, nodeCumul, nodeSlack)
		b, bok := resolveVar(c.b, nodeVehicle, nodeCumul, nodeSlack)
		if !aok || !bok {
			continue
		}
		switch c.kind {
		case constraintEquality:
			if a != b {
				return &vrperr.EngineSearchError{Cause: fmt.Errorf("constraint violated: %d != %d", a, b)}
			}
		case constraintLessOrEqual:
			if a > b {
				return &vrperr.EngineSearchError{Cause: fmt.Errorf("constraint violated: %d > %d", a, b)}
			}
		}
	}
	return nil
}

func resolveVar(v Var, nodeVehicle map[int]int, nodeCumul, nodeSlack map[string]map[int]int64) (int64, bool) {
	switch v.kind {
	case varKindVehicle:
		vehicle, ok := nodeVehicle[v.node]
		return int64(vehicle), ok
	case varKindCumul:
		val, ok := nodeCumul[v.dim][v.node]
		return val, ok
	case varKindSlack:
		val, ok := nodeSlack[v.dim][v.node]
		return val, ok
	default:
		return 0, false
	}
}
