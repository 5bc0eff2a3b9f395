// Package vrp is the solver's public entry point: Solve(Problem) builds
// the internal model, wires callbacks/dimensions/configurators against a
// routing engine, searches, and reconstructs a Solution — the fixed
// nine-step sequence spec §4.7 describes (reset, build model, derive
// index arrays, instantiate the engine, register callbacks, register
// dimensions, apply configurators, search, reconstruct output).
package vrp

import (
	"time"

	"github.com/routeforge/vrpsolver/internal/callback"
	"github.com/routeforge/vrpsolver/internal/configure"
	"github.com/routeforge/vrpsolver/internal/dimension"
	"github.com/routeforge/vrpsolver/internal/domain"
	"github.com/routeforge/vrpsolver/internal/engine"
	"github.com/routeforge/vrpsolver/internal/model"
	"github.com/routeforge/vrpsolver/internal/output"
	"github.com/routeforge/vrpsolver/internal/vrplog"
)

// SolverOptions configures a single Solve call.
type SolverOptions struct {
	// MaximumComputeTime caps the engine's search. Zero means unbounded.
	MaximumComputeTime time.Duration
}

// SolverOutput is the result of a Solve call. When HasSolution is false,
// Solution is nil — this is the NoSolution case (spec §7), not an error.
type SolverOutput struct {
	HasSolution bool
	Solution    *domain.Solution
	// EngineTrace carries diagnostic breadcrumbs naming each pipeline stage
	// Solve passed through — never read by the caller's business logic,
	// only for debugging.
	EngineTrace []string
}

// Solve runs the full pipeline against problem. It returns an error only
// for the fatal classes in spec §7 (invalid input, engine registration
// failure, engine search failure); a search that legitimately finds
// nothing comes back as SolverOutput{HasSolution: false}, nil.
func Solve(problem domain.Problem, opts SolverOptions) (SolverOutput, error) {
	var trace []string
	trace = append(trace, "building internal model")

	m, err := model.BuildModel(problem)
	if err != nil {
		return SolverOutput{}, err
	}

	starts := make([]int, len(m.DummyVehicleNodes))
	ends := make([]int, len(m.DummyVehicleNodes))
	for i, dv := range m.DummyVehicleNodes {
		starts[i] = dv.Start
		ends[i] = dv.End
	}

	trace = append(trace, "instantiating routing engine")
	eng := engine.NewLocalSearchEngine(m.NodeCount(), starts, ends)

	trace = append(trace, "registering callbacks")
	handles := callback.Register(eng, m)

	trace = append(trace, "registering dimensions")
	dims, err := dimension.RegisterAll(eng, m, handles, problem.MaxVehicleWaitingTime)
	if err != nil {
		vrplog.Default.Printf("dimension registration failed: %v", err)
		return SolverOutput{}, err
	}

	trace = append(trace, "applying configurators")
	configure.ApplyAll(eng, m, handles, dims)

	trace = append(trace, "searching")
	assignment, err := eng.SearchWithParameters(engine.SearchParameters{TimeLimit: opts.MaximumComputeTime})
	if err != nil {
		vrplog.Default.Printf("engine search failed: %v", err)
		return SolverOutput{}, err
	}
	if assignment == nil {
		trace = append(trace, "no assignment found")
		return SolverOutput{HasSolution: false, EngineTrace: trace}, nil
	}

	trace = append(trace, "reconstructing output")
	solution := output.Build(m, assignment, dims)

	return SolverOutput{
		HasSolution: true,
		Solution:    &solution,
		EngineTrace: trace,
	}, nil
}
