// Command vrpsolve is the flag-driven batch CLI: read a Problem from a
// JSON file, call vrp.Solve, write the Solution back out. It is an
// external collaborator per spec.md §1 — no solver logic lives here,
// only marshaling and flag plumbing.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/iancoleman/strcase"
	"github.com/itzg/go-flagsfiller"

	vrp "github.com/routeforge/vrpsolver"
	"github.com/routeforge/vrpsolver/internal/jsonio"
	"github.com/routeforge/vrpsolver/internal/vrplog"
)

// config is the CLI-flag mirror of vrp.SolverOptions plus the file paths
// the core itself never touches.
type config struct {
	ProblemFile        string        `default:"" usage:"path to the input Problem JSON file"`
	OutputFile         string        `default:"" usage:"path to write the Solution JSON to (stdout if empty)"`
	MaximumComputeTime time.Duration `default:"30s" usage:"search time budget"`
}

type output struct {
	HasSolution bool             `json:"hasSolution"`
	Solution    *jsonio.Solution `json:"solution,omitempty"`
	EngineTrace []string         `json:"engineTrace"`
}

// runSolve reads a wire Problem from problemFile, solves it, and returns the
// encoded response body. Split out from main so the CLI's behavior can be
// tested without touching the global flag.CommandLine.
func runSolve(problemFile string, maximumComputeTime time.Duration) ([]byte, error) {
	raw, err := os.ReadFile(problemFile)
	if err != nil {
		return nil, fmt.Errorf("reading problem file: %w", err)
	}

	var wireProblem jsonio.Problem
	if err := json.Unmarshal(raw, &wireProblem); err != nil {
		return nil, fmt.Errorf("parsing problem file: %w", err)
	}

	result, err := vrp.Solve(wireProblem.ToDomain(), vrp.SolverOptions{MaximumComputeTime: maximumComputeTime})
	if err != nil {
		return nil, fmt.Errorf("solve failed: %w", err)
	}

	resp := output{HasSolution: result.HasSolution, EngineTrace: result.EngineTrace}
	if result.HasSolution {
		s := jsonio.FromDomainSolution(*result.Solution)
		resp.Solution = &s
	}

	encoded, err := json.MarshalIndent(resp, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encoding solution: %w", err)
	}
	return encoded, nil
}

func main() {
	var cfg config
	filler := flagsfiller.New()
	if err := filler.Fill(flag.CommandLine, &cfg); err != nil {
		vrplog.Default.Fatalf("configuring flags: %v", err)
	}
	flag.Parse()

	for _, field := range []string{"ProblemFile", "OutputFile", "MaximumComputeTime"} {
		vrplog.Default.Printf("flag --%s bound", strcase.ToKebab(field))
	}

	if cfg.ProblemFile == "" {
		vrplog.Default.Fatalf("--problem-file is required")
	}

	encoded, err := runSolve(cfg.ProblemFile, cfg.MaximumComputeTime)
	if err != nil {
		vrplog.Default.Fatalf("%v", err)
	}

	if cfg.OutputFile == "" {
		fmt.Println(string(encoded))
		return
	}
	if err := os.WriteFile(cfg.OutputFile, encoded, 0o644); err != nil {
		vrplog.Default.Fatalf("writing output file: %v", err)
	}
}
