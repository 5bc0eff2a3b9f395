package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/routeforge/vrpsolver/internal/jsonio"
)

func writeProblemFile(t *testing.T, problem jsonio.Problem) string {
	t.Helper()
	raw, err := json.Marshal(problem)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "problem.json")
	require.NoError(t, os.WriteFile(path, raw, 0o644))
	return path
}

func TestRunSolveProducesASolution(t *testing.T) {
	vehicleID := "V0"
	locationID := "L0"
	problem := jsonio.Problem{
		Locations: []jsonio.Location{{ID: locationID}},
		Vehicles: []jsonio.Vehicle{{
			ID: vehicleID,
			Shifts: []jsonio.Shift{
				{TimeWindow: jsonio.ValueRange{Min: 0, Max: 100}, StartLocation: &locationID, EndLocation: &locationID},
			},
		}},
	}
	path := writeProblemFile(t, problem)

	encoded, err := runSolve(path, time.Second)
	require.NoError(t, err)

	var resp output
	require.NoError(t, json.Unmarshal(encoded, &resp))
	assert.True(t, resp.HasSolution)
	require.NotNil(t, resp.Solution)
	assert.Len(t, resp.Solution.VehiclePlans, 1)
}

func TestRunSolveMissingFileReturnsError(t *testing.T) {
	_, err := runSolve(filepath.Join(t.TempDir(), "missing.json"), time.Second)
	assert.Error(t, err)
}

func TestRunSolveInvalidJSONReturnsError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "problem.json")
	require.NoError(t, os.WriteFile(path, []byte("not json"), 0o644))

	_, err := runSolve(path, time.Second)
	assert.Error(t, err)
}

func TestRunSolveInvalidProblemReturnsError(t *testing.T) {
	// A vehicle with zero shifts is rejected by model.BuildModel.
	problem := jsonio.Problem{
		Locations: []jsonio.Location{{ID: "L0"}},
		Vehicles:  []jsonio.Vehicle{{ID: "V0"}},
	}
	path := writeProblemFile(t, problem)

	_, err := runSolve(path, time.Second)
	assert.Error(t, err)
}
