package main

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/routeforge/vrpsolver/internal/jsonio"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func doRequest(t *testing.T, router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestHealthzReportsOK(t *testing.T) {
	rec := doRequest(t, newRouter(), http.MethodGet, "/healthz", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestSolveHandlerReturnsASolution(t *testing.T) {
	vehicleID, locationID := "V0", "L0"
	req := solveRequest{
		Problem: jsonio.Problem{
			Locations: []jsonio.Location{{ID: locationID}},
			Vehicles: []jsonio.Vehicle{{
				ID: vehicleID,
				Shifts: []jsonio.Shift{
					{TimeWindow: jsonio.ValueRange{Min: 0, Max: 100}, StartLocation: &locationID, EndLocation: &locationID},
				},
			}},
		},
	}

	rec := doRequest(t, newRouter(), http.MethodPost, "/solve", req)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp solveResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.HasSolution)
	require.NotNil(t, resp.Solution)
}

func TestSolveHandlerRejectsMalformedJSON(t *testing.T) {
	router := newRouter()
	req := httptest.NewRequest(http.MethodPost, "/solve", bytes.NewReader([]byte("{not json")))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSolveHandlerRejectsInvalidComputeTime(t *testing.T) {
	req := solveRequest{
		Problem:            jsonio.Problem{Locations: []jsonio.Location{{ID: "L0"}}},
		MaximumComputeTime: "not-a-duration",
	}

	rec := doRequest(t, newRouter(), http.MethodPost, "/solve", req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSolveHandlerRejectsInvalidProblem(t *testing.T) {
	req := solveRequest{
		Problem: jsonio.Problem{
			Locations: []jsonio.Location{{ID: "L0"}},
			Vehicles:  []jsonio.Vehicle{{ID: "V0"}}, // no shifts: invalid
		},
	}

	rec := doRequest(t, newRouter(), http.MethodPost, "/solve", req)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}
