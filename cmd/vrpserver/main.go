// Command vrpserver exposes vrp.Solve over HTTP: POST /solve and
// GET /healthz. Like cmd/vrpsolve, it is an external collaborator per
// spec.md §1 — request/response marshaling only.
package main

import (
	"flag"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/iancoleman/strcase"

	vrp "github.com/routeforge/vrpsolver"
	"github.com/routeforge/vrpsolver/internal/jsonio"
	"github.com/routeforge/vrpsolver/internal/vrplog"
)

type solveRequest struct {
	Problem            jsonio.Problem `json:"problem"`
	MaximumComputeTime string         `json:"maximumComputeTime,omitempty"`
}

type solveResponse struct {
	HasSolution bool             `json:"hasSolution"`
	Solution    *jsonio.Solution `json:"solution,omitempty"`
	EngineTrace []string         `json:"engineTrace"`
}

// requestLogFields turns a request's notable fields into kebab-style keys
// for the access log, the way the CLI derives its flag names — both sides
// of this module route through the same naming convention rather than
// each inventing its own.
func requestLogFields(req solveRequest) map[string]any {
	return map[string]any{
		strcase.ToKebab("ShipmentCount"): len(req.Problem.Shipments),
		strcase.ToKebab("VehicleCount"):  len(req.Problem.Vehicles),
	}
}

func solveHandler(c *gin.Context) {
	var req solveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	opts := vrp.SolverOptions{}
	if req.MaximumComputeTime != "" {
		d, err := time.ParseDuration(req.MaximumComputeTime)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid maximumComputeTime: " + err.Error()})
			return
		}
		opts.MaximumComputeTime = d
	}

	vrplog.Default.Printf("solve request fields=%v", requestLogFields(req))

	result, err := vrp.Solve(req.Problem.ToDomain(), opts)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	resp := solveResponse{HasSolution: result.HasSolution, EngineTrace: result.EngineTrace}
	if result.HasSolution {
		s := jsonio.FromDomainSolution(*result.Solution)
		resp.Solution = &s
	}
	c.JSON(http.StatusOK, resp)
}

func healthzHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func newRouter() *gin.Engine {
	router := gin.Default()
	router.POST("/solve", solveHandler)
	router.GET("/healthz", healthzHandler)
	return router
}

func main() {
	addr := flag.String("addr", ":8080", "listen address")
	flag.Parse()

	vrplog.Default.Printf("listening on %s", *addr)
	if err := newRouter().Run(*addr); err != nil {
		vrplog.Default.Fatalf("server failed: %v", err)
	}
}
