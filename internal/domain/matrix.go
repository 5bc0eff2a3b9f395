package domain

// routeKey is the internal map key for an ordered (from, to) location pair.
type routeKey struct {
	from LocationID
	to   LocationID
}

// DirectedRouteMatrix maps an ordered pair of locations to a RouteEdge. It
// is not assumed symmetric. Self-edges are not stored specially here — the
// "same location is zero cost" rule lives in model.ArcDistance/ArcDuration
// (internal/model), which the callbacks call, since it must hold
// regardless of what the matrix says.
type DirectedRouteMatrix struct {
	edges map[routeKey]RouteEdge
}

// NewDirectedRouteMatrix builds an empty matrix ready for Set calls.
func NewDirectedRouteMatrix() *DirectedRouteMatrix {
	return &DirectedRouteMatrix{edges: make(map[routeKey]RouteEdge)}
}

// Set records the edge from -> to. Building the matrix is an external
// collaborator's job in production use; this setter exists for tests and
// for the CLI/HTTP loaders in cmd/.
func (m *DirectedRouteMatrix) Set(from, to LocationID, edge RouteEdge) {
	m.edges[routeKey{from: from, to: to}] = edge
}

// GetEdge returns the stored edge for from -> to, or Undefined when absent.
func (m *DirectedRouteMatrix) GetEdge(from, to LocationID) RouteEdge {
	if m == nil {
		return UndefinedEdge()
	}
	if edge, ok := m.edges[routeKey{from: from, to: to}]; ok {
		return edge
	}
	return UndefinedEdge()
}
