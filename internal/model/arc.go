package model

// ArcDistance returns the distance between the two nodes at fromIdx and
// toIdx, applying the matrix-self-edge and arbitrary-node transparency
// rules from spec §4.3/§8 uniformly for every caller (callbacks and the
// routing engine's own feasibility simulation both route through here so
// the rule can only be implemented once).
func ArcDistance(m *SolverModel, fromIdx, toIdx int) int64 {
	from, to := m.Nodes[fromIdx], m.Nodes[toIdx]
	if from.IsArbitrary() || to.IsArbitrary() {
		return 0
	}
	if *from.Location == *to.Location {
		return 0
	}
	return m.Problem.Matrix.GetEdge(*from.Location, *to.Location).Distance()
}

// ArcDuration mirrors ArcDistance for travel time.
func ArcDuration(m *SolverModel, fromIdx, toIdx int) int64 {
	from, to := m.Nodes[fromIdx], m.Nodes[toIdx]
	if from.IsArbitrary() || to.IsArbitrary() {
		return 0
	}
	if *from.Location == *to.Location {
		return 0
	}
	return m.Problem.Matrix.GetEdge(*from.Location, *to.Location).Duration()
}
