package engine

// localAssignment is the Assignment LocalSearchEngine.SearchWithParameters
// returns: per-node successor links and per-dimension cumulative/slack
// values, flattened out of the winning routes. Every value is resolved
// to a single point (min == max): construction is one deterministic pass
// with no branching left unexplored to report as a range.
type localAssignment struct {
	eng       *LocalSearchEngine
	next      map[int]int
	nodeCumul map[string]map[int]int64
	nodeSlack map[string]map[int]int64
	objective int64
}

func (a *localAssignment) ObjectiveValue() int64 { return a.objective }

func (a *localAssignment) NextIndex(index int) int {
	return a.next[index]
}

func (a *localAssignment) CumulVar(dim Dimension, index int) (min, max int64) {
	v := a.nodeCumul[dim.Name()][index]
	return v, v
}

func (a *localAssignment) SlackVar(dim Dimension, index int) (min, max int64) {
	v := a.nodeSlack[dim.Name()][index]
	return v, v
}

func (a *localAssignment) Start(vehicle int) int { return a.eng.Start(vehicle) }
func (a *localAssignment) End(vehicle int) int   { return a.eng.End(vehicle) }
func (a *localAssignment) IsEnd(index int) bool  { return a.eng.IsEnd(index) }
