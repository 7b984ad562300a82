package reduce

import "github.com/rhartert/yasat/sat"

// ProjectWitness drops every literal of a whose variable exceeds
// originalVars, recovering a witness for the pre-reduction formula from a
// satisfying assignment of its 3-CNF reduction.
func ProjectWitness(a *sat.Assignment, originalVars int) []int {
	var lits []int
	limit := originalVars
	if av := a.NumVars(); av < limit {
		limit = av
	}
	for v := 1; v <= limit; v++ {
		if !a.Contains(v) {
			continue
		}
		if a.Value(v) {
			lits = append(lits, v)
		} else {
			lits = append(lits, -v)
		}
	}
	return lits
}
