package sat

// ActivityTable tracks a non-negative, VSIDS-like score per variable,
// bumped on implication and decayed on conflict epochs. Rather than
// shrinking the table on decay, the shared increment varInc is grown
// instead, which is equivalent in relative ordering and cheaper.
type ActivityTable struct {
	scores   []float64
	varInc   float64
	varDecay float64
}

// activityCeiling triggers a rescale: once any score exceeds it, every
// score and varInc are multiplicatively rescaled back down, preserving
// relative order.
const activityCeiling = 1e100

// NewActivityTable returns a table of numVars+1 scores (index 0 unused),
// all starting at zero, with the given decay factor.
func NewActivityTable(numVars int, varDecay float64) *ActivityTable {
	return &ActivityTable{
		scores:   make([]float64, numVars+1),
		varInc:   1,
		varDecay: varDecay,
	}
}

// Score returns the current activity of variable v.
func (t *ActivityTable) Score(v int) float64 {
	return t.scores[v]
}

// Bump increases v's activity by the current increment, rescaling the
// whole table if the ceiling is exceeded.
func (t *ActivityTable) Bump(v int) {
	t.scores[v] += t.varInc
	if t.scores[v] > activityCeiling {
		for i := range t.scores {
			t.scores[i] *= 1e-100
		}
		t.varInc *= 1e-100
	}
}

// Decay grows the increment so that future bumps count more relative to
// past ones, without touching the table itself.
func (t *ActivityTable) Decay() {
	t.varInc /= t.varDecay
}
