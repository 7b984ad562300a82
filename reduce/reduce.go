package reduce

import (
	"log"
	"time"

	"github.com/rhartert/yasat/sat"
)

// Reduce transforms f into an equisatisfiable 3-CNF formula, applying a
// per-clause-size rule: clauses of size 0 are preserved empty, size 1 and 2 clauses are padded
// with fresh auxiliary variables, size 3 clauses pass through unchanged,
// and clauses of size k >= 4 are replaced by a chain of k-3 auxiliary
// variables. Auxiliary variables are minted in original-clause order
// starting at f.NumVars+1, so the same input always yields the same
// output.
func Reduce(f *sat.Formula) (*sat.Formula, Stats) {
	start := time.Now()

	stats := Stats{
		OriginalVars:     f.NumVars,
		OriginalClauses:  len(f.Clauses),
		OriginalSizeDist: sizeDist(f),
	}

	nextAux := f.NumVars + 1
	var clauses [][]int

	for _, c := range f.Clauses {
		lits := literalInts(c)
		switch len(lits) {
		case 0:
			clauses = append(clauses, []int{})
		case 1:
			y, z := nextAux, nextAux+1
			nextAux += 2
			x := lits[0]
			clauses = append(clauses,
				[]int{x, y, z}, []int{x, y, -z}, []int{x, -y, z}, []int{x, -y, -z})
		case 2:
			y := nextAux
			nextAux++
			a, b := lits[0], lits[1]
			clauses = append(clauses, []int{a, b, y}, []int{a, b, -y})
		case 3:
			clauses = append(clauses, lits)
		default:
			clauses = append(clauses, reduceSizeK(lits, &nextAux)...)
		}
	}

	reduced, err := sat.NewFormula(nextAux-1, clauses, f.Source)
	if err != nil {
		log.Fatalf("reduce: invariant violated, constructed out-of-range literal: %v", err)
	}

	stats.ReducedVars = reduced.NumVars
	stats.ReducedClauses = len(reduced.Clauses)
	stats.AuxVars = reduced.NumVars - f.NumVars
	if stats.OriginalVars > 0 {
		stats.VarRatio = float64(stats.ReducedVars) / float64(stats.OriginalVars)
	}
	if stats.OriginalClauses > 0 {
		stats.ClauseRatio = float64(stats.ReducedClauses) / float64(stats.OriginalClauses)
	}
	stats.TimeMs = float64(time.Since(start).Microseconds()) / 1000.0

	return reduced, stats
}

// reduceSizeK chains a clause of k>=4 literals into k-2 clauses of three
// literals each, threading k-3 fresh auxiliary variables through *nextAux.
func reduceSizeK(lits []int, nextAux *int) [][]int {
	k := len(lits)
	aux := make([]int, k-3)
	for i := range aux {
		aux[i] = *nextAux
		*nextAux++
	}

	result := make([][]int, 0, k-2)
	result = append(result, []int{lits[0], lits[1], aux[0]})
	for i := 0; i < k-4; i++ {
		result = append(result, []int{-aux[i], lits[i+2], aux[i+1]})
	}
	result = append(result, []int{-aux[k-4], lits[k-2], lits[k-1]})
	return result
}

func literalInts(c sat.Clause) []int {
	out := make([]int, len(c.Literals))
	for i, l := range c.Literals {
		out[i] = int(l)
	}
	return out
}

func sizeDist(f *sat.Formula) map[int]int {
	dist := map[int]int{}
	for _, c := range f.Clauses {
		dist[c.Len()]++
	}
	return dist
}
