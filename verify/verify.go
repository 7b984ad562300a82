// Package verify checks a candidate assignment against a formula and
// reports which clauses, if any, it fails to satisfy.
package verify

import "github.com/rhartert/yasat/sat"

const maxFalsifiedClauses = 10

// Verdict is the outcome of checking an assignment against a formula.
// FalsifiedClauses holds the indices (into Formula.Clauses) of the first
// falsified clauses encountered, bounded to maxFalsifiedClauses entries.
type Verdict struct {
	Satisfied        bool
	FalsifiedClauses []int
}

// Verify evaluates every clause of f against a, asking whether any literal
// is true. A clause with no true literal is falsified whether or not it
// still has unset literals under a: a partial assignment never vacuously
// satisfies a clause.
func Verify(f *sat.Formula, a *sat.Assignment) Verdict {
	v := Verdict{Satisfied: true}
	for i, c := range f.Clauses {
		if clauseSatisfied(c, a) {
			continue
		}
		v.Satisfied = false
		if len(v.FalsifiedClauses) < maxFalsifiedClauses {
			v.FalsifiedClauses = append(v.FalsifiedClauses, i)
		}
	}
	return v
}

func clauseSatisfied(c sat.Clause, a *sat.Assignment) bool {
	for _, l := range c.Literals {
		v := l.Var()
		if !a.Contains(v) {
			continue
		}
		if a.Value(v) == l.IsPositive() {
			return true
		}
	}
	return false
}
