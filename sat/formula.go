package sat

import "fmt"

// Clause is an ordered, possibly-empty disjunction of literals. Duplicate
// variables are permitted: the solver must remain correct in their
// presence, it is not required to canonicalize them away. ID is a stable
// identifier assigned at formula construction, starting at zero.
type Clause struct {
	Literals []Literal
	ID       int
}

// Len returns the number of literals in the clause.
func (c Clause) Len() int {
	return len(c.Literals)
}

// Formula is an immutable conjunction of clauses over variables 1..NumVars.
// Source is an informational tag (e.g. the originating file name); it never
// affects solving semantics.
type Formula struct {
	NumVars int
	Clauses []Clause
	Source  string
}

// NewFormula builds a Formula from a slice of clauses, each given as a
// sequence of signed, 1-indexed DIMACS-style literals. It returns an error
// if any literal's variable falls outside [1, numVars].
func NewFormula(numVars int, clauses [][]int, source string) (*Formula, error) {
	f := &Formula{
		NumVars: numVars,
		Clauses: make([]Clause, len(clauses)),
		Source:  source,
	}
	for i, lits := range clauses {
		c := Clause{ID: i, Literals: make([]Literal, len(lits))}
		for j, v := range lits {
			av := v
			if av < 0 {
				av = -av
			}
			if v == 0 || av > numVars {
				return nil, fmt.Errorf("clause %d: literal %d out of range for %d variables", i, v, numVars)
			}
			c.Literals[j] = Literal(v)
		}
		f.Clauses[i] = c
	}
	return f, nil
}
