package sat

// Assignment is a partial mapping from variables 1..N to truth values,
// together with a trail recording assignment order. The trail is the basis
// for chronological backtracking: Assign appends to it and BacktrackTo pops
// its tail, unsetting each popped variable. Across any sequence of Assign
// and BacktrackTo calls a variable appears at most once on the trail and
// set-status and trail-membership agree. Unassign clears a value without
// touching the trail, so after a bare Unassign the variable is still on
// the trail and Len and IsTotal, which are computed from the trail, still
// count it.
type Assignment struct {
	values []LBool
	trail  []int
}

// NewAssignment returns an empty assignment over variables 1..numVars.
func NewAssignment(numVars int) *Assignment {
	return &Assignment{values: make([]LBool, numVars+1)}
}

// Contains reports whether v is set.
func (a *Assignment) Contains(v int) bool {
	return v > 0 && v < len(a.values) && a.values[v] != Unknown
}

// Value returns the truth value assigned to v. It is only meaningful when
// Contains(v) is true.
func (a *Assignment) Value(v int) bool {
	return a.values[v] == True
}

// Assign sets v to value and appends it to the trail. Assigning an
// already-set variable is a no-op regardless of value: callers are
// expected not to flip an assigned variable without first unassigning it,
// and doing so anyway is a programmer error with no defined effect here.
// Assigning a variable outside [1, N] is also a silent no-op: these are
// invariant violations, not data-dependent conditions, so they are guarded
// rather than surfaced as errors.
func (a *Assignment) Assign(v int, value bool) {
	if v <= 0 || v >= len(a.values) || a.Contains(v) {
		return
	}
	a.values[v] = Lift(value)
	a.trail = append(a.trail, v)
}

// Unassign marks v unset without touching the trail. Callers pop the trail
// via BacktrackTo; Unassign on its own is for the rare case (MOMS/Naive
// backtracking) where a caller assigned and immediately wants to retract a
// single variable it knows to be the trail's tail.
func (a *Assignment) Unassign(v int) {
	if v <= 0 || v >= len(a.values) {
		return
	}
	a.values[v] = Unknown
}

// BacktrackTo pops the trail down to length k, unassigning every popped
// variable. k must be in [0, Len()].
func (a *Assignment) BacktrackTo(k int) {
	for len(a.trail) > k {
		v := a.trail[len(a.trail)-1]
		a.trail = a.trail[:len(a.trail)-1]
		a.Unassign(v)
	}
}

// Len returns the trail length, which is the number of set variables
// unless a bare Unassign has left an unset variable on the trail.
func (a *Assignment) Len() int {
	return len(a.trail)
}

// NumVars returns the number of variables the assignment is defined over.
func (a *Assignment) NumVars() int {
	return len(a.values) - 1
}

// IsTotal reports whether every variable in [1, NumVars()] is set, by
// comparing Len() with NumVars(); it carries the same caveat as Len.
func (a *Assignment) IsTotal() bool {
	return a.Len() == a.NumVars()
}

// litValue returns the LBool value of literal l under this assignment.
func (a *Assignment) litValue(l Literal) LBool {
	v := a.values[l.Var()]
	if v == Unknown {
		return Unknown
	}
	if l.IsPositive() {
		return v
	}
	return v.Opposite()
}

// satisfiedLit reports whether l is true under this assignment.
func (a *Assignment) satisfiedLit(l Literal) bool {
	return a.litValue(l) == True
}

// Verify reports whether every clause of f has at least one literal that is
// true under this assignment. A clause with no true literal is falsified
// whether or not it has unset literals: a partial assignment never
// vacuously satisfies a clause.
func (a *Assignment) Verify(f *Formula) bool {
	for _, c := range f.Clauses {
		if !a.satisfiesClause(c) {
			return false
		}
	}
	return true
}

func (a *Assignment) satisfiesClause(c Clause) bool {
	for _, l := range c.Literals {
		if a.satisfiedLit(l) {
			return true
		}
	}
	return false
}
