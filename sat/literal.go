package sat

import "fmt"

// Literal is a signed, 1-indexed propositional literal: its absolute value
// is the variable index in [1, N] and its sign is the polarity (positive
// for the variable itself, negative for its negation). This is exactly the
// DIMACS literal encoding, which keeps the model free of index-shifting
// between the wire format and the in-memory one.
type Literal int

// Var returns the literal's variable.
func (l Literal) Var() int {
	if l < 0 {
		return int(-l)
	}
	return int(l)
}

// IsPositive reports whether the literal represents its variable directly,
// as opposed to its negation.
func (l Literal) IsPositive() bool {
	return l > 0
}

// Opposite returns the complementary literal (v, ¬p) for (v, p).
func (l Literal) Opposite() Literal {
	return -l
}

// PositiveLiteral returns the positive literal of the given variable.
func PositiveLiteral(v int) Literal {
	return Literal(v)
}

// NegativeLiteral returns the negative literal of the given variable.
func NegativeLiteral(v int) Literal {
	return Literal(-v)
}

// index returns a dense, zero-based index suitable for slice-indexed
// per-literal tables (watch lists and the like): the positive and negative
// literal of variable v map to adjacent slots 2*v and 2*v+1.
func (l Literal) index() int {
	if l > 0 {
		return 2 * int(l)
	}
	return 2*int(-l) + 1
}

func (l Literal) String() string {
	return fmt.Sprintf("%d", int(l))
}
