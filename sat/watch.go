package sat

// WatchIndex maps each literal to the clauses currently watching it. A
// clause with two or more literals is registered under exactly two of its
// literals; a unit clause is registered under its single literal. The
// empty clause is never registered.
//
// Clauses are re-scanned in full on every visit rather than having their
// watched literals swapped on progress. A clause registered under L
// therefore stays registered under L for the lifetime of the solve, even
// once L stops being one of its two "active" watches in the classical
// sense.
type WatchIndex struct {
	clauses [][]Clause
}

// NewWatchIndex builds a WatchIndex over clauses, registering each clause
// under its first two literals (or its only literal, if unit). Clauses are
// visited in the order they appear in the slice, so traversal order for a
// given literal is registration order.
func NewWatchIndex(numVars int, clauses []Clause) *WatchIndex {
	w := &WatchIndex{clauses: make([][]Clause, 2*(numVars+1)+2)}
	for _, c := range clauses {
		switch c.Len() {
		case 0:
			// The empty clause is never registered.
		case 1:
			w.add(c.Literals[0], c)
		default:
			w.add(c.Literals[0], c)
			w.add(c.Literals[1], c)
		}
	}
	return w
}

func (w *WatchIndex) add(l Literal, c Clause) {
	idx := l.index()
	w.clauses[idx] = append(w.clauses[idx], c)
}

// Watching returns the clauses registered under l, in registration order.
func (w *WatchIndex) Watching(l Literal) []Clause {
	return w.clauses[l.index()]
}
