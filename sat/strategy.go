package sat

// Strategy is the common interface implemented by every search engine. All
// three variants (Naive, MOMS, CDCL-lite) consume the same Formula and
// TimeoutGuard and return the same Outcome shape.
type Strategy interface {
	Solve(f *Formula, guard *TimeoutGuard) Outcome
}
