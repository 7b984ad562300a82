package sat

import (
	"time"

	"github.com/rhartert/yagh"
)

// CDCLOptions configures CDCLStrategy: var_decay, max_decisions,
// restart_base, and decay_stride.
type CDCLOptions struct {
	VarDecay     float64
	MaxDecisions int64
	RestartBase  int
	DecayStride  int
}

// DefaultCDCLOptions holds the watched-literal solver's default tuning: var_decay
// 0.95, a decision cap of 10^6, a fixed restart threshold of 100 conflicts,
// and a decay epoch every 50 conflicts.
var DefaultCDCLOptions = CDCLOptions{
	VarDecay:     0.95,
	MaxDecisions: 1_000_000,
	RestartBase:  100,
	DecayStride:  50,
}

// CDCLStrategy is the conflict-driven search: watched-literal unit
// propagation, VSIDS-like activity-based variable selection, chronological
// backtracking by trail-length halving on conflict, and periodic restarts.
// It does not learn conflict clauses or analyze implication graphs: UNSAT
// is reported when the trail cannot be backtracked further or when
// MaxDecisions is exhausted, and in both cases it is an incomplete proof.
type CDCLStrategy struct {
	Options CDCLOptions
}

// NewCDCLStrategy returns a CDCLStrategy configured with opts.
func NewCDCLStrategy(opts CDCLOptions) *CDCLStrategy {
	return &CDCLStrategy{Options: opts}
}

func (st *CDCLStrategy) Solve(f *Formula, guard *TimeoutGuard) Outcome {
	start := time.Now()

	s := &cdclSearch{
		f:     f,
		a:     NewAssignment(f.NumVars),
		watch: NewWatchIndex(f.NumVars, f.Clauses),
		act:   NewActivityTable(f.NumVars, st.Options.VarDecay),
		queue: NewQueue[Literal](128),
		opts:  st.Options,
	}
	s.order = newVarOrder(f.NumVars, s.a, s.act)

	result, timedOut := s.run(guard)

	stats := Stats{
		Nodes:     s.nodes,
		Decisions: s.decisions,
		Conflicts: s.conflicts,
		Restarts:  s.restarts,
		Elapsed:   time.Since(start),
	}

	switch {
	case timedOut:
		return Outcome{Status: StatusTimeout, Stats: stats}
	case result:
		return Outcome{Status: StatusSAT, Assignment: s.a, Stats: stats}
	default:
		return Outcome{Status: StatusUNSAT, Stats: stats}
	}
}

// cdclSearch holds all mutable state for a single Solve call. No field
// survives the call: a fresh cdclSearch is built per Solve, so no
// process-wide state persists between solves.
type cdclSearch struct {
	f     *Formula
	a     *Assignment
	watch *WatchIndex
	act   *ActivityTable
	order *varOrder
	queue *Queue[Literal]
	opts  CDCLOptions

	// propagated is the length of the trail prefix already seeded into
	// queue. Propagate seeds the literals assigned since the last call
	// (the full tail of the trail, not just the latest assignment) so
	// that a decision followed by several propagated implications before
	// the next Propagate call is never silently dropped.
	propagated int

	nodes     int64
	decisions int64
	conflicts int64
	restarts  int64
}

func (s *cdclSearch) run(guard *TimeoutGuard) (sat bool, timedOut bool) {
	for s.decisions < s.opts.MaxDecisions {
		s.nodes++
		s.decisions++

		if guard.Expired() {
			return false, true
		}

		conflict, to := s.propagate(guard)
		if to {
			return false, true
		}

		if conflict {
			s.conflicts++

			if s.a.Len() <= 1 {
				return false, false // trail can't be backtracked further: incomplete UNSAT
			}

			s.backtrackTo(s.a.Len() / 2)

			if s.opts.DecayStride > 0 && s.conflicts%int64(s.opts.DecayStride) == 0 {
				s.act.Decay()
			}
			if int(s.conflicts) > s.opts.RestartBase {
				s.backtrackTo(0)
				s.conflicts = 0
				s.restarts++
			}
			continue
		}

		if s.a.IsTotal() {
			if s.a.Verify(s.f) {
				return true, false
			}
			if s.a.Len() == 0 {
				return false, false
			}
			s.backtrackTo(s.a.Len() / 2)
			continue
		}

		v, ok := s.order.selectVar()
		if !ok {
			if uv := firstUnset(s.f.NumVars, s.a); uv != -1 {
				v, ok = uv, true
			}
		}
		if !ok {
			return s.a.Verify(s.f), false
		}

		polarity := s.decisions%3 != 0 // every third decision is negative
		s.a.Assign(v, polarity)
	}

	return false, false
}

// propagate drains the propagation queue to a fixed point, enqueuing every
// literal assigned since the last call and every literal implied along the
// way. It reports conflict=true as soon as a watched clause is falsified
// with no unassigned literal left.
func (s *cdclSearch) propagate(guard *TimeoutGuard) (conflict bool, timedOut bool) {
	s.seedNewTrailEntries()

	for !s.queue.IsEmpty() {
		if guard.Expired() {
			return false, true
		}

		l := s.queue.Pop()

		for _, c := range s.watch.Watching(l) {
			satisfied := false
			var unassignedLit Literal
			unassignedCount := 0

			for _, lit := range c.Literals {
				if s.a.Contains(lit.Var()) {
					if s.a.satisfiedLit(lit) {
						satisfied = true
						break
					}
				} else {
					unassignedLit = lit
					unassignedCount++
				}
			}

			if satisfied {
				continue
			}
			if unassignedCount == 0 {
				s.queue.Clear()
				return true, false
			}
			if unassignedCount == 1 {
				v := unassignedLit.Var()
				value := unassignedLit.IsPositive()

				s.a.Assign(v, value)
				s.act.Bump(v)
				s.order.bump(v)
				s.propagated++

				if value {
					s.queue.Push(NegativeLiteral(v))
				} else {
					s.queue.Push(PositiveLiteral(v))
				}
			}
		}
	}

	return false, false
}

func (s *cdclSearch) seedNewTrailEntries() {
	for s.propagated < s.a.Len() {
		v := s.a.trail[s.propagated]
		s.propagated++
		if s.a.Value(v) {
			s.queue.Push(NegativeLiteral(v))
		} else {
			s.queue.Push(PositiveLiteral(v))
		}
	}
}

// backtrackTo rewinds the trail to length k, restores the unassigned
// variables to the decision heap, and drops any now-stale propagation
// queue entries.
func (s *cdclSearch) backtrackTo(k int) {
	unassigned := append([]int(nil), s.a.trail[k:]...)
	s.a.BacktrackTo(k)
	for _, v := range unassigned {
		s.order.restore(v)
	}
	if s.propagated > k {
		s.propagated = k
	}
	s.queue.Clear()
}

// varOrder selects the unset variable with maximum activity. It is backed
// by a min-heap keyed on negated activity, so that Pop() always returns the
// variable with the highest score.
type varOrder struct {
	heap *yagh.IntMap[float64]
	a    *Assignment
	act  *ActivityTable
}

func newVarOrder(numVars int, a *Assignment, act *ActivityTable) *varOrder {
	vo := &varOrder{
		heap: yagh.New[float64](numVars + 1), // variables are 1-indexed; slot 0 is unused
		a:    a,
		act:  act,
	}
	for v := 1; v <= numVars; v++ {
		vo.heap.Put(v, -act.Score(v))
	}
	return vo
}

// bump refreshes v's position in the heap after its activity changed.
func (vo *varOrder) bump(v int) {
	vo.heap.Put(v, -vo.act.Score(v))
}

// restore re-inserts a variable that BacktrackTo just unassigned.
func (vo *varOrder) restore(v int) {
	vo.heap.Put(v, -vo.act.Score(v))
}

// selectVar pops the highest-activity unset variable, discarding entries
// for variables that turned out to already be assigned (they are restored
// by restore when they become unset again). It returns ok=false once the
// heap is exhausted.
func (vo *varOrder) selectVar() (int, bool) {
	for {
		next, ok := vo.heap.Pop()
		if !ok {
			return 0, false
		}
		if vo.a.Contains(next.Elem) {
			continue
		}
		return next.Elem, true
	}
}
