package simplex

import (
	"github.com/katalvlaran/lpstep/constraint"
	"github.com/katalvlaran/lpstep/linear"
	"github.com/katalvlaran/lpstep/logger"
)

// Simplex is an execution context over the pivot loop: a position pointer
// into an append-only history of Program snapshots. Index 0 is the initial
// state before any pivot; the history only ever grows, so stepping
// backward and forward replays recorded states instead of recomputing
// them.
type Simplex struct {
	position int
	history  []Program
}

// New wraps an initial Program: history = [initial], position = 0.
func New(initial Program) *Simplex {
	return &Simplex{history: []Program{initial}}
}

// Maximize builds the Simplex maximizing objective over set. Both inputs
// are deep-copied; the caller's values stay untouched. To minimize, negate
// the objective first.
func Maximize(set *constraint.Set, objective linear.Expression) *Simplex {
	return New(Program{Objective: objective.Clone(), Constraints: set.Clone()})
}

// Current returns the snapshot at the position pointer.
func (s *Simplex) Current() *Program {
	return &s.history[s.position]
}

// Position returns the zero-based index of the current snapshot.
func (s *Simplex) Position() int { return s.position }

// Recorded returns how many snapshots the history holds.
func (s *Simplex) Recorded() int { return len(s.history) }

// Advance moves one step forward. At the frontier of a non-optimal program
// it computes the next snapshot via Pivot and appends it; inside
// already-visited history it only moves the pointer. Once the current
// snapshot is optimal, Advance is a no-op — the terminal state has been
// reached. bland selects the deterministic entering rule.
func (s *Simplex) Advance(bland bool) error {
	current := s.history[s.position]
	if current.IsOptimal() {
		log := logger.Logger()
		log.Debug().Int("position", s.position).Msg("already optimal")
		return nil
	}
	if s.position == len(s.history)-1 {
		next, err := current.Pivot(bland)
		if err != nil {
			return err
		}
		s.history = append(s.history, next)
	}
	s.position++
	return nil
}

// Retreat moves the pointer one step back, never discarding computed
// states. No-op at position 0.
func (s *Simplex) Retreat() {
	if s.position > 0 {
		s.position--
	}
}
