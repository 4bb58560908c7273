package simplex

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lpstep/constraint"
	"github.com/katalvlaran/lpstep/linear"
	"github.com/katalvlaran/lpstep/logger"
)

// ErrUnbounded is returned when the ratio test finds no row bounding the
// entering variable: the objective grows without bound and the program has
// no finite optimum.
var ErrUnbounded = errors.New("simplex: program is unbounded")

// Program is one state of the algorithm: an objective expression being
// maximized over a standardized constraint set.
type Program struct {
	Objective   linear.Expression
	Constraints *constraint.Set
}

// Clone returns a deep copy of p.
func (p Program) Clone() Program {
	return Program{Objective: p.Objective.Clone(), Constraints: p.Constraints.Clone()}
}

// Equal reports content equality of two snapshots.
func (p Program) Equal(o Program) bool {
	return p.Objective.Equal(o.Objective) && p.Constraints.Equal(o.Constraints)
}

// IsOptimal reports whether no objective coefficient is strictly positive,
// i.e. no pivot can improve the maximization any further.
func (p Program) IsOptimal() bool {
	return p.Objective.OnlyNonPositive()
}

// Pivot runs one simplex iteration and returns the resulting snapshot,
// leaving p untouched. On an already-optimal program it returns an
// unchanged copy. ErrUnbounded is returned when the entering variable is
// bounded by no row.
//
// With bland set, the entering variable is the lexicographically first
// positive-coefficient one (Bland's rule); otherwise any positive
// coefficient may be chosen.
func (p Program) Pivot(bland bool) (Program, error) {
	entering, ok := p.Objective.FirstPositive(bland)
	if !ok {
		return p.Clone(), nil
	}
	row, ok := p.Constraints.MostRestrictive(entering)
	if !ok {
		return Program{}, fmt.Errorf("%w: %s can grow forever", ErrUnbounded, entering)
	}

	next := p.Clone()
	value := next.Constraints.Pivot(row, entering)
	next.Objective.Substitute(entering, value)

	log := logger.Logger()
	log.Debug().
		Str("entering", entering).
		Int("leavingRow", row).
		Float64("objectiveConstant", next.Objective.Constant()).
		Msg("pivot")
	return next, nil
}

// CurrentPoint extracts the feasible point this snapshot stands on: every
// structural variable isolated on a row's left side (basic) reads that
// row's constant, every other (non-basic) one is 0.
//
// Precondition: the program is standardized (Constraints.IsValid). Calling
// it on anything else is a programming error and panics.
func (p Program) CurrentPoint() map[linear.Variable]float64 {
	if !p.Constraints.IsValid() {
		panic("simplex: CurrentPoint called on a non-standardized program")
	}
	point := make(map[linear.Variable]float64)
	for _, v := range p.Constraints.StructuralVariables() {
		point[v] = 0
	}
	for i := 0; i < p.Constraints.Len(); i++ {
		row := p.Constraints.Row(i)
		vars := row.Left.Variables()
		if len(vars) == 1 && !linear.IsSlack(vars[0]) {
			point[vars[0]] = row.Right.Constant()
		}
	}
	return point
}

// Value returns the objective evaluated at CurrentPoint.
func (p Program) Value() float64 {
	return p.Objective.Evaluate(p.CurrentPoint())
}

// String renders the objective line followed by one line per row.
func (p Program) String() string {
	return fmt.Sprintf("max %s\n%s", p.Objective, p.Constraints)
}
