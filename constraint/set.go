package constraint

import (
	"sort"
	"strings"

	"github.com/katalvlaran/lpstep/linear"
)

// Set is the ordered sequence of standardized constraints of one program.
//
// Order matters for slack numbering, not for solution correctness. The
// slack counter is an explicit field of the value (never process-global)
// and always equals the number of rows stored so far.
type Set struct {
	rows   []Constraint
	slacks int
}

// NewSet returns an empty constraint set.
func NewSet() *Set {
	return &Set{}
}

// Len returns the number of standardized rows.
func (s *Set) Len() int { return len(s.rows) }

// Row returns the i-th standardized row.
func (s *Set) Row(i int) Constraint { return s.rows[i] }

// Add standardizes c and appends the resulting row(s):
//
//	≤ / <  →  one slack s,  row s = right − left
//	≥ / >  →  one slack s,  row s = left − right
//	=      →  two slacks, both rows s_i = right − left
//
// A non-negative slack then encodes the original relation once the program
// enforces x ≥ 0 on every variable.
func (s *Set) Add(c Constraint) {
	switch c.Op {
	case LessEqual, Less:
		s.push(c.Right.Minus(c.Left))
	case GreaterEqual, Greater:
		s.push(c.Left.Minus(c.Right))
	case Equal:
		s.push(c.Right.Minus(c.Left))
		s.push(c.Right.Minus(c.Left))
	}
}

// push appends one canonical row `slack = rhs` with a fresh slack name.
func (s *Set) push(rhs linear.Expression) {
	v := linear.SlackVariable(s.slacks)
	s.slacks++
	s.rows = append(s.rows, Constraint{Left: linear.FromVariable(v), Op: Equal, Right: rhs})
}

// MostRestrictive runs the ratio test for entering variable v: among rows
// whose right side carries v with a strictly negative coefficient, it
// returns the index maximizing constant/coefficient — the row that bounds
// v's increase the tightest. Ties keep the first row in stored order.
// ok is false when no row is eligible, which signals an unbounded program.
func (s *Set) MostRestrictive(v linear.Variable) (row int, ok bool) {
	var best float64
	for i := range s.rows {
		c := s.rows[i].Right.Coefficient(v)
		if c >= 0 {
			continue
		}
		ratio := s.rows[i].Right.Constant() / c
		if !ok || ratio > best {
			row, best, ok = i, ratio, true
		}
	}
	return row, ok
}

// Pivot performs one Gauss–Jordan elimination step: row `row` is normalized
// by v's coefficient, v is isolated on its left side, and the resulting
// expression is substituted for v in every other row's right side. The
// expression now bound to v is returned so the caller can substitute it
// into an objective as well.
func (s *Set) Pivot(row int, v linear.Variable) linear.Expression {
	r := s.rows[row]
	moved := r.Right.Minus(r.Left) // whole equation on one side: moved = 0
	moved.ScaleToUnit(v)
	moved.SetCoefficient(v, 0)
	value := moved.Negated() // v = value

	s.rows[row] = Constraint{Left: linear.FromVariable(v), Op: Equal, Right: value}
	for i := range s.rows {
		if i == row {
			continue
		}
		s.rows[i].Right.Substitute(v, value)
	}
	return value
}

// IsValid reports whether every row is in canonical
// `singleUnitVariable = expression` form.
func (s *Set) IsValid() bool {
	for i := range s.rows {
		if !s.rows[i].IsCanonical() {
			return false
		}
	}
	return true
}

// StructuralVariables returns the sorted union of non-slack variables
// across all rows, both sides.
func (s *Set) StructuralVariables() []linear.Variable {
	seen := make(map[linear.Variable]struct{})
	for i := range s.rows {
		for _, v := range s.rows[i].Left.StructuralVariables() {
			seen[v] = struct{}{}
		}
		for _, v := range s.rows[i].Right.StructuralVariables() {
			seen[v] = struct{}{}
		}
	}
	vars := make([]linear.Variable, 0, len(seen))
	for v := range seen {
		vars = append(vars, v)
	}
	sort.Strings(vars)
	return vars
}

// Equal reports content equality: same row count, slack counter, and
// pairwise-equal rows in stored order.
func (s *Set) Equal(o *Set) bool {
	if s.slacks != o.slacks || len(s.rows) != len(o.rows) {
		return false
	}
	for i := range s.rows {
		if !s.rows[i].Equal(o.rows[i]) {
			return false
		}
	}
	return true
}

// Clone returns a deep copy of s.
func (s *Set) Clone() *Set {
	out := &Set{rows: make([]Constraint, len(s.rows)), slacks: s.slacks}
	for i := range s.rows {
		out.rows[i] = s.rows[i].Clone()
	}
	return out
}

// String renders one row per line, in stored order.
func (s *Set) String() string {
	lines := make([]string, len(s.rows))
	for i := range s.rows {
		lines[i] = s.rows[i].String()
	}
	return strings.Join(lines, "\n")
}
