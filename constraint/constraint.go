package constraint

import (
	"fmt"

	"github.com/katalvlaran/lpstep/linear"
)

// Constraint is a single relational expression `Left Op Right`.
//
// New stores the triple verbatim; normalization into equality form happens
// only when the constraint is added to a Set.
type Constraint struct {
	Left  linear.Expression
	Op    Operator
	Right linear.Expression
}

// New returns the constraint `left op right`, unmodified.
func New(left linear.Expression, op Operator, right linear.Expression) Constraint {
	return Constraint{Left: left, Op: op, Right: right}
}

// Clone returns a deep copy of c.
func (c Constraint) Clone() Constraint {
	return Constraint{Left: c.Left.Clone(), Op: c.Op, Right: c.Right.Clone()}
}

// IsCanonical reports whether c has the standardized row shape: an equality
// whose left side is exactly one variable with coefficient 1 and no
// constant term.
func (c Constraint) IsCanonical() bool {
	if c.Op != Equal || c.Left.Constant() != 0 {
		return false
	}
	vars := c.Left.Variables()
	return len(vars) == 1 && c.Left.Coefficient(vars[0]) == 1
}

// Equal reports content equality of the two constraints. Zero-coefficient
// entries on either side are ignored, matching linear.Expression.Equal.
func (c Constraint) Equal(o Constraint) bool {
	return c.Op == o.Op && c.Left.Equal(o.Left) && c.Right.Equal(o.Right)
}

// String renders `left op right`.
func (c Constraint) String() string {
	return fmt.Sprintf("%s %s %s", c.Left, c.Op, c.Right)
}
