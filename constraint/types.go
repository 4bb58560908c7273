package constraint

import (
	"errors"
	"fmt"
)

// ErrMissingOperator is returned when a constraint line carries no
// relational operator.
var ErrMissingOperator = errors.New("constraint: missing relational operator")

// LineError wraps a parse failure with the 1-based line number it occurred
// on, so a caller can point at the offending input line.
type LineError struct {
	Line int
	Err  error
}

func (e *LineError) Error() string {
	return fmt.Sprintf("constraint: line %d: %v", e.Line, e.Err)
}

func (e *LineError) Unwrap() error { return e.Err }

// Operator is one of the five relational operators a constraint may carry.
type Operator int

const (
	Equal Operator = iota
	Less
	Greater
	LessEqual
	GreaterEqual
)

// Inverse returns the operator obtained by swapping the two sides of a
// constraint. The mapping is involutive: Equal↔Equal, Less↔GreaterEqual,
// Greater↔LessEqual.
func (op Operator) Inverse() Operator {
	switch op {
	case Less:
		return GreaterEqual
	case Greater:
		return LessEqual
	case LessEqual:
		return Greater
	case GreaterEqual:
		return Less
	default:
		return Equal
	}
}

// String renders the operator's textual symbol.
func (op Operator) String() string {
	switch op {
	case Less:
		return "<"
	case Greater:
		return ">"
	case LessEqual:
		return "<="
	case GreaterEqual:
		return ">="
	default:
		return "="
	}
}
