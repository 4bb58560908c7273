package linear

import (
	"errors"
	"fmt"
	"strings"
)

// SlackPrefix is the reserved marker for synthesized slack variables.
// Identifiers beginning with it never come from user input; the parser
// rejects them with ErrReservedVariable.
const SlackPrefix = "ε"

// Variable is an opaque variable name, unique within a program.
type Variable = string

// IsSlack reports whether v is a synthesized slack variable.
func IsSlack(v Variable) bool { return strings.HasPrefix(v, SlackPrefix) }

// SlackVariable returns the deterministic name of the n-th slack variable.
func SlackVariable(n int) Variable { return fmt.Sprintf("%s%d", SlackPrefix, n) }

// Sentinel errors for expression parsing.
var (
	// ErrParse indicates malformed expression text.
	ErrParse = errors.New("linear: malformed expression")

	// ErrReservedVariable indicates user input carrying the slack marker.
	ErrReservedVariable = errors.New("linear: identifier uses reserved slack marker")
)

// ParseError reports where and why expression text failed to parse.
// It wraps ErrParse (or ErrReservedVariable) for errors.Is matching.
type ParseError struct {
	// Offset is the byte offset of the offending token within the input.
	Offset int

	// Msg describes the failure.
	Msg string

	err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("linear: parse error at offset %d: %s", e.Offset, e.Msg)
}

func (e *ParseError) Unwrap() error { return e.err }

func newParseError(offset int, sentinel error, msg string) *ParseError {
	return &ParseError{Offset: offset, Msg: msg, err: sentinel}
}
