package constraint

import (
	"strings"

	"github.com/katalvlaran/lpstep/linear"
)

// operators in longest-match-first order, so "<=" never splits into "<" "=".
var operatorSymbols = []struct {
	text string
	op   Operator
}{
	{"<=", LessEqual},
	{">=", GreaterEqual},
	{"<", Less},
	{">", Greater},
	{"=", Equal},
}

// Parse parses one constraint line `expression op expression`.
func Parse(line string) (Constraint, error) {
	left, op, right, found := splitOperator(line)
	if !found {
		return Constraint{}, ErrMissingOperator
	}
	l, err := linear.ParseExpression(left)
	if err != nil {
		return Constraint{}, err
	}
	r, err := linear.ParseExpression(right)
	if err != nil {
		return Constraint{}, err
	}
	return New(l, op, r), nil
}

// splitOperator finds the leftmost operator occurrence, matching the
// longest symbol at that position.
func splitOperator(line string) (left string, op Operator, right string, found bool) {
	for i := 0; i < len(line); i++ {
		for _, sym := range operatorSymbols {
			if strings.HasPrefix(line[i:], sym.text) {
				return line[:i], sym.op, line[i+len(sym.text):], true
			}
		}
	}
	return "", Equal, "", false
}

// Compile parses multi-line constraint text, one constraint per line,
// skipping blank lines, and feeds every parsed constraint through Add on a
// fresh Set. A failure aborts compilation with a *LineError carrying the
// 1-based line number.
func Compile(text string) (*Set, error) {
	set := NewSet()
	for n, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}
		c, err := Parse(line)
		if err != nil {
			return nil, &LineError{Line: n + 1, Err: err}
		}
		set.Add(c)
	}
	return set, nil
}
