package linear

import (
	"math"
	"strconv"
	"strings"
)

// String renders e deterministically: a nonzero constant first, then
// variable terms sorted lexicographically, zero coefficients suppressed,
// coefficients ±1 as the bare or negated name. The empty expression
// renders "0". The output parses back via ParseExpression.
func (e Expression) String() string {
	var b strings.Builder
	first := true
	if e.constant != 0 {
		writeTerm(&b, e.constant, "", true)
		first = false
	}
	for _, v := range e.Variables() {
		writeTerm(&b, e.coeffs[v], v, first)
		first = false
	}
	if first {
		b.WriteString("0")
	}
	return b.String()
}

// writeTerm appends one signed term; only the leading term omits the "+".
func writeTerm(b *strings.Builder, c float64, v Variable, first bool) {
	switch {
	case first && c < 0:
		b.WriteString("-")
	case !first && c < 0:
		b.WriteString(" - ")
	case !first:
		b.WriteString(" + ")
	}
	abs := math.Abs(c)
	if v == "" {
		b.WriteString(formatScalar(abs))
		return
	}
	if abs != 1 {
		b.WriteString(formatScalar(abs))
	}
	b.WriteString(v)
}

func formatScalar(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}
