// Package linear implements the symbolic substrate of the solver: sparse
// affine functions over named variables, their arithmetic, substitution,
// parsing and deterministic formatting.
//
// An Expression represents
//
//	Σ coefficient_i · variable_i + constant
//
// stored as one scalar plus a map from variable name to coefficient. A
// variable carrying a zero coefficient is interchangeable with an absent
// one: lookups default to zero and equality ignores the difference. This
// is a documented semantic, not an accident.
//
// # Variables
//
// A Variable is an opaque name, unique within a program. Two classes exist
// by convention only:
//
//	– structural: user-declared decision variables (x, y, z, ...)
//	– slack:      synthesized during standardization, named with the
//	              reserved marker SlackPrefix ("ε") plus a counter
//
// Classification is inferred from the name via IsSlack; nothing in the
// type system separates the two. User input must not introduce the
// reserved marker — ParseExpression rejects it with ErrReservedVariable.
//
// # Arithmetic
//
// Value-returning operations (Plus, Minus, ScaledBy, DividedBy, Negated)
// never touch the receiver; the InPlace variants mutate it. Division by
// zero is a caller error and propagates IEEE Inf/NaN, it is not trapped.
//
// # Grammar
//
//	expr := term*
//	term := [+|-] [number] [identifier]
//
// At least one of number/identifier must be present in a term. A bare
// number contributes to the constant; a bare identifier gets coefficient
// 1 (or -1 after a minus). Whitespace between tokens is insignificant.
// Decimal numbers are supported. Malformed input yields *ParseError.
//
// Formatting is deterministic: variables sorted lexicographically, zero
// coefficients suppressed, no redundant leading "+", coefficients ±1
// render as the bare or negated name, empty expressions render "0".
// For integer coefficients the round trip ParseExpression(e.String())
// reproduces e exactly.
package linear
