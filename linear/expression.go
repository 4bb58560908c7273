package linear

import "sort"

// Expression is a sparse affine function: Σ coefficient_i·variable_i + constant.
//
// The zero value is the constant expression 0 and is ready to use.
// Value-returning operations produce fresh Expressions; the *InPlace
// variants mutate the receiver.
type Expression struct {
	constant float64
	coeffs   map[Variable]float64
}

// New returns a constant expression.
func New(constant float64) Expression {
	return Expression{constant: constant, coeffs: make(map[Variable]float64)}
}

// FromVariable returns the expression consisting of v with coefficient 1.
func FromVariable(v Variable) Expression {
	return Expression{coeffs: map[Variable]float64{v: 1}}
}

// NewWithCoefficients returns constant + Σ coeffs. The map is copied.
func NewWithCoefficients(constant float64, coeffs map[Variable]float64) Expression {
	e := New(constant)
	for v, c := range coeffs {
		e.coeffs[v] = c
	}
	return e
}

// Constant returns the constant term.
func (e Expression) Constant() float64 { return e.constant }

// SetConstant replaces the constant term.
func (e *Expression) SetConstant(c float64) {
	e.constant = c
}

// Coefficient returns v's coefficient, 0 when absent. Absence and a stored
// zero are indistinguishable by design.
func (e Expression) Coefficient(v Variable) float64 { return e.coeffs[v] }

// SetCoefficient inserts or updates v's coefficient.
func (e *Expression) SetCoefficient(v Variable, c float64) {
	if e.coeffs == nil {
		e.coeffs = make(map[Variable]float64)
	}
	e.coeffs[v] = c
}

// Clone returns a deep copy of e.
func (e Expression) Clone() Expression {
	return NewWithCoefficients(e.constant, e.coeffs)
}

// Evaluate applies e to an assignment; unassigned variables count as 0.
func (e Expression) Evaluate(assignment map[Variable]float64) float64 {
	total := e.constant
	for v, c := range e.coeffs {
		total += c * assignment[v]
	}
	return total
}

// AddInPlace adds o to e term by term.
func (e *Expression) AddInPlace(o Expression) {
	if e.coeffs == nil {
		e.coeffs = make(map[Variable]float64)
	}
	e.constant += o.constant
	for v, c := range o.coeffs {
		e.coeffs[v] += c
	}
}

// SubInPlace subtracts o from e term by term.
func (e *Expression) SubInPlace(o Expression) {
	if e.coeffs == nil {
		e.coeffs = make(map[Variable]float64)
	}
	e.constant -= o.constant
	for v, c := range o.coeffs {
		e.coeffs[v] -= c
	}
}

// ScaleInPlace multiplies the constant and every coefficient by f.
func (e *Expression) ScaleInPlace(f float64) {
	e.constant *= f
	for v := range e.coeffs {
		e.coeffs[v] *= f
	}
}

// DivideInPlace divides the constant and every coefficient by f.
// Division by zero is a caller error; IEEE Inf/NaN propagate untrapped.
func (e *Expression) DivideInPlace(f float64) {
	e.constant /= f
	for v := range e.coeffs {
		e.coeffs[v] /= f
	}
}

// NegateInPlace flips the sign of the constant and every coefficient.
func (e *Expression) NegateInPlace() { e.ScaleInPlace(-1) }

// Plus returns e + o.
func (e Expression) Plus(o Expression) Expression {
	out := e.Clone()
	out.AddInPlace(o)
	return out
}

// Minus returns e - o.
func (e Expression) Minus(o Expression) Expression {
	out := e.Clone()
	out.SubInPlace(o)
	return out
}

// ScaledBy returns e · f.
func (e Expression) ScaledBy(f float64) Expression {
	out := e.Clone()
	out.ScaleInPlace(f)
	return out
}

// DividedBy returns e / f. Division by zero propagates IEEE Inf/NaN.
func (e Expression) DividedBy(f float64) Expression {
	out := e.Clone()
	out.DivideInPlace(f)
	return out
}

// Negated returns -e.
func (e Expression) Negated() Expression { return e.ScaledBy(-1) }

// Substitute replaces every occurrence of v by replacement: v's coefficient
// c is removed and c·replacement is added to e. No-op when v is absent.
func (e *Expression) Substitute(v Variable, replacement Expression) {
	c, ok := e.coeffs[v]
	if !ok {
		return
	}
	delete(e.coeffs, v)
	e.AddInPlace(replacement.ScaledBy(c))
}

// ScaleToUnit divides e by v's coefficient so that v ends up with
// coefficient 1. No-op when v's coefficient is zero. Used to normalize a
// pivot row.
func (e *Expression) ScaleToUnit(v Variable) {
	if c := e.Coefficient(v); c != 0 {
		e.DivideInPlace(c)
	}
}

// FirstPositive selects a candidate entering variable: some variable with a
// strictly positive coefficient, or ok=false when none exists (which is the
// optimality test for a maximization objective).
//
// With deterministic set, variables are visited in lexicographic order and
// the first positive one wins — Bland's anti-cycling rule. Otherwise the
// visiting order is unspecified.
func (e Expression) FirstPositive(deterministic bool) (Variable, bool) {
	if !deterministic {
		for v, c := range e.coeffs {
			if c > 0 {
				return v, true
			}
		}
		return "", false
	}
	for _, v := range e.Variables() {
		if e.coeffs[v] > 0 {
			return v, true
		}
	}
	return "", false
}

// OnlyNonPositive reports whether no coefficient is strictly positive.
func (e Expression) OnlyNonPositive() bool {
	_, ok := e.FirstPositive(false)
	return !ok
}

// Variables returns every variable with a nonzero coefficient, sorted
// lexicographically.
func (e Expression) Variables() []Variable {
	vars := make([]Variable, 0, len(e.coeffs))
	for v, c := range e.coeffs {
		if c != 0 {
			vars = append(vars, v)
		}
	}
	sort.Strings(vars)
	return vars
}

// StructuralVariables returns every non-slack variable with a nonzero
// coefficient, sorted lexicographically.
func (e Expression) StructuralVariables() []Variable {
	vars := make([]Variable, 0, len(e.coeffs))
	for v, c := range e.coeffs {
		if c != 0 && !IsSlack(v) {
			vars = append(vars, v)
		}
	}
	sort.Strings(vars)
	return vars
}

// Equal reports exact equality of e and o. Variables absent on one side
// compare as zero, so presence-at-zero and absence are equal.
func (e Expression) Equal(o Expression) bool {
	return e.EqualWithin(o, 0)
}

// EqualWithin reports equality of e and o with per-term tolerance eps.
func (e Expression) EqualWithin(o Expression, eps float64) bool {
	if !within(e.constant, o.constant, eps) {
		return false
	}
	for v, c := range e.coeffs {
		if !within(c, o.coeffs[v], eps) {
			return false
		}
	}
	for v, c := range o.coeffs {
		if !within(e.coeffs[v], c, eps) {
			return false
		}
	}
	return true
}

func within(a, b, eps float64) bool {
	d := a - b
	if d < 0 {
		d = -d
	}
	return d <= eps
}
