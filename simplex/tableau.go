package simplex

import (
	"sort"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/lpstep/linear"
)

// Tableau is a dense matrix view of one snapshot, for matrix-oriented
// consumers: the rows as A·x = B with the objective row C and its constant
// Z. Columns covers every variable (structural and slack) in lexicographic
// order, so the layout is deterministic.
type Tableau struct {
	A       *mat.Dense
	B       *mat.VecDense
	C       *mat.VecDense
	Z       float64
	Columns []linear.Variable
}

// Tableau exports the current snapshot in dense form. Row i encodes
// `left_i = right_i` as Σ_j (left_ij − right_ij)·x_j = const(right_i) −
// const(left_i).
func (p Program) Tableau() Tableau {
	columns := p.tableauColumns()
	index := make(map[linear.Variable]int, len(columns))
	for j, v := range columns {
		index[v] = j
	}

	rows := p.Constraints.Len()
	a := mat.NewDense(rows, len(columns), nil)
	b := mat.NewVecDense(rows, nil)
	for i := 0; i < rows; i++ {
		row := p.Constraints.Row(i)
		for v, j := range index {
			a.Set(i, j, row.Left.Coefficient(v)-row.Right.Coefficient(v))
		}
		b.SetVec(i, row.Right.Constant()-row.Left.Constant())
	}

	c := mat.NewVecDense(len(columns), nil)
	for v, j := range index {
		c.SetVec(j, p.Objective.Coefficient(v))
	}

	return Tableau{A: a, B: b, C: c, Z: p.Objective.Constant(), Columns: columns}
}

// tableauColumns collects every variable mentioned by the objective or any
// row, sorted lexicographically.
func (p Program) tableauColumns() []linear.Variable {
	seen := make(map[linear.Variable]struct{})
	for _, v := range p.Objective.Variables() {
		seen[v] = struct{}{}
	}
	for i := 0; i < p.Constraints.Len(); i++ {
		row := p.Constraints.Row(i)
		for _, v := range row.Left.Variables() {
			seen[v] = struct{}{}
		}
		for _, v := range row.Right.Variables() {
			seen[v] = struct{}{}
		}
	}
	columns := make([]linear.Variable, 0, len(seen))
	for v := range seen {
		columns = append(columns, v)
	}
	sort.Strings(columns)
	return columns
}
