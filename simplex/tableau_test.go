package simplex_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/lpstep/constraint"
	"github.com/katalvlaran/lpstep/linear"
	"github.com/katalvlaran/lpstep/simplex"
)

// TableauSuite exercises the dense matrix export.
type TableauSuite struct {
	suite.Suite
}

// TestInitialTableau exports A·x = b and c with deterministic columns.
func (s *TableauSuite) TestInitialTableau() {
	set, err := constraint.Compile("x <= 2\ny <= 3")
	require.NoError(s.T(), err)
	obj, err := linear.ParseExpression("x + 2y")
	require.NoError(s.T(), err)
	p := simplex.Program{Objective: obj, Constraints: set}

	tab := p.Tableau()

	// ASCII letters sort before the slack marker.
	require.Equal(s.T(), []linear.Variable{"x", "y", linear.SlackVariable(0), linear.SlackVariable(1)}, tab.Columns)

	rows, cols := tab.A.Dims()
	require.Equal(s.T(), 2, rows)
	require.Equal(s.T(), 4, cols)

	// Row 0: ε0 = 2 - x  ⇒  x + ε0 = 2.
	require.Equal(s.T(), []float64{1, 0, 1, 0}, rowOf(tab, 0))
	require.Equal(s.T(), 2.0, tab.B.AtVec(0))

	// Row 1: ε1 = 3 - y  ⇒  y + ε1 = 3.
	require.Equal(s.T(), []float64{0, 1, 0, 1}, rowOf(tab, 1))
	require.Equal(s.T(), 3.0, tab.B.AtVec(1))

	require.Equal(s.T(), 1.0, tab.C.AtVec(0))
	require.Equal(s.T(), 2.0, tab.C.AtVec(1))
	require.Equal(s.T(), 0.0, tab.C.AtVec(2))
	require.Equal(s.T(), 0.0, tab.C.AtVec(3))
	require.Equal(s.T(), 0.0, tab.Z)
}

// TestTableauAfterPivot keeps the equation system equivalent.
func (s *TableauSuite) TestTableauAfterPivot() {
	set, err := constraint.Compile("x <= 2")
	require.NoError(s.T(), err)
	obj, err := linear.ParseExpression("x")
	require.NoError(s.T(), err)
	p := simplex.Program{Objective: obj, Constraints: set}

	next, err := p.Pivot(true)
	require.NoError(s.T(), err)
	tab := next.Tableau()

	// Row now reads x = 2 - ε0  ⇒  x + ε0 = 2.
	require.Equal(s.T(), []linear.Variable{"x", linear.SlackVariable(0)}, tab.Columns)
	require.Equal(s.T(), []float64{1, 1}, rowOf(tab, 0))
	require.Equal(s.T(), 2.0, tab.B.AtVec(0))
	require.Equal(s.T(), 2.0, tab.Z)
}

// rowOf copies row i of the exported matrix.
func rowOf(tab simplex.Tableau, i int) []float64 {
	_, cols := tab.A.Dims()
	out := make([]float64, cols)
	for j := 0; j < cols; j++ {
		out[j] = tab.A.At(i, j)
	}
	return out
}

func TestTableauSuite(t *testing.T) {
	suite.Run(t, new(TableauSuite))
}
