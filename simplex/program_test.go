package simplex_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/lpstep/constraint"
	"github.com/katalvlaran/lpstep/linear"
	"github.com/katalvlaran/lpstep/simplex"
)

// ProgramSuite exercises single snapshots: optimality, pivoting, point
// extraction and rendering.
type ProgramSuite struct {
	suite.Suite
}

func (s *ProgramSuite) program(constraints, objective string) simplex.Program {
	set, err := constraint.Compile(constraints)
	require.NoError(s.T(), err)
	obj, err := linear.ParseExpression(objective)
	require.NoError(s.T(), err)
	return simplex.Program{Objective: obj, Constraints: set}
}

// TestIsOptimal holds exactly when no objective coefficient is positive.
func (s *ProgramSuite) TestIsOptimal() {
	require.False(s.T(), s.program("x <= 1", "x").IsOptimal())
	require.True(s.T(), s.program("x <= 1", "-x - y").IsOptimal())
	require.True(s.T(), s.program("x <= 1", "42").IsOptimal())
}

// TestPivotOnOptimalIsNoOp returns an unchanged copy.
func (s *ProgramSuite) TestPivotOnOptimalIsNoOp() {
	p := s.program("x <= 1", "-x")
	next, err := p.Pivot(true)
	require.NoError(s.T(), err)
	require.True(s.T(), next.Equal(p))
}

// TestPivotImproves moves the objective constant up by one basis swap.
func (s *ProgramSuite) TestPivotImproves() {
	p := s.program("x <= 4", "x")
	next, err := p.Pivot(true)
	require.NoError(s.T(), err)

	require.True(s.T(), next.IsOptimal())
	require.InDelta(s.T(), 4, next.Objective.Constant(), 1e-9)
	// The receiver must stay on the origin snapshot.
	require.InDelta(s.T(), 0, p.Objective.Constant(), 1e-9)
}

// TestPivotUnbounded surfaces ErrUnbounded from the ratio test.
func (s *ProgramSuite) TestPivotUnbounded() {
	p := s.program("y <= 5", "x")
	_, err := p.Pivot(true)
	require.ErrorIs(s.T(), err, simplex.ErrUnbounded)
}

// TestCurrentPointAtOrigin reads all structural variables as non-basic 0.
func (s *ProgramSuite) TestCurrentPointAtOrigin() {
	p := s.program("x <= 200\ny <= 300\nx + y + z <= 400", "x + y")
	require.Equal(s.T(), map[linear.Variable]float64{"x": 0, "y": 0, "z": 0}, p.CurrentPoint())
	require.InDelta(s.T(), 0, p.Value(), 1e-9)
}

// TestCurrentPointAfterPivot reads basic structural variables from their
// row constants.
func (s *ProgramSuite) TestCurrentPointAfterPivot() {
	p := s.program("x <= 4\nx + y <= 6", "x + y")
	next, err := p.Pivot(true)
	require.NoError(s.T(), err)

	point := next.CurrentPoint()
	require.InDelta(s.T(), 4, point["x"], 1e-9)
	require.InDelta(s.T(), 0, point["y"], 1e-9)
	require.InDelta(s.T(), 4, next.Value(), 1e-9)
}

// TestString renders the objective line plus one line per row.
func (s *ProgramSuite) TestString() {
	p := s.program("x <= 4", "x + 2y")
	lines := strings.Split(p.String(), "\n")
	require.Len(s.T(), lines, 2)
	require.Equal(s.T(), "max x + 2y", lines[0])
	require.Equal(s.T(), "ε0 = 4 - x", lines[1])
}

func TestProgramSuite(t *testing.T) {
	suite.Run(t, new(ProgramSuite))
}
