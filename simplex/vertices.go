package simplex

import (
	"math"

	"github.com/katalvlaran/lpstep/linear"
)

// Vertices enumerates the basic feasible points reachable from p by
// pivoting on every structural variable, depth-first, deduplicated by
// approximate point equality (WithPointTolerance). The walk stops after
// WithMaxVertices distinct points.
//
// This is a visualization aid for rendering the feasible region, not part
// of the solving path: the exploration is exponential in the worst case.
func (p Program) Vertices(opts ...Option) []map[linear.Variable]float64 {
	o := gatherOptions(opts...)
	structural := p.Constraints.StructuralVariables()

	var visited []map[linear.Variable]float64
	stack := []Program{p.Clone()}
	for len(stack) > 0 && len(visited) < o.maxVertices {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		point := cur.CurrentPoint()
		if seenPoint(visited, point, structural, o.pointTolerance) {
			continue
		}
		visited = append(visited, point)

		for _, v := range structural {
			row, ok := cur.Constraints.MostRestrictive(v)
			if !ok {
				continue // v unbounded here; no vertex in that direction
			}
			next := cur.Clone()
			value := next.Constraints.Pivot(row, v)
			next.Objective.Substitute(v, value)
			stack = append(stack, next)
		}
	}
	return visited
}

func seenPoint(visited []map[linear.Variable]float64, point map[linear.Variable]float64, structural []linear.Variable, eps float64) bool {
	for _, old := range visited {
		same := true
		for _, v := range structural {
			if math.Abs(old[v]-point[v]) > eps {
				same = false
				break
			}
		}
		if same {
			return true
		}
	}
	return false
}
