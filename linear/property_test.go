package linear_test

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/katalvlaran/lpstep/linear"
)

// genExpression generates expressions with small integer coefficients over
// a fixed variable pool; zero coefficients stay absent so the formatting
// round trip is exact.
func genExpression() gopter.Gen {
	return gopter.CombineGens(
		gen.IntRange(-50, 50),
		gen.IntRange(-50, 50),
		gen.IntRange(-50, 50),
		gen.IntRange(-50, 50),
	).Map(func(values []interface{}) linear.Expression {
		e := linear.New(float64(values[0].(int)))
		for i, v := range []linear.Variable{"x", "y", "z"} {
			if c := values[i+1].(int); c != 0 {
				e.SetCoefficient(v, float64(c))
			}
		}
		return e
	})
}

func TestExpressionProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200

	properties := gopter.NewProperties(parameters)

	properties.Property("parse(format(e)) == e", prop.ForAll(
		func(e linear.Expression) bool {
			parsed, err := linear.ParseExpression(e.String())
			return err == nil && parsed.Equal(e)
		},
		genExpression(),
	))

	properties.Property("a + b - b == a", prop.ForAll(
		func(a, b linear.Expression) bool {
			return a.Plus(b).Minus(b).EqualWithin(a, 1e-9)
		},
		genExpression(),
		genExpression(),
	))

	properties.Property("a * 2 / 2 == a", prop.ForAll(
		func(e linear.Expression) bool {
			return e.ScaledBy(2).DividedBy(2).EqualWithin(e, 1e-9)
		},
		genExpression(),
	))

	properties.Property("-(-a) == a", prop.ForAll(
		func(e linear.Expression) bool {
			return e.Negated().Negated().EqualWithin(e, 1e-9)
		},
		genExpression(),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}
