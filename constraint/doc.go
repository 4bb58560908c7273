// Package constraint models a single relational expression and the ordered
// collection of all constraints of a linear program, and performs the
// standardization that the simplex method works on.
//
// # Standardization
//
// A Constraint stores `left op right` verbatim. Adding it to a Set rewrites
// it into equality form with fresh non-negative slack variables:
//
//	left ≤ right  →  s  = right − left   (one slack)
//	left ≥ right  →  s  = left − right   (one slack)
//	left = right  →  s1 = right − left   (two slacks,
//	                 s2 = right − left    identical rows)
//
// Slack names are deterministic: the reserved marker plus a counter seeded
// at the number of rows already stored, so they never collide within one
// Set. After standardization every row has the canonical shape
// `singleUnitVariable = expression` (see Set.IsValid).
//
// An equality yields two rows with the same right side: both slacks must
// independently sit at zero for the equality to hold.
//
// # Pivoting
//
// Set.MostRestrictive implements the ratio test that bounds how far an
// entering variable may grow; Set.Pivot performs one Gauss–Jordan
// elimination step, swapping a basic variable for the entering one and
// substituting through every other row.
//
// # Text input
//
// Compile consumes one constraint per line:
//
//	expression (<=|>=|<|>|=) expression
//
// Blank lines are ignored. The operator is matched longest-first so "<="
// is never mis-split into "<" then "=". Errors carry the 1-based line
// number (*LineError) and wrap the underlying linear parse error.
package constraint
