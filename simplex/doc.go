// Package simplex drives the pivot loop of the simplex method and records
// its execution as a scrubbable history of Program snapshots.
//
// # Model
//
// A Program pairs an objective expression (the function being maximized)
// with a standardized constraint.Set — one tableau state. Each snapshot is
// either optimal (no strictly positive objective coefficient) or
// improvable by one more pivot:
//
//  1. entering variable: the objective's first positive-coefficient
//     variable (lexicographically first under Bland's rule, which
//     guarantees termination on degenerate programs)
//  2. leaving row: constraint.Set.MostRestrictive — no eligible row means
//     the objective grows without bound, surfaced as ErrUnbounded
//  3. Gauss–Jordan pivot, then substitution of the entering variable's new
//     value into the objective
//
// Minimization is maximization of the negated objective; negating is the
// caller's responsibility.
//
// # Scrubbing
//
// A Simplex holds a position pointer into an append-only history.
// Advancing past the frontier computes and appends one snapshot; advancing
// inside already-visited history just moves the pointer, as does
// retreating — computed states are never discarded or recomputed. This is
// what lets a visual front end step the algorithm forward and backward
// like video.
//
// # Geometry helpers
//
// CurrentPoint extracts the feasible point a snapshot stands on (basic
// structural variables read their row constant, non-basic ones are 0);
// Vertices enumerates all basic feasible points reachable by pivoting on
// every structural variable, depth-first, deduplicated by approximate
// point equality. The enumeration is exponential in the worst case and
// exists for rendering the feasible region, not for solving; it is bounded
// by a configurable vertex cap (DefaultMaxVertices). Tableau exports a
// snapshot in dense A·x = b, c matrix form via gonum for matrix-oriented
// consumers.
package simplex
