// Package lpstep is an in-memory, steppable simplex solver for linear
// programs in canonical "max c·x subject to A·x ≤ b, x ≥ 0" form — built
// for teaching and visualization rather than industrial solving.
//
// 🚀 What is lpstep?
//
//	A small, pure-Go core that lets a caller walk the simplex method one
//	pivot at a time, forward and backward, like scrubbing a video:
//		• Symbolic expressions: sparse affine functions over named variables
//		• Standardization: slack-variable introduction per constraint
//		• Pivoting: Gauss–Jordan elimination with Bland's anti-cycling rule
//		• History: append-only snapshots, replay without recomputation
//		• Geometry helpers: feasible-point extraction & vertex enumeration
//
// ✨ Why choose lpstep?
//
//   - Beginner-friendly – textual constraint input, readable tableau output
//   - Deterministic – lexicographic tie-breaks, no hidden randomness
//   - Pure Go – no cgo, no external solver binaries
//   - Honest errors – unboundedness is a value, not a panic
//
// Everything is organized under three subpackages plus a logger:
//
//	linear/     — Variable naming, Expression arithmetic, parsing, formatting
//	constraint/ — Operator, Constraint, standardized Set, text compilation
//	simplex/    — Program snapshots, scrubbable Simplex history, tableau export
//	logger/     — zerolog-backed module logger
//
// Quick example:
//
//	set, _ := constraint.Compile("x <= 200\ny <= 300\nx + y + z <= 400\ny + 3z <= 600")
//	obj, _ := linear.ParseExpression("x + 6y + 13z")
//	s := simplex.Maximize(set, obj)
//	for !s.Current().IsOptimal() {
//	    if err := s.Advance(true); err != nil { ... } // simplex.ErrUnbounded
//	}
//	fmt.Println(s.Current().Value(), s.Current().CurrentPoint())
//
// The graphical front end that motivated this core is an external
// collaborator: it feeds text in, steps the Simplex and renders whatever
// Program snapshot the position pointer rests on.
package lpstep
