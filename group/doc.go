// Package group provides a production-grade Schreier–Sims stabilizer
// chain over any element type satisfying the Element and Action
// capabilities, answering order and membership questions for a finite
// group given only by generators.
//
// What
//
//   - Element[E] is the group-element contract: IsIdentity, Times
//     (left-to-right composition) and Inverse.
//   - Action[P] lets an element act on a finite universe of points.
//   - Generator[E, P] combines both with structural Equal; any type
//     satisfying it can drive chain construction (permutations,
//     SLP-tagged pairs, …).
//   - New builds a base & strong generating set level by level: pick a
//     base point, explore its orbit breadth-first recording a Schreier
//     vector, collect the Schreier generators of the point stabilizer,
//     recurse on those until the generating set is exhausted.
//   - Size multiplies orbit lengths across levels (orbit–stabilizer).
//   - Strip sifts a candidate down the chain, peeling one transversal
//     per level; IsMember is "does the residue reach the identity".
//
// Why
//
//	The group generated by a handful of permutations is typically far
//	too large to enumerate; a stabilizer chain answers |G| and g ∈ G
//	in time polynomial in orbit sizes instead.
//
// Determinism
//
//	Orbit exploration is breadth-first and iterates generators in
//	declaration order, so the Schreier vector, the stabilizer
//	generator sets, and everything derived from them are fully
//	reproducible for a given input.
//
// Base selection
//
//	The chosen base for each level is the image of the first point of
//	the universe moved by some generator — the image, not the point
//	itself. This asymmetry is inherited from the reference behavior
//	and kept for compatibility; any moved point would anchor a correct
//	chain.
//
// Complexity (k = generators, m = orbit size, d = chain depth)
//
//   - Chain construction: O(d · m · k) orbit steps; each closed cycle
//     additionally walks two transversals.
//   - Strip/IsMember: O(d) transversal walks.
//
// Errors
//
//   - ErrTrivialAction  if a non-empty generating set moves no point
//     of the supplied universe; construction aborts rather than return
//     a degenerate chain.
//
// Termination of construction is a precondition on the input: a
// generating set is expected to collapse to nothing after finitely
// many levels, which holds for any finite permutation-like action.
//
// See group_test.go for the dihedral-group walkthrough.
package group
