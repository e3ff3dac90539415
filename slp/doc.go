// Package slp implements straight-line programs: symbolic expression
// trees that record how a group element was composed instead of eagerly
// computing it, plus the Morphism that expands them into free-group
// words.
//
// What
//
//   - SLP is an immutable expression tree over abstract generator tags:
//     Identity, Generator(index), Product, Inverse. Times and Inverse
//     allocate a single node in O(1) and never simplify — the whole
//     point is that composing during chain construction stays cheap no
//     matter how large the expanded word would be.
//   - Morphism maps generator tags to free-group words; Transform
//     walks an SLP once, on demand, substituting tags and combining
//     sub-results with word.Times / word.Inverse.
//   - Pair couples an SLP with the perm.Permutation it denotes, so the
//     stabilizer chain can compute with permutations while the SLP
//     half keeps the provenance. Pair satisfies group.Generator over
//     int points.
//   - Factory is the shared-storage variant: an append-only node arena
//     with handle-based expressions and memoized Evaluate, for
//     workloads minting many intermediates from few generators.
//
// Why
//
//	Naive free-word composition under repeated Schreier-vector
//	reconstruction grows exponentially with chain depth; an SLP keeps
//	every intermediate O(1) and defers the expansion to a single final
//	Transform of the stripped residue.
//
// Identity caveat
//
//	IsIdentity is true only for the literal Identity node; a Product
//	that happens to cancel algebraically is NOT recognized. Structural
//	equality (Equal) has the same blindness, and Pair inherits it on
//	its SLP half.
//
// Errors
//
//   - ErrUnmappedGenerator  if Transform meets a generator tag the
//     morphism does not cover. Every tag placed into an SLP that will
//     be transformed must appear in the morphism; this is a hard
//     precondition, surfaced, never recovered.
//
// Concurrency
//
//	SLP trees are immutable and safe to share. A Factory is mutable
//	(node registration and evaluation caching) and must be confined to
//	a single goroutine or serialized externally.
package slp
