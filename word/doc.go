// Package word implements elements of a free group: ordered sequences
// of (symbol, exponent) terms kept permanently in fully free-reduced
// normal form.
//
// What
//
//   - Word is an immutable, always-normalized sequence of Terms.
//   - Identity(), Generator(sym) and New(terms) construct words; every
//     constructor routes through the same normalizer.
//   - Times concatenates and renormalizes; Inverse reverses the term
//     order and negates exponents (the inverse of a reduced word is
//     already reduced, so no renormalization happens).
//
// Why
//
//	Words are the human-readable answers of the stabilizer-chain
//	machinery: a straight-line program expanded through a morphism
//	lands here, and free reduction is what turns a towering product of
//	transversals into something like "r^4 t r^-5 …".
//
// Normal form invariant
//
//	No term carries a zero exponent and no two adjacent terms share a
//	symbol. The empty word is the identity. The normalizer handles
//	cascaded cancellation: in a·b·b⁻¹·a⁻¹ the inner pair cancels first
//	and exposes the outer pair, so the whole word collapses to Id.
//
// Complexity
//
//   - Normalization: O(n) over the input terms (each term is pushed
//     and popped at most once).
//   - Times: O(len(a) + len(b)). Inverse: O(n).
//
// See word_test.go for the normalization corner cases.
package word
