// Package perm implements finite permutations as sparse image maps.
//
// A Permutation is a bijection of {0..n}; points absent from its image
// map are implicitly fixed. Together with left-to-right composition
// (Times) permutations form a group, and they act on integers via
// ActOn — which is exactly the shape the group package needs to build
// stabilizer chains.
//
// Correctness precondition: New does not validate bijectivity. A
// non-bijective image map is accepted and composition arithmetic then
// produces whatever it produces; supplying a true bijection of 0..n is
// the caller's contract.
//
// Equality is structural: two permutations with the same effective
// action but different declared sizes (or differently explicit fixed
// points) compare unequal. See Permutation.Equal.
//
// Rendering uses cycle notation, e.g. "(0 1 2)(3 4)", with "Id" for
// the identity.
package perm
