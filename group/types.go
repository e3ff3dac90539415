// Package group defines the algebraic capability contracts and error
// definitions shared by the stabilizer-chain machinery.
package group

import "errors"

// ErrTrivialAction is returned by New when a non-empty generating set
// fixes every point of the supplied universe: no base point exists and
// no meaningful chain can be built.
var ErrTrivialAction = errors.New("group: generators act trivially on the universe")

// Element is the contract for a group element. The type parameter E is
// the implementing type itself, so that Times and Inverse stay closed
// over it.
//
// Times composes left to right: a.Times(b) means "apply a, then b".
type Element[E any] interface {
	// IsIdentity determines whether the element is the identity.
	IsIdentity() bool
	// Times is the associated operation of the group.
	Times(multiplicand E) E
	// Inverse returns the inverse of the element.
	Inverse() E
}

// Action is the contract for a group acting on a set of points P.
// Compatibility with the group structure is a caller invariant:
//
//	a.Times(b).ActOn(p) == b.ActOn(a.ActOn(p))
//	identity.ActOn(p)   == p
type Action[P comparable] interface {
	// ActOn returns the image of point under the element's action.
	ActOn(point P) P
}

// Generator constrains the element types usable for chain
// construction: a group element that acts on the universe and supports
// structural equality (used to de-duplicate Schreier generators).
type Generator[E any, P comparable] interface {
	Element[E]
	Action[P]
	// Equal reports structural equality with other.
	Equal(other E) bool
}
