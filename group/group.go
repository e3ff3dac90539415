// Package group builds base & strong generating set chains
// (Schreier–Sims) and answers order and membership queries with them.
package group

import "strings"

// Group is a finite group presented by a stabilizer chain: an ordered
// sequence of levels, each stabilizing the bases of all levels before
// it. Immutable once constructed.
type Group[P comparable, E Generator[E, P]] struct {
	levels []*level[P, E]
}

// New constructs the stabilizer chain for the group generated by
// generators acting on the universe gset.
//
// Level by level: choose a base point (the image of the first universe
// point moved by some generator), build the orbit and Schreier vector
// for it, then recurse on the Schreier generators of the point
// stabilizer until the working generating set is empty. An empty
// generating set yields the trivial group.
//
// Returns ErrTrivialAction when a non-empty generating set moves no
// point of gset. Termination is a precondition on well-formed input
// (see package doc).
func New[P comparable, E Generator[E, P]](gset []P, generators []E) (*Group[P, E], error) {
	g := &Group[P, E]{}
	gs := generators
	for len(gs) > 0 {
		base, ok := findBase(gset, gs)
		if !ok {
			return nil, ErrTrivialAction
		}
		lvl, stabilizers := newLevel(base, gs)
		g.levels = append(g.levels, lvl)
		gs = stabilizers
	}
	return g, nil
}

// findBase scans the universe in order and returns, for the first
// point moved by any generator, the image of that point. Returning the
// image rather than the point itself is inherited reference behavior;
// see the package doc.
func findBase[P comparable, E Generator[E, P]](gset []P, generators []E) (P, bool) {
	for _, original := range gset {
		for _, generator := range generators {
			if image := generator.ActOn(original); image != original {
				return image, true
			}
		}
	}
	var zero P
	return zero, false
}

// Size returns the order of the group: the product of the orbit
// lengths across all levels (orbit–stabilizer theorem, applied
// recursively down the chain).
func (g *Group[P, E]) Size() int {
	size := 1
	for _, lvl := range g.levels {
		size *= lvl.length()
	}
	return size
}

// Strip sifts element through the chain: at each level that has a
// transversal for the current candidate, multiply by the transversal's
// inverse (fixing that level's base) and continue; at the first level
// without one, stop and return the candidate as is. The residue of a
// member is the identity.
func (g *Group[P, E]) Strip(element E) E {
	candidate := element
	for _, lvl := range g.levels {
		transversal, ok := lvl.transversalFor(candidate)
		if !ok {
			break
		}
		candidate = candidate.Times(transversal.Inverse())
	}
	return candidate
}

// IsMember reports whether element belongs to the group: stripping it
// through the whole chain must reach the identity.
func (g *Group[P, E]) IsMember(element E) bool {
	return g.Strip(element).IsIdentity()
}

// String renders the chain one level per line between angle brackets.
func (g *Group[P, E]) String() string {
	var b strings.Builder
	b.WriteString("<\n")
	for _, lvl := range g.levels {
		b.WriteString(lvl.String())
	}
	b.WriteString(">\n")
	return b.String()
}
