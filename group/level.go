package group

import (
	"fmt"
	"strings"
)

// noGenerator is the Schreier-vector sentinel marking the base point,
// which no generator discovered.
const noGenerator = -1

// level is one link of the stabilizer chain: a base point, the
// generators active at this level, and a Schreier vector mapping every
// orbit point to the index of the generator that first reached it.
// Immutable once built.
type level[P comparable, E Generator[E, P]] struct {
	// base anchors this level; its orbit is the key set of indices.
	base P
	// generators act on base to form the orbit, in declaration order.
	generators []E
	// indices is the Schreier vector: orbit point → generator index,
	// with noGenerator at the base itself.
	indices map[P]int
}

// newLevel explores the orbit of base breadth-first and returns the
// finished level together with the Schreier generators of the point
// stabilizer, which become the generating set of the next level.
//
// Both the BFS order and the generator declaration order are
// significant: they fix which spanning tree the Schreier vector
// encodes and therefore which stabilizer generators come out.
func newLevel[P comparable, E Generator[E, P]](base P, generators []E) (*level[P, E], []E) {
	queue := []P{base}
	indices := map[P]int{base: noGenerator}
	var stabilizers []E
	for len(queue) > 0 {
		point := queue[0]
		queue = queue[1:]
		for i, generator := range generators {
			image := generator.ActOn(point)
			if _, seen := indices[image]; !seen {
				indices[image] = i
				queue = append(queue, image)
				continue
			}
			// A previously visited image closes a cycle in the orbit
			// graph; the element to(point)·g·to(image)⁻¹ fixes base and
			// generates the point stabilizer.
			to, _ := transversalTo(point, generators, indices)
			fro, _ := transversalTo(image, generators, indices)
			stabilizer := to.Times(generator).Times(fro.Inverse())
			if keepStabilizer(stabilizer, stabilizers) {
				stabilizers = append(stabilizers, stabilizer)
			}
		}
	}
	lvl := &level[P, E]{base: base, generators: generators, indices: indices}
	return lvl, stabilizers
}

// comparableElement is the slice-membership contract keepStabilizer
// needs; it deliberately drops the Action requirement so the element
// type alone fixes the instantiation.
type comparableElement[E any] interface {
	Element[E]
	Equal(other E) bool
}

// keepStabilizer reports whether candidate is worth appending: neither
// the identity nor a structural duplicate of an earlier stabilizer.
func keepStabilizer[E comparableElement[E]](candidate E, stabilizers []E) bool {
	if candidate.IsIdentity() {
		return false
	}
	for _, s := range stabilizers {
		if s.Equal(candidate) {
			return false
		}
	}
	return true
}

// hasTransversalFor reports whether g maps this level's base into the
// orbit, i.e. whether peeling a transversal off g is possible here.
func (l *level[P, E]) hasTransversalFor(g E) bool {
	_, ok := l.indices[g.ActOn(l.base)]
	return ok
}

// transversalFor returns the coset representative aligning with g: the
// element carrying base to g's image of base.
func (l *level[P, E]) transversalFor(g E) (E, bool) {
	return transversalTo(g.ActOn(l.base), l.generators, l.indices)
}

// length returns the orbit size of this level.
func (l *level[P, E]) length() int {
	return len(l.indices)
}

// String renders the level as "[base;< gens >; point: idx …]". Orbit
// points follow map order, so the listing is unordered.
func (l *level[P, E]) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "[%v;<", l.base)
	for _, g := range l.generators {
		fmt.Fprintf(&b, " %v", g)
	}
	b.WriteString(" >;")
	for point, index := range l.indices {
		fmt.Fprintf(&b, " %v: %d", point, index)
	}
	b.WriteString("]\n")
	return b.String()
}

// transversalTo reconstructs the forward transversal base → start from
// the Schreier vector: walk backward from start, at each step applying
// the inverse of the discovering generator and accumulating it, then
// invert the accumulated product. Cost is the depth of start in the
// BFS tree.
func transversalTo[P comparable, E Generator[E, P]](start P, generators []E, indices map[P]int) (E, bool) {
	index, ok := indices[start]
	if !ok {
		var zero E
		return zero, false
	}
	image := start
	transversal := identityFrom(generators)
	for index != noGenerator {
		inverse := generators[index].Inverse()
		image = inverse.ActOn(image)
		transversal = transversal.Times(inverse)
		index = indices[image]
	}
	return transversal.Inverse(), true
}

// identityFrom synthesizes an identity element from a non-empty
// generator list as g·g⁻¹. For symbolic element types the result is
// algebraically, not structurally, trivial; downstream free reduction
// cancels it.
func identityFrom[E Element[E]](generators []E) E {
	g := generators[0]
	return g.Times(g.Inverse())
}
