package slp

import "github.com/katalvlaran/permgroup/group"

// Factory is the shared-storage alternative to the SLP tree: all nodes
// live in one append-only arena and expressions are small handles into
// it, so structurally identical sub-expressions share storage and a
// node is evaluated at most once.
//
// Registration and evaluation mutate the factory; confine each Factory
// to a single goroutine or serialize access externally.
type Factory[E group.Element[E]] struct {
	identity E
	nodes    []factoryNode[E]
	memo     map[int]E
}

// factoryNode is one arena slot. leaf is set for generator nodes;
// left/right index earlier slots (ids only grow, so references stay
// valid forever).
type factoryNode[E group.Element[E]] struct {
	kind  nodeKind
	leaf  E
	left  int
	right int
}

// Expr is a handle to a node of a Factory's arena. Expressions from
// different factories must not be mixed.
type Expr[E group.Element[E]] struct {
	factory *Factory[E]
	id      int
}

// NewFactory creates an empty arena whose node 0 is the identity,
// bound to the given concrete identity element.
func NewFactory[E group.Element[E]](identity E) *Factory[E] {
	f := &Factory[E]{identity: identity, memo: make(map[int]E)}
	f.nodes = append(f.nodes, factoryNode[E]{kind: kindIdentity})
	return f
}

// register appends a node and returns its handle.
func (f *Factory[E]) register(n factoryNode[E]) Expr[E] {
	f.nodes = append(f.nodes, n)
	return Expr[E]{factory: f, id: len(f.nodes) - 1}
}

// Identity returns the handle of the identity node.
func (f *Factory[E]) Identity() Expr[E] {
	return Expr[E]{factory: f, id: 0}
}

// Generator registers a leaf bound to the concrete element it
// evaluates to.
func (f *Factory[E]) Generator(element E) Expr[E] {
	return f.register(factoryNode[E]{kind: kindGenerator, leaf: element})
}

// IsIdentity is true only for the identity node, mirroring the tree
// variant's structural notion of identity.
func (x Expr[E]) IsIdentity() bool {
	return x.factory.nodes[x.id].kind == kindIdentity
}

// Times registers a product node over both operands. O(1).
func (x Expr[E]) Times(multiplicand Expr[E]) Expr[E] {
	return x.factory.register(factoryNode[E]{kind: kindProduct, left: x.id, right: multiplicand.id})
}

// Inverse registers an inverse node. O(1).
func (x Expr[E]) Inverse() Expr[E] {
	return x.factory.register(factoryNode[E]{kind: kindInverse, left: x.id})
}

// Evaluate computes the concrete element the expression denotes.
// Results are memoized per node id, so shared sub-expressions are
// evaluated once per factory lifetime.
func (x Expr[E]) Evaluate() E {
	return x.factory.evaluate(x.id)
}

func (f *Factory[E]) evaluate(id int) E {
	if cached, ok := f.memo[id]; ok {
		return cached
	}
	n := f.nodes[id]
	var result E
	switch n.kind {
	case kindIdentity:
		result = f.identity
	case kindGenerator:
		result = n.leaf
	case kindProduct:
		result = f.evaluate(n.left).Times(f.evaluate(n.right))
	default: // kindInverse
		result = f.evaluate(n.left).Inverse()
	}
	f.memo[id] = result
	return result
}
