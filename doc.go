// Package permgroup is your in-memory playground for computing with
// finite permutation groups — build a stabilizer chain from a handful
// of generators and answer "is this element in the group, and why?"
// without ever enumerating the group itself.
//
// 🚀 What is permgroup?
//
//	A modern, pure-Go library that brings together:
//		• Capability interfaces: Element, Action — any algebraic value can play
//		• Permutations: sparse image maps with cycle-notation rendering
//		• Stabilizer chains: the Schreier–Sims base & strong generating set
//		• Membership: strip (sift) any candidate through the chain
//		• Straight-line programs: O(1) composition via expression trees
//		• Free words: fully reduced symbolic answers ("r^4 t r^-5 …")
//		• Morphisms: expand SLP generator tags into free-group words
//
// ✨ Why choose permgroup?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Deterministic – BFS orbit order and generator order are reproducible
//   - Pure Go – no cgo, no hidden deps
//   - Generic – the chain works over any type satisfying the capabilities
//
// Under the hood, everything is organized under four subpackages:
//
//	group/ — Element/Action capabilities, the Group chain orchestrator
//	perm/  — finite permutations as sparse image maps
//	word/  — free-group words in normal form
//	slp/   — straight-line programs, morphisms, and the arena factory
//
// Quick example:
//
//	t := perm.Of(0, 1, 1, 0, 2, 5, 3, 4, 4, 3, 5, 2) // a reflection
//	r := perm.Of(0, 1, 1, 2, 2, 3, 3, 4, 4, 5, 5, 0) // a rotation
//	g, _ := group.New([]int{0, 1, 2, 3, 4, 5}, []perm.Permutation{t, r})
//	fmt.Println(g.Size()) // 12 — the dihedral group D6
//
// Dive into README.md for full examples and the cmd/permgroup CLI for
// a ready-made membership oracle over the dihedral example.
//
//	go get github.com/katalvlaran/permgroup
package permgroup
