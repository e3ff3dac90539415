package group_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/permgroup/group"
	"github.com/katalvlaran/permgroup/perm"
)

// d3 is the dihedral group of the triangle: a transposition and a
// 3-cycle on three points, order 6.
func d3(t *testing.T) *group.Group[int, perm.Permutation] {
	t.Helper()
	transposition := perm.Of(0, 1, 1, 0, 2, 2)
	rotation := perm.Of(0, 1, 1, 2, 2, 0)

	g, err := group.New([]int{0, 1, 2}, []perm.Permutation{transposition, rotation})
	require.NoError(t, err)
	return g
}

// d6 is the dihedral group of the hexagon: a reflection and a 6-cycle
// on six points, order 12.
func d6(t *testing.T) *group.Group[int, perm.Permutation] {
	t.Helper()
	reflection := perm.Of(0, 1, 1, 0, 2, 5, 3, 4, 4, 3, 5, 2)
	rotation := perm.Of(0, 1, 1, 2, 2, 3, 3, 4, 4, 5, 5, 0)

	g, err := group.New([]int{0, 1, 2, 3, 4, 5}, []perm.Permutation{reflection, rotation})
	require.NoError(t, err)
	return g
}

// TestGroup_SizeD3 verifies the order of the triangle group.
func TestGroup_SizeD3(t *testing.T) {
	assert.Equal(t, 6, d3(t).Size())
}

// TestGroup_SizeD6 verifies the order of the hexagon group.
func TestGroup_SizeD6(t *testing.T) {
	assert.Equal(t, 12, d6(t).Size())
}

// TestGroup_MembershipD3 verifies membership of a reflection that was
// not itself a generator.
func TestGroup_MembershipD3(t *testing.T) {
	g := d3(t)

	other := perm.Of(0, 2, 1, 1, 2, 0)
	assert.True(t, g.IsMember(other), "(0 2) lies in D3")
}

// TestGroup_MembershipD6 verifies both directions: a composite
// reflection is a member, while a lone transposition of two of the six
// points is not.
func TestGroup_MembershipD6(t *testing.T) {
	g := d6(t)

	member := perm.Of(0, 1, 1, 0, 2, 5, 3, 4, 4, 3, 5, 2)
	assert.True(t, g.IsMember(member))

	// (0 1) fixes four of six points; no hexagon symmetry does that.
	outsider := perm.Of(0, 1, 1, 0, 2, 2, 3, 3, 4, 4, 5, 5)
	assert.False(t, g.IsMember(outsider))
}

// TestGroup_MembershipOfGeneratorProducts walks a sample of products
// of generators and their inverses; all must be members.
func TestGroup_MembershipOfGeneratorProducts(t *testing.T) {
	g := d6(t)
	reflection := perm.Of(0, 1, 1, 0, 2, 5, 3, 4, 4, 3, 5, 2)
	rotation := perm.Of(0, 1, 1, 2, 2, 3, 3, 4, 4, 5, 5, 0)

	cases := []perm.Permutation{
		rotation.Times(rotation),
		rotation.Times(reflection),
		reflection.Times(rotation.Inverse()),
		rotation.Times(reflection).Times(rotation.Inverse()),
		reflection.Inverse(),
	}
	for i, element := range cases {
		assert.True(t, g.IsMember(element), "case %d: %v must be a member", i, element)
	}
}

// TestGroup_StripIsIdempotent verifies that stripping an already
// stripped residue changes nothing.
func TestGroup_StripIsIdempotent(t *testing.T) {
	g := d6(t)
	outsider := perm.Of(0, 1, 1, 0, 2, 2, 3, 3, 4, 4, 5, 5)

	once := g.Strip(outsider)
	twice := g.Strip(once)

	assert.True(t, once.Equal(twice), "strip(strip(x)) must equal strip(x)")
}

// TestGroup_TrivialGroup verifies that no generators mean the trivial
// group of order 1.
func TestGroup_TrivialGroup(t *testing.T) {
	g, err := group.New([]int{0, 1, 2}, []perm.Permutation{})
	require.NoError(t, err)

	assert.Equal(t, 1, g.Size())
	assert.True(t, g.IsMember(perm.New(map[int]int{0: 0})))
}

// TestGroup_TrivialActionRejected verifies the fatal precondition: a
// non-empty generating set that moves nothing aborts construction.
func TestGroup_TrivialActionRejected(t *testing.T) {
	identity := perm.Of(0, 0, 1, 1)

	_, err := group.New([]int{0, 1}, []perm.Permutation{identity})

	assert.ErrorIs(t, err, group.ErrTrivialAction)
}

// TestGroupAxioms spot-checks the algebra the chain relies on:
// g·g⁻¹ == e and associativity.
func TestGroupAxioms(t *testing.T) {
	reflection := perm.Of(0, 1, 1, 0, 2, 5, 3, 4, 4, 3, 5, 2)
	rotation := perm.Of(0, 1, 1, 2, 2, 3, 3, 4, 4, 5, 5, 0)
	third := rotation.Times(reflection)

	assert.True(t, reflection.Times(reflection.Inverse()).IsIdentity())
	assert.True(t, rotation.Times(rotation.Inverse()).IsIdentity())

	left := reflection.Times(rotation).Times(third)
	right := reflection.Times(rotation.Times(third))
	assert.True(t, left.Equal(right), "composition must be associative")
}

// TestGroup_SymmetricGroup verifies the order of S4 generated by a
// transposition and a 4-cycle.
func TestGroup_SymmetricGroup(t *testing.T) {
	transposition := perm.Of(0, 1, 1, 0, 2, 2, 3, 3)
	cycle := perm.Of(0, 1, 1, 2, 2, 3, 3, 0)

	g, err := group.New([]int{0, 1, 2, 3}, []perm.Permutation{transposition, cycle})
	require.NoError(t, err)

	assert.Equal(t, 24, g.Size())
}
