package slp_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/permgroup/group"
	"github.com/katalvlaran/permgroup/perm"
	"github.com/katalvlaran/permgroup/slp"
	"github.com/katalvlaran/permgroup/word"
)

// sixPoints builds the group generated by the transposition (0 1) and
// the rotation (0 1 2 3 4 5) over SLP-tagged pairs, so that stripping
// leaves a symbolic trace of every transversal it peeled off.
func sixPoints(t *testing.T) *group.Group[int, slp.Pair] {
	t.Helper()
	transposition := slp.NewPair(
		slp.Generator(0),
		perm.Of(0, 1, 1, 0, 2, 2, 3, 3, 4, 4, 5, 5),
	)
	rotation := slp.NewPair(
		slp.Generator(1),
		perm.Of(0, 1, 1, 2, 2, 3, 3, 4, 4, 5, 5, 0),
	)

	g, err := group.New([]int{0, 1, 2, 3, 4, 5}, []slp.Pair{transposition, rotation})
	require.NoError(t, err)
	return g
}

// TestStrip_YieldsGeneratorWord strips a known member carried as an
// SLP pair, then expands the residue's symbolic half into the exact
// free-group word in the original generators. The inverse of that word
// rebuilds the element, certifying membership.
func TestStrip_YieldsGeneratorWord(t *testing.T) {
	g := sixPoints(t)

	element := slp.NewPair(
		slp.Identity(),
		perm.Of(0, 1, 1, 0, 2, 5, 3, 4, 4, 3, 5, 2),
	)

	stripped := g.Strip(element)
	require.True(t, stripped.Perm.IsIdentity(), "the element is a member; its residue must act trivially")

	morphism := slp.MorphismOf(map[uint64]rune{0: 't', 1: 'r'})
	rendered, err := stripped.Transform(morphism)
	require.NoError(t, err)

	expected := word.New([]word.Term{
		{Symbol: 'r', Exponent: 4},
		{Symbol: 't', Exponent: 1},
		{Symbol: 'r', Exponent: -5},
		{Symbol: 't', Exponent: -1},
		{Symbol: 'r', Exponent: 2},
		{Symbol: 't', Exponent: -1},
		{Symbol: 'r', Exponent: 1},
		{Symbol: 't', Exponent: -1},
		{Symbol: 'r', Exponent: -3},
		{Symbol: 't', Exponent: 1},
		{Symbol: 'r', Exponent: 5},
		{Symbol: 't', Exponent: 1},
		{Symbol: 'r', Exponent: -3},
		{Symbol: 't', Exponent: -1},
		{Symbol: 'r', Exponent: -1},
		{Symbol: 't', Exponent: 1},
		{Symbol: 'r', Exponent: 1},
		{Symbol: 't', Exponent: 1},
		{Symbol: 'r', Exponent: 3},
		{Symbol: 't', Exponent: 1},
		{Symbol: 'r', Exponent: -2},
		{Symbol: 't', Exponent: 1},
	})
	assert.True(t, rendered.Inverse().Equal(expected),
		"word = %v; want %v", rendered.Inverse(), expected)
}

// TestStrip_NonMemberLeavesResidue verifies that stripping a
// permutation outside the generated group leaves a residue that still
// moves points.
func TestStrip_NonMemberLeavesResidue(t *testing.T) {
	transposition := slp.NewPair(slp.Generator(0), perm.Of(0, 1, 1, 0, 2, 5, 3, 4, 4, 3, 5, 2))
	rotation := slp.NewPair(slp.Generator(1), perm.Of(0, 1, 1, 2, 2, 3, 3, 4, 4, 5, 5, 0))
	g, err := group.New([]int{0, 1, 2, 3, 4, 5}, []slp.Pair{transposition, rotation})
	require.NoError(t, err)

	outsider := slp.NewPair(slp.Identity(), perm.Of(0, 1, 1, 0, 2, 2, 3, 3, 4, 4, 5, 5))

	assert.False(t, g.IsMember(outsider), "a lone transposition is not a hexagon symmetry")
	assert.False(t, g.Strip(outsider).Perm.IsIdentity())
}
