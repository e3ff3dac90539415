package slp

import (
	"fmt"

	"github.com/katalvlaran/permgroup/group"
	"github.com/katalvlaran/permgroup/perm"
	"github.com/katalvlaran/permgroup/word"
)

// Pair is usable directly as a chain-construction element.
var _ group.Generator[Pair, int] = Pair{}

// Pair couples an SLP bookkeeping expression with the concrete
// permutation it denotes. The stabilizer chain computes orbits and
// identities on the permutation half while the SLP half records, in
// O(1) per operation, how the element was assembled from the original
// generators.
type Pair struct {
	// Expr is the symbolic half.
	Expr *SLP
	// Perm is the concrete half; ActOn and IsIdentity delegate to it.
	Perm perm.Permutation
}

// NewPair creates a Pair from both halves.
func NewPair(expr *SLP, p perm.Permutation) Pair {
	return Pair{Expr: expr, Perm: p}
}

// IsIdentity reports whether the permutation half is the identity. The
// SLP half is deliberately ignored: it may be a structurally nontrivial
// expression that happens to denote the identity.
func (p Pair) IsIdentity() bool {
	return p.Perm.IsIdentity()
}

// Times composes both halves left to right.
func (p Pair) Times(multiplicand Pair) Pair {
	return Pair{
		Expr: p.Expr.Times(multiplicand.Expr),
		Perm: p.Perm.Times(multiplicand.Perm),
	}
}

// Inverse inverts both halves.
func (p Pair) Inverse() Pair {
	return Pair{Expr: p.Expr.Inverse(), Perm: p.Perm.Inverse()}
}

// ActOn applies the permutation half to point.
func (p Pair) ActOn(point int) int {
	return p.Perm.ActOn(point)
}

// Equal reports structural equality of both halves. Two pairs denoting
// the same permutation through differently shaped expressions compare
// unequal.
func (p Pair) Equal(other Pair) bool {
	return p.Expr.Equal(other.Expr) && p.Perm.Equal(other.Perm)
}

// Transform expands the SLP half into a free-group word under m.
func (p Pair) Transform(m *Morphism) (word.Word, error) {
	return p.Expr.Transform(m)
}

// String renders both halves.
func (p Pair) String() string {
	return fmt.Sprintf("%v = %v", p.Expr, p.Perm)
}
