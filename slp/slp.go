package slp

import (
	"fmt"

	"github.com/katalvlaran/permgroup/word"
)

// nodeKind tags the variants of an SLP node.
type nodeKind uint8

const (
	kindIdentity nodeKind = iota
	kindGenerator
	kindProduct
	kindInverse
)

// SLP is one node of an immutable straight-line-program expression
// tree. Build leaves with Identity and Generator; grow trees with
// Times and Inverse. Trees are never mutated after construction and
// never simplified.
type SLP struct {
	kind nodeKind
	gen  uint64
	// left holds the single operand of an Inverse node; Product nodes
	// use both children.
	left, right *SLP
}

// Identity returns the identity node.
func Identity() *SLP {
	return &SLP{kind: kindIdentity}
}

// Generator returns a leaf referring to the abstract generator with
// the given index.
func Generator(index uint64) *SLP {
	return &SLP{kind: kindGenerator, gen: index}
}

// IsIdentity is true only for the literal Identity node; products that
// cancel algebraically are not detected.
func (s *SLP) IsIdentity() bool {
	return s.kind == kindIdentity
}

// Times returns a fresh Product node over both operands. O(1); no
// flattening, no simplification.
func (s *SLP) Times(multiplicand *SLP) *SLP {
	return &SLP{kind: kindProduct, left: s, right: multiplicand}
}

// Inverse returns a fresh Inverse node wrapping s. O(1).
func (s *SLP) Inverse() *SLP {
	return &SLP{kind: kindInverse, left: s}
}

// Equal reports structural equality of both trees.
func (s *SLP) Equal(other *SLP) bool {
	if s.kind != other.kind {
		return false
	}
	switch s.kind {
	case kindIdentity:
		return true
	case kindGenerator:
		return s.gen == other.gen
	case kindProduct:
		return s.left.Equal(other.left) && s.right.Equal(other.right)
	default: // kindInverse
		return s.left.Equal(other.left)
	}
}

// Transform expands the tree into a free-group word under m: Identity
// becomes the empty word, a Generator becomes its image, a Product the
// product of its sub-results, an Inverse the inverse of its
// sub-result. Returns ErrUnmappedGenerator (wrapped with the tag) when
// a generator has no image.
func (s *SLP) Transform(m *Morphism) (word.Word, error) {
	switch s.kind {
	case kindIdentity:
		return word.Identity(), nil
	case kindGenerator:
		image, ok := m.Image(s.gen)
		if !ok {
			return word.Word{}, fmt.Errorf("%w: G_%d", ErrUnmappedGenerator, s.gen)
		}
		return image, nil
	case kindProduct:
		left, err := s.left.Transform(m)
		if err != nil {
			return word.Word{}, err
		}
		right, err := s.right.Transform(m)
		if err != nil {
			return word.Word{}, err
		}
		return left.Times(right), nil
	default: // kindInverse
		sub, err := s.left.Transform(m)
		if err != nil {
			return word.Word{}, err
		}
		return sub.Inverse(), nil
	}
}

// String renders the tree fully parenthesized: "Id", "G_1",
// "(G_1) * (G_2)", "(G_1)^-1".
func (s *SLP) String() string {
	switch s.kind {
	case kindIdentity:
		return "Id"
	case kindGenerator:
		return fmt.Sprintf("G_%d", s.gen)
	case kindProduct:
		return fmt.Sprintf("(%s) * (%s)", s.left, s.right)
	default: // kindInverse
		return fmt.Sprintf("(%s)^-1", s.left)
	}
}
