package slp

import (
	"errors"
	"maps"

	"github.com/katalvlaran/permgroup/word"
)

// ErrUnmappedGenerator is returned by Transform when an SLP refers to
// a generator tag the morphism has no image for — a mismatch between
// the SLP's generator vocabulary and the morphism's domain.
var ErrUnmappedGenerator = errors.New("slp: generator has no image under the morphism")

// Morphism is an immutable mapping from SLP generator tags to
// free-group words. It covers exactly the generators of one
// presentation; it is not a general homomorphism evaluator — only
// generator tags are ever looked up.
type Morphism struct {
	images map[uint64]word.Word
}

// NewMorphism creates a morphism from explicit generator images. The
// map is copied.
func NewMorphism(images map[uint64]word.Word) *Morphism {
	return &Morphism{images: maps.Clone(images)}
}

// MorphismOf builds a morphism sending each generator tag to the
// single-symbol word of the paired rune:
//
//	slp.MorphismOf(map[uint64]rune{0: 't', 1: 'r'})
func MorphismOf(symbols map[uint64]rune) *Morphism {
	images := make(map[uint64]word.Word, len(symbols))
	for tag, symbol := range symbols {
		images[tag] = word.Generator(symbol)
	}
	return &Morphism{images: images}
}

// Image returns the word mapped to the given generator tag.
func (m *Morphism) Image(tag uint64) (word.Word, bool) {
	image, ok := m.images[tag]
	return image, ok
}
