// Package word implements free-group words in free-reduced normal form.
package word

import (
	"fmt"
	"strings"
)

// Term is one symbol/exponent pair of a word.
type Term struct {
	// Symbol names the free generator this term refers to.
	Symbol rune
	// Exponent is the (never zero, once normalized) power of the symbol.
	Exponent int
}

// Word is an element of a free group: a sequence of terms with no zero
// exponent and no two adjacent terms sharing a symbol. The zero value
// is the identity. Words are immutable; Times and Inverse return new
// values.
type Word struct {
	terms []Term
}

// Identity returns the empty word.
func Identity() Word {
	return Word{}
}

// Generator returns the word consisting of a single symbol to the
// first power.
func Generator(symbol rune) Word {
	return Word{terms: []Term{{Symbol: symbol, Exponent: 1}}}
}

// New builds a word from the given terms, normalizing them into
// free-reduced form.
func New(terms []Term) Word {
	return Word{terms: normalize(terms)}
}

// normalize free-reduces terms: equal adjacent symbols merge, terms
// whose exponent sums to zero vanish, and a vanished term re-exposes
// its left neighbour for further cancellation. The input is not
// mutated.
func normalize(terms []Term) []Term {
	if len(terms) == 0 {
		return nil
	}
	normalized := make([]Term, 0, len(terms))
	current := terms[0]
	index := 1
	for index < len(terms) {
		next := terms[index]
		if current.Symbol == next.Symbol {
			current.Exponent += next.Exponent
		} else {
			if current.Exponent != 0 {
				normalized = append(normalized, current)
			} else if len(normalized) > 0 {
				// current cancelled away: pop the previous term back and
				// re-evaluate it against next without advancing.
				current = normalized[len(normalized)-1]
				normalized = normalized[:len(normalized)-1]
				continue
			}
			current = next
		}
		index++
	}
	if current.Exponent != 0 {
		normalized = append(normalized, current)
	}
	if len(normalized) == 0 {
		return nil
	}
	return normalized
}

// IsIdentity reports whether the word is empty.
func (w Word) IsIdentity() bool {
	return len(w.terms) == 0
}

// Times returns the product w·v: the concatenation of both term
// sequences, renormalized.
func (w Word) Times(v Word) Word {
	terms := make([]Term, 0, len(w.terms)+len(v.terms))
	terms = append(terms, w.terms...)
	terms = append(terms, v.terms...)
	return Word{terms: normalize(terms)}
}

// Inverse returns w⁻¹: the terms in reverse order with negated
// exponents. A reduced word's inverse is reduced, so no normalization
// is needed.
func (w Word) Inverse() Word {
	if len(w.terms) == 0 {
		return Word{}
	}
	terms := make([]Term, len(w.terms))
	for i, t := range w.terms {
		terms[len(w.terms)-1-i] = Term{Symbol: t.Symbol, Exponent: -t.Exponent}
	}
	return Word{terms: terms}
}

// Equal reports whether both words have identical term sequences.
// Because words are always normalized this coincides with equality in
// the free group.
func (w Word) Equal(v Word) bool {
	if len(w.terms) != len(v.terms) {
		return false
	}
	for i, t := range w.terms {
		if t != v.terms[i] {
			return false
		}
	}
	return true
}

// Terms returns a copy of the word's term sequence.
func (w Word) Terms() []Term {
	if len(w.terms) == 0 {
		return nil
	}
	terms := make([]Term, len(w.terms))
	copy(terms, w.terms)
	return terms
}

// String renders the word as sym^exp runs, e.g. "x^2y^-3x^-2y^3", or
// "Id" for the identity.
func (w Word) String() string {
	if len(w.terms) == 0 {
		return "Id"
	}
	var b strings.Builder
	for _, t := range w.terms {
		fmt.Fprintf(&b, "%c^%d", t.Symbol, t.Exponent)
	}
	return b.String()
}
