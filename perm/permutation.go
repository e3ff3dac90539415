package perm

import "maps"

// Permutation is a bijection of the set 0..n for a suitable choice of
// n, stored as a sparse point→image map. Points not present in the map
// are fixed. Immutable: Times and Inverse return new values.
type Permutation struct {
	n      int
	images map[int]int
}

// New creates a permutation with the given image map. The size bound n
// is the number of supplied images. Bijectivity of the map is not
// checked; it is a precondition on the caller (see package doc).
func New(images map[int]int) Permutation {
	return Permutation{n: len(images), images: maps.Clone(images)}
}

// Of builds a permutation from an inline point, image, point, image, …
// sequence:
//
//	perm.Of(0, 1, 1, 0, 2, 2) // the transposition (0 1) on three points
//
// It panics when given an odd number of arguments; like
// regexp.MustCompile it is meant for literals known at compile time.
func Of(pairs ...int) Permutation {
	if len(pairs)%2 != 0 {
		panic("perm: Of requires an even number of arguments (point, image pairs)")
	}
	images := make(map[int]int, len(pairs)/2)
	for i := 0; i < len(pairs); i += 2 {
		images[pairs[i]] = pairs[i+1]
	}
	return New(images)
}

// ActOn returns the image of point, defaulting to point itself.
func (p Permutation) ActOn(point int) int {
	if image, ok := p.images[point]; ok {
		return image
	}
	return point
}

// IsIdentity reports whether every point in 0..n is fixed.
func (p Permutation) IsIdentity() bool {
	for i := 0; i < p.n; i++ {
		if p.ActOn(i) != i {
			return false
		}
	}
	return true
}

// Times returns the composition "apply p, then q", built over
// 0..max(p.n, q.n) so that operands with different declared sizes
// compose correctly.
func (p Permutation) Times(q Permutation) Permutation {
	maxN := p.n
	if q.n > maxN {
		maxN = q.n
	}
	images := make(map[int]int, maxN)
	for i := 0; i < maxN; i++ {
		images[i] = q.ActOn(p.ActOn(i))
	}
	return New(images)
}

// Inverse returns the permutation with every point/image pair swapped.
func (p Permutation) Inverse() Permutation {
	images := make(map[int]int, p.n)
	for i := 0; i < p.n; i++ {
		images[p.ActOn(i)] = i
	}
	return New(images)
}

// Equal reports structural equality: same declared size and identical
// raw image maps. Two permutations with the same effective action but
// different explicit domains are NOT equal under this definition; the
// stabilizer-chain construction depends on this exact behavior when it
// de-duplicates Schreier generators.
func (p Permutation) Equal(q Permutation) bool {
	return p.n == q.n && maps.Equal(p.images, q.images)
}
