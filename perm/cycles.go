package perm

import (
	"strconv"
	"strings"
)

// Cycles decomposes the permutation into its nontrivial cycles, in
// order of each cycle's first (smallest unvisited) point. Fixed points
// are omitted; the identity yields no cycles.
func (p Permutation) Cycles() [][]int {
	var cycles [][]int
	visited := make(map[int]bool, p.n)
	for i := 0; i < p.n; i++ {
		if visited[i] {
			continue
		}
		visited[i] = true
		cycle := []int{i}
		image := p.ActOn(i)
		for !visited[image] {
			visited[image] = true
			cycle = append(cycle, image)
			image = p.ActOn(image)
		}
		if len(cycle) > 1 {
			cycles = append(cycles, cycle)
		}
	}
	return cycles
}

// String renders the permutation in cycle notation, e.g.
// "(0 1 2)(3 4)", or "Id" for the identity.
func (p Permutation) String() string {
	cycles := p.Cycles()
	if len(cycles) == 0 {
		return "Id"
	}
	var b strings.Builder
	for _, cycle := range cycles {
		points := make([]string, len(cycle))
		for i, point := range cycle {
			points[i] = strconv.Itoa(point)
		}
		b.WriteString("(")
		b.WriteString(strings.Join(points, " "))
		b.WriteString(")")
	}
	return b.String()
}
