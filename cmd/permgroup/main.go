// Command permgroup wires fixed example groups on six points and
// answers membership questions about them from the command line.
package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/permgroup/perm"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "permgroup",
	Short: "Ask membership questions about finite permutation groups",
	Long: `Permgroup builds a stabilizer chain for a group given by generators
and uses it to decide membership without enumerating the group.

The bundled examples act on six points: "member" works in the dihedral
group of the hexagon, "word" additionally certifies membership by
printing a word in the original generators.`,
}

// parsePermFlag parses a "point:image,point:image,…" flag value into a
// permutation.
func parsePermFlag(value string) (perm.Permutation, error) {
	images := make(map[int]int)
	for _, pair := range strings.Split(value, ",") {
		point, image, ok := strings.Cut(strings.TrimSpace(pair), ":")
		if !ok {
			return perm.Permutation{}, fmt.Errorf("malformed pair %q: want point:image", pair)
		}
		p, err := strconv.Atoi(point)
		if err != nil {
			return perm.Permutation{}, fmt.Errorf("malformed point in %q: %w", pair, err)
		}
		i, err := strconv.Atoi(image)
		if err != nil {
			return perm.Permutation{}, fmt.Errorf("malformed image in %q: %w", pair, err)
		}
		images[p] = i
	}
	return perm.New(images), nil
}
