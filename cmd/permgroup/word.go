package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/permgroup/group"
	"github.com/katalvlaran/permgroup/perm"
	"github.com/katalvlaran/permgroup/slp"
)

var wordMap string

var wordCmd = &cobra.Command{
	Use:   "word",
	Short: "Certify membership with a word in the generators t and r",
	Long: `Strips the candidate through a chain built over SLP-tagged elements,
then expands the residue into a free-group word under t = (0 1),
r = (0 1 2 3 4 5). The printed word rebuilds the candidate.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		candidate, err := parsePermFlag(wordMap)
		if err != nil {
			return err
		}
		g, err := tagged()
		if err != nil {
			return err
		}

		stripped := g.Strip(slp.NewPair(slp.Identity(), candidate))

		morphism := slp.MorphismOf(map[uint64]rune{0: 't', 1: 'r'})
		rendered, err := stripped.Transform(morphism)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%v %v\n", stripped.Perm.Inverse(), rendered.Inverse())
		return nil
	},
}

func init() {
	wordCmd.Flags().StringVar(&wordMap, "map", "0:1,1:0,2:5,3:4,4:3,5:2",
		"candidate permutation as point:image pairs")
	rootCmd.AddCommand(wordCmd)
}

// tagged builds the group generated by the transposition (0 1) and the
// full rotation over (SLP, Permutation) pairs, so stripping leaves a
// symbolic trace.
func tagged() (*group.Group[int, slp.Pair], error) {
	transposition := slp.NewPair(
		slp.Generator(0),
		perm.Of(0, 1, 1, 0, 2, 2, 3, 3, 4, 4, 5, 5),
	)
	rotation := slp.NewPair(
		slp.Generator(1),
		perm.Of(0, 1, 1, 2, 2, 3, 3, 4, 4, 5, 5, 0),
	)

	gset := []int{0, 1, 2, 3, 4, 5}
	return group.New(gset, []slp.Pair{transposition, rotation})
}
