package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/permgroup/group"
	"github.com/katalvlaran/permgroup/perm"
)

var memberMap string

var memberCmd = &cobra.Command{
	Use:   "member",
	Short: "Decide whether a permutation is a symmetry of the hexagon",
	RunE: func(cmd *cobra.Command, args []string) error {
		element, err := parsePermFlag(memberMap)
		if err != nil {
			return err
		}
		g, err := dihedral()
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%t a member\n", g.IsMember(element))
		return nil
	},
}

func init() {
	memberCmd.Flags().StringVar(&memberMap, "map", "0:1,1:0,2:5,3:4,4:3,5:2",
		"candidate permutation as point:image pairs")
	rootCmd.AddCommand(memberCmd)
}

// dihedral builds the symmetry group of the hexagon, generated by a
// reflection and a rotation on six points.
func dihedral() (*group.Group[int, perm.Permutation], error) {
	reflection := perm.Of(0, 1, 1, 0, 2, 5, 3, 4, 4, 3, 5, 2)
	rotation := perm.Of(0, 1, 1, 2, 2, 3, 3, 4, 4, 5, 5, 0)

	gset := []int{0, 1, 2, 3, 4, 5}
	return group.New(gset, []perm.Permutation{reflection, rotation})
}
