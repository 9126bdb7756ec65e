package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// genCmd groups the generalized-PD subcommands under `pd gen ...`: the
// best normalized PD over any feasible k (3 <= k <= n).
var genCmd = &cobra.Command{
	Use:   "gen",
	Short: "Generalized PD: best normalized PD over all feasible k (k >= 3)",
}

var genMinCmd = &cobra.Command{
	Use:   "min",
	Short: "Minimal generalized PD",
	Run: func(cmd *cobra.Command, args []string) {
		e := mustLoadEngine()
		v, set := e.MinGenPD()
		fmt.Printf("minGenPD: %g\n", v)
		printSet("minGenPD set", set)
		fmt.Printf("minGenPD set size: %d\n", len(set))
	},
}

var genMaxCmd = &cobra.Command{
	Use:   "max",
	Short: "Maximal generalized PD",
	Run: func(cmd *cobra.Command, args []string) {
		e := mustLoadEngine()
		v, set := e.MaxGenPD()
		fmt.Printf("maxGenPD: %g\n", v)
		printSet("maxGenPD set", set)
		fmt.Printf("maxGenPD set size: %d\n", len(set))
	},
}

func init() {
	genCmd.AddCommand(genMinCmd, genMaxCmd)
	rootCmd.AddCommand(genCmd)
}
