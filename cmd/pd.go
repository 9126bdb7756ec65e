package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/evolbioinfo/pd/pd"
)

var kFlag int

// pdCmd groups the point-query and range-scan subcommands under
// `pd PD ...`, matching the CLI surface: min, max, all_min, all_max.
var pdCmd = &cobra.Command{
	Use:   "PD",
	Short: "Extremal PD at a given k, or scanned over all feasible k",
}

var pdMinCmd = &cobra.Command{
	Use:   "min",
	Short: "Minimum PD (and normalized PD) of a k-leaf subset",
	Run: func(cmd *cobra.Command, args []string) {
		e := mustLoadEngine()
		k := resolveK(e, kFlag)
		fmt.Printf("minPD: %g\n", e.MinPD(k))
		fmt.Printf("normalized minPD: %g\n", e.NormMinPD(k))
		printSet("minPD set", e.MinPDSet(k))
		printSet("normalized minPD set", e.NormMinPDSet(k))
	},
}

var pdMaxCmd = &cobra.Command{
	Use:   "max",
	Short: "Maximum PD (and normalized PD) of a k-leaf subset",
	Run: func(cmd *cobra.Command, args []string) {
		e := mustLoadEngine()
		k := resolveK(e, kFlag)
		fmt.Printf("maxPD: %g\n", e.MaxPD(k))
		fmt.Printf("normalized maxPD: %g\n", e.NormMaxPD(k))
		printSet("maxPD set", e.MaxPDSet(k))
		printSet("normalized maxPD set", e.NormMaxPDSet(k))
	},
}

var pdAllMinCmd = &cobra.Command{
	Use:   "all_min",
	Short: "Minimum PD for every feasible k (3 to n)",
	Run: func(cmd *cobra.Command, args []string) {
		e := mustLoadEngine()
		printRange(e.Range(pd.Min, 3, e.Leaves()), "minPD", "normalized minPD")
	},
}

var pdAllMaxCmd = &cobra.Command{
	Use:   "all_max",
	Short: "Maximum PD for every feasible k (3 to n)",
	Run: func(cmd *cobra.Command, args []string) {
		e := mustLoadEngine()
		printRange(e.Range(pd.Max, 3, e.Leaves()), "maxPD", "normalized maxPD")
	},
}

// resolveK substitutes k=n when the caller passes k=0.
func resolveK(e *pd.Engine, k int) int {
	if k == 0 {
		return e.Leaves()
	}
	return k
}

func printRange(rows []pd.KResult, label, normLabel string) {
	for _, r := range rows {
		fmt.Printf("k=%d %s: %g %s: %g %s set: %s %s set: %s\n",
			r.K, label, r.PD, normLabel, r.NormPD, label, joinComma(r.Set), normLabel, joinComma(r.NormSet))
	}
}

func init() {
	pdMinCmd.Flags().IntVarP(&kFlag, "number", "n", 0, "subset size k (0 substitutes n)")
	pdMaxCmd.Flags().IntVarP(&kFlag, "number", "n", 0, "subset size k (0 substitutes n)")

	pdCmd.AddCommand(pdMinCmd, pdMaxCmd, pdAllMinCmd, pdAllMaxCmd)
	rootCmd.AddCommand(pdCmd)
}
