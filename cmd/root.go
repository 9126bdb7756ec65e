/*
Package cmd implements the pd command-line front end: a thin cobra
wrapper that reads a Newick file, optionally binarizes it, builds a
pd.Engine and prints whichever metric the invoked subcommand asks for.
None of this package is consulted by the DP core (package pd) — it is
the "CLI surface" the core's external-interfaces section describes as
an outside collaborator.
*/
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/evolbioinfo/pd/internal/ioutil"
	"github.com/evolbioinfo/pd/pd"
	"github.com/evolbioinfo/pd/tree"
)

var (
	treeFile string
	binarize bool

	logger = ioutil.NewLogger()
)

// rootCmd is the base command; every subcommand hangs off it.
var rootCmd = &cobra.Command{
	Use:   "pd",
	Short: "Generalized phylogenetic diversity on a rooted binary tree",
	Long: `pd computes, over all k-leaf subsets of a rooted edge-weighted tree,
the minimum and maximum induced-subtree edge weight (PD) and its
normalized form (PD divided by edge count), plus the generalized PD
(the best normalized PD over any feasible k >= 3) and the average PD
over all k-subsets.`,
}

// Execute runs the root command, exiting with status 1 on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&treeFile, "file", "f", "", "input Newick tree file (required)")
	rootCmd.PersistentFlags().BoolVar(&binarize, "binarize", false, "resolve multifurcations (zero-weight edges) before building the engine")
}

// loadEngine reads and parses treeFile, optionally binarizes it, and
// builds the DP engine. Any failure here is error kind 1 or 2 from the
// core's error-handling design: malformed input, or a non-binary tree
// when --binarize was not requested.
func loadEngine() (*pd.Engine, error) {
	if treeFile == "" {
		return nil, fmt.Errorf("pd: -f/--file is required")
	}
	logger.Start(treeFile)
	data, err := os.ReadFile(treeFile)
	if err != nil {
		return nil, fmt.Errorf("pd: reading %s: %w", treeFile, err)
	}
	t, err := tree.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("pd: parsing %s: %w", treeFile, err)
	}
	if !t.IsBinary() {
		if !binarize {
			return nil, fmt.Errorf("pd: tree is not binary; pass --binarize to resolve multifurcations")
		}
		if err := tree.Binarize(t); err != nil {
			return nil, fmt.Errorf("pd: binarizing %s: %w", treeFile, err)
		}
	}
	e, err := pd.NewEngine(t)
	if err != nil {
		return nil, fmt.Errorf("pd: building engine: %w", err)
	}
	logger.KV("leaves", e.Leaves())
	logger.End()
	return e, nil
}

// mustLoadEngine is the Run-func convenience: on failure it reports
// and exits, matching the core's "no partial-state outcomes" policy.
func mustLoadEngine() *pd.Engine {
	e, err := loadEngine()
	if err != nil {
		ioutil.ExitWithMessage(err)
	}
	return e
}

func printSet(label string, set []string) {
	fmt.Printf("%s: %s\n", label, joinComma(set))
}

func joinComma(set []string) string {
	out := ""
	for i, s := range set {
		if i > 0 {
			out += ","
		}
		out += s
	}
	return out
}
