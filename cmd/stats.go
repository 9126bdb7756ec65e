package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/evolbioinfo/pd/internal/ioutil"
	"github.com/evolbioinfo/pd/pd"
)

// statsCmd groups debug/reporting subcommands that exercise the
// per-node query path (pd.Engine.PDAtNode), not just the root-level
// queries the PD/gen subcommands use.
var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Tree and per-node diagnostics",
}

var statsNodesCmd = &cobra.Command{
	Use:   "nodes",
	Short: "Per-node cluster size and extremal PD",
	Long: `Displays, for every node of the input tree (tab separated):
1 - node id
2 - cluster size (number of leaves beneath it)
3 - minPD at that node, evaluated at k = cluster size
4 - maxPD at that node, evaluated at k = cluster size`,
	Run: func(cmd *cobra.Command, args []string) {
		e := mustLoadEngine()
		fmt.Println("id\tcluster_size\tminPD\tmaxPD")
		for id := 0; id < e.NodeCount(); id++ {
			cs := e.ClusterSize(id)
			min, err := e.PDAtNode(id, cs, pd.Min)
			if err != nil {
				ioutil.LogError(err)
				continue
			}
			max, err := e.PDAtNode(id, cs, pd.Max)
			if err != nil {
				ioutil.LogError(err)
				continue
			}
			fmt.Printf("%d\t%d\t%g\t%g\n", id, cs, min, max)
		}
	},
}

var statsClusterCmd = &cobra.Command{
	Use:   "cluster",
	Short: "Per-node cluster membership (taxa beneath each node)",
	Long: `Displays, for every node of the input tree (tab separated):
1 - node id
2 - cluster size
3 - comma-separated taxa beneath that node, decoded from its cluster bitset`,
	Run: func(cmd *cobra.Command, args []string) {
		e := mustLoadEngine()
		fmt.Println("id\tcluster_size\ttaxa")
		for id := 0; id < e.NodeCount(); id++ {
			leaves, err := e.ClusterLeaves(id)
			if err != nil {
				ioutil.LogError(err)
				continue
			}
			fmt.Printf("%d\t%d\t%s\n", id, e.ClusterSize(id), joinComma(leaves))
		}
	},
}

func init() {
	statsCmd.AddCommand(statsNodesCmd, statsClusterCmd)
	rootCmd.AddCommand(statsCmd)
}
