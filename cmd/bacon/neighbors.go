package main

import (
	"github.com/spf13/cobra"

	"github.com/matsen/bacon/internal/graph"
)

func init() {
	rootCmd.AddCommand(neighborsCmd)
	neighborsCmd.Flags().IntVarP(&neighborsK, "hops", "k", 1, "Maximum number of hops")
}

var neighborsK int

var neighborsCmd = &cobra.Command{
	Use:   "neighbors <name>",
	Short: "Everyone within k hops of a person",
	Long: `List every participant reachable from a person in at most k hops.
The person is included (k=0 lists only them).`,
	Args: cobra.ExactArgs(1),
	RunE: runNeighbors,
}

// NeighborsResult is the response for the neighbors command.
type NeighborsResult struct {
	Name    string       `json:"name"`
	Hops    int          `json:"hops"`
	Count   int          `json:"count"`
	Members graph.Set    `json:"members"`
	Status  graph.Status `json:"status"`
}

func runNeighbors(cmd *cobra.Command, args []string) error {
	if neighborsK < 0 {
		exitWithError(ExitError, "--hops must not be negative")
	}

	g, _ := mustLoadGraph()
	u := mustResolveName(g, args[0])

	hood, status := g.NeighborhoodAtMostK(u, neighborsK)
	res := NeighborsResult{Name: u, Hops: neighborsK, Count: hood.Len(), Members: hood, Status: status}
	return output(res, func() {
		outputHuman("%d participant(s) within %d hop(s) of %s\n\n", hood.Len(), neighborsK, u)
		printNameColumns(hood.Names())
	})
}
