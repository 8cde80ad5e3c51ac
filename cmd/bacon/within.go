package main

import (
	"github.com/spf13/cobra"

	"github.com/matsen/bacon/internal/graph"
)

func init() {
	rootCmd.AddCommand(withinCmd)
	withinCmd.Flags().IntVarP(&withinK, "hops", "k", 1, "Maximum number of hops")
}

var withinK int

var withinCmd = &cobra.Command{
	Use:   "within <name> <other>",
	Short: "Test whether two people are at most k hops apart",
	Args:  cobra.ExactArgs(2),
	RunE:  runWithin,
}

// WithinResult is the response for the within command.
type WithinResult struct {
	A      string       `json:"a"`
	B      string       `json:"b"`
	Hops   int          `json:"hops"`
	Within bool         `json:"within"`
	Status graph.Status `json:"status"`
}

func runWithin(cmd *cobra.Command, args []string) error {
	if withinK < 0 {
		exitWithError(ExitError, "--hops must not be negative")
	}

	g, _ := mustLoadGraph()
	u := mustResolveName(g, args[0])
	v := mustResolveName(g, args[1])

	within, status := g.IsWithinDistance(u, v, withinK)
	res := WithinResult{A: u, B: v, Hops: withinK, Within: within, Status: status}
	return output(res, func() {
		if within {
			outputHuman("%s and %s are within %d hop(s)\n", u, v, withinK)
		} else {
			outputHuman("%s and %s are more than %d hop(s) apart\n", u, v, withinK)
		}
	})
}
