package main

import (
	"github.com/spf13/cobra"

	"github.com/matsen/bacon/internal/graph"
)

func init() {
	rootCmd.AddCommand(distanceCmd)
	distanceCmd.Flags().BoolVar(&distanceNaive, "naive", false, "Use the linear k-search instead of breadth-first search")
}

var distanceNaive bool

var distanceCmd = &cobra.Command{
	Use:   "distance <name> [other]",
	Short: "Shortest collaboration distance between two people",
	Long: `Print the number of collaboration hops between two people.

With a single name, the distance to the configured default target
(Kevin Bacon unless changed) is printed: the Bacon number.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runDistance,
}

// DistanceResult is the response for the distance command.
type DistanceResult struct {
	From     string         `json:"from"`
	To       string         `json:"to"`
	Distance graph.Distance `json:"distance"`
	Status   graph.Status   `json:"status"`
}

func runDistance(cmd *cobra.Command, args []string) error {
	g, _ := mustLoadGraph()

	target := cfg.DefaultTarget
	if len(args) == 2 {
		target = args[1]
	}
	u := mustResolveName(g, args[0])
	v := mustResolveName(g, target)

	var d graph.Distance
	if distanceNaive {
		d = g.DistanceNaive(u, v)
	} else {
		d = g.Distance(u, v)
	}

	res := DistanceResult{From: u, To: v, Distance: d, Status: d.Status}
	return output(res, func() {
		switch {
		case !d.Defined():
			outputHuman("%s and %s are not connected\n", u, v)
		case len(args) == 1:
			outputHuman("%s has a Bacon number of %d (target: %s)\n", u, d.Hops, v)
		default:
			outputHuman("%s is at distance %d from %s\n", u, d.Hops, v)
		}
	})
}
