package main

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"github.com/matsen/bacon/internal/graph"
	"github.com/matsen/bacon/internal/logger"
)

func init() {
	rootCmd.AddCommand(centerCmd)
	rootCmd.AddCommand(diameterCmd)
	centerCmd.Flags().IntVar(&centerTop, "top", 0, "Also list the N most central participants")
	for _, c := range []*cobra.Command{centerCmd, diameterCmd} {
		c.Flags().IntVar(&centralityWorkers, "workers", 0, "Parallel searches (default from config, 0 = all CPUs)")
	}
}

var (
	centerTop         int
	centralityWorkers int
)

var centerCmd = &cobra.Command{
	Use:   "center",
	Short: "The most central participant of the graph",
	Long: `Find the participant with the smallest eccentricity. Ties are broken by
choosing the alphabetically first name.

This runs one breadth-first search per participant and can take a while
on large files; press Ctrl-C to cancel.`,
	Args: cobra.NoArgs,
	RunE: runCenter,
}

var diameterCmd = &cobra.Command{
	Use:   "diameter",
	Short: "The largest eccentricity in the graph",
	Args:  cobra.NoArgs,
	RunE:  runDiameter,
}

// CenterResult is the response for the center command.
type CenterResult struct {
	Center       string         `json:"center,omitempty"`
	Eccentricity graph.Distance `json:"eccentricity"`
	Status       graph.Status   `json:"status"`
	Top          []graph.Ranked `json:"top,omitempty"`
}

// DiameterResult is the response for the diameter command.
type DiameterResult struct {
	MaxEccentricity graph.Distance `json:"max_eccentricity"`
	Status          graph.Status   `json:"status"`
}

// mustComputeCentrality computes every eccentricity, exiting on cancellation.
func mustComputeCentrality(ctx context.Context, g *graph.Graph) *graph.Centrality {
	workers := cfg.Workers
	if centralityWorkers > 0 {
		workers = centralityWorkers
	}

	start := time.Now()
	c, err := g.Centrality(ctx, workers)
	if err != nil {
		exitWithError(ExitError, "computing centrality: %v", err)
	}
	logger.Debug("centrality computed", "nodes", g.Len(), "workers", workers, "elapsed", time.Since(start))
	return c
}

func runCenter(cmd *cobra.Command, args []string) error {
	g, _ := mustLoadGraph()
	c := mustComputeCentrality(cmd.Context(), g)

	center, status := c.Center()
	res := CenterResult{Center: center, Status: status}
	if status.Defined() {
		res.Eccentricity = c.Eccentricity(center)
	} else {
		res.Eccentricity = graph.Distance{Status: status}
	}
	if centerTop > 0 {
		res.Top = c.Ranking(centerTop)
	}

	return output(res, func() {
		if !status.Defined() {
			outputHuman("The graph is empty: no center\n")
			return
		}
		outputHuman("The center of the graph is %s (eccentricity %s)\n", center, res.Eccentricity)
		if len(res.Top) > 0 {
			outputHuman("\nMost central participants:\n")
			for i, r := range res.Top {
				outputHuman("  %d. %s (%d)\n", i+1, r.Name, r.Eccentricity)
			}
		}
	})
}

func runDiameter(cmd *cobra.Command, args []string) error {
	g, _ := mustLoadGraph()
	c := mustComputeCentrality(cmd.Context(), g)

	d := c.Max()
	res := DiameterResult{MaxEccentricity: d, Status: d.Status}
	return output(res, func() {
		outputHuman("Largest eccentricity: %s\n", d)
	})
}
