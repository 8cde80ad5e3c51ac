package main

import (
	"github.com/spf13/cobra"

	"github.com/matsen/bacon/internal/graph"
)

func init() {
	rootCmd.AddCommand(eccentricityCmd)
}

var eccentricityCmd = &cobra.Command{
	Use:   "eccentricity <name>",
	Short: "Greatest distance from a person to anyone reachable",
	Long: `Print the eccentricity of a person: the largest collaboration distance
to any participant reachable from them. Participants in other connected
components are not counted.`,
	Args: cobra.ExactArgs(1),
	RunE: runEccentricity,
}

// EccentricityResult is the response for the eccentricity command.
type EccentricityResult struct {
	Name         string         `json:"name"`
	Eccentricity graph.Distance `json:"eccentricity"`
	Status       graph.Status   `json:"status"`
}

func runEccentricity(cmd *cobra.Command, args []string) error {
	g, _ := mustLoadGraph()
	u := mustResolveName(g, args[0])

	ecc := g.Eccentricity(u)
	res := EccentricityResult{Name: u, Eccentricity: ecc, Status: ecc.Status}
	return output(res, func() {
		outputHuman("%s has eccentricity %s\n", u, ecc)
	})
}
