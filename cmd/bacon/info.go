package main

import (
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(infoCmd)
}

var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Summarise the collaboration graph",
	Args:  cobra.NoArgs,
	RunE:  runInfo,
}

// InfoResult is the response for the info command.
type InfoResult struct {
	File         string   `json:"file"`
	Categories   []string `json:"categories"`
	Participants int      `json:"participants"`
	Edges        int      `json:"edges"`
	Components   int      `json:"components"`
}

func runInfo(cmd *cobra.Command, args []string) error {
	g, path := mustLoadGraph()

	res := InfoResult{
		File:         path,
		Categories:   cfg.Categories,
		Participants: g.Len(),
		Edges:        g.EdgeCount(),
		Components:   g.Components(),
	}
	return output(res, func() {
		outputHuman("File:         %s\n", res.File)
		outputHuman("Categories:   %s\n", formatNameList(res.Categories))
		outputHuman("Participants: %d\n", res.Participants)
		outputHuman("Edges:        %d\n", res.Edges)
		outputHuman("Components:   %d\n", res.Components)
	})
}
