package main

import (
	"github.com/spf13/cobra"

	"github.com/matsen/bacon/internal/graph"
)

func init() {
	rootCmd.AddCommand(commonCmd)
}

var commonCmd = &cobra.Command{
	Use:   "common <name> <other>",
	Short: "Collaborators shared by two people",
	Args:  cobra.ExactArgs(2),
	RunE:  runCommon,
}

// CommonResult is the response for the common command.
type CommonResult struct {
	A             string       `json:"a"`
	B             string       `json:"b"`
	Count         int          `json:"count"`
	Collaborators graph.Set    `json:"collaborators"`
	Status        graph.Status `json:"status"`
}

func runCommon(cmd *cobra.Command, args []string) error {
	g, _ := mustLoadGraph()
	u := mustResolveName(g, args[0])
	v := mustResolveName(g, args[1])

	common, status := g.CommonCollaborators(u, v)
	res := CommonResult{A: u, B: v, Count: common.Len(), Collaborators: common, Status: status}
	return output(res, func() {
		outputHuman("%s and %s share %d collaborator(s)\n", u, v, common.Len())
		if common.Len() > 0 {
			outputHuman("\n")
			printNameColumns(common.Names())
		}
	})
}
