package main

import (
	"math/rand"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(namesCmd)
	namesCmd.Flags().IntVar(&namesSample, "sample", 0, "Show N randomly chosen names instead of the sorted list")
	namesCmd.Flags().IntVar(&namesLimit, "limit", 0, "Maximum number of names to list (0 = all)")
}

var (
	namesSample int
	namesLimit  int
)

var namesCmd = &cobra.Command{
	Use:   "names",
	Short: "List participant names",
	Long: `List the participants of the collaboration graph in sorted order.

Use --sample to pick a few random names as starting points for queries.`,
	Args: cobra.NoArgs,
	RunE: runNames,
}

// NamesResult is the response for the names command.
type NamesResult struct {
	Total int      `json:"total"`
	Names []string `json:"names"`
}

func runNames(cmd *cobra.Command, args []string) error {
	g, _ := mustLoadGraph()

	names := g.Names()
	switch {
	case namesSample > 0:
		names = sampleNames(names, namesSample)
	case namesLimit > 0 && namesLimit < len(names):
		names = names[:namesLimit]
	}

	return output(NamesResult{Total: g.Len(), Names: names}, func() {
		printNameColumns(names)
		if len(names) < g.Len() {
			outputHuman("  ... (%d participants in total)\n", g.Len())
		}
	})
}

// sampleNames returns up to n distinct names chosen at random.
func sampleNames(names []string, n int) []string {
	if n >= len(names) {
		n = len(names)
	}
	out := make([]string, 0, n)
	for _, i := range rand.Perm(len(names))[:n] {
		out = append(out, names[i])
	}
	return out
}
