package main

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/matsen/bacon/internal/index"
)

func init() {
	rootCmd.AddCommand(searchCmd)
	searchCmd.Flags().IntVarP(&searchLimit, "limit", "n", DefaultSearchLimit, "Maximum number of results")
	searchCmd.Flags().BoolVar(&searchWorks, "works", false, "Include the titles of each participant's works")
}

// DefaultSearchLimit is the default limit for the search command.
const DefaultSearchLimit = 20

var (
	searchLimit int
	searchWorks bool
)

var searchCmd = &cobra.Command{
	Use:   "search <text>",
	Short: "Find participant names",
	Long: `Search the name index for participants whose name words start with
every word of the query ("kev bac" finds Kevin Bacon). Results are ordered
by number of works. Requires "bacon index" to have been run on the same
credit file.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSearch,
}

// SearchMatch is one search result.
type SearchMatch struct {
	index.Match
	Titles []string `json:"titles,omitempty"`
}

func runSearch(cmd *cobra.Command, args []string) error {
	db := mustOpenIndex()
	defer db.Close()

	query := strings.Join(args, " ")
	matches, err := db.Search(query, searchLimit)
	if err != nil {
		exitWithError(ExitError, "%v", err)
	}

	results := make([]SearchMatch, 0, len(matches))
	for _, m := range matches {
		r := SearchMatch{Match: m}
		if searchWorks {
			titles, err := db.WorksOf(m.Name)
			if err != nil {
				exitWithError(ExitError, "%v", err)
			}
			r.Titles = titles
		}
		results = append(results, r)
	}

	return output(results, func() {
		if len(results) == 0 {
			outputHuman("No participants match %q\n", query)
			return
		}
		for i, r := range results {
			outputHuman("%d. %s (%d works, %d collaborators)\n", i+1, r.Name, r.Works, r.Collaborators)
			if len(r.Titles) > 0 {
				outputHuman("   %s\n", formatNameList(r.Titles))
			}
		}
	})
}
