package graph

import (
	"fmt"

	"github.com/matsen/bacon/internal/credit"
	"github.com/matsen/bacon/internal/logger"
)

// Build constructs the collaboration graph from parsed records.
//
// Every record contributes a clique over its distinct participants across the
// given categories. A participant only becomes a node through an edge, so a
// record crediting a single person adds nothing.
func Build(records []credit.Record, categories []string) *Graph {
	b := NewBuilder()
	for _, rec := range records {
		b.AddClique(rec.Participants(categories))
	}
	return b.Graph()
}

// Load reads a JSONL credit file and builds its graph. Construction is all or
// nothing: on error no graph is returned, and the error is either a
// *credit.IOError or a *credit.FormatError.
func Load(path string, categories []string) (*Graph, error) {
	records, err := credit.ReadAll(path, categories)
	if err != nil {
		return nil, fmt.Errorf("loading graph: %w", err)
	}

	g := Build(records, categories)
	logger.Debug("built collaboration graph",
		"path", path,
		"records", len(records),
		"participants", g.Len(),
		"edges", g.EdgeCount())

	return g, nil
}
