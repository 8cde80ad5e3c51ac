package credit

import (
	"encoding/json"
	"fmt"
)

// DefaultCategories are the role categories read when no configuration
// overrides them.
var DefaultCategories = []string{"cast", "directors", "producers"}

// TitleKey is the record key holding the name of the work.
const TitleKey = "title"

// Record is one work's credit listing: recognised role categories mapped to
// the raw names listed under them, in source order.
type Record struct {
	Title   string
	Credits map[string][]string
}

// ParseRecord decodes one JSON document into a Record, keeping only the
// given categories. Unrecognised keys are ignored whatever their type.
// A recognised key must hold a list of strings (or null).
func ParseRecord(data []byte, categories []string) (Record, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return Record{}, err
	}
	if fields == nil {
		return Record{}, ErrNotObject
	}

	rec := Record{Credits: make(map[string][]string, len(categories))}

	if raw, ok := fields[TitleKey]; ok {
		// Non-string titles are tolerated; the title is informational only.
		_ = json.Unmarshal(raw, &rec.Title)
	}

	for _, cat := range categories {
		raw, ok := fields[cat]
		if !ok {
			continue
		}
		var names []string
		if err := json.Unmarshal(raw, &names); err != nil {
			return Record{}, fmt.Errorf("%w: %q", ErrBadCategory, cat)
		}
		if len(names) > 0 {
			rec.Credits[cat] = names
		}
	}

	return rec, nil
}

// Participants returns the distinct normalized names credited in the
// record, in first-seen order. Categories are visited in the given order;
// categories the record lacks are skipped.
func (r Record) Participants(categories []string) []string {
	seen := make(map[string]bool)
	var out []string
	for _, cat := range categories {
		for _, raw := range r.Credits[cat] {
			name := Normalize(raw)
			if seen[name] {
				continue
			}
			seen[name] = true
			out = append(out, name)
		}
	}
	return out
}

// CreditCount returns the number of raw names across all categories.
func (r Record) CreditCount() int {
	n := 0
	for _, names := range r.Credits {
		n += len(names)
	}
	return n
}
