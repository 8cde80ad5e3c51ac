package main

import (
	"sort"
	"testing"
)

func TestSampleNames(t *testing.T) {
	names := []string{"a", "b", "c", "d", "e", "f"}

	got := sampleNames(names, 3)
	if len(got) != 3 {
		t.Fatalf("sampleNames() returned %d names, want 3", len(got))
	}
	seen := make(map[string]bool)
	for _, n := range got {
		if seen[n] {
			t.Errorf("sampleNames() repeated %q", n)
		}
		seen[n] = true
	}

	all := sampleNames(names, 50)
	sort.Strings(all)
	if len(all) != len(names) {
		t.Errorf("sampleNames() with n > len returned %d names, want %d", len(all), len(names))
	}
}

func TestFormatNameList(t *testing.T) {
	if got := formatNameList(nil); got != "(none)" {
		t.Errorf("formatNameList(nil) = %q", got)
	}
	if got := formatNameList([]string{"A", "B"}); got != "A, B" {
		t.Errorf("formatNameList() = %q", got)
	}
}
