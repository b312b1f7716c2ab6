package main

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/lanterns/aoc"
)

func TestSamples(t *testing.T) {
	results := aoc.RunSamples(2025, source, &solver{})
	if len(results) != 2 {
		t.Fatalf("got %d sample results, want 2", len(results))
	}
	for _, r := range results {
		if diff := cmp.Diff(r.Want, r.Got); diff != "" {
			t.Errorf("%s sample mismatch (-want +got):\n%s", r.Name, diff)
		}
	}
}
