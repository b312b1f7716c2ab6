// Package circuit joins junction boxes in 3-D space into circuits by
// connecting the closest pairs first.
//
// A Field holds the boxes and produces every pair of them as an Edge sorted
// by squared distance. A Map tracks which boxes are in the same circuit as
// edges are connected. LargestProduct and CompletingEdge drive the two
// together.
package circuit

import (
	"cmp"
	"fmt"
	"iter"
	"math"
	"slices"

	"github.com/lanterns/aoc"
)

// Box is the position of a junction box.
type Box = aoc.Pt3[float64]

// Field is an immutable set of boxes, addressed by index.
type Field struct {
	boxes []Box
}

// NewField returns a Field holding a copy of boxes.
func NewField(boxes []Box) *Field {
	return &Field{boxes: slices.Clone(boxes)}
}

// Len returns the number of boxes.
func (f *Field) Len() int {
	return len(f.boxes)
}

func (f *Field) check(i int) error {
	if i < 0 || i >= len(f.boxes) {
		return fmt.Errorf("%w: %d not in [0, %d)", ErrIndexOutOfRange, i, len(f.boxes))
	}
	return nil
}

// Box returns the i-th box.
func (f *Field) Box(i int) (Box, error) {
	if err := f.check(i); err != nil {
		return Box{}, err
	}
	return f.boxes[i], nil
}

// DistSq returns the squared distance between boxes i and j.
func (f *Field) DistSq(i, j int) (float64, error) {
	if err := f.check(i); err != nil {
		return 0, err
	}
	if err := f.check(j); err != nil {
		return 0, err
	}
	return f.boxes[i].DistSq(f.boxes[j]), nil
}

// Pairs yields every pair i < j, for i ascending and then j ascending.
func (f *Field) Pairs() iter.Seq2[int, int] {
	return func(yield func(int, int) bool) {
		for i := range f.boxes {
			for j := i + 1; j < len(f.boxes); j++ {
				if !yield(i, j) {
					return
				}
			}
		}
	}
}

// Edge is a pair of distinct boxes A < B and their squared distance.
type Edge struct {
	A, B   int
	DistSq float64
}

func (e Edge) String() string {
	return fmt.Sprintf("%d-%d:%v", e.A, e.B, e.DistSq)
}

// Edges returns every pair of boxes as an edge, shortest first. Edges of
// equal length stay in Pairs order. NaN lengths sort last.
func (f *Field) Edges() []Edge {
	n := len(f.boxes)
	edges := make([]Edge, 0, n*(n-1)/2)
	for i, j := range f.Pairs() {
		edges = append(edges, Edge{A: i, B: j, DistSq: f.boxes[i].DistSq(f.boxes[j])})
	}
	slices.SortFunc(edges, compareEdges)
	return edges
}

func compareEdges(a, b Edge) int {
	if c := totalCompare(a.DistSq, b.DistSq); c != 0 {
		return c
	}
	if c := cmp.Compare(a.A, b.A); c != 0 {
		return c
	}
	return cmp.Compare(a.B, b.B)
}

// totalCompare orders all float64 values, placing NaN after every number and
// treating all NaNs as equal.
func totalCompare(a, b float64) int {
	an, bn := math.IsNaN(a), math.IsNaN(b)
	switch {
	case an && bn:
		return 0
	case an:
		return 1
	case bn:
		return -1
	}
	return cmp.Compare(a, b)
}
