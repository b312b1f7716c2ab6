package circuit

import (
	"fmt"

	"github.com/lanterns/aoc"
)

// LargestProduct connects the given number of shortest edges of f and
// returns the product of the sizes of the top largest circuits.
func LargestProduct(f *Field, connections, top int) (int, error) {
	edges := f.Edges()
	if len(edges) < connections {
		return 0, fmt.Errorf("%w: have %d, want %d", ErrInsufficientEdges, len(edges), connections)
	}
	m := NewMap(f.Len())
	for _, e := range edges[:connections] {
		if _, err := m.Connect(e.A, e.B); err != nil {
			return 0, err
		}
	}

	if m.Count() < top {
		return 0, fmt.Errorf("%w: have %d, want %d", ErrInsufficientPartitions, m.Count(), top)
	}
	pq := aoc.MaxQueue[int]()
	for _, size := range m.Sizes() {
		pq.PushValue(size, size)
	}
	return aoc.Product(aoc.TopN(pq, top)...), nil
}

// CompletingEdge connects the edges of f shortest first and returns the
// first edge after which all boxes are in one circuit.
func CompletingEdge(f *Field) (Edge, error) {
	m := NewMap(f.Len())
	for _, e := range f.Edges() {
		if _, err := m.Connect(e.A, e.B); err != nil {
			return Edge{}, err
		}
		if m.Complete() {
			return e, nil
		}
	}
	return Edge{}, fmt.Errorf("%w: %d boxes in %d circuits", ErrNeverCompletes, f.Len(), m.Count())
}

// XProduct returns the product of the X coordinates of the ends of e.
func XProduct(f *Field, e Edge) (float64, error) {
	a, err := f.Box(e.A)
	if err != nil {
		return 0, err
	}
	b, err := f.Box(e.B)
	if err != nil {
		return 0, err
	}
	return a.X * b.X, nil
}
