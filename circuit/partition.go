package circuit

import (
	"fmt"
	"slices"

	"tailscale.com/util/deephash"
)

// Map tracks which boxes share a circuit. Every box starts in a circuit of
// its own; Connect merges circuits and nothing ever splits them.
//
// Internally it is a union-find forest with union by size and path
// splitting. Roots are not exposed: two boxes are in the same circuit iff
// Same reports so.
type Map struct {
	parent []int
	size   []int // valid at roots only
	count  int   // number of circuits
}

// NewMap returns a Map of n boxes, each in its own circuit.
func NewMap(n int) *Map {
	m := &Map{
		parent: make([]int, n),
		size:   make([]int, n),
		count:  n,
	}
	for i := range m.parent {
		m.parent[i] = i
		m.size[i] = 1
	}
	return m
}

// Len returns the number of boxes.
func (m *Map) Len() int {
	return len(m.parent)
}

func (m *Map) check(i int) error {
	if i < 0 || i >= len(m.parent) {
		return fmt.Errorf("%w: %d not in [0, %d)", ErrIndexOutOfRange, i, len(m.parent))
	}
	return nil
}

func (m *Map) root(i int) int {
	for {
		p := m.parent[i]
		if p == i {
			return i
		}
		i, m.parent[i] = p, m.parent[p]
	}
}

// Connect joins the circuits of boxes i and j. It reports whether two
// distinct circuits were merged; connecting boxes already in the same
// circuit does nothing.
func (m *Map) Connect(i, j int) (merged bool, err error) {
	if err := m.check(i); err != nil {
		return false, err
	}
	if err := m.check(j); err != nil {
		return false, err
	}
	ri, rj := m.root(i), m.root(j)
	if ri == rj {
		return false, nil
	}
	if m.size[ri] < m.size[rj] {
		ri, rj = rj, ri
	}
	m.parent[rj] = ri
	m.size[ri] += m.size[rj]
	m.count--
	return true, nil
}

// Size returns the number of boxes in the circuit of box i.
func (m *Map) Size(i int) (int, error) {
	if err := m.check(i); err != nil {
		return 0, err
	}
	return m.size[m.root(i)], nil
}

// Same reports whether boxes i and j are in the same circuit.
func (m *Map) Same(i, j int) (bool, error) {
	if err := m.check(i); err != nil {
		return false, err
	}
	if err := m.check(j); err != nil {
		return false, err
	}
	return m.root(i) == m.root(j), nil
}

// Count returns the number of circuits.
func (m *Map) Count() int {
	return m.count
}

// Complete reports whether all boxes are in a single circuit. An empty Map
// is complete.
func (m *Map) Complete() bool {
	return m.count <= 1
}

// Sizes returns the size of each circuit, largest first. Each circuit is
// counted once no matter how many boxes it has.
func (m *Map) Sizes() []int {
	sizes := make([]int, 0, m.count)
	for i, p := range m.parent {
		if p == i {
			sizes = append(sizes, m.size[i])
		}
	}
	slices.SortFunc(sizes, func(a, b int) int { return b - a })
	return sizes
}

// Partitions returns the boxes of each circuit in ascending order. Circuits
// are ordered by their lowest box, so equal partitions give equal results
// regardless of the order in which they were connected.
func (m *Map) Partitions() [][]int {
	var out [][]int
	slot := make(map[int]int, m.count) // root -> index in out
	for i := range m.parent {
		r := m.root(i)
		k, ok := slot[r]
		if !ok {
			k = len(out)
			slot[r] = k
			out = append(out, make([]int, 0, m.size[r]))
		}
		out[k] = append(out[k], i)
	}
	return out
}

// Hash returns a fingerprint of the partition of boxes into circuits.
func (m *Map) Hash() deephash.Sum {
	p := m.Partitions()
	return deephash.Hash(&p)
}
