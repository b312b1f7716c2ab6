package circuit_test

import (
	"math/rand"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lanterns/aoc/circuit"
)

// eagerMap is the straightforward model of a Map: every box points at a
// shared slice of its circuit's members, and a merge builds a new slice and
// repoints every member at it.
type eagerMap struct {
	assign []*[]int
}

func newEagerMap(n int) *eagerMap {
	m := &eagerMap{assign: make([]*[]int, n)}
	for i := range m.assign {
		m.assign[i] = &[]int{i}
	}
	return m
}

func (m *eagerMap) connect(i, j int) {
	a, b := m.assign[i], m.assign[j]
	if a == b {
		return
	}
	merged := append(slices.Clone(*a), *b...)
	for _, k := range merged {
		m.assign[k] = &merged
	}
}

func (m *eagerMap) partitions() [][]int {
	var out [][]int
	seen := map[*[]int]bool{}
	for _, p := range m.assign {
		if seen[p] {
			continue
		}
		seen[p] = true
		members := slices.Clone(*p)
		slices.Sort(members)
		out = append(out, members)
	}
	return out
}

func TestNewMapSingletons(t *testing.T) {
	for _, n := range []int{0, 1, 2, 17} {
		m := circuit.NewMap(n)
		assert.Equal(t, n, m.Len())
		assert.Equal(t, n, m.Count())
		assert.Len(t, m.Sizes(), n)
		for i := 0; i < n; i++ {
			size, err := m.Size(i)
			require.NoError(t, err)
			assert.Equal(t, 1, size, "box %d", i)
		}
		assert.Equal(t, n <= 1, m.Complete(), "n=%d", n)
	}
}

func TestConnectIdempotent(t *testing.T) {
	m := circuit.NewMap(5)
	merged, err := m.Connect(1, 3)
	require.NoError(t, err)
	assert.True(t, merged)
	before := m.Hash()

	for _, pair := range [][2]int{{1, 3}, {3, 1}, {3, 3}} {
		merged, err := m.Connect(pair[0], pair[1])
		require.NoError(t, err)
		assert.False(t, merged, "Connect(%d, %d)", pair[0], pair[1])
		assert.Equal(t, before, m.Hash(), "Connect(%d, %d)", pair[0], pair[1])
	}
	assert.Equal(t, [][]int{{0}, {1, 3}, {2}, {4}}, m.Partitions())
}

func TestHashIgnoresConnectOrder(t *testing.T) {
	a := circuit.NewMap(6)
	b := circuit.NewMap(6)
	for _, p := range [][2]int{{0, 1}, {1, 2}, {4, 5}} {
		_, err := a.Connect(p[0], p[1])
		require.NoError(t, err)
	}
	for _, p := range [][2]int{{5, 4}, {2, 0}, {2, 1}} {
		_, err := b.Connect(p[0], p[1])
		require.NoError(t, err)
	}
	assert.Equal(t, a.Hash(), b.Hash())

	_, err := b.Connect(3, 4)
	require.NoError(t, err)
	assert.NotEqual(t, a.Hash(), b.Hash())
}

func TestIndexOutOfRange(t *testing.T) {
	m := circuit.NewMap(3)
	_, err := m.Connect(0, 3)
	assert.ErrorIs(t, err, circuit.ErrIndexOutOfRange)
	_, err = m.Connect(-1, 0)
	assert.ErrorIs(t, err, circuit.ErrIndexOutOfRange)
	_, err = m.Size(5)
	assert.ErrorIs(t, err, circuit.ErrIndexOutOfRange)
	_, err = m.Same(0, 7)
	assert.ErrorIs(t, err, circuit.ErrIndexOutOfRange)
	assert.Equal(t, 3, m.Count(), "failed calls must not change the map")
}

func TestCompleteMatchesSizes(t *testing.T) {
	m := circuit.NewMap(4)
	for _, p := range [][2]int{{0, 1}, {2, 3}, {1, 2}} {
		assert.False(t, m.Complete())
		_, err := m.Connect(p[0], p[1])
		require.NoError(t, err)
	}
	assert.True(t, m.Complete())
	assert.Equal(t, []int{4}, m.Sizes())
}

func TestMapAgreesWithEagerModel(t *testing.T) {
	const n = 40
	r := rand.New(rand.NewSource(42))
	m := circuit.NewMap(n)
	ref := newEagerMap(n)

	for step := 0; step < 120; step++ {
		i, j := r.Intn(n), r.Intn(n)
		_, err := m.Connect(i, j)
		require.NoError(t, err)
		ref.connect(i, j)

		require.Equal(t, ref.partitions(), m.Partitions(), "step %d: Connect(%d, %d)", step, i, j)

		sizes := m.Sizes()
		sum := 0
		for _, s := range sizes {
			sum += s
		}
		require.Equal(t, n, sum, "step %d: sizes %v", step, sizes)
		require.Equal(t, len(sizes), m.Count())
		require.Equal(t, m.Complete(), len(sizes) == 1 && sizes[0] == n)

		for k := 0; k < 5; k++ {
			a, b, c := r.Intn(n), r.Intn(n), r.Intn(n)
			assertEquivalence(t, m, a, b, c)
		}
	}
}

// assertEquivalence checks that Same is reflexive, symmetric and transitive
// on a, b and c.
func assertEquivalence(t *testing.T, m *circuit.Map, a, b, c int) {
	t.Helper()
	same := func(i, j int) bool {
		ok, err := m.Same(i, j)
		require.NoError(t, err)
		return ok
	}
	assert.True(t, same(a, a))
	assert.Equal(t, same(a, b), same(b, a))
	if same(a, b) && same(b, c) {
		assert.True(t, same(a, c), "%d~%d and %d~%d but not %d~%d", a, b, b, c, a, c)
	}
	sa, err := m.Size(a)
	require.NoError(t, err)
	sb, err := m.Size(b)
	require.NoError(t, err)
	if same(a, b) {
		assert.Equal(t, sa, sb)
	}
}
