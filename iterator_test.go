package bmset

import (
	"slices"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

// requireIterates drains it and compares each value to expected. It then
// checks that the iterator stays exhausted.
func requireIterates(t *testing.T, it *Iterator, expected []uint8) {
	t.Helper()

	for i, want := range expected {
		v, ok := it.Next()
		require.True(t, ok, "iterator exhausted at index %d", i)
		require.Equal(t, want, v, "value mismatch at %d", i)
	}

	for i := 0; i < 3; i++ {
		_, ok := it.Next()
		require.False(t, ok, "expected iterator to be exhausted")
	}
}

func TestIter(t *testing.T) {
	s := Of(32, 0, 255, 1, 2, 8)
	requireIterates(t, s.Iter(), []uint8{0, 1, 2, 8, 255})
}

func TestIterEmpty(t *testing.T) {
	for _, size := range []int{1, 2, 32} {
		s := New(size)
		requireIterates(t, s.Iter(), nil)
	}
}

func TestIterFull(t *testing.T) {
	tests := []int{1, 2, 10, 31, 32}

	for _, size := range tests {
		s := New(size)
		var expected []uint8
		for v := 0; v < s.Capacity(); v++ {
			s.Insert(uint8(v))
			expected = append(expected, uint8(v))
		}
		require.Equal(t, s.Capacity(), s.Len())
		requireIterates(t, s.Iter(), expected)
	}
}

func TestIterBoundaries(t *testing.T) {
	tests := []struct {
		name   string
		size   int
		values []uint8
	}{
		{"ByteEdges", 4, []uint8{7, 8, 15, 16, 31}},
		{"LastOnly", 32, []uint8{255}},
		{"FirstOnly", 32, []uint8{0}},
		{"Sparse", 32, []uint8{3, 64, 129, 254}},
		{"SmallFull", 1, []uint8{0, 1, 2, 3, 4, 5, 6, 7}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Of(tt.size, tt.values...)
			requireIterates(t, s.Iter(), tt.values)
		})
	}
}

func TestIterMatchesContains(t *testing.T) {
	s := Of(10, 79, 0, 33, 34, 35, 50)

	var fromContains []uint8
	for v := 0; v < s.Capacity(); v++ {
		if s.Contains(uint8(v)) {
			fromContains = append(fromContains, uint8(v))
		}
	}
	require.Equal(t, fromContains, slices.Collect(s.All()))
}

func TestAll(t *testing.T) {
	s := Of(32, 9, 1, 200)
	require.Equal(t, []uint8{1, 9, 200}, slices.Collect(s.All()))

	// Stopping early is allowed.
	var seen []uint8
	for v := range s.All() {
		seen = append(seen, v)
		if v == 9 {
			break
		}
	}
	require.Equal(t, []uint8{1, 9}, seen)

	require.Empty(t, slices.Collect(New(4).All()))
}

func TestConcurrentReaders(t *testing.T) {
	s := NewDefault()
	for v := 0; v < 256; v += 3 {
		s.Insert(uint8(v))
	}
	expected := slices.Collect(s.All())

	var g errgroup.Group
	for i := 0; i < 8; i++ {
		g.Go(func() error {
			got := make([]uint8, 0, len(expected))
			it := s.Iter()
			for v, ok := it.Next(); ok; v, ok = it.Next() {
				got = append(got, v)
			}
			if !slices.Equal(expected, got) {
				return errors.Newf("reader %d: got %v, want %v", i, got, expected)
			}
			if n := s.Len(); n != len(expected) {
				return errors.Newf("reader %d: len %d, want %d", i, n, len(expected))
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())
}
