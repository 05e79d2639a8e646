package bmset

import (
	"iter"
	"math/bits"

	"github.com/cockroachdb/errors"
)

const (
	// MinSize and MaxSize bound the number of storage bytes of a Set.
	MinSize = 1
	MaxSize = 32

	// DefaultSize gives a Set room for every uint8 value.
	DefaultSize = MaxSize
)

// Set is a fixed-capacity set of small unsigned integers backed by a bitmap.
// Value v lives in byte v/8 under mask 1<<(v%8).
//
// Set is a value: assigning it copies the bitmap, and two sets of the same
// size are == iff they hold the same members. Bytes beyond the size are
// always zero. The zero Set has no size and every operation on it panics.
type Set struct {
	data [MaxSize]byte
	size uint8 // number of bytes in use
}

// New creates an empty set with room for 8*size values.
// It panics if size is outside [MinSize, MaxSize].
func New(size int) Set {
	checkSize(size)
	// All bits start at 0; bytes past size stay 0 for the set's lifetime.
	return Set{size: uint8(size)}
}

// NewDefault creates an empty set of DefaultSize bytes.
func NewDefault() Set {
	return New(DefaultSize)
}

// Of creates a set of the given size holding values.
func Of(size int, values ...uint8) Set {
	s := New(size)
	for _, v := range values {
		s.Insert(v)
	}
	return s
}

// FromSeq creates a set of the given size holding every value yielded by seq.
func FromSeq(size int, seq iter.Seq[uint8]) Set {
	s := New(size)
	s.Extend(seq)
	return s
}

// Size returns the number of storage bytes.
func (s Set) Size() int {
	return s.checkedSize()
}

// Capacity returns the number of slots, 8*Size().
func (s Set) Capacity() int {
	return s.checkedSize() * 8
}

// MaxValue returns the largest value the set can hold.
func (s Set) MaxValue() uint8 {
	return uint8(s.Capacity() - 1)
}

// Bytes returns a copy of the underlying bitmap, Size() bytes long.
func (s Set) Bytes() []byte {
	n := s.checkedSize()
	// Copy so callers cannot reach the inline array.
	out := make([]byte, n)
	copy(out, s.data[:n])
	return out
}

// Contains reports whether v is a member.
func (s Set) Contains(v uint8) bool {
	s.checkValue(v)
	return s.data[v/8]&mask(v) != 0
}

// Insert adds v to the set.
func (s *Set) Insert(v uint8) {
	s.checkValue(v)
	s.data[v/8] |= mask(v)
}

// Remove deletes v from the set. Removing a non-member is a no-op.
func (s *Set) Remove(v uint8) {
	s.checkValue(v)
	s.data[v/8] &^= mask(v)
}

// Extend inserts every value yielded by seq.
func (s *Set) Extend(seq iter.Seq[uint8]) {
	s.checkedSize()
	for v := range seq {
		s.Insert(v)
	}
}

// Clear removes all members.
func (s *Set) Clear() {
	s.checkedSize()
	s.data = [MaxSize]byte{}
}

// Len returns the number of members.
func (s Set) Len() int {
	n := 0
	for _, b := range s.data[:s.checkedSize()] {
		n += bits.OnesCount8(b)
	}
	return n
}

// IsEmpty reports whether the set has no members.
func (s Set) IsEmpty() bool {
	s.checkedSize()
	// Unused tail bytes are always 0, so the whole array can be compared.
	return s.data == [MaxSize]byte{}
}

// Equal reports whether s and other hold the same members.
// It panics if the sizes differ.
func (s Set) Equal(other Set) bool {
	s.checkSameSize(other)
	// Same size and same bytes is the same membership.
	return s == other
}

// All returns an iterator over the members in ascending order.
func (s Set) All() iter.Seq[uint8] {
	return func(yield func(uint8) bool) {
		it := s.Iter()
		for v, ok := it.Next(); ok; v, ok = it.Next() {
			if !yield(v) {
				return
			}
		}
	}
}

func mask(v uint8) byte {
	return 1 << (v % 8)
}

func checkSize(size int) {
	if size < MinSize || size > MaxSize {
		panic(errors.AssertionFailedf("bmset: size %d out of range [%d, %d]", size, MinSize, MaxSize))
	}
}

func (s Set) checkedSize() int {
	checkSize(int(s.size))
	return int(s.size)
}

func (s Set) checkValue(v uint8) {
	if c := s.checkedSize() * 8; int(v) >= c {
		panic(errors.AssertionFailedf("bmset: value %d out of range [0, %d)", v, c))
	}
}

func (s Set) checkSameSize(other Set) {
	if s.checkedSize() != other.checkedSize() {
		panic(errors.AssertionFailedf("bmset: size mismatch: %d vs %d", s.size, other.size))
	}
}
