package bmset

import "math/bits"

// Iterator walks the members of a Set in ascending order. The set must not
// be mutated while an Iterator over it is in use.
type Iterator struct {
	set *Set
	// next is the next candidate value. It is an int rather than a uint8
	// so that next == capacity can mark exhaustion when capacity is 256.
	next int
	end  int
}

// Iter returns an iterator positioned before the smallest member.
func (s *Set) Iter() *Iterator {
	return &Iterator{set: s, end: s.Capacity()}
}

// Next returns the next member. ok is false once the set is exhausted, and
// stays false on every later call.
func (it *Iterator) Next() (v uint8, ok bool) {
	for it.next < it.end {
		idx := it.next / 8
		b := it.set.data[idx] >> (it.next % 8)
		if b == 0 {
			// Nothing left in this byte.
			it.next = (idx + 1) * 8
			continue
		}
		found := it.next + bits.TrailingZeros8(b)
		it.next = found + 1
		return uint8(found), true
	}
	return 0, false
}
