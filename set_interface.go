package bmset

import "iter"

// Reader is the read-only query surface of a Set.
type Reader interface {
	// Contains reports whether v is a member.
	Contains(v uint8) bool

	// Len returns the number of members.
	Len() int

	// IsEmpty reports whether the set has no members.
	IsEmpty() bool

	// Capacity returns the number of slots; members are below it.
	Capacity() int

	// All yields the members in ascending order.
	All() iter.Seq[uint8]

	// String renders the members, e.g. "BitmapSet {0, 1, 8}".
	String() string
}

var _ Reader = Set{}
