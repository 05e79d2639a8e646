package bmset

// In-place operations. Both operands must have the same size; a mismatch
// panics.

// Intersect keeps only the members also present in other.
func (s *Set) Intersect(other Set) {
	n := s.sameSize(other)
	for i := 0; i < n; i++ {
		s.data[i] &= other.data[i]
	}
}

// Unite adds every member of other.
func (s *Set) Unite(other Set) {
	n := s.sameSize(other)
	for i := 0; i < n; i++ {
		s.data[i] |= other.data[i]
	}
}

// Subtract removes every member of other.
func (s *Set) Subtract(other Set) {
	n := s.sameSize(other)
	for i := 0; i < n; i++ {
		s.data[i] &^= other.data[i]
	}
}

// Invert flips membership of every value in [0, Capacity()).
func (s *Set) Invert() {
	n := s.checkedSize()
	for i := 0; i < n; i++ {
		s.data[i] = ^s.data[i]
	}
}

// Functional operations return a fresh set and leave both operands untouched.

// Intersection returns the members present in both s and other.
func (s Set) Intersection(other Set) Set {
	s.Intersect(other)
	return s
}

// Union returns the members present in either s or other.
func (s Set) Union(other Set) Set {
	s.Unite(other)
	return s
}

// Difference returns the members of s not present in other.
func (s Set) Difference(other Set) Set {
	s.Subtract(other)
	return s
}

// Complement returns every value in [0, Capacity()) that is not a member.
func (s Set) Complement() Set {
	s.Invert()
	return s
}

// IsDisjoint reports whether s and other share no members.
func (s Set) IsDisjoint(other Set) bool {
	n := s.sameSize(other)
	for i := 0; i < n; i++ {
		if s.data[i]&other.data[i] != 0 {
			return false
		}
	}
	return true
}

// IsSubset reports whether every member of s is also in other.
func (s Set) IsSubset(other Set) bool {
	n := s.sameSize(other)
	for i := 0; i < n; i++ {
		if s.data[i]&^other.data[i] != 0 {
			return false
		}
	}
	return true
}

// IsSuperset reports whether every member of other is also in s.
func (s Set) IsSuperset(other Set) bool {
	return other.IsSubset(s)
}

func (s Set) sameSize(other Set) int {
	s.checkSameSize(other)
	return int(s.size)
}
