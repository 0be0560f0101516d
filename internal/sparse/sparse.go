// Package sparse provides a sparse set of small integer ids.
//
// The table compiler uses it as the frontier of its closure loop: the set of
// class ids discovered in the previous round. Clear is O(1), so one set is
// reused across rounds, and Values keeps insertion order so class numbering
// stays deterministic.
package sparse

// Set is a set of uint32 values below a fixed capacity.
// The sparse array maps a value to its slot in the dense array; a value is a
// member only when that slot points back at it, so stale sparse entries left
// by Clear are harmless.
type Set struct {
	sparse []uint32
	dense  []uint32
}

// New returns an empty set that can hold values in [0, capacity).
func New(capacity int) *Set {
	return &Set{
		sparse: make([]uint32, capacity),
		dense:  make([]uint32, 0, capacity),
	}
}

// Insert adds v and reports whether it was absent.
// Panics if v >= capacity.
func (s *Set) Insert(v uint32) bool {
	if s.Contains(v) {
		return false
	}
	s.sparse[v] = uint32(len(s.dense))
	s.dense = append(s.dense, v)
	return true
}

// Contains reports whether v is in the set.
func (s *Set) Contains(v uint32) bool {
	if uint64(v) >= uint64(len(s.sparse)) {
		return false
	}
	i := s.sparse[v]
	return uint64(i) < uint64(len(s.dense)) && s.dense[i] == v
}

// Clear empties the set.
func (s *Set) Clear() {
	s.dense = s.dense[:0]
}

// IsEmpty reports whether the set has no members.
func (s *Set) IsEmpty() bool {
	return len(s.dense) == 0
}

// Values returns the members in insertion order.
// The slice is valid until the next mutation.
func (s *Set) Values() []uint32 {
	return s.dense
}
