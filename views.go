package slotmap

import "iter"

// Slice exposes the live prefix as a contiguous, read-only slice of T. It is
// sound because cells are laid out with T's natural size and alignment and
// every index in [0, Len()) is guaranteed to hold a value. The slice aliases
// the map's backing storage: it is invalidated by any mutating call.
func (s *SlotMap[T]) Slice() []T {
	return s.cells.liveSlice(s.length)
}

// Iter returns a lazy, finite, non-restartable sequence of pointers to the
// live values in slice order. It must not be used across a mutating call.
func (s *SlotMap[T]) Iter() iter.Seq[*T] {
	n := s.length

	return func(yield func(*T) bool) {
		for i := uint64(0); i < n; i++ {
			if !yield(s.cells.valuePtr(i)) {
				return
			}
		}
	}
}

// Drain returns a lazy, finite, non-restartable sequence of owned values in
// prefix order. Values are read directly from live storage as the sequence
// is pulled. Once the returned sequence's generator function returns — by
// natural exhaustion or because the caller stopped early — the map is left
// fully cleared, same as an explicit Clear call. Go's iterator protocol has
// no destructor hook to distinguish "ran to completion" from "abandoned
// early", so both cases are treated identically: unconsumed values are
// discarded and the map is cleared regardless.
func (s *SlotMap[T]) Drain() iter.Seq[T] {
	return func(yield func(T) bool) {
		defer s.Clear()

		n := s.length
		for i := uint64(0); i < n; i++ {
			if !yield(s.cells.readValue(i)) {
				return
			}
		}
	}
}

// AssignNewKeys scrubs every stale tail indirection, resalts the map, and
// returns a lazy sequence of the Len() new keys for the current live values
// in slice order. The scrub and resalt happen immediately; the sequence
// only defers the (allocation-free) work of encoding each key.
func (s *SlotMap[T]) AssignNewKeys() iter.Seq[Key] {
	s.cells.zeroRange(s.length, s.dirtyWaterln)
	s.dirtyWaterln = s.length
	s.indirectOnly.resetAll()
	s.salt = s.rand.Uint64()

	n := s.length
	salt := s.salt

	return func(yield func(Key) bool) {
		for i := uint64(0); i < n; i++ {
			if !yield(encodeKey(i, salt)) {
				return
			}
		}
	}
}
