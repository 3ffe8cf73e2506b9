package smallbitset

import "github.com/hupe1980/smallbitset/internal/popcount"

// All reports whether all N bits are set.
func (s Set[L]) All() bool {
	all := true
	s.fold(func(chunk, valid uint64) bool {
		all = chunk == valid
		return all
	})
	return all
}

// Any reports whether at least one bit is set.
func (s Set[L]) Any() bool {
	found := false
	s.fold(func(chunk, _ uint64) bool {
		found = chunk != 0
		return !found
	})
	return found
}

// None reports whether no bit is set.
func (s Set[L]) None() bool {
	return !s.Any()
}

// Count returns the number of set bits, in [0, N].
func (s Set[L]) Count() int {
	words, tail := s.split()
	n := popcount.Words(words)
	if len(tail) == 0 {
		return n
	}
	last := len(tail) - 1
	final := [1]byte{tail[last] & tailMask(s.Len())}
	return n + popcount.Bytes(tail[:last]) + popcount.Bytes(final[:])
}
