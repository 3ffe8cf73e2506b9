package smallbitset

import "bytes"

// And sets s to s AND o.
func (s *Set[L]) And(o Set[L]) *Set[L] {
	s.apply(&o, func(x, y uint64) uint64 { return x & y })
	return s
}

// Or sets s to s OR o.
func (s *Set[L]) Or(o Set[L]) *Set[L] {
	s.apply(&o, func(x, y uint64) uint64 { return x | y })
	return s
}

// Xor sets s to s XOR o.
func (s *Set[L]) Xor(o Set[L]) *Set[L] {
	s.apply(&o, func(x, y uint64) uint64 { return x ^ y })
	return s
}

// AndNot clears in s every bit set in o.
func (s *Set[L]) AndNot(o Set[L]) *Set[L] {
	s.apply(&o, func(x, y uint64) uint64 { return x &^ y })
	return s
}

// Not returns the complement of s. Filler bits stay zero.
func (s Set[L]) Not() Set[L] {
	s.FlipAll()
	return s
}

// Equal reports whether s and o hold the same bits.
func (s Set[L]) Equal(o Set[L]) bool {
	return bytes.Equal(s.bytes(), o.bytes())
}

// Intersect returns a AND b.
func Intersect[L Layout](a, b Set[L]) Set[L] {
	a.And(b)
	return a
}

// Union returns a OR b.
func Union[L Layout](a, b Set[L]) Set[L] {
	a.Or(b)
	return a
}

// SymmetricDifference returns a XOR b.
func SymmetricDifference[L Layout](a, b Set[L]) Set[L] {
	a.Xor(b)
	return a
}
