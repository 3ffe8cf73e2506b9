package smallbitset

import "math/bits"

// Set is a fixed-width sequence of N bits packed into ceil(N/8) bytes,
// where N is reported by the layout L. The zero value has every bit
// cleared.
//
// Set is a plain value like an integer: assignment copies the bits and a
// Set owns no other resources. Distinct values may be used from different
// goroutines without coordination; a single value shared by mutating
// goroutines needs external synchronization.
//
// Bits at positions N and above inside the final byte (filler bits) are
// kept at zero by every operation, so == on two Sets compares their
// logical bits.
type Set[L Layout] struct {
	data L
}

// New returns an all-zero Set. It panics if L cannot hold its own width.
func New[L Layout]() Set[L] {
	byteLen[L]()
	return Set[L]{}
}

// FromUint64 returns a Set whose low bits hold v, bit 0 being the least
// significant bit of v. v must fit in N bits.
func FromUint64[L Layout](v uint64) Set[L] {
	var s Set[L]
	if n := s.Len(); checks && bits.Len64(v) > n {
		fail("FromUint64", "value %#x needs %d bits, width is %d", v, bits.Len64(v), n)
	}
	b := s.bytes()
	for i := 0; v != 0 && i < len(b); i++ {
		b[i] = byte(v)
		v >>= 8
	}
	s.normalize()
	return s
}

// Len returns N, the number of logical bits.
func (s Set[L]) Len() int {
	return widthOf[L]()
}

// ByteLen returns ceil(N/8), the number of storage bytes.
func (s Set[L]) ByteLen() int {
	return byteLen[L]()
}

// Test reports whether bit i is set.
func (s Set[L]) Test(i int) bool {
	checkIndex[L]("Test", i)
	return s.bytes()[i>>3]>>(i&7)&1 != 0
}

// Set sets bit i.
func (s *Set[L]) Set(i int) *Set[L] {
	checkIndex[L]("Set", i)
	s.bytes()[i>>3] |= 1 << (i & 7)
	return s
}

// SetTo sets bit i to v.
func (s *Set[L]) SetTo(i int, v bool) *Set[L] {
	if v {
		return s.Set(i)
	}
	return s.Reset(i)
}

// Reset clears bit i.
func (s *Set[L]) Reset(i int) *Set[L] {
	checkIndex[L]("Reset", i)
	s.bytes()[i>>3] &^= 1 << (i & 7)
	return s
}

// Flip toggles bit i.
func (s *Set[L]) Flip(i int) *Set[L] {
	checkIndex[L]("Flip", i)
	s.bytes()[i>>3] ^= 1 << (i & 7)
	return s
}

// SetAll sets all N bits.
func (s *Set[L]) SetAll() *Set[L] {
	s.apply(s, func(_, _ uint64) uint64 { return ^uint64(0) })
	return s
}

// ResetAll clears all N bits.
func (s *Set[L]) ResetAll() *Set[L] {
	var zero L
	s.data = zero
	return s
}

// FlipAll toggles all N bits.
func (s *Set[L]) FlipAll() *Set[L] {
	s.apply(s, func(x, _ uint64) uint64 { return ^x })
	return s
}

// Byte returns storage byte i, which holds bits [8i, 8i+8).
func (s Set[L]) Byte(i int) byte {
	if b := s.bytes(); checks && (i < 0 || i >= len(b)) {
		fail("Byte", "byte index %d out of range [0, %d)", i, len(b))
	}
	return s.bytes()[i]
}

// Bytes returns a copy of the ceil(N/8) storage bytes, lowest bits first.
func (s Set[L]) Bytes() []byte {
	return append([]byte(nil), s.bytes()...)
}

// NextSet returns the index of the first set bit at or after i.
// It returns -1, false if there is none.
func (s Set[L]) NextSet(i int) (int, bool) {
	n := s.Len()
	if checks && i < 0 {
		fail("NextSet", "bit index %d is negative", i)
	}
	if i >= n {
		return -1, false
	}

	b := s.bytes()
	last := len(b) - 1
	idx := i >> 3
	cur := b[idx] &^ (byte(1)<<(i&7) - 1)
	for {
		if idx == last {
			cur &= tailMask(n)
		}
		if cur != 0 {
			return idx<<3 + bits.TrailingZeros8(cur), true
		}
		idx++
		if idx > last {
			return -1, false
		}
		cur = b[idx]
	}
}

// Ones returns the indexes of all set bits in ascending order.
func (s Set[L]) Ones() []int {
	out := make([]int, 0, s.Count())
	for i, ok := s.NextSet(0); ok; i, ok = s.NextSet(i + 1) {
		out = append(out, i)
	}
	return out
}
