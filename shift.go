package smallbitset

// ShiftLeft moves every bit of s n positions towards the most significant
// end, filling vacated positions with zero. Shifting by N or more clears s.
func (s *Set[L]) ShiftLeft(n uint) *Set[L] {
	if n == 0 {
		return s
	}
	if n >= uint(s.Len()) {
		return s.ResetAll()
	}

	b := s.bytes()
	nb := len(b)
	byteShift, bitShift := int(n/8), n%8

	if byteShift > 0 {
		copy(b[byteShift:], b[:nb-byteShift])
		clear(b[:byteShift])
	}
	if bitShift > 0 {
		// High to low so each byte still sees its unshifted lower neighbor.
		for i := nb - 1; i > 0; i-- {
			b[i] = b[i]<<bitShift | b[i-1]>>(8-bitShift)
		}
		b[0] <<= bitShift
	}

	// Bits shifted out of the top land in the filler.
	s.normalize()
	return s
}

// ShiftRight moves every bit of s n positions towards the least significant
// end, filling vacated positions with zero. Shifting by N or more clears s.
func (s *Set[L]) ShiftRight(n uint) *Set[L] {
	if n == 0 {
		return s
	}
	if n >= uint(s.Len()) {
		return s.ResetAll()
	}

	b := s.bytes()
	nb := len(b)
	byteShift, bitShift := int(n/8), n%8

	if byteShift > 0 {
		copy(b, b[byteShift:])
		clear(b[nb-byteShift:])
	}
	if bitShift > 0 {
		// Low to high so each byte still sees its unshifted upper neighbor.
		for i := 0; i+1 < nb; i++ {
			b[i] = b[i]>>bitShift | b[i+1]<<(8-bitShift)
		}
		b[nb-1] >>= bitShift
	}
	return s
}

// Shl returns s shifted left by n bits.
func (s Set[L]) Shl(n uint) Set[L] {
	s.ShiftLeft(n)
	return s
}

// Shr returns s shifted right by n bits.
func (s Set[L]) Shr(n uint) Set[L] {
	s.ShiftRight(n)
	return s
}
