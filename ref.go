package smallbitset

// BitRef is a writable handle to one bit of a Set, returned by Set.At.
//
// A BitRef aliases the Set's storage: Assign and Toggle write the owning
// byte directly. Use it within the expression that produced it; it does
// not follow the Set when the Set is copied.
type BitRef struct {
	b    *byte
	mask byte
}

// At returns a handle to bit i.
func (s *Set[L]) At(i int) BitRef {
	checkIndex[L]("At", i)
	return BitRef{b: &s.bytes()[i>>3], mask: 1 << (i & 7)}
}

// Get reports whether the bit is set.
func (r BitRef) Get() bool {
	return *r.b&r.mask != 0
}

// Not reports whether the bit is clear.
func (r BitRef) Not() bool {
	return *r.b&r.mask == 0
}

// Assign sets the bit to v.
func (r BitRef) Assign(v bool) BitRef {
	if v {
		*r.b |= r.mask
	} else {
		*r.b &^= r.mask
	}
	return r
}

// Toggle inverts the bit.
func (r BitRef) Toggle() BitRef {
	*r.b ^= r.mask
	return r
}
