package smallbitset

import "unsafe"

// Layout is the fixed-size storage behind a Set. A layout is a pointer-free
// array type whose Width method reports the number of logical bits N.
//
// A layout must occupy at least ceil(N/8) bytes. Layouts below one register
// (fewer than 8 bytes) should be byte arrays so the Set keeps an alignment
// of 1 and packs tightly into larger structs. Wider layouts should be uint64
// arrays: the Set then takes register alignment and bulk operations run a
// word at a time. The predefined W1 to W1024 types follow this rule.
//
// Custom widths are declared the same way:
//
//	type W300 [5]uint64
//
//	func (W300) Width() int { return 300 }
type Layout interface {
	comparable
	Width() int
}

const wordBytes = 8

func widthOf[L Layout]() int {
	var l L
	return l.Width()
}

// byteLen returns ceil(N/8) for L after checking that L can hold it.
func byteLen[L Layout]() int {
	var l L
	n := l.Width()
	nb := (n + 7) / 8
	if checks {
		if n <= 0 {
			fail("layout", "%T reports width %d, want > 0", l, n)
		}
		if uintptr(nb) > unsafe.Sizeof(l) {
			fail("layout", "%T holds %d bytes, width %d needs %d", l, unsafe.Sizeof(l), n, nb)
		}
	}
	return nb
}

// tailMask returns the valid bit positions of the final byte of an n-bit set.
func tailMask(n int) byte {
	if r := n % 8; r != 0 {
		return byte(1)<<r - 1
	}
	return 0xFF
}

// bytes returns the byte view of the storage. Index i holds bits [8i, 8i+8).
func (s *Set[L]) bytes() []byte {
	return unsafe.Slice((*byte)(unsafe.Pointer(&s.data)), byteLen[L]())
}

// split partitions the storage into a register-width prefix and a byte tail.
// The prefix overlays the leading bytes of the byte view and is empty unless
// L is register-aligned. A partial final byte always lands in the tail, so
// the prefix never contains filler bits.
func (s *Set[L]) split() (words []uint64, tail []byte) {
	b := s.bytes()
	if unsafe.Alignof(s.data) < unsafe.Alignof(uint64(0)) {
		return nil, b
	}
	full := len(b)
	if widthOf[L]()%8 != 0 {
		full--
	}
	nw := full / wordBytes
	if nw == 0 {
		return nil, b
	}
	return unsafe.Slice((*uint64)(unsafe.Pointer(&s.data)), nw), b[nw*wordBytes:]
}

// normalize clears the filler bits of the final byte.
func (s *Set[L]) normalize() {
	b := s.bytes()
	b[len(b)-1] &= tailMask(widthOf[L]())
}

// apply replaces every storage chunk x of s with op(x, y), where y is the
// chunk at the same position of o, and then clears the filler bits. Words
// and bytes are combined independently, so op must act bitwise.
func (s *Set[L]) apply(o *Set[L], op func(x, y uint64) uint64) {
	sw, st := s.split()
	ow, ot := o.split()
	for i := range sw {
		sw[i] = op(sw[i], ow[i])
	}
	for i := range st {
		st[i] = byte(op(uint64(st[i]), uint64(ot[i])))
	}
	s.normalize()
}

// fold feeds every storage chunk to fn along with the mask of its valid
// bits: whole words first, then single bytes, the final byte masked to the
// N mod 8 valid positions. It stops as soon as fn returns false.
func (s *Set[L]) fold(fn func(chunk, valid uint64) bool) {
	words, tail := s.split()
	for _, w := range words {
		if !fn(w, ^uint64(0)) {
			return
		}
	}
	last := len(tail) - 1
	for i, b := range tail {
		valid := uint64(0xFF)
		if i == last {
			valid = uint64(tailMask(widthOf[L]()))
		}
		if !fn(uint64(b)&valid, valid) {
			return
		}
	}
}
