package conformance

import "github.com/bits-and-blooms/bitset"

// reference is the arbitrary-width model a Set is compared against. It only
// uses per-bit and whole-set operations of the bitset package so that its
// shifts are independent of the byte-level algorithms under test.
type reference struct {
	n    uint
	bits *bitset.BitSet
}

func newReference(n int) *reference {
	return &reference{n: uint(n), bits: bitset.New(uint(n))}
}

func (r *reference) setAll() {
	r.bits.ClearAll()
	r.bits.FlipRange(0, r.n)
}

func (r *reference) flipAll() {
	r.bits.FlipRange(0, r.n)
}

// shifted returns a copy of the bits moved k positions up (left) or down,
// dropping everything that leaves [0, n).
func (r *reference) shifted(k uint, left bool) *bitset.BitSet {
	out := bitset.New(r.n)
	for i, ok := r.bits.NextSet(0); ok; i, ok = r.bits.NextSet(i + 1) {
		switch {
		case left && i+k < r.n:
			out.Set(i + k)
		case !left && i >= k:
			out.Set(i - k)
		}
	}
	return out
}

func (r *reference) count() int {
	return int(r.bits.Count())
}

// String renders the reference like smallbitset.Set.String.
func (r *reference) String() string {
	out := make([]byte, r.n)
	for i := uint(0); i < r.n; i++ {
		c := byte('0')
		if r.bits.Test(i) {
			c = '1'
		}
		out[r.n-1-i] = c
	}
	return string(out)
}
