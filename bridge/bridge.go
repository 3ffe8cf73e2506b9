package bridge

import (
	"errors"
	"fmt"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/bits-and-blooms/bitset"
	"github.com/hupe1980/smallbitset"
)

var (
	// ErrOutOfRange is returned when a source holds a bit the Set cannot represent.
	ErrOutOfRange = errors.New("bit index out of range")
)

func outOfRange(index uint64, width int) error {
	return fmt.Errorf("%w: bit %d, width %d", ErrOutOfRange, index, width)
}

// ToBitmap returns a roaring bitmap holding the indexes of the set bits of s.
func ToBitmap[L smallbitset.Layout](s smallbitset.Set[L]) *roaring.Bitmap {
	bm := roaring.New()
	for i, ok := s.NextSet(0); ok; i, ok = s.NextSet(i + 1) {
		bm.Add(uint32(i))
	}
	return bm
}

// FromBitmap returns the Set whose set bits are the values of bm.
func FromBitmap[L smallbitset.Layout](bm *roaring.Bitmap) (smallbitset.Set[L], error) {
	var s smallbitset.Set[L]
	if bm == nil {
		return s, nil
	}

	n := s.Len()
	if !bm.IsEmpty() && uint64(bm.Maximum()) >= uint64(n) {
		return smallbitset.Set[L]{}, outOfRange(uint64(bm.Maximum()), n)
	}

	it := bm.Iterator()
	for it.HasNext() {
		s.Set(int(it.Next()))
	}
	return s, nil
}

// ToBitSet returns a bitset.BitSet of length N holding the bits of s.
func ToBitSet[L smallbitset.Layout](s smallbitset.Set[L]) *bitset.BitSet {
	b := bitset.New(uint(s.Len()))
	for i, ok := s.NextSet(0); ok; i, ok = s.NextSet(i + 1) {
		b.Set(uint(i))
	}
	return b
}

// FromBitSet returns the Set holding the bits of b. The length of b does
// not matter, only its set bits.
func FromBitSet[L smallbitset.Layout](b *bitset.BitSet) (smallbitset.Set[L], error) {
	var s smallbitset.Set[L]
	if b == nil {
		return s, nil
	}

	n := uint(s.Len())
	for i, ok := b.NextSet(0); ok; i, ok = b.NextSet(i + 1) {
		if i >= n {
			return smallbitset.Set[L]{}, outOfRange(uint64(i), int(n))
		}
		s.Set(int(i))
	}
	return s, nil
}
