// Package bridge converts smallbitset.Set values to and from the
// run-time-sized bit containers used elsewhere: roaring.Bitmap
// (github.com/RoaringBitmap/roaring/v2) and bitset.BitSet
// (github.com/bits-and-blooms/bitset).
//
// Conversions into a Set validate their input: a source holding a bit at
// or above the Set's width yields ErrOutOfRange instead of a truncated Set.
package bridge
