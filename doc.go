// Package smallbitset provides Set, a fixed-width bit set packed into the
// minimum number of bytes.
//
// The width N is part of the type: a Set[L] holds the N bits reported by its
// layout L, stored in ceil(N/8) bytes. Predefined layouts W1 to W128 and
// W192, W256, W512, W1024 cover common widths; any array type with a Width
// method can serve as a layout.
//
// # Quick Start
//
//	var s smallbitset.Set[smallbitset.W73] // all bits zero
//	s.Set(3).Set(72)
//	s.Count()       // 2
//	s.Test(72)      // true
//	s.ShiftRight(3) // bit 0 and bit 69 now set
//	fmt.Println(s)  // 73 characters, most significant bit first
//
//	a := smallbitset.FromUint64[smallbitset.W9](256)
//	a.Shr(8) == smallbitset.FromUint64[smallbitset.W9](1) // true
//
// # Layout
//
// Widths below 57 bits use a byte array: sizeof(Set) == ceil(N/8) and the
// alignment is 1, so small sets pack tightly into larger structs. From 57
// bits on the layout is a uint64 array: the Set is register-aligned and
// bulk operations (flip, and/or/xor, all/any/count) run a word at a time
// over the same memory the byte view exposes.
//
// # Semantics
//
//   - Filler bits (positions >= N inside the final byte) are always zero.
//     Every bulk mutation restores this, and bulk queries additionally mask
//     the final byte, so == compares logical bits.
//   - Shifts by N or more clear the Set. Conversions to narrower integers
//     truncate. Neither is an error.
//   - Out-of-range bit indexes and oversized source integers are
//     programming errors and panic with a *PreconditionError. Build with
//     -tags smallbitset_unchecked to drop the checks.
//   - Parse is the only operation on runtime input and returns errors.
//
// # Population Count
//
// Count uses the CPU population-count instruction when available and a
// portable loop otherwise. Set SMALLBITSET_POPCOUNT=generic to force the
// portable loop.
package smallbitset
