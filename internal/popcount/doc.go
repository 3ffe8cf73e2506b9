// Package popcount provides population-count kernels over bytes and words.
//
// # Kernels
//
//   - Generic: portable bit-clearing loop, the canonical implementation
//   - Hardware: math/bits intrinsics (POPCNT on x86-64, CNT on ARM64)
//
// Runtime CPU feature detection selects the kernel once at package init.
// Set SMALLBITSET_POPCOUNT=generic to force the portable loop, or
// SMALLBITSET_POPCOUNT=hardware to request the intrinsic path. A request
// for an unavailable kernel falls back to auto-detection.
//
// Both kernels return identical results for identical bit patterns.
package popcount
