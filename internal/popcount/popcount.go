package popcount

import (
	"encoding/binary"
	"math/bits"
)

// Kernel function pointers. Generic implementations are the default;
// use switches them when the hardware kernel is selected.
var (
	kernelBytes = bytesGeneric
	kernelWords = wordsGeneric
)

func use(k Kernel) {
	active = k
	switch k {
	case Hardware:
		kernelBytes = bytesHardware
		kernelWords = wordsHardware
	default:
		kernelBytes = bytesGeneric
		kernelWords = wordsGeneric
	}
}

// Bytes counts all set bits across b.
func Bytes(b []byte) int {
	return kernelBytes(b)
}

// Words counts all set bits across w.
func Words(w []uint64) int {
	return kernelWords(w)
}

// Byte counts the set bits of a single byte with the portable loop.
func Byte(b byte) int {
	n := 0
	for b != 0 {
		b &= b - 1
		n++
	}
	return n
}

// Word counts the set bits of a single word with the portable loop.
func Word(w uint64) int {
	n := 0
	for w != 0 {
		w &= w - 1
		n++
	}
	return n
}

// ==============================================================================
// Generic implementations
// ==============================================================================

func bytesGeneric(b []byte) int {
	n := 0
	for _, v := range b {
		n += Byte(v)
	}
	return n
}

func wordsGeneric(w []uint64) int {
	n := 0
	for _, v := range w {
		n += Word(v)
	}
	return n
}

// ==============================================================================
// Hardware implementations
// ==============================================================================

func bytesHardware(b []byte) int {
	n := 0
	// Load 8 bytes at a time; byte order does not matter for a popcount.
	i := 0
	for ; i+8 <= len(b); i += 8 {
		n += bits.OnesCount64(binary.LittleEndian.Uint64(b[i:]))
	}
	for ; i < len(b); i++ {
		n += bits.OnesCount8(b[i])
	}
	return n
}

func wordsHardware(w []uint64) int {
	n := 0
	// Process 4 words at a time
	i := 0
	for ; i+4 <= len(w); i += 4 {
		n += bits.OnesCount64(w[i])
		n += bits.OnesCount64(w[i+1])
		n += bits.OnesCount64(w[i+2])
		n += bits.OnesCount64(w[i+3])
	}
	for ; i < len(w); i++ {
		n += bits.OnesCount64(w[i])
	}
	return n
}
