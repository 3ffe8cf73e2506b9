package smallbitset

import (
	"fmt"
	"unsafe"
)

// Unsigned is the set of integer types a Set converts to.
type Unsigned interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// ToUint returns the low bits of s as a T. When N exceeds the width of T
// the higher bits are discarded; ToUint never fails.
func ToUint[T Unsigned, L Layout](s Set[L]) T {
	var u uint64
	b := s.bytes()
	n := min(len(b), int(unsafe.Sizeof(T(0))))
	for i := n - 1; i >= 0; i-- {
		u = u<<8 | uint64(b[i])
	}
	return T(u)
}

// Uint32 returns the low 32 bits of s.
func (s Set[L]) Uint32() uint32 {
	return ToUint[uint32](s)
}

// Uint64 returns the low 64 bits of s.
func (s Set[L]) Uint64() uint64 {
	return ToUint[uint64](s)
}

// String renders s as N characters '0' or '1', most significant bit first.
func (s Set[L]) String() string {
	n := s.Len()
	b := s.bytes()
	out := make([]byte, n)
	for i := 0; i < n; i++ {
		out[n-1-i] = '0' + b[i>>3]>>(i&7)&1
	}
	return string(out)
}

// Parse is the inverse of String: text must hold exactly N characters
// '0' or '1', most significant bit first.
func Parse[L Layout](text string) (Set[L], error) {
	var s Set[L]
	n := s.Len()
	if len(text) != n {
		return Set[L]{}, fmt.Errorf("%w: got %d characters, want %d", ErrInvalidLength, len(text), n)
	}

	b := s.bytes()
	for pos := 0; pos < n; pos++ {
		i := n - 1 - pos
		switch text[pos] {
		case '0':
		case '1':
			b[i>>3] |= 1 << (i & 7)
		default:
			return Set[L]{}, &SyntaxError{Offset: pos, Char: text[pos]}
		}
	}
	return s, nil
}

// MustParse is like Parse but panics if text is malformed.
func MustParse[L Layout](text string) Set[L] {
	s, err := Parse[L](text)
	if err != nil {
		panic(err)
	}
	return s
}
