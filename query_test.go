package smallbitset

import (
	"math/bits"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQueriesEmptyAndFull(t *testing.T) {
	t.Run("W1", func(t *testing.T) { checkEmptyAndFull[W1](t) })
	t.Run("W8", func(t *testing.T) { checkEmptyAndFull[W8](t) })
	t.Run("W9", func(t *testing.T) { checkEmptyAndFull[W9](t) })
	t.Run("W56", func(t *testing.T) { checkEmptyAndFull[W56](t) })
	t.Run("W57", func(t *testing.T) { checkEmptyAndFull[W57](t) })
	t.Run("W64", func(t *testing.T) { checkEmptyAndFull[W64](t) })
	t.Run("W65", func(t *testing.T) { checkEmptyAndFull[W65](t) })
	t.Run("W73", func(t *testing.T) { checkEmptyAndFull[W73](t) })
	t.Run("W128", func(t *testing.T) { checkEmptyAndFull[W128](t) })
	t.Run("W1024", func(t *testing.T) { checkEmptyAndFull[W1024](t) })
}

func checkEmptyAndFull[L Layout](t *testing.T) {
	var s Set[L]
	n := s.Len()

	assert.False(t, s.All())
	assert.False(t, s.Any())
	assert.True(t, s.None())
	assert.Equal(t, 0, s.Count())

	s.SetAll()
	assert.True(t, s.All())
	assert.True(t, s.Any())
	assert.False(t, s.None())
	assert.Equal(t, n, s.Count())

	s.Reset(n - 1)
	assert.False(t, s.All())
	assert.Equal(t, n-1, s.Count())

	s.ResetAll().Set(n - 1)
	assert.True(t, s.Any())
	assert.Equal(t, 1, s.Count())
}

func TestQueriesMaskFinalByte(t *testing.T) {
	// Write filler bits behind the API's back: queries must ignore them.
	var s Set[W73]
	b := s.bytes()
	b[len(b)-1] = 0xFE

	assert.False(t, s.Any())
	assert.True(t, s.None())
	assert.Equal(t, 0, s.Count())

	s.SetAll()
	b = s.bytes()
	b[len(b)-1] = 0xFF
	assert.True(t, s.All())
	assert.Equal(t, 73, s.Count())

	var w Set[W57]
	wb := w.bytes()
	wb[7] = 0xFE
	assert.Equal(t, 0, w.Count())
	assert.True(t, w.None())
}

func TestCountFinalBytePatterns(t *testing.T) {
	for v := 0; v < 256; v++ {
		var s9 Set[W9]
		b9 := s9.bytes()
		b9[1] = byte(v)
		assert.Equal(t, v&1, s9.Count(), "W9 final byte %#02x", v)

		var s57 Set[W57]
		b57 := s57.bytes()
		b57[7] = byte(v)
		assert.Equal(t, v&1, s57.Count(), "W57 final byte %#02x", v)

		var s73 Set[W73]
		b73 := s73.bytes()
		b73[0] = 0xFF
		b73[len(b73)-1] = byte(v)
		assert.Equal(t, 8+(v&1), s73.Count(), "W73 final byte %#02x", v)
	}
}

func TestCountRandom(t *testing.T) {
	rng := rand.New(rand.NewSource(4711))

	for iter := 0; iter < 200; iter++ {
		var s Set[W1024]
		want := 0
		words, tail := s.split()
		assert.Empty(t, tail)
		for i := range words {
			words[i] = rng.Uint64()
			want += bits.OnesCount64(words[i])
		}
		assert.Equal(t, want, s.Count())
		assert.Equal(t, want == 1024, s.All())
	}
}

func BenchmarkCount(b *testing.B) {
	var s Set[W1024]
	words, _ := s.split()
	for i := range words {
		words[i] = 0x5555555555555555
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if s.Count() != 512 {
			b.Fatal("bad count")
		}
	}
}
