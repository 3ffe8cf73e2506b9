package popcount

import (
	"math/bits"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKernelString(t *testing.T) {
	assert.Equal(t, "generic", Generic.String())
	assert.Equal(t, "hardware", Hardware.String())
	assert.Equal(t, "unknown", Kernel(42).String())
}

func TestParseKernel(t *testing.T) {
	tests := []struct {
		in   string
		want Kernel
		ok   bool
	}{
		{"generic", Generic, true},
		{" Generic ", Generic, true},
		{"hardware", Hardware, true},
		{"HW", Hardware, true},
		{"avx2", Generic, false},
		{"", Generic, false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ParseKernel(tt.in)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestByte(t *testing.T) {
	for v := 0; v < 256; v++ {
		assert.Equal(t, bits.OnesCount8(uint8(v)), Byte(byte(v)), "byte 0x%02X", v)
	}
}

func TestWord(t *testing.T) {
	words := []uint64{0, 1, 0x8000000000000000, ^uint64(0), 0x5555555555555555, 0x0F0F0F0F0F0F0F0F}
	for _, w := range words {
		assert.Equal(t, bits.OnesCount64(w), Word(w), "word 0x%X", w)
	}
}

func TestKernelsAgree(t *testing.T) {
	rng := rand.New(rand.NewSource(4711))

	for _, n := range []int{0, 1, 3, 7, 8, 9, 15, 16, 17, 31, 64, 129} {
		b := make([]byte, n)
		rng.Read(b)
		assert.Equal(t, bytesGeneric(b), bytesHardware(b), "bytes len %d", n)

		w := make([]uint64, n)
		for i := range w {
			w[i] = rng.Uint64()
		}
		assert.Equal(t, wordsGeneric(w), wordsHardware(w), "words len %d", n)
	}
}

func TestUse(t *testing.T) {
	prev := Active()
	t.Cleanup(func() { use(prev) })

	b := []byte{0xFF, 0x01, 0x80, 0x00, 0xAA, 0x55, 0x0F, 0xF0, 0x03}
	w := []uint64{^uint64(0), 1}

	use(Generic)
	require.Equal(t, Generic, Active())
	assert.Equal(t, 28, Bytes(b))
	assert.Equal(t, 65, Words(w))

	use(Hardware)
	require.Equal(t, Hardware, Active())
	assert.Equal(t, 28, Bytes(b))
	assert.Equal(t, 65, Words(w))
}

func TestInitCapabilitiesOverride(t *testing.T) {
	prevKernel, prevPOPCNT, prevOverride := Active(), hasPOPCNT, hasOverride
	t.Cleanup(func() {
		hasPOPCNT, hasOverride = prevPOPCNT, prevOverride
		use(prevKernel)
	})

	tests := []struct {
		name       string
		env        string
		popcnt     bool
		want       Kernel
		overridden bool
	}{
		{"generic forced", "generic", true, Generic, true},
		{"hardware available", "hardware", true, Hardware, true},
		{"hardware unavailable falls back", "hardware", false, Generic, true},
		{"hw alias", "HW", true, Hardware, true},
		{"unknown ignored", "avx2", true, Hardware, false},
		{"unset with popcnt", "", true, Hardware, false},
		{"unset without popcnt", "", false, Generic, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(EnvOverride, tt.env)
			hasPOPCNT = tt.popcnt

			initCapabilities()

			assert.Equal(t, tt.want, Active())
			assert.Equal(t, tt.overridden, IsOverridden())
			assert.Equal(t, 28, Bytes([]byte{0xFF, 0x01, 0x80, 0x00, 0xAA, 0x55, 0x0F, 0xF0, 0x03}))
		})
	}
}

func TestIsAvailable(t *testing.T) {
	assert.True(t, isAvailable(Generic))
	assert.Equal(t, HasPOPCNT(), isAvailable(Hardware))
	assert.False(t, isAvailable(Kernel(9)))
}

func BenchmarkBytes(b *testing.B) {
	buf := make([]byte, 128)
	rand.New(rand.NewSource(1)).Read(buf)

	b.Run("generic", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			_ = bytesGeneric(buf)
		}
	})
	b.Run("hardware", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			_ = bytesHardware(buf)
		}
	})
}
