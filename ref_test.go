package smallbitset

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBitRef(t *testing.T) {
	var s Set[W12]

	r := s.At(9)
	assert.False(t, r.Get())
	assert.True(t, r.Not())

	r.Assign(true)
	assert.True(t, s.Test(9))
	assert.True(t, r.Get())
	assert.False(t, r.Not())

	s.At(9).Assign(false)
	assert.False(t, s.Test(9))

	s.At(3).Toggle().Toggle().Toggle()
	assert.True(t, s.Test(3))
	assert.Equal(t, []int{3}, s.Ones())
}

func TestBitRefNegationIdiom(t *testing.T) {
	var s Set[W1]
	assert.True(t, s.At(0).Not())

	// s[i] = ~s[i]
	r := s.At(0)
	r.Assign(r.Not())
	assert.True(t, s.Test(0))
}

func TestBitRefAliasesOwner(t *testing.T) {
	var s Set[W65]
	r := s.At(64)
	s.Set(64)
	assert.True(t, r.Get(), "handle reads the live storage")

	c := s
	r.Assign(false)
	assert.False(t, s.Test(64))
	assert.True(t, c.Test(64), "a copy does not follow handles into its source")
}
