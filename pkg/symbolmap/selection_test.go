package symbolmap

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSymbolSet(t *testing.T) {
	s := newSymbolSet()
	assert.Equal(t, 0, s.len())
	assert.False(t, s.has(0))

	s.add(3)
	s.add(64) // second word
	s.add(200)
	s.add(3) // idempotent
	assert.Equal(t, 3, s.len())
	assert.True(t, s.has(3))
	assert.True(t, s.has(64))
	assert.True(t, s.has(200))
	assert.False(t, s.has(4))

	s.remove(64)
	s.remove(64)   // absent, no-op
	s.remove(9999) // out of range, no-op
	assert.Equal(t, 2, s.len())
	assert.False(t, s.has(64))
}

func TestSymbolSetEachAscending(t *testing.T) {
	s := newSymbolSet()
	for _, i := range []int{200, 3, 64, 65, 0} {
		s.add(i)
	}

	var got []int
	s.each(func(i int) { got = append(got, i) })
	assert.Equal(t, []int{0, 3, 64, 65, 200}, got)
}

func TestSymbolSetCloneIsIndependent(t *testing.T) {
	s := newSymbolSet()
	s.add(1)
	s.add(70)

	dup := s.clone()
	assert.Equal(t, s.len(), dup.len())

	dup.add(2)
	dup.remove(70)
	assert.True(t, s.has(70))
	assert.False(t, s.has(2))
	assert.Equal(t, 2, s.len())
	assert.Equal(t, 2, dup.len())
}
