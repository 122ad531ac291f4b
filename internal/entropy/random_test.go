package entropy

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSeededIsReproducible(t *testing.T) {
	a := NewSeeded(7)
	b := NewSeeded(7)
	for i := 0; i < 10; i++ {
		assert.Equal(t, a.Float64(), b.Float64())
	}
}

func TestFixedIntnStaysInRange(t *testing.T) {
	assert.Equal(t, 0, Fixed(0).Intn(5))
	assert.Equal(t, 2, Fixed(0.5).Intn(5))
	assert.Equal(t, 4, Fixed(0.9999).Intn(5))
	assert.Equal(t, 4, Fixed(1).Intn(5))
}

func TestSequenceRepeatsLastDraw(t *testing.T) {
	s := NewSequence(0.1, 0.2)
	assert.Equal(t, 0.1, s.Float64())
	assert.Equal(t, 0.2, s.Float64())
	assert.Equal(t, 0.2, s.Float64())
}

func TestCryptoDrawsInUnitInterval(t *testing.T) {
	for i := 0; i < 100; i++ {
		v := Crypto{}.Float64()
		assert.GreaterOrEqual(t, v, 0.0)
		assert.Less(t, v, 1.0)
		n := Crypto{}.Intn(3)
		assert.GreaterOrEqual(t, n, 0)
		assert.Less(t, n, 3)
	}
}

func TestChance(t *testing.T) {
	assert.True(t, Chance(Fixed(0.05), 0.1))
	assert.False(t, Chance(Fixed(0.1), 0.1))
	assert.False(t, Chance(Fixed(0), 0))
}
