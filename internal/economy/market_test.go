package economy

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMarketIsDeterministic(t *testing.T) {
	a := NewMarket(42)
	b := NewMarket(42)
	for tick := uint64(0); tick < 2000; tick += 137 {
		assert.Equal(t, a.Move(tick, 0.3), b.Move(tick, 0.3))
	}
}

func TestMarketMoveIsBounded(t *testing.T) {
	m := NewMarket(7)
	for tick := uint64(0); tick < 5000; tick += 50 {
		for _, draw := range []float64{0, 0.45, 0.999} {
			move := m.Move(tick, draw)
			assert.Greater(t, move, -0.05)
			assert.Less(t, move, 0.05)
		}
	}
}

func TestMarketTrendDrifts(t *testing.T) {
	m := NewMarket(3)
	seen := map[bool]bool{}
	for tick := uint64(0); tick < 20000; tick += 100 {
		seen[m.Trend(tick) > 0] = true
	}
	assert.Len(t, seen, 2, "trend should cross zero over a long run")
}

func TestMarketIndexTracksTrend(t *testing.T) {
	m := NewMarket(11)
	for tick := uint64(0); tick < 3000; tick += 300 {
		idx := m.Index(tick)
		assert.Greater(t, idx, 2000.0)
		assert.Less(t, idx, 4000.0)
	}
}
