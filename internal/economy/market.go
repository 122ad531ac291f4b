// Package economy models the stock market employees trade on between
// coding sessions.
package economy

import (
	"sync"

	opensimplex "github.com/ojrac/opensimplex-go"
)

// Market tuning. The trend is a slow simplex wave so that a given week is
// broadly bullish or bearish for everyone. Individual sessions add uniform
// jitter on top, biased slightly upward.
const (
	trendFrequency   = 0.002 // Per tick
	trendOctaves     = 3
	trendPersistence = 0.5
	trendAmplitude   = 0.02
	jitterAmplitude  = 0.05
	jitterCenter     = 0.45
	baseIndex        = 3000.0
)

// Market is a deterministic index driven by simplex noise. Safe for concurrent use.
type Market struct {
	mu    sync.Mutex
	noise opensimplex.Noise
	seed  int64
}

// NewMarket creates a market seeded for reproducibility.
func NewMarket(seed int64) *Market {
	return &Market{noise: opensimplex.New(seed), seed: seed}
}

// Seed returns the seed the market was created with.
func (m *Market) Seed() int64 {
	return m.seed
}

// Trend returns the market sentiment at tick, roughly within [-1, 1].
func (m *Market) Trend(tick uint64) float64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return octaveNoise(m.noise, float64(tick), 0, trendOctaves, trendFrequency, trendPersistence)
}

// Move returns the fractional portfolio change for one trading session.
// draw is a uniform value in [0, 1).
func (m *Market) Move(tick uint64, draw float64) float64 {
	return (draw-jitterCenter)*jitterAmplitude + m.Trend(tick)*trendAmplitude
}

// Index returns the headline index value at tick.
func (m *Market) Index(tick uint64) float64 {
	return baseIndex * (1 + m.Trend(tick)*0.25)
}

// octaveNoise layers several frequencies of simplex noise.
func octaveNoise(noise opensimplex.Noise, x, y float64, octaves int, frequency, persistence float64) float64 {
	total := 0.0
	amplitude := 1.0
	maxVal := 0.0

	for i := 0; i < octaves; i++ {
		total += noise.Eval2(x*frequency, y*frequency) * amplitude
		maxVal += amplitude
		amplitude *= persistence
		frequency *= 2
	}

	return total / maxVal
}
