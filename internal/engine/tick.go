package engine

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// DefaultInterval is the real time between ticks at speed 1.
const DefaultInterval = 500 * time.Millisecond

// Engine drives a Simulation in real time.
type Engine struct {
	Sim      *Simulation
	Interval time.Duration // Base tick interval at speed 1

	// OnTick runs after every tick with a snapshot of the world.
	OnTick func(w *WorldState)

	mu    sync.RWMutex
	speed float64 // Multiplier: 1.0 = real-time, 0 = paused
}

// NewEngine creates an engine with default settings.
func NewEngine(sim *Simulation) *Engine {
	return &Engine{
		Sim:      sim,
		Interval: DefaultInterval,
		speed:    1.0,
	}
}

// Speed returns the current speed multiplier.
func (e *Engine) Speed() float64 {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.speed
}

// SetSpeed changes the speed multiplier. Zero or less pauses the engine.
func (e *Engine) SetSpeed(speed float64) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.speed = max(0, speed)
}

// Run advances the simulation until ctx is cancelled.
func (e *Engine) Run(ctx context.Context) {
	slog.Info("simulation engine started", "tick", e.Sim.CurrentTick(), "speed", e.Speed())
	defer func() {
		slog.Info("simulation engine stopped", "tick", e.Sim.CurrentTick())
	}()

	for {
		speed := e.Speed()
		if speed <= 0 {
			// Paused; check again shortly.
			if !sleep(ctx, 100*time.Millisecond) {
				return
			}
			continue
		}

		start := time.Now()
		e.Step()

		target := time.Duration(float64(e.Interval) / speed)
		wait := target - time.Since(start)
		if wait < 0 {
			wait = 0
		}
		if !sleep(ctx, wait) {
			return
		}
	}
}

// Step advances exactly one tick and notifies OnTick.
func (e *Engine) Step() *WorldState {
	w := e.Sim.AdvanceTick()
	if e.OnTick != nil {
		e.OnTick(w)
	}
	return w
}

// sleep waits for d or until ctx is done. It reports whether ctx is still live.
func sleep(ctx context.Context, d time.Duration) bool {
	if err := ctx.Err(); err != nil {
		return false
	}
	if d <= 0 {
		return true
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}
