// Package engine advances the office one tick at a time: calendar and
// finances, manager patrols, need decay, critical vitals, decisions,
// movement, and action execution.
package engine

import (
	"log/slog"
	"math"
	"sync"

	"github.com/talgya/cubicle/internal/agents"
	"github.com/talgya/cubicle/internal/catalog"
	"github.com/talgya/cubicle/internal/entropy"
	"github.com/talgya/cubicle/internal/office"
)

// Tuning holds the knobs that are not part of the fixed office rules.
type Tuning struct {
	PatrolChance    float64 `yaml:"patrol_chance"`    // Per window
	PatrolLength    int     `yaml:"patrol_length"`    // Ticks
	PatrolWindow    uint64  `yaml:"patrol_window"`    // Ticks between patrol rolls
	Jitter          float64 `yaml:"jitter"`           // Upper bound of the uniform score perturbation
	CommitThreshold float64 `yaml:"commit_threshold"` // Best score must exceed this
	MoveSpeed       float64 `yaml:"move_speed"`       // Units per tick
	LogCapacity     int     `yaml:"log_capacity"`
}

// DefaultLogCapacity is how many log entries the world keeps.
const DefaultLogCapacity = 50

// DefaultTuning returns the standard office rules.
func DefaultTuning() Tuning {
	return Tuning{
		PatrolChance:    0.1,
		PatrolLength:    50,
		PatrolWindow:    100,
		Jitter:          5,
		CommitThreshold: 10,
		MoveSpeed:       1,
		LogCapacity:     DefaultLogCapacity,
	}
}

// Simulation owns the world state and serializes every mutation of it.
// Ticks and player commands are atomic with respect to each other.
type Simulation struct {
	mu    sync.Mutex
	world *WorldState

	Catalog *catalog.Catalog
	Tuning  Tuning
	Rand    entropy.Source
	Market  catalog.MarketMover // Optional

	// Calendar hooks, invoked inside the tick after the built-in handling.
	OnPayday func(tick uint64)
	OnReview func(tick uint64)

	Stats Stats
}

// NewSimulation creates a simulation over a copy of roster using the given
// action catalog. A nil catalog falls back to the built-in one.
func NewSimulation(roster []*agents.Character, cat *catalog.Catalog) *Simulation {
	if cat == nil {
		cat = catalog.Default()
	}
	s := &Simulation{
		world:   NewWorldState(roster, office.DefaultLayout()),
		Catalog: cat,
		Tuning:  DefaultTuning(),
		Rand:    entropy.NewSeeded(0),
	}
	s.logf(CategorySystem, "Simulation started. A new quarter begins.")
	s.updateStats()
	return s
}

// Restore replaces the world with a previously saved state.
func (s *Simulation) Restore(w *WorldState) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.world = w.Clone()
	if s.world.Locations == nil {
		s.world.Locations = office.DefaultLayout()
	}
	s.updateStats()
	slog.Info("world restored", "tick", s.world.Tick, "characters", len(s.world.Characters))
}

// State returns a snapshot of the world.
func (s *Simulation) State() *WorldState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.world.Clone()
}

// CurrentTick returns the most recently processed tick number.
func (s *Simulation) CurrentTick() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.world.Tick
}

// CurrentStats returns the aggregate statistics as of the last tick.
func (s *Simulation) CurrentStats() Stats {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.Stats
}

// AdvanceTick moves the world forward one tick and returns a snapshot.
func (s *Simulation) AdvanceTick() *WorldState {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.advance()
	return s.world.Clone()
}

func (s *Simulation) advance() {
	s.world.Tick++
	s.updateCalendar()
	s.updatePatrol()

	for _, c := range s.world.Characters {
		if !c.Alive() {
			continue // Dead is terminal; nothing about the character changes again
		}
		before := snapshotStats(c)
		s.processCharacter(c)
		c.LastDeltas = before.deltaTo(c)
	}
	s.updateStats()
}

// processCharacter runs one character's per-tick pipeline. Characters
// earlier in the roster have already been updated this tick when later ones
// read them.
func (s *Simulation) processCharacter(c *agents.Character) {
	s.decay(c)
	if s.checkVitals(c) {
		return
	}

	switch c.State {
	case agents.StateIdle:
		s.decide(c)
	case agents.StateMoving:
		s.move(c)
	case agents.StatePerforming:
		s.perform(c)
	case agents.StateBreakdown:
		s.breakdown(c)
	}
}

func (s *Simulation) breakdown(c *agents.Character) {
	c.ActionTimer--
	c.Needs.Stress = max(0, c.Needs.Stress-1)
	if c.ActionTimer <= 0 {
		c.State = agents.StateIdle
		c.Needs.Stress = 60
		c.Thought = "Calm down..."
		s.logf(CategoryInfo, "%s regained their composure.", c.Name)
	}
}

type statBlock struct {
	energy, stress, bladder, social, physical, mental float64
}

func snapshotStats(c *agents.Character) statBlock {
	return statBlock{
		energy:   c.Needs.Energy,
		stress:   c.Needs.Stress,
		bladder:  c.Needs.Bladder,
		social:   c.Needs.Social,
		physical: c.PhysicalHealth,
		mental:   c.MentalHealth,
	}
}

func (b statBlock) deltaTo(c *agents.Character) agents.StatDeltas {
	return agents.StatDeltas{
		Energy:         round1(c.Needs.Energy - b.energy),
		Stress:         round1(c.Needs.Stress - b.stress),
		Bladder:        round1(c.Needs.Bladder - b.bladder),
		Social:         round1(c.Needs.Social - b.social),
		PhysicalHealth: round1(c.PhysicalHealth - b.physical),
		MentalHealth:   round1(c.MentalHealth - b.mental),
	}
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
