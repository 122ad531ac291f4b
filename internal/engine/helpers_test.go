package engine

import (
	"github.com/talgya/cubicle/internal/agents"
	"github.com/talgya/cubicle/internal/catalog"
	"github.com/talgya/cubicle/internal/entropy"
	"github.com/talgya/cubicle/internal/office"
)

// worker returns a healthy, idle engineer sitting at its own desk.
func worker(id string, desk office.Coord) *agents.Character {
	return &agents.Character{
		ID:             agents.CharacterID(id),
		Name:           id,
		Role:           "Engineer",
		Level:          agents.LevelP5,
		Position:       desk,
		Desk:           desk,
		Needs:          agents.Needs{Energy: 80, Stress: 10, Bladder: 10, Social: 80},
		PhysicalHealth: 100,
		MentalHealth:   100,
		Salary:         10000,
		Intimacy:       map[agents.CharacterID]float64{},
		Skills:         map[string]float64{},
	}
}

func player(desk office.Coord) *agents.Character {
	p := worker(string(agents.PlayerID), desk)
	p.Name = "You"
	p.IsPlayer = true
	return p
}

// newSim builds a simulation whose random draws always return draw.
func newSim(draw float64, roster ...*agents.Character) *Simulation {
	s := NewSimulation(roster, catalog.Default())
	s.Rand = entropy.Fixed(draw)
	return s
}

func (s *Simulation) get(id string) *agents.Character {
	return s.world.Character(agents.CharacterID(id))
}

// flat is a behavior with a constant score and no effects.
type flat float64

func (flat) Strategy() string                                  { return "flat" }
func (f flat) Score(*agents.Character) float64                 { return float64(f) }
func (flat) Apply(*agents.Character, catalog.Env) catalog.Delta { return catalog.Delta{} }
