package engine

import (
	"github.com/talgya/cubicle/internal/agents"
	"github.com/talgya/cubicle/internal/office"
)

// WorldState is everything that changes while the office runs. It is owned by
// a Simulation and only mutated through its tick and command methods.
type WorldState struct {
	Tick       uint64              `json:"tick"`
	Week       int                 `json:"week"`
	Quarter    int                 `json:"quarter"`
	Characters []*agents.Character `json:"characters"` // Fixed traversal order
	Logs       []LogEntry          `json:"logs"`       // Newest first
	Locations  office.Layout       `json:"locations"`

	ManagerActive bool `json:"manager_active"` // A patrol is in progress
	ManagerTimer  int  `json:"manager_timer"`  // Ticks left in the patrol
}

// NewWorldState creates the starting state from a roster. The roster is
// deep-copied so the caller's characters are never mutated.
func NewWorldState(roster []*agents.Character, layout office.Layout) *WorldState {
	if layout == nil {
		layout = office.DefaultLayout()
	}
	chars := make([]*agents.Character, len(roster))
	for i, c := range roster {
		chars[i] = c.Clone()
	}
	return &WorldState{
		Week:       1,
		Quarter:    1,
		Characters: chars,
		Locations:  layout.Clone(),
	}
}

// Clone returns a deep copy.
func (w *WorldState) Clone() *WorldState {
	out := *w
	out.Characters = make([]*agents.Character, len(w.Characters))
	for i, c := range w.Characters {
		out.Characters[i] = c.Clone()
	}
	out.Logs = append([]LogEntry(nil), w.Logs...)
	out.Locations = w.Locations.Clone()
	return &out
}

// Player returns the player character, or nil if the roster has none.
func (w *WorldState) Player() *agents.Character {
	for _, c := range w.Characters {
		if c.IsPlayer {
			return c
		}
	}
	return nil
}

// Character looks up a character by ID.
func (w *WorldState) Character(id agents.CharacterID) *agents.Character {
	for _, c := range w.Characters {
		if c.ID == id {
			return c
		}
	}
	return nil
}

// destination resolves the coordinate a character must reach to use zone.
func (w *WorldState) destination(zone office.Zone, c *agents.Character) office.Coord {
	return w.Locations.Destination(zone, c.Desk)
}
