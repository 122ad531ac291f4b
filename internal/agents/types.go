// Package agents provides the employee data model: identity, needs, health,
// career, relationships, and stable traits.
package agents

import (
	"fmt"

	"github.com/talgya/cubicle/internal/office"
)

// CharacterID uniquely identifies a character.
type CharacterID string

// Gender drives the marriage and pregnancy rules.
type Gender uint8

const (
	GenderMale Gender = iota
	GenderFemale
	GenderOther
)

var genderNames = [...]string{"Male", "Female", "Other"}

func (g Gender) String() string {
	if int(g) < len(genderNames) {
		return genderNames[g]
	}
	return fmt.Sprintf("Gender(%d)", g)
}

func (g Gender) MarshalText() ([]byte, error) {
	return []byte(g.String()), nil
}

func (g *Gender) UnmarshalText(b []byte) error {
	for i, n := range genderNames {
		if n == string(b) {
			*g = Gender(i)
			return nil
		}
	}
	return fmt.Errorf("unknown gender %q", string(b))
}

// State is the behavioral state of a character. Dead is terminal.
type State uint8

const (
	StateIdle State = iota
	StateMoving
	StatePerforming
	StateBreakdown
	StateDead
)

var stateNames = [...]string{"IDLE", "MOVING", "PERFORMING", "BREAKDOWN", "DEAD"}

func (s State) String() string {
	if int(s) < len(stateNames) {
		return stateNames[s]
	}
	return fmt.Sprintf("State(%d)", s)
}

func (s State) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s *State) UnmarshalText(b []byte) error {
	for i, n := range stateNames {
		if n == string(b) {
			*s = State(i)
			return nil
		}
	}
	return fmt.Errorf("unknown state %q", string(b))
}

// Roles with special handling in the engine.
const (
	RoleCEO          = "CEO"
	RoleTechDirector = "Tech Director"
	RoleHR           = "HRBP"
)

// Seniority levels with review targets.
const (
	LevelIntern = "Intern"
	LevelP5     = "P5"
	LevelP6     = "P6"
	LevelP7     = "P7"
	LevelP8     = "P8"
)

// Performance holds the quarterly KPI counters.
type Performance struct {
	LinesOfCode     int `json:"lines_of_code"`
	BugsFixed       int `json:"bugs_fixed"`
	LastReviewScore int `json:"last_review_score"` // Percent of target at last review
}

// StatDeltas is the signed change in each tracked stat over the last tick.
type StatDeltas struct {
	Energy         float64 `json:"energy"`
	Stress         float64 `json:"stress"`
	Bladder        float64 `json:"bladder"`
	Social         float64 `json:"social"`
	PhysicalHealth float64 `json:"physical_health"`
	MentalHealth   float64 `json:"mental_health"`
}

// Character is an employee (player or NPC) on the office floor.
type Character struct {
	ID       CharacterID `json:"id"`
	Name     string      `json:"name"`
	Role     string      `json:"role"`
	IsPlayer bool        `json:"is_player,omitempty"`
	Gender   Gender      `json:"gender"`

	// Spatial
	Position        office.Coord  `json:"position"`
	Target          *office.Coord `json:"target,omitempty"`
	TargetCharacter CharacterID   `json:"target_character,omitempty"` // Interaction partner being pursued
	Desk            office.Coord  `json:"desk"`
	Location        office.Zone   `json:"location"`

	// Behavior
	State       State  `json:"state"`
	ActionID    string `json:"action_id,omitempty"`
	ActionTimer int    `json:"action_timer"` // Only meaningful while Moving, Performing, or in Breakdown

	// Needs and health
	Needs          Needs   `json:"needs"`
	PhysicalHealth float64 `json:"physical_health"` // 0–100 nominal; may go negative
	MentalHealth   float64 `json:"mental_health"`
	Sickness       string  `json:"sickness,omitempty"`

	// Career and money (yuan)
	Age          int         `json:"age"`
	Level        string      `json:"level"`
	CompanyYears int         `json:"company_years"`
	Salary       int64       `json:"monthly_salary"`
	Savings      int64       `json:"savings"`
	Debt         int64       `json:"debt"`
	Stocks       int64       `json:"stocks"`
	Options      int64       `json:"options"`
	Assets       int64       `json:"assets"`
	Performance  Performance `json:"performance"`

	// Relationships
	SpouseID          CharacterID             `json:"spouse_id,omitempty"`
	Married           bool                    `json:"married"`
	Pregnant          bool                    `json:"pregnant"`
	PregnancyProgress float64                 `json:"pregnancy_progress"`
	Intimacy          map[CharacterID]float64 `json:"intimacy"` // Directional, 0–100

	// Stable traits
	Intelligence float64            `json:"intelligence"`
	Attraction   float64            `json:"attraction"`
	Ambition     float64            `json:"ambition"`
	Traits       []Trait            `json:"traits"`
	Skills       map[string]float64 `json:"skills"`

	// UI hints
	Thought    string     `json:"thought"`
	LastDeltas StatDeltas `json:"last_deltas"`
}

// Alive reports whether the character has not died.
func (c *Character) Alive() bool {
	return c.State != StateDead
}

// IsManager reports whether the character patrols and reports misconduct.
func (c *Character) IsManager() bool {
	return c.Role == RoleTechDirector
}

// IntimacyWith returns the directional intimacy toward other (0 when unknown).
func (c *Character) IntimacyWith(other CharacterID) float64 {
	return c.Intimacy[other]
}

// AdjustIntimacy changes the directional intimacy toward other, clamped to 0–100.
func (c *Character) AdjustIntimacy(other CharacterID, delta float64) {
	if c.Intimacy == nil {
		c.Intimacy = make(map[CharacterID]float64)
	}
	c.Intimacy[other] = clamp(c.Intimacy[other]+delta, 0, 100)
}

// Skill returns a skill value, 0 when the character never trained it.
func (c *Character) Skill(name string) float64 {
	return c.Skills[name]
}

// Clone returns a deep copy safe to hand to readers outside the tick loop.
func (c *Character) Clone() *Character {
	out := *c
	if c.Target != nil {
		t := *c.Target
		out.Target = &t
	}
	out.Traits = append([]Trait(nil), c.Traits...)
	if c.Skills != nil {
		out.Skills = make(map[string]float64, len(c.Skills))
		for k, v := range c.Skills {
			out.Skills[k] = v
		}
	}
	if c.Intimacy != nil {
		out.Intimacy = make(map[CharacterID]float64, len(c.Intimacy))
		for k, v := range c.Intimacy {
			out.Intimacy[k] = v
		}
	}
	return &out
}

// Skill names used by the built-in catalog.
const (
	SkillProgramming  = "programming"
	SkillSystemDesign = "system_design"
	SkillAnalysis     = "analysis"
	SkillPsychology   = "psychology"
)
