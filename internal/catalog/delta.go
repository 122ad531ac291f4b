package catalog

import (
	"fmt"
	"math"

	"github.com/talgya/cubicle/internal/agents"
)

// Delta is the complete set of changes an action may make to the character
// performing it. Every field is additive. Nothing outside this struct can be
// touched by a catalog action.
type Delta struct {
	Energy  float64 `json:"energy,omitempty"`
	Stress  float64 `json:"stress,omitempty"`
	Bladder float64 `json:"bladder,omitempty"`
	Social  float64 `json:"social,omitempty"`

	PhysicalHealth float64 `json:"physical_health,omitempty"`
	MentalHealth   float64 `json:"mental_health,omitempty"`
	Intelligence   float64 `json:"intelligence,omitempty"`

	Skills map[string]float64 `json:"skills,omitempty"`

	Savings int64 `json:"savings,omitempty"`
	Stocks  int64 `json:"stocks,omitempty"`

	LinesOfCode int `json:"lines_of_code,omitempty"`
	BugsFixed   int `json:"bugs_fixed,omitempty"`
}

// Validate rejects deltas carrying non-finite values or negative counters.
func (d Delta) Validate() error {
	floats := map[string]float64{
		"energy":          d.Energy,
		"stress":          d.Stress,
		"bladder":         d.Bladder,
		"social":          d.Social,
		"physical_health": d.PhysicalHealth,
		"mental_health":   d.MentalHealth,
		"intelligence":    d.Intelligence,
	}
	for name, v := range floats {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%s is not finite", name)
		}
	}
	for name, v := range d.Skills {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("skill %q is not finite", name)
		}
	}
	if d.LinesOfCode < 0 || d.BugsFixed < 0 {
		return fmt.Errorf("performance counters cannot decrease")
	}
	return nil
}

// ApplyTo merges the delta into c. Needs are re-clamped afterwards and
// intelligence stays within 0–100.
func (d Delta) ApplyTo(c *agents.Character) {
	c.Needs.Energy += d.Energy
	c.Needs.Stress += d.Stress
	c.Needs.Bladder += d.Bladder
	c.Needs.Social += d.Social
	c.Needs.Clamp()

	c.PhysicalHealth += d.PhysicalHealth
	c.MentalHealth += d.MentalHealth
	c.Intelligence = agents.Clamp(c.Intelligence+d.Intelligence, 0, 100)

	if len(d.Skills) > 0 && c.Skills == nil {
		c.Skills = make(map[string]float64, len(d.Skills))
	}
	for name, v := range d.Skills {
		c.Skills[name] += v
	}

	c.Savings += d.Savings
	c.Stocks += d.Stocks
	c.Performance.LinesOfCode += d.LinesOfCode
	c.Performance.BugsFixed += d.BugsFixed
}
