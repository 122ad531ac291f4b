package engine

import "github.com/talgya/cubicle/internal/agents"

// ActionEmergencyNap is the involuntary rest forced on an exhausted character.
// It is not a catalog action.
const ActionEmergencyNap = "emergency_nap"

const (
	breakdownTicks    = 20
	emergencyNapTicks = 15
	accidentStress    = 50
	accidentSocial    = 50
)

// checkVitals forces involuntary transitions after decay. It reports whether
// the character's state dispatch must be skipped this tick. Death and
// breakdown end the tick immediately; fainting still lets the bladder check
// run.
func (s *Simulation) checkVitals(c *agents.Character) bool {
	if c.PhysicalHealth <= 0 {
		c.State = agents.StateDead
		c.Target = nil
		c.Thought = "X_X"
		s.logf(CategoryAlert, "%s worked themselves to death...", c.Name)
		return true
	}

	if c.Needs.Stress >= 100 && c.State != agents.StateBreakdown {
		c.State = agents.StateBreakdown
		c.ActionTimer = breakdownTicks
		c.Target = nil
		c.Thought = "Breakdown!"
		s.logf(CategoryAlert, "%s had a mental breakdown!", c.Name)
		return true
	}

	skip := false
	if c.Needs.Energy <= 0 && c.ActionID != ActionEmergencyNap {
		c.State = agents.StatePerforming
		c.ActionID = ActionEmergencyNap
		c.ActionTimer = emergencyNapTicks
		c.Target = nil
		c.Thought = "Zzz..."
		s.logf(CategoryAlert, "%s fainted.", c.Name)
		skip = true
	}

	if c.Needs.Bladder >= 100 {
		c.Needs.Bladder = 0
		c.Needs.Stress += accidentStress
		c.Needs.Social = max(0, c.Needs.Social-accidentSocial)
		c.Thought = "Oh no..."
		s.logf(CategoryAlert, "%s had an accident...", c.Name)
	}
	return skip
}
