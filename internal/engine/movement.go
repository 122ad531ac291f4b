package engine

import (
	"strings"

	"github.com/talgya/cubicle/internal/agents"
	"github.com/talgya/cubicle/internal/office"
)

const (
	pairwiseTicks    = 5 // Interactions and proposals
	wrongDeskSocial  = 10
	wrongDeskStress  = 5
	ownDeskTolerance = 1.0
)

// move advances a moving character one step. Pursuers re-aim at their
// partner's live position every tick.
func (s *Simulation) move(c *agents.Character) {
	if c.TargetCharacter != "" {
		if t := s.world.Character(c.TargetCharacter); t != nil {
			pos := t.Position
			c.Target = &pos
		}
	}
	if c.Target == nil {
		c.State = agents.StateIdle
		return
	}

	next, arrived := office.StepToward(c.Position, *c.Target, s.Tuning.MoveSpeed)
	c.Position = next
	if !arrived {
		return
	}
	c.Target = nil
	s.arrive(c)
}

// arrive starts the action the character walked to.
func (s *Simulation) arrive(c *agents.Character) {
	if isPairwise(c.ActionID) {
		c.State = agents.StatePerforming
		c.ActionTimer = pairwiseTicks
		switch Interaction(strings.TrimPrefix(c.ActionID, interactionPrefix)) {
		case InteractGossip:
			c.Thought = "Gossiping..."
		case InteractGift:
			c.Thought = "Handing over a gift..."
		default:
			c.Thought = "Proposing..."
		}
		return
	}

	def, ok := s.Catalog.Find(c.ActionID)
	if !ok {
		c.State = agents.StateIdle
		return
	}
	if def.Zone == office.ZoneDesk {
		s.checkDeskConflict(c)
	}
	c.State = agents.StatePerforming
	c.ActionTimer = def.Duration
	c.Location = def.Zone
	c.Thought = def.Label
}

// checkDeskConflict penalizes sitting at a colleague's desk: the intruder
// is embarrassed and the rightful owner annoyed.
func (s *Simulation) checkDeskConflict(c *agents.Character) {
	if office.Distance(c.Position, c.Desk) <= ownDeskTolerance {
		return
	}
	for _, owner := range s.world.Characters {
		if owner.ID == c.ID || !owner.Alive() {
			continue
		}
		if office.Within(c.Position, owner.Desk, ownDeskTolerance) {
			s.logf(CategoryAlert, "%s sat down at %s's desk by mistake. Awkward.", c.Name, owner.Name)
			c.Needs.Social = max(0, c.Needs.Social-wrongDeskSocial)
			owner.Needs.Stress += wrongDeskStress
			return
		}
	}
}

func isPairwise(actionID string) bool {
	return strings.HasPrefix(actionID, interactionPrefix) || actionID == ActionProposeMarriage
}
