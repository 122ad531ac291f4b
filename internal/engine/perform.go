package engine

import (
	"log/slog"
	"strings"

	"github.com/talgya/cubicle/internal/agents"
	"github.com/talgya/cubicle/internal/catalog"
	"github.com/talgya/cubicle/internal/entropy"
)

// Interaction outcomes.
const (
	GiftCost = 500

	gossipSocial     = 30
	gossipIntimacy   = 5
	giftGiverSocial  = 20
	giftSocial       = 50
	giftRelief       = 40
	giftIntimacy     = 20
	rejectionStress  = 50
	rejectionCooling = 20
	rumorSocial      = 20
	rumorStress      = 10
	reportStress     = 10
	wakeEnergy       = 30
)

// perform counts down the current action and resolves it on expiry.
func (s *Simulation) perform(c *agents.Character) {
	c.ActionTimer--

	if c.ActionID == ActionEmergencyNap {
		if c.ActionTimer <= 0 {
			c.State = agents.StateIdle
			c.Needs.Energy = wakeEnergy
			c.ActionID = ""
			c.Thought = "Waking up..."
			s.logf(CategoryInfo, "%s woke up.", c.Name)
		}
		return
	}
	if c.ActionTimer > 0 {
		return
	}

	switch {
	case strings.HasPrefix(c.ActionID, interactionPrefix):
		if t := s.partner(c); t != nil {
			s.interact(c, t, Interaction(strings.TrimPrefix(c.ActionID, interactionPrefix)))
		}
	case c.ActionID == ActionProposeMarriage:
		if t := s.partner(c); t != nil {
			s.resolveProposal(c, t)
		}
	default:
		s.complete(c)
	}

	if c.ActionID != "" {
		if c.IsPlayer {
			s.logf(CategoryInfo, "You finished: %s.", s.actionLabel(c.ActionID))
		} else {
			slog.Debug("action finished", "tick", s.world.Tick, "character", c.ID, "action", c.ActionID)
		}
	}
	c.State = agents.StateIdle
	c.ActionID = ""
	c.TargetCharacter = ""
	c.Thought = "?"
}

// partner returns the living interaction target, if any.
func (s *Simulation) partner(c *agents.Character) *agents.Character {
	if c.TargetCharacter == "" {
		return nil
	}
	t := s.world.Character(c.TargetCharacter)
	if t == nil || !t.Alive() {
		return nil
	}
	return t
}

func (s *Simulation) interact(c, t *agents.Character, kind Interaction) {
	switch kind {
	case InteractGossip:
		s.logf(CategoryInfo, "%s gossiped with %s.", c.Name, t.Name)
		c.Needs.Social = min(agents.NeedMax, c.Needs.Social+gossipSocial)
		t.Needs.Social = min(agents.NeedMax, t.Needs.Social+gossipSocial)
		c.AdjustIntimacy(t.ID, gossipIntimacy)
		t.AdjustIntimacy(c.ID, gossipIntimacy)
	case InteractGift:
		s.logf(CategoryInfo, "%s gave %s a gift (-%s).", c.Name, t.Name, yuan(GiftCost))
		c.Savings -= GiftCost
		c.Needs.Social = min(agents.NeedMax, c.Needs.Social+giftGiverSocial)
		t.Needs.Social = min(agents.NeedMax, t.Needs.Social+giftSocial)
		t.Needs.Stress = max(0, t.Needs.Stress-giftRelief)
		c.AdjustIntimacy(t.ID, giftIntimacy)
		t.AdjustIntimacy(c.ID, giftIntimacy)
	}
}

// resolveProposal succeeds with probability equal to the proposer's
// intimacy toward the target, read as a fraction.
func (s *Simulation) resolveProposal(c, t *agents.Character) {
	if entropy.Chance(s.Rand, c.IntimacyWith(t.ID)/100) {
		s.logf(CategoryLove, "Good news! %s proposed to %s and they said yes!", c.Name, t.Name)
		c.SpouseID = t.ID
		t.SpouseID = c.ID
		c.Married = true
		t.Married = true
		return
	}
	s.logf(CategoryAlert, "%s proposed to %s and was turned down...", c.Name, t.Name)
	c.Needs.Stress += rejectionStress
	c.AdjustIntimacy(t.ID, -rejectionCooling)
}

// complete applies a catalog action's effects plus any effect it has on a
// colleague.
func (s *Simulation) complete(c *agents.Character) {
	def, ok := s.Catalog.Find(c.ActionID)
	if !ok {
		return
	}
	delta := def.Apply(c, catalog.Env{Rand: s.Rand, Tick: s.world.Tick, Market: s.Market})
	if err := delta.Validate(); err != nil {
		slog.Warn("discarding action effects", "action", def.ID, "character", c.ID, "error", err)
	} else {
		delta.ApplyTo(c)
	}

	switch def.ID {
	case catalog.ActionSpreadRumor:
		s.spreadRumor(c)
	case catalog.ActionRecordMisconduct:
		s.fileReport(c)
	}
}

// spreadRumor hurts a random living colleague.
func (s *Simulation) spreadRumor(c *agents.Character) {
	var victims []*agents.Character
	for _, o := range s.world.Characters {
		if o.ID != c.ID && o.Alive() {
			victims = append(victims, o)
		}
	}
	if len(victims) == 0 {
		return
	}
	v := victims[s.Rand.Intn(len(victims))]
	v.Needs.Social = max(0, v.Needs.Social-rumorSocial)
	v.Needs.Stress = min(agents.NeedMax, v.Needs.Stress+rumorStress)
	s.logf(CategoryAlert, "%s is spreading nasty rumors about %s in the lounge!", c.Name, v.Name)
}

// fileReport lands the manager's misconduct report on the victim.
func (s *Simulation) fileReport(c *agents.Character) {
	v := s.partner(c)
	if v == nil {
		return
	}
	v.Needs.Stress = min(agents.NeedMax, v.Needs.Stress+reportStress)
	s.logf(CategorySecret, "%s filed a misconduct report on %s.", c.Name, v.Name)
}

func (s *Simulation) actionLabel(id string) string {
	if def, ok := s.Catalog.Find(id); ok {
		return def.Label
	}
	switch {
	case id == ActionProposeMarriage:
		return "proposal"
	case strings.HasPrefix(id, interactionPrefix):
		return strings.TrimPrefix(id, interactionPrefix)
	}
	return id
}
