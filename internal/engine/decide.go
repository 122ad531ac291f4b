package engine

import (
	"math"

	"github.com/talgya/cubicle/internal/agents"
	"github.com/talgya/cubicle/internal/catalog"
	"github.com/talgya/cubicle/internal/entropy"
	"github.com/talgya/cubicle/internal/office"
)

// Special action IDs that live outside the catalog.
const (
	ActionProposeMarriage = "propose_marriage"
	interactionPrefix     = "interaction_"
)

const (
	courtshipRange     = 30.0
	courtshipIntimacy  = 80.0
	courtshipOdds      = 0.05
	snitchRange        = 8.0
	snitchOdds         = 0.2
	misconductFallback = 5 // Ticks, when the catalog lacks record_misconduct
)

// snitchable is what a manager reports when caught in the act.
var snitchable = map[string]bool{
	catalog.ActionNap:          true,
	catalog.ActionStockTrading: true,
	catalog.ActionGossip:       true,
	catalog.ActionDrinkCoffee:  true,
	"interaction_gossip":       true,
	catalog.ActionSpreadRumor:  true,
}

// decide picks what an idle character does next.
func (s *Simulation) decide(c *agents.Character) {
	if c.IsPlayer {
		c.Thought = "Awaiting orders..."
		return
	}
	if s.seekSpouse(c) {
		return
	}
	if c.IsManager() && s.snitch(c) {
		return
	}
	s.chooseAction(c)
}

// seekSpouse lets an unmarried man propose to a woman who likes him enough.
func (s *Simulation) seekSpouse(c *agents.Character) bool {
	if c.SpouseID != "" || c.Gender != agents.GenderMale {
		return false
	}
	var partner *agents.Character
	for _, o := range s.world.Characters {
		if o.ID == c.ID || !o.Alive() || o.SpouseID != "" || o.Gender != agents.GenderFemale {
			continue
		}
		if c.IntimacyWith(o.ID) > courtshipIntimacy && office.Within(c.Position, o.Position, courtshipRange) {
			partner = o
			break
		}
	}
	if partner == nil || !entropy.Chance(s.Rand, courtshipOdds) {
		return false
	}

	s.logf(CategoryLove, "%s plucks up the courage to propose to %s!", c.Name, partner.Name)
	s.pursue(c, partner, ActionProposeMarriage)
	c.Thought = "Proposal time!"
	return true
}

// snitch lets a manager write up someone slacking nearby. The report starts
// on the spot without travel.
func (s *Simulation) snitch(c *agents.Character) bool {
	var victim *agents.Character
	for _, o := range s.world.Characters {
		if o.ID == c.ID || o.State != agents.StatePerforming || !snitchable[o.ActionID] {
			continue
		}
		if office.Within(c.Position, o.Position, snitchRange) {
			victim = o
			break
		}
	}
	if victim == nil || !entropy.Chance(s.Rand, snitchOdds) {
		return false
	}

	s.logf(CategoryAlert, "%s caught %s slacking off and is writing a report!", c.Name, victim.Name)
	duration := misconductFallback
	if def, ok := s.Catalog.Find(catalog.ActionRecordMisconduct); ok {
		duration = def.Duration
	}
	c.ActionID = catalog.ActionRecordMisconduct
	c.TargetCharacter = victim.ID
	c.Target = nil
	c.State = agents.StatePerforming
	c.ActionTimer = duration
	c.Thought = "Hmph..."
	return true
}

// chooseAction scores every eligible catalog action with a bounded random
// jitter and commits to the best one if it clears the threshold.
func (s *Simulation) chooseAction(c *agents.Character) {
	var best catalog.Definition
	found := false
	bestScore := math.Inf(-1)

	for _, def := range s.Catalog.All() {
		if !eligible(c, def) {
			continue
		}
		score := def.Score(c) + s.Rand.Float64()*s.Tuning.Jitter
		if score > bestScore {
			bestScore = score
			best = def
			found = true
		}
	}

	if !found || bestScore <= s.Tuning.CommitThreshold {
		c.Thought = "Bored..."
		return
	}
	c.Thought = "Off to " + best.Label
	s.commit(c, best)
}

// eligible filters the catalog per role. The CEO never visits himself and
// only comes to a desk to trade stocks.
func eligible(c *agents.Character, def catalog.Definition) bool {
	if c.Role != agents.RoleCEO {
		return true
	}
	if def.ID == catalog.ActionVisitCEO {
		return false
	}
	return def.Zone != office.ZoneDesk || def.ID == catalog.ActionStockTrading
}

// commit starts an action: immediately when already there, otherwise by
// walking to it.
func (s *Simulation) commit(c *agents.Character, def catalog.Definition) {
	dest := s.world.destination(def.Zone, c)
	c.ActionID = def.ID
	c.TargetCharacter = ""

	dist := office.Distance(c.Position, dest)
	if dist < 1 {
		c.State = agents.StatePerforming
		c.ActionTimer = def.Duration
		c.Location = def.Zone
		c.Target = nil
		return
	}
	c.State = agents.StateMoving
	c.Target = &dest
	c.ActionTimer = office.TravelTicks(dist, s.Tuning.MoveSpeed)
}

// pursue starts walking toward another character for a pairwise action.
func (s *Simulation) pursue(c, target *agents.Character, actionID string) {
	pos := target.Position
	c.ActionID = actionID
	c.TargetCharacter = target.ID
	c.State = agents.StateMoving
	c.Target = &pos
}
