package engine

import (
	"github.com/talgya/cubicle/internal/agents"
	"github.com/talgya/cubicle/internal/catalog"
	"github.com/talgya/cubicle/internal/entropy"
)

// Per-tick attrition.
const (
	energyDecay  = 0.2
	bladderGain  = 0.5
	socialDecay  = 0.3
	pregnantGain = 0.05 // Pregnancy progress per tick
	pregnantCost = 0.1  // Extra energy per tick

	conceptionChance     = 0.0002
	pregnancyFlavorOdds  = 0.005
	patrolThoughtOdds    = 0.1
	illnessOnsetHealth   = 70.0
	illnessOnsetRate     = 0.0005
	recoveryWhileResting = 0.05
	recoveryOtherwise    = 0.005
	chronicStressLevel   = 80.0
)

// decay applies the passage of one tick to a living character.
func (s *Simulation) decay(c *agents.Character) {
	n := &c.Needs
	n.Energy = max(0, n.Energy-energyDecay)
	n.Bladder = min(agents.NeedMax, n.Bladder+bladderGain)
	n.Social = max(0, n.Social-socialDecay)

	if c.Pregnant {
		n.Energy = max(0, n.Energy-pregnantCost)
		c.PregnancyProgress += pregnantGain
		if entropy.Chance(s.Rand, pregnancyFlavorOdds) {
			c.Thought = "The baby kicked..."
		}
	} else if c.Gender == agents.GenderFemale && c.SpouseID != "" {
		if entropy.Chance(s.Rand, conceptionChance) {
			c.Pregnant = true
			c.Thought = "Something feels different..."
			s.logf(CategoryLove, "%s is pregnant! Congratulations!", c.Name)
		}
	}

	if s.world.ManagerActive && c.State == agents.StatePerforming {
		switch {
		case patrolSlacking[c.ActionID]:
			n.Stress = min(agents.NeedMax, n.Stress+0.5)
			if entropy.Chance(s.Rand, patrolThoughtOdds) {
				c.Thought = "The manager is watching..."
			}
		case patrolWorking[c.ActionID]:
			n.Stress = min(agents.NeedMax, n.Stress+0.1)
			n.Social = min(agents.NeedMax, n.Social+0.2)
		}
	}

	if c.Sickness != "" {
		c.PhysicalHealth = max(0, c.PhysicalHealth-0.3)
		n.Energy = max(0, n.Energy-0.2)
		odds := recoveryOtherwise
		if resting(c) {
			odds = recoveryWhileResting
		}
		if entropy.Chance(s.Rand, odds) {
			c.Sickness = ""
			s.logf(CategoryInfo, "%s has recovered.", c.Name)
		}
	} else if c.PhysicalHealth < illnessOnsetHealth {
		if entropy.Chance(s.Rand, (illnessOnsetHealth-c.PhysicalHealth)*illnessOnsetRate) {
			c.Sickness = "cold"
			s.logf(CategoryAlert, "%s fell ill.", c.Name)
		}
	}

	if n.Stress > chronicStressLevel {
		c.PhysicalHealth -= 0.1
		c.MentalHealth -= 0.2
	}
}

func resting(c *agents.Character) bool {
	return c.ActionID == catalog.ActionNap || c.ActionID == ActionEmergencyNap
}
