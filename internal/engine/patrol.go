package engine

import (
	"github.com/talgya/cubicle/internal/agents"
	"github.com/talgya/cubicle/internal/catalog"
	"github.com/talgya/cubicle/internal/entropy"
	"github.com/talgya/cubicle/internal/office"
)

// Actions a patrolling manager frowns upon, and those that earn approval.
var (
	patrolSlacking = map[string]bool{
		catalog.ActionGossip:       true,
		catalog.ActionNap:          true,
		catalog.ActionDrinkCoffee:  true,
		catalog.ActionUseRestroom:  true,
		catalog.ActionStockTrading: true,
		catalog.ActionSpreadRumor:  true,
	}
	patrolWorking = map[string]bool{
		catalog.ActionWorkCode:        true,
		catalog.ActionTrainingSession: true,
		catalog.ActionVisitCEO:        true,
	}
)

// updatePatrol rolls for a new patrol at each window boundary and counts
// down an active one. A patrol started this tick already loses one tick.
func (s *Simulation) updatePatrol() {
	w := s.world
	window := s.Tuning.PatrolWindow
	if window > 0 && w.Tick%window == 0 && !w.ManagerActive && entropy.Chance(s.Rand, s.Tuning.PatrolChance) {
		w.ManagerActive = true
		w.ManagerTimer = s.Tuning.PatrolLength
		s.logf(CategoryAlert, "The department manager is patrolling! Look busy!")

		for _, c := range w.Characters {
			if c.IsManager() && c.State == agents.StateIdle {
				c.Thought = "Let's see what everyone is up to..."
				s.dispatch(c, office.ZoneDesk)
				break
			}
		}
	}

	if w.ManagerActive {
		w.ManagerTimer--
		if w.ManagerTimer <= 0 {
			w.ManagerActive = false
			s.logf(CategoryInfo, "The manager finished the patrol.")
		}
	}
}

// dispatch sends a character to the first catalog action bound to zone.
func (s *Simulation) dispatch(c *agents.Character, zone office.Zone) bool {
	def, ok := s.Catalog.ForZone(zone)
	if !ok {
		return false
	}
	s.commit(c, def)
	return true
}
