package engine

import "github.com/talgya/cubicle/internal/agents"

// Stats tracks aggregate office statistics.
type Stats struct {
	Alive        int     `json:"alive"`
	Dead         int     `json:"dead"`
	InBreakdown  int     `json:"in_breakdown"`
	Sick         int     `json:"sick"`
	Married      int     `json:"married"`
	Pregnant     int     `json:"pregnant"`
	AvgStress    float64 `json:"avg_stress"`
	AvgEnergy    float64 `json:"avg_energy"`
	TotalSavings int64   `json:"total_savings"`
}

func (s *Simulation) updateStats() {
	var st Stats
	var stress, energy float64
	for _, c := range s.world.Characters {
		if !c.Alive() {
			st.Dead++
			continue
		}
		st.Alive++
		stress += c.Needs.Stress
		energy += c.Needs.Energy
		st.TotalSavings += c.Savings
		if c.State == agents.StateBreakdown {
			st.InBreakdown++
		}
		if c.Sickness != "" {
			st.Sick++
		}
		if c.Married {
			st.Married++
		}
		if c.Pregnant {
			st.Pregnant++
		}
	}
	if st.Alive > 0 {
		st.AvgStress = stress / float64(st.Alive)
		st.AvgEnergy = energy / float64(st.Alive)
	}
	s.Stats = st
}
