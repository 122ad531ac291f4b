package engine

import (
	"fmt"
	"log/slog"
)

// Calendar layout. A tick is the smallest unit of office time.
const (
	TicksPerWeek     = 100
	WeeksPerMonth    = 4
	MonthsPerQuarter = 3
	TicksPerMonth    = TicksPerWeek * WeeksPerMonth     // 400
	TicksPerQuarter  = TicksPerMonth * MonthsPerQuarter // 1200
)

// updateCalendar fires the week, payday, and review triggers for the tick
// just entered. The checks are independent, so a quarter boundary fires all
// three in that order.
func (s *Simulation) updateCalendar() {
	tick := s.world.Tick
	if tick == 0 {
		return
	}

	if tick%TicksPerWeek == 0 {
		s.world.Week++
		s.logf(CategorySystem, "Week %d begins.", s.world.Week)
		slog.Info("weekly report",
			"tick", tick,
			"time", SimTime(tick),
			"alive", s.Stats.Alive,
			"dead", s.Stats.Dead,
			"avg_stress", fmt.Sprintf("%.1f", s.Stats.AvgStress),
			"avg_energy", fmt.Sprintf("%.1f", s.Stats.AvgEnergy),
			"total_savings", yuan(s.Stats.TotalSavings),
		)
	}

	if tick%TicksPerMonth == 0 {
		s.payday()
		if s.OnPayday != nil {
			s.OnPayday(tick)
		}
	}

	if tick%TicksPerQuarter == 0 {
		s.review()
		if s.OnReview != nil {
			s.OnReview(tick)
		}
		s.world.Quarter++
		s.world.Week = 1
		s.logf(CategorySystem, "Quarter Q%d begins.", s.world.Quarter)
	}
}

// SimTime returns a human-readable office time for a tick number.
func SimTime(tick uint64) string {
	quarter := tick/TicksPerQuarter + 1
	week := (tick%TicksPerQuarter)/TicksPerWeek + 1
	day := (tick%TicksPerWeek)/20 + 1 // Five working days of 20 ticks
	return fmt.Sprintf("Q%d Week %d Day %d", quarter, week, day)
}
