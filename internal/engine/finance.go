package engine

import (
	"fmt"
	"log/slog"
	"math"

	"github.com/talgya/cubicle/internal/agents"
)

// debtRepaymentRate is the share of outstanding debt repaid each payday.
const debtRepaymentRate = 0.005

// bugWeight is how many lines of code one fixed bug is worth at review.
const bugWeight = 50

// Grade is a quarterly performance grade.
type Grade string

const (
	GradeS Grade = "S"
	GradeA Grade = "A"
	GradeB Grade = "B"
	GradeC Grade = "C"
	GradeD Grade = "D"
)

// Outcome is what a grade is worth.
type Outcome struct {
	Grade       Grade
	SalaryMult  float64
	BonusMonths int
}

// GradeFor maps a score-to-target ratio onto a grade. Band edges belong to
// the higher grade.
func GradeFor(ratio float64) Outcome {
	switch {
	case ratio >= 1.5:
		return Outcome{GradeS, 1.10, 4}
	case ratio >= 1.2:
		return Outcome{GradeA, 1.05, 2}
	case ratio >= 0.8:
		return Outcome{GradeB, 1.0, 1}
	case ratio >= 0.5:
		return Outcome{GradeC, 1.0, 0}
	default:
		return Outcome{GradeD, 0.95, 0}
	}
}

// ReviewTarget returns the quarterly output target for a seniority level.
func ReviewTarget(level string) int {
	switch level {
	case agents.LevelIntern:
		return 2000
	case agents.LevelP6:
		return 7000
	case agents.LevelP7:
		return 10000
	case agents.LevelP8:
		return 12000
	default:
		return 5000
	}
}

// exemptFromReview reports whether a role sits above the review process.
func exemptFromReview(c *agents.Character) bool {
	return c.Role == agents.RoleCEO || c.Role == agents.RoleTechDirector
}

// payday pays every living character and takes the debt installment.
func (s *Simulation) payday() {
	s.logf(CategoryFinance, "Payday!")

	var paid, repaid int64
	for _, c := range s.world.Characters {
		if !c.Alive() {
			continue
		}
		c.Savings += c.Salary
		paid += c.Salary

		if c.Debt > 0 {
			payment := min(int64(math.Ceil(float64(c.Debt)*debtRepaymentRate)), c.Savings)
			if payment > 0 {
				c.Savings -= payment
				c.Debt -= payment
				repaid += payment
			}
		}

		if c.IsPlayer {
			s.logf(CategoryFinance, "You received your salary of %s.", yuan(c.Salary))
		}
	}
	slog.Info("payday", "tick", s.world.Tick, "salaries", yuan(paid), "debt_repaid", yuan(repaid))
}

// review grades every eligible character against its level target, pays
// bonuses, adjusts salaries, and resets the quarter's counters.
func (s *Simulation) review() {
	s.logf(CategoryFinance, "Quarterly performance review begins...")

	var top, warned int
	for _, c := range s.world.Characters {
		if !c.Alive() || exemptFromReview(c) {
			continue
		}

		target := ReviewTarget(c.Level)
		if c.Role == agents.RoleHR {
			c.Performance.LinesOfCode = target
		}

		score := c.Performance.LinesOfCode + c.Performance.BugsFixed*bugWeight
		ratio := float64(score) / float64(target)
		out := GradeFor(ratio)
		switch out.Grade {
		case GradeS:
			top++
		case GradeC, GradeD:
			warned++
		}

		bonus := c.Salary * int64(out.BonusMonths)
		c.Savings += bonus
		oldSalary := c.Salary
		c.Salary = int64(math.Floor(float64(c.Salary) * out.SalaryMult))
		c.Performance.LastReviewScore = int(math.Floor(ratio * 100))

		if c.IsPlayer {
			msg := fmt.Sprintf("Your grade: [%s] (%.0f%% of target).", out.Grade, ratio*100)
			if bonus > 0 {
				msg += " Bonus: " + yuan(bonus) + "."
			}
			if out.SalaryMult != 1.0 {
				msg += " Salary: " + yuan(oldSalary) + " -> " + yuan(c.Salary) + "."
			}
			cat := CategoryAlert
			if out.Grade == GradeS || out.Grade == GradeA {
				cat = CategoryFinance
			}
			s.logf(cat, "%s", msg)
		}

		c.Performance.LinesOfCode = 0
		c.Performance.BugsFixed = 0
	}

	s.logf(CategorySystem, "Review finished. S grades: %d, C/D warnings: %d.", top, warned)
	slog.Info("quarterly review", "tick", s.world.Tick, "quarter", s.world.Quarter, "s_grades", top, "cd_grades", warned)
}
