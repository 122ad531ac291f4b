package catalog

import (
	"math"

	"github.com/talgya/cubicle/internal/agents"
)

// workCode is the bread-and-butter desk action: it produces lines of code and
// fixed bugs at the price of energy and stress.
type workCode struct{}

func (workCode) Strategy() string { return ActionWorkCode }

func (workCode) Score(c *agents.Character) float64 {
	score := 30.0

	// Money pressure.
	if c.Debt > 0 {
		score += math.Min(50, float64(c.Debt)/100000)
	}
	if c.Savings < 5000 && c.Level != agents.LevelIntern {
		score += 20
	}

	score += c.Intelligence * 0.2
	score += c.Ambition * 0.5
	score += c.Skill(agents.SkillProgramming) * 0.15

	if c.Has(agents.TraitGrinder) {
		score += 50
	}
	if c.Has(agents.TraitMaterialist) {
		score += 25
	}
	if c.Has(agents.TraitRational) {
		score += 10
	}
	if c.Has(agents.TraitShy) {
		score += 15
	}

	if c.Needs.Energy < 30 {
		score -= 30
	}
	if c.Sickness != "" {
		score -= 40
	}
	if c.Needs.Stress > 80 && !c.Has(agents.TraitGrinder) {
		score -= 60
	}
	score -= c.Needs.Bladder * 0.5

	return math.Max(0, score)
}

func (workCode) Apply(c *agents.Character, env Env) Delta {
	prog := c.Skill(agents.SkillProgramming)
	stressGain := 15 - c.Intelligence*0.05
	energyCost := 10 - prog*0.03

	produced := 50 + prog*2 + env.Rand.Float64()*20
	bugs := 0
	if env.Rand.Float64() < 0.2+prog*0.005 {
		bugs = 1
	}

	return Delta{
		Energy:      -math.Max(2, energyCost),
		Stress:      math.Max(5, stressGain),
		Social:      -2,
		LinesOfCode: int(math.Floor(produced)),
		BugsFixed:   bugs,
	}
}

// stockTrading is slacking at the desk with a brokerage app open.
type stockTrading struct{}

func (stockTrading) Strategy() string { return ActionStockTrading }

func (stockTrading) Score(c *agents.Character) float64 {
	if c.Stocks == 0 && !c.Has(agents.TraitMaterialist) {
		return 0
	}
	score := 0.0
	if c.Has(agents.TraitMaterialist) {
		score += 40
	}
	if c.Has(agents.TraitGrinder) {
		score -= 30
	}
	score += math.Min(40, float64(c.Stocks)/5000)
	if c.Needs.Stress > 40 && c.Needs.Stress < 80 {
		score += 15
	}
	return math.Max(0, score)
}

func (stockTrading) Apply(c *agents.Character, env Env) Delta {
	move := env.marketMove()
	value := int64(math.Floor(float64(c.Stocks) * (1 + move)))
	profit := value - c.Stocks

	mood := 15.0
	if profit > 0 {
		mood = -10
	}
	analysis := 0.0
	if env.Rand.Float64() > 0.8 {
		analysis = 0.1
	}
	return Delta{
		Stocks: profit,
		Stress: mood,
		Energy: -2,
		Skills: map[string]float64{agents.SkillAnalysis: analysis},
	}
}

type drinkCoffee struct{}

func (drinkCoffee) Strategy() string { return ActionDrinkCoffee }

func (drinkCoffee) Score(c *agents.Character) float64 {
	score := (100 - c.Needs.Energy) * 1.5
	if c.Has(agents.TraitGluttonous) {
		score += 20
	}
	if c.Has(agents.TraitGrinder) {
		score += 10
	}
	if c.Needs.Stress > 70 {
		score += 20
	}
	if c.Sickness != "" {
		score += 25
	}
	score -= c.Needs.Bladder * 0.5
	return math.Max(0, score)
}

func (drinkCoffee) Apply(c *agents.Character, env Env) Delta {
	return Delta{Energy: 40, Bladder: 25, Stress: -5}
}

type useRestroom struct{}

func (useRestroom) Strategy() string { return ActionUseRestroom }

func (useRestroom) Score(c *agents.Character) float64 {
	score := math.Pow(c.Needs.Bladder, 2.2) / 100
	if c.PhysicalHealth < 50 {
		score *= 1.2
	}
	if c.Age > 40 {
		score *= 1.3
	}
	if c.Has(agents.TraitShy) && c.Needs.Stress > 70 {
		score += 30
	}
	return score
}

func (useRestroom) Apply(c *agents.Character, env Env) Delta {
	return Delta{Bladder: -c.Needs.Bladder, Stress: -5}
}

type nap struct{}

func (nap) Strategy() string { return ActionNap }

func (nap) Score(c *agents.Character) float64 {
	if c.Needs.Energy > 50 && c.Sickness == "" {
		return 0
	}
	score := (100 - c.Needs.Energy) * 1.8
	if c.Has(agents.TraitThickSkinned) {
		score += 25
	}
	if c.Has(agents.TraitGrinder) {
		score -= 40
	}
	if c.PhysicalHealth < 40 {
		score += 40
	}
	if c.Sickness != "" {
		score += 60
	}
	return math.Max(0, score)
}

func (nap) Apply(c *agents.Character, env Env) Delta {
	recovery := 50.0
	if c.Has(agents.TraitThickSkinned) {
		recovery += 20
	}
	return Delta{Energy: recovery, Stress: -20}
}

// gossip is the solo pantry chat. Pairwise gossip initiated by the player
// is an interaction and is resolved by the engine instead.
type gossip struct{}

func (gossip) Strategy() string { return ActionGossip }

func (gossip) Score(c *agents.Character) float64 {
	score := (100-c.Needs.Social)*0.8 + c.Needs.Stress*0.6
	if c.Has(agents.TraitShy) {
		score -= 100
	}
	if c.Has(agents.TraitScheming) {
		score += 30
	}
	if c.Has(agents.TraitEmotional) {
		score += 20
	}
	if c.Has(agents.TraitGrinder) {
		score -= 30
	}
	if c.Debt > 5000000 {
		score -= 20
	}
	return math.Max(0, score)
}

func (gossip) Apply(c *agents.Character, env Env) Delta {
	return Delta{
		Stress: -(20 + c.Skill(agents.SkillPsychology)*0.2),
		Social: 30 + c.Attraction*0.2,
		Energy: -5,
	}
}

type trainingSession struct{}

func (trainingSession) Strategy() string { return ActionTrainingSession }

func (trainingSession) Score(c *agents.Character) float64 {
	score := c.Ambition * 0.6
	if c.CompanyYears < 3 {
		score += float64(3-c.CompanyYears) * 10
	}
	if c.Needs.Energy < 40 {
		score -= 30
	}
	if c.Has(agents.TraitAmbitious) || c.Has(agents.TraitGrinder) {
		score += 20
	}
	if c.Skill(agents.SkillSystemDesign) < 30 {
		score += 20
	}
	return math.Max(0, score)
}

func (trainingSession) Apply(c *agents.Character, env Env) Delta {
	return Delta{
		Energy:       -25,
		Stress:       5,
		Intelligence: 0.2,
		Skills:       map[string]float64{agents.SkillSystemDesign: 0.5},
	}
}

// visitCEO is an ambitious employee's attempt to impress the boss.
type visitCEO struct{}

func (visitCEO) Strategy() string { return ActionVisitCEO }

func (visitCEO) Score(c *agents.Character) float64 {
	if c.Level == agents.LevelIntern {
		return 0
	}
	if !c.Has(agents.TraitAmbitious) && !c.Has(agents.TraitScheming) {
		return 0
	}
	if c.Ambition > 80 && c.Needs.Stress < 50 {
		return 40
	}
	return 0
}

func (visitCEO) Apply(c *agents.Character, env Env) Delta {
	social := -20.0
	if env.Rand.Float64() > 0.5 {
		social = 20
	}
	return Delta{
		Stress: 20,
		Social: social,
		Skills: map[string]float64{agents.SkillPsychology: 0.2},
	}
}

// recordMisconduct is never chosen by utility; managers commit to it directly
// when they catch someone slacking.
type recordMisconduct struct{}

func (recordMisconduct) Strategy() string { return ActionRecordMisconduct }

func (recordMisconduct) Score(c *agents.Character) float64 { return 0 }

func (recordMisconduct) Apply(c *agents.Character, env Env) Delta {
	return Delta{Stress: -5}
}

// spreadRumor relieves the spreader. The engine separately picks a victim.
type spreadRumor struct{}

func (spreadRumor) Strategy() string { return ActionSpreadRumor }

func (spreadRumor) Score(c *agents.Character) float64 {
	if c.Has(agents.TraitSincere) {
		return 0
	}
	score := 0.0
	if c.Has(agents.TraitGossipy) {
		score += 25
	}
	if c.Has(agents.TraitScheming) {
		score += 20
	}
	if c.Has(agents.TraitIrritable) {
		score += 15
	}
	if score == 0 {
		return 0
	}
	return score + c.Needs.Stress*0.3
}

func (spreadRumor) Apply(c *agents.Character, env Env) Delta {
	return Delta{Stress: -10, Social: 10, Energy: -3}
}

// Invalid is the fallback for definitions whose behavior could not be
// resolved. It never wins a decision and changes nothing.
type Invalid struct {
	Requested string // Strategy name that failed to resolve
}

func (i Invalid) Strategy() string { return i.Requested }

func (Invalid) Score(c *agents.Character) float64 { return 0 }

func (Invalid) Apply(c *agents.Character, env Env) Delta { return Delta{} }

// scaled multiplies another behavior's score.
type scaled struct {
	Behavior
	factor float64
}

func (s scaled) Score(c *agents.Character) float64 {
	return s.Behavior.Score(c) * s.factor
}
