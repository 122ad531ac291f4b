// Population spawning: the founding staff is the player, the CEO, the tech
// director, HR, and a batch of generated employees.
package agents

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/talgya/cubicle/internal/office"
)

// Well-known character IDs.
const (
	PlayerID  CharacterID = "player"
	CEOID     CharacterID = "npc_ceo"
	ManagerID CharacterID = "npc_manager"
	HRID      CharacterID = "npc_hr"
)

// DefaultGeneratedStaff is how many generic employees join the named staff.
const DefaultGeneratedStaff = 7

// Spawner creates characters for the simulation.
type Spawner struct {
	rng *rand.Rand
}

// NewSpawner creates a character spawner with the given seed.
func NewSpawner(seed int64) *Spawner {
	return &Spawner{rng: rand.New(rand.NewSource(seed + 300))}
}

// SpawnPopulation creates the full office roster. The player always comes
// first, followed by the CEO, the tech director, HR, and generic staff.
func (s *Spawner) SpawnPopulation(generated int) []*Character {
	desks := office.DeskSlots()
	s.rng.Shuffle(len(desks), func(i, j int) { desks[i], desks[j] = desks[j], desks[i] })
	popDesk := func(fallback office.Coord) office.Coord {
		if len(desks) == 0 {
			return fallback
		}
		d := desks[len(desks)-1]
		desks = desks[:len(desks)-1]
		return d
	}

	roster := make([]*Character, 0, generated+4)

	player := baseCharacter(PlayerID, "You", popDesk(office.Coord{X: 2, Y: 2}))
	player.IsPlayer = true
	player.Role = "New Hire"
	player.Needs = Needs{Energy: 100, Social: 100}
	player.Thought = "A new day begins."
	player.Traits = []Trait{TraitSincere, TraitFrugal}
	player.Skills = map[string]float64{SkillProgramming: 60, SkillSystemDesign: 40, SkillAnalysis: 50}
	player.Savings = 10000
	player.Stocks = 5000
	player.Salary = 12000
	roster = append(roster, player)

	ceo := baseCharacter(CEOID, "Boss Ma", office.Coord{X: 2, Y: 2})
	ceo.Role = RoleCEO
	ceo.Age = 48
	ceo.Level = "P10"
	ceo.Salary = 200000
	ceo.Savings = 50000000
	ceo.Stocks = 10000000
	ceo.Assets = 100000000
	ceo.Ambition = 100
	ceo.Intelligence = 95
	ceo.Traits = []Trait{TraitAmbitious, TraitScheming, TraitRational, TraitGrinder}
	ceo.Location = office.ZoneCEOOffice
	roster = append(roster, ceo)

	manager := baseCharacter(ManagerID, "Director Li", office.Coord{X: 10, Y: 5})
	manager.Role = RoleTechDirector
	manager.Age = 36
	manager.Level = "P9"
	manager.Salary = 85000
	manager.Savings = 3000000
	manager.Stocks = 200000
	manager.Options = 50000
	manager.Ambition = 90
	manager.Traits = []Trait{TraitIrritable, TraitGrinder, TraitScheming}
	manager.Skills[SkillSystemDesign] = 95
	manager.Skills[SkillProgramming] = 80
	roster = append(roster, manager)

	hr := baseCharacter(HRID, "Sister HR", office.Coord{X: 14, Y: 5})
	hr.Role = RoleHR
	hr.Gender = GenderFemale
	hr.Age = 29
	hr.Level = LevelP6
	hr.Salary = 25000
	hr.Savings = 400000
	hr.Attraction = 90
	hr.Intelligence = 80
	hr.Traits = []Trait{TraitSensitive, TraitEmotional, TraitGossipy}
	hr.Skills[SkillPsychology] = 90
	roster = append(roster, hr)

	for i := 0; i < generated; i++ {
		desk := popDesk(office.Coord{X: float64(i), Y: 0})
		roster = append(roster, s.spawnEmployee(CharacterID(fmt.Sprintf("npc_%d", i)), desk))
	}
	return roster
}

func baseCharacter(id CharacterID, name string, desk office.Coord) *Character {
	return &Character{
		ID:             id,
		Name:           name,
		Role:           "Employee",
		Gender:         GenderMale,
		Position:       desk,
		Desk:           desk,
		Location:       office.ZoneDesk,
		State:          StateIdle,
		Needs:          Needs{Energy: 80, Stress: 0, Bladder: 0, Social: 50},
		PhysicalHealth: 80,
		MentalHealth:   80,
		Age:            25,
		Level:          LevelP5,
		CompanyYears:   1,
		Salary:         15000,
		Savings:        50000,
		Performance:    Performance{LastReviewScore: 70},
		Intimacy:       make(map[CharacterID]float64),
		Intelligence:   70,
		Attraction:     60,
		Ambition:       50,
		Skills:         map[string]float64{SkillProgramming: 50, SkillSystemDesign: 30, SkillAnalysis: 40},
		Thought:        "...",
	}
}

var employeeRoles = []string{
	"Backend Engineer", "Frontend Engineer", "Product Manager", "UI Designer",
	"QA Engineer", "Algorithm Engineer", "Ops Engineer",
}

func (s *Spawner) spawnEmployee(id CharacterID, desk office.Coord) *Character {
	gender := GenderMale
	if s.rng.Float64() <= 0.4 {
		gender = GenderFemale
	}
	c := baseCharacter(id, s.generateName(gender), desk)
	c.Gender = gender
	c.Role = employeeRoles[s.rng.Intn(len(employeeRoles))]

	// Level, age, and salary are correlated.
	roll := s.rng.Float64()
	switch {
	case roll < 0.1:
		c.Level, c.Age, c.Salary = LevelIntern, s.randInt(20, 22), 4000
	case roll < 0.5:
		c.Level, c.Age, c.Salary = LevelP5, s.randInt(23, 27), int64(s.randInt(12000, 20000))
	case roll < 0.8:
		c.Level, c.Age, c.Salary = LevelP6, s.randInt(26, 32), int64(s.randInt(20000, 35000))
	case roll < 0.95:
		c.Level, c.Age, c.Salary = LevelP7, s.randInt(30, 40), int64(s.randInt(35000, 60000))
	default:
		c.Level, c.Age, c.Salary = LevelP8, s.randInt(35, 45), int64(s.randInt(60000, 90000))
	}

	yearsWorked := c.Age - 22
	if yearsWorked < 0 {
		yearsWorked = 0
	}
	c.CompanyYears = 0
	if yearsWorked > 0 {
		c.CompanyYears = s.randInt(0, min(10, yearsWorked))
	}
	c.Savings = int64(float64(yearsWorked) * float64(c.Salary) * 12 * 0.2 * (s.rng.Float64()*0.5 + 0.8))

	// Seniors often carry a mortgage: 30% down, 70% financed.
	if c.Level == LevelP7 || c.Level == LevelP8 || (c.Level == LevelP6 && c.Age > 28) {
		if s.rng.Float64() > 0.3 {
			house := int64(s.randInt(3000000, 10000000))
			c.Savings = max(0, c.Savings-int64(float64(house)*0.3))
			c.Debt = int64(float64(house) * 0.7)
			c.Assets = house
		}
	}

	if c.Level != LevelIntern {
		var base float64
		switch c.Level {
		case LevelP6:
			base = 500
		case LevelP7:
			base = 2000
		case LevelP8:
			base = 5000
		}
		c.Options = int64(base * (s.rng.Float64() + 0.5))
	}

	if s.rng.Float64() > 0.6 {
		hi := max(10000, int(float64(c.Savings)*0.5))
		c.Stocks = int64(s.randInt(1000, hi))
		c.Savings -= c.Stocks
	}

	traitCount := s.randInt(2, 4)
	for len(c.Traits) < traitCount {
		t := TraitPool[s.rng.Intn(len(TraitPool))]
		if !c.Has(t) {
			c.Traits = append(c.Traits, t)
		}
	}
	if c.Has(TraitGrinder) {
		c.Salary = int64(math.Floor(float64(c.Salary) * 1.1))
	}

	c.Intelligence = float64(s.randInt(60, 95))
	c.Attraction = float64(s.randInt(40, 90))
	c.Ambition = float64(s.randInt(40, 100))
	c.Skills = map[string]float64{
		SkillProgramming:  float64(s.randInt(10, 90)),
		SkillSystemDesign: float64(s.randInt(10, 90)),
		SkillAnalysis:     float64(s.randInt(10, 90)),
	}
	return c
}

// randInt returns a uniform integer in [lo, hi].
func (s *Spawner) randInt(lo, hi int) int {
	return lo + s.rng.Intn(hi-lo+1)
}

func (s *Spawner) generateName(g Gender) string {
	firsts := maleNames
	if g == GenderFemale {
		firsts = femaleNames
	}
	last := lastNames[s.rng.Intn(len(lastNames))]
	first := firsts[s.rng.Intn(len(firsts))]
	return last + " " + first
}

var maleNames = []string{
	"Wei", "Qiang", "Lei", "Yang", "Yong", "Jun", "Jie", "Tao",
	"Chao", "Ming", "Gang", "Ping", "Hui", "Peng", "Hua",
}

var femaleNames = []string{
	"Fang", "Na", "Min", "Jing", "Xiu", "Juan", "Ying", "Hua",
	"Li", "Yan", "Fei", "Lin", "Jing", "Ping", "Ling",
}

var lastNames = []string{
	"Wang", "Li", "Zhang", "Liu", "Chen", "Yang", "Zhao", "Huang",
	"Zhou", "Wu", "Xu", "Sun", "Hu", "Zhu", "Gao", "Lin",
}
