package agents

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talgya/cubicle/internal/office"
)

func TestNeedsClampLeavesStressOverflow(t *testing.T) {
	n := Needs{Energy: -3, Stress: 130, Bladder: 104, Social: 120}
	n.Clamp()
	assert.Equal(t, 0.0, n.Energy)
	assert.Equal(t, 130.0, n.Stress)
	assert.Equal(t, 100.0, n.Bladder)
	assert.Equal(t, 100.0, n.Social)

	n.Stress = -5
	n.Clamp()
	assert.Equal(t, 0.0, n.Stress)
}

func TestAdjustIntimacyClamps(t *testing.T) {
	c := &Character{ID: "a"}
	c.AdjustIntimacy("b", 95)
	c.AdjustIntimacy("b", 20)
	assert.Equal(t, 100.0, c.IntimacyWith("b"))
	c.AdjustIntimacy("b", -150)
	assert.Equal(t, 0.0, c.IntimacyWith("b"))
	assert.Equal(t, 0.0, c.IntimacyWith("nobody"))
}

func TestCloneIsDeep(t *testing.T) {
	c := baseCharacter("x", "X", office0())
	c.Traits = []Trait{TraitShy}
	c.Intimacy["y"] = 40
	cp := c.Clone()
	cp.Skills[SkillProgramming] = 1
	cp.Intimacy["y"] = 1
	cp.Traits[0] = TraitGrinder
	assert.Equal(t, 50.0, c.Skills[SkillProgramming])
	assert.Equal(t, 40.0, c.Intimacy["y"])
	assert.Equal(t, TraitShy, c.Traits[0])
}

func TestSpawnPopulationRoster(t *testing.T) {
	roster := NewSpawner(42).SpawnPopulation(DefaultGeneratedStaff)
	require.Len(t, roster, DefaultGeneratedStaff+4)

	players := 0
	ids := map[CharacterID]bool{}
	for _, c := range roster {
		if c.IsPlayer {
			players++
		}
		assert.False(t, ids[c.ID], "duplicate id %s", c.ID)
		ids[c.ID] = true
		assert.Equal(t, StateIdle, c.State)
		assert.Equal(t, c.Desk, c.Position)
		assert.GreaterOrEqual(t, len(c.Traits), 2)
	}
	assert.Equal(t, 1, players)
	assert.Equal(t, PlayerID, roster[0].ID)
	assert.Equal(t, RoleCEO, roster[1].Role)
	assert.True(t, roster[2].IsManager())
	assert.Equal(t, RoleHR, roster[3].Role)
}

func TestSpawnPopulationIsSeeded(t *testing.T) {
	a := NewSpawner(9).SpawnPopulation(5)
	b := NewSpawner(9).SpawnPopulation(5)
	for i := range a {
		assert.Equal(t, a[i].Name, b[i].Name)
		assert.Equal(t, a[i].Salary, b[i].Salary)
		assert.Equal(t, a[i].Desk, b[i].Desk)
	}
}

func TestStateTextRoundTrip(t *testing.T) {
	var s State
	require.NoError(t, s.UnmarshalText([]byte("BREAKDOWN")))
	assert.Equal(t, StateBreakdown, s)
	assert.Error(t, s.UnmarshalText([]byte("ASLEEP")))
}

func office0() office.Coord { return office.Coord{} }
