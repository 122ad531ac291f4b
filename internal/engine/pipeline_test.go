package engine

import (
	"bytes"
	"log/slog"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talgya/cubicle/internal/agents"
	"github.com/talgya/cubicle/internal/catalog"
	"github.com/talgya/cubicle/internal/entropy"
	"github.com/talgya/cubicle/internal/office"
)

func TestDecayBaseline(t *testing.T) {
	s := newSim(0.99, worker("w", office.Coord{X: 4, Y: 7}))
	c := s.get("w")
	s.decay(c)
	assert.InDelta(t, 79.8, c.Needs.Energy, 1e-9)
	assert.InDelta(t, 10.5, c.Needs.Bladder, 1e-9)
	assert.InDelta(t, 79.7, c.Needs.Social, 1e-9)
	assert.InDelta(t, 10.0, c.Needs.Stress, 1e-9)
}

func TestDecayClampsNeeds(t *testing.T) {
	s := newSim(0.99, worker("w", office.Coord{X: 4, Y: 7}))
	c := s.get("w")
	c.Needs = agents.Needs{Energy: 0.1, Bladder: 99.9, Social: 0.1}
	s.decay(c)
	assert.Equal(t, 0.0, c.Needs.Energy)
	assert.Equal(t, 100.0, c.Needs.Bladder)
	assert.Equal(t, 0.0, c.Needs.Social)
}

func TestPatrolModifiesStress(t *testing.T) {
	s := newSim(0.99, worker("slacker", office.Coord{X: 4, Y: 7}), worker("worker", office.Coord{X: 6, Y: 7}))
	s.world.ManagerActive = true

	slacker := s.get("slacker")
	slacker.State = agents.StatePerforming
	slacker.ActionID = catalog.ActionNap
	s.decay(slacker)
	assert.InDelta(t, 10.5, slacker.Needs.Stress, 1e-9)

	w := s.get("worker")
	w.State = agents.StatePerforming
	w.ActionID = catalog.ActionWorkCode
	s.decay(w)
	assert.InDelta(t, 10.1, w.Needs.Stress, 1e-9)
	assert.InDelta(t, 79.9, w.Needs.Social, 1e-9)
}

func TestChronicStressHurtsHealth(t *testing.T) {
	s := newSim(0.99, worker("w", office.Coord{X: 4, Y: 7}))
	c := s.get("w")
	c.Needs.Stress = 85
	s.decay(c)
	assert.InDelta(t, 99.9, c.PhysicalHealth, 1e-9)
	assert.InDelta(t, 99.8, c.MentalHealth, 1e-9)
}

func TestIllnessOnsetAndRecovery(t *testing.T) {
	s := newSim(0.005, worker("w", office.Coord{X: 4, Y: 7}))
	c := s.get("w")
	c.PhysicalHealth = 50 // onset odds 0.01
	s.decay(c)
	assert.NotEmpty(t, c.Sickness)
	assert.InDelta(t, 50.0, c.PhysicalHealth, 1e-9)

	s.Rand = entropy.Fixed(0.04)
	c.ActionID = catalog.ActionWorkCode
	s.decay(c)
	assert.NotEmpty(t, c.Sickness, "0.5% recovery odds while working")
	assert.InDelta(t, 49.7, c.PhysicalHealth, 1e-9)

	c.ActionID = catalog.ActionNap
	s.decay(c)
	assert.Empty(t, c.Sickness, "5% recovery odds while napping")
}

func TestConceptionRequiresSpouse(t *testing.T) {
	s := newSim(0.0001, worker("w", office.Coord{X: 4, Y: 7}))
	c := s.get("w")
	c.Gender = agents.GenderFemale
	s.decay(c)
	assert.False(t, c.Pregnant)

	c.SpouseID = "h"
	s.decay(c)
	assert.True(t, c.Pregnant)

	s.decay(c)
	assert.InDelta(t, 0.05, c.PregnancyProgress, 1e-9)
}

func TestDeathShortCircuitsTick(t *testing.T) {
	s := newSim(0.99, worker("w", office.Coord{X: 4, Y: 7}))
	c := s.get("w")
	c.PhysicalHealth = 0.05
	c.Needs.Stress = 85
	c.Needs.Bladder = 99.8

	s.processCharacter(c)
	assert.Equal(t, agents.StateDead, c.State)
	assert.Equal(t, 100.0, c.Needs.Bladder, "hygiene check does not run after death")
}

func TestBreakdownLifecycle(t *testing.T) {
	s := newSim(0.99, worker("w", office.Coord{X: 4, Y: 7}))
	c := s.get("w")
	c.Needs.Energy = 100
	c.Needs.Stress = 100
	c.Target = &office.Coord{X: 9, Y: 17}

	s.processCharacter(c)
	require.Equal(t, agents.StateBreakdown, c.State)
	assert.Equal(t, 20, c.ActionTimer)
	assert.Nil(t, c.Target)

	for i := 0; i < 19; i++ {
		s.processCharacter(c)
	}
	assert.Equal(t, agents.StateBreakdown, c.State)
	assert.Equal(t, 1, c.ActionTimer)
	assert.InDelta(t, 81.0, c.Needs.Stress, 1e-9)

	s.processCharacter(c)
	assert.Equal(t, agents.StateIdle, c.State)
	assert.Equal(t, 60.0, c.Needs.Stress)
}

// Fainting forces an emergency nap, yet the hygiene check still fires in the
// same tick and the state dispatch does not.
func TestEmergencyNapStillRunsHygieneCheck(t *testing.T) {
	s := newSim(0.99, worker("w", office.Coord{X: 4, Y: 7}))
	c := s.get("w")
	c.Needs.Energy = 0.1
	c.Needs.Bladder = 99.8

	s.processCharacter(c)
	assert.Equal(t, agents.StatePerforming, c.State)
	assert.Equal(t, ActionEmergencyNap, c.ActionID)
	assert.Equal(t, 15, c.ActionTimer, "dispatch skipped, timer untouched")
	assert.Equal(t, 0.0, c.Needs.Bladder)
	assert.InDelta(t, 60.0, c.Needs.Stress, 1e-9)
	assert.InDelta(t, 29.7, c.Needs.Social, 1e-9)
}

func TestEmergencyNapWakesWithEnergy(t *testing.T) {
	s := newSim(0.99, worker("w", office.Coord{X: 4, Y: 7}))
	c := s.get("w")
	c.State = agents.StatePerforming
	c.ActionID = ActionEmergencyNap
	c.ActionTimer = 1

	s.perform(c)
	assert.Equal(t, agents.StateIdle, c.State)
	assert.Equal(t, 30.0, c.Needs.Energy)
	assert.Empty(t, c.ActionID)
}

func TestChooseActionThresholdAndJitter(t *testing.T) {
	cat := catalog.New(catalog.Definition{ID: "sit", Label: "Sit", Zone: office.ZoneDesk, Duration: 3, Behavior: flat(8)})

	s := NewSimulation([]*agents.Character{worker("w", office.Coord{X: 4, Y: 7})}, cat)
	s.Rand = entropy.Fixed(0)
	c := s.get("w")
	s.decide(c)
	assert.Equal(t, agents.StateIdle, c.State, "8 does not clear the threshold")
	assert.Equal(t, "Bored...", c.Thought)

	s.Rand = entropy.Fixed(0.99) // jitter 4.95
	s.decide(c)
	assert.Equal(t, agents.StatePerforming, c.State)
	assert.Equal(t, "sit", c.ActionID)
	assert.Equal(t, 3, c.ActionTimer)
	assert.Equal(t, office.ZoneDesk, c.Location)
}

func TestChooseActionTravelsToBestZone(t *testing.T) {
	cat := catalog.New(
		catalog.Definition{ID: "sit", Label: "Sit", Zone: office.ZoneDesk, Duration: 3, Behavior: flat(8)},
		catalog.Definition{ID: "snack", Label: "Snack", Zone: office.ZonePantry, Duration: 2, Behavior: flat(20)},
	)
	s := NewSimulation([]*agents.Character{worker("w", office.Coord{X: 4, Y: 7})}, cat)
	s.Rand = entropy.Fixed(0)
	c := s.get("w")

	s.decide(c)
	require.Equal(t, agents.StateMoving, c.State)
	assert.Equal(t, "snack", c.ActionID)
	require.NotNil(t, c.Target)
	assert.Equal(t, office.Coord{X: 2, Y: 17}, *c.Target)
	assert.Equal(t, 11, c.ActionTimer) // ceil(sqrt(104))
}

func TestCEOEligibility(t *testing.T) {
	ceo := &agents.Character{Role: agents.RoleCEO}
	staff := &agents.Character{Role: "Engineer"}
	cat := catalog.Default()

	for _, def := range cat.All() {
		assert.True(t, eligible(staff, def), def.ID)
	}
	work, _ := cat.Find(catalog.ActionWorkCode)
	trade, _ := cat.Find(catalog.ActionStockTrading)
	visit, _ := cat.Find(catalog.ActionVisitCEO)
	coffee, _ := cat.Find(catalog.ActionDrinkCoffee)
	assert.False(t, eligible(ceo, work))
	assert.False(t, eligible(ceo, visit))
	assert.True(t, eligible(ceo, trade))
	assert.True(t, eligible(ceo, coffee))
}

func TestPlayerAwaitsOrders(t *testing.T) {
	s := newSim(0.99, player(office.Coord{X: 4, Y: 7}))
	p := s.get("player")
	s.decide(p)
	assert.Equal(t, agents.StateIdle, p.State)
	assert.Equal(t, "Awaiting orders...", p.Thought)
}

func TestMarriageSeeking(t *testing.T) {
	him := worker("him", office.Coord{X: 4, Y: 7})
	her := worker("her", office.Coord{X: 6, Y: 7})
	her.Gender = agents.GenderFemale
	him.Intimacy[her.ID] = 85

	s := newSim(0.01, him, her)
	h := s.get("him")
	s.decide(h)
	assert.Equal(t, agents.StateMoving, h.State)
	assert.Equal(t, ActionProposeMarriage, h.ActionID)
	assert.Equal(t, her.ID, h.TargetCharacter)

	// Too little intimacy: no courtship, generic scoring instead.
	s2 := newSim(0.01, worker("him", office.Coord{X: 4, Y: 7}), her)
	h2 := s2.get("him")
	s2.decide(h2)
	assert.NotEqual(t, ActionProposeMarriage, h2.ActionID)
}

func TestManagerSnitches(t *testing.T) {
	mgr := worker("mgr", office.Coord{X: 10, Y: 5})
	mgr.Role = agents.RoleTechDirector
	victim := worker("victim", office.Coord{X: 12, Y: 5})
	victim.Gender = agents.GenderFemale
	victim.State = agents.StatePerforming
	victim.ActionID = catalog.ActionNap
	victim.ActionTimer = 50
	victim.Needs.Stress = 20

	s := newSim(0.1, mgr, victim)
	m := s.get("mgr")
	s.decide(m)
	require.Equal(t, agents.StatePerforming, m.State)
	assert.Equal(t, catalog.ActionRecordMisconduct, m.ActionID)
	assert.Equal(t, victim.ID, m.TargetCharacter)
	assert.Equal(t, 5, m.ActionTimer)

	for i := 0; i < 5; i++ {
		s.perform(m)
	}
	assert.Equal(t, agents.StateIdle, m.State)
	assert.InDelta(t, 30.0, s.get("victim").Needs.Stress, 1e-9)
	assert.Equal(t, CategorySecret, s.world.Logs[0].Category)
}

func TestManagerIgnoresWorkers(t *testing.T) {
	mgr := worker("mgr", office.Coord{X: 10, Y: 5})
	mgr.Role = agents.RoleTechDirector
	busy := worker("busy", office.Coord{X: 12, Y: 5})
	busy.State = agents.StatePerforming
	busy.ActionID = catalog.ActionWorkCode

	s := newSim(0.1, mgr, busy)
	m := s.get("mgr")
	assert.False(t, s.snitch(m))
}

func TestMovementStepsAndArrives(t *testing.T) {
	c := worker("w", office.Coord{X: 9, Y: 14})
	s := newSim(0.99, c)
	w := s.get("w")
	w.State = agents.StateMoving
	w.ActionID = catalog.ActionNap
	w.Target = &office.Coord{X: 9, Y: 17}

	s.move(w)
	assert.InDelta(t, 15.0, w.Position.Y, 1e-9)
	assert.Equal(t, agents.StateMoving, w.State)
	s.move(w)
	s.move(w)
	assert.Equal(t, office.Coord{X: 9, Y: 17}, w.Position)
	assert.Equal(t, agents.StatePerforming, w.State)
	assert.Equal(t, 10, w.ActionTimer)
	assert.Equal(t, office.ZoneLounge, w.Location)
	assert.Nil(t, w.Target)
}

func TestMovementWithoutTargetIdles(t *testing.T) {
	s := newSim(0.99, worker("w", office.Coord{X: 4, Y: 7}))
	w := s.get("w")
	w.State = agents.StateMoving
	s.move(w)
	assert.Equal(t, agents.StateIdle, w.State)
}

func TestPursuitFollowsLiveTarget(t *testing.T) {
	s := newSim(0.99, player(office.Coord{X: 0, Y: 10}), worker("t", office.Coord{X: 10, Y: 10}))
	require.NoError(t, s.CommandInteract("t", InteractGossip))

	s.get("t").Position = office.Coord{X: 5, Y: 10}
	p := s.get("player")
	s.move(p)
	require.NotNil(t, p.Target)
	assert.Equal(t, office.Coord{X: 5, Y: 10}, *p.Target)
	assert.InDelta(t, 1.0, p.Position.X, 1e-9)
}

func TestPursuerSeesPartnerMovedEarlierInTick(t *testing.T) {
	walker := worker("t", office.Coord{X: 10, Y: 10})
	s := newSim(0.99, walker, player(office.Coord{X: 0, Y: 10}))
	require.NoError(t, s.CommandInteract("t", InteractGossip))

	w := s.get("t")
	w.State = agents.StateMoving
	w.ActionID = catalog.ActionDrinkCoffee
	w.Target = &office.Coord{X: 20, Y: 10}

	s.AdvanceTick()

	assert.Equal(t, office.Coord{X: 11, Y: 10}, s.get("t").Position)
	p := s.get("player")
	require.NotNil(t, p.Target)
	assert.Equal(t, office.Coord{X: 11, Y: 10}, *p.Target)
	assert.InDelta(t, 1.0, p.Position.X, 1e-9)
}

func TestDeskConflict(t *testing.T) {
	a := worker("a", office.Coord{X: 4, Y: 7})
	b := worker("b", office.Coord{X: 6, Y: 7})
	a.Needs.Social = 50
	a.Position = office.Coord{X: 5.5, Y: 7}
	s := newSim(0.99, a, b)

	intruder := s.get("a")
	intruder.State = agents.StateMoving
	intruder.ActionID = catalog.ActionWorkCode
	intruder.Target = &office.Coord{X: 6, Y: 7}
	s.move(intruder)

	assert.Equal(t, agents.StatePerforming, intruder.State)
	assert.InDelta(t, 40.0, intruder.Needs.Social, 1e-9)
	assert.InDelta(t, 15.0, s.get("b").Needs.Stress, 1e-9)
}

func TestNoDeskConflictAtOwnOrEmptyDesk(t *testing.T) {
	a := worker("a", office.Coord{X: 4, Y: 7})
	b := worker("b", office.Coord{X: 6, Y: 7})
	a.Position = office.Coord{X: 4.5, Y: 7}
	s := newSim(0.99, a, b)

	own := s.get("a")
	own.State = agents.StateMoving
	own.ActionID = catalog.ActionWorkCode
	own.Target = &office.Coord{X: 4, Y: 7}
	s.move(own)
	assert.InDelta(t, 80.0, own.Needs.Social, 1e-9)

	own.State = agents.StateMoving
	own.Position = office.Coord{X: 12, Y: 13}
	own.Target = &office.Coord{X: 12, Y: 13}
	s.move(own)
	assert.Equal(t, agents.StatePerforming, own.State)
	assert.InDelta(t, 80.0, own.Needs.Social, 1e-9)
	assert.InDelta(t, 10.0, s.get("b").Needs.Stress, 1e-9)
}

func TestGossipOutcome(t *testing.T) {
	s := newSim(0.99, worker("a", office.Coord{X: 4, Y: 7}), worker("b", office.Coord{X: 6, Y: 7}))
	a, b := s.get("a"), s.get("b")
	a.Needs.Social, b.Needs.Social = 50, 50
	a.State = agents.StatePerforming
	a.ActionID = "interaction_gossip"
	a.TargetCharacter = "b"
	a.ActionTimer = 1

	s.perform(a)
	assert.InDelta(t, 80.0, a.Needs.Social, 1e-9)
	assert.InDelta(t, 80.0, b.Needs.Social, 1e-9)
	assert.Equal(t, 5.0, a.IntimacyWith("b"))
	assert.Equal(t, 5.0, b.IntimacyWith("a"))
	assert.Equal(t, agents.StateIdle, a.State)
	assert.Empty(t, a.ActionID)
	assert.Empty(t, a.TargetCharacter)
}

func TestGiftOutcome(t *testing.T) {
	s := newSim(0.99, player(office.Coord{X: 4, Y: 7}), worker("b", office.Coord{X: 6, Y: 7}))
	p, b := s.get("player"), s.get("b")
	p.Savings = 1000
	b.Needs.Stress = 30
	b.Needs.Social = 60
	p.State = agents.StatePerforming
	p.ActionID = "interaction_gift"
	p.TargetCharacter = "b"
	p.ActionTimer = 1

	s.perform(p)
	assert.Equal(t, int64(500), p.Savings)
	assert.InDelta(t, 100.0, p.Needs.Social, 1e-9)
	assert.Equal(t, 100.0, b.Needs.Social)
	assert.Equal(t, 0.0, b.Needs.Stress)
	assert.Equal(t, 20.0, p.IntimacyWith("b"))
	assert.Equal(t, 20.0, b.IntimacyWith("player"))
}

func TestProposalCertainAtFullIntimacy(t *testing.T) {
	for i := 0; i < 1000; i++ {
		s := newSim(0, worker("a", office.Coord{X: 4, Y: 7}), worker("b", office.Coord{X: 6, Y: 7}))
		s.Rand = entropy.NewSeeded(int64(i + 1))
		a, b := s.get("a"), s.get("b")
		a.Intimacy["b"] = 100
		s.resolveProposal(a, b)
		require.True(t, a.Married)
		require.True(t, b.Married)
		require.Equal(t, b.ID, a.SpouseID)
		require.Equal(t, a.ID, b.SpouseID)
	}
}

func TestProposalImpossibleWithoutIntimacy(t *testing.T) {
	for i := 0; i < 1000; i++ {
		s := newSim(0, worker("a", office.Coord{X: 4, Y: 7}), worker("b", office.Coord{X: 6, Y: 7}))
		s.Rand = entropy.NewSeeded(int64(i + 1))
		a, b := s.get("a"), s.get("b")
		s.resolveProposal(a, b)
		require.False(t, a.Married)
		require.Empty(t, b.SpouseID)
		require.InDelta(t, 60.0, a.Needs.Stress, 1e-9)
		require.Equal(t, 0.0, a.IntimacyWith("b"))
	}
}

func TestSpreadRumorHitsLivingColleague(t *testing.T) {
	dead := worker("dead", office.Coord{X: 8, Y: 7})
	dead.State = agents.StateDead
	victim := worker("victim", office.Coord{X: 6, Y: 7})
	victim.Needs.Social = 50
	victim.Needs.Stress = 95

	s := newSim(0, dead, worker("src", office.Coord{X: 4, Y: 7}), victim)
	src := s.get("src")
	src.State = agents.StatePerforming
	src.ActionID = catalog.ActionSpreadRumor
	src.ActionTimer = 1

	s.perform(src)
	v := s.get("victim")
	assert.InDelta(t, 30.0, v.Needs.Social, 1e-9)
	assert.Equal(t, 100.0, v.Needs.Stress)
	assert.Equal(t, 80.0, s.get("dead").Needs.Social)
}

type nanBehavior struct{}

func (nanBehavior) Strategy() string                { return "nan" }
func (nanBehavior) Score(*agents.Character) float64 { return 0 }
func (nanBehavior) Apply(*agents.Character, catalog.Env) catalog.Delta {
	return catalog.Delta{Energy: math.NaN()}
}

func TestInvalidDeltaIsDiscarded(t *testing.T) {
	cat := catalog.New(catalog.Definition{ID: "broken", Zone: office.ZoneLounge, Duration: 1, Behavior: nanBehavior{}})
	s := NewSimulation([]*agents.Character{worker("w", office.Coord{X: 4, Y: 7})}, cat)
	s.Rand = entropy.Fixed(0.99)
	c := s.get("w")
	c.State = agents.StatePerforming
	c.ActionID = "broken"
	c.ActionTimer = 1

	s.perform(c)
	assert.Equal(t, 80.0, c.Needs.Energy)
	assert.Equal(t, agents.StateIdle, c.State)
}

func TestCatalogEffectsApplied(t *testing.T) {
	s := newSim(0.5, worker("w", office.Coord{X: 4, Y: 7}))
	c := s.get("w")
	c.State = agents.StatePerforming
	c.ActionID = catalog.ActionWorkCode
	c.ActionTimer = 1

	s.perform(c)
	assert.Equal(t, 60, c.Performance.LinesOfCode)
	assert.InDelta(t, 70.0, c.Needs.Energy, 1e-9)
	assert.Equal(t, agents.StateIdle, c.State)
	assert.Equal(t, "?", c.Thought)
}

func TestCompletionLogging(t *testing.T) {
	var buf bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	t.Cleanup(func() { slog.SetDefault(prev) })

	s := newSim(0.5, player(office.Coord{X: 4, Y: 7}), worker("w", office.Coord{X: 6, Y: 7}))
	for _, c := range []*agents.Character{s.get("player"), s.get("w")} {
		c.State = agents.StatePerforming
		c.ActionID = catalog.ActionDrinkCoffee
		c.ActionTimer = 1
	}
	logs := len(s.world.Logs)

	s.perform(s.get("w"))
	assert.Len(t, s.world.Logs, logs)
	assert.Contains(t, buf.String(), "action finished")
	assert.Contains(t, buf.String(), "character=w")
	assert.Contains(t, buf.String(), "action=drink_coffee")

	s.perform(s.get("player"))
	require.Len(t, s.world.Logs, logs+1)
	assert.Equal(t, "You finished: Drink coffee.", s.world.Logs[0].Message)
}

func TestLastDeltasRounded(t *testing.T) {
	s := newSim(0.99, player(office.Coord{X: 4, Y: 7}))
	s.AdvanceTick()
	d := s.get("player").LastDeltas
	assert.Equal(t, -0.2, d.Energy)
	assert.Equal(t, 0.5, d.Bladder)
	assert.Equal(t, -0.3, d.Social)
	assert.Equal(t, 0.0, d.Stress)
}

func TestLogIsCappedNewestFirst(t *testing.T) {
	s := newSim(0.99, player(office.Coord{X: 4, Y: 7}))
	for i := 0; i < 60; i++ {
		s.logf(CategoryInfo, "entry %d", i)
	}
	require.Len(t, s.world.Logs, DefaultLogCapacity)
	assert.Equal(t, "entry 59", s.world.Logs[0].Message)
	assert.Equal(t, "entry 10", s.world.Logs[DefaultLogCapacity-1].Message)
	assert.NotEqual(t, s.world.Logs[0].ID, s.world.Logs[1].ID)
}

func TestPatrolLifecycle(t *testing.T) {
	mgr := worker("mgr", office.Coord{X: 10, Y: 5})
	mgr.Role = agents.RoleTechDirector
	mgr.Position = office.Coord{X: 15, Y: 15}
	s := newSim(0.05, mgr)

	s.world.Tick = 100
	s.updatePatrol()
	require.True(t, s.world.ManagerActive)
	assert.Equal(t, 49, s.world.ManagerTimer)

	m := s.get("mgr")
	assert.Equal(t, agents.StateMoving, m.State)
	assert.Equal(t, catalog.ActionWorkCode, m.ActionID)
	assert.Equal(t, office.Coord{X: 10, Y: 5}, *m.Target)

	for i := 0; i < 48; i++ {
		s.world.Tick++
		s.updatePatrol()
	}
	assert.True(t, s.world.ManagerActive)
	s.world.Tick++
	s.updatePatrol()
	assert.False(t, s.world.ManagerActive)
}

func TestPatrolRollCanFail(t *testing.T) {
	s := newSim(0.5, worker("w", office.Coord{X: 4, Y: 7}))
	s.world.Tick = 100
	s.updatePatrol()
	assert.False(t, s.world.ManagerActive)
}

func TestNeedsStayBoundedOverLongRun(t *testing.T) {
	roster := agents.NewSpawner(1).SpawnPopulation(agents.DefaultGeneratedStaff)
	s := NewSimulation(roster, catalog.Default())
	s.Rand = entropy.NewSeeded(42)

	for i := 0; i < 3000; i++ {
		w := s.AdvanceTick()
		for _, c := range w.Characters {
			if !c.Alive() {
				continue
			}
			require.True(t, c.Needs.Energy >= 0 && c.Needs.Energy <= 100, "%s energy %v", c.ID, c.Needs.Energy)
			require.True(t, c.Needs.Bladder >= 0 && c.Needs.Bladder <= 100, "%s bladder %v", c.ID, c.Needs.Bladder)
			require.True(t, c.Needs.Social >= 0 && c.Needs.Social <= 100, "%s social %v", c.ID, c.Needs.Social)
			require.GreaterOrEqual(t, c.Needs.Stress, 0.0)
		}
	}
}

func TestDeadCharactersNeverChange(t *testing.T) {
	roster := agents.NewSpawner(1).SpawnPopulation(agents.DefaultGeneratedStaff)
	roster[4].State = agents.StateDead
	s := NewSimulation(roster, catalog.Default())
	s.Rand = entropy.NewSeeded(9)

	before := s.get(string(roster[4].ID)).Clone()
	for i := 0; i < 850; i++ {
		s.AdvanceTick()
	}
	assert.Equal(t, before, s.get(string(roster[4].ID)))
}
