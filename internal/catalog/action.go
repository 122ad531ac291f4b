// Package catalog defines the actions employees can choose from. Each action
// is plain data (id, label, zone, duration) bound to a named behavior strategy
// that scores the action for a character and computes its completion effects.
package catalog

import (
	"github.com/talgya/cubicle/internal/agents"
	"github.com/talgya/cubicle/internal/entropy"
	"github.com/talgya/cubicle/internal/office"
)

// Built-in action IDs.
const (
	ActionWorkCode         = "work_code"
	ActionStockTrading     = "stock_trading"
	ActionDrinkCoffee      = "drink_coffee"
	ActionUseRestroom      = "use_restroom"
	ActionNap              = "nap"
	ActionGossip           = "gossip"
	ActionTrainingSession  = "training_session"
	ActionVisitCEO         = "visit_ceo"
	ActionRecordMisconduct = "record_misconduct"
	ActionSpreadRumor      = "spread_rumor"
)

// MarketMover supplies the fractional market move for a trading session.
// draw is a uniform value in [0, 1).
type MarketMover interface {
	Move(tick uint64, draw float64) float64
}

// Env is the context an action's effects are computed in.
type Env struct {
	Rand   entropy.Source
	Tick   uint64
	Market MarketMover // Optional; nil falls back to a pure uniform move
}

func (e Env) marketMove() float64 {
	draw := e.Rand.Float64()
	if e.Market == nil {
		return (draw - 0.45) * 0.05
	}
	return e.Market.Move(e.Tick, draw)
}

// Behavior scores an action for a character and computes its effects.
// Implementations must be pure apart from draws on env.Rand.
type Behavior interface {
	Strategy() string
	Score(c *agents.Character) float64
	Apply(c *agents.Character, env Env) Delta
}

// Definition is one catalog entry.
type Definition struct {
	ID       string
	Label    string
	Zone     office.Zone
	Duration int // Ticks
	Behavior Behavior
	Params   map[string]float64 // Strategy parameters, kept for export
}

// Score returns the utility of this action for c. A definition without a
// behavior scores zero.
func (d Definition) Score(c *agents.Character) float64 {
	if d.Behavior == nil {
		return 0
	}
	return d.Behavior.Score(c)
}

// Apply computes the completion effects of this action for c.
func (d Definition) Apply(c *agents.Character, env Env) Delta {
	if d.Behavior == nil {
		return Delta{}
	}
	return d.Behavior.Apply(c, env)
}

// Catalog is an ordered, read-only set of definitions.
type Catalog struct {
	defs  []Definition
	index map[string]int
}

// New builds a catalog. Later definitions with a duplicate ID are dropped.
func New(defs ...Definition) *Catalog {
	c := &Catalog{index: make(map[string]int, len(defs))}
	for _, d := range defs {
		if _, dup := c.index[d.ID]; dup {
			continue
		}
		c.index[d.ID] = len(c.defs)
		c.defs = append(c.defs, d)
	}
	return c
}

// All returns the definitions in catalog order.
func (c *Catalog) All() []Definition {
	return append([]Definition(nil), c.defs...)
}

// Len returns the number of definitions.
func (c *Catalog) Len() int {
	return len(c.defs)
}

// Find looks up a definition by ID.
func (c *Catalog) Find(id string) (Definition, bool) {
	i, ok := c.index[id]
	if !ok {
		return Definition{}, false
	}
	return c.defs[i], true
}

// ForZone returns the first definition bound to zone.
func (c *Catalog) ForZone(z office.Zone) (Definition, bool) {
	for _, d := range c.defs {
		if d.Zone == z {
			return d, true
		}
	}
	return Definition{}, false
}
