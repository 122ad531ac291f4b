package catalog

import (
	"fmt"
	"math"
	"sort"
	"sync"
)

// Factory builds a behavior from its strategy parameters.
type Factory func(params map[string]float64) (Behavior, error)

// ParamScale multiplies a built-in strategy's score.
const ParamScale = "scale"

// Registry maps strategy names to behavior factories. Safe for concurrent use.
type Registry struct {
	mu        sync.RWMutex
	factories map[string]Factory
}

// NewRegistry returns a registry pre-loaded with the built-in strategies.
func NewRegistry() *Registry {
	r := &Registry{factories: make(map[string]Factory)}
	for _, b := range builtins() {
		r.Register(b.Strategy(), scalable(b))
	}
	return r
}

// Register adds or replaces a strategy.
func (r *Registry) Register(strategy string, f Factory) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.factories[strategy] = f
}

// Strategies returns the registered strategy names, sorted.
func (r *Registry) Strategies() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Build resolves a strategy into a behavior.
func (r *Registry) Build(strategy string, params map[string]float64) (Behavior, error) {
	r.mu.RLock()
	f, ok := r.factories[strategy]
	r.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("unknown strategy %q", strategy)
	}
	b, err := f(params)
	if err != nil {
		return nil, fmt.Errorf("strategy %q: %w", strategy, err)
	}
	return b, nil
}

func builtins() []Behavior {
	return []Behavior{
		workCode{},
		stockTrading{},
		drinkCoffee{},
		useRestroom{},
		nap{},
		gossip{},
		trainingSession{},
		visitCEO{},
		recordMisconduct{},
		spreadRumor{},
	}
}

// scalable wraps a built-in so it accepts an optional non-negative scale.
func scalable(b Behavior) Factory {
	return func(params map[string]float64) (Behavior, error) {
		for name := range params {
			if name != ParamScale {
				return nil, fmt.Errorf("unknown parameter %q", name)
			}
		}
		factor, ok := params[ParamScale]
		if !ok || factor == 1 {
			return b, nil
		}
		if factor < 0 || math.IsNaN(factor) || math.IsInf(factor, 0) {
			return nil, fmt.Errorf("scale must be a finite non-negative number, got %v", factor)
		}
		return scaled{Behavior: b, factor: factor}, nil
	}
}
