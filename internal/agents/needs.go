package agents

// Needs are the four fast-moving stats. Energy and social decay toward 0;
// stress and bladder pressure build toward 100. Stress and bladder may
// briefly exceed 100 before the critical-vitals checks handle the overflow.
type Needs struct {
	Energy  float64 `json:"energy"`
	Stress  float64 `json:"stress"`
	Bladder float64 `json:"bladder"`
	Social  float64 `json:"social"`
}

// NeedMax is the nominal upper bound of every need.
const NeedMax = 100

// Clamp bounds energy, bladder, and social to [0, 100] and floors stress at 0.
// Stress is left uncapped so an overflow still reaches the breakdown check.
func (n *Needs) Clamp() {
	n.Energy = clamp(n.Energy, 0, NeedMax)
	n.Bladder = clamp(n.Bladder, 0, NeedMax)
	n.Social = clamp(n.Social, 0, NeedMax)
	if n.Stress < 0 {
		n.Stress = 0
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Clamp bounds v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	return clamp(v, lo, hi)
}
