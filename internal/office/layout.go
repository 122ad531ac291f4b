package office

// Layout maps each zone to its entry coordinate. The desk entry is only a
// reference point; desk actions travel to the mover's assigned desk instead.
type Layout map[Zone]Coord

// DefaultLayout returns the standard floor plan.
func DefaultLayout() Layout {
	return Layout{
		ZoneCEOOffice:    {X: 2, Y: 2},
		ZoneMeetingRoom1: {X: 9, Y: 3},
		ZoneMeetingRoom2: {X: 16, Y: 3},
		ZoneDesk:         {X: 10, Y: 10},
		ZonePantry:       {X: 2, Y: 17},
		ZoneRestroom:     {X: 17, Y: 17},
		ZoneLounge:       {X: 9, Y: 17},
		ZoneElevator:     {X: 18, Y: 9},
	}
}

// Destination resolves where a mover with the given assigned desk must go
// to use zone.
func (l Layout) Destination(zone Zone, desk Coord) Coord {
	if zone == ZoneDesk {
		return desk
	}
	return l[zone]
}

// Clone returns an independent copy of the layout.
func (l Layout) Clone() Layout {
	out := make(Layout, len(l))
	for z, c := range l {
		out[z] = c
	}
	return out
}

// DeskSlots returns the regular employee desks: three rows of seven,
// x = 4..16 step 2 at y = 7, 10, 13.
func DeskSlots() []Coord {
	var slots []Coord
	for _, y := range []float64{7, 10, 13} {
		for x := 4; x <= 16; x += 2 {
			slots = append(slots, Coord{X: float64(x), Y: y})
		}
	}
	return slots
}
