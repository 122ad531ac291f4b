package office

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDistance(t *testing.T) {
	assert.InDelta(t, 5.0, Distance(Coord{0, 0}, Coord{3, 4}), 1e-9)
	assert.Equal(t, 0.0, Distance(Coord{2, 2}, Coord{2, 2}))
}

func TestWithinIsStrict(t *testing.T) {
	assert.True(t, Within(Coord{0, 0}, Coord{0.99, 0}, 1))
	assert.False(t, Within(Coord{0, 0}, Coord{1, 0}, 1))
}

func TestStepTowardAdvancesOneUnit(t *testing.T) {
	next, arrived := StepToward(Coord{0, 0}, Coord{10, 0}, 1)
	assert.False(t, arrived)
	assert.InDelta(t, 1.0, next.X, 1e-9)
	assert.InDelta(t, 0.0, next.Y, 1e-9)

	next, arrived = StepToward(Coord{0, 0}, Coord{3, 4}, 1)
	assert.False(t, arrived)
	assert.InDelta(t, 1.0, Distance(Coord{0, 0}, next), 1e-9)
}

func TestStepTowardSnapsWithinSpeed(t *testing.T) {
	next, arrived := StepToward(Coord{0, 0}, Coord{0.6, 0.8}, 1)
	assert.True(t, arrived)
	assert.Equal(t, Coord{0.6, 0.8}, next)
}

func TestTravelTicksRoundsUp(t *testing.T) {
	assert.Equal(t, 5, TravelTicks(4.2, 1))
	assert.Equal(t, 4, TravelTicks(4, 1))
	assert.Equal(t, 0, TravelTicks(3, 0))
}

func TestParseZone(t *testing.T) {
	z, ok := ParseZone("meeting_room_1")
	assert.True(t, ok)
	assert.Equal(t, ZoneMeetingRoom1, z)

	z, ok = ParseZone("CEO Office")
	assert.True(t, ok)
	assert.Equal(t, ZoneCEOOffice, z)

	_, ok = ParseZone("rooftop")
	assert.False(t, ok)
}

func TestLayoutDestination(t *testing.T) {
	l := DefaultLayout()
	desk := Coord{X: 4, Y: 7}
	assert.Equal(t, desk, l.Destination(ZoneDesk, desk))
	assert.Equal(t, Coord{X: 2, Y: 17}, l.Destination(ZonePantry, desk))
}

func TestDeskSlots(t *testing.T) {
	slots := DeskSlots()
	assert.Len(t, slots, 21)
	assert.Equal(t, Coord{X: 4, Y: 7}, slots[0])
	assert.Equal(t, Coord{X: 16, Y: 13}, slots[20])
}
