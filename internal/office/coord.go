// Package office provides the floor plan: planar coordinates, zones, and desk slots.
// The floor is a 20×20 grid; positions are continuous so movers can sit between cells.
package office

import (
	"fmt"
	"math"
)

// Coord is a position on the office floor.
type Coord struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// String returns the coordinate as "(x, y)".
func (c Coord) String() string {
	return fmt.Sprintf("(%.1f, %.1f)", c.X, c.Y)
}

// Distance returns the straight-line distance between two coordinates.
func Distance(a, b Coord) float64 {
	dx := b.X - a.X
	dy := b.Y - a.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// Within reports whether b lies strictly closer than radius to a.
func Within(a, b Coord, radius float64) bool {
	return Distance(a, b) < radius
}

// StepToward moves from toward dest by exactly speed units along the bearing.
// The second return value is true when dest was reached (remaining distance
// was within speed), in which case the returned coordinate is dest itself.
func StepToward(from, dest Coord, speed float64) (Coord, bool) {
	dx := dest.X - from.X
	dy := dest.Y - from.Y
	if math.Sqrt(dx*dx+dy*dy) <= speed {
		return dest, true
	}
	angle := math.Atan2(dy, dx)
	return Coord{
		X: from.X + math.Cos(angle)*speed,
		Y: from.Y + math.Sin(angle)*speed,
	}, false
}

// TravelTicks estimates how many ticks a trip of the given distance takes.
func TravelTicks(dist, speed float64) int {
	if speed <= 0 {
		return 0
	}
	return int(math.Ceil(dist / speed))
}
