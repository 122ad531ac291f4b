package office

import (
	"fmt"
	"strings"
)

// Zone is a logical area of the office. Every catalog action is bound to one.
type Zone uint8

const (
	ZoneDesk Zone = iota // Open-plan desk area; desk actions resolve to the assigned desk
	ZonePantry
	ZoneRestroom
	ZoneLounge
	ZoneMeetingRoom1
	ZoneMeetingRoom2
	ZoneCEOOffice
	ZoneElevator
)

// NumZones is the total number of zones.
const NumZones = 8

var zoneNames = [NumZones]string{
	"Desk",
	"Pantry",
	"Restroom",
	"Lounge",
	"Meeting Room 1",
	"Meeting Room 2",
	"CEO Office",
	"Elevator",
}

// String returns the display name of the zone.
func (z Zone) String() string {
	if int(z) < len(zoneNames) {
		return zoneNames[z]
	}
	return fmt.Sprintf("Zone(%d)", z)
}

// MarshalText encodes the zone by display name.
func (z Zone) MarshalText() ([]byte, error) {
	if int(z) >= len(zoneNames) {
		return nil, fmt.Errorf("unknown zone %d", z)
	}
	return []byte(zoneNames[z]), nil
}

// UnmarshalText decodes a zone from its display name.
func (z *Zone) UnmarshalText(b []byte) error {
	parsed, ok := ParseZone(string(b))
	if !ok {
		return fmt.Errorf("unknown zone %q", string(b))
	}
	*z = parsed
	return nil
}

// ParseZone resolves a zone by name, ignoring case, spaces, and underscores.
func ParseZone(name string) (Zone, bool) {
	norm := normalizeZoneName(name)
	for i, n := range zoneNames {
		if normalizeZoneName(n) == norm {
			return Zone(i), true
		}
	}
	return 0, false
}

func normalizeZoneName(s string) string {
	s = strings.ToLower(s)
	s = strings.ReplaceAll(s, " ", "")
	return strings.ReplaceAll(s, "_", "")
}

// Zones returns every zone in declaration order.
func Zones() []Zone {
	zs := make([]Zone, NumZones)
	for i := range zs {
		zs[i] = Zone(i)
	}
	return zs
}
