package catalog

import "github.com/talgya/cubicle/internal/office"

type entry struct {
	id       string
	label    string
	zone     office.Zone
	duration int
}

var defaultEntries = []entry{
	{ActionWorkCode, "Write code", office.ZoneDesk, 8},
	{ActionStockTrading, "Trade stocks", office.ZoneDesk, 4},
	{ActionDrinkCoffee, "Drink coffee", office.ZonePantry, 3},
	{ActionUseRestroom, "Use restroom", office.ZoneRestroom, 4},
	{ActionNap, "Nap", office.ZoneLounge, 10},
	{ActionGossip, "Gossip", office.ZonePantry, 5},
	{ActionTrainingSession, "Training session", office.ZoneMeetingRoom1, 15},
	{ActionVisitCEO, "Report to the CEO", office.ZoneCEOOffice, 10},
	{ActionRecordMisconduct, "Record misconduct", office.ZoneDesk, 5},
	{ActionSpreadRumor, "Spread a rumor", office.ZoneLounge, 6},
}

// Default returns the built-in catalog. Each action's strategy shares its ID.
func Default() *Catalog {
	reg := NewRegistry()
	defs := make([]Definition, 0, len(defaultEntries))
	for _, e := range defaultEntries {
		b, err := reg.Build(e.id, nil)
		if err != nil {
			panic(err) // built-ins always resolve
		}
		defs = append(defs, Definition{
			ID:       e.id,
			Label:    e.label,
			Zone:     e.zone,
			Duration: e.duration,
			Behavior: b,
		})
	}
	return New(defs...)
}
