package game

import (
	"cmp"
	"slices"

	"github.com/lixenwraith/warpdrift/component"
	"github.com/lixenwraith/warpdrift/core"
	"github.com/lixenwraith/warpdrift/engine"
)

// HoldingLine is one commodity kind carried by the player
type HoldingLine struct {
	Kind   component.CommodityKind
	Amount int
}

// IndicatorLine is a revealed target as listed on the HUD
type IndicatorLine struct {
	Label    string
	Style    component.IndicatorStyle
	Distance float64
	Visible  bool
}

// HUDSnapshot is the text-facing state of the player and the travel cycle
type HUDSnapshot struct {
	Fuel    int
	FuelMax int
	Credits int

	// Holdings are sorted by kind
	Holdings []HoldingLine

	ScannerActive  bool
	ScannerPercent float64

	// Destinations are listed in reveal order with their markets
	Destinations []engine.DiscoveredDestination
	Indicators   []IndicatorLine

	Mode        core.TravelMode
	Phase       core.TravelPhase
	Destination string
	Frame       int64
}

// HUD copies the player-facing state out of the world
func (g *Game) HUD() HUDSnapshot {
	w := g.world
	r := w.Resources

	hud := HUDSnapshot{
		ScannerActive:  r.Scanner.Active(),
		ScannerPercent: r.Scanner.Timer.Percent(),
		Mode:           r.Travel.Mode,
		Phase:          r.Travel.Phase(),
		Destination:    r.Travel.Destination,
		Frame:          w.Frame(),
	}

	if player, err := w.Player(); err == nil {
		tank, _ := w.Components.FuelTanks.Get(player)
		hud.Fuel, hud.FuelMax = tank.Current, tank.Max

		credits, _ := w.Components.Credits.Get(player)
		hud.Credits = credits.Amount

		holding, _ := w.Components.Holdings.Get(player)
		for kind, q := range holding.Quantities {
			hud.Holdings = append(hud.Holdings, HoldingLine{Kind: kind, Amount: q})
		}
		slices.SortFunc(hud.Holdings, func(a, b HoldingLine) int {
			return cmp.Compare(a.Kind, b.Kind)
		})
	}

	for _, d := range r.Discovery.Destinations {
		d.Prices = d.Prices.Clone()
		hud.Destinations = append(hud.Destinations, d)
	}

	for _, e := range w.Components.Indicators.All() {
		ind, _ := w.Components.Indicators.Get(e)
		hud.Indicators = append(hud.Indicators, IndicatorLine{
			Label:    ind.Label,
			Style:    ind.Style,
			Distance: ind.Distance,
			Visible:  ind.Visible,
		})
	}
	return hud
}
