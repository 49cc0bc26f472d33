package component

// CommodityKind is a tradeable good
type CommodityKind uint8

const (
	CommodityTungsten CommodityKind = iota
	CommodityGallium
	CommodityThorium
	CommodityWater
	CommodityOrganic
	CommodityCrystal
	CommodityNitrate
	CommodityGoods
	CommodityFood
	CommodityKindCount
)

var commodityNames = [CommodityKindCount]string{
	"Tungsten", "Gallium", "Thorium", "Water", "Organic", "Crystal", "Nitrate", "Goods", "Food",
}

func (k CommodityKind) String() string {
	if k < CommodityKindCount {
		return commodityNames[k]
	}
	return "Unknown"
}

// FuelTankComponent gates warp travel, which requires Current == Max
type FuelTankComponent struct {
	Current int
	Max     int
}

// Full reports whether the tank is exactly at capacity
func (f FuelTankComponent) Full() bool {
	return f.Current == f.Max
}

// CreditsComponent is the player's settled wealth
type CreditsComponent struct {
	Amount int
}

// HoldingComponent accumulates collected commodities until sold
type HoldingComponent struct {
	Quantities map[CommodityKind]int
}

// NewHolding creates an empty holding
func NewHolding() HoldingComponent {
	return HoldingComponent{Quantities: make(map[CommodityKind]int)}
}

// CommodityComponent is a collectable cargo pod in the world
type CommodityComponent struct {
	Kind   CommodityKind
	Amount int
}

// PriceEntry is one line of a price sheet
type PriceEntry struct {
	Kind       CommodityKind
	Multiplier float64
}

// PriceSheet maps commodity kinds to sale multipliers, preserving generation order
type PriceSheet struct {
	Entries []PriceEntry
}

// Multiplier returns the multiplier for kind, ok is false when the sheet does not list it
func (p PriceSheet) Multiplier(kind CommodityKind) (float64, bool) {
	for _, e := range p.Entries {
		if e.Kind == kind {
			return e.Multiplier, true
		}
	}
	return 0, false
}

// Clone returns a sheet that shares no storage with p
func (p PriceSheet) Clone() PriceSheet {
	out := PriceSheet{Entries: make([]PriceEntry, len(p.Entries))}
	copy(out.Entries, p.Entries)
	return out
}

// DestinationComponent is a warp target with its local market
type DestinationComponent struct {
	Label  string
	Prices PriceSheet
}

// FuelPelletComponent tags fuel dropped by destroyed enemies
type FuelPelletComponent struct{}
