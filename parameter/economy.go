package parameter

import "time"

// Scanner
const (
	// ScannerPeriod is the interval between automatic reveals
	ScannerPeriod = 45 * time.Second
)

// Pickups
const (
	// FuelPelletMaxSpeed caps pellet homing speed
	FuelPelletMaxSpeed = 300.0

	// FuelPelletHomingSpeed is the speed pellets drift toward the player
	FuelPelletHomingSpeed = 100.0

	// FuelPelletAttractRadius is the distance at which pellets start homing
	FuelPelletAttractRadius = 60.0

	// FuelPelletCollectRadius is the strict distance for collection
	FuelPelletCollectRadius = 10.0

	// CommodityCollectRadius is the strict distance for commodity pickup
	CommodityCollectRadius = 20.0
)

// Level Generation
const (
	// LevelCommodityCount is commodities per level, each of a distinct kind
	LevelCommodityCount = 3

	// LevelCommodityMinDistance and LevelCommodityMaxDistance bound commodity placement from origin
	LevelCommodityMinDistance = 1500.0
	LevelCommodityMaxDistance = 2500.0

	// LevelCommodityTotal is split across the commodities of a level
	LevelCommodityTotal = 100

	// LevelCommodityMinAmount is the smallest single commodity amount
	LevelCommodityMinAmount = 20

	// LevelDestinationCount is destinations per level, labelled from 'A'
	LevelDestinationCount = 3

	// LevelDestinationMinDistance and LevelDestinationMaxDistance bound destination placement
	LevelDestinationMinDistance = 2600.0
	LevelDestinationMaxDistance = 3000.0

	// LevelMinSeparationDeg keeps placed objects apart around the origin
	LevelMinSeparationDeg = 80.0

	// LevelDestinationRadius is the drawn size of a destination
	LevelDestinationRadius = 80.0

	// HomePlanetRadius is the drawn size of the home planet at the origin
	HomePlanetRadius = 60.0

	// PriceSheetMinEntries and PriceSheetMaxEntries bound the kinds a destination trades
	PriceSheetMinEntries = 2
	PriceSheetMaxEntries = 3

	// PriceSheetMaxSteps bounds the multiplier deviation in tenths, giving [0.5, 1.5]
	PriceSheetMaxSteps = 5
)
