package event

// EventType represents the type of game event
type EventType int

const (
	// EventNone is never emitted, it marks tick-driven FSM transitions
	EventNone EventType = iota

	// === Travel Event ===

	// EventWarpEngage requests the Exploring -> Warping transition
	// Trigger: TravelSystem when fuel is full and a destination is in range
	// Consumer: travel FSM | Payload: nil
	EventWarpEngage

	// EventWarpArrive requests the Warping -> Exploring transition
	// Trigger: TravelSystem on dwell completion
	// Consumer: travel FSM | Payload: nil
	EventWarpArrive

	// EventWarpEngaged announces that travel has started
	// Trigger: travel FSM enter Warping
	// Consumer: AudioSystem | Payload: *WarpEngagedPayload
	EventWarpEngaged

	// EventWarpArrived announces arrival after settlement and level reset
	// Trigger: travel FSM exit Warping
	// Consumer: AudioSystem, DiagnosticsSystem | Payload: *WarpArrivedPayload
	EventWarpArrived

	// EventTravelComplete announces the overlay has cleared and the cycle is idle
	// Trigger: TravelSystem on fade-in completion
	// Consumer: none in core, front-ends | Payload: nil
	EventTravelComplete

	// === Combat Event ===

	// EventProjectileFired announces a weapon discharge
	// Trigger: WeaponSystem
	// Consumer: AudioSystem | Payload: *ProjectileFiredPayload
	EventProjectileFired

	// EventProjectileHit announces damage applied to a target
	// Trigger: ProjectileSystem
	// Consumer: AudioSystem | Payload: *ProjectileHitPayload
	EventProjectileHit

	// EventEnemyKilled announces an enemy removed by damage
	// Trigger: EnemySystem
	// Consumer: AudioSystem, DiagnosticsSystem | Payload: *EnemyKilledPayload
	EventEnemyKilled

	// EventPickupSpawnRequest asks for a fuel pellet at a location
	// Trigger: EnemySystem on death
	// Consumer: FuelSystem | Payload: *PickupSpawnPayload
	EventPickupSpawnRequest

	// === Economy Event ===

	// EventFuelCollected announces a pellet absorbed by the player
	// Trigger: FuelSystem
	// Consumer: AudioSystem | Payload: *FuelCollectedPayload
	EventFuelCollected

	// EventCommodityCollected announces cargo added to the holding
	// Trigger: CommoditySystem
	// Consumer: AudioSystem | Payload: *CommodityCollectedPayload
	EventCommodityCollected

	// EventTargetRevealed announces a scanner reveal
	// Trigger: ScannerSystem (timer or proximity)
	// Consumer: AudioSystem | Payload: *TargetRevealedPayload
	EventTargetRevealed

	eventTypeCount
)

var eventNames = [eventTypeCount]string{
	EventNone:               "None",
	EventWarpEngage:         "WarpEngage",
	EventWarpArrive:         "WarpArrive",
	EventWarpEngaged:        "WarpEngaged",
	EventWarpArrived:        "WarpArrived",
	EventTravelComplete:     "TravelComplete",
	EventProjectileFired:    "ProjectileFired",
	EventProjectileHit:      "ProjectileHit",
	EventEnemyKilled:        "EnemyKilled",
	EventPickupSpawnRequest: "PickupSpawnRequest",
	EventFuelCollected:      "FuelCollected",
	EventCommodityCollected: "CommodityCollected",
	EventTargetRevealed:     "TargetRevealed",
}

// String returns the event name for logs
func (t EventType) String() string {
	if t >= 0 && t < eventTypeCount {
		return eventNames[t]
	}
	return "Unknown"
}

// GetEventType resolves an event name to its type, used by configuration loaders
func GetEventType(name string) (EventType, bool) {
	for i, n := range eventNames {
		if n == name && EventType(i) != EventNone {
			return EventType(i), true
		}
	}
	return EventNone, false
}

// GameEvent represents a single game event with metadata
type GameEvent struct {
	Type    EventType
	Payload any
	Frame   int64
}
