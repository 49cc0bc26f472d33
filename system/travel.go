package system

import (
	_ "embed"
	"fmt"
	"math"
	"sync/atomic"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/warpdrift/component"
	"github.com/lixenwraith/warpdrift/core"
	"github.com/lixenwraith/warpdrift/engine"
	"github.com/lixenwraith/warpdrift/engine/fsm"
	"github.com/lixenwraith/warpdrift/event"
	"github.com/lixenwraith/warpdrift/parameter"
	"github.com/lixenwraith/warpdrift/status"
	"github.com/lixenwraith/warpdrift/vmath"
)

//go:embed travel.toml
var travelGraph []byte

// TravelSystem drives the warp cycle: engage at a destination with a full tank, approach,
// fade out, dwell, arrive with settlement and a fresh level, fade back in
//
// Mode changes go through the state machine; the four phase timers live in TravelResource
type TravelSystem struct {
	world   *engine.World
	machine *fsm.Machine[*engine.World]

	// Settlement of the arrival in progress, read by the WarpArrived emit action
	arrival event.WarpArrivedPayload

	statCycles      *atomic.Int64
	statLevelErrors *atomic.Int64
	statMissing     *atomic.Int64
	statState       *status.AtomicString
	statDestination *status.AtomicString
	statOverlay     *status.AtomicFloat
	statStateTime   *status.AtomicFloat
}

// NewTravelSystem creates the travel system and enters the initial state, generating the first level
// Panics if the embedded graph does not compile
func NewTravelSystem(world *engine.World) engine.System {
	reg := world.Resources.Status
	s := &TravelSystem{
		world:           world,
		machine:         fsm.NewMachine[*engine.World](),
		statCycles:      reg.Ints.Get("travel.cycles"),
		statLevelErrors: reg.Ints.Get("level.errors"),
		statMissing:     reg.Ints.Get(statMissingSingleton),
		statState:       reg.Strings.Get("travel.state"),
		statDestination: reg.Strings.Get("travel.destination"),
		statOverlay:     reg.Floats.Get("travel.overlay"),
		statStateTime:   reg.Floats.Get("travel.state_seconds"),
	}

	s.registerActions()
	if err := s.machine.LoadConfig(travelGraph); err != nil {
		panic(fmt.Sprintf("travel graph: %v", err))
	}

	s.Init()
	return s
}

// Init clears level content and travel state, then restarts the graph at Exploring
// An interrupted warp still runs its exit actions, with no destination pending they sell nothing and announce nothing
func (s *TravelSystem) Init() {
	t := s.world.Resources.Travel
	if t.Overlay != core.NoEntity {
		s.world.QueueDestroy(t.Overlay)
	}
	s.despawnLevel()
	t.Reset()
	s.world.Resources.Scanner.Reset()
	s.world.Resources.Discovery.Reset()
	s.statCycles.Store(0)
	s.statOverlay.Store(0)

	if err := s.machine.Reset(s.world); err != nil {
		panic(fmt.Sprintf("travel graph: %v", err))
	}
}

func (s *TravelSystem) Name() string {
	return "travel"
}

func (s *TravelSystem) Priority() int {
	return parameter.PriorityTravel
}

// State returns the active travel state name
func (s *TravelSystem) State() string {
	return s.machine.StateName()
}

func (s *TravelSystem) Update() {
	t := s.world.Resources.Travel
	dt := s.world.Resources.Time.Delta

	s.machine.Update(s.world, dt)
	s.statStateTime.Store(s.machine.TimeInState().Seconds())

	if t.Mode == core.ModeExploring && t.Phase() == core.PhaseIdle {
		s.tryEngage()
		return
	}

	// Phases are stepped last to first so a phase unpaused this tick starts counting on the next one

	// Fade in
	t.FadeIn.Tick(dt)
	switch {
	case t.FadeIn.JustFinished():
		if t.Overlay != core.NoEntity {
			s.world.QueueDestroy(t.Overlay)
		}
		t.Reset()
		s.statOverlay.Store(0)
		s.statCycles.Add(1)
		s.world.PushEvent(event.EventTravelComplete, nil)
	case !t.FadeIn.Paused() && !t.FadeIn.Finished():
		s.setOpacity(vmath.CubicOut(t.FadeIn.PercentLeft()))
	}

	// Dwell ends with arrival, exactly once per cycle
	t.Dwell.Tick(dt)
	if t.Dwell.JustFinished() {
		s.machine.HandleEvent(s.world, event.EventWarpArrive)
		t.FadeIn.Unpause()
	}

	// Fade out
	t.FadeOut.Tick(dt)
	switch {
	case t.FadeOut.JustFinished():
		s.setOpacity(1)
		t.Dwell.Unpause()
	case !t.FadeOut.Paused() && !t.FadeOut.Finished():
		s.setOpacity(vmath.CubicOut(t.FadeOut.Percent()))
	}

	// Approach
	if t.Mode == core.ModeWarping {
		t.Approach.Tick(dt)
		if t.Approach.JustFinished() {
			s.spawnOverlay()
			t.FadeOut.Unpause()
		}
	}
}

// tryEngage starts travel when the tank is full and a destination is within activation range
func (s *TravelSystem) tryEngage() {
	player, playerT, err := s.world.PlayerTransform()
	if err != nil {
		s.statMissing.Add(1)
		return
	}
	if tank, ok := s.world.Components.FuelTanks.Get(player); !ok || !tank.Full() {
		return
	}

	r := s.world.Resources.Config.Travel.ActivationRadius
	for _, e := range s.world.Components.Destinations.All() {
		t, ok := s.world.Components.Transforms.Get(e)
		if !ok || vmath.DistanceSq(t.Pos, playerT.Pos) >= r*r {
			continue
		}
		dest, _ := s.world.Components.Destinations.Get(e)
		s.engage(dest)
		return
	}
}

func (s *TravelSystem) engage(dest component.DestinationComponent) {
	t := s.world.Resources.Travel

	sheet := dest.Prices.Clone()
	t.Pending = &sheet
	t.Destination = dest.Label
	t.Approach.Reset()
	t.Approach.Unpause()

	if !s.machine.HandleEvent(s.world, event.EventWarpEngage) {
		t.Pending = nil
		t.Destination = ""
	}
}

func (s *TravelSystem) spawnOverlay() {
	t := s.world.Resources.Travel
	pos := s.cameraPos()

	eb := s.world.NewEntity()
	engine.With(eb, s.world.Components.Overlays, component.OverlayComponent{})
	engine.With(eb, s.world.Components.Transforms, component.TransformComponent{Pos: pos, Layer: parameter.LayerOverlay})
	t.Overlay = eb.Build()
}

func (s *TravelSystem) cameraPos() mgl64.Vec2 {
	camera, err := s.world.Camera()
	if err != nil {
		s.statMissing.Add(1)
		return mgl64.Vec2{}
	}
	t, _ := s.world.Components.Transforms.Get(camera)
	return t.Pos
}

func (s *TravelSystem) setOpacity(v float64) {
	overlay := s.world.Resources.Travel.Overlay
	if overlay == core.NoEntity {
		return
	}
	s.statOverlay.Store(v)
	// No-op while the overlay is still staged
	s.world.Components.Overlays.Update(overlay, func(o *component.OverlayComponent) {
		o.Opacity = v
	})
}

// === State machine actions ===

func (s *TravelSystem) registerActions() {
	m := s.machine

	m.RegisterGuard("TankFull", func(w *engine.World) bool {
		player, err := w.Player()
		if err != nil {
			return false
		}
		tank, ok := w.Components.FuelTanks.Get(player)
		return ok && tank.Full()
	})

	m.RegisterAction("EnterExploring", func(w *engine.World, _ any) {
		w.Resources.Travel.Mode = core.ModeExploring
		s.statState.Store(core.ModeExploring.String())
	})
	m.RegisterAction("EnterWarping", func(w *engine.World, _ any) {
		w.Resources.Travel.Mode = core.ModeWarping
		s.statState.Store(core.ModeWarping.String())
		s.statDestination.Store(w.Resources.Travel.Destination)
	})
	m.RegisterAction("GenerateLevel", func(w *engine.World, _ any) {
		if err := GenerateLevel(w); err != nil {
			s.statLevelErrors.Add(1)
		}
	})
	m.RegisterAction("Settle", func(w *engine.World, _ any) {
		s.settle()
	})
	m.RegisterAction("DespawnLevel", func(w *engine.World, _ any) {
		s.despawnLevel()
	})
	// Pickups requested by kills this tick would land in the fresh level
	m.RegisterAction("DropPickups", func(w *engine.World, _ any) {
		w.DiscardEvents(event.EventPickupSpawnRequest)
	})
	m.RegisterAction("ResetPlayer", func(w *engine.World, _ any) {
		if player, err := w.Player(); err == nil {
			ResetPlayer(w, player)
		}
	})
	m.RegisterAction("ResetDiscovery", func(w *engine.World, _ any) {
		w.Resources.Scanner.Reset()
		w.Resources.Discovery.Reset()
	})
	m.RegisterAction("ResetPopulation", func(w *engine.World, _ any) {
		w.Resources.Spawn.Reset()
	})
	m.RegisterAction("EmitEvent", func(w *engine.World, args any) {
		a, ok := args.(*fsm.EmitEventArgs)
		if !ok {
			return
		}
		switch a.Type {
		case event.EventWarpEngaged:
			w.PushEvent(a.Type, &event.WarpEngagedPayload{Destination: w.Resources.Travel.Destination})
		case event.EventWarpArrived:
			if s.arrival.Destination == "" {
				return
			}
			arrival := s.arrival
			w.PushEvent(a.Type, &arrival)
		default:
			w.PushEvent(a.Type, nil)
		}
	})
}

// settle sells the whole holding at the pending destination's prices, nothing without a destination
// Kinds missing from the sheet sell at face value
func (s *TravelSystem) settle() {
	t := s.world.Resources.Travel
	s.arrival = event.WarpArrivedPayload{Destination: t.Destination}
	if t.Destination == "" {
		return
	}

	player, err := s.world.Player()
	if err != nil {
		s.statMissing.Add(1)
		return
	}

	holding, _ := s.world.Components.Holdings.Get(player)
	earned := SettlementValue(holding, t.Pending)

	s.world.Components.Holdings.Set(player, component.NewHolding())
	s.world.Components.Credits.Update(player, func(c *component.CreditsComponent) {
		c.Amount += earned
		s.arrival.Credits = c.Amount
	})
	s.arrival.CreditsEarned = earned
	t.Pending = nil
}

// SettlementValue returns the credits a holding sells for, round(quantity · multiplier) per kind
// A nil sheet sells everything at multiplier 1
func SettlementValue(holding component.HoldingComponent, sheet *component.PriceSheet) int {
	total := 0
	for kind, q := range holding.Quantities {
		mult := 1.0
		if sheet != nil {
			if m, ok := sheet.Multiplier(kind); ok {
				mult = m
			}
		}
		total += int(math.Round(float64(q) * mult))
	}
	return total
}

// despawnLevel queues every reset-scoped entity for destruction
func (s *TravelSystem) despawnLevel() {
	for _, e := range s.world.Components.Resettables.All() {
		s.world.QueueDestroy(e)
	}
}
