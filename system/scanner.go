package system

import (
	"slices"
	"sync/atomic"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/warpdrift/component"
	"github.com/lixenwraith/warpdrift/core"
	"github.com/lixenwraith/warpdrift/engine"
	"github.com/lixenwraith/warpdrift/event"
	"github.com/lixenwraith/warpdrift/parameter"
	"github.com/lixenwraith/warpdrift/vmath"
)

// ScannerSystem reveals level targets, periodically the nearest one and immediately any that come into view
//
// Commodities are revealed before destinations. The timer pauses when the pool it drew from
// runs dry and resumes once every commodity has been collected while destinations remain hidden
type ScannerSystem struct {
	world *engine.World

	statRevealed *atomic.Int64
	statActive   *atomic.Bool
	statMissing  *atomic.Int64
}

// NewScannerSystem creates a new scanner system
func NewScannerSystem(world *engine.World) engine.System {
	reg := world.Resources.Status
	s := &ScannerSystem{
		world:        world,
		statRevealed: reg.Ints.Get("scanner.revealed"),
		statActive:   reg.Bools.Get("scanner.active"),
		statMissing:  reg.Ints.Get(statMissingSingleton),
	}
	s.Init()
	return s
}

func (s *ScannerSystem) Init() {
	s.statRevealed.Store(0)
}

func (s *ScannerSystem) Name() string {
	return "scanner"
}

func (s *ScannerSystem) Priority() int {
	return parameter.PriorityScanner
}

func (s *ScannerSystem) Update() {
	sc := s.world.Resources.Scanner
	defer func() { s.statActive.Store(sc.Active()) }()

	if s.world.Resources.Travel.Mode != core.ModeExploring {
		return
	}

	s.prune()

	sc.Timer.Tick(s.world.Resources.Time.Delta)
	if sc.Timer.JustFinished() {
		s.revealNearest()
	}

	s.revealVisible()

	if sc.Timer.Paused() && s.world.Components.Commodities.Count() == 0 && len(sc.Destinations) > 0 {
		sc.Timer.Unpause()
	}
}

// prune drops pooled handles whose entity no longer exists
func (s *ScannerSystem) prune() {
	sc := s.world.Resources.Scanner
	gone := func(e core.Entity) bool { return !s.world.Alive(e) }
	sc.Commodities = slices.DeleteFunc(sc.Commodities, gone)
	sc.Destinations = slices.DeleteFunc(sc.Destinations, gone)
}

func (s *ScannerSystem) revealNearest() {
	sc := s.world.Resources.Scanner

	_, playerT, err := s.world.PlayerTransform()
	if err != nil {
		s.statMissing.Add(1)
		return
	}

	pool := &sc.Commodities
	if len(*pool) == 0 {
		pool = &sc.Destinations
	}
	if len(*pool) == 0 {
		sc.Timer.Reset()
		sc.Timer.Pause()
		return
	}

	nearest := core.NoEntity
	best := 0.0
	for _, e := range *pool {
		t, ok := s.world.Components.Transforms.Get(e)
		if !ok {
			continue
		}
		d := vmath.DistanceSq(t.Pos, playerT.Pos)
		if nearest == core.NoEntity || d < best {
			nearest, best = e, d
		}
	}
	if nearest == core.NoEntity {
		return
	}

	s.reveal(nearest, false)

	if len(*pool) == 0 {
		sc.Timer.Reset()
		sc.Timer.Pause()
	}
}

// revealVisible reveals every pooled target inside the camera viewport
func (s *ScannerSystem) revealVisible() {
	camera, err := s.world.Camera()
	if err != nil {
		s.statMissing.Add(1)
		return
	}
	camT, ok := s.world.Components.Transforms.Get(camera)
	if !ok {
		return
	}

	vp := s.world.Resources.Config.Viewport
	half := mgl64.Vec2{vp.HalfWidth, vp.HalfHeight}

	sc := s.world.Resources.Scanner
	var visible []core.Entity
	for _, e := range slices.Concat(sc.Commodities, sc.Destinations) {
		t, ok := s.world.Components.Transforms.Get(e)
		if !ok {
			continue
		}
		if vmath.InViewport(vmath.WorldToNDC(camT.Pos, half, t.Pos)) {
			visible = append(visible, e)
		}
	}

	for _, e := range visible {
		s.reveal(e, true)
	}
}

// reveal spawns the target's indicator and moves it out of the candidate pools
func (s *ScannerSystem) reveal(e core.Entity, proximity bool) {
	sc := s.world.Resources.Scanner
	isTarget := func(c core.Entity) bool { return c == e }
	sc.Commodities = slices.DeleteFunc(sc.Commodities, isTarget)
	sc.Destinations = slices.DeleteFunc(sc.Destinations, isTarget)

	r, ok := s.world.Components.Revealables.Get(e)
	if !ok {
		r = component.RevealableComponent{Style: component.IndicatorCommodity}
	}
	SpawnIndicator(s.world, e, r)

	if d, ok := s.world.Components.Destinations.Get(e); ok {
		discovery := s.world.Resources.Discovery
		discovery.Destinations = append(discovery.Destinations, engine.DiscoveredDestination{
			Entity: e,
			Label:  d.Label,
			Prices: d.Prices.Clone(),
		})
	}

	s.statRevealed.Add(1)
	s.world.PushEvent(event.EventTargetRevealed, &event.TargetRevealedPayload{
		Target:    e,
		Style:     r.Style,
		Label:     r.Label,
		Proximity: proximity,
	})
}
