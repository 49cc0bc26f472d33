package terminal

import (
	"fmt"
	"math"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/warpdrift/component"
	"github.com/lixenwraith/warpdrift/core"
	"github.com/lixenwraith/warpdrift/game"
)

const (
	// hudRows are reserved at the top for status and at the bottom for markets
	hudTopRows    = 2
	hudBottomRows = 1

	// starCell is the starfield hash lattice spacing in world units
	starCell = 48.0

	// starDensity is one star per this many lattice cells
	starDensity = 7

	// starParallax scales the starfield offset relative to the camera
	starParallax = 0.5
)

// shipGlyphs are indexed by facing octant counter-clockwise from +X
var shipGlyphs = [8]rune{'▶', '◥', '▲', '◤', '◀', '◣', '▼', '◢'}

// edgeArrows are indicator glyphs indexed by facing octant
var edgeArrows = [8]rune{'→', '↗', '↑', '↖', '←', '↙', '↓', '↘'}

// Renderer draws snapshots onto a tcell screen
// The world view is scaled so the configured viewport fills the area between the HUD rows
type Renderer struct {
	screen  tcell.Screen
	mode    ColorMode
	palette Palette

	// Footer is drawn right-aligned on the bottom row, e.g. the session id
	Footer string
}

// NewRenderer creates a renderer for an initialised screen
func NewRenderer(screen tcell.Screen, mode ColorMode) *Renderer {
	return &Renderer{
		screen:  screen,
		mode:    mode,
		palette: NewPalette(mode),
	}
}

// Draw renders one frame and shows it
func (r *Renderer) Draw(snap game.RenderSnapshot, hud game.HUDSnapshot) {
	r.screen.Clear()
	r.screen.Fill(' ', tcell.StyleDefault.Background(tcell.ColorBlack))

	v := r.view(snap)
	r.drawStarfield(v, snap.Starfield)
	for _, s := range snap.Entities {
		r.drawSprite(v, s)
	}
	r.drawOverlay(snap.Overlay)
	r.drawHUD(hud)

	r.screen.Show()
}

// view maps world coordinates to screen cells for one frame
type view struct {
	camera mgl64.Vec2
	half   mgl64.Vec2
	top    int
	width  int
	height int
}

func (r *Renderer) view(snap game.RenderSnapshot) view {
	w, h := r.screen.Size()
	return view{
		camera: snap.Camera,
		half:   snap.Viewport,
		top:    hudTopRows,
		width:  w,
		height: max(h-hudTopRows-hudBottomRows, 1),
	}
}

// cell returns the screen cell for a world point, ok is false outside the world area
func (v view) cell(p mgl64.Vec2) (int, int, bool) {
	if v.half.X() <= 0 || v.half.Y() <= 0 {
		return 0, 0, false
	}
	d := p.Sub(v.camera)
	x := int(math.Floor((d.X()/(2*v.half.X()) + 0.5) * float64(v.width)))
	// World Y points up, rows grow down
	y := v.top + int(math.Floor((0.5-d.Y()/(2*v.half.Y()))*float64(v.height)))
	if x < 0 || x >= v.width || y < v.top || y >= v.top+v.height {
		return 0, 0, false
	}
	return x, y, true
}

// drawStarfield draws lattice stars shifted by the parallax offset, independent of the camera
func (r *Renderer) drawStarfield(v view, offset mgl64.Vec2) {
	shift := offset.Mul(starParallax)
	x0 := int64(math.Floor((shift.X() - v.half.X()) / starCell))
	x1 := int64(math.Ceil((shift.X() + v.half.X()) / starCell))
	y0 := int64(math.Floor((shift.Y() - v.half.Y()) / starCell))
	y1 := int64(math.Ceil((shift.Y() + v.half.Y()) / starCell))

	for iy := y0; iy <= y1; iy++ {
		for ix := x0; ix <= x1; ix++ {
			if hashCell(ix, iy)%starDensity != 0 {
				continue
			}
			rel := mgl64.Vec2{float64(ix) * starCell, float64(iy) * starCell}.Sub(shift)
			if x, y, ok := v.cell(v.camera.Add(rel)); ok {
				r.screen.SetContent(x, y, '.', nil, r.palette.Star)
			}
		}
	}
}

// hashCell is a small integer mix for stable star placement
func hashCell(x, y int64) uint64 {
	h := uint64(x)*0x9e3779b97f4a7c15 ^ uint64(y)*0xc2b2ae3d27d4eb4f
	h ^= h >> 31
	h *= 0x94d049bb133111eb
	h ^= h >> 29
	return h
}

func octant(angle float64) int {
	o := int(math.Round(angle/(math.Pi/4))) % 8
	if o < 0 {
		o += 8
	}
	return o
}

func (r *Renderer) drawSprite(v view, s game.Sprite) {
	if !s.Visible {
		return
	}

	if s.Kind == game.SpriteIndicator {
		r.drawIndicator(v, s)
		return
	}

	x, y, ok := v.cell(s.Pos)
	if !ok {
		return
	}

	p := r.palette
	switch s.Kind {
	case game.SpriteShip:
		r.screen.SetContent(x, y, shipGlyphs[octant(s.Angle)], nil, p.Ship)
		if s.Thrusting {
			// Exhaust trails opposite the facing
			o := (octant(s.Angle) + 4) % 8
			dx, dy := octantStep(o)
			r.screen.SetContent(x+dx, y+dy, '*', nil, p.Thrust)
		}
	case game.SpriteEnemy:
		r.screen.SetContent(x, y, 'x', nil, p.Enemy)
	case game.SpriteProjectile:
		r.screen.SetContent(x, y, '·', nil, p.Projectile)
	case game.SpritePellet:
		r.screen.SetContent(x, y, '•', nil, p.Pellet)
	case game.SpriteCommodity:
		r.screen.SetContent(x, y, '◆', nil, p.Commodity)
		r.text(x+2, y, s.Label, p.Commodity)
	case game.SpriteDestination:
		r.screen.SetContent(x, y, 'O', nil, p.Destination)
		r.text(x+2, y, s.Label, p.Destination)
	case game.SpritePlanet:
		r.screen.SetContent(x, y, '@', nil, p.Planet)
	}
}

// octantStep returns the cell offset toward an octant, rows grow down
func octantStep(o int) (int, int) {
	steps := [8][2]int{{1, 0}, {1, -1}, {0, -1}, {-1, -1}, {-1, 0}, {-1, 1}, {0, 1}, {1, 1}}
	return steps[o][0], steps[o][1]
}

func (r *Renderer) drawIndicator(v view, s game.Sprite) {
	x, y, ok := v.cell(s.Pos)
	if !ok {
		return
	}

	style := r.palette.HUD
	switch s.Style {
	case component.IndicatorHome:
		style = r.palette.Planet
	case component.IndicatorCommodity:
		style = r.palette.Commodity
	case component.IndicatorDestination:
		style = r.palette.Destination
	}

	r.screen.SetContent(x, y, edgeArrows[octant(s.Angle)], nil, style)

	label := fmt.Sprintf("%s %.0f", s.Label, s.Distance)
	lx := x + 2
	if lx+len(label) > v.width {
		lx = x - 1 - len(label)
	}
	r.text(lx, y, label, style)
}

// drawOverlay tints every cell toward white, fully opaque hides the scene
func (r *Renderer) drawOverlay(opacity float64) {
	if opacity <= 0 {
		return
	}
	w, h := r.screen.Size()
	bg := Gray(r.mode, opacity)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			mainc, combc, style, _ := r.screen.GetContent(x, y)
			if opacity >= 1 {
				mainc, combc = ' ', nil
			}
			r.screen.SetContent(x, y, mainc, combc, style.Background(bg))
		}
	}
}

func (r *Renderer) drawHUD(hud game.HUDSnapshot) {
	w, h := r.screen.Size()
	p := r.palette

	status := fmt.Sprintf("Fuel %d/%d  Credits %d  Scanner %s  %s",
		hud.Fuel, hud.FuelMax, hud.Credits, scannerBar(hud), travelLabel(hud))
	r.text(0, 0, status, p.HUD)
	if hud.Fuel == hud.FuelMax && hud.Mode == core.ModeExploring && hud.Phase == core.PhaseIdle {
		r.text(len(status)+2, 0, "WARP READY", p.HUDAccent)
	}

	var hold strings.Builder
	hold.WriteString("Hold:")
	if len(hud.Holdings) == 0 {
		hold.WriteString(" empty")
	}
	for _, line := range hud.Holdings {
		fmt.Fprintf(&hold, " %s %d", line.Kind, line.Amount)
	}
	r.text(0, 1, hold.String(), p.HUD)

	var markets strings.Builder
	for i, d := range hud.Destinations {
		if i > 0 {
			markets.WriteString("  ")
		}
		markets.WriteString(d.Label + ":")
		for _, e := range d.Prices.Entries {
			fmt.Fprintf(&markets, " %s x%.1f", e.Kind, e.Multiplier)
		}
	}
	r.text(0, h-1, markets.String(), p.Destination)

	if r.Footer != "" {
		r.text(w-len(r.Footer), h-1, r.Footer, p.Star)
	}
}

func scannerBar(hud game.HUDSnapshot) string {
	if !hud.ScannerActive {
		return "[  idle  ]"
	}
	const width = 8
	filled := int(math.Round(hud.ScannerPercent * width))
	return "[" + strings.Repeat("#", filled) + strings.Repeat("-", width-filled) + "]"
}

func travelLabel(hud game.HUDSnapshot) string {
	if hud.Phase == core.PhaseIdle {
		return hud.Mode.String()
	}
	if hud.Destination != "" {
		return fmt.Sprintf("%s %s -> %s", hud.Mode, hud.Phase, hud.Destination)
	}
	return fmt.Sprintf("%s %s", hud.Mode, hud.Phase)
}

// text writes s from (x, y), clipped to the screen
func (r *Renderer) text(x, y int, s string, style tcell.Style) {
	w, h := r.screen.Size()
	if y < 0 || y >= h {
		return
	}
	for _, c := range s {
		if x >= w {
			return
		}
		if x >= 0 {
			r.screen.SetContent(x, y, c, nil, style)
		}
		x++
	}
}
