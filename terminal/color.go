package terminal

import (
	"math"
	"os"
	"strings"

	"github.com/gdamore/tcell/v2"
)

// ColorMode indicates terminal color capability
type ColorMode uint8

const (
	ColorMode256       ColorMode = iota // xterm-256 palette
	ColorModeTrueColor                  // 24-bit RGB
)

// grayscaleStart is the first xterm grayscale index (232-255 = 24 shades)
const grayscaleStart = 232

// DetectColorMode determines terminal color capability from environment
func DetectColorMode() ColorMode {
	colorterm := os.Getenv("COLORTERM")
	if colorterm == "truecolor" || colorterm == "24bit" {
		return ColorModeTrueColor
	}

	for _, key := range []string{"KITTY_WINDOW_ID", "KONSOLE_VERSION", "ITERM_SESSION_ID", "ALACRITTY_WINDOW_ID", "WEZTERM_PANE"} {
		if os.Getenv(key) != "" {
			return ColorModeTrueColor
		}
	}

	term := strings.ToLower(os.Getenv("TERM"))
	if strings.Contains(term, "truecolor") || strings.Contains(term, "24bit") || strings.Contains(term, "direct") {
		return ColorModeTrueColor
	}
	return ColorMode256
}

// ParseColorMode resolves a -color flag value, anything unknown auto-detects
func ParseColorMode(s string) ColorMode {
	switch s {
	case "256":
		return ColorMode256
	case "truecolor", "true", "24bit":
		return ColorModeTrueColor
	default:
		return DetectColorMode()
	}
}

// Gray returns a gray level in [0, 1] in the given mode
func Gray(mode ColorMode, level float64) tcell.Color {
	level = min(max(level, 0), 1)
	if mode == ColorModeTrueColor {
		v := int32(math.Round(level * 255))
		return tcell.NewRGBColor(v, v, v)
	}
	return tcell.PaletteColor(grayscaleStart + int(math.Round(level*23)))
}

// Palette holds one style per drawable role
type Palette struct {
	Ship        tcell.Style
	Thrust      tcell.Style
	Enemy       tcell.Style
	Projectile  tcell.Style
	Pellet      tcell.Style
	Commodity   tcell.Style
	Destination tcell.Style
	Planet      tcell.Style
	Star        tcell.Style
	HUD         tcell.Style
	HUDAccent   tcell.Style
}

// NewPalette builds styles for mode
func NewPalette(mode ColorMode) Palette {
	base := tcell.StyleDefault.Background(tcell.ColorBlack)
	pick := func(rgb int32, fallback tcell.Color) tcell.Style {
		if mode == ColorModeTrueColor {
			return base.Foreground(tcell.NewHexColor(rgb))
		}
		return base.Foreground(fallback)
	}
	return Palette{
		Ship:        pick(0xE0F0FF, tcell.ColorWhite).Bold(true),
		Thrust:      pick(0xFF9030, tcell.ColorOrange),
		Enemy:       pick(0xFF4040, tcell.ColorRed),
		Projectile:  pick(0xFFE060, tcell.ColorYellow),
		Pellet:      pick(0x60FF80, tcell.ColorGreen),
		Commodity:   pick(0x40E0E0, tcell.ColorTeal),
		Destination: pick(0xE070FF, tcell.ColorFuchsia),
		Planet:      pick(0x4080FF, tcell.ColorBlue),
		Star:        pick(0x606878, tcell.ColorGray),
		HUD:         pick(0xC0C0C0, tcell.ColorSilver),
		HUDAccent:   pick(0xFFD040, tcell.ColorYellow).Bold(true),
	}
}
