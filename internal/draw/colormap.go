package draw

import (
	"fmt"
	"strings"

	"github.com/Qinka/shanan-cv/internal/tensor"
)

// Colormap is a closed set of scalar-to-RGB lookup tables. Each maps a
// value in [0, 1] to a color by linear interpolation between fixed
// anchors; inputs outside [0, 1] are clamped.
type Colormap int

// Supported colormaps.
const (
	Jet Colormap = iota
	Hot
	Viridis
)

// String returns the canonical lowercase name.
func (m Colormap) String() string {
	switch m {
	case Jet:
		return "jet"
	case Hot:
		return "hot"
	case Viridis:
		return "viridis"
	default:
		return "unknown"
	}
}

// ParseColormap resolves a name (case-insensitive) to a Colormap. Unknown
// names are rejected rather than falling back to a default.
func ParseColormap(name string) (Colormap, error) {
	switch strings.ToLower(name) {
	case "jet":
		return Jet, nil
	case "hot":
		return Hot, nil
	case "viridis":
		return Viridis, nil
	default:
		return 0, fmt.Errorf("%w: unknown colormap %q", tensor.ErrInvalidParameter, name)
	}
}

// Evenly spaced interpolation anchors per colormap.
var colormapAnchors = map[Colormap][]Color{
	Jet: {
		{R: 0, G: 0, B: 0.5},
		{R: 0, G: 0, B: 1},
		{R: 0, G: 0.5, B: 1},
		{R: 0, G: 1, B: 1},
		{R: 0.5, G: 1, B: 0.5},
		{R: 1, G: 1, B: 0},
		{R: 1, G: 0.5, B: 0},
		{R: 1, G: 0, B: 0},
		{R: 0.5, G: 0, B: 0},
	},
	Hot: {
		{R: 0, G: 0, B: 0},
		{R: 1, G: 0, B: 0},
		{R: 1, G: 1, B: 0},
		{R: 1, G: 1, B: 1},
	},
	Viridis: {
		{R: 0.267, G: 0.005, B: 0.329},
		{R: 0.283, G: 0.141, B: 0.458},
		{R: 0.254, G: 0.265, B: 0.530},
		{R: 0.207, G: 0.372, B: 0.553},
		{R: 0.164, G: 0.471, B: 0.558},
		{R: 0.128, G: 0.567, B: 0.551},
		{R: 0.135, G: 0.659, B: 0.518},
		{R: 0.267, G: 0.749, B: 0.441},
		{R: 0.478, G: 0.821, B: 0.318},
		{R: 0.741, G: 0.873, B: 0.150},
		{R: 0.993, G: 0.906, B: 0.144},
	},
}

// Lookup maps a scalar in [0, 1] (clamped) through the colormap's
// interpolated anchor table.
func (m Colormap) Lookup(v float32) Color {
	anchors, ok := colormapAnchors[m]
	if !ok {
		return Color{}
	}
	if v < 0 {
		v = 0
	} else if v > 1 {
		v = 1
	}
	pos := float64(v) * float64(len(anchors)-1)
	i := int(pos)
	if i >= len(anchors)-1 {
		return anchors[len(anchors)-1]
	}
	f := float32(pos - float64(i))
	a, b := anchors[i], anchors[i+1]
	return Color{
		R: a.R + (b.R-a.R)*f,
		G: a.G + (b.G-a.G)*f,
		B: a.B + (b.B-a.B)*f,
	}
}
