package route

import (
	"fmt"
	"math"
	"strings"
)

// Logical viewport for elevation profile paths. Renderers scale the path to
// their own pixel size.
const (
	profileWidth  = 800.0
	profileHeight = 120.0
	profilePad    = 0.08
)

// Profile is a render-ready elevation profile: the elevation band padded by
// 8% on each side and an SVG path in an 800x120 logical viewport.
type Profile struct {
	MinElevation float64 `json:"min_elevation"`
	MaxElevation float64 `json:"max_elevation"`
	Width        float64 `json:"width"`
	Height       float64 `json:"height"`
	Path         string  `json:"path"`
	Samples      int     `json:"samples"`
}

func BuildProfile(coords []Coord) Profile {
	p := Profile{Width: profileWidth, Height: profileHeight, Samples: len(coords)}
	if len(coords) == 0 {
		return p
	}

	min, max := coords[0].Elevation, coords[0].Elevation
	for _, c := range coords[1:] {
		if c.Elevation < min {
			min = c.Elevation
		}
		if c.Elevation > max {
			max = c.Elevation
		}
	}
	pad := (max - min) * profilePad
	p.MinElevation = min - pad
	p.MaxElevation = max + pad

	span := p.MaxElevation - p.MinElevation
	var b strings.Builder
	for i, c := range coords {
		x := 0.0
		if len(coords) > 1 {
			x = float64(i) / float64(len(coords)-1) * profileWidth
		}
		y := profileHeight / 2
		if span > 0 {
			y = profileHeight - (c.Elevation-p.MinElevation)/span*profileHeight
		}
		if i == 0 {
			fmt.Fprintf(&b, "M %.2f %.2f", x, y)
		} else {
			fmt.Fprintf(&b, " L %.2f %.2f", x, y)
		}
	}
	p.Path = b.String()
	return p
}

// SampleAt inverse-maps a horizontal position in the logical viewport back to
// the nearest sample index.
func (p Profile) SampleAt(x float64) int {
	if p.Samples <= 1 {
		return 0
	}
	t := x / p.Width
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	return int(math.Round(t * float64(p.Samples-1)))
}
