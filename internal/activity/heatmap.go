package activity

import "fmt"

// DefaultHeatMax is the value at which a heatmap cell saturates to the hottest
// color. The unit is domain-specific intensity (miles per hour cell).
const DefaultHeatMax = 4.0

type rgb struct{ r, g, b float64 }

// Gradient stops, cold to hot: blue, green, yellow, orange, red.
var heatStops = []rgb{
	{59, 130, 246},
	{34, 197, 94},
	{234, 179, 8},
	{249, 115, 22},
	{239, 68, 68},
}

// HeatColor maps a cell value onto the 5-stop gradient, scaled against max.
// Values at or above max clamp to the hottest stop; max <= 0 falls back to
// DefaultHeatMax.
func HeatColor(value, max float64) string {
	if max <= 0 {
		max = DefaultHeatMax
	}
	t := value / max
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}

	segments := float64(len(heatStops) - 1)
	pos := t * segments
	i := int(pos)
	if i >= len(heatStops)-1 {
		return hex(heatStops[len(heatStops)-1])
	}
	frac := pos - float64(i)
	lo, hi := heatStops[i], heatStops[i+1]
	return hex(rgb{
		r: lo.r + (hi.r-lo.r)*frac,
		g: lo.g + (hi.g-lo.g)*frac,
		b: lo.b + (hi.b-lo.b)*frac,
	})
}

func hex(c rgb) string {
	return fmt.Sprintf("#%02x%02x%02x", int(c.r+0.5), int(c.g+0.5), int(c.b+0.5))
}
