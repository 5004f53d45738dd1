package color

import (
	"fmt"
	"strings"
)

// Space selects the blend space gradients interpolate in. SpaceRGB keeps the
// exact truncating per-channel math of Interpolate; the perceptual spaces
// trade that bit-exactness for smoother ramps.
type Space int

const (
	SpaceRGB Space = iota
	SpaceLab
	SpaceHCL
)

// String returns the lower-case name of the blend space.
func (s Space) String() string {
	switch s {
	case SpaceLab:
		return "lab"
	case SpaceHCL:
		return "hcl"
	default:
		return "rgb"
	}
}

// ParseSpace resolves a blend-space name supplied at the configuration
// boundary.
func ParseSpace(s string) (Space, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "rgb", "":
		return SpaceRGB, nil
	case "lab":
		return SpaceLab, nil
	case "hcl":
		return SpaceHCL, nil
	}
	return SpaceRGB, fmt.Errorf("unknown blend space %q, expected rgb, lab, or hcl", s)
}

// Blend interpolates a toward b by t in the given space. t is clamped to
// [0,1].
func Blend(a, b RGB, t float64, space Space) RGB {
	t = clamp01(t)
	switch space {
	case SpaceLab:
		return fromColorful(a.colorful().BlendLab(b.colorful(), t).Clamped())
	case SpaceHCL:
		return fromColorful(a.colorful().BlendHcl(b.colorful(), t).Clamped())
	default:
		return Interpolate(a, b, t)
	}
}

// Ramp samples a multi-stop gradient at pos in [0,1]. The stops are spaced
// evenly; pos is clamped at the ends and blended linearly within the
// enclosing stop pair. A single-stop ramp is a flat color.
func Ramp(stops []RGB, pos float64, space Space) RGB {
	switch len(stops) {
	case 0:
		return RGB{}
	case 1:
		return stops[0]
	}
	pos = clamp01(pos)
	scaled := pos * float64(len(stops)-1)
	i := int(scaled)
	if i >= len(stops)-1 {
		return stops[len(stops)-1]
	}
	return Blend(stops[i], stops[i+1], scaled-float64(i), space)
}

// rainbowStops is the fixed seven-stop spectrum, red through violet, at the
// CSS keyword values for each stop.
var rainbowStops = []RGB{
	{255, 0, 0},     // red
	{255, 165, 0},   // orange
	{255, 255, 0},   // yellow
	{0, 128, 0},     // green
	{0, 0, 255},     // blue
	{75, 0, 130},    // indigo
	{238, 130, 238}, // violet
}

// Rainbow maps a position in [0,1] onto the fixed seven-stop spectrum.
// Positions outside the range clamp to the nearest end.
func Rainbow(pos float64) RGB {
	return Ramp(rainbowStops, pos, SpaceRGB)
}
