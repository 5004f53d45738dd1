// Package color parses heterogeneous color notations to a canonical RGB
// value and interpolates between colors. Every caller-supplied color string
// in the application passes through Parse before use; everything downstream
// works on resolved RGB triples.
package color

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
)

// RGB is one color as three 0-255 channels. The canonical external form is
// the 6-digit upper-case hex string produced by Hex.
type RGB struct {
	R, G, B uint8
}

// Hex renders the canonical #RRGGBB form.
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

func (c RGB) String() string {
	return c.Hex()
}

// colorful converts to go-colorful's 0-1 float representation.
func (c RGB) colorful() colorful.Color {
	return colorful.Color{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
	}
}

func fromColorful(c colorful.Color) RGB {
	return RGB{
		R: channel(c.R * 255),
		G: channel(c.G * 255),
		B: channel(c.B * 255),
	}
}

func channel(v float64) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(v)
}

// Interpolate blends a toward b by t in plain RGB space. t is clamped to
// [0,1]; 0 returns a exactly and 1 returns b exactly. The per-channel math
// truncates, so the midpoint of black and white is #7F7F7F.
func Interpolate(a, b RGB, t float64) RGB {
	t = clamp01(t)
	lerp := func(x, y uint8) uint8 {
		return uint8(float64(x) + (float64(y)-float64(x))*t)
	}
	return RGB{R: lerp(a.R, b.R), G: lerp(a.G, b.G), B: lerp(a.B, b.B)}
}

// Distance is the Euclidean distance between a and b in 0-255 RGB space.
// It is zero exactly when the colors are equal.
func Distance(a, b RGB) float64 {
	// go-colorful computes the same metric over 0-1 channels; rescale back.
	return a.colorful().DistanceRgb(b.colorful()) * 255
}

func clamp01(t float64) float64 {
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}
