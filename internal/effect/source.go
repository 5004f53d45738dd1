// Package effect recolors rendered frames by character position. It never
// changes a frame's shape: line count, per-line column width, and every
// non-color byte survive each pass untouched.
package effect

import (
	"github.com/frescoterm/fresco/internal/color"
	frescoerrors "github.com/frescoterm/fresco/pkg/errors"
)

// Source is the closed set of color sources an effect can draw from: a flat
// color, a multi-stop gradient, or the fixed rainbow spectrum. The sealed
// method keeps the set closed so ColorAt switches stay exhaustive.
type Source interface {
	// ColorAt maps a normalized position in [0,1] to a color in the given
	// blend space.
	ColorAt(pos float64, space color.Space) color.RGB

	sealed()
}

// Flat paints every targeted position the same color.
type Flat struct {
	Color color.RGB
}

func (f Flat) ColorAt(float64, color.Space) color.RGB { return f.Color }
func (Flat) sealed()                                  {}

// Gradient interpolates across two or more stops. Construct with
// NewGradient so the stop-count invariant holds from the start.
type Gradient struct {
	stops []color.RGB
}

// NewGradient builds a gradient from at least two stops.
func NewGradient(stops ...color.RGB) (Gradient, error) {
	if len(stops) < 2 {
		return Gradient{}, frescoerrors.NewValidationError("gradient", "a gradient needs at least two color stops", nil)
	}
	copied := make([]color.RGB, len(stops))
	copy(copied, stops)
	return Gradient{stops: copied}, nil
}

// Stops returns a copy of the gradient's stops.
func (g Gradient) Stops() []color.RGB {
	out := make([]color.RGB, len(g.stops))
	copy(out, g.stops)
	return out
}

func (g Gradient) ColorAt(pos float64, space color.Space) color.RGB {
	return color.Ramp(g.stops, pos, space)
}
func (Gradient) sealed() {}

// Rainbow samples the fixed seven-stop spectrum.
type Rainbow struct{}

func (Rainbow) ColorAt(pos float64, _ color.Space) color.RGB {
	return color.Rainbow(pos)
}
func (Rainbow) sealed() {}
