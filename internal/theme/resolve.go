package theme

import (
	"github.com/frescoterm/fresco/internal/border"
	"github.com/frescoterm/fresco/internal/color"
	"github.com/frescoterm/fresco/internal/effect"
	"github.com/frescoterm/fresco/internal/textwidth"
)

// Resolved is a theme after every name has been looked up: the engine
// packages consume these concrete values, never the raw strings.
type Resolved struct {
	Name      string
	Style     border.Style
	Source    effect.Source
	Direction effect.Direction
	Target    effect.Target
	Space     color.Space
	Padding   int
	Align     textwidth.Align
	Title     string
}

// Resolve validates t and looks up its border style and colors through the
// given registry and parser. Every color string passes through the color
// parser, the single boundary for caller-supplied colors.
func Resolve(t *Theme, registry *border.Registry, parser *color.Parser) (Resolved, error) {
	if err := Validate(t); err != nil {
		return Resolved{}, err
	}

	style, err := registry.Get(t.Border)
	if err != nil {
		return Resolved{}, err
	}

	var source effect.Source
	switch {
	case t.Rainbow:
		source = effect.Rainbow{}
	case len(t.Colors) == 1:
		c, err := parser.Parse(t.Colors[0])
		if err != nil {
			return Resolved{}, err
		}
		source = effect.Flat{Color: c}
	default:
		stops, err := parser.ParseAll(t.Colors)
		if err != nil {
			return Resolved{}, err
		}
		gradient, err := effect.NewGradient(stops...)
		if err != nil {
			return Resolved{}, err
		}
		source = gradient
	}

	direction, err := effect.ParseDirection(t.Direction)
	if err != nil {
		return Resolved{}, err
	}
	target, err := effect.ParseTarget(t.Target)
	if err != nil {
		return Resolved{}, err
	}
	space, err := color.ParseSpace(t.Space)
	if err != nil {
		return Resolved{}, err
	}
	align, err := textwidth.ParseAlign(t.Align)
	if err != nil {
		return Resolved{}, err
	}

	return Resolved{
		Name:      t.Name,
		Style:     style,
		Source:    source,
		Direction: direction,
		Target:    target,
		Space:     space,
		Padding:   t.Padding,
		Align:     align,
		Title:     t.Title,
	}, nil
}
