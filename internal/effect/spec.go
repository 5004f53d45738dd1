package effect

import (
	"fmt"
	"strings"

	"github.com/frescoterm/fresco/internal/color"
	frescoerrors "github.com/frescoterm/fresco/pkg/errors"
)

// Direction is the spatial axis a gradient sweeps along.
type Direction int

const (
	// Vertical sweeps top to bottom, constant across a row.
	Vertical Direction = iota
	// Horizontal sweeps left to right, constant down a column.
	Horizontal
	// Diagonal sweeps northwest to southeast, varying per character.
	Diagonal
)

func (d Direction) String() string {
	switch d {
	case Horizontal:
		return "horizontal"
	case Diagonal:
		return "diagonal"
	default:
		return "vertical"
	}
}

// ParseDirection resolves a direction name supplied at the configuration
// boundary.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "vertical", "":
		return Vertical, nil
	case "horizontal":
		return Horizontal, nil
	case "diagonal":
		return Diagonal, nil
	}
	return Vertical, frescoerrors.NewValidationError("direction",
		fmt.Sprintf("unknown direction %q, expected vertical, horizontal, or diagonal", s), nil)
}

// Target restricts which character classes an effect colors.
type Target int

const (
	// TargetBoth colors border and content positions alike.
	TargetBoth Target = iota
	// TargetContent colors only content positions, including an embedded
	// title on the top edge.
	TargetContent
	// TargetBorder colors only border glyphs.
	TargetBorder
)

func (t Target) String() string {
	switch t {
	case TargetContent:
		return "content"
	case TargetBorder:
		return "border"
	default:
		return "both"
	}
}

// ParseTarget resolves a target name supplied at the configuration
// boundary.
func ParseTarget(s string) (Target, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "both", "all", "":
		return TargetBoth, nil
	case "content", "text":
		return TargetContent, nil
	case "border":
		return TargetBorder, nil
	}
	return TargetBoth, frescoerrors.NewValidationError("target",
		fmt.Sprintf("unknown target %q, expected content, border, or both", s), nil)
}

// Spec describes one recoloring pass: where the colors come from, which
// axis positions map along, which character class they land on, and the
// blend space multi-stop sources interpolate in.
type Spec struct {
	Source    Source
	Direction Direction
	Target    Target
	Space     color.Space
}
