package textwidth

import (
	"fmt"
	"strings"

	frescoerrors "github.com/frescoterm/fresco/pkg/errors"
)

// Align selects which side of a padded field the text sticks to.
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

// String returns the lower-case name of the alignment.
func (a Align) String() string {
	switch a {
	case AlignCenter:
		return "center"
	case AlignRight:
		return "right"
	default:
		return "left"
	}
}

// ParseAlign resolves an alignment name supplied at the configuration
// boundary.
func ParseAlign(s string) (Align, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "left", "":
		return AlignLeft, nil
	case "center", "centre":
		return AlignCenter, nil
	case "right":
		return AlignRight, nil
	}
	return AlignLeft, frescoerrors.NewValidationError("align", fmt.Sprintf("unknown alignment %q, expected left, center, or right", s), nil)
}

// Pad fills s with spaces so that the result measures exactly width columns.
// Center alignment gives any odd leftover column to the right side. Text
// already wider than width is a caller error, reported as a LayoutError.
func Pad(s string, width int, align Align) (string, error) {
	w := Measure(s)
	if w > width {
		return "", frescoerrors.NewLayoutError("text measures %d columns, wider than the %d-column field", w, width)
	}
	fill := width - w
	if fill == 0 {
		return s, nil
	}
	switch align {
	case AlignRight:
		return strings.Repeat(" ", fill) + s, nil
	case AlignCenter:
		left := fill / 2
		return strings.Repeat(" ", left) + s + strings.Repeat(" ", fill-left), nil
	default:
		return s + strings.Repeat(" ", fill), nil
	}
}

// Truncate removes whole grapheme clusters from the end of s until suffix
// fits inside width columns, then appends suffix. A cluster is never split:
// when a two-column cluster straddles the cut, it is dropped entirely and
// the result may measure one column short. When width cannot even hold the
// suffix, the suffix itself is truncated. Truncation never fails.
func Truncate(s string, width int, suffix string) string {
	if width <= 0 {
		return ""
	}
	if Measure(s) <= width {
		return s
	}
	suffixWidth := Measure(suffix)
	if suffixWidth > width {
		return Truncate(suffix, width, "")
	}
	room := width - suffixWidth
	var b strings.Builder
	used := 0
	for _, g := range SplitGraphemes(s) {
		w := Measure(g)
		if used+w > room {
			break
		}
		b.WriteString(g)
		used += w
	}
	b.WriteString(suffix)
	return b.String()
}
