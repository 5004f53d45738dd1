// Package frame lays out bordered, titled, padded, aligned rectangular text
// blocks to an exact column width.
package frame

import (
	"strings"

	"github.com/frescoterm/fresco/internal/border"
	"github.com/frescoterm/fresco/internal/textwidth"
	frescoerrors "github.com/frescoterm/fresco/pkg/errors"
)

// truncationSuffix marks content lines that were too wide for the interior.
const truncationSuffix = "…"

// Spec describes one frame to render. Border-style resolution happens at
// the caller's boundary: Spec carries the resolved style, never a name.
// Width 0 means fit to the content; MaxWidth 0 means unbounded.
type Spec struct {
	Content  []string
	Title    string
	Style    border.Style
	Width    int
	Padding  int
	Align    textwidth.Align
	MinWidth int
	MaxWidth int
}

// Frame is a rendered block: the top edge, the padded content lines, and
// the bottom edge, every line measuring exactly Width columns. TitleSpan
// records where the title landed on the top edge so recoloring can treat
// those columns as content without re-finding the title text.
type Frame struct {
	Lines     []string
	Width     int
	Style     border.Style
	TitleSpan border.TitleSpan
}

// Render lays out spec into a Frame. Structurally invalid sizing fails with
// a LayoutError before any line is produced; oversized content never fails,
// it is truncated to fit.
func Render(spec Spec) (Frame, error) {
	if err := validate(spec); err != nil {
		return Frame{}, err
	}

	lines := normalize(spec.Content)
	width := spec.Width
	if width == 0 {
		width = autoWidth(lines, spec)
	}

	interior := width - 2 - 2*spec.Padding
	if interior < 1 {
		return Frame{}, frescoerrors.NewLayoutError(
			"width %d leaves no room for content after borders and padding %d", width, spec.Padding)
	}

	out := make([]string, 0, len(lines)+2)
	top, span := spec.Style.TopEdge(width, spec.Title)
	out = append(out, top)

	gutter := strings.Repeat(" ", spec.Padding)
	for _, line := range lines {
		if textwidth.Measure(line) > interior {
			line = textwidth.Truncate(line, interior, truncationSuffix)
		}
		padded, err := textwidth.Pad(line, interior, spec.Align)
		if err != nil {
			return Frame{}, err
		}
		out = append(out, spec.Style.Wrap(gutter+padded+gutter))
	}

	out = append(out, spec.Style.BottomEdge(width))
	return Frame{Lines: out, Width: width, Style: spec.Style, TitleSpan: span}, nil
}

func validate(spec Spec) error {
	switch {
	case spec.Width < 0:
		return frescoerrors.NewLayoutError("width must not be negative, got %d", spec.Width)
	case spec.Padding < 0:
		return frescoerrors.NewLayoutError("padding must not be negative, got %d", spec.Padding)
	case spec.MinWidth < 0:
		return frescoerrors.NewLayoutError("minimum width must not be negative, got %d", spec.MinWidth)
	case spec.MaxWidth < 0:
		return frescoerrors.NewLayoutError("maximum width must not be negative, got %d", spec.MaxWidth)
	case spec.MaxWidth > 0 && spec.MinWidth > spec.MaxWidth:
		return frescoerrors.NewLayoutError("minimum width %d exceeds maximum width %d", spec.MinWidth, spec.MaxWidth)
	}
	return nil
}

// normalize splits embedded line breaks so every element is one logical
// line. CRLF pairs collapse to a single break; empty content still renders
// one blank interior line.
func normalize(content []string) []string {
	var out []string
	for _, c := range content {
		c = strings.ReplaceAll(c, "\r\n", "\n")
		out = append(out, strings.Split(c, "\n")...)
	}
	if len(out) == 0 {
		out = []string{""}
	}
	return out
}

// autoWidth fits the frame to its widest line, reserving title room, then
// clamps to the spec's bounds.
func autoWidth(lines []string, spec Spec) int {
	content := 0
	for _, line := range lines {
		if w := textwidth.Measure(line); w > content {
			content = w
		}
	}
	if spec.Title != "" {
		if w := textwidth.Measure(spec.Title) + 4; w > content {
			content = w
		}
	}
	width := content + 2 + 2*spec.Padding
	if width < spec.MinWidth {
		width = spec.MinWidth
	}
	if spec.MaxWidth > 0 && width > spec.MaxWidth {
		width = spec.MaxWidth
	}
	return width
}
