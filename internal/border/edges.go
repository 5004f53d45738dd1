package border

import (
	"strings"

	"github.com/frescoterm/fresco/internal/textwidth"
)

// TitleSpan is the half-open column range [Start, End) that a title, with
// its one-space margins, occupies on a top edge. The zero value means no
// title was embedded.
type TitleSpan struct {
	Start int
	End   int
}

// Empty reports whether the span covers no columns.
func (t TitleSpan) Empty() bool {
	return t.Start == t.End
}

// Contains reports whether the column falls inside the span.
func (t TitleSpan) Contains(col int) bool {
	return col >= t.Start && col < t.End
}

// TopEdge draws the top edge of a width-column frame, embedding title
// centered between the corners when one is given. The title gets one space
// of margin on each side; a title too wide for that is hard-truncated, and
// when not even one titled column fits it is dropped. The returned span
// records exactly which columns the title and its margins landed on, so
// later recoloring never has to re-find the title by searching the text.
func (s Style) TopEdge(width int, title string) (string, TitleSpan) {
	if width < 2 {
		return s.Rule(width), TitleSpan{}
	}
	interior := width - 2
	if title == "" || interior < 3 {
		return s.TopLeft + s.Rule(interior) + s.TopRight, TitleSpan{}
	}

	if textwidth.Measure(title) > interior-2 {
		title = textwidth.Truncate(title, interior-2, "")
	}
	titled := textwidth.Measure(title) + 2
	left := (interior - titled) / 2
	right := interior - titled - left

	edge := s.TopLeft + s.Rule(left) + " " + title + " " + s.Rule(right) + s.TopRight
	span := TitleSpan{Start: 1 + left, End: 1 + left + titled}
	return edge, span
}

// BottomEdge draws the bottom edge of a width-column frame.
func (s Style) BottomEdge(width int) string {
	if width < 2 {
		return s.Rule(width)
	}
	return s.BottomLeft + s.Rule(width-2) + s.BottomRight
}

// Wrap encloses one interior line between the vertical glyphs.
func (s Style) Wrap(interior string) string {
	var b strings.Builder
	b.WriteString(s.Vertical)
	b.WriteString(interior)
	b.WriteString(s.Vertical)
	return b.String()
}
