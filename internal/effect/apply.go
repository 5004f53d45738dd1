package effect

import (
	"strings"

	"github.com/muesli/termenv"

	"github.com/frescoterm/fresco/internal/frame"
	"github.com/frescoterm/fresco/internal/textwidth"
)

const (
	csi      = "\x1b["
	resetSeq = csi + "0m"
)

// Apply recolors f according to spec, producing a frame of identical shape.
// The profile is the terminal's color capability: colors are converted down
// to it, and the Ascii profile disables recoloring entirely, returning the
// input unchanged. Pre-existing styling codes in the frame's lines are
// preserved verbatim; only literal text gains color.
func Apply(f frame.Frame, spec Spec, profile termenv.Profile) frame.Frame {
	if profile == termenv.Ascii || spec.Source == nil || len(f.Lines) == 0 {
		return f
	}

	cls := newClassifier(f)
	bounds, any := targetBounds(f, spec.Target, cls)
	if !any {
		return f
	}

	lines := make([]string, len(f.Lines))
	for row, line := range f.Lines {
		lines[row] = recolorLine(line, row, spec, profile, cls, bounds)
	}
	return frame.Frame{Lines: lines, Width: f.Width, Style: f.Style, TitleSpan: f.TitleSpan}
}

// classifier decides whether the character at (row, col) counts as border
// or content. The style's eleven glyphs form the border set; the first and
// last lines are border regardless of glyph, except for the columns the top
// edge's title span covers, which stay content so a content-target gradient
// colors the title.
type classifier struct {
	glyphs  map[string]bool
	lastRow int
	span    frameSpan
}

type frameSpan struct {
	start, end int
}

func newClassifier(f frame.Frame) classifier {
	glyphs := make(map[string]bool, 11)
	for _, g := range f.Style.Glyphs() {
		glyphs[g] = true
	}
	return classifier{
		glyphs:  glyphs,
		lastRow: len(f.Lines) - 1,
		span:    frameSpan{start: f.TitleSpan.Start, end: f.TitleSpan.End},
	}
}

func (c classifier) isBorder(cluster string, row, col int) bool {
	if row == 0 {
		return col < c.span.start || col >= c.span.end || c.span.start == c.span.end
	}
	if row == c.lastRow {
		return true
	}
	return c.glyphs[cluster]
}

func (c classifier) targeted(target Target, cluster string, row, col int) bool {
	switch target {
	case TargetContent:
		return !c.isBorder(cluster, row, col)
	case TargetBorder:
		return c.isBorder(cluster, row, col)
	default:
		return true
	}
}

// bounds is the row and column extent of the targeted positions, used to
// normalize gradient positions over exactly the span being colored.
type bounds struct {
	minRow, maxRow int
	minCol, maxCol int
}

func targetBounds(f frame.Frame, target Target, cls classifier) (bounds, bool) {
	b := bounds{minRow: -1}
	found := false
	for row, line := range f.Lines {
		col := 0
		for _, tok := range textwidth.Tokenize(line) {
			if tok.Kind != textwidth.TokenLiteral {
				continue
			}
			for _, cl := range textwidth.SplitClusters(tok.Text) {
				if cls.targeted(target, cl.Text, row, col) {
					if !found {
						b = bounds{minRow: row, maxRow: row, minCol: col, maxCol: col}
						found = true
					} else {
						if row < b.minRow {
							b.minRow = row
						}
						if row > b.maxRow {
							b.maxRow = row
						}
						if col < b.minCol {
							b.minCol = col
						}
						if col > b.maxCol {
							b.maxCol = col
						}
					}
				}
				col += cl.Width
			}
		}
	}
	return b, found
}

// position maps (row, col) into [0,1] along the spec's direction,
// normalized over the targeted span. Degenerate spans collapse to 0.
func position(spec Spec, b bounds, row, col int) float64 {
	rowPos := func() float64 {
		if b.maxRow == b.minRow {
			return 0
		}
		return float64(row-b.minRow) / float64(b.maxRow-b.minRow)
	}
	colPos := func() float64 {
		if b.maxCol == b.minCol {
			return 0
		}
		return float64(col-b.minCol) / float64(b.maxCol-b.minCol)
	}
	switch spec.Direction {
	case Horizontal:
		return colPos()
	case Diagonal:
		// Both coordinates vary independently, so the mean is taken per
		// character for a continuous NW to SE sweep.
		return (rowPos() + colPos()) / 2
	default:
		return rowPos()
	}
}

// recolorLine walks one line's tokens, inserting color codes around the
// targeted literal clusters. Style-code tokens already in the line are
// re-emitted verbatim; an embedded reset clears the active color so it is
// re-asserted before the next targeted cluster. Emitting a code identical
// to the last one on the wire is suppressed, which is what makes repeated
// passes with the same spec byte-idempotent.
func recolorLine(line string, row int, spec Spec, profile termenv.Profile, cls classifier, b bounds) string {
	var out strings.Builder
	out.Grow(len(line) * 2)

	lastCode := ""
	active := false
	col := 0
	touched := false

	for _, tok := range textwidth.Tokenize(line) {
		if tok.Kind == textwidth.TokenStyleCode {
			out.WriteString(tok.Text)
			if isReset(tok.Text) {
				lastCode = ""
				active = false
			} else {
				lastCode = tok.Text
			}
			continue
		}
		for _, cl := range textwidth.SplitClusters(tok.Text) {
			if cls.targeted(spec.Target, cl.Text, row, col) {
				code := colorCode(spec, profile, b, row, col)
				if code != "" && code != lastCode {
					out.WriteString(code)
					lastCode = code
				}
				if code != "" {
					active = true
					touched = true
				}
			} else if active {
				out.WriteString(resetSeq)
				lastCode = ""
				active = false
			}
			out.WriteString(cl.Text)
			col += cl.Width
		}
	}

	if active {
		out.WriteString(resetSeq)
	}
	if !touched {
		return line
	}
	return out.String()
}

func colorCode(spec Spec, profile termenv.Profile, b bounds, row, col int) string {
	c := spec.Source.ColorAt(position(spec, b, row, col), spec.Space)
	converted := profile.Convert(termenv.RGBColor(c.Hex()))
	if converted == nil {
		return ""
	}
	seq := converted.Sequence(false)
	if seq == "" {
		return ""
	}
	return csi + seq + "m"
}

// isReset reports whether an escape sequence is an SGR reset: CSI m with no
// parameters or only zero parameters.
func isReset(code string) bool {
	if !strings.HasPrefix(code, csi) || !strings.HasSuffix(code, "m") {
		return false
	}
	params := code[len(csi) : len(code)-1]
	if params == "" {
		return true
	}
	for _, p := range strings.Split(params, ";") {
		if p != "" && p != "0" {
			return false
		}
	}
	return true
}
