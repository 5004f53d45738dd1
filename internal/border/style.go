// Package border holds the read-only catalog of box-drawing glyph sets and
// the edge helpers built on them. Styles are constructed once at process
// start and never mutated; callers share the registry by reference.
package border

import "strings"

// Style is one named glyph set for drawing box edges. All eleven glyphs
// occupy exactly one terminal column.
type Style struct {
	Name string

	TopLeft     string
	TopRight    string
	BottomLeft  string
	BottomRight string
	Horizontal  string
	Vertical    string
	LeftT       string
	RightT      string
	TopT        string
	BottomT     string
	Cross       string
}

// Glyphs returns all eleven glyphs of the style. The Effect Engine uses
// this set to classify border positions.
func (s Style) Glyphs() []string {
	return []string{
		s.TopLeft, s.TopRight, s.BottomLeft, s.BottomRight,
		s.Horizontal, s.Vertical,
		s.LeftT, s.RightT, s.TopT, s.BottomT, s.Cross,
	}
}

// Rule draws a horizontal rule of n columns. Non-positive n yields "".
func (s Style) Rule(n int) string {
	if n <= 0 {
		return ""
	}
	return strings.Repeat(s.Horizontal, n)
}
