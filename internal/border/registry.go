package border

import (
	"sort"
	"strings"

	frescoerrors "github.com/frescoterm/fresco/pkg/errors"
)

// builtins is the full style catalog. The light, heavy, and double sets and
// the half-block and hidden variants follow the box-drawing conventions the
// terminal ecosystem has settled on; thick uses the full block so it reads
// as a solid bar even under fonts that thin out the heavy line glyphs.
var builtins = []Style{
	{
		Name:     "solid",
		TopLeft:  "┌", TopRight: "┐", BottomLeft: "└", BottomRight: "┘",
		Horizontal: "─", Vertical: "│",
		LeftT: "├", RightT: "┤", TopT: "┬", BottomT: "┴", Cross: "┼",
	},
	{
		Name:     "rounded",
		TopLeft:  "╭", TopRight: "╮", BottomLeft: "╰", BottomRight: "╯",
		Horizontal: "─", Vertical: "│",
		LeftT: "├", RightT: "┤", TopT: "┬", BottomT: "┴", Cross: "┼",
	},
	{
		Name:     "double",
		TopLeft:  "╔", TopRight: "╗", BottomLeft: "╚", BottomRight: "╝",
		Horizontal: "═", Vertical: "║",
		LeftT: "╠", RightT: "╣", TopT: "╦", BottomT: "╩", Cross: "╬",
	},
	{
		Name:     "heavy",
		TopLeft:  "┏", TopRight: "┓", BottomLeft: "┗", BottomRight: "┛",
		Horizontal: "━", Vertical: "┃",
		LeftT: "┣", RightT: "┫", TopT: "┳", BottomT: "┻", Cross: "╋",
	},
	{
		Name:     "thick",
		TopLeft:  "█", TopRight: "█", BottomLeft: "█", BottomRight: "█",
		Horizontal: "█", Vertical: "█",
		LeftT: "█", RightT: "█", TopT: "█", BottomT: "█", Cross: "█",
	},
	{
		Name:     "panel",
		TopLeft:  "╒", TopRight: "╕", BottomLeft: "╘", BottomRight: "╛",
		Horizontal: "═", Vertical: "│",
		LeftT: "╞", RightT: "╡", TopT: "╤", BottomT: "╧", Cross: "╪",
	},
	{
		Name:     "ascii",
		TopLeft:  "+", TopRight: "+", BottomLeft: "+", BottomRight: "+",
		Horizontal: "-", Vertical: "|",
		LeftT: "+", RightT: "+", TopT: "+", BottomT: "+", Cross: "+",
	},
	{
		Name:     "minimal",
		TopLeft:  "┌", TopRight: "┐", BottomLeft: "└", BottomRight: "┘",
		Horizontal: " ", Vertical: " ",
		LeftT: " ", RightT: " ", TopT: " ", BottomT: " ", Cross: " ",
	},
	{
		Name:     "dotted",
		TopLeft:  "·", TopRight: "·", BottomLeft: "·", BottomRight: "·",
		Horizontal: "┈", Vertical: "┊",
		LeftT: "·", RightT: "·", TopT: "·", BottomT: "·", Cross: "·",
	},
	{
		Name:     "hidden",
		TopLeft:  " ", TopRight: " ", BottomLeft: " ", BottomRight: " ",
		Horizontal: " ", Vertical: " ",
		LeftT: " ", RightT: " ", TopT: " ", BottomT: " ", Cross: " ",
	},
}

// Registry is the read-only name-to-style catalog. Construct it once with
// NewRegistry and share it by reference; there is no write path.
type Registry struct {
	styles map[string]Style
	names  []string
}

// NewRegistry builds the catalog of built-in styles.
func NewRegistry() *Registry {
	r := &Registry{styles: make(map[string]Style, len(builtins))}
	for _, s := range builtins {
		r.styles[s.Name] = s
		r.names = append(r.names, s.Name)
	}
	sort.Strings(r.names)
	return r
}

// Get resolves a style by case-insensitive name. Unknown names fail with a
// StyleNotFoundError listing the full catalog.
func (r *Registry) Get(name string) (Style, error) {
	s, ok := r.styles[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return Style{}, frescoerrors.NewStyleNotFoundError(name, r.Names())
	}
	return s, nil
}

// Names returns the sorted catalog of style names.
func (r *Registry) Names() []string {
	out := make([]string, len(r.names))
	copy(out, r.names)
	return out
}
