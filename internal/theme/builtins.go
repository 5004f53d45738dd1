package theme

// Builtins returns the preset themes shipped with the application, in
// display order. Each resolves through the same registry and parser
// boundaries as user-supplied themes; nothing here bypasses validation.
func Builtins() []Theme {
	return []Theme{
		{
			Name:      "ocean",
			Border:    "rounded",
			Colors:    []string{"#00F5FF", "#0077BE", "#003366"},
			Direction: "vertical",
			Target:    "both",
			Space:     "lab",
			Padding:   1,
		},
		{
			Name:      "sunset",
			Border:    "solid",
			Colors:    []string{"#FFD700", "#FF6347", "#8B008B"},
			Direction: "diagonal",
			Target:    "both",
			Padding:   1,
		},
		{
			Name:      "forest",
			Border:    "double",
			Colors:    []string{"forest green", "#9ACD32"},
			Direction: "vertical",
			Target:    "border",
			Padding:   1,
		},
		{
			Name:      "fire",
			Border:    "heavy",
			Colors:    []string{"#FF0000", "#FFA500", "#FFFF00"},
			Direction: "horizontal",
			Target:    "both",
			Padding:   1,
		},
		{
			Name:    "mono",
			Border:  "ascii",
			Colors:  []string{"#C0C0C0"},
			Target:  "border",
			Padding: 1,
		},
		{
			Name:      "pride",
			Border:    "solid",
			Rainbow:   true,
			Direction: "vertical",
			Target:    "both",
			Padding:   1,
		},
	}
}

// Builtin looks up one preset by name.
func Builtin(name string) (*Theme, bool) {
	for _, t := range Builtins() {
		if t.Name == name {
			theme := t
			return &theme, true
		}
	}
	return nil, false
}
