package textwidth

// SplitGraphemes splits s into slice elements of one printable grapheme
// cluster each, with any immediately following run of styling codes merged
// into the same element. A run of codes at the very start of s attaches to
// the first printable cluster instead, so a code always travels with the
// text it styles and width-based slicing never has to step over a code on
// its own. Joining the elements reproduces s.
func SplitGraphemes(s string) []string {
	if s == "" {
		return nil
	}
	tokens := Tokenize(s)

	var out []string
	pending := ""
	for _, t := range tokens {
		if t.Kind == TokenStyleCode {
			if len(out) == 0 {
				pending += t.Text
			} else {
				out[len(out)-1] += t.Text
			}
			continue
		}
		for _, c := range SplitClusters(t.Text) {
			out = append(out, pending+c.Text)
			pending = ""
		}
	}
	if pending != "" {
		// Nothing printable followed the leading codes.
		out = append(out, pending)
	}
	return out
}
