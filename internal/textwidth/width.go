// Package textwidth measures, splits, pads, and truncates terminal text by
// exact on-screen column count. Embedded styling codes count as zero columns,
// grapheme clusters are never split, and width lookups go through the same
// tables everywhere so padding and measuring can never disagree.
package textwidth

import (
	"strings"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// Cluster is one printable grapheme cluster together with the number of
// terminal columns it occupies.
type Cluster struct {
	Text  string
	Width int
}

// Measure returns the number of terminal columns s occupies. Styling codes
// count zero; control and otherwise unknown units degrade to one column
// instead of failing, so one odd character never blocks a whole block from
// rendering.
func Measure(s string) int {
	if isPlainASCII(s) {
		return len(s)
	}
	total := 0
	for _, t := range Tokenize(s) {
		if t.Kind != TokenLiteral {
			continue
		}
		for _, c := range SplitClusters(t.Text) {
			total += c.Width
		}
	}
	return total
}

// SplitClusters segments printable text (no styling codes) into grapheme
// clusters with their widths.
func SplitClusters(s string) []Cluster {
	if s == "" {
		return nil
	}
	clusters := make([]Cluster, 0, len(s))
	state := -1
	var cl string
	var w int
	for len(s) > 0 {
		cl, s, w, state = uniseg.FirstGraphemeClusterInString(s, state)
		clusters = append(clusters, Cluster{Text: cl, Width: clusterWidth(cl, w)})
	}
	return clusters
}

// clusterWidth resolves the column width of one grapheme cluster. Single
// runes go through runewidth's table, multi-rune clusters take uniseg's
// monospace width, and emoji-presentation sequences consult the empirical
// override table first. Anything non-positive degrades to one column.
func clusterWidth(cluster string, unisegWidth int) int {
	r, size := utf8.DecodeRuneInString(cluster)
	if size == len(cluster) {
		if w := runewidth.RuneWidth(r); w > 0 {
			return w
		}
		return 1
	}
	if strings.HasSuffix(cluster, vs16) && len(cluster) == size+len(vs16) {
		if w, ok := presentationWidths[r]; ok {
			return w
		}
	}
	if unisegWidth > 0 {
		return unisegWidth
	}
	return 1
}

// isPlainASCII reports whether every byte of s is a printable ASCII
// character, the fast path for Measure.
func isPlainASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < 0x20 || s[i] > 0x7e {
			return false
		}
	}
	return true
}
