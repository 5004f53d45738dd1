// Package compose joins already-rendered blocks into larger layouts. A
// block is a newline-joined string of equal-width lines, the shape both the
// frame and effect packages emit.
package compose

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Horizontal places blocks side by side, top-aligned, with gap blank
// columns between neighbors.
func Horizontal(gap int, blocks ...string) string {
	if len(blocks) == 0 {
		return ""
	}
	if gap < 0 {
		gap = 0
	}
	parts := make([]string, 0, len(blocks)*2-1)
	spacer := strings.Repeat(" ", gap)
	for i, b := range blocks {
		if i > 0 && gap > 0 {
			parts = append(parts, spacer)
		}
		parts = append(parts, b)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

// Vertical stacks blocks, left-aligned, with gap blank lines between
// neighbors.
func Vertical(gap int, blocks ...string) string {
	if len(blocks) == 0 {
		return ""
	}
	if gap < 0 {
		gap = 0
	}
	parts := make([]string, 0, len(blocks)*2-1)
	spacer := strings.TrimSuffix(strings.Repeat("\n", gap), "\n")
	for i, b := range blocks {
		if i > 0 && gap > 0 {
			parts = append(parts, spacer)
		}
		parts = append(parts, b)
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// Grid arranges blocks into rows of up to columns entries each.
func Grid(columns, gap int, blocks ...string) string {
	if columns < 1 {
		columns = 1
	}
	var rows []string
	for start := 0; start < len(blocks); start += columns {
		end := start + columns
		if end > len(blocks) {
			end = len(blocks)
		}
		rows = append(rows, Horizontal(gap, blocks[start:end]...))
	}
	return Vertical(gap, rows...)
}
