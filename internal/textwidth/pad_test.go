package textwidth

import (
	"testing"

	"github.com/stretchr/testify/require"

	frescoerrors "github.com/frescoterm/fresco/pkg/errors"
)

func TestPadAlignments(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		input string
		width int
		align Align
		want  string
	}{
		{"left", "ab", 5, AlignLeft, "ab   "},
		{"right", "ab", 5, AlignRight, "   ab"},
		{"center even", "ab", 6, AlignCenter, "  ab  "},
		{"center odd leftover goes right", "ab", 5, AlignCenter, " ab  "},
		{"exact fit", "abcde", 5, AlignLeft, "abcde"},
		{"empty", "", 3, AlignLeft, "   "},
		{"wide emoji", "🚀", 4, AlignRight, "  🚀"},
		{"styled text pads by visual width", "\x1b[31mab\x1b[0m", 4, AlignLeft, "\x1b[31mab\x1b[0m  "},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got, err := Pad(tc.input, tc.width, tc.align)
			require.NoError(t, err)
			require.Equal(t, tc.want, got)
			require.Equal(t, tc.width, Measure(got))
		})
	}
}

func TestPadRejectsOversizedText(t *testing.T) {
	t.Parallel()

	_, err := Pad("too wide", 4, AlignLeft)
	var layoutErr *frescoerrors.LayoutError
	require.ErrorAs(t, err, &layoutErr)
}

func TestTruncate(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name   string
		input  string
		width  int
		suffix string
		want   string
	}{
		{"fits untouched", "abc", 5, "…", "abc"},
		{"ascii cut", "abcdefgh", 5, "…", "abcd…"},
		{"no suffix", "abcdefgh", 5, "", "abcde"},
		{"zero width", "abc", 0, "…", ""},
		{"suffix wider than width", "abcdef", 2, "...", ".."},
		{"emoji never split", "ab🚀cd", 4, "…", "ab…"},
		{"codes travel with their cluster", "\x1b[31mabcdef\x1b[0m", 4, "…", "\x1b[31mabc…"},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got := Truncate(tc.input, tc.width, tc.suffix)
			require.Equal(t, tc.want, got)
			require.LessOrEqual(t, Measure(got), tc.width)
		})
	}
}

func TestTruncateThenPadHitsExactWidth(t *testing.T) {
	t.Parallel()

	inputs := []string{"", "short", "a much longer line of text", "emoji 🚀🚀🚀 heavy", "⚠️ warning ⚠️"}
	for _, input := range inputs {
		for _, w := range []int{1, 2, 5, 9, 20} {
			cut := Truncate(input, w, "…")
			padded, err := Pad(cut, w, AlignLeft)
			require.NoError(t, err)
			require.Equal(t, w, Measure(padded), "input %q width %d", input, w)
		}
	}
}

func TestParseAlign(t *testing.T) {
	t.Parallel()

	for in, want := range map[string]Align{"": AlignLeft, "left": AlignLeft, "Center": AlignCenter, "centre": AlignCenter, "RIGHT": AlignRight} {
		got, err := ParseAlign(in)
		require.NoError(t, err)
		require.Equal(t, want, got)
	}

	_, err := ParseAlign("justify")
	require.Error(t, err)
}

func TestAlignString(t *testing.T) {
	t.Parallel()

	require.Equal(t, "left", AlignLeft.String())
	require.Equal(t, "center", AlignCenter.String())
	require.Equal(t, "right", AlignRight.String())
}
