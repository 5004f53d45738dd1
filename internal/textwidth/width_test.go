package textwidth

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMeasure(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		input string
		want  int
	}{
		{name: "ascii word", input: "Hello", want: 5},
		{name: "empty", input: "", want: 0},
		{name: "rocket emoji is wide", input: "🚀", want: 2},
		{name: "mixed ascii and emoji", input: "Test 🚀", want: 7},
		{name: "cjk is wide", input: "日本", want: 4},
		{name: "styling codes are zero width", input: "\x1b[31mred\x1b[0m", want: 3},
		{name: "hyperlink codes are zero width", input: "\x1b]8;;https://x\x07go\x1b]8;;\x07", want: 2},
		{name: "combining accent forms one column", input: "é", want: 1},
		{name: "flag cluster is wide", input: "🇺🇸", want: 2},
		{name: "skin tone modifier stays one cluster", input: "👍🏽", want: 2},
		{name: "control characters degrade to one column", input: "a\tb", want: 3},
		{name: "warning with vs16 uses the empirical override", input: "⚠️", want: 1},
		{name: "warning without vs16", input: "⚠", want: 1},
		{name: "gear with vs16 uses the empirical override", input: "⚙️", want: 1},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tc.want, Measure(tc.input))
		})
	}
}

func TestMeasureEqualsLengthForPlainASCII(t *testing.T) {
	t.Parallel()

	for _, s := range []string{"", "a", "The quick brown fox!", "0123456789 ~"} {
		require.Equal(t, len(s), Measure(s))
	}
}

func TestMeasureAgreesWithStrip(t *testing.T) {
	t.Parallel()

	inputs := []string{
		"plain",
		"\x1b[38;2;10;20;30mcolor\x1b[0m",
		"\x1b[1mmixed 🚀 content\x1b[0m",
		"⚠️ \x1b[31mwarn\x1b[0m",
	}
	for _, s := range inputs {
		require.Equal(t, Measure(Strip(s)), Measure(s))
	}
}

func TestSplitClustersKeepsMultiRuneClustersWhole(t *testing.T) {
	t.Parallel()

	clusters := SplitClusters("a🇺🇸é")
	require.Len(t, clusters, 3)
	require.Equal(t, Cluster{Text: "a", Width: 1}, clusters[0])
	require.Equal(t, Cluster{Text: "🇺🇸", Width: 2}, clusters[1])
	require.Equal(t, Cluster{Text: "é", Width: 1}, clusters[2])
}

func TestSplitGraphemesMergesCodeRuns(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		input string
		want  []string
	}{
		{
			name:  "plain text splits per cluster",
			input: "abc",
			want:  []string{"a", "b", "c"},
		},
		{
			name:  "leading code attaches to first cluster",
			input: "\x1b[31mAB\x1b[0m",
			want:  []string{"\x1b[31mA", "B\x1b[0m"},
		},
		{
			name:  "mid-string code merges backwards",
			input: "A\x1b[1mB",
			want:  []string{"A\x1b[1m", "B"},
		},
		{
			name:  "only codes stay as one element",
			input: "\x1b[0m\x1b[1m",
			want:  []string{"\x1b[0m\x1b[1m"},
		},
		{
			name:  "empty input",
			input: "",
			want:  nil,
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tc.want, SplitGraphemes(tc.input))
		})
	}
}

func TestSplitGraphemesRejoinsToInput(t *testing.T) {
	t.Parallel()

	inputs := []string{
		"\x1b[31mred\x1b[0m plain 🚀",
		"\x1b[1m\x1b[4mdouble codes\x1b[0m",
		"no codes at all",
	}
	for _, input := range inputs {
		joined := ""
		for _, g := range SplitGraphemes(input) {
			joined += g
		}
		require.Equal(t, input, joined)
	}
}
