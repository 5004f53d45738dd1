package textwidth

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTokenizeSplitsLiteralsAndCodes(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		input string
		want  []Token
	}{
		{
			name:  "plain text is a single literal",
			input: "hello",
			want:  []Token{{Kind: TokenLiteral, Text: "hello"}},
		},
		{
			name:  "empty input yields no tokens",
			input: "",
			want:  nil,
		},
		{
			name:  "sgr codes around text",
			input: "\x1b[31mred\x1b[0m",
			want: []Token{
				{Kind: TokenStyleCode, Text: "\x1b[31m"},
				{Kind: TokenLiteral, Text: "red"},
				{Kind: TokenStyleCode, Text: "\x1b[0m"},
			},
		},
		{
			name:  "adjacent codes stay separate tokens",
			input: "\x1b[1m\x1b[38;2;255;0;0mX",
			want: []Token{
				{Kind: TokenStyleCode, Text: "\x1b[1m"},
				{Kind: TokenStyleCode, Text: "\x1b[38;2;255;0;0m"},
				{Kind: TokenLiteral, Text: "X"},
			},
		},
		{
			name:  "osc terminated by bel",
			input: "\x1b]8;;https://example.com\x07link\x1b]8;;\x07",
			want: []Token{
				{Kind: TokenStyleCode, Text: "\x1b]8;;https://example.com\x07"},
				{Kind: TokenLiteral, Text: "link"},
				{Kind: TokenStyleCode, Text: "\x1b]8;;\x07"},
			},
		},
		{
			name:  "osc terminated by st",
			input: "\x1b]0;title\x1b\\after",
			want: []Token{
				{Kind: TokenStyleCode, Text: "\x1b]0;title\x1b\\"},
				{Kind: TokenLiteral, Text: "after"},
			},
		},
		{
			name:  "unterminated csi swallows the tail",
			input: "ok\x1b[38;2",
			want: []Token{
				{Kind: TokenLiteral, Text: "ok"},
				{Kind: TokenStyleCode, Text: "\x1b[38;2"},
			},
		},
		{
			name:  "two byte escape",
			input: "a\x1b(Bb",
			want: []Token{
				{Kind: TokenLiteral, Text: "a"},
				{Kind: TokenStyleCode, Text: "\x1b("},
				{Kind: TokenLiteral, Text: "Bb"},
			},
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tc.want, Tokenize(tc.input))
		})
	}
}

func TestTokenizeRoundTrips(t *testing.T) {
	t.Parallel()

	inputs := []string{
		"",
		"plain",
		"\x1b[31mred\x1b[0m and \x1b[1mbold\x1b[22m",
		"trailing escape \x1b",
		"\x1b]8;;x\x07link\x1b]8;;\x07 🚀 wide",
	}
	for _, input := range inputs {
		var b strings.Builder
		for _, tok := range Tokenize(input) {
			b.WriteString(tok.Text)
		}
		require.Equal(t, input, b.String())
	}
}

func TestStripRemovesOnlyCodes(t *testing.T) {
	t.Parallel()

	require.Equal(t, "red", Strip("\x1b[31mred\x1b[0m"))
	require.Equal(t, "plain", Strip("plain"))
	require.Equal(t, "ab", Strip("a\x1b[1m\x1b[4mb"))
	require.Equal(t, "", Strip("\x1b[0m"))
}
