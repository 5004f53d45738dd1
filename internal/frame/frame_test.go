package frame

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/frescoterm/fresco/internal/border"
	"github.com/frescoterm/fresco/internal/textwidth"
	frescoerrors "github.com/frescoterm/fresco/pkg/errors"
)

func solidStyle(t *testing.T) border.Style {
	t.Helper()
	style, err := border.NewRegistry().Get("solid")
	require.NoError(t, err)
	return style
}

func TestRenderFixedWidth(t *testing.T) {
	t.Parallel()

	f, err := Render(Spec{
		Content: []string{"Hi"},
		Style:   solidStyle(t),
		Width:   10,
		Padding: 1,
		Align:   textwidth.AlignLeft,
	})
	require.NoError(t, err)

	require.Equal(t, []string{
		"┌────────┐",
		"│ Hi     │",
		"└────────┘",
	}, f.Lines)
	require.Equal(t, 10, f.Width)
	for _, line := range f.Lines {
		require.Equal(t, 10, textwidth.Measure(line))
	}
}

func TestRenderEveryLineMeasuresFrameWidth(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		spec Spec
	}{
		{"auto width", Spec{Content: []string{"one", "longer line", "x"}}},
		{"emoji content", Spec{Content: []string{"Test 🚀", "plain"}, Padding: 2}},
		{"title wider than content", Spec{Content: []string{"a"}, Title: "Long Title Here"}},
		{"fixed narrow truncates", Spec{Content: []string{"this line is far too wide"}, Width: 12}},
		{"center aligned", Spec{Content: []string{"mid"}, Width: 20, Align: textwidth.AlignCenter}},
		{"styled content", Spec{Content: []string{"\x1b[1mbold\x1b[0m text"}, Width: 16}},
		{"min width", Spec{Content: []string{"x"}, MinWidth: 24}},
		{"max width", Spec{Content: []string{strings.Repeat("z", 60)}, MaxWidth: 18}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			spec := tt.spec
			spec.Style = solidStyle(t)
			f, err := Render(spec)
			require.NoError(t, err)
			require.GreaterOrEqual(t, len(f.Lines), 3)
			for i, line := range f.Lines {
				require.Equal(t, f.Width, textwidth.Measure(line), "line %d: %q", i, line)
			}
		})
	}
}

func TestRenderAutoWidthFormula(t *testing.T) {
	t.Parallel()

	f, err := Render(Spec{Content: []string{"Hello"}, Style: solidStyle(t), Padding: 1})
	require.NoError(t, err)
	// content 5 + borders 2 + padding 2
	require.Equal(t, 9, f.Width)

	f, err = Render(Spec{Content: []string{"Hello"}, Title: "My Title", Style: solidStyle(t)})
	require.NoError(t, err)
	// title 8 + 4 beats content 5, plus borders 2
	require.Equal(t, 14, f.Width)
}

func TestRenderAlignment(t *testing.T) {
	t.Parallel()

	render := func(align textwidth.Align) string {
		f, err := Render(Spec{Content: []string{"ab"}, Style: solidStyle(t), Width: 9, Align: align})
		require.NoError(t, err)
		return f.Lines[1]
	}

	require.Equal(t, "│ab     │", render(textwidth.AlignLeft))
	require.Equal(t, "│     ab│", render(textwidth.AlignRight))
	// Odd leftover column goes to the right.
	require.Equal(t, "│  ab   │", render(textwidth.AlignCenter))
}

func TestRenderTitleSpanRecorded(t *testing.T) {
	t.Parallel()

	f, err := Render(Spec{Content: []string{"body"}, Title: "Hi", Style: solidStyle(t), Width: 12})
	require.NoError(t, err)
	require.False(t, f.TitleSpan.Empty())

	// The span brackets exactly the " Hi " run on the top edge.
	top := f.Lines[0]
	require.Equal(t, "┌─── Hi ───┐", top)
	require.Equal(t, border.TitleSpan{Start: 4, End: 8}, f.TitleSpan)
}

func TestRenderSilentTruncation(t *testing.T) {
	t.Parallel()

	f, err := Render(Spec{Content: []string{"abcdefghij"}, Style: solidStyle(t), Width: 8})
	require.NoError(t, err)
	require.Equal(t, "│abcde…│", f.Lines[1])
}

func TestRenderMultilineContent(t *testing.T) {
	t.Parallel()

	f, err := Render(Spec{Content: []string{"one\ntwo", "three\r\nfour"}, Style: solidStyle(t)})
	require.NoError(t, err)
	require.Len(t, f.Lines, 6)
}

func TestRenderEmptyContent(t *testing.T) {
	t.Parallel()

	f, err := Render(Spec{Style: solidStyle(t), Width: 6})
	require.NoError(t, err)
	require.Len(t, f.Lines, 3)
	require.Equal(t, "│    │", f.Lines[1])
}

func TestRenderValidationFailsFast(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		spec Spec
	}{
		{"negative width", Spec{Width: -1}},
		{"negative padding", Spec{Padding: -2}},
		{"negative min", Spec{MinWidth: -1}},
		{"negative max", Spec{MaxWidth: -1}},
		{"min above max", Spec{MinWidth: 30, MaxWidth: 20}},
		{"no interior", Spec{Width: 4, Padding: 1}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			spec := tt.spec
			spec.Style = solidStyle(t)
			spec.Content = []string{"x"}
			f, err := Render(spec)
			var layoutErr *frescoerrors.LayoutError
			require.ErrorAs(t, err, &layoutErr)
			require.Empty(t, f.Lines, "no partial output on validation failure")
		})
	}
}
