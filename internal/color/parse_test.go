package color

import (
	"testing"

	"github.com/stretchr/testify/require"

	frescoerrors "github.com/frescoterm/fresco/pkg/errors"
)

func TestParseNotations(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		spec string
		want RGB
	}{
		{"six digit hex", "#FF0000", RGB{255, 0, 0}},
		{"lower case hex", "#ff8800", RGB{255, 136, 0}},
		{"three digit hex", "#A5F", RGB{0xAA, 0x55, 0xFF}},
		{"rgb function", "rgb(0,255,0)", RGB{0, 255, 0}},
		{"rgb with spaces", "RGB( 12, 34 , 56 )", RGB{12, 34, 56}},
		{"bare tuple", "(1,2,3)", RGB{1, 2, 3}},
		{"standard name", "red", RGB{255, 0, 0}},
		{"name case insensitive", "DeepPink", RGB{0xFF, 0x14, 0x93}},
		{"name with spaces", "Deep Pink", RGB{0xFF, 0x14, 0x93}},
		{"name with hyphens", "deep-pink", RGB{0xFF, 0x14, 0x93}},
		{"extended name", "burnt orange", RGB{0xC0, 0x4E, 0x01}},
		{"extended underscore", "burnt_orange", RGB{0xC0, 0x4E, 0x01}},
		{"surrounding whitespace", "  teal  ", RGB{0, 128, 128}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := Parse(tt.spec)
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestParseEquivalentInputsConverge(t *testing.T) {
	t.Parallel()

	specs := []string{"#ff1493", "#FF1493", "rgb(255,20,147)", "(255, 20, 147)", "deeppink", "Deep Pink", "DEEP-PINK"}
	for _, spec := range specs {
		got, err := Parse(spec)
		require.NoError(t, err, "spec %q", spec)
		require.Equal(t, RGB{255, 20, 147}, got, "spec %q", spec)
	}
}

func TestParseFormatErrors(t *testing.T) {
	t.Parallel()

	for _, spec := range []string{"", "nonsense", "#12", "#12345", "#GGHHII", "rgb(1,2)", "rgb(a,b,c)", "(1,2,3,4)"} {
		_, err := Parse(spec)
		var formatErr *frescoerrors.ColorFormatError
		require.ErrorAs(t, err, &formatErr, "spec %q", spec)
	}
}

func TestParseRangeErrors(t *testing.T) {
	t.Parallel()

	_, err := Parse("rgb(300,0,0)")
	var rangeErr *frescoerrors.ColorRangeError
	require.ErrorAs(t, err, &rangeErr)
	require.Equal(t, "red", rangeErr.Channel)
	require.Equal(t, 300, rangeErr.Value)

	_, err = Parse("(0,0,-1)")
	require.ErrorAs(t, err, &rangeErr)
	require.Equal(t, "blue", rangeErr.Channel)
}

func TestParserMemoizes(t *testing.T) {
	t.Parallel()

	p := NewParser()
	first, err := p.Parse("tomato")
	require.NoError(t, err)
	second, err := p.Parse("tomato")
	require.NoError(t, err)
	require.Equal(t, first, second)
	require.Len(t, p.cache, 1)

	_, err = p.Parse("definitely-not-a-color")
	require.Error(t, err)
	require.Len(t, p.cache, 1, "errors must not be cached")
}

func TestParserParseAllFailsFast(t *testing.T) {
	t.Parallel()

	p := NewParser()
	colors, err := p.ParseAll([]string{"red", "#00FF00", "blue"})
	require.NoError(t, err)
	require.Equal(t, []RGB{{255, 0, 0}, {0, 255, 0}, {0, 0, 255}}, colors)

	_, err = p.ParseAll([]string{"red", "bogus", "blue"})
	require.Error(t, err)
}

func TestNameTables(t *testing.T) {
	t.Parallel()

	require.Len(t, standardTable, 148)
	require.GreaterOrEqual(t, len(extendedTable), 250)

	// The union exposes every name exactly once.
	seen := make(map[string]bool)
	for _, n := range Names() {
		key := normalizeName(n)
		require.False(t, seen[key], "duplicate name %q", n)
		seen[key] = true
		_, ok := LookupName(n)
		require.True(t, ok, "listed name %q must resolve", n)
	}
}
