package color

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHexCanonicalForm(t *testing.T) {
	t.Parallel()

	require.Equal(t, "#000000", RGB{}.Hex())
	require.Equal(t, "#FF1493", RGB{255, 20, 147}.Hex())
	require.Equal(t, "#7F7F7F", RGB{127, 127, 127}.String())
}

func TestInterpolateEndpoints(t *testing.T) {
	t.Parallel()

	a := RGB{10, 200, 30}
	b := RGB{240, 5, 99}
	require.Equal(t, a, Interpolate(a, b, 0))
	require.Equal(t, b, Interpolate(a, b, 1))
	require.Equal(t, a, Interpolate(a, b, -3), "t clamps below")
	require.Equal(t, b, Interpolate(a, b, 7), "t clamps above")
}

func TestInterpolateMidpointTruncates(t *testing.T) {
	t.Parallel()

	got := Interpolate(RGB{0, 0, 0}, RGB{255, 255, 255}, 0.5)
	require.Equal(t, "#7F7F7F", got.Hex())
}

func TestInterpolateChannelsStayBetweenEndpoints(t *testing.T) {
	t.Parallel()

	a := RGB{10, 240, 100}
	b := RGB{200, 20, 100}
	for _, tt := range []float64{0, 0.1, 0.25, 0.5, 0.75, 0.9, 1} {
		got := Interpolate(a, b, tt)
		require.GreaterOrEqual(t, got.R, a.R)
		require.LessOrEqual(t, got.R, b.R)
		require.LessOrEqual(t, got.G, a.G)
		require.GreaterOrEqual(t, got.G, b.G)
		require.Equal(t, uint8(100), got.B)
	}
}

func TestRainbowEndpointsAndContinuity(t *testing.T) {
	t.Parallel()

	require.Equal(t, RGB{255, 0, 0}, Rainbow(0), "red stop")
	require.Equal(t, RGB{238, 130, 238}, Rainbow(1), "violet stop")
	require.Equal(t, Rainbow(0), Rainbow(-0.5), "clamped low")
	require.Equal(t, Rainbow(1), Rainbow(1.5), "clamped high")

	// No jump larger than the per-step channel delta within one segment.
	const steps = 700
	prev := Rainbow(0)
	for i := 1; i <= steps; i++ {
		cur := Rainbow(float64(i) / steps)
		require.LessOrEqual(t, Distance(prev, cur), 6.0, "discontinuity at step %d", i)
		prev = cur
	}
}

func TestDistance(t *testing.T) {
	t.Parallel()

	require.Zero(t, Distance(RGB{1, 2, 3}, RGB{1, 2, 3}))
	require.InDelta(t, 255, Distance(RGB{0, 0, 0}, RGB{255, 0, 0}), 0.01)
	require.Greater(t, Distance(RGB{0, 0, 0}, RGB{255, 255, 255}), Distance(RGB{0, 0, 0}, RGB{255, 0, 0}))
}

func TestBlendSpaces(t *testing.T) {
	t.Parallel()

	a := RGB{255, 0, 0}
	b := RGB{0, 0, 255}

	require.Equal(t, Interpolate(a, b, 0.5), Blend(a, b, 0.5, SpaceRGB))

	// Perceptual spaces round-trip through float color spaces, so the
	// endpoints can land one count off after truncation.
	for _, space := range []Space{SpaceLab, SpaceHCL} {
		require.LessOrEqual(t, Distance(a, Blend(a, b, 0, space)), 2.0)
		require.LessOrEqual(t, Distance(b, Blend(a, b, 1, space)), 2.0)
	}
}

func TestRamp(t *testing.T) {
	t.Parallel()

	stops := []RGB{{0, 0, 0}, {100, 100, 100}, {200, 200, 200}}
	require.Equal(t, stops[0], Ramp(stops, 0, SpaceRGB))
	require.Equal(t, stops[1], Ramp(stops, 0.5, SpaceRGB))
	require.Equal(t, stops[2], Ramp(stops, 1, SpaceRGB))
	require.Equal(t, RGB{50, 50, 50}, Ramp(stops, 0.25, SpaceRGB))

	require.Equal(t, RGB{7, 8, 9}, Ramp([]RGB{{7, 8, 9}}, 0.3, SpaceRGB), "single stop is flat")
	require.Equal(t, RGB{}, Ramp(nil, 0.5, SpaceRGB))
}

func TestParseSpace(t *testing.T) {
	t.Parallel()

	for in, want := range map[string]Space{"": SpaceRGB, "rgb": SpaceRGB, "Lab": SpaceLab, "HCL": SpaceHCL} {
		got, err := ParseSpace(in)
		require.NoError(t, err)
		require.Equal(t, want, got)
	}
	_, err := ParseSpace("cmyk")
	require.Error(t, err)
}
