package main

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/frescoterm/fresco/internal/theme"
)

func TestThemesListsEveryBuiltin(t *testing.T) {
	out, err := executeCommand(t, "", "themes")
	require.NoError(t, err)

	require.Contains(t, out, "NAME")
	for _, preset := range theme.Builtins() {
		require.Contains(t, out, preset.Name)
		require.Contains(t, out, preset.Border)
	}
	require.Contains(t, out, "rainbow", "rainbow presets marked in the colors column")
}
