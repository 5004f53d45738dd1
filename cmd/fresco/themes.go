package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/frescoterm/fresco/internal/theme"
)

func newThemesCmd(app *appContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "themes",
		Short: "List the built-in theme presets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runThemes(cmd, app)
		},
	}

	return cmd
}

func runThemes(cmd *cobra.Command, app *appContext) error {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tBORDER\tCOLORS\tDIRECTION\tTARGET")
	for _, t := range theme.Builtins() {
		colors := strings.Join(t.Colors, ", ")
		if t.Rainbow {
			colors = "rainbow"
		}
		direction := t.Direction
		if direction == "" {
			direction = "vertical"
		}
		target := t.Target
		if target == "" {
			target = "both"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", t.Name, t.Border, colors, direction, target)
	}
	return w.Flush()
}
