package main

import (
	"fmt"
	"strings"

	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"github.com/frescoterm/fresco/internal/color"
)

func newColorsCmd(app *appContext, rootFlags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "colors [query]",
		Short: "Search the named-color catalog",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			query := ""
			if len(args) == 1 {
				query = args[0]
			}
			return runColors(cmd, rootFlags, query)
		},
	}

	return cmd
}

func runColors(cmd *cobra.Command, rootFlags *rootFlags, query string) error {
	out := cmd.OutOrStdout()
	profile := colorProfile(rootFlags)
	query = strings.ToLower(query)

	matched := 0
	for _, name := range color.Names() {
		if query != "" && !strings.Contains(strings.ToLower(name), query) {
			continue
		}
		matched++
		c, _ := color.LookupName(name)
		swatch := ""
		if profile != termenv.Ascii {
			if converted := profile.Convert(termenv.RGBColor(c.Hex())); converted != nil {
				swatch = fmt.Sprintf("\x1b[%sm██\x1b[0m ", converted.Sequence(false))
			}
		}
		fmt.Fprintf(out, "%s%s  %s\n", swatch, c.Hex(), name)
	}

	if matched == 0 {
		return fmt.Errorf("no color name matches %q", query)
	}
	return nil
}
