package main

import (
	"os"

	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/frescoterm/fresco/internal/border"
	"github.com/frescoterm/fresco/internal/color"
	"github.com/frescoterm/fresco/internal/logger"
)

// appContext carries the constructed-once registries every command shares.
// There is no ambient global state: main builds one of these and threads it
// through the command constructors.
type appContext struct {
	registry *border.Registry
	parser   *color.Parser
	log      *logger.Logger
}

type rootFlags struct {
	verbose bool
	noColor bool
}

func newRootCmd(app *appContext) *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "fresco",
		Short:         "Fresco draws bordered, gradient-colored text frames in the terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose logging")
	cmd.PersistentFlags().BoolVar(&flags.noColor, "no-color", false, "Disable all color output")

	cmd.AddCommand(newRenderCmd(app, flags))
	cmd.AddCommand(newStylesCmd(app, flags))
	cmd.AddCommand(newColorsCmd(app, flags))
	cmd.AddCommand(newThemesCmd(app))
	cmd.AddCommand(newVersionCmd())

	return cmd
}

// colorProfile resolves the terminal color capability policy for this run.
// An explicit --no-color, a NO_COLOR environment, or a non-terminal stdout
// all degrade to Ascii, which disables recoloring entirely.
func colorProfile(flags *rootFlags) termenv.Profile {
	if flags.noColor {
		return termenv.Ascii
	}
	if os.Getenv("NO_COLOR") != "" {
		return termenv.Ascii
	}
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return termenv.Ascii
	}
	return termenv.EnvColorProfile()
}

// terminalWidth reports the column count of stdout, with the conventional
// 80-column fallback when stdout is not a terminal or the size is unknown.
func terminalWidth() int {
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
		return w
	}
	return 80
}
