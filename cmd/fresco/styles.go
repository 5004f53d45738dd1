package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/frescoterm/fresco/internal/compose"
	"github.com/frescoterm/fresco/internal/frame"
	"github.com/frescoterm/fresco/internal/textwidth"
)

type stylesOptions struct {
	preview bool
}

func newStylesCmd(app *appContext, rootFlags *rootFlags) *cobra.Command {
	opts := &stylesOptions{}

	cmd := &cobra.Command{
		Use:   "styles",
		Short: "List the available border styles",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStyles(cmd, app, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.preview, "preview", false, "Render a sample frame for each style")

	return cmd
}

func runStyles(cmd *cobra.Command, app *appContext, opts *stylesOptions) error {
	out := cmd.OutOrStdout()

	if !opts.preview {
		for _, name := range app.registry.Names() {
			fmt.Fprintln(out, name)
		}
		return nil
	}

	var blocks []string
	for _, name := range app.registry.Names() {
		style, err := app.registry.Get(name)
		if err != nil {
			return err
		}
		f, err := frame.Render(frame.Spec{
			Content: []string{name},
			Style:   style,
			Width:   14,
			Padding: 1,
			Align:   textwidth.AlignCenter,
		})
		if err != nil {
			return err
		}
		blocks = append(blocks, strings.Join(f.Lines, "\n"))
	}

	columns := terminalWidth() / 16
	if columns < 1 {
		columns = 1
	}
	fmt.Fprintln(out, compose.Grid(columns, 2, blocks...))
	return nil
}
