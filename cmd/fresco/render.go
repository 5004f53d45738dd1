package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/frescoterm/fresco/internal/color"
	"github.com/frescoterm/fresco/internal/effect"
	"github.com/frescoterm/fresco/internal/frame"
	"github.com/frescoterm/fresco/internal/textwidth"
	"github.com/frescoterm/fresco/internal/theme"
	frescoerrors "github.com/frescoterm/fresco/pkg/errors"
)

type renderOptions struct {
	title     string
	borderArg string
	width     int
	padding   int
	alignArg  string
	minWidth  int
	maxWidth  int

	flat      string
	gradient  []string
	rainbow   bool
	direction string
	target    string
	space     string

	themeArg string
}

func newRenderCmd(app *appContext, rootFlags *rootFlags) *cobra.Command {
	opts := &renderOptions{}

	cmd := &cobra.Command{
		Use:   "render [text ...]",
		Short: "Render text inside a bordered, optionally gradient-colored frame",
		Long: "Render lays out the given text (or stdin when no arguments are " +
			"passed) inside a bordered frame and optionally recolors it with a " +
			"flat color, a gradient, or the rainbow spectrum.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd, args, app, rootFlags, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.title, "title", "t", "", "Title embedded in the top edge")
	cmd.Flags().StringVarP(&opts.borderArg, "border", "b", "solid", "Border style name (see 'fresco styles')")
	cmd.Flags().IntVarP(&opts.width, "width", "w", 0, "Exact frame width in columns (0 fits the content)")
	cmd.Flags().IntVarP(&opts.padding, "padding", "p", 0, "Blank columns between border and content")
	cmd.Flags().StringVarP(&opts.alignArg, "align", "a", "left", "Content alignment: left, center, or right")
	cmd.Flags().IntVar(&opts.minWidth, "min-width", 0, "Lower bound for the fitted width")
	cmd.Flags().IntVar(&opts.maxWidth, "max-width", 0, "Upper bound for the fitted width (0 fits the terminal)")
	cmd.Flags().StringVar(&opts.flat, "flat", "", "Flat color applied to the frame")
	cmd.Flags().StringSliceVar(&opts.gradient, "gradient", nil, "Gradient color stops, e.g. red,#00FF00,blue")
	cmd.Flags().BoolVar(&opts.rainbow, "rainbow", false, "Color with the rainbow spectrum")
	cmd.Flags().StringVarP(&opts.direction, "direction", "d", "vertical", "Gradient direction: vertical, horizontal, or diagonal")
	cmd.Flags().StringVar(&opts.target, "target", "both", "What to color: content, border, or both")
	cmd.Flags().StringVar(&opts.space, "space", "rgb", "Gradient blend space: rgb, lab, or hcl")
	cmd.Flags().StringVar(&opts.themeArg, "theme", "", "Preset theme name or path to a theme YAML file")

	return cmd
}

func runRender(cmd *cobra.Command, args []string, app *appContext, rootFlags *rootFlags, opts *renderOptions) error {
	content, err := readContent(cmd, args)
	if err != nil {
		return err
	}

	settings, err := resolveRenderSettings(cmd, app, opts)
	if err != nil {
		return err
	}

	if rootFlags.verbose {
		app.log.WithFields(map[string]any{
			"command": "render",
			"border":  settings.spec.Style.Name,
			"lines":   len(content),
		}).Info("rendering frame")
	}

	spec := settings.spec
	spec.Content = content
	f, err := frame.Render(spec)
	if err != nil {
		return err
	}

	if settings.source != nil {
		f = effect.Apply(f, effect.Spec{
			Source:    settings.source,
			Direction: settings.direction,
			Target:    settings.target,
			Space:     settings.space,
		}, colorProfile(rootFlags))
	}

	out := cmd.OutOrStdout()
	for _, line := range f.Lines {
		fmt.Fprintln(out, line)
	}
	return nil
}

// renderSettings is a render invocation after all names are resolved.
type renderSettings struct {
	spec      frame.Spec
	source    effect.Source
	direction effect.Direction
	target    effect.Target
	space     color.Space
}

// resolveRenderSettings turns flag strings into resolved values. A theme
// supplies the defaults; any flag the caller set explicitly overrides the
// theme's choice.
func resolveRenderSettings(cmd *cobra.Command, app *appContext, opts *renderOptions) (renderSettings, error) {
	var settings renderSettings

	if opts.themeArg != "" {
		resolved, err := resolveTheme(app, opts.themeArg)
		if err != nil {
			return settings, err
		}
		settings.spec = frame.Spec{
			Title:   resolved.Title,
			Style:   resolved.Style,
			Padding: resolved.Padding,
			Align:   resolved.Align,
		}
		settings.source = resolved.Source
		settings.direction = resolved.Direction
		settings.target = resolved.Target
		settings.space = resolved.Space
	} else {
		style, err := app.registry.Get(opts.borderArg)
		if err != nil {
			return settings, err
		}
		settings.spec = frame.Spec{Style: style}
	}

	flagSet := cmd.Flags().Changed

	if flagSet("border") && opts.themeArg != "" {
		style, err := app.registry.Get(opts.borderArg)
		if err != nil {
			return settings, err
		}
		settings.spec.Style = style
	}
	if flagSet("title") {
		settings.spec.Title = opts.title
	}
	if flagSet("padding") {
		settings.spec.Padding = opts.padding
	}
	if flagSet("align") || opts.themeArg == "" {
		align, err := textwidth.ParseAlign(opts.alignArg)
		if err != nil {
			return settings, err
		}
		settings.spec.Align = align
	}

	settings.spec.Width = opts.width
	settings.spec.MinWidth = opts.minWidth
	settings.spec.MaxWidth = opts.maxWidth
	if opts.width == 0 && opts.maxWidth == 0 {
		settings.spec.MaxWidth = terminalWidth()
	}

	source, err := resolveSource(app, opts)
	if err != nil {
		return settings, err
	}
	if source != nil {
		settings.source = source
	}

	if flagSet("direction") || opts.themeArg == "" {
		direction, err := effect.ParseDirection(opts.direction)
		if err != nil {
			return settings, err
		}
		settings.direction = direction
	}
	if flagSet("target") || opts.themeArg == "" {
		target, err := effect.ParseTarget(opts.target)
		if err != nil {
			return settings, err
		}
		settings.target = target
	}
	if flagSet("space") || opts.themeArg == "" {
		space, err := color.ParseSpace(opts.space)
		if err != nil {
			return settings, err
		}
		settings.space = space
	}

	return settings, nil
}

// resolveSource builds the effect source the flags ask for, or nil when no
// coloring flag was given.
func resolveSource(app *appContext, opts *renderOptions) (effect.Source, error) {
	set := 0
	if opts.flat != "" {
		set++
	}
	if len(opts.gradient) > 0 {
		set++
	}
	if opts.rainbow {
		set++
	}
	if set > 1 {
		return nil, frescoerrors.NewValidationError("color source",
			"--flat, --gradient, and --rainbow are mutually exclusive", nil)
	}

	switch {
	case opts.rainbow:
		return effect.Rainbow{}, nil
	case opts.flat != "":
		c, err := app.parser.Parse(opts.flat)
		if err != nil {
			return nil, err
		}
		return effect.Flat{Color: c}, nil
	case len(opts.gradient) > 0:
		stops, err := app.parser.ParseAll(opts.gradient)
		if err != nil {
			return nil, err
		}
		gradient, err := effect.NewGradient(stops...)
		if err != nil {
			return nil, err
		}
		return gradient, nil
	}
	return nil, nil
}

// resolveTheme loads a theme by preset name or, when the argument looks
// like a path, from a YAML file.
func resolveTheme(app *appContext, arg string) (theme.Resolved, error) {
	t, ok := theme.Builtin(arg)
	if !ok {
		if !strings.ContainsAny(arg, "/.") {
			return theme.Resolved{}, frescoerrors.NewValidationError("theme",
				fmt.Sprintf("unknown theme %q, run 'fresco themes' for the preset list or pass a YAML file path", arg), nil)
		}
		loaded, err := theme.LoadFile(arg)
		if err != nil {
			return theme.Resolved{}, err
		}
		t = loaded
	}
	return theme.Resolve(t, app.registry, app.parser)
}

// readContent collects the content lines: one per argument, or stdin split
// into lines when no arguments were given.
func readContent(cmd *cobra.Command, args []string) ([]string, error) {
	if len(args) > 0 {
		return args, nil
	}
	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return nil, err
	}
	text := strings.TrimRight(string(data), "\n")
	if text == "" {
		return nil, fmt.Errorf("no content: pass text arguments or pipe text on stdin")
	}
	return strings.Split(text, "\n"), nil
}
