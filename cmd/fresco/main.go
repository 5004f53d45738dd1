package main

import (
	"fmt"
	"os"

	"github.com/frescoterm/fresco/internal/border"
	"github.com/frescoterm/fresco/internal/color"
	"github.com/frescoterm/fresco/internal/logger"
)

func main() {
	log, err := logger.New(logger.Options{Level: "info", HumanReadable: true})
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create logger: %v\n", err)
		os.Exit(1)
	}

	app := &appContext{
		registry: border.NewRegistry(),
		parser:   color.NewParser(),
		log:      log,
	}

	if err := newRootCmd(app).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
