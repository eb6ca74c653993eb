package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/handiism/storyboard-creator/internal/config"
	"github.com/handiism/storyboard-creator/internal/logging"
	"github.com/handiism/storyboard-creator/internal/render"
	"github.com/handiism/storyboard-creator/internal/studio"
	"github.com/handiism/storyboard-creator/internal/tui"
)

func main() {
	var (
		configFlag = flag.String("config", "", "Path to config file (.json or .yaml)")
		outputFlag = flag.String("output", "", "Export directory (overrides config)")
		seedFlag   = flag.Uint64("seed", 0, "Palette seed for reproducible colors (overrides config)")
	)
	flag.Parse()

	if err := run(*configFlag, *outputFlag, *seedFlag); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(configPath, output string, seed uint64) error {
	settings := config.DefaultSettings()
	if configPath != "" {
		var err error
		settings, err = config.Load(configPath)
		if err != nil {
			return err
		}
	}
	if output != "" {
		settings.ExportPath = output
	}
	if seed != 0 {
		settings.PaletteSeed = seed
	}

	level, err := logging.ParseLevel(settings.LogLevel)
	if err != nil {
		return err
	}
	logger, closeLog, err := logging.OpenFile(settings.LogFile, level)
	if err != nil {
		return err
	}
	defer closeLog()

	renderer, err := render.NewRenderer(render.WithPicker(render.PickerForSeed(settings.PaletteSeed)))
	if err != nil {
		return err
	}

	events := tui.NewEvents()
	st := studio.New(settings, renderer, events.Push, studio.WithLogger(logger))

	logger.Info("starting storyboard editor", "export_path", settings.ExportPath, "format", settings.ExportFormat)
	return tui.Run(st, events, settings.ExportPath)
}
