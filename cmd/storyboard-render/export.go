package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/handiism/storyboard-creator/internal/studio"
)

var (
	exportDir    string
	exportFormat string
	exportThumbs bool
	exportDelay  time.Duration
)

var exportCmd = &cobra.Command{
	Use:   "export SHOT...",
	Short: "Render shots and export them as a storyboard",
	Long: `Adds each SHOT to a new storyboard in order, then exports it.

A SHOT is "title", "title|description" or "title|description|prompt".
The prompt defaults to the title.`,
	Example: `  storyboard-render export --dir out --format html \
    "Opening|Wide establishing shot|Hero walks into sunset" "Close-up"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runExport,
}

func init() {
	exportCmd.Flags().StringVar(&exportDir, "dir", "", "Export directory (overrides config)")
	exportCmd.Flags().StringVar(&exportFormat, "format", "", "Index format: markdown, html, json (overrides config)")
	exportCmd.Flags().BoolVar(&exportThumbs, "thumbnails", true, "Write JPEG thumbnails")
	exportCmd.Flags().DurationVar(&exportDelay, "delay", 0, "Simulated generation delay per shot")
}

// parseShot splits a SHOT argument into a draft.
func parseShot(arg string) (studio.Draft, error) {
	parts := strings.SplitN(arg, "|", 3)
	for len(parts) < 3 {
		parts = append(parts, "")
	}
	draft := studio.Draft{
		Title:       strings.TrimSpace(parts[0]),
		Description: strings.TrimSpace(parts[1]),
		Prompt:      strings.TrimSpace(parts[2]),
	}
	if draft.Title == "" {
		return studio.Draft{}, fmt.Errorf("shot %q has no title", arg)
	}
	return draft, nil
}

func runExport(cmd *cobra.Command, args []string) error {
	drafts := make([]studio.Draft, 0, len(args))
	for _, arg := range args {
		draft, err := parseShot(arg)
		if err != nil {
			return err
		}
		drafts = append(drafts, draft)
	}

	if exportFormat != "" {
		settings.ExportFormat = exportFormat
	}
	if cmd.Flags().Changed("thumbnails") {
		settings.SaveThumbnails = exportThumbs
	}
	if err := settings.Validate(); err != nil {
		return err
	}

	renderer, err := newRenderer()
	if err != nil {
		return err
	}
	st := studio.New(settings, renderer, nil,
		studio.WithLogger(logger),
		studio.WithLatency(studio.SimulatedLatency{Delay: exportDelay}))

	ctx := cmd.Context()
	for _, draft := range drafts {
		if err := ctx.Err(); err != nil {
			return err
		}
		if _, err := st.AddShot(ctx, draft); err != nil {
			return err
		}
	}

	result, err := st.Export(ctx, exportDir)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), result.IndexPath)
	return err
}
