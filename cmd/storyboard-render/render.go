package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	ioutils "github.com/handiism/storyboard-creator/internal/io"
)

var (
	renderOutput  string
	renderDataURL bool
)

var renderCmd = &cobra.Command{
	Use:   "render PROMPT...",
	Short: "Render a placeholder image for a prompt",
	Long: `Renders the prompt onto a random gradient and writes the PNG.

The output defaults to the sanitized prompt with a .png extension.
With --data-url the image is printed as a data URL instead.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runRender,
}

var layoutCmd = &cobra.Command{
	Use:   "layout PROMPT...",
	Short: "Print how a prompt is broken into lines",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runLayout,
}

func init() {
	renderCmd.Flags().StringVarP(&renderOutput, "output", "o", "", "Output PNG path")
	renderCmd.Flags().BoolVar(&renderDataURL, "data-url", false, "Print a data URL instead of writing a file")
}

func runRender(cmd *cobra.Command, args []string) error {
	prompt := strings.Join(args, " ")

	renderer, err := newRenderer()
	if err != nil {
		return err
	}
	art, err := renderer.Render(prompt)
	if err != nil {
		return err
	}

	logger.Debug("rendered placeholder",
		"gradient", art.Gradient.String(),
		"lines", len(art.Layout.Lines),
		"bytes", len(art.PNG))

	if renderDataURL {
		_, err := fmt.Fprintln(cmd.OutOrStdout(), art.DataURL())
		return err
	}

	out := renderOutput
	if out == "" {
		out = ioutils.SanitizeFileName(prompt) + ".png"
	}
	if err := ioutils.WriteFile(cmd.Context(), out, art.PNG); err != nil {
		return fmt.Errorf("writing %s: %w", out, err)
	}

	logger.Info("wrote image", "path", out)
	_, err = fmt.Fprintln(cmd.OutOrStdout(), out)
	return err
}

func runLayout(cmd *cobra.Command, args []string) error {
	renderer, err := newRenderer()
	if err != nil {
		return err
	}
	layout := renderer.Layout(strings.Join(args, " "))

	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "start_y %.1f\n", layout.StartY)
	for _, line := range layout.Lines {
		fmt.Fprintf(w, "%7.1f %6.1f  %q\n", line.Y, renderer.Measure(line.Text), line.Text)
	}
	return nil
}
