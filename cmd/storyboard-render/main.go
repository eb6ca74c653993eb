// Command storyboard-render renders storyboard placeholder images and
// exports storyboards without the terminal UI.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/handiism/storyboard-creator/internal/config"
	"github.com/handiism/storyboard-creator/internal/logging"
	"github.com/handiism/storyboard-creator/internal/render"
)

var (
	configPath string
	logLevel   string
	noColor    bool
	seed       uint64

	settings *config.Settings
	logger   = logging.Discard()
)

var rootCmd = &cobra.Command{
	Use:   "storyboard-render",
	Short: "Render storyboard placeholder images",
	Long: `Renders the gradient placeholder images used by the storyboard editor
and exports whole storyboards from the command line.

For interactive editing, use storyboard-tui.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to config file (.json or .yaml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn, error (overrides config)")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored log output")
	rootCmd.PersistentFlags().Uint64Var(&seed, "seed", 0, "Palette seed for reproducible colors (overrides config)")

	rootCmd.AddCommand(renderCmd, layoutCmd, exportCmd, initConfigCmd)
}

// setup loads settings and builds the stderr logger before any command runs.
func setup(cmd *cobra.Command, _ []string) error {
	settings = config.DefaultSettings()
	if configPath != "" {
		var err error
		settings, err = config.Load(configPath)
		if err != nil {
			return err
		}
	}
	if cmd.Flags().Changed("seed") {
		settings.PaletteSeed = seed
	}
	if cmd.Flags().Changed("log-level") {
		settings.LogLevel = logLevel
	}

	level, err := logging.ParseLevel(settings.LogLevel)
	if err != nil {
		return err
	}
	logger = logging.New(cmd.ErrOrStderr(), level, noColor)
	return nil
}

func newRenderer() (*render.Renderer, error) {
	return render.NewRenderer(render.WithPicker(render.PickerForSeed(settings.PaletteSeed)))
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		logger.Error("command failed", slog.Any("err", err))
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		stop()
		os.Exit(1)
	}
}
