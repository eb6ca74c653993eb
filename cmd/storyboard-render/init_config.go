package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var initConfigForce bool

var initConfigCmd = &cobra.Command{
	Use:   "init-config PATH",
	Short: "Write the current settings to a config file",
	Long: `Writes the effective settings (defaults merged with --config and flag
overrides) to PATH. A .yaml or .yml extension selects YAML, anything else JSON.`,
	Args: cobra.ExactArgs(1),
	RunE: runInitConfig,
}

func init() {
	initConfigCmd.Flags().BoolVarP(&initConfigForce, "force", "f", false, "Overwrite an existing file")
}

func runInitConfig(cmd *cobra.Command, args []string) error {
	path := args[0]
	if _, err := os.Stat(path); err == nil && !initConfigForce {
		return fmt.Errorf("%s already exists (use --force to overwrite)", path)
	}
	if err := settings.Save(path); err != nil {
		return fmt.Errorf("saving settings: %w", err)
	}
	logger.Info("wrote settings", "path", path)
	_, err := fmt.Fprintln(cmd.OutOrStdout(), path)
	return err
}
