package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/synless-editor/synless/internal/config"
)

// cfg is the resolved configuration every subcommand reads. Core
// packages never read config directly (SPEC_FULL.md's ambient stack
// section) -- this command line is the one place viper-backed settings
// get turned into the plain values internal/pretty, internal/doc, and
// friends actually accept.
var cfg *config.Config

var rootFlags = struct {
	configPath *string
}{}

var rootCmd = &cobra.Command{
	Use:   "synless",
	Short: "A structural editor for trees, not text",
	Long: `synless edits any tree-shaped document -- source code, JSON, or a
language described by your own grammar file -- by direct tree
manipulation rather than character-by-character text editing.`,
	SilenceErrors:     true,
	SilenceUsage:      true,
	PersistentPreRunE: loadConfig,
}

func init() {
	rootFlags.configPath = rootCmd.PersistentFlags().String("config", "", "config file path (default: search standard locations)")
}

func loadConfig(cmd *cobra.Command, args []string) error {
	loaded, err := config.Load(*rootFlags.configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	cfg = loaded
	return nil
}

// Execute runs the root command, printing any error to stderr.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		return err
	}
	return nil
}
