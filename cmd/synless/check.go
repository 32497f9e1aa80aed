package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/synless-editor/synless/internal/lang"
	"github.com/synless-editor/synless/internal/langfile"
	"github.com/synless-editor/synless/internal/logging"
)

func init() {
	cmd := &cobra.Command{
		Use:     "check",
		Short:   "Validate a language file and report compile errors",
		Example: `  synless check json.lang.yaml`,
		Args:    cobra.ExactArgs(1),
		RunE:    runCheck,
	}
	rootCmd.AddCommand(cmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("reading %s: %w", args[0], err)
	}

	spec, err := langfile.Load(data)
	if err != nil {
		logging.Error("%s: %v", args[0], err)
		return err
	}

	store := lang.NewStorage()
	if _, err := store.Register(spec); err != nil {
		logging.Error("%s: %v", args[0], err)
		return err
	}

	logging.Success("%s: language %q compiles cleanly (%d constructs)", args[0], spec.Name, len(spec.Grammar.Constructs))
	return nil
}
