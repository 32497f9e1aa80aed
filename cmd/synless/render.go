package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/synless-editor/synless/internal/doc"
	"github.com/synless-editor/synless/internal/docview"
	"github.com/synless-editor/synless/internal/node"
	"github.com/synless-editor/synless/internal/parser"
	"github.com/synless-editor/synless/internal/parser/jsonparser"
	"github.com/synless-editor/synless/internal/pretty"
)

var renderFlags = struct {
	width *int
	plain *bool
}{}

func init() {
	cmd := &cobra.Command{
		Use:     "render [file]",
		Short:   "Pretty-print a document's tree form",
		Long:    `render parses a JSON file with the built-in JSON frontend and pretty-prints the resulting tree, the way the editor's own window would.`,
		Example: `  synless render example.json --width 60`,
		Args:    cobra.ExactArgs(1),
		RunE:    runRender,
	}
	renderFlags.width = cmd.Flags().IntP("width", "w", 0, "wrap width in columns (default: pane_width from config)")
	renderFlags.plain = cmd.Flags().Bool("plain", false, "render without ANSI styling")
	rootCmd.AddCommand(cmd)
}

func runRender(cmd *cobra.Command, args []string) error {
	source, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("reading %s: %w", args[0], err)
	}

	s := node.NewStorage()
	langRef, err := jsonparser.RegisterLanguage(s.Lang)
	if err != nil {
		return fmt.Errorf("registering Json language: %w", err)
	}

	jsonParser := jsonparser.New()
	registry := parser.NewRegistry(jsonParser)
	root, err := registry.Parse(jsonParser.Name(), s, args[0], string(source))
	if err != nil {
		return fmt.Errorf("parsing %s: %w", args[0], err)
	}

	d := doc.New(s, root)
	theme := cfg.ResolveTheme()

	width := *renderFlags.width
	if width <= 0 {
		width = cfg.PaneWidth
	}

	view := docview.New(s, root, langRef.DisplayNotationSet(s.Lang), d.Cursor, theme)
	driver := pretty.NewDriver()

	if *renderFlags.plain {
		win := pretty.NewPlainTextWindow(width)
		if err := driver.Render(view, win, width); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), win.String())
		return nil
	}

	win := pretty.NewTerminalWindow(width)
	if err := driver.Render(view, win, width); err != nil {
		return err
	}
	win.Flush()
	return nil
}
