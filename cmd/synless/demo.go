package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/synless-editor/synless/internal/doc"
	"github.com/synless-editor/synless/internal/docview"
	"github.com/synless-editor/synless/internal/lang/langtest"
	"github.com/synless-editor/synless/internal/location"
	"github.com/synless-editor/synless/internal/node"
	"github.com/synless-editor/synless/internal/parser/jsonparser"
	"github.com/synless-editor/synless/internal/pretty"
)

func init() {
	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Build a tiny document and walk it through an edit and its undo",
		Long: `demo builds a small JSON-shaped document, prints it, appends a
character to one of its strings, prints the result, then undoes the
edit and prints the original again -- a self-contained smoke test of
the editing pipeline end to end.`,
		RunE: runDemo,
	}
	rootCmd.AddCommand(cmd)
}

func runDemo(cmd *cobra.Command, args []string) error {
	s := node.NewStorage()
	langRef, err := jsonparser.RegisterLanguage(s.Lang)
	if err != nil {
		return fmt.Errorf("registering Json language: %w", err)
	}

	tree := langtest.Branch("Document",
		langtest.Branch("Object",
			langtest.Branch("ObjectPair", langtest.Leaf("String", "greeting"), langtest.Leaf("String", "hello")),
		),
	)
	root := langtest.Build(s, langRef, tree)
	d := doc.New(s, root)
	theme := cfg.ResolveTheme()
	out := cmd.OutOrStdout()

	printTree := func(label string) error {
		view := docview.New(s, root, langRef.DisplayNotationSet(s.Lang), d.Cursor, theme)
		win := pretty.NewPlainTextWindow(cfg.PaneWidth)
		if err := pretty.NewDriver().Render(view, win, cfg.PaneWidth); err != nil {
			return err
		}
		fmt.Fprintf(out, "-- %s --\n%s\n\n", label, win.String())
		return nil
	}

	if err := printTree("initial"); err != nil {
		return err
	}

	start, _ := location.BeforeChildren(s, root)
	found, ok := d.FindFrom(s, start, func(s *node.Storage, n node.Node) bool {
		t, ok := n.Text(s)
		return ok && t.Source() == "hello"
	})
	if !ok {
		return fmt.Errorf("demo: could not find the \"hello\" string in the sample document")
	}
	leaf, _ := found.RightNode(s)

	textLoc, ok := location.EndOfText(s, leaf)
	if !ok {
		return fmt.Errorf("demo: could not enter text mode on the \"hello\" string")
	}
	d.Cursor = textLoc

	for _, ch := range "!" {
		if err := d.Execute(s, doc.Ed(doc.TextInsert(ch))); err != nil {
			return fmt.Errorf("inserting character: %w", err)
		}
	}
	d.EndUndoGroup()

	if err := printTree("after edit"); err != nil {
		return err
	}

	if err := d.Undo(s); err != nil {
		return fmt.Errorf("undoing edit: %w", err)
	}

	return printTree("after undo")
}
