package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/x/term"
	"github.com/ruminaider/filterlist/internal/config"
	"github.com/ruminaider/filterlist/internal/filterlist"
	"github.com/ruminaider/filterlist/internal/paths"
	"github.com/spf13/cobra"
)

// readDocument loads the document named by args. Without an argument it
// reads stdin, unless stdin is a terminal, in which case the default
// document under the config directory is used. "-" always means stdin.
func readDocument(cmd *cobra.Command, args []string) (config.Document, error) {
	path := "-"
	if len(args) > 0 {
		path = args[0]
	} else if f, ok := cmd.InOrStdin().(*os.File); ok && term.IsTerminal(f.Fd()) {
		path = paths.DocumentFile()
	}
	if path == "-" {
		return config.Load(cmd.InOrStdin())
	}

	f, err := os.Open(path)
	if err != nil {
		return config.Document{}, fmt.Errorf("opening document: %w", err)
	}
	defer f.Close()
	return config.Load(f)
}

// selectedItem resolves the document's selected id, or nil.
func selectedItem(doc config.Document) filterlist.ListItem {
	if doc.Selected == "" {
		return nil
	}
	if it, ok := doc.Find(doc.Selected); ok {
		return it
	}
	return nil
}
