package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/x/term"
	"github.com/rs/zerolog"
	"github.com/ruminaider/filterlist/cmd/filterlist/tui"
	"github.com/ruminaider/filterlist/internal/config"
	"github.com/ruminaider/filterlist/internal/filterlist"
	"github.com/ruminaider/filterlist/internal/logging"
	"github.com/spf13/cobra"
	"go.yaml.in/yaml/v3"
)

var (
	pickFilter      string
	pickSelected    string
	pickNoHeaders   bool
	pickRowHeight   int
	pickPlaceholder string
	pickTitle       string
	pickConfirm     bool
	pickFormat      string
	pickDebugLog    string
)

func init() {
	f := rootCmd.Flags()
	f.StringVar(&pickFilter, "filter", "", "initial filter text (overrides the document)")
	f.StringVar(&pickSelected, "selected", "", "id of the initially selected item")
	f.BoolVar(&pickNoHeaders, "no-headers", false, "hide group headers")
	f.IntVar(&pickRowHeight, "row-height", 0, "lines per row (2 shows item details)")
	f.StringVar(&pickPlaceholder, "placeholder", "", "text shown while the filter is empty")
	f.StringVar(&pickTitle, "title", "", "title shown above the filter")
	f.BoolVar(&pickConfirm, "confirm", false, "ask for confirmation before printing the pick")
	f.StringVar(&pickFormat, "format", "text", "output format: text or yaml")
	f.StringVar(&pickDebugLog, "debug-log", "", "write debug logs to this file")
}

func runPick(cmd *cobra.Command, args []string) error {
	if pickFormat != "text" && pickFormat != "yaml" {
		return fmt.Errorf("unknown format %q (want text or yaml)", pickFormat)
	}

	doc, err := readDocument(cmd, args)
	if err != nil {
		return err
	}
	applyPickFlags(cmd, &doc)
	if err := doc.Validate(); err != nil {
		return fmt.Errorf("invalid document:\n%w", err)
	}

	log, closer, err := logging.New(logging.Options{Path: pickDebugLog, Level: zerolog.DebugLevel})
	if err != nil {
		return err
	}
	defer closer.Close()

	in, out, release, err := openTerminal()
	if err != nil {
		return err
	}
	defer release()

	log.Info().
		Int("groups", len(doc.Groups)).
		Int("items", doc.ItemCount()).
		Str("filter", doc.Filter).
		Msg("starting picker")

	item, err := tui.Run(tui.Options{
		Groups:      doc.ListGroups(),
		Title:       doc.Title,
		Placeholder: doc.Placeholder,
		FilterText:  doc.Filter,
		Selected:    selectedItem(doc),
		NoHeaders:   !doc.ShowHeaders(),
		RowHeight:   doc.RowHeight,
		Logger:      log,
	}, in, out)
	if err != nil {
		log.Info().Err(err).Msg("picker closed without a pick")
		return err
	}

	if pickConfirm {
		ok, err := confirmPick(item, in, out)
		if err != nil {
			return fmt.Errorf("confirming pick: %w", err)
		}
		if !ok {
			return tui.ErrCancelled
		}
	}

	return writeItem(cmd.OutOrStdout(), item, pickFormat)
}

// applyPickFlags lets explicitly set flags override the document.
func applyPickFlags(cmd *cobra.Command, doc *config.Document) {
	f := cmd.Flags()
	if f.Changed("filter") {
		doc.Filter = pickFilter
	}
	if f.Changed("selected") {
		doc.Selected = pickSelected
	}
	if f.Changed("no-headers") {
		show := !pickNoHeaders
		doc.Headers = &show
	}
	if f.Changed("row-height") {
		doc.RowHeight = pickRowHeight
	}
	if f.Changed("placeholder") {
		doc.Placeholder = pickPlaceholder
	}
	if f.Changed("title") {
		doc.Title = pickTitle
	}
}

// openTerminal returns where the picker reads keys and draws. The picker
// draws on stderr so stdout carries only the result. When stdin holds the
// document or either stream is redirected, /dev/tty is used instead.
func openTerminal() (io.Reader, io.Writer, func(), error) {
	inTTY := term.IsTerminal(os.Stdin.Fd())
	outTTY := term.IsTerminal(os.Stderr.Fd())
	if inTTY && outTTY {
		return os.Stdin, os.Stderr, func() {}, nil
	}

	tty, err := os.OpenFile("/dev/tty", os.O_RDWR, 0)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("filterlist needs a terminal: %w", err)
	}
	var in io.Reader = os.Stdin
	var out io.Writer = os.Stderr
	if !inTTY {
		in = tty
	}
	if !outTTY {
		out = tty
	}
	return in, out, func() { tty.Close() }, nil
}

func confirmPick(item filterlist.ListItem, in io.Reader, out io.Writer) (bool, error) {
	confirmed := true
	err := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(fmt.Sprintf("Use %q?", item.Text())).
				Description(item.ID()).
				Value(&confirmed),
		),
	).WithInput(in).WithOutput(out).Run()
	if errors.Is(err, huh.ErrUserAborted) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return confirmed, nil
}

// writeItem prints the picked item: its id as text, or the whole item as
// YAML.
func writeItem(w io.Writer, item filterlist.ListItem, format string) error {
	switch format {
	case "text":
		_, err := fmt.Fprintln(w, item.ID())
		return err
	case "yaml":
		out, ok := item.(config.Item)
		if !ok {
			out = config.Item{Key: item.ID(), Label: item.Text()}
		}
		data, err := yaml.Marshal(out)
		if err != nil {
			return fmt.Errorf("encoding item: %w", err)
		}
		_, err = w.Write(data)
		return err
	default:
		return fmt.Errorf("unknown format %q (want text or yaml)", format)
	}
}
