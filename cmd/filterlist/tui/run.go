package tui

import (
	"errors"
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ruminaider/filterlist/internal/filterlist"
)

var (
	// ErrCancelled is returned when the picker is dismissed without a pick.
	ErrCancelled = errors.New("cancelled")

	// ErrNoItems is returned when there is nothing to pick from.
	ErrNoItems = errors.New("no items to pick from")
)

// Run shows the picker on out, reading keys from in, and returns the picked
// item.
func Run(opts Options, in io.Reader, out io.Writer) (filterlist.ListItem, error) {
	n := 0
	for _, g := range opts.Groups {
		n += len(g.Items)
	}
	if n == 0 {
		return nil, ErrNoItems
	}

	m := NewModel(opts)
	p := tea.NewProgram(m,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithInput(in),
		tea.WithOutput(out),
	)
	final, err := p.Run()
	if err != nil {
		return nil, fmt.Errorf("running picker: %w", err)
	}
	fm := final.(*Model)
	if fm.Chosen() == nil {
		return nil, ErrCancelled
	}
	return fm.Chosen(), nil
}
