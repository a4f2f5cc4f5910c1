package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/ruminaider/filterlist/internal/filterlist"
)

// KeyMap holds the picker key bindings.
type KeyMap struct {
	Up       key.Binding
	Down     key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	Home     key.Binding
	End      key.Binding
	Enter    key.Binding
	Back     key.Binding
	Quit     key.Binding
}

// DefaultKeyMap returns the default bindings. Letters are left alone so they
// always reach the filter.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "ctrl+p"),
			key.WithHelp("↑", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "ctrl+n"),
			key.WithHelp("↓", "down"),
		),
		PageUp: key.NewBinding(
			key.WithKeys("pgup"),
			key.WithHelp("pgup", "page up"),
		),
		PageDown: key.NewBinding(
			key.WithKeys("pgdown"),
			key.WithHelp("pgdn", "page down"),
		),
		Home: key.NewBinding(
			key.WithKeys("home"),
			key.WithHelp("home", "first"),
		),
		End: key.NewBinding(
			key.WithKeys("end"),
			key.WithHelp("end", "last"),
		),
		Enter: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "pick"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
	}
}

// ShortHelp returns the bindings shown in the status bar.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Enter, k.Back}
}

// FullHelp returns every binding, grouped.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.PageUp, k.PageDown},
		{k.Home, k.End, k.Enter, k.Back, k.Quit},
	}
}

// navKey maps a key press onto the keys the widget navigates with.
func (k KeyMap) navKey(msg tea.KeyMsg) filterlist.Key {
	switch {
	case key.Matches(msg, k.Up):
		return filterlist.KeyArrowUp
	case key.Matches(msg, k.Down):
		return filterlist.KeyArrowDown
	case key.Matches(msg, k.Enter):
		return filterlist.KeyEnter
	default:
		return filterlist.KeyOther
	}
}

// keyEvent describes a key press for the filter key handler.
func (k KeyMap) keyEvent(msg tea.KeyMsg) filterlist.KeyEvent {
	return filterlist.KeyEvent{Key: k.navKey(msg), Name: msg.String()}
}
