package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/ruminaider/filterlist/internal/filterlist"
)

// FilterEvents receives the filter input's key presses and edits.
// *filterlist.FilterList implements it.
type FilterEvents interface {
	HandleFilterKeyDown(ev filterlist.KeyEvent) bool
	HandleFilterChange(value string)
}

// FilterInput is the single-line filter field. Its value is controlled: edits
// are reported through FilterEvents and the owner writes the accepted value
// back with SetValue.
type FilterInput struct {
	input  textinput.Model
	events FilterEvents
	focus  *focusRing
	keys   KeyMap

	selectedAll bool // the whole value is highlighted; typing replaces it
	disabled    bool
}

// NewFilterInput creates the filter field and registers it with the focus
// ring.
func NewFilterInput(events FilterEvents, ring *focusRing, keys KeyMap, placeholder string) *FilterInput {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.PromptStyle = PromptStyle
	ti.PlaceholderStyle = PlaceholderStyle
	ti.Placeholder = placeholder

	fi := &FilterInput{
		input:  ti,
		events: events,
		focus:  ring,
		keys:   keys,
	}
	ring.input = fi
	return fi
}

// Focus moves keyboard focus into the filter.
func (fi *FilterInput) Focus() {
	fi.focus.move(FocusFilterInput)
}

// Focused reports whether the filter has keyboard focus.
func (fi *FilterInput) Focused() bool {
	return fi.focus.zone == FocusFilterInput
}

// SelectAll highlights the whole value so the next printable key replaces it.
func (fi *FilterInput) SelectAll() {
	if fi.input.Value() == "" {
		return
	}
	fi.selectedAll = true
	fi.input.CursorEnd()
}

// AllSelected reports whether the value is currently highlighted.
func (fi *FilterInput) AllSelected() bool {
	return fi.selectedAll
}

// Value returns the text currently shown.
func (fi *FilterInput) Value() string {
	return fi.input.Value()
}

// SetValue writes the owner's filter text into the field.
func (fi *FilterInput) SetValue(v string) {
	if v == fi.input.Value() {
		return
	}
	fi.input.SetValue(v)
	if v == "" {
		fi.selectedAll = false
	}
}

// SetPlaceholder sets the text shown while the filter is empty.
func (fi *FilterInput) SetPlaceholder(p string) {
	fi.input.Placeholder = p
}

// SetDisabled makes the field ignore key presses.
func (fi *FilterInput) SetDisabled(d bool) {
	fi.disabled = d
}

// SetWidth sets the available width including the prompt.
func (fi *FilterInput) SetWidth(w int) {
	fi.input.Width = max(1, w-len(fi.input.Prompt)-1)
}

// Update handles a key press while focused; other messages (cursor blink)
// go straight to the text input.
func (fi *FilterInput) Update(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		fi.input, cmd = fi.input.Update(msg)
		return cmd
	}
	if fi.disabled || !fi.Focused() {
		return nil
	}
	if fi.events.HandleFilterKeyDown(fi.keys.keyEvent(keyMsg)) {
		return nil
	}

	before := fi.input.Value()
	if fi.selectedAll {
		fi.selectedAll = false
		switch keyMsg.Type {
		case tea.KeyRunes, tea.KeySpace:
			fi.input.SetValue("")
		case tea.KeyBackspace, tea.KeyDelete:
			fi.input.SetValue("")
			fi.events.HandleFilterChange("")
			return nil
		}
	}

	var cmd tea.Cmd
	fi.input, cmd = fi.input.Update(keyMsg)
	if after := fi.input.Value(); after != before {
		fi.events.HandleFilterChange(after)
	}
	return cmd
}

// View renders the prompt and the filter text.
func (fi *FilterInput) View() string {
	if fi.disabled {
		return DimStyle.Render(fi.input.Prompt + fi.input.Value())
	}
	if fi.selectedAll {
		return fi.input.PromptStyle.Render(fi.input.Prompt) + SelectAllStyle.Render(fi.input.Value())
	}
	return fi.input.View()
}
