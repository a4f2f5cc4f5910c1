package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ruminaider/filterlist/internal/filterlist"
)

type recordingEvents struct {
	keys    []filterlist.KeyEvent
	changes []string
	cancel  bool
}

func (r *recordingEvents) HandleFilterKeyDown(ev filterlist.KeyEvent) bool {
	r.keys = append(r.keys, ev)
	return r.cancel
}

func (r *recordingEvents) HandleFilterChange(v string) {
	r.changes = append(r.changes, v)
}

func newTestFilterInput() (*FilterInput, *recordingEvents) {
	ev := &recordingEvents{}
	fi := NewFilterInput(ev, &focusRing{}, DefaultKeyMap(), "search")
	fi.Focus()
	return fi, ev
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestFilterInput_ReportsEdits(t *testing.T) {
	fi, ev := newTestFilterInput()

	fi.Update(runes("a"))
	fi.Update(runes("b"))
	fi.Update(tea.KeyMsg{Type: tea.KeyBackspace})

	assert.Equal(t, []string{"a", "ab", "a"}, ev.changes)
	assert.Equal(t, "a", fi.Value())
	assert.Len(t, ev.keys, 3)
}

func TestFilterInput_KeyHandlerCancels(t *testing.T) {
	fi, ev := newTestFilterInput()
	ev.cancel = true

	fi.Update(runes("a"))
	assert.Empty(t, fi.Value())
	assert.Empty(t, ev.changes)
	assert.Equal(t, filterlist.KeyOther, ev.keys[0].Key)
	assert.Equal(t, "a", ev.keys[0].Name)
}

func TestFilterInput_NavigationKeysAreDescribed(t *testing.T) {
	fi, ev := newTestFilterInput()

	fi.Update(tea.KeyMsg{Type: tea.KeyDown})
	fi.Update(tea.KeyMsg{Type: tea.KeyCtrlP})
	fi.Update(tea.KeyMsg{Type: tea.KeyEnter})

	assert.Equal(t, []filterlist.KeyEvent{
		{Key: filterlist.KeyArrowDown, Name: "down"},
		{Key: filterlist.KeyArrowUp, Name: "ctrl+p"},
		{Key: filterlist.KeyEnter, Name: "enter"},
	}, ev.keys)
}

func TestFilterInput_SelectAllReplacesOnType(t *testing.T) {
	fi, ev := newTestFilterInput()
	fi.SetValue("old")
	fi.SelectAll()
	assert.True(t, fi.AllSelected())

	fi.Update(runes("x"))
	assert.Equal(t, "x", fi.Value())
	assert.False(t, fi.AllSelected())
	assert.Equal(t, []string{"x"}, ev.changes)
}

func TestFilterInput_SelectAllClearsOnBackspace(t *testing.T) {
	fi, ev := newTestFilterInput()
	fi.SetValue("old")
	fi.SelectAll()

	fi.Update(tea.KeyMsg{Type: tea.KeyBackspace})
	assert.Empty(t, fi.Value())
	assert.Equal(t, []string{""}, ev.changes)
}

func TestFilterInput_SelectAllOnEmptyIsNoop(t *testing.T) {
	fi, _ := newTestFilterInput()
	fi.SelectAll()
	assert.False(t, fi.AllSelected())
}

func TestFilterInput_IgnoresKeysWhenBlurredOrDisabled(t *testing.T) {
	fi, ev := newTestFilterInput()

	fi.focus.move(FocusListBody)
	fi.Update(runes("a"))
	assert.Empty(t, ev.keys)

	fi.Focus()
	fi.SetDisabled(true)
	fi.Update(runes("a"))
	assert.Empty(t, ev.keys)
	assert.Empty(t, fi.Value())
}

func TestFilterInput_View(t *testing.T) {
	fi, _ := newTestFilterInput()
	fi.SetValue("abc")
	assert.Contains(t, fi.View(), "abc")

	fi.SelectAll()
	assert.Contains(t, fi.View(), "> abc")
}
