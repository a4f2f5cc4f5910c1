package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/x/ansi"
)

// StatusBar renders the bottom row with the match count and keyboard
// shortcuts.
type StatusBar struct {
	matches int
	total   int
	zone    FocusZone
	width   int

	help help.Model
	keys KeyMap
}

// NewStatusBar creates a status bar showing the short help for keys.
func NewStatusBar(keys KeyMap) StatusBar {
	h := help.New()
	h.ShortSeparator = " · "
	h.Styles.ShortKey = StatusBarKeyStyle
	h.Styles.ShortDesc = StatusBarStyle.Padding(0)
	h.Styles.ShortSeparator = StatusBarStyle.Padding(0)
	return StatusBar{help: h, keys: keys}
}

// SetWidth sets the available width for rendering.
func (s *StatusBar) SetWidth(w int) {
	s.width = w
}

// Update refreshes the counts and the focused zone.
func (s *StatusBar) Update(matches, total int, zone FocusZone) {
	s.matches = matches
	s.total = total
	s.zone = zone
}

// View renders the status bar.
func (s StatusBar) View() string {
	leftPart := fmt.Sprintf("%d/%d items · %s", s.matches, s.total, s.zone)
	rightPart := s.help.ShortHelpView(s.keys.ShortHelp())

	leftWidth := ansi.StringWidth(leftPart)
	rightWidth := ansi.StringWidth(rightPart)
	availableWidth := s.width - 2 // StatusBarStyle padding
	gap := availableWidth - leftWidth - rightWidth
	if gap < 1 {
		gap = 1
	}

	content := leftPart + strings.Repeat(" ", gap) + rightPart
	if s.width <= 0 {
		return StatusBarStyle.Render(content)
	}
	return StatusBarStyle.Width(s.width).Render(content)
}
