package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/ruminaider/filterlist/internal/filterlist"
)

// RowSource is what the list shows and whom it reports to.
// *filterlist.FilterList implements it.
type RowSource interface {
	RowCount() int
	SelectedRow() int
	RowHeight() int
	CanSelectRow(i int) bool
	RenderRow(i int, focused bool) (string, bool)

	HandleListSelectionChange(i int, input filterlist.InputSource)
	HandleRowClick(i int)
	HandleRowKeyDown(i int, k filterlist.Key) bool
}

// ListView is a scrolling list of fixed-height rows. Only the rows inside
// the viewport are rendered.
type ListView struct {
	rows  RowSource
	focus *focusRing
	keys  KeyMap

	height int // viewport height in lines
	width  int
	top    int // screen line of the first viewport line, for mouse hit tests
	offset int // index of the first visible row

	lastSelected int
}

// NewListView creates a list over rows.
func NewListView(rows RowSource, ring *focusRing, keys KeyMap) *ListView {
	return &ListView{
		rows:         rows,
		focus:        ring,
		keys:         keys,
		height:       20, // sensible default
		lastSelected: filterlist.NoSelection,
	}
}

// Focus moves keyboard focus into the list.
func (l *ListView) Focus() {
	l.focus.move(FocusListBody)
}

// Focused reports whether the list has keyboard focus.
func (l *ListView) Focused() bool {
	return l.focus.zone == FocusListBody
}

// SetHeight sets the viewport height in lines.
func (l *ListView) SetHeight(h int) {
	l.height = h
	l.ensureVisible()
}

// SetWidth sets the available width. Rows are truncated to it.
func (l *ListView) SetWidth(w int) {
	l.width = w
}

// SetTop records the screen line where the list starts.
func (l *ListView) SetTop(y int) {
	l.top = y
}

// Offset returns the index of the first visible row.
func (l *ListView) Offset() int {
	return l.offset
}

// NextSelectableRow scans from just past from in dir.
func (l *ListView) NextSelectableRow(dir filterlist.Direction, from int) (int, bool) {
	n := l.rows.RowCount()
	step := 1
	if dir == filterlist.Up {
		step = -1
		if from > n {
			from = n
		}
	} else if from < -1 {
		from = -1
	}
	for i := from + step; i >= 0 && i < n; i += step {
		if l.rows.CanSelectRow(i) {
			return i, true
		}
	}
	return -1, false
}

// Sync brings the viewport in line with the rows after they changed. The
// selected row is scrolled into view when it moved.
func (l *ListView) Sync() {
	if cur := l.rows.SelectedRow(); cur != l.lastSelected {
		l.ensureVisible()
		return
	}
	l.clampOffset()
}

// Update handles key messages while focused and mouse messages always.
func (l *ListView) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if l.Focused() {
			l.handleKey(msg)
		}
	case tea.MouseMsg:
		l.handleMouse(msg)
	}
	return nil
}

func (l *ListView) handleKey(msg tea.KeyMsg) {
	cur := l.rows.SelectedRow()
	n := l.rows.RowCount()

	switch {
	case key.Matches(msg, l.keys.Up):
		if l.rows.HandleRowKeyDown(cur, filterlist.KeyArrowUp) {
			return
		}
		from := cur
		if from < 0 {
			from = n
		}
		l.selectNext(filterlist.Up, from)
	case key.Matches(msg, l.keys.Down):
		if l.rows.HandleRowKeyDown(cur, filterlist.KeyArrowDown) {
			return
		}
		l.selectNext(filterlist.Down, cur)
	case key.Matches(msg, l.keys.PageUp):
		l.pageMove(-l.visibleRows())
	case key.Matches(msg, l.keys.PageDown):
		l.pageMove(l.visibleRows())
	case key.Matches(msg, l.keys.Home):
		l.selectNext(filterlist.Down, -1)
	case key.Matches(msg, l.keys.End):
		l.selectNext(filterlist.Up, n)
	case key.Matches(msg, l.keys.Enter):
		if l.rows.CanSelectRow(cur) {
			l.rows.HandleRowClick(cur)
		}
	}
}

func (l *ListView) handleMouse(msg tea.MouseMsg) {
	switch msg.Button {
	case tea.MouseButtonWheelUp:
		l.offset--
		l.clampOffset()
	case tea.MouseButtonWheelDown:
		l.offset++
		l.clampOffset()
	case tea.MouseButtonLeft:
		if msg.Action != tea.MouseActionPress {
			return
		}
		i, ok := l.rowAt(msg.Y)
		if !ok {
			return
		}
		l.Focus()
		if !l.rows.CanSelectRow(i) {
			return
		}
		if i != l.rows.SelectedRow() {
			l.rows.HandleListSelectionChange(i, filterlist.InputPointer)
		}
		l.rows.HandleRowClick(i)
	}
}

// selectNext reports the next selectable row in dir as the new selection.
func (l *ListView) selectNext(dir filterlist.Direction, from int) {
	i, ok := l.NextSelectableRow(dir, from)
	if !ok || i == l.rows.SelectedRow() {
		return
	}
	l.rows.HandleListSelectionChange(i, filterlist.InputKeyboard)
}

// pageMove moves the selection by about delta rows, landing on the nearest
// selectable row on the near side of the target.
func (l *ListView) pageMove(delta int) {
	n := l.rows.RowCount()
	if n == 0 {
		return
	}
	cur := l.rows.SelectedRow()
	target := max(0, min(n-1, cur+delta))

	if delta > 0 {
		if i, ok := l.NextSelectableRow(filterlist.Up, target+1); ok && i > cur {
			l.rows.HandleListSelectionChange(i, filterlist.InputKeyboard)
		}
		return
	}
	if i, ok := l.NextSelectableRow(filterlist.Down, target-1); ok && (cur < 0 || i < cur) {
		l.rows.HandleListSelectionChange(i, filterlist.InputKeyboard)
	}
}

// rowAt maps a screen line to a row index.
func (l *ListView) rowAt(y int) (int, bool) {
	line := y - l.top
	if l.overflow() {
		line-- // "more" indicator line
	}
	if line < 0 {
		return -1, false
	}
	i := l.offset + line/l.rows.RowHeight()
	if i >= l.end() || i >= l.rows.RowCount() {
		return -1, false
	}
	return i, true
}

// View renders the visible rows. With more rows than fit, one line above and
// one below are reserved for scroll hints.
func (l *ListView) View() string {
	n := l.rows.RowCount()
	if n == 0 {
		return ""
	}

	var lines []string
	overflow := l.overflow()
	if overflow {
		if l.offset > 0 {
			lines = append(lines, DimStyle.Render("  ↑ more"))
		} else {
			lines = append(lines, "")
		}
	}

	focused := l.Focused()
	end := l.end()
	for i := l.offset; i < end; i++ {
		s, _ := l.rows.RenderRow(i, focused)
		lines = append(lines, fitRow(s, l.rows.RowHeight(), l.width)...)
	}

	if overflow {
		if end < n {
			lines = append(lines, DimStyle.Render("  ↓ more"))
		} else {
			lines = append(lines, "")
		}
	}
	return strings.Join(lines, "\n")
}

// fitRow clips or pads a rendered row to exactly height lines and truncates
// each line to width cells.
func fitRow(s string, height, width int) []string {
	lines := strings.Split(s, "\n")
	if len(lines) > height {
		lines = lines[:height]
	}
	for len(lines) < height {
		lines = append(lines, "")
	}
	if width > 0 {
		for i, line := range lines {
			lines[i] = ansi.Truncate(line, width, "…")
		}
	}
	return lines
}

func (l *ListView) overflow() bool {
	return l.rows.RowCount()*l.rows.RowHeight() > l.height
}

// visibleRows returns how many rows fit in the viewport.
func (l *ListView) visibleRows() int {
	lines := l.height
	if l.overflow() {
		lines -= 2
	}
	v := lines / l.rows.RowHeight()
	if v < 1 {
		v = 1
	}
	return v
}

func (l *ListView) end() int {
	return min(l.offset+l.visibleRows(), l.rows.RowCount())
}

// ensureVisible scrolls so the selected row is inside the viewport. When
// the selection sits right under a group header, the header is kept in view
// as well.
func (l *ListView) ensureVisible() {
	cur := l.rows.SelectedRow()
	l.lastSelected = cur
	if cur >= 0 {
		vis := l.visibleRows()
		if cur < l.offset {
			l.offset = cur
		}
		if cur >= l.offset+vis {
			l.offset = cur - vis + 1
		}
		if l.offset == cur && cur > 0 && !l.rows.CanSelectRow(cur-1) && vis > 1 {
			l.offset--
		}
	}
	l.clampOffset()
}

// clampOffset keeps the offset within the rows.
func (l *ListView) clampOffset() {
	maxOffset := l.rows.RowCount() - l.visibleRows()
	if maxOffset < 0 {
		maxOffset = 0
	}
	if l.offset > maxOffset {
		l.offset = maxOffset
	}
	if l.offset < 0 {
		l.offset = 0
	}
}
