package filterlist

import "strings"

// CanSelectRow reports whether row i may hold the selection.
func (f *FilterList) CanSelectRow(i int) bool {
	if f.props.Disabled {
		return false
	}
	return f.state.ItemAt(i) != nil
}

// HandleRowClick runs OnItemClick for item rows. Header rows are ignored.
func (f *FilterList) HandleRowClick(i int) {
	f.begin()
	defer f.end()
	f.clickRow(i)
}

// HandleListSelectionChange records a selection made by the list itself
// and reports it with a PointerOrKeyboard source.
func (f *FilterList) HandleListSelectionChange(i int, input InputSource) {
	f.begin()
	defer f.end()

	f.state = f.state.withSelection(i)
	item := f.state.SelectedItem()
	if item != nil && f.props.OnSelectionChange != nil {
		f.props.OnSelectionChange(item, PointerOrKeyboard(input))
	}
}

// HandleRowKeyDown handles an arrow key pressed while row i is current in
// the list. ArrowUp on the topmost selectable row and ArrowDown on the
// bottommost one hand focus back to the filter input; it returns true when
// the list must skip its own handling of the key.
func (f *FilterList) HandleRowKeyDown(i int, key Key) bool {
	if key != KeyArrowUp && key != KeyArrowDown {
		return false
	}
	if f.list == nil {
		return false
	}

	var boundary int
	var ok bool
	if key == KeyArrowUp {
		boundary, ok = f.list.NextSelectableRow(Down, -1)
	} else {
		boundary, ok = f.list.NextSelectableRow(Up, len(f.state.Rows))
	}
	if !ok || i != boundary {
		return false
	}

	f.focusInput()
	return true
}

// HandleFilterKeyDown handles a key pressed in the filter input and returns
// true when the input must skip its own handling of the key.
func (f *FilterList) HandleFilterKeyDown(ev KeyEvent) bool {
	f.begin()
	defer f.end()

	if f.props.OnFilterKeyDown != nil && f.props.OnFilterKeyDown(ev) {
		return true
	}

	switch ev.Key {
	case KeyArrowDown:
		f.enterList(Down, -1)
		return true
	case KeyArrowUp:
		f.enterList(Up, len(f.state.Rows))
		return true
	case KeyEnter:
		if len(f.state.Rows) == 0 {
			return true
		}
		text := f.props.FilterText
		if text != "" && strings.TrimSpace(text) == "" {
			return true
		}
		if f.list == nil {
			return false
		}
		if row, ok := f.list.NextSelectableRow(Down, -1); ok {
			f.clickRow(row)
		}
	}
	return false
}

// HandleFilterChange forwards an edit of the filter input to the caller.
// The widget keeps no copy of the text; the caller feeds it back in Props.
func (f *FilterList) HandleFilterChange(value string) {
	f.begin()
	defer f.end()

	if value == f.props.FilterText || f.props.OnFilterTextChange == nil {
		return
	}
	f.props.OnFilterTextChange(value)
}

func (f *FilterList) clickRow(i int) {
	item := f.state.ItemAt(i)
	if item == nil || f.props.OnItemClick == nil {
		return
	}
	f.props.OnItemClick(item)
}

// enterList selects the first selectable row met scanning from from in dir
// and moves focus into the list.
func (f *FilterList) enterList(dir Direction, from int) {
	if len(f.state.Rows) == 0 || f.list == nil {
		return
	}
	if row, ok := f.list.NextSelectableRow(dir, from); ok {
		f.state = f.state.withSelection(row)
	}
	f.list.Focus()
}

func (f *FilterList) focusInput() {
	if f.input != nil {
		f.input.Focus()
	}
}
