package filterlist

// FilterList holds the derived rows and selection for one widget instance
// plus the handles of the list and input it drives. It is not safe for
// concurrent use; hosts call it from their event loop.
type FilterList struct {
	props Props
	state DerivedState

	list  ListControl
	input TextInput

	// Update batching: reconcile runs once, against the state captured when
	// the outermost batch opened.
	depth  int
	before DerivedState
}

// New builds the widget and derives its initial rows from props.
func New(props Props) *FilterList {
	f := &FilterList{props: props}
	f.state = f.derive()
	return f
}

// Mount attaches the collaborators, focuses the input and, when the filter
// already holds text, selects all of it. Either handle may be nil.
func (f *FilterList) Mount(list ListControl, input TextInput) {
	f.list = list
	f.input = input
	if input == nil {
		return
	}
	input.Focus()
	if f.props.FilterText != "" {
		input.SelectAll()
	}
}

// Unmount drops the collaborator handles. Focus requests become no-ops.
func (f *FilterList) Unmount() {
	f.list = nil
	f.input = nil
}

// SetProps replaces the props. The rows are rebuilt when the groups, the
// filter text, the selected item or the presence of a group header renderer
// changed; otherwise the current selection is kept.
func (f *FilterList) SetProps(props Props) {
	f.begin()
	defer f.end()

	prev := f.props
	f.props = props
	if derivedInputsChanged(prev, props) {
		f.state = f.derive()
	}
}

// Props returns the current props.
func (f *FilterList) Props() Props { return f.props }

// State returns the current derived state.
func (f *FilterList) State() DerivedState { return f.state }

// RowCount returns the number of flattened rows.
func (f *FilterList) RowCount() int { return len(f.state.Rows) }

// SelectedRow returns the selected row index or NoSelection.
func (f *FilterList) SelectedRow() int { return f.state.SelectedRow }

// SelectedItem returns the item of the selected row, or nil.
func (f *FilterList) SelectedItem() ListItem { return f.state.SelectedItem() }

// RowHeight returns the configured row height, at least 1.
func (f *FilterList) RowHeight() int {
	if f.props.RowHeight < 1 {
		return 1
	}
	return f.props.RowHeight
}

func (f *FilterList) derive() DerivedState {
	return Flatten(f.props.Groups, f.props.FilterText, f.props.SelectedItem, f.props.RenderGroupHeader != nil)
}

func (f *FilterList) begin() {
	if f.depth == 0 {
		f.before = f.state
	}
	f.depth++
}

func (f *FilterList) end() {
	f.depth--
	if f.depth == 0 {
		f.reconcile(f.before)
	}
}

// reconcile reports a selection that moved between prev and the current
// state unless the caller already holds the new selection.
func (f *FilterList) reconcile(prev DerivedState) {
	next := f.state.SelectedItem()
	if sameItem(prev.SelectedItem(), next) {
		return
	}
	if sameItem(f.props.SelectedItem, next) {
		return
	}
	if f.props.OnSelectionChange != nil {
		f.props.OnSelectionChange(next, FilterTextChange(f.props.FilterText))
	}
}
