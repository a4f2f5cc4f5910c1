package filterlist

// RenderRow renders row i through the caller's callbacks. It returns false
// for out-of-range indices and for header rows without a header renderer.
// focused tells the item renderer whether the list holds keyboard focus.
func (f *FilterList) RenderRow(i int, focused bool) (string, bool) {
	r, ok := f.state.Row(i)
	if !ok {
		return "", false
	}
	if r.Kind == RowGroupHeader {
		if f.props.RenderGroupHeader == nil {
			return "", false
		}
		return f.props.RenderGroupHeader(r.Group), true
	}
	if f.props.RenderItem == nil {
		return r.Item.Text(), true
	}
	return f.props.RenderItem(r.Item, RowState{
		Index:    i,
		Selected: i == f.state.SelectedRow,
		Focused:  focused,
		Disabled: f.props.Disabled,
	}), true
}

// RenderPreFilter renders the slot above the filter input.
func (f *FilterList) RenderPreFilter() (string, bool) { return renderSlot(f.props.RenderPreFilter) }

// RenderPostFilter renders the slot below the list.
func (f *FilterList) RenderPostFilter() (string, bool) { return renderSlot(f.props.RenderPostFilter) }

// RenderNoItems renders the slot shown instead of an empty list.
func (f *FilterList) RenderNoItems() (string, bool) { return renderSlot(f.props.RenderNoItems) }

func renderSlot(fn func() string) (string, bool) {
	if fn == nil {
		return "", false
	}
	return fn(), true
}
