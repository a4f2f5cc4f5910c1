package filterlist

// RowState is passed to RenderItem alongside the item.
type RowState struct {
	Index    int
	Selected bool
	Focused  bool // the list holds keyboard focus
	Disabled bool
}

// Props is everything the caller hands the widget. Every callback and render
// slot is optional; a nil one is skipped.
type Props struct {
	RowHeight    int
	Groups       []Group
	SelectedItem ListItem
	FilterText   string
	Placeholder  string
	Disabled     bool

	RenderItem        func(item ListItem, state RowState) string
	RenderGroupHeader func(identifier string) string
	RenderPreFilter   func() string
	RenderPostFilter  func() string
	RenderNoItems     func() string

	OnItemClick        func(item ListItem)
	OnSelectionChange  func(item ListItem, source SelectionSource)
	OnFilterTextChange func(text string)

	// OnFilterKeyDown runs before the widget's own filter key handling.
	// Returning true cancels the widget's handling.
	OnFilterKeyDown func(ev KeyEvent) bool

	// Invalidate is opaque to the widget. Hosts that cache rendered rows
	// compare it between frames.
	Invalidate any
}

// derivedInputsChanged reports whether moving from a to b requires the rows
// to be rebuilt.
func derivedInputsChanged(a, b Props) bool {
	return a.FilterText != b.FilterText ||
		!sameItem(a.SelectedItem, b.SelectedItem) ||
		(a.RenderGroupHeader == nil) != (b.RenderGroupHeader == nil) ||
		!sameGroups(a.Groups, b.Groups)
}
