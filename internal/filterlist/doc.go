// Package filterlist implements a filterable, grouped, single-selection list
// that pairs a text filter input with a list control.
//
// The package has no rendering or terminal dependencies. It turns caller
// supplied groups into a flat sequence of rows, keeps track of which row is
// selected while the filter text, the groups and the caller's selection
// change, and decides when keyboard focus moves between the filter input and
// the list.
//
// # Main Types
//
//   - [FilterList]: the widget state container and event handlers
//   - [Props]: caller-owned configuration, callbacks and render slots
//   - [DerivedState]: the flattened rows plus the selected row index
//   - [ListControl], [TextInput]: the two collaborators the widget drives
//
// # Flattening
//
// [Flatten] is a pure function. For every group it keeps the items whose
// lower-cased text contains the lower-cased filter, drops groups with no
// matches, and emits a header row before the items when a group header
// renderer is configured.
//
// # Controlled Values
//
// The caller owns the filter text and the selected item. The widget reports
// edits through [Props.OnFilterTextChange] and [Props.OnSelectionChange] and
// expects the caller to feed the new values back with [FilterList.SetProps].
// Callbacks may call SetProps re-entrantly:
//
//	var fl *filterlist.FilterList
//	props := filterlist.Props{Groups: groups}
//	props.OnFilterTextChange = func(text string) {
//	    props.FilterText = text
//	    fl.SetProps(props)
//	}
//	fl = filterlist.New(props)
//
// Selection drift caused by prop changes is reported once per update batch
// with a [SourceFilterTextChange] source.
package filterlist
