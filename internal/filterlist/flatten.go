package filterlist

import "strings"

// Flatten turns groups into rows for the given filter text and picks the
// selected row.
//
// An item matches when its lower-cased text contains the lower-cased filter.
// Groups without matches are dropped along with their header. Header rows are
// only emitted when withHeaders is set.
//
// The row holding selected (by id) wins. Otherwise a non-empty filter selects
// the first item row and an empty filter selects nothing.
func Flatten(groups []Group, filterText string, selected ListItem, withHeaders bool) DerivedState {
	needle := strings.ToLower(filterText)

	var rows []Row
	for _, g := range groups {
		var matched []ListItem
		for _, it := range g.Items {
			if it == nil {
				continue
			}
			if strings.Contains(strings.ToLower(it.Text()), needle) {
				matched = append(matched, it)
			}
		}
		if len(matched) == 0 {
			continue
		}
		if withHeaders {
			rows = append(rows, Row{Kind: RowGroupHeader, Group: g.Identifier})
		}
		for _, it := range matched {
			rows = append(rows, Row{Kind: RowItem, Group: g.Identifier, Item: it})
		}
	}

	return DerivedState{
		Rows:        rows,
		SelectedRow: initialSelection(rows, filterText, selected),
	}
}

func initialSelection(rows []Row, filterText string, selected ListItem) int {
	if id, ok := itemID(selected); ok {
		for i, r := range rows {
			if r.Kind == RowItem && r.Item.ID() == id {
				return i
			}
		}
	}
	if filterText == "" {
		return NoSelection
	}
	return firstItemRow(rows)
}

func firstItemRow(rows []Row) int {
	for i, r := range rows {
		if r.Kind == RowItem {
			return i
		}
	}
	return NoSelection
}
