package filterlist

// NoSelection is the SelectedRow value when no row is selected.
const NoSelection = -1

// RowKind distinguishes header rows from item rows.
type RowKind int

const (
	RowItem        RowKind = iota
	RowGroupHeader         // Never selectable
)

// String returns a short name for the row kind.
func (k RowKind) String() string {
	switch k {
	case RowItem:
		return "item"
	case RowGroupHeader:
		return "header"
	default:
		return "unknown"
	}
}

// Row is one entry of the flattened list. Item is nil for header rows.
type Row struct {
	Kind  RowKind
	Group string
	Item  ListItem
}

// DerivedState is the flattened view of the caller's groups. SelectedRow is
// NoSelection or the index of an item row.
type DerivedState struct {
	Rows        []Row
	SelectedRow int
}

// Row returns the row at index i, or false when i is out of range.
func (s DerivedState) Row(i int) (Row, bool) {
	if i < 0 || i >= len(s.Rows) {
		return Row{}, false
	}
	return s.Rows[i], true
}

// ItemAt returns the item at row i. Header rows and stale indices yield nil.
func (s DerivedState) ItemAt(i int) ListItem {
	r, ok := s.Row(i)
	if !ok || r.Kind != RowItem {
		return nil
	}
	return r.Item
}

// SelectedItem returns the item of the selected row, or nil.
func (s DerivedState) SelectedItem() ListItem {
	return s.ItemAt(s.SelectedRow)
}

// ItemCount returns the number of item rows.
func (s DerivedState) ItemCount() int {
	n := 0
	for _, r := range s.Rows {
		if r.Kind == RowItem {
			n++
		}
	}
	return n
}

// withSelection returns a copy of s pointing at row i. Indices that are not
// item rows collapse to NoSelection.
func (s DerivedState) withSelection(i int) DerivedState {
	if s.ItemAt(i) == nil {
		i = NoSelection
	}
	return DerivedState{Rows: s.Rows, SelectedRow: i}
}
