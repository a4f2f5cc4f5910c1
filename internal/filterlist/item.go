package filterlist

// ListItem is anything the list can show. ID must be unique across all
// groups handed to the same FilterList; Text is what the filter matches.
type ListItem interface {
	ID() string
	Text() string
}

// Item is the stock ListItem.
type Item struct {
	Key   string
	Label string
}

// ID returns the item key.
func (it Item) ID() string { return it.Key }

// Text returns the item label.
func (it Item) Text() string { return it.Label }

// Group is a named, ordered run of items.
type Group struct {
	Identifier string
	Items      []ListItem
}

// itemID returns the id of item, or false for a nil item.
func itemID(item ListItem) (string, bool) {
	if item == nil {
		return "", false
	}
	return item.ID(), true
}

// sameItem reports whether a and b refer to the same item id. Two nil items
// are the same.
func sameItem(a, b ListItem) bool {
	aID, aOK := itemID(a)
	bID, bOK := itemID(b)
	return aOK == bOK && aID == bID
}

// sameGroups compares two group slices by identifier, item id and item text.
func sameGroups(a, b []Group) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].Identifier != b[i].Identifier || len(a[i].Items) != len(b[i].Items) {
			return false
		}
		for j := range a[i].Items {
			x, y := a[i].Items[j], b[i].Items[j]
			if !sameItem(x, y) {
				return false
			}
			if x != nil && x.Text() != y.Text() {
				return false
			}
		}
	}
	return true
}
