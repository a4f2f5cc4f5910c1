package filterlist

import "strconv"

// SourceKind says why the selection changed.
type SourceKind int

const (
	SourcePointerOrKeyboard SourceKind = iota // The list's own mouse or key handling
	SourceFilterTextChange                    // Filtering or prop changes moved the selection
)

// InputSource is the device the list control reports for its own selection
// changes.
type InputSource int

const (
	InputKeyboard InputSource = iota
	InputPointer
)

// String returns the display name for an input source.
func (s InputSource) String() string {
	switch s {
	case InputKeyboard:
		return "keyboard"
	case InputPointer:
		return "pointer"
	default:
		return "unknown"
	}
}

// SelectionSource accompanies every selection-changed notification.
// Input is only meaningful for SourcePointerOrKeyboard and FilterText only
// for SourceFilterTextChange.
type SelectionSource struct {
	Kind       SourceKind
	Input      InputSource
	FilterText string
}

// PointerOrKeyboard returns the source for a change made inside the list.
func PointerOrKeyboard(input InputSource) SelectionSource {
	return SelectionSource{Kind: SourcePointerOrKeyboard, Input: input}
}

// FilterTextChange returns the source for a change forced by filtering.
func FilterTextChange(filterText string) SelectionSource {
	return SelectionSource{Kind: SourceFilterTextChange, FilterText: filterText}
}

// String returns a short description, e.g. "keyboard" or "filter:\"ab\"".
func (s SelectionSource) String() string {
	if s.Kind == SourceFilterTextChange {
		return "filter:" + strconv.Quote(s.FilterText)
	}
	return s.Input.String()
}
