package tui

// FocusZone identifies which control currently has keyboard focus.
type FocusZone int

const (
	FocusFilterInput FocusZone = iota
	FocusListBody
)

// String returns the display name for a focus zone.
func (z FocusZone) String() string {
	switch z {
	case FocusFilterInput:
		return "filter"
	case FocusListBody:
		return "list"
	default:
		return "unknown"
	}
}

// focusRing is shared by the filter input and the list so that focusing one
// blurs the other.
type focusRing struct {
	zone     FocusZone
	input    *FilterInput
	onChange func(from, to FocusZone)
}

func (r *focusRing) move(to FocusZone) {
	from := r.zone
	r.zone = to
	if r.input != nil {
		if to == FocusFilterInput {
			r.input.input.Focus()
		} else {
			r.input.input.Blur()
		}
	}
	if from != to && r.onChange != nil {
		r.onChange(from, to)
	}
}
