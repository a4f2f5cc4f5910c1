package tui

import (
	"fmt"
	"strings"

	"github.com/ruminaider/filterlist/internal/filterlist"
)

// describer is implemented by items that carry a second line of text.
type describer interface {
	Description() string
}

// RenderItem renders an item row: a cursor marker, the label, and the
// description on the following line when the row is tall enough to show it.
// The selected row is highlighted strongly while the list has focus and
// only tinted while the filter has it.
func RenderItem(item filterlist.ListItem, st filterlist.RowState) string {
	cursor := "  "
	if st.Selected {
		cursor = "> "
	}

	label := item.Text()
	switch {
	case st.Disabled:
		label = DimStyle.Render(label)
	case st.Selected && st.Focused:
		label = CurrentStyle.Render(label)
	case st.Selected:
		label = SelectedBlurredStyle.Render(label)
	}

	line := cursor + label
	if d, ok := item.(describer); ok && d.Description() != "" {
		line += "\n    " + DimStyle.Render(d.Description())
	}
	return line
}

// RenderGroupHeader renders a group header row.
func RenderGroupHeader(identifier string) string {
	return HeaderStyle.Render(fmt.Sprintf("── %s ──", identifier))
}

// RenderNoItems renders the placeholder shown when nothing matches.
func RenderNoItems(filterText string) string {
	if strings.TrimSpace(filterText) == "" {
		return DimStyle.Render("  (no items)")
	}
	return DimStyle.Render(fmt.Sprintf("  no matches for %q", filterText))
}

// RenderTitle renders the title line above the filter.
func RenderTitle(title string) string {
	return TitleStyle.Render(title)
}
