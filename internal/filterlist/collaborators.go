package filterlist

// Direction is a scan direction through the rows.
type Direction int

const (
	Down Direction = iota
	Up
)

// ListControl is the list the widget drives. NextSelectableRow scans in dir
// starting just past from (so Down from -1 finds the first selectable row and
// Up from the row count finds the last one) and reports false when nothing
// selectable is left. Focus moves keyboard focus into the list.
type ListControl interface {
	NextSelectableRow(dir Direction, from int) (int, bool)
	Focus()
}

// TextInput is the filter field the widget drives.
type TextInput interface {
	Focus()
	SelectAll()
}

// Key is the part of a key press the navigation logic cares about.
type Key int

const (
	KeyOther Key = iota
	KeyArrowUp
	KeyArrowDown
	KeyEnter
)

// KeyEvent is a key press inside the filter input. Name is the host's
// description of the key ("ctrl+n", "esc", "a", ...).
type KeyEvent struct {
	Key  Key
	Name string
}
