package tui

import (
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"

	"github.com/ruminaider/filterlist/internal/filterlist"
)

// Options configures the picker.
type Options struct {
	Groups      []filterlist.Group
	Title       string
	Placeholder string
	FilterText  string
	Selected    filterlist.ListItem
	NoHeaders   bool
	RowHeight   int
	Disabled    bool
	Logger      zerolog.Logger
}

// Model is the picker: a filter field over a grouped list. It owns the filter
// text and the selection and feeds them back to the widget as props, so every
// change the widget reports goes through the same path a host application
// would use.
type Model struct {
	opts   Options
	widget *filterlist.FilterList
	input  *FilterInput
	list   *ListView
	ring   *focusRing
	keys   KeyMap
	status StatusBar
	log    zerolog.Logger

	filterText string
	selected   filterlist.ListItem
	chosen     filterlist.ListItem
	cancelled  bool

	total         int
	width, height int
}

// NewModel creates the picker and mounts the widget on its list and filter.
func NewModel(opts Options) *Model {
	keys := DefaultKeyMap()
	m := &Model{
		opts:       opts,
		keys:       keys,
		status:     NewStatusBar(keys),
		log:        opts.Logger,
		filterText: opts.FilterText,
		selected:   opts.Selected,
		ring:       &focusRing{},
	}
	for _, g := range opts.Groups {
		m.total += len(g.Items)
	}

	m.widget = filterlist.New(m.props())
	m.input = NewFilterInput(m.widget, m.ring, keys, opts.Placeholder)
	m.input.SetValue(opts.FilterText)
	m.input.SetDisabled(opts.Disabled)
	m.list = NewListView(m.widget, m.ring, keys)
	m.ring.onChange = func(from, to FocusZone) {
		m.log.Debug().Stringer("from", from).Stringer("to", to).Msg("focus moved")
	}

	m.widget.Mount(m.list, m.input)
	m.list.Sync()
	m.status.Update(m.widget.State().ItemCount(), m.total, m.ring.zone)
	return m
}

// props builds the widget props from the current caller state.
func (m *Model) props() filterlist.Props {
	p := filterlist.Props{
		RowHeight:    m.opts.RowHeight,
		Groups:       m.opts.Groups,
		SelectedItem: m.selected,
		FilterText:   m.filterText,
		Placeholder:  m.opts.Placeholder,
		Disabled:     m.opts.Disabled,

		RenderItem: RenderItem,
		RenderPostFilter: func() string {
			return m.status.View()
		},
		RenderNoItems: func() string {
			return RenderNoItems(m.filterText)
		},

		OnItemClick:        m.onItemClick,
		OnSelectionChange:  m.onSelectionChange,
		OnFilterTextChange: m.onFilterTextChange,
		OnFilterKeyDown:    m.onFilterKeyDown,
	}
	if !m.opts.NoHeaders {
		p.RenderGroupHeader = RenderGroupHeader
	}
	if m.opts.Title != "" {
		p.RenderPreFilter = func() string { return RenderTitle(m.opts.Title) }
	}
	return p
}

func (m *Model) onFilterTextChange(text string) {
	m.log.Debug().Str("filter", text).Msg("filter changed")
	m.filterText = text
	m.widget.SetProps(m.props())
	m.input.SetValue(text)
}

func (m *Model) onSelectionChange(item filterlist.ListItem, src filterlist.SelectionSource) {
	ev := m.log.Debug().Stringer("source", src)
	if item != nil {
		ev = ev.Str("item", item.ID())
	}
	ev.Msg("selection changed")

	m.selected = item
	m.widget.SetProps(m.props())
}

func (m *Model) onItemClick(item filterlist.ListItem) {
	m.log.Info().Str("item", item.ID()).Msg("item picked")
	m.chosen = item
}

// onFilterKeyDown clears the filter on esc, or cancels when it is already
// empty.
func (m *Model) onFilterKeyDown(ev filterlist.KeyEvent) bool {
	if !slices.Contains(m.keys.Back.Keys(), ev.Name) {
		return false
	}
	if m.filterText != "" {
		m.onFilterTextChange("")
		return true
	}
	m.log.Debug().Msg("cancelled from filter")
	m.cancelled = true
	return true
}

// Init starts the cursor blinking.
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update routes key presses to the focused control and mouse events to the
// list, then quits once an item was picked or the picker was cancelled.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.layout()
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			m.cancelled = true
			break
		}
		cmd = m.handleKey(msg)
	case tea.MouseMsg:
		cmd = m.list.Update(msg)
	default:
		cmd = m.input.Update(msg)
	}

	m.input.SetValue(m.filterText)
	m.list.Sync()
	m.status.Update(m.widget.State().ItemCount(), m.total, m.ring.zone)

	if m.chosen != nil || m.cancelled {
		return m, tea.Quit
	}
	return m, cmd
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	if m.input.Focused() {
		return m.input.Update(msg)
	}
	switch {
	case key.Matches(msg, m.keys.Back):
		m.input.Focus()
		return nil
	case msg.Type == tea.KeyRunes, msg.Type == tea.KeySpace, msg.Type == tea.KeyBackspace:
		// Typing in the list goes to the filter.
		m.input.Focus()
		return m.input.Update(msg)
	}
	return m.list.Update(msg)
}

// layout sizes the controls to the window.
func (m *Model) layout() {
	w := m.width - ContentPaneStyle.GetHorizontalFrameSize()
	m.input.SetWidth(w)
	m.list.SetWidth(w)
	m.status.SetWidth(w)

	top := 1 // filter line
	if pre, ok := m.widget.RenderPreFilter(); ok {
		top += lipgloss.Height(pre)
	}
	m.list.SetTop(top)
	m.list.SetHeight(max(1, m.height-top-1))
}

// View renders the title, the filter, the rows and the status bar.
func (m *Model) View() string {
	var parts []string
	if pre, ok := m.widget.RenderPreFilter(); ok {
		parts = append(parts, pre)
	}
	parts = append(parts, m.input.View())
	if m.widget.RowCount() == 0 {
		if s, ok := m.widget.RenderNoItems(); ok {
			parts = append(parts, s)
		}
	} else {
		parts = append(parts, m.list.View())
	}
	if post, ok := m.widget.RenderPostFilter(); ok {
		parts = append(parts, post)
	}
	return ContentPaneStyle.Render(strings.Join(parts, "\n"))
}

// Chosen returns the picked item, or nil.
func (m *Model) Chosen() filterlist.ListItem { return m.chosen }

// Cancelled reports whether the picker was dismissed without a pick.
func (m *Model) Cancelled() bool { return m.cancelled }

// FilterText returns the current filter text.
func (m *Model) FilterText() string { return m.filterText }

// Selected returns the caller-side selection.
func (m *Model) Selected() filterlist.ListItem { return m.selected }

// Focus returns the zone holding keyboard focus.
func (m *Model) Focus() FocusZone { return m.ring.zone }
