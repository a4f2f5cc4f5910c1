package tui

import (
	catppuccin "github.com/catppuccin/go"
	"github.com/charmbracelet/lipgloss"
)

// Catppuccin Mocha palette.
var flavor = catppuccin.Mocha

// Color constants extracted from the Mocha palette for convenience.
var (
	colorBase     = lipgloss.Color(flavor.Base().Hex)
	colorSurface0 = lipgloss.Color(flavor.Surface0().Hex)
	colorSurface1 = lipgloss.Color(flavor.Surface1().Hex)
	colorText     = lipgloss.Color(flavor.Text().Hex)
	colorSubtext0 = lipgloss.Color(flavor.Subtext0().Hex)
	colorBlue     = lipgloss.Color(flavor.Blue().Hex)
	colorYellow   = lipgloss.Color(flavor.Yellow().Hex)
	colorMauve    = lipgloss.Color(flavor.Mauve().Hex)
	colorOverlay0 = lipgloss.Color(flavor.Overlay0().Hex)
)

// Filter input styles.
var (
	// PromptStyle is used for the "> " prompt in front of the filter.
	PromptStyle = lipgloss.NewStyle().
			Foreground(colorBlue).
			Bold(true)

	// SelectAllStyle highlights the filter text while it is fully selected.
	SelectAllStyle = lipgloss.NewStyle().
			Foreground(colorBase).
			Background(colorBlue)

	// PlaceholderStyle is used for the empty filter placeholder.
	PlaceholderStyle = lipgloss.NewStyle().
				Foreground(colorOverlay0)
)

// List styles.
var (
	// HeaderStyle is used for group header rows.
	HeaderStyle = lipgloss.NewStyle().
			Foreground(colorMauve).
			Bold(true)

	// CurrentStyle is used for the selected row while the list has focus.
	CurrentStyle = lipgloss.NewStyle().
			Foreground(colorText).
			Background(colorSurface1).
			Bold(true)

	// SelectedBlurredStyle is used for the selected row while the filter has focus.
	SelectedBlurredStyle = lipgloss.NewStyle().
				Foreground(colorBlue)

	// DimStyle is used for secondary text, disabled rows and scroll hints.
	DimStyle = lipgloss.NewStyle().
			Foreground(colorOverlay0)

	// ContentPaneStyle wraps the whole picker.
	ContentPaneStyle = lipgloss.NewStyle().
				PaddingLeft(1).
				PaddingRight(1)
)

// Title and status styles.
var (
	// TitleStyle is used for the title above the filter.
	TitleStyle = lipgloss.NewStyle().
			Foreground(colorBlue).
			Bold(true)

	// StatusBarStyle is the base style for the bottom status bar.
	StatusBarStyle = lipgloss.NewStyle().
			Foreground(colorSubtext0).
			Background(colorSurface0).
			Padding(0, 1)

	// StatusBarKeyStyle highlights keyboard shortcuts in the status bar.
	StatusBarKeyStyle = lipgloss.NewStyle().
				Foreground(colorYellow).
				Background(colorSurface0).
				Bold(true)
)
