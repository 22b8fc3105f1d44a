package view

import (
	"github.com/charmbracelet/lipgloss"
)

const (
	ribbonWidth = 28
	panelWidth  = 48
	rootGap     = 2
)

var (
	// Colors
	onFillColor    = lipgloss.Color("#ffffff")
	panelTextColor = lipgloss.Color("#000000")
	mutedColor     = lipgloss.Color("245")
	errorColor     = lipgloss.Color("196")
	focusColor     = lipgloss.Color("212")
)

// Styles holds the lipgloss styles used to draw a badge. Severity colors are
// not part of it; they come from the render tree.
type Styles struct {
	Ribbon       lipgloss.Style
	Label        lipgloss.Style
	Hint         lipgloss.Style
	Attrs        lipgloss.Style
	Focus        lipgloss.Style
	Panel        lipgloss.Style
	Heading      lipgloss.Style
	Close        lipgloss.Style
	Short        lipgloss.Style
	Full         lipgloss.Style
	ErrorBanner  lipgloss.Style
	ErrorHeading lipgloss.Style
}

// NewStyles builds the default styles against the given lipgloss renderer.
func NewStyles(r *lipgloss.Renderer) Styles {
	textBox := r.NewStyle().
		Foreground(panelTextColor).
		Background(onFillColor).
		Padding(1, 2).
		MarginTop(1).
		Width(panelWidth - 4)

	return Styles{
		Ribbon: r.NewStyle().
			Foreground(onFillColor).
			Padding(1, 2).
			Width(ribbonWidth).
			Align(lipgloss.Center),

		Label: r.NewStyle().
			Bold(true),

		Hint: r.NewStyle(),

		Attrs: r.NewStyle().
			Foreground(mutedColor).
			Faint(true),

		Focus: r.NewStyle().
			BorderStyle(lipgloss.ThickBorder()).
			BorderForeground(focusColor),

		Panel: r.NewStyle().
			Padding(1, 2).
			Width(panelWidth),

		Heading: r.NewStyle().
			Bold(true).
			Foreground(onFillColor),

		Close: r.NewStyle().
			Bold(true).
			Foreground(onFillColor),

		Short: textBox.Italic(true),

		Full: textBox,

		ErrorBanner: r.NewStyle().
			Foreground(errorColor).
			Bold(true).
			Padding(1, 2).
			BorderStyle(lipgloss.ThickBorder()).
			BorderForeground(errorColor),

		ErrorHeading: r.NewStyle().
			Bold(true).
			Underline(true),
	}
}
