package theme

import (
	"github.com/charmbracelet/lipgloss"

	"tableflip.dev/mindtrackr/pkg/chart"
	"tableflip.dev/mindtrackr/pkg/mood"
)

// Theme centralizes Lip Gloss styles for the Bubble Tea UI.
type Theme struct {
	Title  lipgloss.Style
	Footer FooterTheme
	Panel  PanelTheme
	Form   FormTheme
}

// FooterTheme groups styles used by the bottom status bar.
type FooterTheme struct {
	Help   lipgloss.Style
	Status lipgloss.Style
	Error  lipgloss.Style
}

// PanelTheme styles framed panels and headings.
type PanelTheme struct {
	Frame   lipgloss.Style
	Focused lipgloss.Style
	Title   lipgloss.Style
	Body    lipgloss.Style
	Faint   lipgloss.Style
	Cursor  lipgloss.Style
}

// FormTheme styles the entry form.
type FormTheme struct {
	Counter     lipgloss.Style
	CounterWarn lipgloss.Style
	Chip        lipgloss.Style
	ChipActive  lipgloss.Style
}

// Default returns the built-in theme used across the UI.
func Default() Theme {
	frame := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("241")).
		Padding(0, 1)

	return Theme{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#8b5cf6")),
		Footer: FooterTheme{
			Help:   lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
			Status: lipgloss.NewStyle().Foreground(lipgloss.Color("#10b981")),
			Error:  lipgloss.NewStyle().Foreground(lipgloss.Color("#ef4444")).Bold(true),
		},
		Panel: PanelTheme{
			Frame:   frame,
			Focused: frame.BorderForeground(lipgloss.Color("212")),
			Title:   lipgloss.NewStyle().Bold(true),
			Body:    lipgloss.NewStyle(),
			Faint:   lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
			Cursor:  lipgloss.NewStyle().Reverse(true),
		},
		Form: FormTheme{
			Counter:     lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
			CounterWarn: lipgloss.NewStyle().Foreground(lipgloss.Color("#f59e0b")).Bold(true),
			Chip:        lipgloss.NewStyle().Padding(0, 1),
			ChipActive:  lipgloss.NewStyle().Padding(0, 1).Bold(true).Underline(true),
		},
	}
}

// Mood is the foreground style for m's palette colour.
func (t Theme) Mood(m mood.Mood) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(m.Color()))
}

// MoodChip is a selected mood picker chip: palette background with a
// darker border colour for the text.
func (t Theme) MoodChip(m mood.Mood) lipgloss.Style {
	return t.Form.ChipActive.
		Background(lipgloss.Color(m.Color())).
		Foreground(lipgloss.Color(chart.Darken(m.Color(), 0.35)))
}
